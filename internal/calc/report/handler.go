package report

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"time"

	defect "Arbor/internal/calc/defect"
	rootplate "Arbor/internal/calc/rootplate"
	section "Arbor/internal/calc/section"
	threshold "Arbor/internal/calc/threshold"
	catalog "Arbor/internal/catalog"

	"github.com/phpdave11/gofpdf"
)

type Input struct {
	Project string `json:"project"`
	Author  string `json:"author"`
	Title   string `json:"title"`
	Notes   string `json:"notes"`

	SpeciesID string           `json:"species_id"`
	Geometry  section.Geometry `json:"geometry"`
	Scenario  section.Scenario `json:"scenario"`
	Defects   defect.Input     `json:"defects"`
	RootPlate rootplate.Input  `json:"root_plate"`
}

type Handler struct{}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Title == "" {
		input.Title = "Tree Structural Assessment"
	}
	sp, err := catalog.Species(input.SpeciesID)
	if err != nil {
		http.Error(w, "Unknown species", http.StatusBadRequest)
		return
	}

	sc := input.Scenario
	sc.DefectFactor = defect.Compose(input.Defects)
	res, err := section.Evaluate(sp, input.Geometry, sc)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	rootFactor := rootplate.Compose(input.RootPlate)
	vFail := threshold.WindToFailure(sp, input.Geometry, sc)
	wall := threshold.CriticalResidualWall(sp, input.Geometry, sc)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, input.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", input.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", input.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Tree and load case")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Species: %s", sp.DisplayName))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("DBH %.1f cm, height %.1f m, crown %.1f m", input.Geometry.DBHCm, input.Geometry.HeightM, input.Geometry.CrownDiameterM))
	pdf.Ln(6)
	if inner := section.InnerDiameterCm(input.Geometry); inner > 0 {
		pdf.Cell(0, 6, fmt.Sprintf("Cavity %.1f cm (effective)", inner))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Design wind %.1f m/s", sc.WindSpeedMS))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Results")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Wind pressure: %.1f Pa", res.WindPressurePa))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Wind force: %.1f N", res.WindForceN))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Bending moment: %.1f Nm", res.BendingMomentNm))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Bending stress: %.2f MPa", res.BendingStressMPa))
	pdf.Ln(6)
	if math.IsInf(res.SafetyFactor, 1) {
		pdf.Cell(0, 6, "Safety factor: very high (no wind demand)")
	} else {
		pdf.Cell(0, 6, fmt.Sprintf("Safety factor: %.2f", res.SafetyFactor))
	}
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Defect strength factor: %.2f", sc.DefectFactor))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Root-plate stability: %.2f (%s)", rootFactor, rootplate.Rate(rootFactor)))
	pdf.Ln(6)
	if vFail != nil {
		pdf.Cell(0, 6, fmt.Sprintf("Wind to failure: %.1f m/s", *vFail))
	} else {
		pdf.Cell(0, 6, "Wind to failure: not reachable under the model")
	}
	pdf.Ln(6)
	if wall != nil {
		pdf.Cell(0, 6, fmt.Sprintf("Critical residual wall: %.1f %% of DBH", *wall))
	} else {
		pdf.Cell(0, 6, "Critical residual wall: no threshold in range")
	}
	pdf.Ln(10)

	if input.Notes != "" {
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, input.Notes, "", "L", false)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"assessment.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}
