package threshold

import (
	"encoding/json"
	"net/http"

	catalog "Arbor/internal/catalog"
	section "Arbor/internal/calc/section"
)

type Request struct {
	SpeciesID string           `json:"species_id"`
	Geometry  section.Geometry `json:"geometry"`
	Scenario  section.Scenario `json:"scenario"`
}

// Absent thresholds stay null in the response; they mean "no threshold in
// range", not an error.
type Result struct {
	WindToFailureMS     *float64     `json:"wind_to_failure_ms"`
	CriticalWallPercent *float64     `json:"critical_wall_percent"`
	ToleranceCurve      []CurvePoint `json:"tolerance_curve"`
}

type Handler struct{}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Request
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	sp, err := catalog.Species(input.SpeciesID)
	if err != nil {
		http.Error(w, "Unknown species", http.StatusBadRequest)
		return
	}
	if _, err := section.Evaluate(sp, input.Geometry, input.Scenario); err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}

	res := Result{
		WindToFailureMS:     WindToFailure(sp, input.Geometry, input.Scenario),
		CriticalWallPercent: CriticalResidualWall(sp, input.Geometry, input.Scenario),
		ToleranceCurve:      ToleranceCurve(sp, input.Geometry, input.Scenario),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
