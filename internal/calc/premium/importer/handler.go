package importer

import (
	"encoding/json"
	"fmt"
	"net/http"

	section "Arbor/internal/calc/section"
	catalog "Arbor/internal/catalog"

	"github.com/xuri/excelize/v2"
)

type Handler struct{}

type ImportResult struct {
	Count   int                     `json:"count"`
	Results []section.ResultPayload `json:"results"`
}

// Trees imports trees from the first sheet of an uploaded .xlsx and
// evaluates them row-wise. Malformed rows are skipped.
func (h *Handler) Trees(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	var results []section.ResultPayload
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if len(row) < 6 {
			continue
		}
		sp, g, sc, err := parseTreeRow(row)
		if err != nil {
			continue
		}
		res, err := section.Evaluate(sp, g, sc)
		if err != nil {
			continue
		}
		results = append(results, section.Payload(res))
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ImportResult{Count: len(results), Results: results})
}

// expected: species_id, dbh_cm, height_m, crown_m, cavity_cm(blank = none), wind_ms, site_factor(optional)
func parseTreeRow(row []string) (catalog.SpeciesProfile, section.Geometry, section.Scenario, error) {
	sp, err := catalog.Species(row[0])
	if err != nil {
		return catalog.SpeciesProfile{}, section.Geometry{}, section.Scenario{}, err
	}
	dbh, err := toFloat(row[1])
	if err != nil {
		return sp, section.Geometry{}, section.Scenario{}, err
	}
	height, err := toFloat(row[2])
	if err != nil {
		return sp, section.Geometry{}, section.Scenario{}, err
	}
	crown, err := toFloat(row[3])
	if err != nil {
		return sp, section.Geometry{}, section.Scenario{}, err
	}
	cavity := 0.0
	if row[4] != "" {
		if cavity, err = toFloat(row[4]); err != nil {
			return sp, section.Geometry{}, section.Scenario{}, err
		}
	}
	wind, err := toFloat(row[5])
	if err != nil {
		return sp, section.Geometry{}, section.Scenario{}, err
	}
	site := 0.0
	if len(row) > 6 && row[6] != "" {
		site, _ = toFloat(row[6])
	}
	g := section.Geometry{DBHCm: dbh, HeightM: height, CrownDiameterM: crown, CavityCm: cavity}
	sc := section.Scenario{WindSpeedMS: wind, SiteFactor: site}
	return sp, g, sc, nil
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%f", &v)
	return v, err
}
