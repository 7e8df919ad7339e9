package scenario

import (
	"encoding/json"
	"net/http"

	catalog "Arbor/internal/catalog"
	section "Arbor/internal/calc/section"
)

type PruningRequest struct {
	SpeciesID                string           `json:"species_id"`
	Geometry                 section.Geometry `json:"geometry"`
	Scenario                 section.Scenario `json:"scenario"`
	CrownReductionPercent    float64          `json:"crown_reduction_percent"`
	FullnessReductionPercent float64          `json:"fullness_reduction_percent"`
}

type PruningResponse struct {
	Before         section.ResultPayload `json:"before"`
	After          section.ResultPayload `json:"after"`
	BeforeCrownM   float64               `json:"before_crown_m"`
	AfterCrownM    float64               `json:"after_crown_m"`
	BeforeFullness float64               `json:"before_fullness"`
	AfterFullness  float64               `json:"after_fullness"`
}

type SweepRequest struct {
	SpeciesID string           `json:"species_id"`
	Geometry  section.Geometry `json:"geometry"`
	Scenario  section.Scenario `json:"scenario"`
	Sweep     string           `json:"sweep"` // wind, crown_reduction, residual_wall
	MinX      float64          `json:"min_x"`
	MaxX      float64          `json:"max_x"`
	Samples   int              `json:"samples"`
}

type SweepResponse struct {
	Points []Point `json:"points"`
}

type Handler struct{}

func (h *Handler) Pruning(w http.ResponseWriter, r *http.Request) {
	var input PruningRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	sp, err := catalog.Species(input.SpeciesID)
	if err != nil {
		http.Error(w, "Unknown species", http.StatusBadRequest)
		return
	}
	res, err := Pruning(sp, input.Geometry, input.Scenario, input.CrownReductionPercent, input.FullnessReductionPercent)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(PruningResponse{
		Before:         section.Payload(res.Before),
		After:          section.Payload(res.After),
		BeforeCrownM:   res.BeforeCrownM,
		AfterCrownM:    res.AfterCrownM,
		BeforeFullness: res.BeforeFullness,
		AfterFullness:  res.AfterFullness,
	})
}

func (h *Handler) Sweep(w http.ResponseWriter, r *http.Request) {
	var input SweepRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	sp, err := catalog.Species(input.SpeciesID)
	if err != nil {
		http.Error(w, "Unknown species", http.StatusBadRequest)
		return
	}
	if input.Samples <= 0 {
		input.Samples = 25
	}

	var points []Point
	switch input.Sweep {
	case "wind":
		points = SweepWind(sp, input.Geometry, input.Scenario, input.MinX, input.MaxX, input.Samples)
	case "crown_reduction":
		points = SweepCrownReduction(sp, input.Geometry, input.Scenario, input.MaxX, input.Samples)
	case "residual_wall":
		points = SweepResidualWall(sp, input.Geometry, input.Scenario, input.Samples)
	default:
		http.Error(w, "Unknown sweep kind", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(SweepResponse{Points: points})
}
