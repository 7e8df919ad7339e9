package section

import (
	"encoding/json"
	"math"
	"net/http"

	catalog "Arbor/internal/catalog"
	validate "Arbor/internal/calc/validate"
)

type Request struct {
	SpeciesID string   `json:"species_id"`
	Geometry  Geometry `json:"geometry"`
	Scenario  Scenario `json:"scenario"`
}

// ResultPayload is the JSON form of Result. encoding/json cannot represent
// +Inf, so an unbounded safety factor goes out as null plus a flag.
type ResultPayload struct {
	WindPressurePa        float64  `json:"wind_pressure_pa"`
	WindForceN            float64  `json:"wind_force_n"`
	BendingMomentNm       float64  `json:"bending_moment_nm"`
	BendingStressMPa      float64  `json:"bending_stress_mpa"`
	SafetyFactor          *float64 `json:"safety_factor"`
	SafetyFactorUnbounded bool     `json:"safety_factor_unbounded,omitempty"`
}

func Payload(res Result) ResultPayload {
	p := ResultPayload{
		WindPressurePa:   res.WindPressurePa,
		WindForceN:       res.WindForceN,
		BendingMomentNm:  res.BendingMomentNm,
		BendingStressMPa: res.BendingStressMPa,
	}
	if math.IsInf(res.SafetyFactor, 1) {
		p.SafetyFactorUnbounded = true
	} else {
		sf := res.SafetyFactor
		p.SafetyFactor = &sf
	}
	return p
}

type Response struct {
	Issues []validate.Issue `json:"issues,omitempty"`
	Result *ResultPayload   `json:"result,omitempty"`
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

	issues := validate.Check(validate.Input{
		DBHCm:          input.Geometry.DBHCm,
		HeightM:        input.Geometry.HeightM,
		CrownDiameterM: input.Geometry.CrownDiameterM,
		CavityCm:       input.Geometry.CavityCm,
		WindSpeedMS:    input.Scenario.WindSpeedMS,
	})
	w.Header().Set("Content-Type", "application/json")
	if validate.HasError(issues) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(Response{Issues: issues})
		return
	}

	res, err := Evaluate(sp, input.Geometry, input.Scenario)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	payload := Payload(res)
	json.NewEncoder(w).Encode(Response{Issues: issues, Result: &payload})
}
