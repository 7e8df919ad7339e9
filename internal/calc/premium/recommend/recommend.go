package recommend

import (
	"fmt"
	"math"

	section "Arbor/internal/calc/section"
	catalog "Arbor/internal/catalog"
)

type ReductionInput struct {
	SpeciesID string           `json:"species_id"`
	Geometry  section.Geometry `json:"geometry"`
	Scenario  section.Scenario `json:"scenario"`
	TargetSF  float64          `json:"target_sf"`
}

type ReductionResult struct {
	CurrentSF        float64 `json:"current_sf"`
	ReductionPercent float64 `json:"reduction_percent"`
	Notes            string  `json:"notes"`
}

// CrownReduction recommends the crown-diameter reduction bringing the safety
// factor up to the target. SF scales with 1/crown^2, so the required diameter
// is crown * sqrt(SF/target).
func CrownReduction(in ReductionInput) (ReductionResult, error) {
	if in.TargetSF <= 0 {
		in.TargetSF = 1.5
	}
	sp, err := catalog.Species(in.SpeciesID)
	if err != nil {
		return ReductionResult{}, err
	}
	res, err := section.Evaluate(sp, in.Geometry, in.Scenario)
	if err != nil {
		return ReductionResult{}, err
	}
	if math.IsInf(res.SafetyFactor, 0) {
		return ReductionResult{}, fmt.Errorf("safety factor unbounded, nothing to reduce")
	}
	if res.SafetyFactor >= in.TargetSF {
		return ReductionResult{
			CurrentSF: res.SafetyFactor,
			Notes:     "Target already met; no reduction required.",
		}, nil
	}
	pct := (1.0 - math.Sqrt(res.SafetyFactor/in.TargetSF)) * 100.0
	return ReductionResult{
		CurrentSF:        res.SafetyFactor,
		ReductionPercent: pct,
		Notes:            "Crown-diameter reduction to reach the target safety factor.",
	}, nil
}
