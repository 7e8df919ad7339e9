package autodesign

import (
	"fmt"
	"math"

	section "Arbor/internal/calc/section"
	catalog "Arbor/internal/catalog"
)

type StemInput struct {
	SpeciesID string           `json:"species_id"`
	Geometry  section.Geometry `json:"geometry"` // DBH ignored, solved for
	Scenario  section.Scenario `json:"scenario"`
	TargetSF  float64          `json:"target_sf"`
}

type StemResult struct {
	RequiredDBHCm float64 `json:"required_dbh_cm"`
	Notes         string  `json:"notes"`
}

// MinimumStem solves the minimum solid stem diameter achieving the target
// safety factor under the given load: W_req = M / sigma_allow, then
// d = cbrt(32 W / pi). The bending moment does not depend on DBH, so a
// single evaluation at a reference diameter is enough to obtain it.
func MinimumStem(in StemInput) (StemResult, error) {
	if in.TargetSF <= 0 {
		in.TargetSF = 1.5
	}
	sp, err := catalog.Species(in.SpeciesID)
	if err != nil {
		return StemResult{}, err
	}

	g := in.Geometry
	g.DBHCm = 10 // reference, moment is DBH-independent
	g.CavityCm = 0
	res, err := section.Evaluate(sp, g, in.Scenario)
	if err != nil {
		return StemResult{}, err
	}
	if res.BendingMomentNm <= 0 {
		return StemResult{}, fmt.Errorf("no wind demand, any stem suffices")
	}

	defect := in.Scenario.DefectFactor
	if defect <= 0 || defect > 1 {
		defect = 1.0
	}
	sigmaAllow := sp.GreenBendingStrengthMPa * defect * 1e6 / in.TargetSF // Pa
	wReq := res.BendingMomentNm / sigmaAllow
	d := math.Cbrt(32.0 * wReq / math.Pi)

	return StemResult{
		RequiredDBHCm: d * 100.0,
		Notes:         "Minimum solid stem diameter for the target safety factor.",
	}, nil
}
