package section

import (
	"fmt"
	"math"

	catalog "Arbor/internal/catalog"
)

const (
	AirDensity    = 1.2  // kg/m3
	LeverArmRatio = 0.66 // distributed crown load as equivalent point load
	MinFullness   = 0.1
	MaxFullness   = 1.0
)

type Geometry struct {
	DBHCm          float64 `json:"dbh_cm"`
	HeightM        float64 `json:"height_m"`
	CrownDiameterM float64 `json:"crown_diameter_m"`
	CavityCm       float64 `json:"cavity_cm"`
}

type Scenario struct {
	WindSpeedMS  float64 `json:"wind_speed_ms"`
	SiteFactor   float64 `json:"site_factor"`
	Fullness     float64 `json:"fullness"`      // 0 = species default
	DefectFactor float64 `json:"defect_factor"` // 0 = no reduction
}

type Result struct {
	WindPressurePa   float64 `json:"wind_pressure_pa"`
	WindForceN       float64 `json:"wind_force_n"`
	BendingMomentNm  float64 `json:"bending_moment_nm"`
	BendingStressMPa float64 `json:"bending_stress_mpa"`
	SafetyFactor     float64 `json:"safety_factor"`
}

// InnerDiameterCm resolves the cavity diameter actually used by the section
// modulus: negatives are ignored, and a cavity at or beyond the outer
// diameter is capped to 99% of DBH so the hollow modulus never divides to zero.
func InnerDiameterCm(g Geometry) float64 {
	if g.CavityCm <= 0 {
		return 0
	}
	if g.CavityCm >= g.DBHCm {
		return 0.99 * g.DBHCm
	}
	return g.CavityCm
}

// EffectiveFullness resolves the crown fullness for a scenario, clamped to
// [0.1, 1.0]. A crown is never modeled fully bare or overfull.
func EffectiveFullness(sp catalog.SpeciesProfile, sc Scenario) float64 {
	f := sc.Fullness
	if f <= 0 {
		f = sp.DefaultFullness
	}
	return math.Min(math.Max(f, MinFullness), MaxFullness)
}

// Evaluate runs the cantilever wind-load check for one scenario.
// Pure: identical inputs give bit-identical results.
func Evaluate(sp catalog.SpeciesProfile, g Geometry, sc Scenario) (Result, error) {
	if g.DBHCm <= 0 || g.HeightM <= 0 || g.CrownDiameterM <= 0 || sc.WindSpeedMS < 0 {
		return Result{}, fmt.Errorf("invalid input")
	}
	siteFactor := sc.SiteFactor
	if siteFactor <= 0 {
		siteFactor = 1.0
	}
	defect := sc.DefectFactor
	if defect <= 0 || defect > 1 {
		defect = 1.0
	}

	d := g.DBHCm / 100.0
	di := InnerDiameterCm(g) / 100.0

	q := siteFactor * 0.5 * AirDensity * sc.WindSpeedMS * sc.WindSpeedMS

	planArea := math.Pi * math.Pow(g.CrownDiameterM/2.0, 2)
	projected := planArea * sp.CrownShapeFactor * EffectiveFullness(sp, sc)

	F := q * sp.DragCoefficient * projected
	M := F * LeverArmRatio * g.HeightM

	var W float64
	if di > 0 {
		W = math.Pi * (math.Pow(d, 4) - math.Pow(di, 4)) / (32.0 * d)
	} else {
		W = math.Pi * math.Pow(d, 3) / 32.0
	}

	stress := (M / W) / 1e6 // MPa

	sf := math.Inf(1) // zero stress is a valid state, not an error
	if stress > 0 {
		sf = sp.GreenBendingStrengthMPa * defect / stress
	}

	return Result{
		WindPressurePa:   q,
		WindForceN:       F,
		BendingMomentNm:  M,
		BendingStressMPa: stress,
		SafetyFactor:     sf,
	}, nil
}
