package threshold

import (
	"math"

	catalog "Arbor/internal/catalog"
	section "Arbor/internal/calc/section"
)

const (
	wallMin = 10.0 // % of DBH retained as residual wall
	wallMax = 100.0

	bisectIterations = 24
	bisectTolerance  = 0.015 // on |SF - 1|

	curveSamples = 10
)

type CurvePoint struct {
	WindSpeedMS         float64 `json:"wind_speed_ms"`
	CriticalWallPercent float64 `json:"critical_wall_percent"`
}

// WindToFailure returns the wind speed at which the safety factor reaches 1.
// Stress scales with V^2 and nothing else depends on wind, so
// SF(V) = SF_design * (V_design/V)^2 and V_fail = V_design * sqrt(SF_design).
// Nil when no threshold is reachable under the model.
func WindToFailure(sp catalog.SpeciesProfile, g section.Geometry, sc section.Scenario) *float64 {
	res, err := section.Evaluate(sp, g, sc)
	if err != nil {
		return nil
	}
	if math.IsInf(res.SafetyFactor, 0) || res.SafetyFactor <= 0 {
		return nil
	}
	v := sc.WindSpeedMS * math.Sqrt(res.SafetyFactor)
	return &v
}

// withResidualWall maps a residual-wall percentage onto the cavity geometry:
// a wall of w% leaves an inner void of (100-w)% of DBH.
func withResidualWall(g section.Geometry, wallPercent float64) section.Geometry {
	out := g
	out.CavityCm = g.DBHCm * (1.0 - wallPercent/100.0)
	return out
}

func safetyAtWall(sp catalog.SpeciesProfile, g section.Geometry, sc section.Scenario, wallPercent float64) float64 {
	res, err := section.Evaluate(sp, withResidualWall(g, wallPercent), sc)
	if err != nil {
		return math.Inf(1)
	}
	return res.SafetyFactor
}

// CriticalResidualWall locates, by bisection, the residual-wall percentage at
// which SF crosses 1 for the scenario's wind speed. SF is monotonically
// increasing in the wall percentage, so SF > 1 at the midpoint moves the
// bracket down and SF < 1 moves it up; a non-finite SF counts as the high
// branch. Nil when the crossing lies outside the open interval (10, 100) or
// the search never meets tolerance.
func CriticalResidualWall(sp catalog.SpeciesProfile, g section.Geometry, sc section.Scenario) *float64 {
	lo, hi := wallMin, wallMax
	for i := 0; i < bisectIterations; i++ {
		mid := (lo + hi) / 2.0
		sf := safetyAtWall(sp, g, sc, mid)
		if !math.IsInf(sf, 0) && math.Abs(sf-1.0) < bisectTolerance {
			if mid <= wallMin || mid >= wallMax {
				return nil
			}
			return &mid
		}
		if math.IsInf(sf, 0) || sf > 1.0 {
			hi = mid
		} else {
			lo = mid
		}
	}
	return nil
}

// ToleranceCurve repeats the residual-wall bisection across a range of wind
// speeds derived from the scenario's design wind, extended upward when the
// tree fails only beyond the nominal range. Winds with no threshold in range
// are omitted.
func ToleranceCurve(sp catalog.SpeciesProfile, g section.Geometry, sc section.Scenario) []CurvePoint {
	if sc.WindSpeedMS <= 0 {
		return nil
	}
	vLo := sc.WindSpeedMS * 0.5
	vHi := sc.WindSpeedMS * 1.5
	if vf := WindToFailure(sp, g, sc); vf != nil && *vf*1.1 > vHi {
		vHi = *vf * 1.1
	}

	points := make([]CurvePoint, 0, curveSamples)
	step := (vHi - vLo) / float64(curveSamples-1)
	for i := 0; i < curveSamples; i++ {
		v := vLo + float64(i)*step
		at := sc
		at.WindSpeedMS = v
		if wall := CriticalResidualWall(sp, g, at); wall != nil {
			points = append(points, CurvePoint{WindSpeedMS: v, CriticalWallPercent: *wall})
		}
	}
	return points
}
