package scenario

import (
	"fmt"
	"math"

	catalog "Arbor/internal/catalog"
	section "Arbor/internal/calc/section"
)

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type PruningResult struct {
	Before         section.Result `json:"before"`
	After          section.Result `json:"after"`
	BeforeCrownM   float64        `json:"before_crown_m"`
	AfterCrownM    float64        `json:"after_crown_m"`
	BeforeFullness float64        `json:"before_fullness"`
	AfterFullness  float64        `json:"after_fullness"`
}

// SweepWind samples SF over [vMin, vMax]. Samples with an unbounded SF are
// omitted; every sample is independent of the others.
func SweepWind(sp catalog.SpeciesProfile, g section.Geometry, sc section.Scenario, vMin, vMax float64, n int) []Point {
	if n < 2 || vMax <= vMin {
		return nil
	}
	points := make([]Point, 0, n)
	step := (vMax - vMin) / float64(n-1)
	for i := 0; i < n; i++ {
		at := sc
		at.WindSpeedMS = vMin + float64(i)*step
		res, err := section.Evaluate(sp, g, at)
		if err != nil || math.IsInf(res.SafetyFactor, 0) {
			continue
		}
		points = append(points, Point{X: at.WindSpeedMS, Y: res.SafetyFactor})
	}
	return points
}

// SweepCrownReduction samples SF against crown-reduction percentage in
// [0, maxPercent].
func SweepCrownReduction(sp catalog.SpeciesProfile, g section.Geometry, sc section.Scenario, maxPercent float64, n int) []Point {
	if n < 2 || maxPercent <= 0 {
		return nil
	}
	if maxPercent > 90 {
		maxPercent = 90
	}
	points := make([]Point, 0, n)
	step := maxPercent / float64(n-1)
	for i := 0; i < n; i++ {
		pct := float64(i) * step
		at := g
		at.CrownDiameterM = g.CrownDiameterM * (1.0 - pct/100.0)
		res, err := section.Evaluate(sp, at, sc)
		if err != nil || math.IsInf(res.SafetyFactor, 0) {
			continue
		}
		points = append(points, Point{X: pct, Y: res.SafetyFactor})
	}
	return points
}

// SweepResidualWall samples SF against the residual-wall percentage over
// [10, 100].
func SweepResidualWall(sp catalog.SpeciesProfile, g section.Geometry, sc section.Scenario, n int) []Point {
	if n < 2 {
		return nil
	}
	points := make([]Point, 0, n)
	step := 90.0 / float64(n-1)
	for i := 0; i < n; i++ {
		wall := 10.0 + float64(i)*step
		at := g
		at.CavityCm = g.DBHCm * (1.0 - wall/100.0)
		res, err := section.Evaluate(sp, at, sc)
		if err != nil || math.IsInf(res.SafetyFactor, 0) {
			continue
		}
		points = append(points, Point{X: wall, Y: res.SafetyFactor})
	}
	return points
}

// Pruning evaluates the same load case before and after a crown reduction.
// Crown diameter and fullness are reduced by independent percentages and the
// reduced fullness is re-clamped to its valid domain.
func Pruning(sp catalog.SpeciesProfile, g section.Geometry, sc section.Scenario, crownReductionPercent, fullnessReductionPercent float64) (PruningResult, error) {
	if crownReductionPercent < 0 || crownReductionPercent >= 100 ||
		fullnessReductionPercent < 0 || fullnessReductionPercent >= 100 {
		return PruningResult{}, fmt.Errorf("invalid reduction percentage")
	}

	before, err := section.Evaluate(sp, g, sc)
	if err != nil {
		return PruningResult{}, err
	}
	beforeFullness := section.EffectiveFullness(sp, sc)

	afterGeom := g
	afterGeom.CrownDiameterM = g.CrownDiameterM * (1.0 - crownReductionPercent/100.0)
	afterScenario := sc
	afterScenario.Fullness = beforeFullness * (1.0 - fullnessReductionPercent/100.0)

	after, err := section.Evaluate(sp, afterGeom, afterScenario)
	if err != nil {
		return PruningResult{}, err
	}

	return PruningResult{
		Before:         before,
		After:          after,
		BeforeCrownM:   g.CrownDiameterM,
		AfterCrownM:    afterGeom.CrownDiameterM,
		BeforeFullness: beforeFullness,
		AfterFullness:  section.EffectiveFullness(sp, afterScenario),
	}, nil
}
