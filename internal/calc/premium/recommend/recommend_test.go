package recommend

import (
	"testing"

	section "Arbor/internal/calc/section"
	catalog "Arbor/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrownReductionReachesTarget(t *testing.T) {
	in := ReductionInput{
		SpeciesID: "que-robur",
		Geometry:  section.Geometry{DBHCm: 50, HeightM: 18, CrownDiameterM: 10},
		Scenario:  section.Scenario{WindSpeedMS: 48},
		TargetSF:  3.0,
	}
	res, err := CrownReduction(in)
	require.NoError(t, err)
	require.Greater(t, res.ReductionPercent, 0.0)
	require.Less(t, res.ReductionPercent, 100.0)

	sp, err := catalog.Species(in.SpeciesID)
	require.NoError(t, err)
	g := in.Geometry
	g.CrownDiameterM = g.CrownDiameterM * (1.0 - res.ReductionPercent/100.0)
	after, err := section.Evaluate(sp, g, in.Scenario)
	require.NoError(t, err)
	require.InDelta(t, in.TargetSF, after.SafetyFactor, 1e-6)
}

func TestCrownReductionTargetAlreadyMet(t *testing.T) {
	in := ReductionInput{
		SpeciesID: "que-robur",
		Geometry:  section.Geometry{DBHCm: 80, HeightM: 15, CrownDiameterM: 6},
		Scenario:  section.Scenario{WindSpeedMS: 30},
		TargetSF:  1.5,
	}
	res, err := CrownReduction(in)
	require.NoError(t, err)
	assert.Zero(t, res.ReductionPercent)
	assert.Greater(t, res.CurrentSF, in.TargetSF)
}

func TestCrownReductionUnboundedSF(t *testing.T) {
	in := ReductionInput{
		SpeciesID: "que-robur",
		Geometry:  section.Geometry{DBHCm: 50, HeightM: 18, CrownDiameterM: 10},
		Scenario:  section.Scenario{WindSpeedMS: 0},
		TargetSF:  1.5,
	}
	_, err := CrownReduction(in)
	require.Error(t, err)
}
