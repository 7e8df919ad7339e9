package defect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeNoObservations(t *testing.T) {
	require.Equal(t, 1.0, Compose(Input{}))
}

func TestBracketFungiTiers(t *testing.T) {
	cases := []struct {
		count int
		want  float64
	}{
		{0, 0.85}, {1, 0.85}, {2, 0.75}, {3, 0.75}, {4, 0.65}, {5, 0.65}, {6, 0.55}, {20, 0.55},
	}
	for _, tc := range cases {
		in := Input{BracketFungi: true, FruitingBodyCount: tc.count}
		// One decay flag set: unknown detail defaults also apply
		// (type 0.90, location 1.00, severity 1.00).
		require.InEpsilon(t, tc.want*0.90, Compose(in), 1e-9, "count=%d", tc.count)
	}
}

func TestIndependentFlagsMultiply(t *testing.T) {
	in := Input{Cracks: true, IncludedBark: true}
	require.InEpsilon(t, 0.85*0.85, Compose(in), 1e-9)
}

func TestDecayDetailsGated(t *testing.T) {
	// Cracks alone do not open the decay-detail gate.
	unGated := Input{Cracks: true, DecayType: "brown", DecaySeverity: "severe", DecayLocation: "root-plate"}
	require.InEpsilon(t, 0.85, Compose(unGated), 1e-9)

	gated := Input{CavityWithDecay: true, DecayType: "brown", DecaySeverity: "severe", DecayLocation: "root-plate"}
	require.InEpsilon(t, 0.80*0.80*0.85*0.70, Compose(gated), 1e-9)
}

func TestDecayExtentFormula(t *testing.T) {
	in := Input{DecayExtentPercent: 50}
	require.InEpsilon(t, 0.8, Compose(in), 1e-9)

	// Formula floor at 0.4 even for absurd extents.
	in = Input{DecayExtentPercent: 300}
	require.InEpsilon(t, 0.4, Compose(in), 1e-9)
}

func TestResonance(t *testing.T) {
	require.Equal(t, 1.0, Compose(Input{Resonance: "solid"}))
	require.InEpsilon(t, 0.90, Compose(Input{Resonance: "drum"}), 1e-9)
	require.InEpsilon(t, 0.75, Compose(Input{Resonance: "hollow"}), 1e-9)
}

func TestDecayColumnHeight(t *testing.T) {
	in := Input{DecayColumnHeightM: 9, TreeHeightM: 18}
	require.InEpsilon(t, 1.0-0.5*0.3, Compose(in), 1e-9)

	// Column taller than the tree still bottoms out at 0.5.
	in = Input{DecayColumnHeightM: 100, TreeHeightM: 18}
	require.InEpsilon(t, 0.5, Compose(in), 1e-9)

	// Without the tree height the observation cannot be scaled and is skipped.
	in = Input{DecayColumnHeightM: 9}
	require.Equal(t, 1.0, Compose(in))
}

func TestComposeBounds(t *testing.T) {
	worst := Input{
		BracketFungi:       true,
		FruitingBodyCount:  12,
		CavityWithDecay:    true,
		Cracks:             true,
		BasalDecay:         true,
		IncludedBark:       true,
		DecayType:          "brown",
		DecayLocation:      "root-plate",
		DecaySeverity:      "extensive",
		DecayExtentPercent: 95,
		Resonance:          "hollow",
		DecayColumnHeightM: 16,
		TreeHeightM:        18,
	}
	require.Equal(t, MinFactor, Compose(worst))

	// Sampled combinations always stay inside [0.20, 1.00].
	flags := []Input{
		{},
		{BracketFungi: true, FruitingBodyCount: 4},
		{CavityWithDecay: true, DecaySeverity: "severe"},
		{BasalDecay: true, DecayLocation: "stem-base"},
		{Cracks: true, Resonance: "drum"},
		{IncludedBark: true, DecayExtentPercent: 70},
		worst,
	}
	for i, in := range flags {
		f := Compose(in)
		assert.GreaterOrEqual(t, f, MinFactor, "case %d", i)
		assert.LessOrEqual(t, f, MaxFactor, "case %d", i)
	}
}
