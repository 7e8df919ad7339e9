package rootplate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeBaseline(t *testing.T) {
	require.Equal(t, 1.0, Compose(Input{}))
	require.Equal(t, RatingLow, Rate(Compose(Input{})))
}

func TestRockySoilExceedsBaseline(t *testing.T) {
	f := Compose(Input{SoilType: "rocky"})
	assert.Greater(t, f, 1.0)
	assert.LessOrEqual(t, f, MaxFactor)
}

func TestSoilAndMoistureMultiply(t *testing.T) {
	f := Compose(Input{SoilType: "clay", Moisture: "saturated"})
	require.InEpsilon(t, 0.90*0.80, f, 1e-9)
}

func TestLeanSteps(t *testing.T) {
	cases := []struct {
		deg  float64
		want float64
	}{
		{0, 1.00}, // upright tree, no lean penalty
		{3, 0.95}, {5, 0.95}, {8, 0.85}, {10, 0.85}, {12, 0.70}, {15, 0.70}, {25, 0.50},
	}
	for _, tc := range cases {
		require.InEpsilon(t, tc.want, Compose(Input{LeanAngleDeg: tc.deg}), 1e-9, "deg=%v", tc.deg)
	}
}

func TestSeveredRootsClamp(t *testing.T) {
	require.InEpsilon(t, 1.0-0.25*0.8, Compose(Input{SeveredRootPercent: 25}), 1e-9)
	// Floor of the severed-root term.
	require.InEpsilon(t, 0.3, Compose(Input{SeveredRootPercent: 100}), 1e-9)
}

func TestRestrictionTypes(t *testing.T) {
	cases := map[string]float64{
		"pavement":   0.85,
		"building":   0.75,
		"wall":       0.80,
		"excavation": 0.65,
	}
	for typ, want := range cases {
		require.InEpsilon(t, want, Compose(Input{RestrictionType: typ}), 1e-9, typ)
	}
	require.Equal(t, 1.0, Compose(Input{RestrictionType: ""}))
}

func TestUndersizedPlate(t *testing.T) {
	// Expected radius for a 100 cm stem is 3.5 m.
	atExpected := Compose(Input{DBHCm: 100, PlateRadiusM: 3.5})
	require.Equal(t, 1.0, atExpected)

	half := Compose(Input{DBHCm: 100, PlateRadiusM: 1.75})
	assert.Less(t, half, atExpected)

	shallow := Compose(Input{PlateDepthM: 0.3})
	require.InEpsilon(t, 0.85, shallow, 1e-9)
	deep := Compose(Input{PlateDepthM: 0.8})
	require.Equal(t, 1.0, deep)
}

func TestComposeFloor(t *testing.T) {
	worst := Input{
		SoilType:           "peat",
		Moisture:           "waterlogged",
		LeanAngleDeg:       20,
		RecentLeanChange:   true,
		SoilHeaving:        true,
		RootDecay:          true,
		RestrictionType:    "excavation",
		SeveredRootPercent: 90,
	}
	require.Equal(t, MinFactor, Compose(worst))
	require.Equal(t, RatingCritical, Rate(Compose(worst)))
}

func TestRatingBands(t *testing.T) {
	cases := []struct {
		factor float64
		want   Rating
	}{
		{1.05, RatingLow}, {0.9, RatingLow},
		{0.89, RatingModerate}, {0.7, RatingModerate},
		{0.69, RatingHigh}, {0.5, RatingHigh},
		{0.49, RatingCritical}, {0.2, RatingCritical},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Rate(tc.factor), "factor=%v", tc.factor)
	}
}
