package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckMissingRequired(t *testing.T) {
	issues := Check(Input{})
	require.Len(t, issues, 4)
	for _, it := range issues {
		assert.True(t, it.IsError)
	}
	assert.True(t, HasError(issues))
}

func TestCheckValidInput(t *testing.T) {
	issues := Check(Input{DBHCm: 50, HeightM: 18, CrownDiameterM: 10, WindSpeedMS: 40})
	assert.Empty(t, issues)
	assert.False(t, HasError(issues))
}

func TestCheckWarnings(t *testing.T) {
	cases := []struct {
		name string
		in   Input
	}{
		{"extreme wind", Input{DBHCm: 50, HeightM: 18, CrownDiameterM: 10, WindSpeedMS: 90}},
		{"negative cavity", Input{DBHCm: 50, HeightM: 18, CrownDiameterM: 10, WindSpeedMS: 40, CavityCm: -5}},
		{"cavity at dbh", Input{DBHCm: 50, HeightM: 18, CrownDiameterM: 10, WindSpeedMS: 40, CavityCm: 50}},
		{"squat tree", Input{DBHCm: 300, HeightM: 4, CrownDiameterM: 3, WindSpeedMS: 40}},
		{"wide crown", Input{DBHCm: 50, HeightM: 5, CrownDiameterM: 12, WindSpeedMS: 40}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			issues := Check(tc.in)
			require.NotEmpty(t, issues)
			// Warnings never block.
			assert.False(t, HasError(issues))
		})
	}
}

func TestCheckRulesAreIndependent(t *testing.T) {
	// One error plus one warning: both must be reported.
	issues := Check(Input{DBHCm: 50, HeightM: 18, CrownDiameterM: 10, WindSpeedMS: 0, CavityCm: -1})
	require.Len(t, issues, 2)
	assert.True(t, issues[0].IsError)
	assert.False(t, issues[1].IsError)
	assert.True(t, HasError(issues))
}
