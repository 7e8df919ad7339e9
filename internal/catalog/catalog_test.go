package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpeciesLookup(t *testing.T) {
	sp, err := Species("que-robur")
	require.NoError(t, err)
	assert.Equal(t, "que-robur", sp.ID)
	assert.Greater(t, sp.GreenBendingStrengthMPa, 0.0)

	_, err = Species("missing")
	require.Error(t, err)
}

func TestCatalogueSanity(t *testing.T) {
	all := AllSpecies()
	require.NotEmpty(t, all)
	for _, sp := range all {
		assert.Greater(t, sp.GreenBendingStrengthMPa, 0.0, sp.ID)
		assert.Greater(t, sp.DragCoefficient, 0.0, sp.ID)
		assert.Greater(t, sp.CrownShapeFactor, 0.0, sp.ID)
		assert.GreaterOrEqual(t, sp.DefaultFullness, 0.1, sp.ID)
		assert.LessOrEqual(t, sp.DefaultFullness, 1.0, sp.ID)
	}

	winds := AllWinds()
	require.NotEmpty(t, winds)
	for i := 1; i < len(winds); i++ {
		assert.GreaterOrEqual(t, winds[i].DesignWindSpeedMS, winds[i-1].DesignWindSpeedMS)
	}
}
