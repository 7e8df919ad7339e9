package section

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postCalc(t *testing.T, body any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/tools/tree/calc", bytes.NewReader(b))
	rec := httptest.NewRecorder()
	h := &Handler{}
	h.Calc(rec, req)
	return rec
}

func TestCalcHandler(t *testing.T) {
	rec := postCalc(t, Request{
		SpeciesID: "que-robur",
		Geometry:  Geometry{DBHCm: 50, HeightM: 18, CrownDiameterM: 10},
		Scenario:  Scenario{WindSpeedMS: 40},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Result)
	require.NotNil(t, resp.Result.SafetyFactor)
	assert.Greater(t, *resp.Result.SafetyFactor, 0.0)
	assert.False(t, resp.Result.SafetyFactorUnbounded)
	assert.Empty(t, resp.Issues)
}

func TestCalcHandlerBlockedByValidation(t *testing.T) {
	rec := postCalc(t, Request{
		SpeciesID: "que-robur",
		Geometry:  Geometry{DBHCm: 0, HeightM: 18, CrownDiameterM: 10},
		Scenario:  Scenario{WindSpeedMS: 40},
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Nil(t, resp.Result)
	require.NotEmpty(t, resp.Issues)
	assert.True(t, resp.Issues[0].IsError)
}

func TestCalcHandlerWarningsDoNotBlock(t *testing.T) {
	rec := postCalc(t, Request{
		SpeciesID: "que-robur",
		Geometry:  Geometry{DBHCm: 50, HeightM: 18, CrownDiameterM: 10, CavityCm: 60},
		Scenario:  Scenario{WindSpeedMS: 40},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Result)
	require.NotEmpty(t, resp.Issues)
	assert.False(t, resp.Issues[0].IsError)
}

func TestCalcHandlerUnknownSpecies(t *testing.T) {
	rec := postCalc(t, Request{SpeciesID: "nope"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
