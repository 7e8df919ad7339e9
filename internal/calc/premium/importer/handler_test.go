package importer

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	section "Arbor/internal/calc/section"
	catalog "Arbor/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestParseTreeRowColumnOrder(t *testing.T) {
	// cavity_cm comes before wind_ms; the two must not be confused.
	sp, g, sc, err := parseTreeRow([]string{"que-robur", "50", "18", "10", "30", "40", "1.0"})
	require.NoError(t, err)
	assert.Equal(t, "que-robur", sp.ID)
	assert.Equal(t, 50.0, g.DBHCm)
	assert.Equal(t, 18.0, g.HeightM)
	assert.Equal(t, 10.0, g.CrownDiameterM)
	assert.Equal(t, 30.0, g.CavityCm)
	assert.Equal(t, 40.0, sc.WindSpeedMS)
	assert.Equal(t, 1.0, sc.SiteFactor)
}

func TestParseTreeRowOptionalColumns(t *testing.T) {
	_, g, sc, err := parseTreeRow([]string{"que-robur", "50", "18", "10", "", "40"})
	require.NoError(t, err)
	assert.Equal(t, 0.0, g.CavityCm)
	assert.Equal(t, 40.0, sc.WindSpeedMS)
	assert.Equal(t, 0.0, sc.SiteFactor)
}

func TestParseTreeRowErrors(t *testing.T) {
	_, _, _, err := parseTreeRow([]string{"nope", "50", "18", "10", "", "40"})
	require.Error(t, err)

	_, _, _, err = parseTreeRow([]string{"que-robur", "fifty", "18", "10", "", "40"})
	require.Error(t, err)

	_, _, _, err = parseTreeRow([]string{"que-robur", "50", "18", "10", "hollow", "40"})
	require.Error(t, err)
}

func postWorkbook(t *testing.T, rows [][]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	wb, err := f.WriteToBuffer()
	require.NoError(t, err)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", "trees.xlsx")
	require.NoError(t, err)
	_, err = fw.Write(wb.Bytes())
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/tools/import/xlsx", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	h := &Handler{}
	h.Trees(rec, req)
	return rec
}

func TestTreesImport(t *testing.T) {
	rec := postWorkbook(t, [][]interface{}{
		{"species_id", "dbh_cm", "height_m", "crown_m", "cavity_cm", "wind_ms", "site_factor"},
		{"que-robur", 50, 18, 10, 30, 40, 1.0},
		{"que-robur", 50, 18, 10, "", 40},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var res ImportResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Equal(t, 2, res.Count)
	require.Len(t, res.Results, 2)

	sp, err := catalog.Species("que-robur")
	require.NoError(t, err)
	want, err := section.Evaluate(sp,
		section.Geometry{DBHCm: 50, HeightM: 18, CrownDiameterM: 10, CavityCm: 30},
		section.Scenario{WindSpeedMS: 40, SiteFactor: 1.0})
	require.NoError(t, err)
	require.NotNil(t, res.Results[0].SafetyFactor)
	assert.InDelta(t, want.SafetyFactor, *res.Results[0].SafetyFactor, 1e-6)

	// the cavity-free tree is stronger
	require.NotNil(t, res.Results[1].SafetyFactor)
	assert.Greater(t, *res.Results[1].SafetyFactor, *res.Results[0].SafetyFactor)
}

func TestTreesImportSkipsMalformedRows(t *testing.T) {
	rec := postWorkbook(t, [][]interface{}{
		{"species_id", "dbh_cm", "height_m", "crown_m", "cavity_cm", "wind_ms", "site_factor"},
		{"que-robur", 50, 18, 10, "", 40},
		{"que-robur", 50, 18},                    // too short
		{"unknown-species", 50, 18, 10, "", 40},  // no such species
		{"que-robur", "fifty", 18, 10, "", 40},   // unparsable number
		{"que-robur", 0, 18, 10, "", 40},         // rejected by the engine
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var res ImportResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, 1, res.Count)
	assert.Len(t, res.Results, 1)
}

func TestTreesImportNoFile(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/tools/import/xlsx", nil)
	rec := httptest.NewRecorder()
	h := &Handler{}
	h.Trees(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
