package web

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/MikeSquared-Agency/Rollerskates/internal/store"
	"github.com/MikeSquared-Agency/Rollerskates/internal/topsis"
)

func TestListShowsSurveys(t *testing.T) {
	env := newTestEnv(t)
	env.client.On("ListModels", mock.Anything).Return([]topsis.Model{*sampleModel()}, nil)

	w := env.do(httptest.NewRequest(http.MethodGet, "/surveys", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `id="survey-m1"`)
	assert.Contains(t, body, `hx-delete="/surveys/m1"`)
	assert.Contains(t, body, "Skates")
}

func TestListEmpty(t *testing.T) {
	env := newTestEnv(t)
	env.client.On("ListModels", mock.Anything).Return([]topsis.Model{}, nil)

	w := env.do(httptest.NewRequest(http.MethodGet, "/surveys", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No surveys yet")
}

func TestListFailureShowsDetail(t *testing.T) {
	env := newTestEnv(t)
	env.client.On("ListModels", mock.Anything).Return(nil, &topsis.APIError{Status: 500, Detail: "database offline"})

	w := env.do(httptest.NewRequest(http.MethodGet, "/surveys", nil))

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "database offline")
}

func TestDeleteHTMXDoesNotRefetchList(t *testing.T) {
	env := newTestEnv(t)
	env.client.On("DeleteModel", mock.Anything, "m1").Return(sampleModel(), nil)

	req := httptest.NewRequest(http.MethodDelete, "/surveys/m1", nil)
	req.Header.Set("HX-Request", "true")
	w := env.do(req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.NotContains(t, body, "<html")
	assert.Contains(t, body, `hx-swap-oob="beforeend"`)
	assert.Contains(t, body, "was deleted")
	env.client.AssertNotCalled(t, "ListModels", mock.Anything)

	recent, err := env.store.Recent(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, store.ActivityDeleted, recent[0].Kind)
}

func TestDeleteHTMXFailureKeepsRow(t *testing.T) {
	env := newTestEnv(t)
	env.client.On("DeleteModel", mock.Anything, "m1").Return(nil, errors.New("connection refused"))

	req := httptest.NewRequest(http.MethodDelete, "/surveys/m1", nil)
	req.Header.Set("HX-Request", "true")
	w := env.do(req)

	assert.Equal(t, "none", w.Header().Get("HX-Reswap"))
	assert.Contains(t, w.Body.String(), msgDeleteFailed)
}

func TestDeleteFormPostRedirects(t *testing.T) {
	env := newTestEnv(t)
	env.client.On("DeleteModel", mock.Anything, "m1").Return(sampleModel(), nil)

	w := env.do(httptest.NewRequest(http.MethodPost, "/surveys/m1/delete", nil))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/surveys", w.Header().Get("Location"))
	flashCookieFrom(t, w)
}

func TestCreateFormActions(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(postForm("/surveys/create", url.Values{
		"name":     {"Skates"},
		"criteria": {"Price"},
		"action":   {"add-criterion"},
	}))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, strings.Count(w.Body.String(), `name="criteria"`))

	w = env.do(postForm("/surveys/create", url.Values{
		"name":         {"Skates"},
		"alternatives": {"Quad", "Inline"},
		"action":       {"remove-alternative:0"},
	}))
	body := w.Body.String()
	assert.Equal(t, 1, strings.Count(body, `name="alternatives"`))
	assert.Contains(t, body, `value="Inline"`)
	env.client.AssertNotCalled(t, "CreateModel", mock.Anything, mock.Anything)
}

func TestCreateSubmit(t *testing.T) {
	env := newTestEnv(t)
	want := topsis.ModelCreate{Name: "Skates", Criteria: []string{"Price"}, Alternatives: []string{"Quad", "Inline"}}
	env.client.On("CreateModel", mock.Anything, want).Return(sampleModel(), nil)

	w := env.do(postForm("/surveys/create", url.Values{
		"name":         {" Skates "},
		"criteria":     {"Price", ""},
		"alternatives": {"Quad", "Inline"},
	}))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/surveys/m1", w.Header().Get("Location"))
	env.client.AssertExpectations(t)
}

func TestCreateFailure(t *testing.T) {
	env := newTestEnv(t)
	env.client.On("CreateModel", mock.Anything, mock.Anything).Return(nil, &topsis.APIError{Status: 422})

	w := env.do(postForm("/surveys/create", url.Values{
		"name":         {"Skates"},
		"criteria":     {"Price"},
		"alternatives": {"Quad"},
	}))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), msgCreateFailed)
	assert.Contains(t, w.Body.String(), `value="Quad"`)
}

func TestImportRejectsNonJSONBeforeUpload(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(uploadRequest(t, "notes.txt", "hello"))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), msgNotJSON)
	env.client.AssertNotCalled(t, "ImportModel", mock.Anything, mock.Anything, mock.Anything)
}

func TestImportWithoutFile(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(postForm("/surveys/import", url.Values{}))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), msgNoFile)
	env.client.AssertNotCalled(t, "ImportModel", mock.Anything, mock.Anything, mock.Anything)
}

func TestImportJSON(t *testing.T) {
	env := newTestEnv(t)
	env.client.On("ImportModel", mock.Anything, "survey.json", mock.Anything).Return(sampleModel(), nil)

	w := env.do(uploadRequest(t, "survey.json", `{"name":"Skates"}`))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/surveys/m1", w.Header().Get("Location"))
	env.client.AssertExpectations(t)
}

func TestProfileRendersExpertForm(t *testing.T) {
	env := newTestEnv(t)
	env.client.On("GetModel", mock.Anything, "m1").Return(sampleModel(), nil)

	w := env.do(httptest.NewRequest(http.MethodGet, "/surveys/m1", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `name="weight.c1"`)
	assert.Contains(t, body, `name="score.c2.a3"`)
}

func TestProfileNotFound(t *testing.T) {
	env := newTestEnv(t)
	env.client.On("GetModel", mock.Anything, "gone").Return(nil, &topsis.APIError{Status: 404, Detail: "Model not found"})

	w := env.do(httptest.NewRequest(http.MethodGet, "/surveys/gone", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Model not found")
}

func TestSubmitExpertDropsBlankFields(t *testing.T) {
	env := newTestEnv(t)
	m := sampleModel()
	env.client.On("GetModel", mock.Anything, "m1").Return(m, nil)
	env.client.On("SubmitExpertInput", mock.Anything, "m1", mock.MatchedBy(func(in topsis.ExpertInput) bool {
		_, hasC2 := in.CriterionWeights["c2"]
		return in.ExpertID != "" &&
			in.CriterionWeights["c1"] == 0.7 && !hasC2 &&
			in.CriterionScores["c1"]["a1"] == 8 && len(in.CriterionScores["c1"]) == 1 &&
			len(in.CriterionScores["c2"]) == 0
	})).Return(m, nil)

	w := env.do(postForm("/surveys/m1/experts", url.Values{
		"weight.c1":   {"0.7"},
		"weight.c2":   {""},
		"score.c1.a1": {"8"},
		"score.c1.a2": {""},
	}))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/surveys/m1", w.Header().Get("Location"))
	env.client.AssertExpectations(t)

	req := httptest.NewRequest(http.MethodGet, "/surveys/m1", nil)
	req.AddCookie(flashCookieFrom(t, w))
	assert.Contains(t, env.do(req).Body.String(), msgSaved)
}

func TestSubmitExpertFailureKeepsValues(t *testing.T) {
	env := newTestEnv(t)
	env.client.On("GetModel", mock.Anything, "m1").Return(sampleModel(), nil)
	env.client.On("SubmitExpertInput", mock.Anything, "m1", mock.Anything).Return(nil, errors.New("timeout"))

	w := env.do(postForm("/surveys/m1/experts", url.Values{"weight.c1": {"0.25"}}))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), msgSaveFailed)
	assert.Contains(t, w.Body.String(), `value="0.25"`)
}

func TestExportDownload(t *testing.T) {
	env := newTestEnv(t)
	env.client.On("ExportModel", mock.Anything, "m1").Return(sampleModel(), nil)

	w := env.do(httptest.NewRequest(http.MethodGet, "/surveys/m1/export", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="survey_2026-03-14.json"`, w.Header().Get("Content-Disposition"))
	assert.Contains(t, w.Body.String(), `"expert_inputs": []`)
}

func TestExportFailureRedirectsToProfile(t *testing.T) {
	env := newTestEnv(t)
	env.client.On("ExportModel", mock.Anything, "m1").Return(nil, errors.New("boom"))

	w := env.do(httptest.NewRequest(http.MethodGet, "/surveys/m1/export", nil))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/surveys/m1", w.Header().Get("Location"))
}

func sampleRanking() *topsis.Ranking {
	return &topsis.Ranking{
		ClosenessScores: map[string]float64{"a1": 0.75, "a2": 0.5, "a3": 0.5},
		Ranking:         []string{"a1", "a2", "a3"},
		AggregatedDecisionMatrix: map[string]map[string]float64{
			"a1": {"c1": 7, "c2": 9},
		},
	}
}

func TestRankingPage(t *testing.T) {
	env := newTestEnv(t)
	env.client.On("GetModel", mock.Anything, "m1").Return(sampleModel(), nil)
	env.client.On("GetRanking", mock.Anything, "m1").Return(sampleRanking(), nil)

	w := env.do(httptest.NewRequest(http.MethodGet, "/surveys/m1/ranking", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "75.00%")
	assert.Contains(t, body, "50.00%")
	assert.Equal(t, 1, strings.Count(body, `>1</span>`))
	assert.Equal(t, 2, strings.Count(body, `>2</span>`))
	assert.NotContains(t, body, `>3</span>`)
	// no average weights, so no criteria table
	assert.NotContains(t, body, "<h2>Criteria</h2>")
	assert.Contains(t, body, "<td>9.00</td>")
}

func TestRankingFailure(t *testing.T) {
	env := newTestEnv(t)
	env.client.On("GetModel", mock.Anything, "m1").Return(sampleModel(), nil).Maybe()
	env.client.On("GetRanking", mock.Anything, "m1").Return(nil, &topsis.APIError{Status: 400, Detail: "No expert inputs"})

	w := env.do(httptest.NewRequest(http.MethodGet, "/surveys/m1/ranking", nil))

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "No expert inputs")
}

func TestRankingWorkbook(t *testing.T) {
	env := newTestEnv(t)
	env.client.On("GetModel", mock.Anything, "m1").Return(sampleModel(), nil)
	env.client.On("GetRanking", mock.Anything, "m1").Return(sampleRanking(), nil)

	w := env.do(httptest.NewRequest(http.MethodGet, "/surveys/m1/ranking.xlsx", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="ranking_2026-03-14.xlsx"`, w.Header().Get("Content-Disposition"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "PK"), "xlsx is a zip archive")
}

func TestHealth(t *testing.T) {
	w := httptest.NewRecorder()
	NewMetricsRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
