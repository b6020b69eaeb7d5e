package topsis

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewHTTPClient(srv.URL, "/api/v1", time.Second)
}

func writeData(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "data": v})
}

func TestListModelsUnwrapsData(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/models", r.URL.Path)
		writeData(w, []Model{{ModelID: "m1", Name: "Skates"}})
	})

	models, err := c.ListModels(context.Background())
	require.NoError(t, err)
	require.Len(t, models, 1)
	assert.Equal(t, "m1", models[0].ModelID)
	assert.Equal(t, "Skates", models[0].Name)
}

func TestListModelsEmptyIsNotNil(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeData(w, nil)
	})

	models, err := c.ListModels(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, models)
	assert.Empty(t, models)
}

func TestCreateModelSendsBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/models", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req ModelCreate
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Skates", req.Name)
		assert.Equal(t, []string{"price", "speed"}, req.Criteria)

		writeData(w, Model{ModelID: "new-id", Name: req.Name})
	})

	m, err := c.CreateModel(context.Background(), ModelCreate{
		Name:         "Skates",
		Criteria:     []string{"price", "speed"},
		Alternatives: []string{"A", "B"},
	})
	require.NoError(t, err)
	assert.Equal(t, "new-id", m.ModelID)
}

func TestImportModelUploadsMultipart(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/models/import/", r.URL.Path)
		f, hdr, err := r.FormFile("file")
		if !assert.NoError(t, err) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer f.Close()
		assert.Equal(t, "survey.json", hdr.Filename)
		body, _ := io.ReadAll(f)
		assert.JSONEq(t, `{"name":"x"}`, string(body))
		writeData(w, Model{ModelID: "imported"})
	})

	m, err := c.ImportModel(context.Background(), "survey.json", strings.NewReader(`{"name":"x"}`))
	require.NoError(t, err)
	assert.Equal(t, "imported", m.ModelID)
}

func TestModelPaths(t *testing.T) {
	var seen []string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Method+" "+r.URL.Path)
		if strings.HasSuffix(r.URL.Path, "/rankings") {
			writeData(w, Ranking{Ranking: []string{"a"}})
			return
		}
		writeData(w, Model{ModelID: "m1"})
	})
	ctx := context.Background()

	_, err := c.GetModel(ctx, "m1")
	require.NoError(t, err)
	_, err = c.DeleteModel(ctx, "m1")
	require.NoError(t, err)
	_, err = c.ExportModel(ctx, "m1")
	require.NoError(t, err)
	_, err = c.SubmitExpertInput(ctx, "m1", ExpertInput{})
	require.NoError(t, err)
	r, err := c.GetRanking(ctx, "m1")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, r.Ranking)

	assert.Equal(t, []string{
		"GET /api/v1/models/m1",
		"DELETE /api/v1/models/m1",
		"GET /api/v1/models/m1/export",
		"POST /api/v1/models/m1/experts",
		"GET /api/v1/models/m1/rankings",
	}, seen)
}

func TestNon2xxSurfacesDetail(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"Model not found"}`))
	})

	_, err := c.GetModel(context.Background(), "missing")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Model not found", apiErr.Detail)
	assert.True(t, IsNotFound(err))
	assert.Equal(t, "Model not found", ErrorMessage(err, "fallback"))
}

func TestNon2xxFallsBackToMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"success":false,"status":500,"message":"boom"}`))
	})

	_, err := c.ListModels(context.Background())
	assert.Equal(t, "boom", ErrorMessage(err, "fallback"))
}

func TestNon2xxWithoutBodyUsesFallback(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := c.ListModels(context.Background())
	require.Error(t, err)
	assert.Equal(t, "fallback", ErrorMessage(err, "fallback"))
}

func TestTransportErrorUsesFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	c := NewHTTPClient(srv.URL, "/api/v1", time.Second)

	_, err := c.ListModels(context.Background())
	require.Error(t, err)
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
	assert.Equal(t, "fallback", ErrorMessage(err, "fallback"))
}

func TestValidationDetailList(t *testing.T) {
	err := parseError(http.StatusBadRequest, []byte(`{"detail":[{"loc":["name"],"msg":"field required"}]}`))
	assert.Contains(t, err.Detail, "field required")
}

func TestEmptyPrefix(t *testing.T) {
	c := NewHTTPClient("http://api.local/", "", time.Second)
	assert.Equal(t, "http://api.local/models", c.url("/models"))

	c = NewHTTPClient("http://api.local", "api/v2/", time.Second)
	assert.Equal(t, "http://api.local/api/v2/models", c.url("/models"))
}
