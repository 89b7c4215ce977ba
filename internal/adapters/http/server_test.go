package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/okanara/markov"
	httpAdapter "github.com/okanara/markov/internal/adapters/http"
	"github.com/okanara/markov/internal/adapters/memory"
	"github.com/okanara/markov/pkg/chain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()

	path := filepath.Join(t.TempDir(), "chain.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
name: coin-toss
start: heads
states:
  heads:
    heads: 0.5
    tails: 0.5
  tails:
    heads: 0.6
    tails: 0.4
`), 0644))

	eng, err := markov.New(path, markov.WithStore(memory.New()))
	require.NoError(t, err)
	return httpAdapter.NewHandler(eng)
}

func TestServer_Health(t *testing.T) {
	h := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_GetChain(t *testing.T) {
	h := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/chain", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp httpAdapter.ChainResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "coin-toss", resp.Name)
	assert.Equal(t, []chain.State{"heads", "tails"}, resp.States)
	assert.Equal(t, 0.6, resp.Rows["tails"]["heads"])
}

func TestServer_SimulateDeterministic(t *testing.T) {
	h := newTestHandler(t)

	post := func() httpAdapter.SimulateResponse {
		rec := httptest.NewRecorder()
		body := strings.NewReader(`{"start": "tails", "steps": 50, "seed": 7}`)
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/simulate", body))
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var resp httpAdapter.SimulateResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		return resp
	}

	first, second := post(), post()
	assert.Len(t, first.Trajectory, 50)
	assert.Equal(t, first.Trajectory, second.Trajectory, "same seed, same path")
	assert.NotEqual(t, first.RunID, second.RunID, "each request is its own run")
}

func TestServer_SimulateRejectsBadInput(t *testing.T) {
	h := newTestHandler(t)

	cases := map[string]string{
		"negative steps": `{"steps": -1}`,
		"unknown start":  `{"start": "edge", "steps": 5}`,
		"broken json":    `{`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/simulate", strings.NewReader(body)))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestServer_Propagate(t *testing.T) {
	h := newTestHandler(t)

	rec := httptest.NewRecorder()
	body := strings.NewReader(`{"start": "heads", "steps": 200}`)
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/propagate", body))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp httpAdapter.PropagateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Distributions, 201)
	assert.Equal(t, 1.0, resp.Distributions[0]["heads"])
	assert.InDelta(t, 6.0/11.0, resp.Distributions[200]["heads"], 1e-6)
}

func TestServer_Stationary(t *testing.T) {
	h := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stationary", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var pi chain.Distribution
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pi))
	assert.InDelta(t, 6.0/11.0, pi["heads"], 1e-9)
}

func TestServer_Runs(t *testing.T) {
	h := newTestHandler(t)

	// No runs yet.
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/runs", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	// One simulation later the run is listed and retrievable.
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/simulate", strings.NewReader(`{"steps": 10, "seed": 1}`)))
	require.Equal(t, http.StatusOK, rec.Code)
	var sim httpAdapter.SimulateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sim))

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/runs/"+sim.RunID, nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/runs/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_MetricsExposed(t *testing.T) {
	h := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/simulate", strings.NewReader(`{"steps": 10, "seed": 1}`)))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `markov_simulations_total{chain="coin-toss"} 1`)
}

func TestServer_Mermaid(t *testing.T) {
	h := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/chain/mermaid", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Body.String(), "graph LR"))
}
