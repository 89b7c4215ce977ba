// Package http exposes the engine as a JSON API.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/okanara/markov/internal/presentation/graph"
	"github.com/okanara/markov/pkg/chain"
	"github.com/okanara/markov/pkg/domain"
)

// Engine defines the interface the server needs from the markov core.
type Engine interface {
	Name() string
	Start() chain.State
	Model() *chain.Model
	Simulate(ctx context.Context, start chain.State, steps int, seed int64) (chain.Trajectory, *domain.RunRecord, error)
	Propagate(initial chain.Distribution, steps int) ([]chain.Distribution, error)
	Stationary(opts ...chain.StationaryOption) (chain.Distribution, error)
	Runs(ctx context.Context) ([]string, error)
	Run(ctx context.Context, id string) (*domain.RunRecord, error)
}

// Server routes API requests to the engine.
type Server struct {
	engine  Engine
	metrics *metrics
}

// NewHandler creates the HTTP handler for the engine, including the
// Prometheus /metrics endpoint.
func NewHandler(engine Engine) http.Handler {
	s := &Server{
		engine:  engine,
		metrics: newMetrics(),
	}

	r := chi.NewRouter()
	r.Get("/healthz", s.health)
	r.Get("/chain", s.getChain)
	r.Get("/chain/mermaid", s.getMermaid)
	r.Post("/simulate", s.simulate)
	r.Post("/propagate", s.propagate)
	r.Get("/stationary", s.stationary)
	r.Get("/runs", s.listRuns)
	r.Get("/runs/{id}", s.getRun)
	r.Handle("/metrics", s.metrics.handler())
	return r
}

// SimulateRequest is the body of POST /simulate.
type SimulateRequest struct {
	Start chain.State `json:"start,omitempty"`
	Steps int         `json:"steps"`
	Seed  *int64      `json:"seed,omitempty"`
}

// SimulateResponse is the body returned by POST /simulate.
type SimulateResponse struct {
	RunID      string              `json:"run_id"`
	Seed       int64               `json:"seed"`
	Trajectory chain.Trajectory    `json:"trajectory"`
	Counts     map[chain.State]int `json:"counts"`
	Final      chain.State         `json:"final,omitempty"`
}

// PropagateRequest is the body of POST /propagate. Initial takes precedence
// over Start; when both are empty the chain's default start is used.
type PropagateRequest struct {
	Initial chain.Distribution `json:"initial,omitempty"`
	Start   chain.State        `json:"start,omitempty"`
	Steps   int                `json:"steps"`
}

// PropagateResponse is the body returned by POST /propagate.
type PropagateResponse struct {
	Distributions []chain.Distribution `json:"distributions"`
}

// ChainResponse describes the loaded chain.
type ChainResponse struct {
	Name   string                             `json:"name"`
	Start  chain.State                        `json:"start"`
	States []chain.State                      `json:"states"`
	Rows   map[chain.State]chain.Distribution `json:"rows"`
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) getChain(w http.ResponseWriter, r *http.Request) {
	m := s.engine.Model()
	writeJSON(w, http.StatusOK, ChainResponse{
		Name:   s.engine.Name(),
		Start:  s.engine.Start(),
		States: m.States(),
		Rows:   m.Rows(),
	})
}

func (s *Server) getMermaid(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(graph.GenerateMermaid(s.engine.Model(), s.engine.Start(), nil)))
}

func (s *Server) simulate(w http.ResponseWriter, r *http.Request) {
	var req SimulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	seed := time.Now().UnixNano()
	if req.Seed != nil {
		seed = *req.Seed
	}

	path, run, err := s.engine.Simulate(r.Context(), req.Start, req.Steps, seed)
	if err != nil {
		writeError(w, err)
		return
	}
	s.metrics.observe(run)

	writeJSON(w, http.StatusOK, SimulateResponse{
		RunID:      run.ID,
		Seed:       seed,
		Trajectory: path,
		Counts:     run.Counts,
		Final:      run.Final,
	})
}

func (s *Server) propagate(w http.ResponseWriter, r *http.Request) {
	var req PropagateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	initial := req.Initial
	if initial == nil && req.Start != "" {
		initial = chain.Point(req.Start)
	}

	dists, err := s.engine.Propagate(initial, req.Steps)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, PropagateResponse{Distributions: dists})
}

func (s *Server) stationary(w http.ResponseWriter, r *http.Request) {
	pi, err := s.engine.Stationary()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pi)
}

func (s *Server) listRuns(w http.ResponseWriter, r *http.Request) {
	ids, err := s.engine.Runs(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	writeJSON(w, http.StatusOK, ids)
}

func (s *Server) getRun(w http.ResponseWriter, r *http.Request) {
	run, err := s.engine.Run(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, run)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps domain errors onto HTTP status codes.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, chain.ErrNegativeSteps),
		errors.Is(err, chain.ErrUnknownState),
		errors.Is(err, chain.ErrInvalidDistribution),
		errors.Is(err, chain.ErrInvalidModel):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrRunNotFound):
		status = http.StatusNotFound
	}
	http.Error(w, err.Error(), status)
}
