// Package http exposes the reducer as a stateless JSON API. The server holds
// no session state: every request carries the full state it wants transformed.
package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/tally/pkg/domain"
	"github.com/aretw0/tally/pkg/ports"
)

// TransitionRequest is the body of POST /v1/transition.
type TransitionRequest struct {
	State  domain.State  `json:"state"`
	Action domain.Action `json:"action"`
}

// TransitionResponse carries the state computed by the reducer.
type TransitionResponse struct {
	State domain.State `json:"state"`
}

// ReplayRequest is the body of POST /v1/replay.
type ReplayRequest struct {
	State   domain.State    `json:"state"`
	Actions []domain.Action `json:"actions"`
}

// ReplayResponse carries the full trace, initial state first.
type ReplayResponse struct {
	Steps []domain.Step `json:"steps"`
}

// Server wires a reducer to the HTTP surface.
type Server struct {
	reduce ports.Reducer
	logger *slog.Logger

	registry    *prometheus.Registry
	requests    *prometheus.CounterVec
	transitions *prometheus.CounterVec
}

// NewHandler creates the HTTP handler for a reducer. The logger may be nil.
func NewHandler(reduce ports.Reducer, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := &Server{
		reduce:   reduce,
		logger:   logger,
		registry: prometheus.NewRegistry(),
	}

	s.requests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tally_http_requests_total",
		Help: "HTTP requests served, by route and status class.",
	}, []string{"route", "status"})
	s.transitions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tally_transitions_applied_total",
		Help: "Transitions applied by the reducer, by action type.",
	}, []string{"type"})
	s.registry.MustRegister(s.requests, s.transitions)

	r := chi.NewRouter()
	r.Post("/v1/transition", s.handleTransition)
	r.Post("/v1/replay", s.handleReplay)
	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	return r
}

// observe records one applied transition. Unrecognized types share a single
// label value to keep metric cardinality bounded.
func (s *Server) observe(actionType string) {
	switch actionType {
	case domain.ActionIncrement, domain.ActionDecrement:
		s.transitions.WithLabelValues(actionType).Inc()
	default:
		s.transitions.WithLabelValues("unrecognized").Inc()
	}
}

// handleTransition applies a single action. Unknown action types are not an
// error: the reducer is total, so the response echoes the input state.
func (s *Server) handleTransition(w http.ResponseWriter, r *http.Request) {
	var req TransitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.requests.WithLabelValues("transition", "4xx").Inc()
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	next := s.reduce(req.State, req.Action)
	s.observe(req.Action.Type)
	s.requests.WithLabelValues("transition", "2xx").Inc()

	s.logger.Debug("transition applied",
		"type", req.Action.Type,
		"from", req.State.Count,
		"to", next.Count,
	)

	s.writeJSON(w, TransitionResponse{State: next})
}

// handleReplay folds a sequence of actions and returns every step.
func (s *Server) handleReplay(w http.ResponseWriter, r *http.Request) {
	var req ReplayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.requests.WithLabelValues("replay", "4xx").Inc()
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	steps := make([]domain.Step, 0, len(req.Actions)+1)
	state := req.State
	steps = append(steps, domain.Step{State: state})
	for _, a := range req.Actions {
		state = s.reduce(state, a)
		s.observe(a.Type)
		steps = append(steps, domain.Step{Action: a, State: state})
	}
	s.requests.WithLabelValues("replay", "2xx").Inc()

	s.logger.Debug("replay applied", "actions", len(req.Actions), "final", state.Count)

	s.writeJSON(w, ReplayResponse{Steps: steps})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.requests.WithLabelValues("healthz", "2xx").Inc()
	s.writeJSON(w, map[string]string{"status": "ok"})
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encode failed", "error", err)
	}
}
