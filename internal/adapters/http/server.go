// Package http exposes the machine sessions as a JSON API. Each request is
// routed to the caller's session (X-Ribbon-Session header, "default"
// otherwise); engine conditions like "already halted" or "nothing to undo"
// come back as structured 409 bodies, never as silent no-ops.
package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aretw0/ribbon"
	"github.com/aretw0/ribbon/internal/logging"
	"github.com/aretw0/ribbon/pkg/domain"
	"github.com/aretw0/ribbon/pkg/examples"
	"github.com/aretw0/ribbon/pkg/observability"
	"github.com/aretw0/ribbon/pkg/schema"
	"github.com/aretw0/ribbon/pkg/session"
	"github.com/go-chi/chi/v5"
)

// SessionHeader selects the caller's session; absent means the shared
// default session, which keeps single-user curl workflows simple.
const SessionHeader = "X-Ribbon-Session"

const defaultSessionID = "default"

// Server handles the API routes against a session manager.
type Server struct {
	sessions *session.Manager
	logger   *slog.Logger
	metrics  *observability.Metrics
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithMetrics wires Prometheus instrumentation and mounts /metrics.
func WithMetrics(metrics *observability.Metrics) Option {
	return func(s *Server) {
		s.metrics = metrics
	}
}

// NewHandler creates the HTTP handler for the API.
func NewHandler(sessions *session.Manager, opts ...Option) http.Handler {
	s := &Server{
		sessions: sessions,
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Post("/load", s.Load)
		r.Post("/step", s.Step)
		r.Post("/run", s.Run)
		r.Post("/reset", s.Reset)
		r.Post("/undo", s.Undo)
		r.Post("/redo", s.Redo)
		r.Get("/state", s.State)
		r.Get("/program", s.Program)
		r.Get("/examples", s.Examples)
		r.Get("/examples/{id}", s.Example)
		r.Get("/lessons", s.Lessons)
		r.Get("/health", s.Health)
	})
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	}

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+SessionHeader)
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) session(r *http.Request) *ribbon.Session {
	id := r.Header.Get(SessionHeader)
	if id == "" {
		id = defaultSessionID
	}
	return s.sessions.GetOrCreate(id)
}

// Load handles POST /api/load: compile a program and seed the tape.
func (s *Server) Load(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Program map[string]any `json:"program"`
		Tape    string         `json:"tape"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.fail(w, r, "load", http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	if body.Program == nil {
		s.fail(w, r, "load", http.StatusBadRequest, errors.New("no program provided"))
		return
	}

	def, err := schema.FromMap(body.Program)
	if err != nil {
		s.fail(w, r, "load", http.StatusBadRequest, err)
		return
	}

	sess := s.session(r)
	st, err := sess.Load(def, body.Tape)
	if err != nil {
		s.fail(w, r, "load", http.StatusBadRequest, err)
		return
	}

	s.respond(w, r, "load", http.StatusOK, struct {
		StateView
		Program ProgramView `json:"program"`
	}{
		StateView: stateView(sess, st),
		Program:   programView(sess.Program()),
	})
}

// Step handles POST /api/step: one transition on the caller's session.
func (s *Server) Step(w http.ResponseWriter, r *http.Request) {
	sess := s.session(r)

	st, rec, err := sess.Step()
	if err != nil {
		s.engineError(w, r, "step", err)
		return
	}
	s.metrics.ObserveSteps(1)

	s.respond(w, r, "step", http.StatusOK, struct {
		StateView
		Transition *domain.TransitionRecord `json:"transition"`
	}{
		StateView:  stateView(sess, st),
		Transition: rec,
	})
}

// Run handles POST /api/run: bounded execution until halt or budget.
func (s *Server) Run(w http.ResponseWriter, r *http.Request) {
	var body struct {
		MaxSteps int `json:"max_steps"`
	}
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			s.fail(w, r, "run", http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
			return
		}
	}

	sess := s.session(r)
	res, err := sess.Run(body.MaxSteps)
	if err != nil {
		s.engineError(w, r, "run", err)
		return
	}
	s.metrics.ObserveSteps(res.StepsExecuted)
	s.metrics.ObserveRun(res.Outcome())

	s.respond(w, r, "run", http.StatusOK, RunView{
		Success: true,
		Result:  res,
		Machine: machineView(sess.State()),
		CanUndo: sess.CanUndo(),
		CanRedo: sess.CanRedo(),
	})
}

// Reset handles POST /api/reset: same program, fresh tape, new timeline.
func (s *Server) Reset(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Tape string `json:"tape"`
	}
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			s.fail(w, r, "reset", http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
			return
		}
	}

	sess := s.session(r)
	st, err := sess.Reset(body.Tape)
	if err != nil {
		s.engineError(w, r, "reset", err)
		return
	}

	s.respond(w, r, "reset", http.StatusOK, stateView(sess, st))
}

// Undo handles POST /api/undo.
func (s *Server) Undo(w http.ResponseWriter, r *http.Request) {
	sess := s.session(r)

	st, err := sess.Undo()
	if err != nil {
		s.engineError(w, r, "undo", err)
		return
	}
	s.respond(w, r, "undo", http.StatusOK, stateView(sess, st))
}

// Redo handles POST /api/redo.
func (s *Server) Redo(w http.ResponseWriter, r *http.Request) {
	sess := s.session(r)

	st, err := sess.Redo()
	if err != nil {
		s.engineError(w, r, "redo", err)
		return
	}
	s.respond(w, r, "redo", http.StatusOK, stateView(sess, st))
}

// State handles GET /api/state: the current snapshot, read-only.
func (s *Server) State(w http.ResponseWriter, r *http.Request) {
	sess := s.session(r)

	st := sess.State()
	if st == nil {
		s.engineError(w, r, "state", domain.ErrNoProgram)
		return
	}
	s.respond(w, r, "state", http.StatusOK, stateView(sess, st))
}

// Program handles GET /api/program: the loaded transition table.
func (s *Server) Program(w http.ResponseWriter, r *http.Request) {
	sess := s.session(r)

	prog := sess.Program()
	if prog == nil {
		s.engineError(w, r, "program", domain.ErrNoProgram)
		return
	}
	s.respond(w, r, "program", http.StatusOK, programView(prog))
}

// Examples handles GET /api/examples.
func (s *Server) Examples(w http.ResponseWriter, r *http.Request) {
	s.respond(w, r, "examples", http.StatusOK, examples.List())
}

// Example handles GET /api/examples/{id}.
func (s *Server) Example(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	ex, ok := examples.Get(id)
	if !ok {
		s.fail(w, r, "example", http.StatusNotFound, fmt.Errorf("example %q not found", id))
		return
	}
	s.respond(w, r, "example", http.StatusOK, ex)
}

// Lessons handles GET /api/lessons.
func (s *Server) Lessons(w http.ResponseWriter, r *http.Request) {
	s.respond(w, r, "lessons", http.StatusOK, examples.Lessons())
}

// Health handles GET /api/health.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	s.respond(w, r, "health", http.StatusOK, map[string]string{
		"status":  "ok",
		"version": ribbon.Version,
	})
}

// engineError maps recoverable engine conditions to structured 409 bodies
// so callers can tell "already halted" from a transport failure.
func (s *Server) engineError(w http.ResponseWriter, r *http.Request, route string, err error) {
	switch {
	case errors.Is(err, domain.ErrAlreadyHalted),
		errors.Is(err, domain.ErrNothingToUndo),
		errors.Is(err, domain.ErrNothingToRedo),
		errors.Is(err, domain.ErrNoProgram):
		s.fail(w, r, route, http.StatusConflict, err)
	default:
		s.fail(w, r, route, http.StatusInternalServerError, err)
	}
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, route string, code int, err error) {
	s.logger.Warn("request failed", "route", route, "status", code, "error", err)
	s.metrics.ObserveRequest(route, strconv.Itoa(code))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if encErr := json.NewEncoder(w).Encode(errorView{Error: err.Error()}); encErr != nil {
		s.logger.Error("error response encode failed", "route", route, "error", encErr)
	}
}

func (s *Server) respond(w http.ResponseWriter, r *http.Request, route string, code int, payload any) {
	s.metrics.ObserveRequest(route, strconv.Itoa(code))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("response encode failed", "route", route, "error", err)
	}
}
