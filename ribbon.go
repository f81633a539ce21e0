package ribbon

import (
	"io"
	"log/slog"
	"sync"

	"github.com/aretw0/ribbon/internal/runtime"
	"github.com/aretw0/ribbon/pkg/domain"
	"github.com/aretw0/ribbon/pkg/history"
	"github.com/aretw0/ribbon/pkg/schema"
)

// Version is the library version reported by the CLI and the HTTP API.
var Version = "0.1.0"

// Session is the high-level entry point for the Ribbon library. It owns
// exactly one live machine state plus its undo/redo timeline, and applies a
// loaded program to it. Sessions are independent: nothing is shared between
// two Session values, so each user of a multi-user host gets their own.
//
// All methods serialize through an internal mutex, so a single Session may
// be shared with concurrent callers (e.g. an HTTP handler).
type Session struct {
	mu sync.Mutex

	program *domain.Program
	machine *domain.MachineState

	runtime *runtime.Engine
	history *history.History

	logger     *slog.Logger
	maxHistory int
	maxSteps   int
}

// Option defines a functional option for configuring a Session.
type Option func(*Session)

// WithLogger sets a structured logger. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithMaxHistory bounds the undo stack depth.
func WithMaxHistory(n int) Option {
	return func(s *Session) {
		s.maxHistory = n
	}
}

// WithMaxSteps sets the default run budget used when Run is called with a
// non-positive budget.
func WithMaxSteps(n int) Option {
	return func(s *Session) {
		s.maxSteps = n
	}
}

// NewSession creates an empty session. A program must be loaded with Load
// or LoadProgram before the machine can step.
func NewSession(opts ...Option) *Session {
	s := &Session{
		maxSteps: runtime.DefaultMaxSteps,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s.runtime = runtime.NewEngine(runtime.WithLogger(s.logger))
	s.history = history.New(s.maxHistory)
	return s
}

// Load compiles a raw definition, installs the resulting program and resets
// the machine onto the given tape. History is cleared: a load begins a new
// timeline.
func (s *Session) Load(def *schema.Definition, tape string) (*domain.MachineState, error) {
	prog, err := schema.Compile(def)
	if err != nil {
		return nil, err
	}
	return s.LoadProgram(prog, tape), nil
}

// LoadProgram installs an already-compiled program and resets onto tape.
func (s *Session) LoadProgram(prog *domain.Program, tape string) *domain.MachineState {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.program = prog
	s.machine = s.runtime.Reset(prog, tape)
	s.history.Clear()

	s.logger.Info("program loaded",
		"initial_state", prog.InitialState(),
		"tape", tape,
	)
	return s.machine.Clone()
}

// Reset rebuilds the machine from the loaded program and a fresh tape, and
// clears the history.
func (s *Session) Reset(tape string) (*domain.MachineState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.program == nil {
		return nil, domain.ErrNoProgram
	}

	s.machine = s.runtime.Reset(s.program, tape)
	s.history.Clear()
	return s.machine.Clone(), nil
}

// Step executes one transition. The pre-step state is snapshotted into
// history first, so the step can be undone. Stepping a halted machine
// returns domain.ErrAlreadyHalted and records nothing.
func (s *Session) Step() (*domain.MachineState, *domain.TransitionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.program == nil {
		return nil, nil, domain.ErrNoProgram
	}
	if s.machine.Halted {
		return nil, nil, domain.ErrAlreadyHalted
	}

	s.history.Push(s.machine)
	rec, err := s.runtime.Step(s.machine, s.program)
	if err != nil {
		return nil, nil, err
	}
	return s.machine.Clone(), rec, nil
}

// Run executes steps until the machine halts or the budget is exhausted.
// The whole run forms a single undoable unit: one history entry is pushed
// before the first step, and one undo restores the pre-run state. A
// non-positive maxSteps selects the session default.
func (s *Session) Run(maxSteps int) (*domain.RunResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.program == nil {
		return nil, domain.ErrNoProgram
	}
	if s.machine.Halted {
		return nil, domain.ErrAlreadyHalted
	}
	if maxSteps <= 0 {
		maxSteps = s.maxSteps
	}

	s.history.Push(s.machine)
	return s.runtime.Run(s.machine, s.program, maxSteps)
}

// Undo reverts the machine to the snapshot taken before the most recent
// forward move. The replaced state becomes redoable.
func (s *Session) Undo() (*domain.MachineState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.program == nil {
		return nil, domain.ErrNoProgram
	}

	restored, err := s.history.Undo(s.machine)
	if err != nil {
		return nil, err
	}
	s.machine = restored
	return s.machine.Clone(), nil
}

// Redo re-applies the most recently undone move.
func (s *Session) Redo() (*domain.MachineState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.program == nil {
		return nil, domain.ErrNoProgram
	}

	restored, err := s.history.Redo(s.machine)
	if err != nil {
		return nil, err
	}
	s.machine = restored
	return s.machine.Clone(), nil
}

// State returns a copy of the current machine state, or nil when no
// program has been loaded yet.
func (s *Session) State() *domain.MachineState {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.machine == nil {
		return nil
	}
	return s.machine.Clone()
}

// Program returns the loaded program, read-only by construction. Nil when
// nothing is loaded.
func (s *Session) Program() *domain.Program {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.program
}

// CanUndo reports whether an undo is available.
func (s *Session) CanUndo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.CanUndo()
}

// CanRedo reports whether a redo is available.
func (s *Session) CanRedo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.CanRedo()
}
