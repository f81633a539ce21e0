// Package runtime implements the machine execution engine: reset, single
// steps and bounded runs over a domain.MachineState.
package runtime

import (
	"log/slog"

	"github.com/aretw0/ribbon/internal/logging"
	"github.com/aretw0/ribbon/pkg/domain"
)

// DefaultMaxSteps is the run budget used when the caller passes none. It is
// the only protection against non-terminating programs.
const DefaultMaxSteps = 10000

// Engine advances a MachineState by applying a Program's transition
// function. It holds no machine state of its own; the caller owns the
// state, so one engine can serve any number of sessions.
type Engine struct {
	logger *slog.Logger
}

// Option configures the Engine.
type Option func(*Engine)

// WithLogger configures a structured logger for step events.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// NewEngine creates an engine. The default logger is a no-op.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Reset builds a fresh MachineState: initial state, tape seeded from
// tapeText with the head at position 0, zero steps, running.
func (e *Engine) Reset(prog *domain.Program, tapeText string) *domain.MachineState {
	return domain.NewMachineState(prog.InitialState(), tapeText, prog.Blank())
}

// Step executes one step, mutating st in place.
//
// The priority order is fixed: accept, then reject, then table lookup. A
// state that is both an accept state and a left-hand side of a rule halts
// as accepted without the table ever being consulted. Halting does not
// increment the step count.
//
// Stepping a machine that already halted returns domain.ErrAlreadyHalted
// with the state untouched, so callers cannot mistake a halted no-op for
// progress.
func (e *Engine) Step(st *domain.MachineState, prog *domain.Program) (*domain.TransitionRecord, error) {
	if st.Halted {
		return nil, domain.ErrAlreadyHalted
	}

	sym := st.ReadHead()

	switch {
	case prog.IsAccept(st.CurrentState):
		return e.halt(st, sym, domain.HaltAccepted), nil
	case prog.IsReject(st.CurrentState):
		return e.halt(st, sym, domain.HaltRejected), nil
	}

	rule, ok := prog.Lookup(st.CurrentState, sym)
	if !ok {
		return e.halt(st, sym, domain.HaltNoRule), nil
	}

	rec := &domain.TransitionRecord{
		FromState: st.CurrentState,
		Read:      sym.String(),
		ToState:   rule.Next,
		Write:     rule.Write.String(),
		Direction: rule.Direction,
	}

	st.Tape.Write(st.Head, rule.Write)
	st.Head += rule.Direction.Offset()
	st.CurrentState = rule.Next
	st.StepCount++
	st.LastTransition = rec

	e.logger.Debug("step executed",
		"from", rec.FromState,
		"read", rec.Read,
		"to", rec.ToState,
		"write", rec.Write,
		"direction", rec.Direction,
		"step", st.StepCount,
	)

	copied := *rec
	return &copied, nil
}

// halt marks the machine as terminally stopped and records the halt event.
func (e *Engine) halt(st *domain.MachineState, sym domain.Symbol, reason domain.HaltReason) *domain.TransitionRecord {
	st.Halted = true
	st.Accepted = reason == domain.HaltAccepted

	rec := &domain.TransitionRecord{
		FromState: st.CurrentState,
		Read:      sym.String(),
		Halted:    true,
		Reason:    reason,
	}
	st.LastTransition = rec

	e.logger.Debug("machine halted",
		"state", st.CurrentState,
		"reason", reason,
		"steps", st.StepCount,
	)

	copied := *rec
	return &copied
}

// Run repeatedly applies Step until the machine halts or its step count
// reaches maxSteps, whichever comes first. Exhausting the budget while
// still running is a distinct, reportable outcome, never reinterpreted as
// a halt. A non-positive maxSteps selects DefaultMaxSteps.
func (e *Engine) Run(st *domain.MachineState, prog *domain.Program, maxSteps int) (*domain.RunResult, error) {
	if st.Halted {
		return nil, domain.ErrAlreadyHalted
	}
	if maxSteps <= 0 {
		maxSteps = DefaultMaxSteps
	}

	start := st.StepCount
	var records []domain.TransitionRecord

	for !st.Halted && st.StepCount-start < maxSteps {
		rec, err := e.Step(st, prog)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}

	res := &domain.RunResult{
		Halted:          st.Halted,
		Accepted:        st.Accepted,
		StepsExecuted:   st.StepCount - start,
		BudgetExhausted: !st.Halted,
		Records:         records,
	}

	e.logger.Info("run finished",
		"outcome", res.Outcome(),
		"steps", res.StepsExecuted,
		"budget", maxSteps,
	)

	return res, nil
}
