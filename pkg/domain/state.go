package domain

// MachineState is the complete runtime snapshot of one machine session. One
// live instance exists per session; the runtime mutates it in place on each
// step, and the history manager stores independent clones of it.
type MachineState struct {
	// CurrentState is the state the machine is in.
	CurrentState StateID `json:"current_state"`

	// Tape holds the written cells; unwritten positions read as blank.
	Tape *Tape `json:"-"`

	// Head is the integer position currently under the head. It may be any
	// integer, including negative.
	Head int `json:"head_position"`

	// StepCount counts executed transitions. Halt checks do not increment it.
	StepCount int `json:"step_count"`

	// Halted is true once no further transition will execute.
	Halted bool `json:"halted"`

	// Accepted is meaningful only when Halted: true iff the halt was caused
	// by an accept state.
	Accepted bool `json:"accepted"`

	// LastTransition describes the most recently applied step or halt
	// event. Nil on a freshly reset machine.
	LastTransition *TransitionRecord `json:"last_transition,omitempty"`
}

// NewMachineState builds the state of a freshly reset machine: initial
// state, tape seeded from tapeText, head at 0, zero steps, running.
func NewMachineState(initial StateID, tapeText string, blank Symbol) *MachineState {
	return &MachineState{
		CurrentState: initial,
		Tape:         TapeFromString(tapeText, blank),
	}
}

// Clone returns a fully independent deep copy. Later mutation of the live
// state must never alter a stored snapshot, so the tape and the transition
// record are both copied.
func (m *MachineState) Clone() *MachineState {
	c := *m
	c.Tape = m.Tape.Clone()
	if m.LastTransition != nil {
		rec := *m.LastTransition
		c.LastTransition = &rec
	}
	return &c
}

// ReadHead returns the symbol currently under the head.
func (m *MachineState) ReadHead() Symbol {
	return m.Tape.Read(m.Head)
}
