package http

import (
	"sort"

	"github.com/aretw0/ribbon"
	"github.com/aretw0/ribbon/pkg/domain"
)

// tapePadding is how many blank cells flank the rendered tape segment.
const tapePadding = 5

// MachineView is the JSON shape of a machine snapshot: the windowed tape
// segment around the head plus the halt flags, mirroring what the web
// renderer consumes.
type MachineView struct {
	Tape           domain.Window            `json:"tape"`
	CurrentState   domain.StateID           `json:"current_state"`
	Halted         bool                     `json:"halted"`
	Accepted       bool                     `json:"accepted"`
	StepCount      int                      `json:"step_count"`
	LastTransition *domain.TransitionRecord `json:"last_transition,omitempty"`
}

// ProgramView is the JSON shape of the loaded program, used by the
// renderer for rule highlights and state legends.
type ProgramView struct {
	InitialState domain.StateID      `json:"initial_state"`
	BlankSymbol  string              `json:"blank_symbol"`
	States       []domain.StateID    `json:"states"`
	Transitions  map[string][]string `json:"transitions"`
}

// StateView is a machine snapshot plus the history affordances.
type StateView struct {
	Success bool        `json:"success"`
	Machine MachineView `json:"machine"`
	CanUndo bool        `json:"can_undo"`
	CanRedo bool        `json:"can_redo"`
}

// RunView wraps a run outcome with the resulting snapshot.
type RunView struct {
	Success bool              `json:"success"`
	Result  *domain.RunResult `json:"result"`
	Machine MachineView       `json:"machine"`
	CanUndo bool              `json:"can_undo"`
	CanRedo bool              `json:"can_redo"`
}

// errorView is the structured error body for recoverable conditions.
type errorView struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func machineView(st *domain.MachineState) MachineView {
	return MachineView{
		Tape:           st.Tape.WindowAround(st.Head, tapePadding),
		CurrentState:   st.CurrentState,
		Halted:         st.Halted,
		Accepted:       st.Accepted,
		StepCount:      st.StepCount,
		LastTransition: st.LastTransition,
	}
}

func stateView(sess *ribbon.Session, st *domain.MachineState) StateView {
	return StateView{
		Success: true,
		Machine: machineView(st),
		CanUndo: sess.CanUndo(),
		CanRedo: sess.CanRedo(),
	}
}

func programView(prog *domain.Program) ProgramView {
	states := prog.States()
	sort.Slice(states, func(i, j int) bool { return states[i] < states[j] })

	transitions := make(map[string][]string)
	for key, rule := range prog.Rules() {
		wire := string(key.State) + "," + key.Symbol.String()
		transitions[wire] = []string{string(rule.Next), rule.Write.String(), string(rule.Direction)}
	}

	return ProgramView{
		InitialState: prog.InitialState(),
		BlankSymbol:  prog.Blank().String(),
		States:       states,
		Transitions:  transitions,
	}
}
