package domain

// HaltReason classifies why a machine halted.
type HaltReason string

const (
	// HaltAccepted means the machine reached a state in the accept set.
	HaltAccepted HaltReason = "accepted"
	// HaltRejected means the machine reached a state in the reject set.
	HaltRejected HaltReason = "rejected"
	// HaltNoRule means no transition existed for the current (state, symbol).
	HaltNoRule HaltReason = "no_rule"
)

// TransitionRecord is an immutable description of one executed step, or of
// the halt event that ended the machine. It is consumed by the history log
// and the renderers; the engine never reads it back.
type TransitionRecord struct {
	FromState StateID    `json:"from_state"`
	Read      string     `json:"read"`
	ToState   StateID    `json:"to_state,omitempty"`
	Write     string     `json:"write,omitempty"`
	Direction Direction  `json:"direction,omitempty"`
	Halted    bool       `json:"halted"`
	Reason    HaltReason `json:"reason,omitempty"`
}

// RunResult summarizes a bounded run. BudgetExhausted is a normal outcome,
// distinct from halting: the machine is still runnable, it just spent its
// step budget.
type RunResult struct {
	Halted          bool               `json:"halted"`
	Accepted        bool               `json:"accepted"`
	StepsExecuted   int                `json:"steps_executed"`
	BudgetExhausted bool               `json:"budget_exhausted"`
	Records         []TransitionRecord `json:"records,omitempty"`
}

// Outcome returns a short tag for logs and metrics: the halt reason, or
// "budget_exhausted" when the run stopped on the step budget.
func (r RunResult) Outcome() string {
	if r.BudgetExhausted {
		return "budget_exhausted"
	}
	if !r.Halted {
		return "running"
	}
	if r.Accepted {
		return string(HaltAccepted)
	}
	if len(r.Records) > 0 && r.Records[len(r.Records)-1].Reason == HaltNoRule {
		return string(HaltNoRule)
	}
	return string(HaltRejected)
}
