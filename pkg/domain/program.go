package domain

// TransitionKey is the left-hand side of a rule: the state the machine is in
// and the symbol under the head.
type TransitionKey struct {
	State  StateID
	Symbol Symbol
}

// Rule is the right-hand side of a transition: which symbol to write, where
// to move the head, and which state to enter.
type Rule struct {
	Next      StateID
	Write     Symbol
	Direction Direction
}

// Program is an immutable, validated transition table plus machine metadata.
// It is built once by the schema compiler and consumed read-only by the
// runtime; there is at most one rule per (state, symbol) key, and the
// absence of a key is the meaningful halt-by-no-rule condition, not an
// error.
type Program struct {
	initialState StateID
	acceptStates map[StateID]struct{}
	rejectStates map[StateID]struct{}
	blank        Symbol
	transitions  map[TransitionKey]Rule
}

// NewProgram assembles a program from already-validated parts. Callers
// outside the schema compiler should go through schema.Compile, which
// rejects malformed definitions before this constructor ever runs.
func NewProgram(initial StateID, accept, reject []StateID, blank Symbol, transitions map[TransitionKey]Rule) *Program {
	p := &Program{
		initialState: initial,
		acceptStates: make(map[StateID]struct{}, len(accept)),
		rejectStates: make(map[StateID]struct{}, len(reject)),
		blank:        blank,
		transitions:  make(map[TransitionKey]Rule, len(transitions)),
	}
	for _, s := range accept {
		p.acceptStates[s] = struct{}{}
	}
	for _, s := range reject {
		p.rejectStates[s] = struct{}{}
	}
	for k, v := range transitions {
		p.transitions[k] = v
	}
	return p
}

// InitialState returns the state a freshly reset machine starts in.
func (p *Program) InitialState() StateID {
	return p.initialState
}

// Blank returns the program's blank symbol.
func (p *Program) Blank() Symbol {
	return p.blank
}

// IsAccept reports whether the state halts the machine as accepted.
func (p *Program) IsAccept(s StateID) bool {
	_, ok := p.acceptStates[s]
	return ok
}

// IsReject reports whether the state halts the machine as rejected.
func (p *Program) IsReject(s StateID) bool {
	_, ok := p.rejectStates[s]
	return ok
}

// Lookup consults the transition table. The boolean is false when no rule
// exists for the key, which the runtime treats as a no-rule halt.
func (p *Program) Lookup(state StateID, sym Symbol) (Rule, bool) {
	r, ok := p.transitions[TransitionKey{State: state, Symbol: sym}]
	return r, ok
}

// Rules returns a copy of the transition table, used by renderers to build
// rule legends and highlights. Mutating the copy does not affect the program.
func (p *Program) Rules() map[TransitionKey]Rule {
	out := make(map[TransitionKey]Rule, len(p.transitions))
	for k, v := range p.transitions {
		out[k] = v
	}
	return out
}

// States returns every state mentioned on either side of the table plus the
// initial, accept and reject states, deduplicated.
func (p *Program) States() []StateID {
	seen := map[StateID]struct{}{p.initialState: {}}
	for k, v := range p.transitions {
		seen[k.State] = struct{}{}
		seen[v.Next] = struct{}{}
	}
	for s := range p.acceptStates {
		seen[s] = struct{}{}
	}
	for s := range p.rejectStates {
		seen[s] = struct{}{}
	}
	out := make([]StateID, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	return out
}
