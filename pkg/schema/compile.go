package schema

import (
	"sort"
	"strings"

	"github.com/aretw0/ribbon/pkg/domain"
)

// Compile validates a raw Definition and builds the immutable
// domain.Program. It returns an AggregateError listing every problem found;
// a failed compile never yields a partially valid program.
func Compile(def *Definition) (*domain.Program, error) {
	var errs []error

	if def == nil {
		return nil, &ValidationError{Key: "definition", Reason: "is required"}
	}

	initial := strings.TrimSpace(def.InitialState)
	if initial == "" {
		errs = append(errs, &ValidationError{Key: "initial_state", Reason: "is required"})
	}

	blank := domain.DefaultBlank
	if def.BlankSymbol != "" {
		r, err := parseSymbol(def.BlankSymbol)
		if err != nil {
			errs = append(errs, &ValidationError{Key: "blank_symbol", Reason: "must be a single character", Value: def.BlankSymbol})
		} else {
			blank = r
		}
	}

	accept := toStateIDs(def.AcceptStates)
	reject := toStateIDs(def.RejectStates)
	if overlap := intersect(accept, reject); len(overlap) > 0 {
		errs = append(errs, &ValidationError{
			Key:    "accept_states",
			Reason: "must not overlap reject_states",
			Value:  overlap,
		})
	}

	if def.Transitions == nil {
		errs = append(errs, &ValidationError{Key: "transitions", Reason: "is required"})
		return nil, &AggregateError{Errors: errs}
	}

	// Sorted keys keep error output deterministic.
	keys := make([]string, 0, len(def.Transitions))
	for k := range def.Transitions {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	transitions := make(map[domain.TransitionKey]domain.Rule, len(keys))
	for _, raw := range keys {
		key, err := parseKey(raw)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		rule, err := parseRule(raw, def.Transitions[raw])
		if err != nil {
			errs = append(errs, err)
			continue
		}

		// The source format allows distinct strings ("q0,1" and "q0, 1")
		// that normalize to the same key; reject them explicitly.
		if _, dup := transitions[key]; dup {
			errs = append(errs, &ValidationError{Key: raw, Reason: "duplicate transition for (state, symbol)"})
			continue
		}
		transitions[key] = rule
	}

	if len(errs) > 0 {
		return nil, &AggregateError{Errors: errs}
	}

	return domain.NewProgram(domain.StateID(initial), accept, reject, blank, transitions), nil
}

// parseKey splits a "state,symbol" transition key.
func parseKey(raw string) (domain.TransitionKey, error) {
	parts := strings.SplitN(raw, ",", 2)
	if len(parts) != 2 {
		return domain.TransitionKey{}, &ValidationError{Key: raw, Reason: `transition key must be "state,symbol"`}
	}

	state := strings.TrimSpace(parts[0])
	if state == "" {
		return domain.TransitionKey{}, &ValidationError{Key: raw, Reason: "transition key has empty state"}
	}

	sym, err := parseSymbol(parts[1])
	if err != nil {
		return domain.TransitionKey{}, &ValidationError{Key: raw, Reason: "transition key symbol must be a single character", Value: parts[1]}
	}

	return domain.TransitionKey{State: domain.StateID(state), Symbol: sym}, nil
}

// parseRule validates a [next_state, write_symbol, direction] triple.
func parseRule(key string, triple []string) (domain.Rule, error) {
	if len(triple) != 3 {
		return domain.Rule{}, &ValidationError{Key: key, Reason: "rule must be [next_state, write_symbol, direction]", Value: triple}
	}

	next := strings.TrimSpace(triple[0])
	if next == "" {
		return domain.Rule{}, &ValidationError{Key: key, Reason: "rule has empty next_state"}
	}

	write, err := parseSymbol(triple[1])
	if err != nil {
		return domain.Rule{}, &ValidationError{Key: key, Reason: "write symbol must be a single character", Value: triple[1]}
	}

	dir, err := domain.ParseDirection(strings.TrimSpace(triple[2]))
	if err != nil {
		return domain.Rule{}, &ValidationError{Key: key, Reason: "invalid direction (want L, R or N)", Value: triple[2]}
	}

	return domain.Rule{Next: domain.StateID(next), Write: write, Direction: dir}, nil
}

func parseSymbol(raw string) (domain.Symbol, error) {
	trimmed := strings.TrimSpace(raw)
	runes := []rune(trimmed)
	if len(runes) != 1 {
		return 0, &ValidationError{Key: raw, Reason: "must be a single character"}
	}
	return domain.Symbol(runes[0]), nil
}

func toStateIDs(raw []string) []domain.StateID {
	out := make([]domain.StateID, 0, len(raw))
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, domain.StateID(s))
		}
	}
	return out
}

func intersect(a, b []domain.StateID) []string {
	set := make(map[domain.StateID]struct{}, len(a))
	for _, s := range a {
		set[s] = struct{}{}
	}
	var out []string
	for _, s := range b {
		if _, ok := set[s]; ok {
			out = append(out, string(s))
		}
	}
	sort.Strings(out)
	return out
}
