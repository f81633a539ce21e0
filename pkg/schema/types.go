package schema

// Definition is the raw, loosely typed form of a machine program as it
// arrives over the wire or from a file. It uses "mapstructure" tags so the
// same struct decodes YAML documents, JSON bodies and plain maps.
//
// Transition keys are "state,symbol" strings; values are
// [next_state, write_symbol, direction] triples. Compile turns this shape
// into a strongly typed domain.Program, rejecting anything malformed.
type Definition struct {
	InitialState string              `json:"initial_state" yaml:"initial_state" mapstructure:"initial_state"`
	AcceptStates []string            `json:"accept_states" yaml:"accept_states" mapstructure:"accept_states"`
	RejectStates []string            `json:"reject_states" yaml:"reject_states" mapstructure:"reject_states"`
	BlankSymbol  string              `json:"blank_symbol" yaml:"blank_symbol" mapstructure:"blank_symbol"`
	Transitions  map[string][]string `json:"transitions" yaml:"transitions" mapstructure:"transitions"`
}
