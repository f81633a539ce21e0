// Package examples is the built-in teaching content store: annotated
// example programs plus the lesson deck shown before the simulator. The
// content is compiled into the binary; hosts serve it read-only.
package examples

import (
	"github.com/aretw0/ribbon/pkg/schema"
)

// StateInfo annotates one machine state for rendering legends.
type StateInfo struct {
	Label       string `json:"label"`
	Emoji       string `json:"emoji"`
	Description string `json:"description"`
}

// RuleHint explains one transition before it fires, keyed by the
// "state,symbol" wire form of the rule.
type RuleHint struct {
	Action string `json:"action"`
	Why    string `json:"why"`
}

// Example is one annotated teaching program.
type Example struct {
	ID           string               `json:"id"`
	Name         string               `json:"name"`
	Description  string               `json:"description"`
	Goal         string               `json:"goal"`
	DefaultInput string               `json:"default_input"`
	States       map[string]StateInfo `json:"states,omitempty"`
	Hints        map[string]RuleHint  `json:"hints,omitempty"`
	Definition   *schema.Definition   `json:"program"`
}

// Summary is the list form of an example: just enough to pick one.
type Summary struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	DefaultInput string `json:"default_input"`
}

var catalog = []Example{
	{
		ID:           "binary_increment",
		Name:         "Add 1 to Binary Number",
		Description:  "Take a binary number and add 1 to it",
		Goal:         "Add 1 to the binary number",
		DefaultInput: "1011",
		States: map[string]StateInfo{
			"scan": {Label: "SCAN", Emoji: "🔍", Description: "Looking for the end of the number"},
			"add":  {Label: "ADD", Emoji: "➕", Description: "Adding 1 and handling carry"},
			"done": {Label: "DONE", Emoji: "✅", Description: "Finished!"},
		},
		Hints: map[string]RuleHint{
			"scan,0": {Action: "Keep the 0, move RIGHT, stay in SCAN", Why: "I'm still looking for the end of the number."},
			"scan,1": {Action: "Keep the 1, move RIGHT, stay in SCAN", Why: "I'm still looking for the end of the number."},
			"scan,_": {Action: "Stay here, move LEFT, switch to ADD", Why: "Found the end! Time to go back and start adding."},
			"add,0":  {Action: "Write 1, STOP, switch to DONE", Why: "0 + 1 = 1. No carry needed. We're done!"},
			"add,1":  {Action: "Write 0, move LEFT, stay in ADD", Why: "1 + 1 = 2 = '10' in binary. Write 0, carry the 1 left."},
			"add,_":  {Action: "Write 1, STOP, switch to DONE", Why: "No more digits, but we still have a carry. Write 1 here."},
		},
		Definition: &schema.Definition{
			InitialState: "scan",
			AcceptStates: []string{"done"},
			RejectStates: []string{},
			BlankSymbol:  "_",
			Transitions: map[string][]string{
				"scan,0": {"scan", "0", "R"},
				"scan,1": {"scan", "1", "R"},
				"scan,_": {"add", "_", "L"},
				"add,0":  {"done", "1", "N"},
				"add,1":  {"add", "0", "L"},
				"add,_":  {"done", "1", "N"},
			},
		},
	},
	{
		ID:           "bit_flip",
		Name:         "Flip Every Bit",
		Description:  "Walk the number once and turn every 0 into 1 and every 1 into 0",
		Goal:         "Invert all the bits",
		DefaultInput: "10110",
		States: map[string]StateInfo{
			"flip": {Label: "FLIP", Emoji: "🔄", Description: "Flipping bits left to right"},
			"done": {Label: "DONE", Emoji: "✅", Description: "Finished!"},
		},
		Hints: map[string]RuleHint{
			"flip,0": {Action: "Write 1, move RIGHT, stay in FLIP", Why: "0 becomes 1."},
			"flip,1": {Action: "Write 0, move RIGHT, stay in FLIP", Why: "1 becomes 0."},
			"flip,_": {Action: "Stay here, STOP, switch to DONE", Why: "Ran off the end of the input; everything is flipped."},
		},
		Definition: &schema.Definition{
			InitialState: "flip",
			AcceptStates: []string{"done"},
			RejectStates: []string{},
			BlankSymbol:  "_",
			Transitions: map[string][]string{
				"flip,0": {"flip", "1", "R"},
				"flip,1": {"flip", "0", "R"},
				"flip,_": {"done", "_", "N"},
			},
		},
	},
}

// List returns the catalog summaries in a stable order.
func List() []Summary {
	out := make([]Summary, len(catalog))
	for i, ex := range catalog {
		out[i] = Summary{
			ID:           ex.ID,
			Name:         ex.Name,
			Description:  ex.Description,
			DefaultInput: ex.DefaultInput,
		}
	}
	return out
}

// Get returns the example with the given ID. The boolean is false for an
// unknown ID.
func Get(id string) (Example, bool) {
	for _, ex := range catalog {
		if ex.ID == id {
			return ex, true
		}
	}
	return Example{}, false
}
