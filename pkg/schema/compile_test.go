package schema_test

import (
	"testing"

	"github.com/aretw0/ribbon/pkg/domain"
	"github.com/aretw0/ribbon/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDefinition() *schema.Definition {
	return &schema.Definition{
		InitialState: "scan",
		AcceptStates: []string{"done"},
		BlankSymbol:  "_",
		Transitions: map[string][]string{
			"scan,0": {"scan", "0", "R"},
			"scan,1": {"scan", "1", "R"},
			"scan,_": {"add", "_", "L"},
			"add,0":  {"done", "1", "N"},
			"add,1":  {"add", "0", "L"},
			"add,_":  {"done", "1", "N"},
		},
	}
}

func TestCompile_Valid(t *testing.T) {
	prog, err := schema.Compile(validDefinition())
	require.NoError(t, err)

	assert.Equal(t, domain.StateID("scan"), prog.InitialState())
	assert.Equal(t, domain.Symbol('_'), prog.Blank())
	assert.True(t, prog.IsAccept("done"))
	assert.False(t, prog.IsReject("done"))

	rule, ok := prog.Lookup("add", '1')
	require.True(t, ok)
	assert.Equal(t, domain.Rule{Next: "add", Write: '0', Direction: domain.Left}, rule)

	_, ok = prog.Lookup("add", 'x')
	assert.False(t, ok, "missing rule is a valid condition, not a default")
}

func TestCompile_DefaultsBlankSymbol(t *testing.T) {
	def := validDefinition()
	def.BlankSymbol = ""

	prog, err := schema.Compile(def)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultBlank, prog.Blank())
}

func TestCompile_MissingInitialState(t *testing.T) {
	def := validDefinition()
	def.InitialState = "  "

	_, err := schema.Compile(def)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "initial_state")
}

func TestCompile_MissingTransitions(t *testing.T) {
	def := validDefinition()
	def.Transitions = nil

	_, err := schema.Compile(def)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "transitions")
}

func TestCompile_EmptyTransitionTableIsValid(t *testing.T) {
	// A program whose initial state is an accept state needs no rules.
	def := &schema.Definition{
		InitialState: "done",
		AcceptStates: []string{"done"},
		Transitions:  map[string][]string{},
	}

	prog, err := schema.Compile(def)
	require.NoError(t, err)
	assert.True(t, prog.IsAccept("done"))
}

func TestCompile_InvalidDirection(t *testing.T) {
	def := validDefinition()
	def.Transitions["scan,0"] = []string{"scan", "0", "UP"}

	_, err := schema.Compile(def)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "direction")
}

func TestCompile_NormalizesDirectionTokens(t *testing.T) {
	def := validDefinition()
	def.Transitions["scan,0"] = []string{"scan", "0", "right"}

	prog, err := schema.Compile(def)
	require.NoError(t, err)

	rule, ok := prog.Lookup("scan", '0')
	require.True(t, ok)
	assert.Equal(t, domain.Right, rule.Direction)
}

func TestCompile_MalformedKey(t *testing.T) {
	def := validDefinition()
	def.Transitions["justastate"] = []string{"scan", "0", "R"}

	_, err := schema.Compile(def)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "justastate")
}

func TestCompile_DuplicateNormalizedKeys(t *testing.T) {
	def := validDefinition()
	def.Transitions["scan, 0"] = []string{"add", "1", "L"} // same key as "scan,0" after trim

	_, err := schema.Compile(def)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestCompile_MalformedTriple(t *testing.T) {
	def := validDefinition()
	def.Transitions["scan,0"] = []string{"scan", "0"}

	_, err := schema.Compile(def)
	require.Error(t, err)
}

func TestCompile_OverlappingAcceptReject(t *testing.T) {
	def := validDefinition()
	def.RejectStates = []string{"done"}

	_, err := schema.Compile(def)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "overlap")
}

func TestCompile_AggregatesErrors(t *testing.T) {
	def := validDefinition()
	def.InitialState = ""
	def.Transitions["scan,0"] = []string{"scan", "0", "UP"}

	_, err := schema.Compile(def)
	require.Error(t, err)
	assert.Len(t, schema.ValidationErrors(err), 2)
}

func TestCompile_AcceptOnlyStateIsValid(t *testing.T) {
	// "done" never appears on the left-hand side of a rule; that is how
	// acceptance halts are expressed.
	prog, err := schema.Compile(validDefinition())
	require.NoError(t, err)

	_, ok := prog.Lookup("done", '1')
	assert.False(t, ok)
	assert.True(t, prog.IsAccept("done"))
}
