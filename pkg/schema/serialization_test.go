package schema_test

import (
	"testing"

	"github.com/aretw0/ribbon/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlDefinition = `
initial_state: scan
accept_states: [done]
blank_symbol: "_"
transitions:
  "scan,1": [scan, "1", R]
  "scan,_": [done, "_", N]
`

func TestFromYAML(t *testing.T) {
	def, err := schema.FromYAML([]byte(yamlDefinition))
	require.NoError(t, err)

	assert.Equal(t, "scan", def.InitialState)
	assert.Equal(t, []string{"done"}, def.AcceptStates)
	assert.Equal(t, []string{"scan", "1", "R"}, def.Transitions["scan,1"])

	_, err = schema.Compile(def)
	assert.NoError(t, err)
}

func TestFromYAML_Malformed(t *testing.T) {
	_, err := schema.FromYAML([]byte("transitions: [not, a, map"))
	assert.Error(t, err)
}

func TestFromJSON(t *testing.T) {
	body := `{
		"initial_state": "q0",
		"accept_states": ["halt"],
		"transitions": {"q0,1": ["halt", "1", "N"]}
	}`

	def, err := schema.FromJSON([]byte(body))
	require.NoError(t, err)
	assert.Equal(t, "q0", def.InitialState)

	_, err = schema.Compile(def)
	assert.NoError(t, err)
}

func TestFromMap(t *testing.T) {
	raw := map[string]any{
		"initial_state": "q0",
		"accept_states": []any{"halt"},
		"blank_symbol":  "_",
		"transitions": map[string]any{
			"q0,1": []any{"halt", "1", "N"},
		},
	}

	def, err := schema.FromMap(raw)
	require.NoError(t, err)
	assert.Equal(t, "q0", def.InitialState)
	assert.Equal(t, []string{"halt", "1", "N"}, def.Transitions["q0,1"])
}

func TestToYAML_RoundTrip(t *testing.T) {
	def := &schema.Definition{
		InitialState: "q0",
		AcceptStates: []string{"halt"},
		BlankSymbol:  "_",
		Transitions:  map[string][]string{"q0,1": {"halt", "1", "N"}},
	}

	data, err := schema.ToYAML(def)
	require.NoError(t, err)

	back, err := schema.FromYAML(data)
	require.NoError(t, err)
	assert.Equal(t, def, back)
}
