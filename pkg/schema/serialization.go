package schema

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// FromYAML decodes a YAML machine definition.
func FromYAML(data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("failed to parse YAML definition: %w", err)
	}
	return &def, nil
}

// FromJSON decodes a JSON machine definition.
func FromJSON(data []byte) (*Definition, error) {
	var def Definition
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("failed to parse JSON definition: %w", err)
	}
	return &def, nil
}

// FromMap decodes a plain map payload, as delivered by a decoded JSON
// request body whose "program" field is a nested mapping.
func FromMap(raw map[string]any) (*Definition, error) {
	var def Definition
	cfg := &mapstructure.DecoderConfig{
		Result:           &def,
		WeaklyTypedInput: true, // tolerate []any for the rule triples
	}
	dec, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build definition decoder: %w", err)
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to decode definition: %w", err)
	}
	return &def, nil
}

// LoadFile reads a definition from a YAML or JSON file, chosen by
// extension. Anything that is not .json is treated as YAML.
func LoadFile(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition file: %w", err)
	}

	if strings.ToLower(filepath.Ext(path)) == ".json" {
		return FromJSON(data)
	}
	return FromYAML(data)
}

// ToYAML renders a definition back to YAML, used by the CLI to print
// embedded examples.
func ToYAML(def *Definition) ([]byte, error) {
	data, err := yaml.Marshal(def)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal definition: %w", err)
	}
	return data, nil
}
