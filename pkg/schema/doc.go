// Package schema defines the raw wire form of a machine definition and
// compiles it into a validated domain.Program.
//
// A Definition is the loosely typed shape that arrives from YAML files,
// JSON request bodies or plain maps: transition keys are "state,symbol"
// strings and rules are [next_state, write_symbol, direction] triples.
// Compile rejects malformed definitions at load time (missing fields, bad
// direction tokens, duplicate or unparseable keys, overlapping accept and
// reject sets) so the runtime never has to validate at lookup time.
//
// Basic usage:
//
//	def, err := schema.FromYAML(data)
//	if err != nil {
//	    // malformed document
//	}
//	prog, err := schema.Compile(def)
//	if err != nil {
//	    // one or more ValidationErrors, aggregated
//	}
//
// A failed Compile never yields a partially valid Program.
package schema
