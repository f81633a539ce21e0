// Package cli implements the command logic behind the ribbon binary.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/aretw0/ribbon"
	"github.com/aretw0/ribbon/internal/logging"
	"github.com/aretw0/ribbon/pkg/examples"
	"github.com/aretw0/ribbon/pkg/schema"
)

// RunOptions contains the configuration for the 'run' command.
type RunOptions struct {
	ProgramPath string // YAML/JSON definition file; empty when Example is set
	Example     string // embedded example ID
	Tape        string
	MaxSteps    int
	Headless    bool // run to completion instead of starting the REPL
	JSON        bool // machine snapshots as JSON (headless mode)
	Debug       bool
}

// Run handles the 'run' command: load the program, then either execute to
// completion (headless) or hand over to the interactive loop.
func Run(opts RunOptions) error {
	def, tape, err := resolveProgram(opts)
	if err != nil {
		return err
	}

	logger := logging.NewNop()
	if opts.Debug {
		logger = logging.New(logging.Level(true))
	}

	sess := ribbon.NewSession(
		ribbon.WithLogger(logger),
		ribbon.WithMaxSteps(opts.MaxSteps),
	)
	if _, err := sess.Load(def, tape); err != nil {
		return fmt.Errorf("failed to load program: %w", err)
	}

	if opts.Headless {
		return runHeadless(sess, opts)
	}
	return runInteractive(sess, tape)
}

// resolveProgram picks the definition source: an embedded example or a
// definition file. The tape falls back to the example's default input.
func resolveProgram(opts RunOptions) (*schema.Definition, string, error) {
	if opts.Example != "" {
		ex, ok := examples.Get(opts.Example)
		if !ok {
			return nil, "", fmt.Errorf("unknown example %q (try 'ribbon examples')", opts.Example)
		}
		tape := opts.Tape
		if tape == "" {
			tape = ex.DefaultInput
		}
		return ex.Definition, tape, nil
	}

	if opts.ProgramPath == "" {
		return nil, "", fmt.Errorf("a program file or --example is required")
	}
	def, err := schema.LoadFile(opts.ProgramPath)
	if err != nil {
		return nil, "", err
	}
	return def, opts.Tape, nil
}

func runHeadless(sess *ribbon.Session, opts RunOptions) error {
	res, err := sess.Run(opts.MaxSteps)
	if err != nil {
		return err
	}

	if opts.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Outcome string `json:"outcome"`
			Steps   int    `json:"steps_executed"`
			Tape    string `json:"tape"`
		}{
			Outcome: res.Outcome(),
			Steps:   res.StepsExecuted,
			Tape:    sess.State().Tape.String(),
		})
	}

	fmt.Printf("%s after %d steps\n", res.Outcome(), res.StepsExecuted)
	fmt.Printf("tape: %s\n", sess.State().Tape.String())
	return nil
}
