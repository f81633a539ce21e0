package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/aretw0/ribbon"
	"github.com/aretw0/ribbon/internal/presentation/tui"
	"github.com/aretw0/ribbon/pkg/domain"
)

// runInteractive drives the step-by-step REPL against one session.
func runInteractive(sess *ribbon.Session, initialTape string) error {
	tui.PrintBanner(ribbon.Version)

	render := tui.NewRenderer(5)
	out := os.Stdout

	fmt.Fprintln(out, "commands: step (s), run [n], undo (u), redo (r), reset [tape], rules, quit (q)")
	fmt.Fprintln(out)
	printMachine(out, render, sess)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "quit", "q", "exit":
			fmt.Fprintln(out, "Bye!")
			return nil

		case "step", "s":
			_, rec, err := sess.Step()
			if err != nil {
				printEngineError(out, err)
				continue
			}
			fmt.Fprintln(out, render.Transition(rec))
			printMachine(out, render, sess)

		case "run":
			budget := 0
			if len(args) > 0 {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					fmt.Fprintf(out, "run: %q is not a number\n", args[0])
					continue
				}
				budget = n
			}
			res, err := sess.Run(budget)
			if err != nil {
				printEngineError(out, err)
				continue
			}
			fmt.Fprintln(out, render.RunSummary(res))
			printMachine(out, render, sess)

		case "undo", "u":
			if _, err := sess.Undo(); err != nil {
				printEngineError(out, err)
				continue
			}
			printMachine(out, render, sess)

		case "redo", "r":
			if _, err := sess.Redo(); err != nil {
				printEngineError(out, err)
				continue
			}
			printMachine(out, render, sess)

		case "reset":
			tape := initialTape
			if len(args) > 0 {
				tape = args[0]
			}
			if _, err := sess.Reset(tape); err != nil {
				printEngineError(out, err)
				continue
			}
			printMachine(out, render, sess)

		case "rules", "program":
			printRules(out, sess)

		default:
			fmt.Fprintf(out, "unknown command %q\n", cmd)
		}
	}
}

func printMachine(out *os.File, render *tui.Renderer, sess *ribbon.Session) {
	st := sess.State()
	fmt.Fprintln(out, render.Tape(st))
	fmt.Fprintln(out, render.Status(st))
}

func printEngineError(out *os.File, err error) {
	switch {
	case errors.Is(err, domain.ErrAlreadyHalted):
		fmt.Fprintln(out, "machine is halted; use undo or reset")
	case errors.Is(err, domain.ErrNothingToUndo):
		fmt.Fprintln(out, "nothing to undo")
	case errors.Is(err, domain.ErrNothingToRedo):
		fmt.Fprintln(out, "nothing to redo")
	default:
		fmt.Fprintf(out, "error: %v\n", err)
	}
}

func printRules(out *os.File, sess *ribbon.Session) {
	prog := sess.Program()
	if prog == nil {
		fmt.Fprintln(out, "no program loaded")
		return
	}

	rules := prog.Rules()
	keys := make([]domain.TransitionKey, 0, len(rules))
	for k := range rules {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].State != keys[j].State {
			return keys[i].State < keys[j].State
		}
		return keys[i].Symbol < keys[j].Symbol
	})

	for _, k := range keys {
		r := rules[k]
		fmt.Fprintf(out, "  (%s, %s) -> (%s, %s, %s)\n", k.State, k.Symbol, r.Next, r.Write, r.Direction)
	}
}
