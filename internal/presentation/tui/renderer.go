// Package tui renders the machine for the terminal: the tape strip with
// the head highlighted, transition log lines, and the lesson deck.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"

	"github.com/aretw0/ribbon/pkg/domain"
)

// Renderer draws machine snapshots with the capabilities of the attached
// terminal. On dumb terminals the colors degrade to plain text.
type Renderer struct {
	profile termenv.Profile
	padding int
}

// NewRenderer creates a renderer using the detected color profile.
func NewRenderer(padding int) *Renderer {
	if padding <= 0 {
		padding = 5
	}
	return &Renderer{
		profile: termenv.ColorProfile(),
		padding: padding,
	}
}

// Tape renders the visible tape window as two lines: the cell strip and a
// head marker underneath.
func (r *Renderer) Tape(st *domain.MachineState) string {
	w := st.Tape.WindowAround(st.Head, r.padding)

	var cells strings.Builder
	var marker strings.Builder
	for _, c := range w.Cells {
		cell := fmt.Sprintf(" %s ", c.Symbol)
		if c.Position == w.Head {
			cells.WriteString(r.highlight(cell))
			marker.WriteString(" ▲ ")
		} else {
			cells.WriteString(cell)
			marker.WriteString("   ")
		}
	}
	return cells.String() + "\n" + marker.String()
}

// Status renders the one-line machine status: state, step count and halt
// verdict.
func (r *Renderer) Status(st *domain.MachineState) string {
	if !st.Halted {
		return fmt.Sprintf("state=%s steps=%d", r.state(string(st.CurrentState)), st.StepCount)
	}

	verdict := r.rejected("REJECTED")
	if st.Accepted {
		verdict = r.accepted("ACCEPTED")
	}
	reason := ""
	if st.LastTransition != nil && st.LastTransition.Reason != "" {
		reason = fmt.Sprintf(" (%s)", st.LastTransition.Reason)
	}
	return fmt.Sprintf("state=%s steps=%d %s%s", r.state(string(st.CurrentState)), st.StepCount, verdict, reason)
}

// Transition renders one log line for an executed step or halt event.
func (r *Renderer) Transition(rec *domain.TransitionRecord) string {
	if rec.Halted {
		return fmt.Sprintf("  halt in %s reading %q: %s", rec.FromState, rec.Read, rec.Reason)
	}
	return fmt.Sprintf("  %s --%s/%s,%s--> %s", rec.FromState, rec.Read, rec.Write, rec.Direction, rec.ToState)
}

// RunSummary renders the outcome line of a bounded run.
func (r *Renderer) RunSummary(res *domain.RunResult) string {
	switch {
	case res.BudgetExhausted:
		return fmt.Sprintf("still running after %d steps (budget exhausted)", res.StepsExecuted)
	case res.Accepted:
		return fmt.Sprintf("%s after %d steps", r.accepted("ACCEPTED"), res.StepsExecuted)
	default:
		return fmt.Sprintf("%s after %d steps", r.rejected("REJECTED"), res.StepsExecuted)
	}
}

func (r *Renderer) highlight(s string) string {
	return termenv.String(s).Foreground(r.profile.Color("#0f172a")).Background(r.profile.Color("#facc15")).String()
}

func (r *Renderer) state(s string) string {
	return termenv.String(s).Foreground(r.profile.Color("#818cf8")).Bold().String()
}

func (r *Renderer) accepted(s string) string {
	return termenv.String(s).Foreground(r.profile.Color("#4ade80")).Bold().String()
}

func (r *Renderer) rejected(s string) string {
	return termenv.String(s).Foreground(r.profile.Color("#fb7185")).Bold().String()
}

// NewMarkdownRenderer returns a function that renders lesson markdown
// using glamour, auto-detecting the light/dark background.
func NewMarkdownRenderer() func(string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
	)
	if err != nil {
		// Fall back to raw markdown when the terminal cannot be probed.
		return func(markdown string) (string, error) {
			return markdown, nil
		}
	}
	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}
