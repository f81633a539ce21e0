/*
Package ribbon is a deterministic single-tape Turing machine simulator
designed for teaching: it executes a validated transition table one step at
a time, reports a structured record for every transition, and can rewind to
any earlier step.

# Concept

A Session owns one live machine (state, sparse bi-infinite tape, head) plus
its undo/redo timeline. The loaded Program is an immutable transition
function; the engine applies it with a fixed priority order (accept state,
then reject state, then table lookup) and halting is terminal. Runs are
bounded by a step budget, the only protection against non-terminating
programs; exhausting the budget is a reportable outcome, not a halt.

Sessions are fully isolated from each other, and every history snapshot is
an independent deep copy, so undo and redo are exact inverses of the step
sequence.

# Usage

	def, err := schema.FromYAML(data)
	if err != nil {
		log.Fatal(err)
	}

	sess := ribbon.NewSession()
	if _, err := sess.Load(def, "1011"); err != nil {
		log.Fatal(err)
	}

	res, err := sess.Run(0) // default budget
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(res.Outcome(), sess.State().Tape)

The machine core is pure and synchronous; hosts decide how to expose it.
The repository ships two hosts built on the same Session type: an
interactive CLI ("ribbon run") and a JSON HTTP API ("ribbon serve").
*/
package ribbon
