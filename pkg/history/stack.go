// Package history implements the linear undo/redo timeline for machine
// snapshots. Every entry is an independent deep copy of a MachineState;
// later mutation of the live machine never alters a stored snapshot.
package history

import (
	"github.com/aretw0/ribbon/pkg/domain"
)

// DefaultMaxEntries bounds the undo stack; the oldest snapshots are
// discarded first once the cap is reached.
const DefaultMaxEntries = 1000

// History manages undo/redo state for one session. It is not safe for
// concurrent use; the owning session serializes access.
type History struct {
	undoStack []*domain.MachineState
	redoStack []*domain.MachineState

	maxEntries int
}

// New creates a history manager. A non-positive maxEntries selects
// DefaultMaxEntries.
func New(maxEntries int) *History {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &History{maxEntries: maxEntries}
}

// Push records the pre-step snapshot of a forward move. Taking a forward
// step after an undo invalidates the previously redoable future, so the
// redo stack is cleared.
func (h *History) Push(st *domain.MachineState) {
	h.undoStack = append(h.undoStack, st.Clone())
	h.redoStack = nil

	if len(h.undoStack) > h.maxEntries {
		excess := len(h.undoStack) - h.maxEntries
		h.undoStack = h.undoStack[excess:]
	}
}

// Undo pops the most recent snapshot, parking current on the redo stack,
// and returns the popped snapshot as the new current state. Returns
// domain.ErrNothingToUndo when the stack is empty; current is untouched.
func (h *History) Undo(current *domain.MachineState) (*domain.MachineState, error) {
	if len(h.undoStack) == 0 {
		return nil, domain.ErrNothingToUndo
	}

	top := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	h.redoStack = append(h.redoStack, current.Clone())

	return top, nil
}

// Redo is the symmetric inverse of Undo: it pops from the redo stack and
// parks current on the undo stack. Returns domain.ErrNothingToRedo when
// there is no future to restore.
func (h *History) Redo(current *domain.MachineState) (*domain.MachineState, error) {
	if len(h.redoStack) == 0 {
		return nil, domain.ErrNothingToRedo
	}

	top := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	h.undoStack = append(h.undoStack, current.Clone())

	return top, nil
}

// Clear empties both stacks. A reset starts a new timeline; the old one is
// no longer meaningful.
func (h *History) Clear() {
	h.undoStack = nil
	h.redoStack = nil
}

// CanUndo reports whether an undo is available.
func (h *History) CanUndo() bool {
	return len(h.undoStack) > 0
}

// CanRedo reports whether a redo is available.
func (h *History) CanRedo() bool {
	return len(h.redoStack) > 0
}

// Depth returns the number of undoable snapshots.
func (h *History) Depth() int {
	return len(h.undoStack)
}
