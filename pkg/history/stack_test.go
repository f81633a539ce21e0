package history_test

import (
	"fmt"
	"testing"

	"github.com/aretw0/ribbon/pkg/domain"
	"github.com/aretw0/ribbon/pkg/history"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func state(id string, steps int) *domain.MachineState {
	st := domain.NewMachineState(domain.StateID(id), "101", domain.DefaultBlank)
	st.StepCount = steps
	return st
}

func TestHistory_UndoEmpty(t *testing.T) {
	h := history.New(0)

	_, err := h.Undo(state("q0", 0))
	assert.ErrorIs(t, err, domain.ErrNothingToUndo)
	assert.False(t, h.CanUndo())
}

func TestHistory_RedoEmpty(t *testing.T) {
	h := history.New(0)

	_, err := h.Redo(state("q0", 0))
	assert.ErrorIs(t, err, domain.ErrNothingToRedo)
	assert.False(t, h.CanRedo())
}

func TestHistory_UndoRestoresSnapshot(t *testing.T) {
	h := history.New(0)
	h.Push(state("q0", 0))

	restored, err := h.Undo(state("q1", 1))
	require.NoError(t, err)

	assert.Equal(t, domain.StateID("q0"), restored.CurrentState)
	assert.Equal(t, 0, restored.StepCount)
	assert.True(t, h.CanRedo())
	assert.False(t, h.CanUndo())
}

func TestHistory_RedoAfterUndoRoundTrips(t *testing.T) {
	h := history.New(0)
	h.Push(state("q0", 0))

	current := state("q1", 1)
	restored, err := h.Undo(current)
	require.NoError(t, err)

	back, err := h.Redo(restored)
	require.NoError(t, err)

	assert.Equal(t, domain.StateID("q1"), back.CurrentState)
	assert.Equal(t, 1, back.StepCount)
	assert.True(t, h.CanUndo())
	assert.False(t, h.CanRedo())
}

func TestHistory_PushClearsRedo(t *testing.T) {
	h := history.New(0)
	h.Push(state("q0", 0))

	restored, err := h.Undo(state("q1", 1))
	require.NoError(t, err)
	require.True(t, h.CanRedo())

	// Taking a new forward branch invalidates the old future.
	h.Push(restored)
	assert.False(t, h.CanRedo())

	_, err = h.Redo(restored)
	assert.ErrorIs(t, err, domain.ErrNothingToRedo)
}

func TestHistory_SnapshotsAreIndependent(t *testing.T) {
	h := history.New(0)

	live := state("q0", 0)
	h.Push(live)

	// Mutate the live state after pushing; the snapshot must not follow.
	live.CurrentState = "mutated"
	live.Tape.Write(0, 'X')
	live.StepCount = 99

	restored, err := h.Undo(live)
	require.NoError(t, err)
	assert.Equal(t, domain.StateID("q0"), restored.CurrentState)
	assert.Equal(t, 0, restored.StepCount)
	assert.Equal(t, domain.Symbol('1'), restored.Tape.Read(0))
}

func TestHistory_MaxEntriesDropsOldest(t *testing.T) {
	h := history.New(3)
	for i := 0; i < 5; i++ {
		h.Push(state(fmt.Sprintf("q%d", i), i))
	}

	assert.Equal(t, 3, h.Depth())

	// The three most recent snapshots survive, most recent first out.
	for want := 4; want >= 2; want-- {
		restored, err := h.Undo(state("live", 99))
		require.NoError(t, err)
		assert.Equal(t, domain.StateID(fmt.Sprintf("q%d", want)), restored.CurrentState)
	}
	_, err := h.Undo(state("live", 99))
	assert.ErrorIs(t, err, domain.ErrNothingToUndo)
}

func TestHistory_Clear(t *testing.T) {
	h := history.New(0)
	h.Push(state("q0", 0))
	_, err := h.Undo(state("q1", 1))
	require.NoError(t, err)

	h.Clear()
	assert.False(t, h.CanUndo())
	assert.False(t, h.CanRedo())
	assert.Equal(t, 0, h.Depth())
}
