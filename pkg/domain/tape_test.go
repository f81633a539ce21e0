package domain_test

import (
	"testing"

	"github.com/aretw0/ribbon/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTape_ReadUnwrittenIsBlank(t *testing.T) {
	tape := domain.NewTape(domain.DefaultBlank)

	assert.Equal(t, domain.DefaultBlank, tape.Read(0))
	assert.Equal(t, domain.DefaultBlank, tape.Read(-100))
	assert.Equal(t, domain.DefaultBlank, tape.Read(100))
}

func TestTape_FromString(t *testing.T) {
	tape := domain.TapeFromString("1011", domain.DefaultBlank)

	assert.Equal(t, domain.Symbol('1'), tape.Read(0))
	assert.Equal(t, domain.Symbol('0'), tape.Read(1))
	assert.Equal(t, domain.Symbol('1'), tape.Read(2))
	assert.Equal(t, domain.Symbol('1'), tape.Read(3))
	assert.Equal(t, domain.DefaultBlank, tape.Read(4))
	assert.Equal(t, "1011", tape.String())
}

func TestTape_FromEmptyString(t *testing.T) {
	tape := domain.TapeFromString("", domain.DefaultBlank)

	_, _, ok := tape.Bounds()
	assert.False(t, ok)
	assert.Equal(t, "", tape.String())
}

func TestTape_NegativePositions(t *testing.T) {
	tape := domain.NewTape(domain.DefaultBlank)
	tape.Write(-3, 'a')
	tape.Write(2, 'b')

	min, max, ok := tape.Bounds()
	require.True(t, ok)
	assert.Equal(t, -3, min)
	assert.Equal(t, 2, max)
	// Interior gap filled with blanks.
	assert.Equal(t, "a____b", tape.String())
}

func TestTape_WriteBlankErases(t *testing.T) {
	tape := domain.TapeFromString("101", domain.DefaultBlank)
	tape.Write(0, domain.DefaultBlank)

	assert.Equal(t, domain.DefaultBlank, tape.Read(0))
	min, _, ok := tape.Bounds()
	require.True(t, ok)
	assert.Equal(t, 1, min, "erased cell should not count as written")
}

func TestTape_CellsAscending(t *testing.T) {
	tape := domain.NewTape(domain.DefaultBlank)
	tape.Write(5, 'c')
	tape.Write(-2, 'a')
	tape.Write(0, 'b')

	cells := tape.Cells()
	require.Len(t, cells, 3)
	assert.Equal(t, []domain.Cell{
		{Position: -2, Symbol: "a"},
		{Position: 0, Symbol: "b"},
		{Position: 5, Symbol: "c"},
	}, cells)
}

func TestTape_CloneIsIndependent(t *testing.T) {
	tape := domain.TapeFromString("11", domain.DefaultBlank)
	snapshot := tape.Clone()

	tape.Write(0, '0')
	tape.Write(7, 'x')

	assert.Equal(t, domain.Symbol('1'), snapshot.Read(0))
	assert.Equal(t, domain.DefaultBlank, snapshot.Read(7))
}

func TestTape_WindowAround(t *testing.T) {
	tape := domain.TapeFromString("10", domain.DefaultBlank)
	w := tape.WindowAround(0, 2)

	assert.Equal(t, -2, w.Min)
	assert.Equal(t, 3, w.Max)
	assert.Equal(t, 0, w.Head)
	require.Len(t, w.Cells, 6)
	assert.Equal(t, "_", w.Cells[0].Symbol)
	assert.Equal(t, "1", w.Cells[2].Symbol)
	assert.Equal(t, "0", w.Cells[3].Symbol)
}

func TestTape_WindowAroundEmptyTapeFollowsHead(t *testing.T) {
	tape := domain.NewTape(domain.DefaultBlank)
	w := tape.WindowAround(-10, 1)

	assert.Equal(t, -11, w.Min)
	assert.Equal(t, -9, w.Max)
	require.Len(t, w.Cells, 3)
}

func TestParseDirection(t *testing.T) {
	cases := []struct {
		raw  string
		want domain.Direction
	}{
		{"L", domain.Left},
		{"R", domain.Right},
		{"N", domain.Stay},
		{"left", domain.Left},
		{"right", domain.Right},
		{"stay", domain.Stay},
	}
	for _, tc := range cases {
		got, err := domain.ParseDirection(tc.raw)
		require.NoError(t, err, tc.raw)
		assert.Equal(t, tc.want, got)
	}

	_, err := domain.ParseDirection("up")
	assert.Error(t, err)
}

func TestMachineState_CloneIsIndependent(t *testing.T) {
	st := domain.NewMachineState("q0", "101", domain.DefaultBlank)
	st.LastTransition = &domain.TransitionRecord{FromState: "q0", Read: "1"}

	snap := st.Clone()

	st.CurrentState = "q1"
	st.Head = 3
	st.StepCount = 9
	st.Tape.Write(0, '0')
	st.LastTransition.FromState = "mutated"

	assert.Equal(t, domain.StateID("q0"), snap.CurrentState)
	assert.Equal(t, 0, snap.Head)
	assert.Equal(t, 0, snap.StepCount)
	assert.Equal(t, domain.Symbol('1'), snap.Tape.Read(0))
	assert.Equal(t, domain.StateID("q0"), snap.LastTransition.FromState)
}
