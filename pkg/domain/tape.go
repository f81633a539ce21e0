package domain

import (
	"sort"
	"strings"
)

// Tape is a sparse, bi-infinite tape. Cells are keyed by signed position
// with no bounds and no backing array; a position that was never written
// reads as the blank symbol. Writing the blank symbol erases the entry,
// which keeps Read unaffected and the non-blank enumeration minimal.
type Tape struct {
	cells map[int]Symbol
	blank Symbol
}

// NewTape creates an all-blank tape.
func NewTape(blank Symbol) *Tape {
	return &Tape{
		cells: make(map[int]Symbol),
		blank: blank,
	}
}

// TapeFromString seeds positions 0..len(text)-1 with the runes of text.
// An empty string yields an all-blank tape.
func TapeFromString(text string, blank Symbol) *Tape {
	t := NewTape(blank)
	for i, r := range []rune(text) {
		t.Write(i, Symbol(r))
	}
	return t
}

// Blank returns the tape's blank symbol.
func (t *Tape) Blank() Symbol {
	return t.blank
}

// Read returns the symbol at pos, or the blank symbol for unwritten cells.
func (t *Tape) Read(pos int) Symbol {
	if s, ok := t.cells[pos]; ok {
		return s
	}
	return t.blank
}

// Write stores sym at pos. Writing the blank symbol erases the cell.
func (t *Tape) Write(pos int, sym Symbol) {
	if sym == t.blank {
		delete(t.cells, pos)
		return
	}
	t.cells[pos] = sym
}

// Clone returns an independent copy. Snapshots taken for history must never
// share cell storage with the live tape.
func (t *Tape) Clone() *Tape {
	c := NewTape(t.blank)
	for pos, sym := range t.cells {
		c.cells[pos] = sym
	}
	return c
}

// Cell is one non-blank tape entry, used for rendering.
type Cell struct {
	Position int    `json:"position"`
	Symbol   string `json:"symbol"`
}

// Cells enumerates all non-blank positions in ascending order. This is the
// only ordering guarantee the tape offers.
func (t *Tape) Cells() []Cell {
	positions := make([]int, 0, len(t.cells))
	for pos := range t.cells {
		positions = append(positions, pos)
	}
	sort.Ints(positions)

	out := make([]Cell, len(positions))
	for i, pos := range positions {
		out[i] = Cell{Position: pos, Symbol: t.cells[pos].String()}
	}
	return out
}

// Bounds returns the lowest and highest non-blank position. The boolean is
// false for an all-blank tape.
func (t *Tape) Bounds() (min, max int, ok bool) {
	first := true
	for pos := range t.cells {
		if first {
			min, max, first = pos, pos, false
			continue
		}
		if pos < min {
			min = pos
		}
		if pos > max {
			max = pos
		}
	}
	return min, max, !first
}

// String renders the contiguous non-blank region, with interior gaps filled
// by the blank symbol. An all-blank tape renders as the empty string.
func (t *Tape) String() string {
	min, max, ok := t.Bounds()
	if !ok {
		return ""
	}
	var b strings.Builder
	for pos := min; pos <= max; pos++ {
		b.WriteRune(rune(t.Read(pos)))
	}
	return b.String()
}

// Window is a finite view of the tape around the head, padded with blanks,
// consumed by the tape renderers.
type Window struct {
	Cells []Cell `json:"cells"`
	Head  int    `json:"head_position"`
	Min   int    `json:"min_position"`
	Max   int    `json:"max_position"`
}

// WindowAround returns the tape segment covering every non-blank cell and
// the head, extended by padding blanks on each side.
func (t *Tape) WindowAround(head, padding int) Window {
	min, max, ok := t.Bounds()
	if !ok {
		min, max = head, head
	} else {
		if head < min {
			min = head
		}
		if head > max {
			max = head
		}
	}
	min -= padding
	max += padding

	cells := make([]Cell, 0, max-min+1)
	for pos := min; pos <= max; pos++ {
		cells = append(cells, Cell{Position: pos, Symbol: t.Read(pos).String()})
	}
	return Window{Cells: cells, Head: head, Min: min, Max: max}
}
