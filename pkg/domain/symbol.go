package domain

import "fmt"

// DefaultBlank is the blank symbol used when a program does not declare one.
const DefaultBlank Symbol = '_'

// Symbol is a single tape cell value drawn from a program's finite alphabet.
type Symbol rune

func (s Symbol) String() string {
	return string(rune(s))
}

// StateID identifies a machine state ("scan", "add", ...).
type StateID string

// Direction tells the head where to go after a write.
type Direction string

const (
	Left  Direction = "L"
	Right Direction = "R"
	Stay  Direction = "N"
)

// Offset returns the head displacement for the direction.
func (d Direction) Offset() int {
	switch d {
	case Left:
		return -1
	case Right:
		return 1
	default:
		return 0
	}
}

// ParseDirection normalizes a raw direction token.
// It accepts the literal encodings "L", "R" and "N" case-insensitively,
// plus the long forms used by hand-written definitions.
func ParseDirection(raw string) (Direction, error) {
	switch raw {
	case "L", "l", "left", "Left", "LEFT":
		return Left, nil
	case "R", "r", "right", "Right", "RIGHT":
		return Right, nil
	case "N", "n", "S", "s", "stay", "Stay", "STAY":
		return Stay, nil
	default:
		return "", fmt.Errorf("invalid direction %q (want L, R or N)", raw)
	}
}
