package rook

import (
	"errors"
	"fmt"
)

// Corruption sub-kinds reported by Board.At. Match with errors.Is.
var (
	// ErrTwoColors marks a square claimed by both color masks.
	ErrTwoColors = errors.New("two colors on one square")

	// ErrKindlessColor marks a square with a color bit but no kind bit.
	ErrKindlessColor = errors.New("color with no matching piece kind")
)

// CorruptionError reports that the eight masks of a Board contradict each
// other at one square. It signals a bug in whoever assembled the board, not
// a legal game state; callers may log the position and move on.
type CorruptionError struct {
	Loc Loc
	Err error
}

func (e *CorruptionError) Error() string {
	return fmt.Sprintf("board corruption at %s: %s", e.Loc, e.Err)
}

func (e *CorruptionError) Unwrap() error { return e.Err }
