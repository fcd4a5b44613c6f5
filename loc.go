package rook

import "fmt"

// --- Constants ---

const (
	NumOfSquaresInBoard = 64 // Total squares on the board.
	NumOfFiles          = 8  // Number of files (columns).
	NumOfRanks          = 8  // Number of ranks (rows).
)

// Loc identifies a single square on the board.
//
// Squares use a Little-Endian Rank-File mapping: index = rank*8 + file, so
// A1 maps to 0, B1 maps to 1 and A2 maps to 8. Every Loc obtained through the
// constructors wraps a valid index; there is no way to build one that points
// off the board.
type Loc struct {
	index uint8
}

// NewLoc builds a Loc from zero-based rank and file coordinates.
// ok is false when either coordinate exceeds 7.
func NewLoc(rank, file uint8) (Loc, bool) {
	if rank|file >= NumOfFiles {
		return Loc{}, false
	}
	return Loc{index: rank*NumOfFiles + file}, true
}

// LocFromIndex builds a Loc from a LERF square index.
// ok is false when index exceeds 63.
func LocFromIndex(index uint8) (Loc, bool) {
	if index >= NumOfSquaresInBoard {
		return Loc{}, false
	}
	return Loc{index: index}, true
}

// Index returns the LERF index of the square.
func (l Loc) Index() uint8 { return l.index }

// RankFile returns the zero-based rank and file of the square.
func (l Loc) RankFile() (rank, file uint8) {
	return l.index / NumOfFiles, l.index % NumOfFiles
}

// Rank returns the zero-based rank of the square.
func (l Loc) Rank() uint8 { return l.index / NumOfFiles }

// File returns the zero-based file of the square.
func (l Loc) File() uint8 { return l.index % NumOfFiles }

// String renders the square in algebraic notation: the file letter followed
// by the 1-based rank. Index 0 prints as "A1", index 1 as "B1", index 8 as
// "A2".
func (l Loc) String() string {
	rank, file := l.RankFile()
	return fmt.Sprintf("%c%d", 'A'+file, 1+rank)
}

// --- Square Transforms ---

// FlipVertical mirrors the square across the horizontal center line (A1 <-> A8).
func FlipVertical(l Loc) Loc { return Loc{index: l.index ^ 56} }

// FlipHorizontal mirrors the square across the vertical center line (A1 <-> H1).
func FlipHorizontal(l Loc) Loc { return Loc{index: l.index ^ 7} }

// FlipDiagonal mirrors the square across the A1-H8 diagonal (A2 <-> B1).
func FlipDiagonal(l Loc) Loc {
	rank, file := l.RankFile()
	return Loc{index: file*NumOfFiles + rank}
}
