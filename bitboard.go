package rook

import (
	"fmt"
	"iter"
	"math/bits"
	"strings"
)

// Bitboard is a 64-bit set of board squares. Bit i set means the square with
// LERF index i is a member. Any bit pattern is a valid value; meaning is
// imposed by whoever holds the bitboard. Convert with Bitboard(raw) to wrap
// an arbitrary uint64 verbatim.
type Bitboard uint64

// --- Predefined Bitboard Constants ---

const (
	EmptyBB Bitboard = 0
	FullBB  Bitboard = ^EmptyBB // All squares set

	// Files (LSB = Rank 1)
	FileABB Bitboard = 0x0101010101010101
	FileBBB Bitboard = FileABB << 1
	FileCBB Bitboard = FileABB << 2
	FileDBB Bitboard = FileABB << 3
	FileEBB Bitboard = FileABB << 4
	FileFBB Bitboard = FileABB << 5
	FileGBB Bitboard = FileABB << 6
	FileHBB Bitboard = FileABB << 7

	// Ranks (LSB = File A)
	Rank1BB Bitboard = 0xFF
	Rank2BB Bitboard = Rank1BB << (8 * 1)
	Rank3BB Bitboard = Rank1BB << (8 * 2)
	Rank4BB Bitboard = Rank1BB << (8 * 3)
	Rank5BB Bitboard = Rank1BB << (8 * 4)
	Rank6BB Bitboard = Rank1BB << (8 * 5)
	Rank7BB Bitboard = Rank1BB << (8 * 6)
	Rank8BB Bitboard = Rank1BB << (8 * 7)

	// Square colors
	LightSquaresBB Bitboard = 0x55AA55AA55AA55AA // A1 is dark, B1 is light... H8 is dark
	DarkSquaresBB  Bitboard = ^LightSquaresBB
)

// --- Construction ---

// NewBitboard folds the given locations into a single bitboard. Duplicate
// locations are harmless; OR is idempotent.
func NewBitboard(locs []Loc) Bitboard {
	bb := EmptyBB
	for _, l := range locs {
		bb |= SquareBB(l)
	}
	return bb
}

// SquareBB returns a bitboard with only the given square set.
func SquareBB(l Loc) Bitboard { return 1 << l.Index() }

// --- Queries ---

// At reports whether the given square is a member.
func (b Bitboard) At(l Loc) bool { return b&SquareBB(l) != 0 }

// IsEmpty checks if the bitboard is empty.
func (b Bitboard) IsEmpty() bool { return b == 0 }

// PopCount counts the number of set bits.
func (b Bitboard) PopCount() int { return bits.OnesCount64(uint64(b)) }

// LSB returns the member with the lowest index. ok is false for an empty set.
func (b Bitboard) LSB() (Loc, bool) {
	if b == 0 {
		return Loc{}, false
	}
	// bits.TrailingZeros64 is undefined for input 0, hence the check above.
	return Loc{index: uint8(bits.TrailingZeros64(uint64(b)))}, true
}

// PopLSB returns the lowest member together with the set with that member
// removed. ok is false for an empty set, which is returned unchanged.
func (b Bitboard) PopLSB() (Loc, Bitboard, bool) {
	if b == 0 {
		return Loc{}, b, false
	}
	l := Loc{index: uint8(bits.TrailingZeros64(uint64(b)))}
	// b & (b-1) clears the lowest set bit
	return l, b & (b - 1), true
}

// --- Iteration ---

// Iter returns a lazy traversal over the members in ascending index order.
// The sequence walks a snapshot of the bitboard taken when Iter is called,
// so later changes to the original value do not affect a traversal in
// progress, and every call yields an independent, restartable sequence.
func (b Bitboard) Iter() iter.Seq[Loc] {
	return func(yield func(Loc) bool) {
		for bb := b; bb != EmptyBB; {
			l, next, _ := bb.PopLSB()
			if !yield(l) {
				return
			}
			bb = next
		}
	}
}

// Scan returns a slice of all members, ordered LSB to MSB.
func (b Bitboard) Scan() []Loc {
	locs := make([]Loc, 0, b.PopCount())
	for l := range b.Iter() {
		locs = append(locs, l)
	}
	return locs
}

// --- Set Algebra ---
// The named type keeps the native operators |, &, ^ and their assignment
// forms available; the methods below are their expression-friendly twins.

// And performs a bitwise AND operation.
func (b Bitboard) And(other Bitboard) Bitboard { return b & other }

// Or performs a bitwise OR operation.
func (b Bitboard) Or(other Bitboard) Bitboard { return b | other }

// Xor performs a bitwise XOR operation.
func (b Bitboard) Xor(other Bitboard) Bitboard { return b ^ other }

// Not performs a bitwise NOT operation.
func (b Bitboard) Not() Bitboard { return ^b }

// AndNot performs a bitwise AND NOT operation (b & ^other).
func (b Bitboard) AndNot(other Bitboard) Bitboard { return b &^ other }

// Reverse reverses the bits of the bitboard (A1 <-> H8).
func (b Bitboard) Reverse() Bitboard { return Bitboard(bits.Reverse64(uint64(b))) }

// --- Debugging ---

// String returns the 64-bit binary string representation (MSB=H8, LSB=A1).
func (b Bitboard) String() string {
	var sb strings.Builder
	for i := 63; i >= 0; i-- {
		if (uint64(b)>>i)&1 == 1 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Draw returns a string visually representing the bitboard on a board grid.
func (b Bitboard) Draw() string {
	var sb strings.Builder
	sb.WriteString("\n  a b c d e f g h\n")
	for rank := NumOfRanks - 1; rank >= 0; rank-- {
		sb.WriteString(fmt.Sprintf("%d ", rank+1))
		for file := 0; file < NumOfFiles; file++ {
			l, _ := NewLoc(uint8(rank), uint8(file))
			if b.At(l) {
				sb.WriteString("X ")
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteString(fmt.Sprintf("%d\n", rank+1))
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
