package rook

import (
	"fmt"
	"strings"
)

// PieceKind enumerates the chess piece types. The zero value NoPieceKind
// stands for "no piece" and is what Board.At reports for an empty square.
type PieceKind uint8

const (
	NoPieceKind PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// kindScanOrder fixes the order in which Board.At probes the kind masks.
// The order carries no meaning beyond determinism.
var kindScanOrder = [...]PieceKind{Pawn, Knight, Bishop, Rook, Queen, King}

func (k PieceKind) String() string {
	switch k {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "NoPieceKind"
	}
}

// Piece pairs a piece kind with its color. The zero value means "no piece".
// Pieces are transient: they move in and out of the query and builder APIs,
// but a Board never stores them directly.
type Piece struct {
	Kind  PieceKind
	White bool
}

// IsEmpty reports whether p stands for an unoccupied square.
func (p Piece) IsEmpty() bool { return p.Kind == NoPieceKind }

func (p Piece) String() string {
	if p.IsEmpty() {
		return "empty"
	}
	color := "black"
	if p.White {
		color = "white"
	}
	return color + " " + strings.ToLower(p.Kind.String())
}

// glyph returns the one-letter FEN-style piece character, uppercase for white.
func (p Piece) glyph() string {
	var c byte
	switch p.Kind {
	case Pawn:
		c = 'p'
	case Knight:
		c = 'n'
	case Bishop:
		c = 'b'
	case Rook:
		c = 'r'
	case Queen:
		c = 'q'
	case King:
		c = 'k'
	default:
		return "."
	}
	if p.White {
		c -= 'a' - 'A'
	}
	return string(c)
}

// A Board describes complete piece placement as eight overlapping bitboards:
// one mask per color and one per piece kind. The layout is denormalized on
// purpose so that per-kind and per-color queries are single mask reads; the
// cost is a pair of invariants (at most one color bit per square, exactly one
// kind bit under every color bit) that the builder does not enforce. At
// detects violations lazily and reports them as CorruptionError values.
//
// A Board does not track turn to move, castling rights, en passant or move
// history; that state belongs to a game layer built on top of it.
//
// Boards are immutable values: copying one yields an independent snapshot.
type Board struct {
	white Bitboard
	black Bitboard

	pawns   Bitboard
	knights Bitboard
	bishops Bitboard
	rooks   Bitboard
	queens  Bitboard
	kings   Bitboard
}

// --- Mask Accessors ---

// KindBB returns the occupancy mask for a piece kind, both colors included.
// NoPieceKind maps to the empty bitboard.
func (b Board) KindBB(k PieceKind) Bitboard {
	switch k {
	case Pawn:
		return b.pawns
	case Knight:
		return b.knights
	case Bishop:
		return b.bishops
	case Rook:
		return b.rooks
	case Queen:
		return b.queens
	case King:
		return b.kings
	default:
		return EmptyBB
	}
}

// ColorBB returns the occupancy mask for one color, every kind included.
func (b Board) ColorBB(white bool) Bitboard {
	if white {
		return b.white
	}
	return b.black
}

// Occupied returns the mask of all occupied squares.
func (b Board) Occupied() Bitboard { return b.white | b.black }

// --- Queries ---

// At returns the piece on the given square. An empty square yields the zero
// Piece and a nil error. A CorruptionError is returned when the masks
// contradict each other at the square: both color bits set (ErrTwoColors),
// or a color bit with no kind bit under it (ErrKindlessColor). Corruption
// means the board was assembled incorrectly; it is reported to the caller
// and never hidden behind an empty-square result.
func (b Board) At(l Loc) (Piece, error) {
	white, black := b.white.At(l), b.black.At(l)
	switch {
	case !white && !black:
		return Piece{}, nil
	case white && black:
		return Piece{}, &CorruptionError{Loc: l, Err: ErrTwoColors}
	}

	for _, k := range kindScanOrder {
		if b.KindBB(k).At(l) {
			return Piece{Kind: k, White: white}, nil
		}
	}
	return Piece{}, &CorruptionError{Loc: l, Err: ErrKindlessColor}
}

// Pieces returns all squares holding exactly the given kind and color. An
// empty result is an ordinary value, not a failure.
func (b Board) Pieces(p Piece) Bitboard {
	return b.KindBB(p.Kind) & b.ColorBB(p.White)
}

// --- Transforms ---

// FlipDirection selects the axis for Board.Flip.
type FlipDirection int

const (
	UpDown    FlipDirection = iota // mirror rank values
	LeftRight                      // mirror file values
)

// Flip mirrors the board across the horizontal or vertical center line.
// Corruption on any occupied square aborts the transform with that error.
func (b Board) Flip(fd FlipDirection) (Board, error) {
	return b.rebuild(func(l Loc) Loc {
		if fd == UpDown {
			return FlipVertical(l)
		}
		return FlipHorizontal(l)
	})
}

// Transpose mirrors the board across the A1-H8 diagonal.
func (b Board) Transpose() (Board, error) {
	return b.rebuild(FlipDiagonal)
}

// Rotate rotates the board 90 degrees.
func (b Board) Rotate() (Board, error) {
	flipped, err := b.Flip(UpDown)
	if err != nil {
		return Board{}, err
	}
	return flipped.Transpose()
}

func (b Board) rebuild(move func(Loc) Loc) (Board, error) {
	builder := NewBoardBuilder()
	for l := range b.Occupied().Iter() {
		p, err := b.At(l)
		if err != nil {
			return Board{}, err
		}
		builder.AddPiece(p, move(l))
	}
	return builder.Build(), nil
}

// --- Debugging ---

// Draw returns a printable grid of the board useful for debugging. Empty
// squares show as dots and corrupt squares as question marks, so the output
// is available even for a malformed board.
func (b Board) Draw() string {
	var sb strings.Builder
	sb.WriteString("\n  a b c d e f g h\n")
	for rank := NumOfRanks - 1; rank >= 0; rank-- {
		sb.WriteString(fmt.Sprintf("%d ", rank+1))
		for file := 0; file < NumOfFiles; file++ {
			l, _ := NewLoc(uint8(rank), uint8(file))
			p, err := b.At(l)
			switch {
			case err != nil:
				sb.WriteString("? ")
			case p.IsEmpty():
				sb.WriteString(". ")
			default:
				sb.WriteString(p.glyph() + " ")
			}
		}
		sb.WriteString(fmt.Sprintf("%d\n", rank+1))
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}

// --- Builder ---

// A BoardBuilder accumulates piece placements for a Board. It is meant for
// exclusive single-owner use while one position is assembled; Build may be
// called any number of times and each call returns an independent snapshot.
type BoardBuilder struct {
	board Board
}

// NewBoardBuilder returns a builder with every mask empty.
func NewBoardBuilder() *BoardBuilder {
	return &BoardBuilder{}
}

// AddPiece sets the square's bit in the kind mask and the color mask for the
// piece, and returns the builder for chaining. Placements are blind ORs with
// no validation: stacking placements on one square produces a Board whose At
// reports corruption for that square instead of failing here. A piece with
// NoPieceKind stamps only its color bit, which likewise reads back as
// corruption.
func (bb *BoardBuilder) AddPiece(p Piece, l Loc) *BoardBuilder {
	sq := SquareBB(l)

	switch p.Kind {
	case Pawn:
		bb.board.pawns |= sq
	case Knight:
		bb.board.knights |= sq
	case Bishop:
		bb.board.bishops |= sq
	case Rook:
		bb.board.rooks |= sq
	case Queen:
		bb.board.queens |= sq
	case King:
		bb.board.kings |= sq
	}

	if p.White {
		bb.board.white |= sq
	} else {
		bb.board.black |= sq
	}
	return bb
}

// Build returns the accumulated placement as an immutable snapshot. The
// builder keeps its state and may be reused to stamp out further boards;
// mutating it later never affects a previously built Board.
func (bb *BoardBuilder) Build() Board {
	return bb.board
}
