// Package board holds the piece-placement half of a position: a
// square-indexed piece array kept in sync with per-color and per-type
// bitboards, plus per-type piece-square lists and counts for the
// generator and evaluation-adjacent callers that want to enumerate
// pieces without scanning bitboards.
package board

import (
	"github.com/corvidchess/chesscore/bitboard"
	"github.com/corvidchess/chesscore/types"
)

// Board is the piece-placement state of one position. It carries no
// notion of side to move, castling rights or move history; Position
// layers that on top.
type Board struct {
	// pieces is indexed by square, NoPiece for an empty square.
	pieces [64]types.Piece

	// byType[t] is the union of both colors' pieces of type t (index 0
	// unused, NoPieceType never has a set bit).
	byType [7]bitboard.BitBoard
	// byColor[c] is the union of every piece belonging to c.
	byColor [2]bitboard.BitBoard
	// occupied is byColor[White] | byColor[Black].
	occupied bitboard.BitBoard

	// squares[c][t] lists the squares holding a piece of color c, type t,
	// in the first count[c][t] slots. At most 10 of any non-king, non-pawn
	// type and 8 pawns are representable in a legal position, but
	// underpromotion chains can in principle create more; 16 is a safe
	// cap matching one full side's worth of pieces.
	squares [2][7][16]types.Square
	count   [2][7]int
}

// New returns an empty board.
func New() *Board { return &Board{} }

// PieceAt returns the piece standing on sq, or types.NoPiece if empty.
func (b *Board) PieceAt(sq types.Square) types.Piece { return b.pieces[sq] }

// Occupied returns every occupied square.
func (b *Board) Occupied() bitboard.BitBoard { return b.occupied }

// ByColor returns every square occupied by a piece of color c.
func (b *Board) ByColor(c types.Color) bitboard.BitBoard { return b.byColor[c] }

// ByType returns every square occupied by a piece of type t, either color.
func (b *Board) ByType(t types.PieceType) bitboard.BitBoard { return b.byType[t] }

// Pieces returns every square occupied by a piece of color c and type t.
func (b *Board) Pieces(c types.Color, t types.PieceType) bitboard.BitBoard {
	return b.byColor[c] & b.byType[t]
}

// King returns the square of c's king, or types.NoSquare if absent (only
// possible on a Board under construction; a valid Position always has
// exactly one king per color).
func (b *Board) King(c types.Color) types.Square {
	if b.count[c][types.King] == 0 {
		return types.NoSquare
	}
	return b.squares[c][types.King][0]
}

// SquaresOf returns the populated prefix of the piece-square list for
// color c, type t. The returned slice aliases Board's internal storage
// and is only valid until the next mutation.
func (b *Board) SquaresOf(c types.Color, t types.PieceType) []types.Square {
	return b.squares[c][t][:b.count[c][t]]
}

// CountOf returns the number of pieces of color c, type t on the board.
func (b *Board) CountOf(c types.Color, t types.PieceType) int { return b.count[c][t] }

// PlacePiece puts p on sq, which must currently be empty. It updates the
// piece array, the type/color/occupancy bitboards, and the piece-square
// list in one step.
func (b *Board) PlacePiece(p types.Piece, sq types.Square) {
	b.pieces[sq] = p
	mask := bitboard.FromSquare(sq)
	b.byType[p.Type()] |= mask
	b.byColor[p.Color()] |= mask
	b.occupied |= mask

	c, t := p.Color(), p.Type()
	b.squares[c][t][b.count[c][t]] = sq
	b.count[c][t]++
}

// RemovePiece removes the piece on sq, which must hold p.
func (b *Board) RemovePiece(p types.Piece, sq types.Square) {
	b.pieces[sq] = types.NoPiece
	mask := bitboard.FromSquare(sq)
	b.byType[p.Type()] &^= mask
	b.byColor[p.Color()] &^= mask
	b.occupied &^= mask

	c, t := p.Color(), p.Type()
	list := &b.squares[c][t]
	n := b.count[c][t]
	for i := 0; i < n; i++ {
		if list[i] == sq {
			list[i] = list[n-1]
			b.count[c][t]--
			return
		}
	}
}

// MovePiece relocates p from one square to an empty one, preserving its
// slot in the piece-square list without a remove/place round trip.
func (b *Board) MovePiece(p types.Piece, from, to types.Square) {
	b.pieces[from] = types.NoPiece
	b.pieces[to] = p
	mask := bitboard.FromSquare(from) | bitboard.FromSquare(to)
	b.byType[p.Type()] ^= mask
	b.byColor[p.Color()] ^= mask
	b.occupied ^= mask

	c, t := p.Color(), p.Type()
	list := &b.squares[c][t]
	n := b.count[c][t]
	for i := 0; i < n; i++ {
		if list[i] == from {
			list[i] = to
			return
		}
	}
}

// Clone returns a deep copy of b.
func (b *Board) Clone() *Board {
	cp := *b
	return &cp
}
