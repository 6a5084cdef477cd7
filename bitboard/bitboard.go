// Package bitboard supplies attack sets and geometric masks over 64-bit
// bitsets, with no allocation in steady state. Leaper attacks are plain
// lookup tables; sliding attacks use magic bitboards. All tables are
// computed once, deterministically, by Init, and are safe to share across
// goroutines afterwards since they are never mutated again.
package bitboard

import (
	"math/bits"

	"github.com/corvidchess/chesscore/types"
)

// BitBoard is a 64-bit set of squares, bit i corresponding to types.Square(i).
type BitBoard uint64

// Empty is the bitboard with no squares set.
const Empty BitBoard = 0

// Full is the bitboard with every square set.
const Full BitBoard = 0xFFFFFFFFFFFFFFFF

// FromSquare returns the singleton bitboard containing only sq.
func FromSquare(sq types.Square) BitBoard { return BitBoard(1) << uint(sq) }

// Has reports whether sq is a member of b.
func (b BitBoard) Has(sq types.Square) bool { return b&FromSquare(sq) != 0 }

// Set returns b with sq added.
func (b BitBoard) Set(sq types.Square) BitBoard { return b | FromSquare(sq) }

// Clear returns b with sq removed.
func (b BitBoard) Clear(sq types.Square) BitBoard { return b &^ FromSquare(sq) }

// PopCount returns the number of set bits.
func (b BitBoard) PopCount() int { return bits.OnesCount64(uint64(b)) }

// LSB returns the square of the least significant set bit. The result is
// undefined (NoSquare) when b is empty.
func (b BitBoard) LSB() types.Square {
	if b == 0 {
		return types.NoSquare
	}
	return types.Square(bits.TrailingZeros64(uint64(b)))
}

// MSB returns the square of the most significant set bit. The result is
// undefined (NoSquare) when b is empty.
func (b BitBoard) MSB() types.Square {
	if b == 0 {
		return types.NoSquare
	}
	return types.Square(63 - bits.LeadingZeros64(uint64(b)))
}

// PopLSB clears and returns the least significant set bit's square.
func PopLSB(b *BitBoard) types.Square {
	sq := b.LSB()
	*b &= *b - 1
	return sq
}

// MoreThanOne reports whether b has two or more set bits.
func (b BitBoard) MoreThanOne() bool { return b&(b-1) != 0 }

// Any reports whether b has at least one set bit.
func (b BitBoard) Any() bool { return b != 0 }

// File/rank masks, indexed by types.File / types.Rank.
var (
	FileMask [8]BitBoard
	RankMask [8]BitBoard
)

// NotFileA / NotFileH exclude wrap-around on single-step shifts.
const (
	notFileA BitBoard = 0xFEFEFEFEFEFEFEFE
	notFileH BitBoard = 0x7F7F7F7F7F7F7F7F
)

func init() {
	for f := types.FileA; f <= types.FileH; f++ {
		var m BitBoard
		for r := types.Rank1; r <= types.Rank8; r++ {
			m = m.Set(types.Square(int(r)*8 + int(f)))
		}
		FileMask[f] = m
	}
	for r := types.Rank1; r <= types.Rank8; r++ {
		RankMask[r] = BitBoard(0xFF) << uint(8*int(r))
	}
}

// Shift returns b translated one step in direction d, discarding bits that
// would wrap around a file edge.
func Shift(b BitBoard, d types.Direction) BitBoard {
	switch d {
	case types.North:
		return b << 8
	case types.South:
		return b >> 8
	case types.East:
		return (b & notFileH) << 1
	case types.West:
		return (b & notFileA) >> 1
	case types.NorthEast:
		return (b & notFileH) << 9
	case types.NorthWest:
		return (b & notFileA) << 7
	case types.SouthEast:
		return (b & notFileH) >> 7
	case types.SouthWest:
		return (b & notFileA) >> 9
	}
	return 0
}

// NorthFill ORs b with every square north of each of its members, up to
// and including the eighth rank.
func NorthFill(b BitBoard) BitBoard {
	for i := 0; i < 7; i++ {
		b |= b << 8
	}
	return b
}

// SouthFill ORs b with every square south of each of its members, down to
// and including the first rank.
func SouthFill(b BitBoard) BitBoard {
	for i := 0; i < 7; i++ {
		b |= b >> 8
	}
	return b
}
