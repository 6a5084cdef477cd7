package bitboard

import "github.com/corvidchess/chesscore/types"

// pawnAttackTable, knightAttackTable and kingAttackTable are precomputed
// leaper attack sets, filled in by Init. Lookups against them are O(1) and
// allocation-free.
var (
	pawnAttackTable   [2][64]BitBoard
	knightAttackTable [64]BitBoard
	kingAttackTable   [64]BitBoard
)

// PawnAttacks returns the squares a pawn of color c on sq attacks.
func PawnAttacks(c types.Color, sq types.Square) BitBoard { return pawnAttackTable[c][sq] }

// KnightAttacks returns the squares a knight on sq attacks.
func KnightAttacks(sq types.Square) BitBoard { return knightAttackTable[sq] }

// KingAttacks returns the squares a king on sq attacks.
func KingAttacks(sq types.Square) BitBoard { return kingAttackTable[sq] }

// genPawnAttacks computes the attack set of one or more pawns of color c
// simultaneously (used only during table initialization).
func genPawnAttacks(pawns BitBoard, c types.Color) BitBoard {
	if c == types.White {
		return Shift(pawns, types.NorthWest) | Shift(pawns, types.NorthEast)
	}
	return Shift(pawns, types.SouthWest) | Shift(pawns, types.SouthEast)
}

// genKnightAttacks computes the attack set of one or more knights
// simultaneously (used only during table initialization).
func genKnightAttacks(knights BitBoard) BitBoard {
	return (knights&notFileA)>>17 | (knights&notFileH)>>15 |
		(knights&notABFile)>>10 | (knights&notGHFile)>>6 |
		(knights&notABFile)<<6 | (knights&notGHFile)<<10 |
		(knights&notFileA)<<15 | (knights&notFileH)<<17
}

// genKingAttacks computes the attack set of one or more kings
// simultaneously (used only during table initialization).
func genKingAttacks(kings BitBoard) BitBoard {
	return Shift(kings, types.North) | Shift(kings, types.South) |
		Shift(kings, types.East) | Shift(kings, types.West) |
		Shift(kings, types.NorthEast) | Shift(kings, types.NorthWest) |
		Shift(kings, types.SouthEast) | Shift(kings, types.SouthWest)
}

const (
	notABFile BitBoard = 0xFCFCFCFCFCFCFCFC
	notGHFile BitBoard = 0x3F3F3F3F3F3F3F3F
)

func initLeapers() {
	for sq := types.A1; sq <= types.H8; sq++ {
		bb := FromSquare(sq)
		pawnAttackTable[types.White][sq] = genPawnAttacks(bb, types.White)
		pawnAttackTable[types.Black][sq] = genPawnAttacks(bb, types.Black)
		knightAttackTable[sq] = genKnightAttacks(bb)
		kingAttackTable[sq] = genKingAttacks(bb)
	}
}

// PawnAttackSpan returns every square a pawn of color c starting on sq
// could ever come to attack as it advances: the forward file plus the two
// adjacent files, on the ranks ahead of sq's rank up to the far edge of
// the board.
func PawnAttackSpan(c types.Color, sq types.Square) BitBoard {
	f := sq.File()
	span := FileMask[f]
	if f > types.FileA {
		span |= FileMask[f-1]
	}
	if f < types.FileH {
		span |= FileMask[f+1]
	}
	if c == types.White {
		span &= ^southInclusive(sq.Rank())
	} else {
		span &= ^northInclusive(sq.Rank())
	}
	return span
}

// PassedPawnMask returns the squares that, if occupied by an enemy pawn,
// would stop a pawn of color c on sq from being a passed pawn: the same
// span as PawnAttackSpan.
func PassedPawnMask(c types.Color, sq types.Square) BitBoard {
	return PawnAttackSpan(c, sq)
}

// southInclusive returns the union of every rank <= r.
func southInclusive(r types.Rank) BitBoard {
	var m BitBoard
	for i := types.Rank1; i <= r; i++ {
		m |= RankMask[i]
	}
	return m
}

// northInclusive returns the union of every rank >= r.
func northInclusive(r types.Rank) BitBoard {
	var m BitBoard
	for i := r; i <= types.Rank8; i++ {
		m |= RankMask[i]
	}
	return m
}
