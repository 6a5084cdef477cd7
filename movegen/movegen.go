// Package movegen produces every legal move for a position in one pass:
// a target-square mask derived from check status narrows each piece's
// attack set before pins are applied, so illegal moves are never
// generated and then filtered out (aside from the king-move and
// en-passant fast paths position.IsLegal still exists for callers that
// build moves some other way).
package movegen

import (
	"github.com/corvidchess/chesscore/bitboard"
	"github.com/corvidchess/chesscore/position"
	"github.com/corvidchess/chesscore/types"
)

// Generate appends every legal move in pos to list. list is not reset
// first; callers that want a fresh list call list.Reset() themselves.
// Order is unspecified.
func Generate(pos *position.Position, list *types.MoveList) {
	us := pos.SideToMove()
	them := us.Flip()
	ksq := pos.KingSquare(us)
	occupied := pos.Board().Occupied()
	checkers := pos.Checkers()

	genKingMoves(pos, list, us, them, ksq, occupied)

	if checkers.MoreThanOne() {
		return // double check: only the king can move
	}

	target := ^pos.Board().ByColor(us)
	if checkers.Any() {
		checkerSq := checkers.LSB()
		target = bitboard.Between(ksq, checkerSq) | checkers
	}

	genPawnMoves(pos, list, us, them, ksq, occupied, target)
	genPieceMoves(pos, list, types.Knight, us, ksq, occupied, target)
	genPieceMoves(pos, list, types.Bishop, us, ksq, occupied, target)
	genPieceMoves(pos, list, types.Rook, us, ksq, occupied, target)
	genPieceMoves(pos, list, types.Queen, us, ksq, occupied, target)

	if !checkers.Any() {
		genCastling(pos, list, us, occupied)
	}
}

func pieceAttacks(t types.PieceType, sq types.Square, occupied bitboard.BitBoard) bitboard.BitBoard {
	switch t {
	case types.Knight:
		return bitboard.KnightAttacks(sq)
	case types.Bishop:
		return bitboard.BishopAttacks(sq, occupied)
	case types.Rook:
		return bitboard.RookAttacks(sq, occupied)
	case types.Queen:
		return bitboard.QueenAttacks(sq, occupied)
	}
	return bitboard.Empty
}

func genPieceMoves(pos *position.Position, list *types.MoveList, t types.PieceType, us types.Color, ksq types.Square, occupied, target bitboard.BitBoard) {
	pinned := pos.Board().ByColor(us) & currentKingBlockers(pos, us)
	squares := pos.Board().Pieces(us, t)
	for squares.Any() {
		from := bitboard.PopLSB(&squares)
		dests := pieceAttacks(t, from, occupied) & target
		if pinned.Has(from) {
			dests &= bitboard.Line(from, ksq)
		}
		for dests.Any() {
			to := bitboard.PopLSB(&dests)
			list.Push(types.NewMove(from, to, types.Normal))
		}
	}
}

// currentKingBlockers exposes the blocker set the position already
// maintains incrementally, rather than recomputing slider_blockers here.
func currentKingBlockers(pos *position.Position, us types.Color) bitboard.BitBoard {
	// Position doesn't expose KingBlockers directly since it's an
	// internal State field; SliderBlockers recomputes the same answer
	// on demand against the live board, which is what pins need anyway
	// since target/occupied may already reflect a hypothetical move in
	// some callers.
	ksq := pos.KingSquare(us)
	them := us.Flip()
	sliders := (pos.Board().ByType(types.Bishop) | pos.Board().ByType(types.Queen) | pos.Board().ByType(types.Rook)) & pos.Board().ByColor(them)
	blockers, _ := pos.SliderBlockers(sliders, ksq, us)
	return blockers
}

func genKingMoves(pos *position.Position, list *types.MoveList, us, them types.Color, ksq types.Square, occupied bitboard.BitBoard) {
	dests := bitboard.KingAttacks(ksq) &^ pos.Board().ByColor(us)
	occWithoutKing := occupied.Clear(ksq)
	for dests.Any() {
		to := bitboard.PopLSB(&dests)
		if (pos.AttackersTo(to, occWithoutKing) & pos.Board().ByColor(them)).Any() {
			continue
		}
		list.Push(types.NewMove(ksq, to, types.Normal))
	}
}

func genCastling(pos *position.Position, list *types.MoveList, us types.Color, occupied bitboard.BitBoard) {
	ksq := pos.KingSquare(us)
	cr := pos.CastleRights()
	them := us.Flip()

	tryCastle := func(right types.CastleRight, rookFrom, kingTo types.Square) {
		if !cr.Has(right) {
			return
		}
		path := bitboard.Between(ksq, rookFrom)
		occWithoutCastlers := occupied.Clear(ksq).Clear(rookFrom)
		if path&occWithoutCastlers != 0 {
			return
		}
		// Every square the king crosses, including its origin and
		// destination, must be free of enemy attack.
		travel := bitboard.Between(ksq, kingTo) | bitboard.FromSquare(ksq) | bitboard.FromSquare(kingTo)
		sq := travel
		for sq.Any() {
			s := bitboard.PopLSB(&sq)
			if (pos.AttackersTo(s, occupied) & pos.Board().ByColor(them)).Any() {
				return
			}
		}
		list.Push(types.NewCastling(ksq, rookFrom))
	}

	if us == types.White {
		tryCastle(types.WhiteOO, types.H1, types.G1)
		tryCastle(types.WhiteOOO, types.A1, types.C1)
	} else {
		tryCastle(types.BlackOO, types.H8, types.G8)
		tryCastle(types.BlackOOO, types.A8, types.C8)
	}
}
