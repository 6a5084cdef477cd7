package position

import (
	"github.com/corvidchess/chesscore/types"
	"github.com/corvidchess/chesscore/zobrist"
)

// castleRightsLost[sq] is the set of castling rights permanently forfeited
// the moment a piece leaves or arrives on sq (a king or rook's home
// square, or the corresponding rook's square being captured on).
var castleRightsLost [64]types.CastleRight

func init() {
	castleRightsLost[types.E1] = types.WhiteOO | types.WhiteOOO
	castleRightsLost[types.H1] = types.WhiteOO
	castleRightsLost[types.A1] = types.WhiteOOO
	castleRightsLost[types.E8] = types.BlackOO | types.BlackOOO
	castleRightsLost[types.H8] = types.BlackOO
	castleRightsLost[types.A8] = types.BlackOOO
}

func CastlingKingDestination(kingFrom, rookFrom types.Square) types.Square {
	rank := int(kingFrom.Rank()) * 8
	if rookFrom.File() > kingFrom.File() {
		return types.Square(rank + int(types.FileG))
	}
	return types.Square(rank + int(types.FileC))
}

func CastlingRookDestination(kingFrom, rookFrom types.Square) types.Square {
	rank := int(kingFrom.Rank()) * 8
	if rookFrom.File() > kingFrom.File() {
		return types.Square(rank + int(types.FileF))
	}
	return types.Square(rank + int(types.FileD))
}

func epCaptureSquare(to types.Square, us types.Color) types.Square {
	if us == types.White {
		return types.Square(int(to) - 8)
	}
	return types.Square(int(to) + 8)
}

// MakeMove applies m, which must be a pseudo-legal move already validated
// by IsLegal, to the position. It pushes a fresh State and updates the
// board, incrementally maintaining all three keys. MakeMove does not
// validate m: it neither panics nor returns an error for a move that is
// not legal in the current position, and the position is then undefined.
func (p *Position) MakeMove(m types.Move) {
	prev := p.st()
	p.ply++
	st := &p.states[p.ply]
	*st = State{
		CastleRights:  prev.CastleRights,
		EPSquare:      types.NoSquare,
		Rule50:        prev.Rule50 + 1,
		PliesFromNull: prev.PliesFromNull + 1,
		Key:           prev.Key,
		MaterialKey:   prev.MaterialKey,
		PawnKey:       prev.PawnKey,
		Move:          m,
	}

	us := p.sideToMove
	them := us.Flip()
	from, to := m.From(), m.To()
	moved := p.board.PieceAt(from)
	st.Moved = moved

	st.Key ^= zobrist.Native.CastleKey(prev.CastleRights)
	if prev.EPSquare != types.NoSquare {
		st.Key ^= zobrist.Native.EPFileKey(prev.EPSquare.File())
	}
	st.Key ^= zobrist.Native.Side

	switch m.Kind() {
	case types.Normal:
		captured := p.board.PieceAt(to)
		st.Captured = captured
		if captured != types.NoPiece {
			p.removePiece(st, captured, to)
			st.Rule50 = 0
		} else if moved.Type() == types.Pawn {
			st.Rule50 = 0
		}
		p.movePiece(st, moved, from, to)
		if moved.Type() == types.Pawn && abs(int(to)-int(from)) == 16 {
			// The EP target is the square directly behind the
			// double-pushed pawn, i.e. the midpoint of from and to.
			st.EPSquare = types.Square((int(from) + int(to)) / 2)
			st.Key ^= zobrist.Native.EPFileKey(st.EPSquare.File())
		}

	case types.Promotion:
		captured := p.board.PieceAt(to)
		st.Captured = captured
		if captured != types.NoPiece {
			p.removePiece(st, captured, to)
		}
		p.removePiece(st, moved, from)
		p.placePiece(st, types.NewPiece(us, m.PromotionType()), to)
		st.Rule50 = 0

	case types.EnPassant:
		capSq := epCaptureSquare(to, us)
		captured := p.board.PieceAt(capSq)
		st.Captured = captured
		p.removePiece(st, captured, capSq)
		p.movePiece(st, moved, from, to)
		st.Rule50 = 0

	case types.Castling:
		rookFrom := to
		kingTo := CastlingKingDestination(from, rookFrom)
		rookTo := CastlingRookDestination(from, rookFrom)
		rook := p.board.PieceAt(rookFrom)
		p.movePiece(st, moved, from, kingTo)
		p.movePiece(st, rook, rookFrom, rookTo)
	}

	st.CastleRights &^= castleRightsLost[from] | castleRightsLost[to]
	if m.Kind() == types.Castling {
		st.CastleRights &^= types.Both(us)
	}
	st.Key ^= zobrist.Native.CastleKey(st.CastleRights)

	p.sideToMove = them
	if us == types.Black {
		p.fullMoveNumber++
	}

	p.updateCheckInfo(st)
	p.updateRepetition(st)
}

// TakeMove reverts the most recent MakeMove. Calling it with no prior
// MakeMove (ply == 0) is a programmer error; it panics rather than
// silently doing nothing, since an unbalanced make/unmake indicates a
// broken caller.
func (p *Position) TakeMove() {
	if p.ply == 0 {
		panic("position: TakeMove with no prior MakeMove")
	}
	st := p.st()
	m := st.Move
	them := p.sideToMove
	us := them.Flip()
	if us == types.Black {
		p.fullMoveNumber--
	}
	p.sideToMove = us

	from, to := m.From(), m.To()

	switch m.Kind() {
	case types.Normal:
		p.board.MovePiece(st.Moved, to, from)
		if st.Captured != types.NoPiece {
			p.board.PlacePiece(st.Captured, to)
		}

	case types.Promotion:
		p.board.RemovePiece(types.NewPiece(us, m.PromotionType()), to)
		p.board.PlacePiece(st.Moved, from)
		if st.Captured != types.NoPiece {
			p.board.PlacePiece(st.Captured, to)
		}

	case types.EnPassant:
		capSq := epCaptureSquare(to, us)
		p.board.MovePiece(st.Moved, to, from)
		p.board.PlacePiece(st.Captured, capSq)

	case types.Castling:
		rookFrom := to
		kingTo := CastlingKingDestination(from, rookFrom)
		rookTo := CastlingRookDestination(from, rookFrom)
		rook := p.board.PieceAt(rookTo)
		p.board.MovePiece(st.Moved, kingTo, from)
		p.board.MovePiece(rook, rookTo, rookFrom)
	}

	p.ply--
}

// MakeNullMove passes the move without changing piece placement,
// recording only the side-to-move flip and clearing the en-passant
// square. Used by null-move search pruning and by gives_check helpers
// outside this package; the core itself never calls it.
func (p *Position) MakeNullMove() {
	prev := p.st()
	p.ply++
	st := &p.states[p.ply]
	*st = State{
		CastleRights:  prev.CastleRights,
		EPSquare:      types.NoSquare,
		Rule50:        prev.Rule50 + 1,
		PliesFromNull: 0,
		Key:           prev.Key,
		MaterialKey:   prev.MaterialKey,
		PawnKey:       prev.PawnKey,
		Move:          types.NullMove,
	}
	st.Key ^= zobrist.Native.Side
	if prev.EPSquare != types.NoSquare {
		st.Key ^= zobrist.Native.EPFileKey(prev.EPSquare.File())
	}
	p.sideToMove = p.sideToMove.Flip()
	p.updateCheckInfo(st)
}

// TakeNullMove reverts MakeNullMove.
func (p *Position) TakeNullMove() {
	if p.ply == 0 {
		panic("position: TakeNullMove with no prior MakeNullMove")
	}
	p.sideToMove = p.sideToMove.Flip()
	p.ply--
}

// materialSlotKey returns the XOR word standing for the n-th (0-indexed)
// piece of this color/type in the material key's count-based encoding:
// the key is the running XOR of slots 0..count-1, so adding a piece XORs
// in slot count-1 (its new count - 1) and removing one XORs out slot
// count (its count after the removal).
func materialSlotKey(piece types.Piece, count int) uint64 {
	return zobrist.Native.PieceKey(piece, types.Square(count))
}

func (p *Position) placePiece(st *State, piece types.Piece, sq types.Square) {
	p.board.PlacePiece(piece, sq)
	st.Key ^= zobrist.Native.PieceKey(piece, sq)
	if piece.Type() == types.Pawn {
		st.PawnKey ^= zobrist.Native.PieceKey(piece, sq)
	}
	n := p.board.CountOf(piece.Color(), piece.Type())
	st.MaterialKey ^= materialSlotKey(piece, n-1)
}

func (p *Position) removePiece(st *State, piece types.Piece, sq types.Square) {
	p.board.RemovePiece(piece, sq)
	st.Key ^= zobrist.Native.PieceKey(piece, sq)
	if piece.Type() == types.Pawn {
		st.PawnKey ^= zobrist.Native.PieceKey(piece, sq)
	}
	n := p.board.CountOf(piece.Color(), piece.Type())
	st.MaterialKey ^= materialSlotKey(piece, n)
}

func (p *Position) movePiece(st *State, piece types.Piece, from, to types.Square) {
	p.board.MovePiece(piece, from, to)
	st.Key ^= zobrist.Native.PieceKey(piece, from) ^ zobrist.Native.PieceKey(piece, to)
	if piece.Type() == types.Pawn {
		st.PawnKey ^= zobrist.Native.PieceKey(piece, from) ^ zobrist.Native.PieceKey(piece, to)
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
