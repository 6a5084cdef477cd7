package position

import (
	"github.com/corvidchess/chesscore/bitboard"
	"github.com/corvidchess/chesscore/types"
)

// MaxPly bounds how many plies a single Position can play forward from its
// starting FEN before the state array is exhausted. It matches the
// largest number of moves a game reasonably reaches; Position panics if a
// caller somehow exceeds it, the same fail-fast policy as an unbalanced
// TakeMove.
const MaxPly = 1024

// State is the per-ply record pushed by MakeMove and popped by TakeMove.
// Position keeps these in a preallocated array indexed by ply rather than
// a linked list, so make/unmake never allocates and undo is a pointer
// decrement.
type State struct {
	CastleRights types.CastleRight
	EPSquare     types.Square
	Rule50       int
	PliesFromNull int

	// Captured is the piece removed by the move that produced this state
	// (NoPiece for a non-capture), needed to restore it on TakeMove.
	Captured types.Piece
	// Moved is the piece as it stood before the move (before promotion).
	Moved types.Piece
	// Move is the move that produced this state from the previous one.
	Move types.Move

	// Checkers is the set of enemy pieces giving check to the side to
	// move in this state.
	Checkers bitboard.BitBoard
	// KingBlockers[c] is the set of c's own pieces that, if moved off
	// their current square, would expose c's king to a slider attack.
	KingBlockers [2]bitboard.BitBoard
	// Pinners[c] is the set of enemy sliders pinning a piece in
	// KingBlockers[c].
	Pinners [2]bitboard.BitBoard
	// CheckSquares[t] is the set of squares from which a piece of type t
	// would give check to the opponent's king (the king of the side not
	// to move, the one GivesCheck cares about), used by the move
	// generator and by GivesCheck to test a candidate destination in O(1).
	CheckSquares [7]bitboard.BitBoard

	Key         uint64
	MaterialKey uint64
	PawnKey     uint64

	// Repetition is the negative distance in plies to an earlier
	// occurrence of this same Key, or 0 if none exists within the
	// rule-50 window. A position repeated exactly once yields the
	// distance to that occurrence; a position that itself repeats an
	// already-repeated position (so the game is an automatic draw)
	// records that by making the distance positive. TakeMove does not
	// need to restore this field since it is recomputed by MakeMove
	// every time, not read back by TakeMove.
	Repetition int
}
