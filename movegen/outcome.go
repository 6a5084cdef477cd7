package movegen

import (
	"github.com/corvidchess/chesscore/position"
	"github.com/corvidchess/chesscore/types"
)

// Outcome classifies the current position's terminal status from the
// side to move's perspective.
type Outcome int

const (
	// Ongoing means the side to move has at least one legal move.
	Ongoing Outcome = iota
	Checkmate
	Stalemate
)

// Classify reports the position's outcome by generating moves once and
// inspecting check status, the same two facts the teacher's IsCheckmate
// derives by hand from a cached legal-move list.
func Classify(pos *position.Position) Outcome {
	var list types.MoveList
	Generate(pos, &list)
	if list.Count > 0 {
		return Ongoing
	}
	if pos.InCheck() {
		return Checkmate
	}
	return Stalemate
}

// HasLegalMoves reports whether the side to move has at least one legal
// move.
func HasLegalMoves(pos *position.Position) bool {
	var list types.MoveList
	Generate(pos, &list)
	return list.Count > 0
}
