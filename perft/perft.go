// Package perft walks the legal move tree to a fixed depth and counts
// leaf nodes, the standard correctness probe for a move generator:
// divergence from a published reference count pinpoints a move
// generation or make/unmake bug long before it would show up as a
// subtly wrong game result.
package perft

import (
	"github.com/corvidchess/chesscore/movegen"
	"github.com/corvidchess/chesscore/position"
	"github.com/corvidchess/chesscore/types"
)

// Count returns the number of leaf positions reachable from pos in
// exactly depth plies of legal play. depth <= 0 returns 1 (the position
// itself, the base case of the recursion). At depth == 1 it takes the
// bulk-counting shortcut of returning the size of the legal move list
// directly rather than recursing once more to count leaves one at a
// time.
func Count(pos *position.Position, depth int) int64 {
	if depth <= 0 {
		return 1
	}
	var list types.MoveList
	movegen.Generate(pos, &list)

	if depth == 1 {
		return int64(list.Count)
	}

	var nodes int64
	for _, m := range list.Slice() {
		pos.MakeMove(m)
		nodes += Count(pos, depth-1)
		pos.TakeMove()
	}
	return nodes
}

// Divide returns, for each legal move at the root, the subtree leaf
// count at depth-1 below it — the standard way to bisect a perft
// mismatch down to the offending branch.
func Divide(pos *position.Position, depth int) map[types.Move]int64 {
	var list types.MoveList
	movegen.Generate(pos, &list)

	results := make(map[types.Move]int64, list.Count)
	for _, m := range list.Slice() {
		pos.MakeMove(m)
		results[m] = Count(pos, depth-1)
		pos.TakeMove()
	}
	return results
}
