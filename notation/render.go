package notation

import (
	"github.com/corvidchess/chesscore/movegen"
	"github.com/corvidchess/chesscore/position"
	"github.com/corvidchess/chesscore/types"
)

// Move renders m against pos in the given style, computing capture,
// check, and checkmate status by generating pos's legal moves. m must
// already be a legal move for pos (the caller typically obtained it from
// movegen.Generate); no validation is performed here.
func Move(style Style, m types.Move, pos *position.Position) string {
	var list types.MoveList
	movegen.Generate(pos, &list)

	moved := pos.Board().PieceAt(m.From())
	sameType := make([]types.Move, 0, list.Count)
	for _, om := range list.Slice() {
		if pos.Board().PieceAt(om.From()).Type() == moved.Type() &&
			pos.Board().PieceAt(om.From()).Color() == moved.Color() {
			sameType = append(sameType, om)
		}
	}

	isCheck := pos.GivesCheck(m)
	isCheckmate := false
	if isCheck {
		pos.MakeMove(m)
		isCheckmate = movegen.Classify(pos) == movegen.Checkmate
		pos.TakeMove()
	}

	return Render(style, m, pos.Board(), sameType, isCheck, isCheckmate)
}
