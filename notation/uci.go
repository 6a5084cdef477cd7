package notation

import (
	"fmt"

	"github.com/corvidchess/chesscore/movegen"
	"github.com/corvidchess/chesscore/position"
	"github.com/corvidchess/chesscore/types"
)

var promoLetters = map[byte]types.PieceType{
	'n': types.Knight, 'b': types.Bishop, 'r': types.Rook, 'q': types.Queen,
}

// ParseUCI parses a UCI move string ("e2e4", "e7e8q") against pos,
// returning the matching legal move. Castling is accepted in either the
// engine-wire convention (king's final square, "e1g1") or this module's
// internal king-takes-rook encoding ("e1h1"), since both appear in the
// wild depending on the GUI. An error is returned if the string is
// malformed or doesn't correspond to any legal move.
func ParseUCI(s string, pos *position.Position) (types.Move, error) {
	if len(s) < 4 || len(s) > 5 {
		return types.NullMove, fmt.Errorf("notation: malformed UCI move %q", s)
	}
	from, err := types.ParseSquare(s[0:2])
	if err != nil || from == types.NoSquare {
		return types.NullMove, fmt.Errorf("notation: malformed UCI move %q: %w", s, err)
	}
	to, err := types.ParseSquare(s[2:4])
	if err != nil || to == types.NoSquare {
		return types.NullMove, fmt.Errorf("notation: malformed UCI move %q: %w", s, err)
	}
	var wantPromo types.PieceType
	if len(s) == 5 {
		pt, ok := promoLetters[s[4]]
		if !ok {
			return types.NullMove, fmt.Errorf("notation: unrecognized promotion letter %q", s[4])
		}
		wantPromo = pt
	}

	var list types.MoveList
	movegen.Generate(pos, &list)
	for _, m := range list.Slice() {
		if m.From() != from {
			continue
		}
		if m.Kind() == types.Castling {
			kingTo := position.CastlingKingDestination(m.From(), m.To())
			if to == m.To() || to == kingTo {
				return m, nil
			}
			continue
		}
		if m.To() != to {
			continue
		}
		if m.Kind() == types.Promotion {
			if m.PromotionType() == wantPromo {
				return m, nil
			}
			continue
		}
		return m, nil
	}
	return types.NullMove, fmt.Errorf("notation: %q is not a legal move in this position", s)
}
