package position

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/corvidchess/chesscore/board"
	"github.com/corvidchess/chesscore/types"
)

// StartFEN is the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// FENError reports which field of a FEN string failed validation and why.
type FENError struct {
	Field  string
	Reason string
}

func (e *FENError) Error() string {
	return fmt.Sprintf("position: invalid FEN %s field: %s", e.Field, e.Reason)
}

// FromFEN parses a FEN string into a fresh Position, validating every
// field in order: field count, piece-placement characters and counts,
// side to move, castling characters, en-passant square rank, and the two
// numeric counters. The first violated rule is returned as a *FENError;
// no partial Position is returned on error.
func FromFEN(fen string) (*Position, error) {
	fields := strings.Split(strings.TrimSpace(fen), " ")
	if len(fields) != 6 {
		return nil, &FENError{"field count", fmt.Sprintf("expected 6 space-separated fields, got %d", len(fields))}
	}

	b := board.New()
	if err := parsePlacement(b, fields[0]); err != nil {
		return nil, err
	}

	var side types.Color
	switch fields[1] {
	case "w":
		side = types.White
	case "b":
		side = types.Black
	default:
		return nil, &FENError{"side to move", fmt.Sprintf("must be \"w\" or \"b\", got %q", fields[1])}
	}

	cr, err := parseCastling(fields[2])
	if err != nil {
		return nil, err
	}

	ep, err := parseEPSquare(fields[3], side)
	if err != nil {
		return nil, err
	}

	rule50, err := parseNonNegativeInt("halfmove clock", fields[4])
	if err != nil {
		return nil, err
	}
	fullmove, err := parseNonNegativeInt("fullmove number", fields[5])
	if err != nil {
		return nil, err
	}
	if fullmove < 1 {
		return nil, &FENError{"fullmove number", "must be >= 1"}
	}

	if b.CountOf(types.White, types.King) != 1 || b.CountOf(types.Black, types.King) != 1 {
		return nil, &FENError{"piece placement", "exactly one king per color is required"}
	}

	p := newPosition(b, side, cr, ep, rule50, fullmove)
	return p, nil
}

func parsePlacement(b *board.Board, field string) error {
	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return &FENError{"piece placement", fmt.Sprintf("expected 8 ranks separated by '/', got %d", len(ranks))}
	}
	var countByType [2][7]int
	var countByColor [2]int
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, ch := range []byte(rankStr) {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			piece, ok := types.PieceFromLetter(ch)
			if !ok {
				return &FENError{"piece placement", fmt.Sprintf("unrecognized character %q", ch)}
			}
			if file > 7 {
				return &FENError{"piece placement", fmt.Sprintf("rank %d has more than 8 files", rank+1)}
			}
			sq := types.Square(rank*8 + file)
			if piece.Type() == types.Pawn && (sq.Rank() == types.Rank1 || sq.Rank() == types.Rank8) {
				return &FENError{"piece placement", "pawns cannot stand on rank 1 or 8"}
			}
			c, t := piece.Color(), piece.Type()
			if t == types.Pawn && countByType[c][t] >= 8 {
				return &FENError{"piece placement", fmt.Sprintf("%s has more than 8 pawns", c)}
			}
			if countByColor[c] >= 16 {
				return &FENError{"piece placement", fmt.Sprintf("%s has more than 16 pieces", c)}
			}
			countByType[c][t]++
			countByColor[c]++
			b.PlacePiece(piece, sq)
			file++
		}
		if file != 8 {
			return &FENError{"piece placement", fmt.Sprintf("rank %d does not total 8 files", rank+1)}
		}
	}
	return nil
}

func parseCastling(field string) (types.CastleRight, error) {
	if field == "-" {
		return types.NoCastleRights, nil
	}
	var cr types.CastleRight
	for i := 0; i < len(field); i++ {
		switch field[i] {
		case 'K':
			cr |= types.WhiteOO
		case 'Q':
			cr |= types.WhiteOOO
		case 'k':
			cr |= types.BlackOO
		case 'q':
			cr |= types.BlackOOO
		default:
			return 0, &FENError{"castling availability", fmt.Sprintf("unrecognized character %q", field[i])}
		}
	}
	return cr, nil
}

func parseEPSquare(field string, side types.Color) (types.Square, error) {
	sq, err := types.ParseSquare(field)
	if err != nil {
		return types.NoSquare, &FENError{"en passant target", err.Error()}
	}
	if sq == types.NoSquare {
		return types.NoSquare, nil
	}
	want := types.Rank6
	if side == types.Black {
		want = types.Rank3
	}
	if sq.Rank() != want {
		return types.NoSquare, &FENError{"en passant target", fmt.Sprintf("must be on rank %d for side to move, got %s", want+1, sq)}
	}
	return sq, nil
}

func parseNonNegativeInt(field, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, &FENError{field, fmt.Sprintf("must be a non-negative integer, got %q", s)}
	}
	return n, nil
}

// ToFEN serializes p back into FEN.
func (p *Position) ToFEN() string {
	var sb strings.Builder
	sb.Grow(64)

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := types.Square(rank*8 + file)
			piece := p.board.PieceAt(sq)
			if piece == types.NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(p.sideToMove.String())
	sb.WriteByte(' ')

	cr := p.st().CastleRights
	if cr == types.NoCastleRights {
		sb.WriteByte('-')
	} else {
		if cr.Has(types.WhiteOO) {
			sb.WriteByte('K')
		}
		if cr.Has(types.WhiteOOO) {
			sb.WriteByte('Q')
		}
		if cr.Has(types.BlackOO) {
			sb.WriteByte('k')
		}
		if cr.Has(types.BlackOOO) {
			sb.WriteByte('q')
		}
	}
	sb.WriteByte(' ')
	sb.WriteString(p.st().EPSquare.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.st().Rule50))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.fullMoveNumber))

	return sb.String()
}
