// Package notation renders a Move against a Position as SAN, LAN, FAN,
// RAN, or UCI text, and parses UCI text back into a Move. Disambiguation
// considers every other legal move of the same piece type targeting the
// same square, not just the first one found, so three-or-more-way
// ambiguity (e.g. three rooks covering one square) resolves to file,
// rank, or both exactly as FIDE's algebraic notation rules require.
package notation

import (
	"strings"

	"golang.org/x/exp/slices"

	"github.com/corvidchess/chesscore/board"
	"github.com/corvidchess/chesscore/position"
	"github.com/corvidchess/chesscore/types"
)

// Style selects which move-text dialect Render produces.
type Style int

const (
	SAN Style = iota
	LAN
	FAN
	RAN
	UCI
)

var pieceLetters = [...]byte{0, 0, 'N', 'B', 'R', 'Q', 'K'}
var figurineWhite = map[types.PieceType]string{
	types.Knight: "♘", types.Bishop: "♗", types.Rook: "♖",
	types.Queen: "♕", types.King: "♔",
}
var figurineBlack = map[types.PieceType]string{
	types.Knight: "♞", types.Bishop: "♝", types.Rook: "♜",
	types.Queen: "♛", types.King: "♚",
}

var fileLetters = [...]byte{'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h'}

func fileLetter(f types.File) string { return string(fileLetters[f]) }
func rankDigit(r types.Rank) string  { return string(byte('1' + r)) }

// Render produces the text for m played from b, given every other legal
// move in the same position (used for SAN/FAN disambiguation), and
// whether the move gives check or checkmate.
func Render(style Style, m types.Move, b *board.Board, legalMoves []types.Move, isCheck, isCheckmate bool) string {
	if style == UCI {
		if m.Kind() == types.Castling {
			// Standard-mode UCI gives the king's actual destination
			// (e1g1), not the king-takes-rook encoding's rook square
			// (e1h1); only Chess960 wire format uses the rook square.
			from := m.From()
			kingTo := position.CastlingKingDestination(from, m.To())
			return from.String() + kingTo.String()
		}
		return m.UCI()
	}

	from, to := m.From(), m.To()
	moved := b.PieceAt(from)

	if m.Kind() == types.Castling {
		if castlingIsQueenside(from, to) {
			return suffix("O-O-O", isCheck, isCheckmate)
		}
		return suffix("O-O", isCheck, isCheckmate)
	}

	isCapture := b.PieceAt(to) != types.NoPiece || m.Kind() == types.EnPassant

	var sb strings.Builder

	switch style {
	case LAN, RAN:
		// Long/reversible algebraic: full origin square always present,
		// so no disambiguation is ever needed.
		if moved.Type() != types.Pawn {
			sb.WriteString(pieceGlyph(style, moved))
		}
		sb.WriteString(from.String())
		if isCapture {
			sb.WriteByte('x')
		} else {
			sb.WriteByte('-')
		}
		sb.WriteString(to.String())

	default: // SAN, FAN
		if moved.Type() != types.Pawn {
			sb.WriteString(pieceGlyph(style, moved))
			sb.WriteString(disambiguate(from, to, legalMoves))
		} else if isCapture {
			sb.WriteString(fileLetter(from.File()))
		}
		if isCapture {
			sb.WriteByte('x')
		}
		sb.WriteString(to.String())
	}

	if m.Kind() == types.Promotion {
		sb.WriteByte('=')
		sb.WriteString(pieceGlyph(style, types.NewPiece(moved.Color(), m.PromotionType())))
	}

	return suffix(sb.String(), isCheck, isCheckmate)
}

func suffix(s string, isCheck, isCheckmate bool) string {
	if isCheckmate {
		return s + "#"
	}
	if isCheck {
		return s + "+"
	}
	return s
}

func pieceGlyph(style Style, p types.Piece) string {
	if style == FAN {
		if p.Color() == types.White {
			return figurineWhite[p.Type()]
		}
		return figurineBlack[p.Type()]
	}
	return string(pieceLetters[p.Type()])
}

func castlingIsQueenside(kingFrom, rookFrom types.Square) bool {
	return rookFrom.File() < kingFrom.File()
}

// disambiguate returns the minimal file/rank/both prefix needed to
// distinguish a move's origin (from, to) from every other legal move of
// the same piece type landing on the same destination square. legalMoves
// must already be filtered to moves of the same piece type and color as
// the mover (as Move does): every move in it that lands on the same square
// from another origin is treated as a disambiguation candidate.
func disambiguate(from, to types.Square, legalMoves []types.Move) string {
	var candidates []types.Square
	for _, om := range legalMoves {
		if om.To() != to || om.From() == from {
			continue
		}
		candidates = append(candidates, om.From())
	}
	if len(candidates) == 0 {
		return ""
	}
	slices.Sort(candidates)

	sameFile, sameRank := false, false
	for _, c := range candidates {
		if c.File() == from.File() {
			sameFile = true
		}
		if c.Rank() == from.Rank() {
			sameRank = true
		}
	}
	switch {
	case !sameFile:
		return fileLetter(from.File())
	case !sameRank:
		return rankDigit(from.Rank())
	default:
		return from.String()
	}
}
