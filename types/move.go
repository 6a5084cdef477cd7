package types

import "strings"

// MoveKind distinguishes the four move encodings a Move can carry.
type MoveKind uint8

const (
	Normal MoveKind = iota
	Promotion
	EnPassant
	Castling
)

// Move is a chess move packed into 16 bits:
//
//	bits 0-5:   destination square
//	bits 6-11:  origin square
//	bits 12-13: promotion piece type, Knight..Queen offset by -2
//	bits 14-15: move kind
//
// The all-zero value is the reserved null move (NullMove); from==to is
// never a legal move and is used as an additional invalid-move marker.
// Castling is encoded as "king captures own rook": origin is the king's
// square, destination is the castling rook's square, so Chess960 and
// standard castling share one encoding.
type Move uint16

// NullMove is the reserved empty move: all bits zero.
const NullMove Move = 0

// NewMove builds a non-promotion move. The promotion field is left at its
// zero encoding (Knight); readers must gate on Kind() before consulting
// PromotionType().
func NewMove(from, to Square, kind MoveKind) Move {
	return Move(uint16(to) | uint16(from)<<6 | uint16(kind)<<14)
}

// NewPromotion builds a promotion move to the given piece type, which must
// be one of Knight, Bishop, Rook, Queen.
func NewPromotion(from, to Square, promo PieceType) Move {
	return Move(uint16(to) | uint16(from)<<6 | uint16(promo-Knight)<<12 | uint16(Promotion)<<14)
}

// NewCastling builds a castling move: from is the king's origin square, to
// is the square of the rook being castled with.
func NewCastling(from, rookFrom Square) Move {
	return NewMove(from, rookFrom, Castling)
}

// To returns the destination square.
func (m Move) To() Square { return Square(m & 0x3F) }

// From returns the origin square.
func (m Move) From() Square { return Square((m >> 6) & 0x3F) }

// PromotionType returns the promoted-to piece type. Only meaningful when
// Kind() == Promotion.
func (m Move) PromotionType() PieceType { return PieceType((m>>12)&0x3) + Knight }

// Kind returns the move's encoding kind.
func (m Move) Kind() MoveKind { return MoveKind((m >> 14) & 0x3) }

// IsNull reports whether m is the reserved null move.
func (m Move) IsNull() bool { return m == NullMove }

// IsValid reports whether m is structurally sane: non-null and with
// distinct origin/destination squares.
func (m Move) IsValid() bool { return !m.IsNull() && m.From() != m.To() }

// UCI renders the move in engine wire format: "<from><to>[promo]". This is
// the raw coordinate pair; it does not special-case castling, so a castling
// move prints the king and rook squares of its king-takes-rook encoding
// (e1h1). The notation package's UCI style prints the king's landing
// square instead (e1g1).
func (m Move) UCI() string {
	var b strings.Builder
	b.Grow(5)
	b.WriteString(m.From().String())
	b.WriteString(m.To().String())
	if m.Kind() == Promotion {
		b.WriteByte(promotionLetters[m.PromotionType()])
	}
	return b.String()
}

var promotionLetters = [...]byte{0, 0, 'n', 'b', 'r', 'q'}

// MaxMoves is the upper bound on legal moves in any reachable position;
// MoveList preallocates this many slots so move generation never
// allocates.
const MaxMoves = 256

// MoveList is a preallocated move buffer. Move generation appends into it
// without any heap allocation in steady state.
type MoveList struct {
	Moves [MaxMoves]Move
	Count int
}

// Push appends m to the list.
func (l *MoveList) Push(m Move) {
	l.Moves[l.Count] = m
	l.Count++
}

// Slice returns the populated prefix of the move buffer.
func (l *MoveList) Slice() []Move { return l.Moves[:l.Count] }

// Reset empties the list for reuse.
func (l *MoveList) Reset() { l.Count = 0 }
