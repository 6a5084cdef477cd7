// Package types declares the strongly-typed primitives the rest of the
// module is built on: squares, files, ranks, directions, colors, piece
// types, encoded pieces, castling rights and the packed Move.
package types

import "fmt"

// Square identifies one of the 64 board squares, file-major: a1=0, h1=7,
// a8=56, h8=63.
type Square int8

// NoSquare is the sentinel used at API boundaries where a square may be
// absent (e.g. no en-passant target). It is distinct from any real square.
const NoSquare Square = -1

// Square indices, matching the a1=0 .. h8=63 layout.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// File identifies a file a..h, 0-indexed.
type File int8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

// Rank identifies a rank 1..8, 0-indexed.
type Rank int8

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

// Direction is a square-index delta applied by Square.Offset.
type Direction int8

const (
	North     Direction = 8
	South     Direction = -8
	East      Direction = 1
	West      Direction = -1
	NorthEast Direction = 9
	NorthWest Direction = 7
	SouthEast Direction = -7
	SouthWest Direction = -9
)

// FromIndex constructs a Square from a raw 0..63 index. Out-of-range
// indices are not validated; callers that accept untrusted input must
// range-check first.
func FromIndex(i int) Square { return Square(i) }

// ToIndex returns the raw 0..63 index backing the square.
func (s Square) ToIndex() int { return int(s) }

// File returns the file component of the square.
func (s Square) File() File { return File(s & 7) }

// Rank returns the rank component of the square.
func (s Square) Rank() Rank { return Rank(s >> 3) }

// IsDark reports whether the square is a dark square.
func (s Square) IsDark() bool { return (int(s.File())+int(s.Rank()))%2 == 0 }

// IsValid reports whether s is within the 0..63 board range.
func (s Square) IsValid() bool { return s >= A1 && s <= H8 }

// Offset returns the square reached by moving one step in d, and false if
// that step leaves the board (including wrap-around across file edges).
func (s Square) Offset(d Direction) (Square, bool) {
	to := Square(int(s) + int(d))
	if to < A1 || to > H8 {
		return NoSquare, false
	}
	// Reject wraps across the a/h file edge: a legal single step changes
	// file by at most one.
	df := int(to.File()) - int(s.File())
	if df > 1 || df < -1 {
		return NoSquare, false
	}
	return to, true
}

// squareNames holds the algebraic name of every square, indexed by Square.
var squareNames = [64]string{
	"a1", "b1", "c1", "d1", "e1", "f1", "g1", "h1",
	"a2", "b2", "c2", "d2", "e2", "f2", "g2", "h2",
	"a3", "b3", "c3", "d3", "e3", "f3", "g3", "h3",
	"a4", "b4", "c4", "d4", "e4", "f4", "g4", "h4",
	"a5", "b5", "c5", "d5", "e5", "f5", "g5", "h5",
	"a6", "b6", "c6", "d6", "e6", "f6", "g6", "h6",
	"a7", "b7", "c7", "d7", "e7", "f7", "g7", "h7",
	"a8", "b8", "c8", "d8", "e8", "f8", "g8", "h8",
}

// String renders the square in algebraic notation, e.g. "e4".
func (s Square) String() string {
	if !s.IsValid() {
		return "-"
	}
	return squareNames[s]
}

// ParseSquare parses an algebraic square name ("e4") into a Square.
// "-" parses to NoSquare.
func ParseSquare(str string) (Square, error) {
	if str == "-" {
		return NoSquare, nil
	}
	if len(str) != 2 || str[0] < 'a' || str[0] > 'h' || str[1] < '1' || str[1] > '8' {
		return NoSquare, fmt.Errorf("types: invalid square %q", str)
	}
	f := File(str[0] - 'a')
	r := Rank(str[1] - '1')
	return Square(int(r)*8 + int(f)), nil
}
