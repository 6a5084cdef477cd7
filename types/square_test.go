package types

import "testing"

func TestSquareFileRank(t *testing.T) {
	testcases := []struct {
		sq           Square
		file         File
		rank         Rank
	}{
		{A1, FileA, Rank1},
		{H1, FileH, Rank1},
		{E4, FileE, Rank4},
		{H8, FileH, Rank8},
	}

	for _, tc := range testcases {
		if got := tc.sq.File(); got != tc.file {
			t.Errorf("%s.File() = %v, want %v", tc.sq, got, tc.file)
		}
		if got := tc.sq.Rank(); got != tc.rank {
			t.Errorf("%s.Rank() = %v, want %v", tc.sq, got, tc.rank)
		}
	}
}

func TestSquareStringRoundTrip(t *testing.T) {
	for sq := A1; sq <= H8; sq++ {
		s := sq.String()
		got, err := ParseSquare(s)
		if err != nil {
			t.Fatalf("ParseSquare(%q): %v", s, err)
		}
		if got != sq {
			t.Errorf("ParseSquare(%q) = %v, want %v", s, got, sq)
		}
	}
}

func TestParseSquareDash(t *testing.T) {
	sq, err := ParseSquare("-")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sq != NoSquare {
		t.Errorf("ParseSquare(\"-\") = %v, want NoSquare", sq)
	}
}

func TestParseSquareInvalid(t *testing.T) {
	for _, s := range []string{"", "i9", "a0", "a9", "aa", "e44"} {
		if _, err := ParseSquare(s); err == nil {
			t.Errorf("ParseSquare(%q) expected error, got nil", s)
		}
	}
}

func TestSquareOffset(t *testing.T) {
	testcases := []struct {
		sq   Square
		dir  Direction
		want Square
		ok   bool
	}{
		{E4, North, E5, true},
		{E4, South, E3, true},
		{H4, East, NoSquare, false},
		{A4, West, NoSquare, false},
		{H8, North, NoSquare, false},
		{A1, South, NoSquare, false},
		{A4, NorthWest, NoSquare, false},
		{H4, NorthEast, NoSquare, false},
	}

	for _, tc := range testcases {
		got, ok := tc.sq.Offset(tc.dir)
		if ok != tc.ok || (ok && got != tc.want) {
			t.Errorf("%s.Offset(%v) = (%v, %v), want (%v, %v)", tc.sq, tc.dir, got, ok, tc.want, tc.ok)
		}
	}
}

func TestSquareIsDark(t *testing.T) {
	if !A1.IsDark() {
		t.Error("a1 is a dark square")
	}
	if H1.IsDark() {
		t.Error("h1 is a light square")
	}
}
