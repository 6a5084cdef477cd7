package bitboard

import (
	"testing"

	"github.com/corvidchess/chesscore/types"
)

func TestLineSharedRank(t *testing.T) {
	got := Line(types.A4, types.H4)
	if got != RankMask[types.Rank4] {
		t.Fatalf("Line(a4,h4) = %#x, want rank 4 mask %#x", uint64(got), uint64(RankMask[types.Rank4]))
	}
	// Line is symmetric and includes squares on both sides of either
	// endpoint, not just between them.
	if !Line(types.D4, types.F4).Has(types.A4) {
		t.Fatal("Line(d4,f4) doesn't include a4, which lies on the same rank")
	}
}

func TestLineSharedDiagonal(t *testing.T) {
	got := Line(types.A1, types.D4)
	if !got.Has(types.H8) || !got.Has(types.A1) {
		t.Fatalf("Line(a1,d4) = %#x, missing an endpoint of the a1-h8 diagonal", uint64(got))
	}
}

func TestLineUnrelatedSquares(t *testing.T) {
	if got := Line(types.A1, types.B3); got != Empty {
		t.Fatalf("Line(a1,b3) = %#x, want Empty", uint64(got))
	}
}

func TestBetweenExclusive(t *testing.T) {
	got := Between(types.A1, types.A5)
	want := FromSquare(types.A2) | FromSquare(types.A3) | FromSquare(types.A4)
	if got != want {
		t.Fatalf("Between(a1,a5) = %#x, want %#x", uint64(got), uint64(want))
	}
	if got.Has(types.A1) || got.Has(types.A5) {
		t.Fatal("Between includes an endpoint")
	}
}

func TestBetweenAdjacent(t *testing.T) {
	if got := Between(types.A1, types.A2); got != Empty {
		t.Fatalf("Between(a1,a2) = %#x, want Empty", uint64(got))
	}
}

func TestBetweenUnrelated(t *testing.T) {
	if got := Between(types.A1, types.B3); got != Empty {
		t.Fatalf("Between(a1,b3) = %#x, want Empty", uint64(got))
	}
}

func TestDistance(t *testing.T) {
	testcases := []struct {
		a, b types.Square
		want int
	}{
		{types.A1, types.A1, 0},
		{types.A1, types.H8, 7},
		{types.A1, types.A8, 7},
		{types.E4, types.F5, 1},
		{types.A1, types.B3, 2},
	}
	for _, tc := range testcases {
		if got := Distance(tc.a, tc.b); got != tc.want {
			t.Errorf("Distance(%v,%v) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestBetweenIsSymmetric(t *testing.T) {
	// Between is only meaningful between two squares sharing a line; both
	// orderings must return the same square set.
	a, b := Between(types.B2, types.F6), Between(types.F6, types.B2)
	if a != b {
		t.Fatalf("Between(b2,f6)=%#x != Between(f6,b2)=%#x", uint64(a), uint64(b))
	}
}
