package bitboard

import (
	"testing"

	"github.com/corvidchess/chesscore/types"
)

func TestRookAttacksOpenBoard(t *testing.T) {
	got := RookAttacks(types.D4, Empty)
	want := FileMask[types.FileD] | RankMask[types.Rank4]
	want &^= FromSquare(types.D4)
	if got != want {
		t.Fatalf("RookAttacks(d4, empty) = %#x, want %#x", uint64(got), uint64(want))
	}
}

func TestRookAttacksBlocked(t *testing.T) {
	occ := FromSquare(types.D4) | FromSquare(types.D6) | FromSquare(types.F4)
	got := RookAttacks(types.D4, occ)
	want := FromSquare(types.D5) | FromSquare(types.D6) |
		FromSquare(types.D3) | FromSquare(types.D2) | FromSquare(types.D1) |
		FromSquare(types.E4) | FromSquare(types.F4) |
		FromSquare(types.C4) | FromSquare(types.B4) | FromSquare(types.A4)
	if got != want {
		t.Fatalf("RookAttacks(d4, blocked) = %#x, want %#x", uint64(got), uint64(want))
	}
}

func TestBishopAttacksBlocked(t *testing.T) {
	occ := FromSquare(types.D4) | FromSquare(types.F6) | FromSquare(types.B2)
	got := BishopAttacks(types.D4, occ)
	want := FromSquare(types.E5) | FromSquare(types.F6) |
		FromSquare(types.C5) | FromSquare(types.B6) | FromSquare(types.A7) |
		FromSquare(types.E3) | FromSquare(types.F2) | FromSquare(types.G1) |
		FromSquare(types.C3) | FromSquare(types.B2)
	if got != want {
		t.Fatalf("BishopAttacks(d4, blocked) = %#x, want %#x", uint64(got), uint64(want))
	}
}

func TestQueenAttacksIsUnionOfRookAndBishop(t *testing.T) {
	occ := FromSquare(types.D4) | FromSquare(types.D6) | FromSquare(types.F6)
	got := QueenAttacks(types.D4, occ)
	want := RookAttacks(types.D4, occ) | BishopAttacks(types.D4, occ)
	if got != want {
		t.Fatalf("QueenAttacks(d4) = %#x, want %#x", uint64(got), uint64(want))
	}
}

func TestRookAttacksEveryCorner(t *testing.T) {
	for _, sq := range []types.Square{types.A1, types.H1, types.A8, types.H8} {
		got := RookAttacks(sq, Empty)
		if got.PopCount() != 14 {
			t.Errorf("RookAttacks(%s, empty) has %d squares, want 14", sq, got.PopCount())
		}
	}
}

func TestBishopAttacksEveryCorner(t *testing.T) {
	for _, sq := range []types.Square{types.A1, types.H1, types.A8, types.H8} {
		got := BishopAttacks(sq, Empty)
		if got.PopCount() != 7 {
			t.Errorf("BishopAttacks(%s, empty) has %d squares, want 7", sq, got.PopCount())
		}
	}
}
