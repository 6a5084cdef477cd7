package cuckoo

import (
	"os"
	"testing"

	"github.com/corvidchess/chesscore/bitboard"
	"github.com/corvidchess/chesscore/types"
	"github.com/corvidchess/chesscore/zobrist"
)

func TestMain(m *testing.M) {
	bitboard.Init()
	Init()
	os.Exit(m.Run())
}

func TestLookupFindsKnownReversibleMove(t *testing.T) {
	// A knight hop b1-c3 is reversible and unconditional (no occupancy
	// dependency), so Init must have registered it.
	piece := types.NewPiece(types.White, types.Knight)
	key := zobrist.Native.PieceKey(piece, types.B1) ^
		zobrist.Native.PieceKey(piece, types.C3) ^
		zobrist.Native.Side

	m, ok := Lookup(key)
	if !ok {
		t.Fatal("Lookup did not find the b1-c3 knight move")
	}
	from, to := m.From(), m.To()
	if (from != types.B1 || to != types.C3) && (from != types.C3 || to != types.B1) {
		t.Fatalf("Lookup returned %v, want a b1<->c3 move", m)
	}
}

func TestLookupMissingKeyReturnsFalse(t *testing.T) {
	if _, ok := Lookup(0xDEADBEEFCAFEBABE); ok {
		t.Fatal("Lookup unexpectedly found an unregistered key")
	}
}

func TestLookupRookMove(t *testing.T) {
	piece := types.NewPiece(types.Black, types.Rook)
	key := zobrist.Native.PieceKey(piece, types.A8) ^
		zobrist.Native.PieceKey(piece, types.H8) ^
		zobrist.Native.Side

	if _, ok := Lookup(key); !ok {
		t.Fatal("Lookup did not find the a8-h8 rook move")
	}
}
