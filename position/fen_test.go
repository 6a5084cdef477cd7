package position

import (
	"os"
	"testing"

	"github.com/corvidchess/chesscore/bitboard"
	"github.com/corvidchess/chesscore/cuckoo"
	"github.com/corvidchess/chesscore/types"
)

func TestMain(m *testing.M) {
	bitboard.Init()
	cuckoo.Init()
	os.Exit(m.Run())
}

func TestFromFENStartPosition(t *testing.T) {
	p, err := FromFEN(StartFEN)
	if err != nil {
		t.Fatalf("FromFEN(StartFEN): %v", err)
	}
	if p.SideToMove() != types.White {
		t.Error("side to move != White")
	}
	if p.CastleRights() != types.AllCastleRights {
		t.Errorf("CastleRights = %v, want all", p.CastleRights())
	}
	if p.EPSquare() != types.NoSquare {
		t.Error("EPSquare != NoSquare")
	}
	if p.Rule50() != 0 {
		t.Error("Rule50 != 0")
	}
	if p.FullMoveNumber() != 1 {
		t.Error("FullMoveNumber != 1")
	}
	if p.Board().PieceAt(types.E1) != types.NewPiece(types.White, types.King) {
		t.Error("e1 doesn't hold the white king")
	}
}

func TestToFENRoundTrip(t *testing.T) {
	testcases := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"4k3/8/8/8/8/3P4/2K5/8 w - - 0 64",
	}
	for _, fen := range testcases {
		p, err := FromFEN(fen)
		if err != nil {
			t.Fatalf("FromFEN(%q): %v", fen, err)
		}
		if got := p.ToFEN(); got != fen {
			t.Errorf("ToFEN() = %q, want %q", got, fen)
		}
	}
}

func TestFromFENFieldCount(t *testing.T) {
	_, err := FromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -")
	if err == nil {
		t.Fatal("expected an error for a 5-field FEN")
	}
}

func TestFromFENBadRankCount(t *testing.T) {
	_, err := FromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1")
	if err == nil {
		t.Fatal("expected an error for a 7-rank placement")
	}
}

func TestFromFENRankDoesNotTotalEight(t *testing.T) {
	_, err := FromFEN("rnbqkbnr/pppppppp/8/8/8/7/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if err == nil {
		t.Fatal("expected an error for a rank totalling 7 files")
	}
}

func TestFromFENPawnOnBackRank(t *testing.T) {
	_, err := FromFEN("Pnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if err == nil {
		t.Fatal("expected an error for a pawn on rank 8")
	}
}

func TestFromFENBadSideToMove(t *testing.T) {
	_, err := FromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1")
	if err == nil {
		t.Fatal("expected an error for an invalid side-to-move field")
	}
}

func TestFromFENBadCastling(t *testing.T) {
	_, err := FromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkx - 0 1")
	if err == nil {
		t.Fatal("expected an error for an invalid castling field")
	}
}

func TestFromFENEPWrongRank(t *testing.T) {
	_, err := FromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e4 0 1")
	if err == nil {
		t.Fatal("expected an error for an en-passant square not on rank 6")
	}
}

func TestFromFENMissingKing(t *testing.T) {
	_, err := FromFEN("rnbq1bnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQ1BNR w KQkq - 0 1")
	if err == nil {
		t.Fatal("expected an error for a position missing both kings")
	}
}

func TestFromFENFullmoveZero(t *testing.T) {
	_, err := FromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 0")
	if err == nil {
		t.Fatal("expected an error for a fullmove counter of 0")
	}
}

func TestFromFENTooManyPawns(t *testing.T) {
	_, err := FromFEN("k7/pppppppp/p7/8/8/8/8/K7 w - - 0 1")
	if err == nil {
		t.Fatal("expected an error for 9 black pawns")
	}
}

func TestFromFENTooManyPieces(t *testing.T) {
	_, err := FromFEN("qqqqqqqq/qqqqqqqq/7k/8/8/8/8/K7 w - - 0 1")
	if err == nil {
		t.Fatal("expected an error for 17 black pieces")
	}
}
