package position

import (
	"testing"

	"github.com/corvidchess/chesscore/types"
)

func TestCloneIsIndependent(t *testing.T) {
	p, err := FromFEN(StartFEN)
	if err != nil {
		t.Fatal(err)
	}
	clone := p.Clone()
	clone.MakeMove(types.NewMove(types.E2, types.E4, types.Normal))

	if p.SideToMove() != types.White {
		t.Fatal("mutating the clone changed the original's side to move")
	}
	if p.Board().PieceAt(types.E2) == types.NoPiece {
		t.Fatal("mutating the clone moved the original's e2 pawn")
	}
	if clone.SideToMove() != types.Black {
		t.Fatal("clone's MakeMove didn't flip its own side to move")
	}
}

func TestInCheckFromStart(t *testing.T) {
	p, err := FromFEN(StartFEN)
	if err != nil {
		t.Fatal(err)
	}
	if p.InCheck() {
		t.Fatal("start position reports check")
	}
}

func TestInCheckScholarsMate(t *testing.T) {
	// Black to move, in check from the queen on f7.
	p, err := FromFEN("rnbqkbnr/pppp1Qpp/8/4p3/4P3/8/PPPP1PPP/RNB1KBNR b KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if !p.InCheck() {
		t.Fatal("expected black to be in check")
	}
	if p.Checkers() == 0 {
		t.Fatal("Checkers() is empty despite InCheck() == true")
	}
}

func TestAttackersToStartPosition(t *testing.T) {
	p, err := FromFEN(StartFEN)
	if err != nil {
		t.Fatal(err)
	}
	// d3 is attacked by the c2 and e2 pawns.
	attackers := p.AttackersTo(types.D3, p.Board().Occupied())
	if !attackers.Has(types.C2) || !attackers.Has(types.E2) {
		t.Fatalf("AttackersTo(d3) = %#x, expected c2 and e2 pawns", uint64(attackers))
	}
}

func TestGivesCheckDiscovered(t *testing.T) {
	// Black king on e8, white rook on e1, white knight on e3 blocking the
	// file; moving the knight off the e-file uncovers check from the rook.
	p, err := FromFEN("4k3/8/8/8/8/4N3/8/4R1K1 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	m := types.NewMove(types.E3, types.D5, types.Normal)
	if !p.GivesCheck(m) {
		t.Fatal("expected discovered check when the knight vacates the e-file")
	}
}

func TestIsLegalKingCannotWalkIntoCheck(t *testing.T) {
	// White king on e1, black rook on e8: e1-e2 stays on the rook's file
	// and is illegal.
	p, err := FromFEN("4r2k/8/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	m := types.NewMove(types.E1, types.E2, types.Normal)
	if p.IsLegal(m) {
		t.Fatal("Ke1-e2 should be illegal: still on the e-file facing the rook")
	}
	m2 := types.NewMove(types.E1, types.D2, types.Normal)
	if !p.IsLegal(m2) {
		t.Fatal("Ke1-d2 should be legal: steps off the e-file")
	}
}

func TestIsLegalPinnedPieceMustStayOnLine(t *testing.T) {
	// White king e1, white bishop e2 pinned by black rook e8.
	p, err := FromFEN("4r3/8/8/8/8/8/4B3/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	offLine := types.NewMove(types.E2, types.D3, types.Normal)
	if p.IsLegal(offLine) {
		t.Fatal("pinned bishop should not be able to leave the e-file")
	}
	onLine := types.NewMove(types.E2, types.E3, types.Normal)
	if !p.IsLegal(onLine) {
		t.Fatal("pinned bishop should be able to move along the pin line")
	}
}
