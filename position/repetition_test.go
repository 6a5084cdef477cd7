package position

import (
	"testing"

	"github.com/corvidchess/chesscore/types"
)

func TestThreefoldRepetitionByShuffling(t *testing.T) {
	p, err := FromFEN("4k3/8/8/8/8/8/8/4K2R w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	shuffle := []types.Move{
		types.NewMove(types.E1, types.D1, types.Normal),
		types.NewMove(types.E8, types.D8, types.Normal),
		types.NewMove(types.D1, types.E1, types.Normal),
		types.NewMove(types.D8, types.E8, types.Normal),
	}
	// One full shuffle cycle returns to the start position (occurrence 2);
	// a second cycle brings it to occurrence 3.
	for cycle := 0; cycle < 2; cycle++ {
		for _, m := range shuffle {
			p.MakeMove(m)
		}
	}
	if !p.IsThreefoldRepetition() {
		t.Fatal("expected threefold repetition after two full shuffle cycles")
	}
}

// TestHasUpcomingRepetitionDetectsReversibleCycle shuffles White's rook
// out and back while Black's king makes its one and only move, so the
// position three plies in differs from the start position by exactly
// one reversible move (Black's king e8-d8) — an upcoming repetition the
// direct-history check (which needs a 4-ply gap) can't see yet.
func TestHasUpcomingRepetitionDetectsReversibleCycle(t *testing.T) {
	p, err := FromFEN("4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	p.MakeMove(types.NewMove(types.A1, types.B1, types.Normal))
	p.MakeMove(types.NewMove(types.E8, types.D8, types.Normal))
	p.MakeMove(types.NewMove(types.B1, types.A1, types.Normal))

	if p.IsRepetitionDraw() {
		t.Fatal("three plies in, the position hasn't actually repeated yet")
	}
	if !p.HasUpcomingRepetition() {
		t.Fatal("expected an upcoming repetition via the rook's canceled-out shuffle")
	}
}

func TestHasUpcomingRepetitionFalseEarly(t *testing.T) {
	p, err := FromFEN(StartFEN)
	if err != nil {
		t.Fatal(err)
	}
	p.MakeMove(types.NewMove(types.E2, types.E4, types.Normal))
	if p.HasUpcomingRepetition() {
		t.Fatal("a single pawn push can't set up an upcoming repetition")
	}
}

func TestNoRepetitionAfterIrreversibleMove(t *testing.T) {
	p, err := FromFEN(StartFEN)
	if err != nil {
		t.Fatal(err)
	}
	p.MakeMove(types.NewMove(types.E2, types.E4, types.Normal))
	if p.IsThreefoldRepetition() {
		t.Fatal("a single pawn push can't be a repetition")
	}
}

func TestIsFiftyMoveDraw(t *testing.T) {
	p, err := FromFEN("4k3/8/8/8/8/8/8/4K2R w K - 99 1")
	if err != nil {
		t.Fatal(err)
	}
	if p.IsFiftyMoveDraw() {
		t.Fatal("Rule50 == 99 shouldn't be a draw yet")
	}
	p.MakeMove(types.NewMove(types.E1, types.D1, types.Normal))
	if !p.IsFiftyMoveDraw() {
		t.Fatal("Rule50 == 100 should be a fifty-move draw")
	}
}

func TestIsInsufficientMaterialBareKings(t *testing.T) {
	p, err := FromFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if !p.IsInsufficientMaterial() {
		t.Fatal("bare king vs bare king should be insufficient material")
	}
}

func TestIsInsufficientMaterialLoneMinor(t *testing.T) {
	p, err := FromFEN("4k3/8/8/8/8/8/8/3NK3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if !p.IsInsufficientMaterial() {
		t.Fatal("king+knight vs bare king should be insufficient material")
	}
}

func TestIsInsufficientMaterialSameColorBishops(t *testing.T) {
	p, err := FromFEN("3bk3/8/8/8/8/8/8/2B1K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if !p.IsInsufficientMaterial() {
		t.Fatal("same-colored-bishop endgame should be insufficient material")
	}
}

func TestIsInsufficientMaterialOppositeColorBishopsNotDrawn(t *testing.T) {
	p, err := FromFEN("2b1k3/8/8/8/8/8/8/2B1K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if p.IsInsufficientMaterial() {
		t.Fatal("opposite-colored bishops should not be flagged insufficient")
	}
}

func TestIsInsufficientMaterialRookIsSufficient(t *testing.T) {
	p, err := FromFEN("4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if p.IsInsufficientMaterial() {
		t.Fatal("a lone rook is sufficient material")
	}
}
