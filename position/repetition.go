package position

import (
	"github.com/corvidchess/chesscore/bitboard"
	"github.com/corvidchess/chesscore/cuckoo"
	"github.com/corvidchess/chesscore/types"
)

// updateRepetition sets st.Repetition by walking back through the state
// array comparing keys, instead of the map-of-FEN-strings the teacher
// keeps at the game layer: since the key is already maintained
// incrementally, a repeated key is found by direct comparison against
// earlier plies within the rule-50/null-move window. A negative value
// marks the ply distance to the nearest earlier repeat; it is made
// positive instead when that earlier state is itself already flagged as
// a repeat, so a second-order repetition is recognized in one pass.
func (p *Position) updateRepetition(st *State) {
	st.Repetition = 0
	end := st.Rule50
	if st.PliesFromNull < end {
		end = st.PliesFromNull
	}
	if end < 4 {
		return
	}
	for i := 4; i <= end; i += 2 {
		that := &p.states[p.ply-i]
		if that.Key == st.Key {
			st.Repetition = -i
			if that.Repetition != 0 {
				st.Repetition = i
			}
			return
		}
	}
}

// IsRepetitionDraw reports whether the current position repeats an
// earlier one since the last irreversible or null move (Repetition != 0),
// the cheap O(1) check a search driver polls every node rather than
// walking full history. Upcoming repetitions are reported by
// HasUpcomingRepetition, not here.
func (p *Position) IsRepetitionDraw() bool { return p.st().Repetition != 0 }

// IsThreefoldRepetition reports whether the current position's key has
// occurred at least three times (counting itself) since the last
// irreversible move or null move, the rule that actually ends a game
// rather than the search-only repetition signal above.
func (p *Position) IsThreefoldRepetition() bool {
	key := p.st().Key
	end := p.st().Rule50
	if p.st().PliesFromNull < end {
		end = p.st().PliesFromNull
	}
	count := 1
	for i := 4; i <= end; i += 2 {
		if p.states[p.ply-i].Key == key {
			count++
			if count >= 3 {
				return true
			}
		}
	}
	return false
}

// HasUpcomingRepetition reports whether, within the current rule-50/
// null-move window, some earlier position is one reversible move away
// from recurring the current one: the Stockfish-style "has_game_cycle"
// cuckoo probe a search driver polls to flag a likely draw before the
// repetition actually lands in the tree, as distinct from
// IsRepetitionDraw's direct comparison against positions that have
// already occurred. Like Stockfish's version, i starts at 3 rather than
// 4: the cuckoo table's keys already carry one side-to-move toggle, so
// they only match a key delta accumulated over an odd number of plies.
func (p *Position) HasUpcomingRepetition() bool {
	st := p.st()
	end := st.Rule50
	if st.PliesFromNull < end {
		end = st.PliesFromNull
	}
	if end > p.ply {
		end = p.ply
	}
	if end < 3 {
		return false
	}

	occ := p.board.Occupied()
	originalKey := st.Key
	for i := 3; i <= end; i += 2 {
		other := &p.states[p.ply-i]
		moveKey := originalKey ^ other.Key
		m, ok := cuckoo.Lookup(moveKey)
		if !ok {
			continue
		}
		if (bitboard.Between(m.From(), m.To()) & occ).Any() {
			continue
		}
		return true
	}
	return false
}

// IsFiftyMoveDraw reports whether the halfmove clock has reached 100
// (fifty full moves without a capture or pawn move).
func (p *Position) IsFiftyMoveDraw() bool { return p.st().Rule50 >= 100 }

// IsInsufficientMaterial reports whether neither side has enough material
// to deliver checkmate by any sequence of legal moves:
//  1. bare king against bare king,
//  2. a lone minor piece (knight or bishop) against a bare king,
//  3. king and bishop against king and bishop, both bishops on the same
//     color complex,
//  4. king and knight against king and knight.
func (p *Position) IsInsufficientMaterial() bool {
	b := p.board
	if b.ByType(types.Pawn).Any() || b.ByType(types.Queen).Any() || b.ByType(types.Rook).Any() {
		return false
	}
	knights := b.CountOf(types.White, types.Knight) + b.CountOf(types.Black, types.Knight)
	bishops := b.ByType(types.Bishop)
	bishopCount := bishops.PopCount()

	switch {
	case knights == 0 && bishopCount == 0:
		return true
	case knights+bishopCount == 1:
		return true
	case knights == 0 && bishopCount == 2:
		wb := b.Pieces(types.White, types.Bishop)
		bb := b.Pieces(types.Black, types.Bishop)
		return wb.Any() && bb.Any() && wb.LSB().IsDark() == bb.LSB().IsDark()
	case bishopCount == 0 && knights == 2:
		return b.CountOf(types.White, types.Knight) == 1 && b.CountOf(types.Black, types.Knight) == 1
	}
	return false
}
