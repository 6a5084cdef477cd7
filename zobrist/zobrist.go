// Package zobrist supplies the random 64-bit words used to hash a
// position into a single key: one word per (piece, square), one per
// castle-rights combination, one per en-passant file, a side-to-move
// toggle, and a "no pawn" seed for the initial pawn-structure key. Keys
// are built by XORing the relevant words together, which lets Position
// maintain them incrementally across make/unmake instead of rehashing the
// whole board.
package zobrist

import (
	"math/rand/v2"

	"github.com/corvidchess/chesscore/types"
)

// Keys holds one complete random table: the layout of Native, this
// package's own table. The Polyglot table below is a separate type.
type Keys struct {
	// Piece indexed by types.Piece (0..15, slots for invalid color*type
	// combinations unused).
	Piece [16][64]uint64
	// Castle indexed by the full types.CastleRight bitmask, 0..15.
	Castle [16]uint64
	// EPFile indexed by types.File.
	EPFile [8]uint64
	Side   uint64
	// NoPawns seeds the pawn-structure key of a position with no pawns,
	// so an empty pawn structure doesn't hash to zero.
	NoPawns uint64
}

// Native is the module's own position-key table: filled once at init from
// a fixed PCG seed, so it is identical across runs, never published.
var Native Keys

// Polyglot is laid out the way the published Polyglot opening-book format
// expects: piece index order is BP=0, WP=1, BN=2, WN=3, BB=4, WB=5,
// BR=6, WR=7, BQ=8, WQ=9, BK=10, WK=11 (color-minor before color-major,
// black before white), castle words are one per individual right rather
// than per combination, and there is no NoPawns seed. The word values
// here are generated deterministically by this package rather than
// copied from the official published constants; bit-exact opening-book
// interop requires substituting the published table, which is out of
// this package's scope (see Position's key is never checked against a
// third-party book).
var Polyglot struct {
	// PieceSquare[polyglotPieceIndex][square].
	PieceSquare [12][64]uint64
	// Castle[0]=WhiteOO, [1]=WhiteOOO, [2]=BlackOO, [3]=BlackOOO.
	Castle [4]uint64
	EPFile [8]uint64
	Side   uint64
}

func init() {
	seed := rand.NewPCG(0x9E3779B97F4A7C15, 0xBF58476D1CE4E5B9)
	rng := rand.New(seed)

	for p := 0; p < 16; p++ {
		for sq := 0; sq < 64; sq++ {
			Native.Piece[p][sq] = rng.Uint64()
		}
	}
	for i := range Native.Castle {
		Native.Castle[i] = rng.Uint64()
	}
	for f := range Native.EPFile {
		Native.EPFile[f] = rng.Uint64()
	}
	Native.Side = rng.Uint64()
	Native.NoPawns = rng.Uint64()

	polySeed := rand.NewPCG(0x243F6A8885A308D3, 0x13198A2E03707344)
	poly := rand.New(polySeed)
	for p := 0; p < 12; p++ {
		for sq := 0; sq < 64; sq++ {
			Polyglot.PieceSquare[p][sq] = poly.Uint64()
		}
	}
	for i := range Polyglot.Castle {
		Polyglot.Castle[i] = poly.Uint64()
	}
	for f := range Polyglot.EPFile {
		Polyglot.EPFile[f] = poly.Uint64()
	}
	Polyglot.Side = poly.Uint64()
}

// PolyglotPieceIndex maps a types.Piece to its Polyglot table row.
func PolyglotPieceIndex(p types.Piece) int {
	base := map[types.PieceType]int{
		types.Pawn:   0,
		types.Knight: 1,
		types.Bishop: 2,
		types.Rook:   3,
		types.Queen:  4,
		types.King:   5,
	}[p.Type()]
	idx := base*2 + 1
	if p.Color() == types.Black {
		idx = base * 2
	}
	return idx
}

// PieceKey returns the native XOR word for a piece standing on sq.
func (k *Keys) PieceKey(p types.Piece, sq types.Square) uint64 { return k.Piece[p][sq] }

// CastleKey returns the native XOR word for a full castle-rights mask.
func (k *Keys) CastleKey(cr types.CastleRight) uint64 { return k.Castle[cr] }

// EPFileKey returns the native XOR word for an en-passant file.
func (k *Keys) EPFileKey(f types.File) uint64 { return k.EPFile[f] }
