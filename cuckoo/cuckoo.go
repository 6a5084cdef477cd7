// Package cuckoo implements upcoming-repetition detection: a small
// two-slot hash table of every reversible move (a non-pawn, non-capture
// move between two squares) keyed by the Zobrist delta it would apply.
// Given the key difference between the current position and any position
// up to the rule-50 horizon back, a single table probe answers whether
// some earlier position is one reversible move away from recurring,
// without walking the whole history.
//
// There is no reference implementation of this table in the source this
// package was adapted from; the two-array cuckoo-hashing scheme below
// follows the well-known technique (used by, among others, Stockfish's
// cuckoo.cpp) of indexing reversible moves by two independent hash
// functions of the move's Zobrist key and evicting on collision.
package cuckoo

import (
	"sync"

	"github.com/corvidchess/chesscore/bitboard"
	"github.com/corvidchess/chesscore/types"
	"github.com/corvidchess/chesscore/zobrist"
)

const tableSize = 8192

var (
	keys  [tableSize]uint64
	moves [tableSize]types.Move
	// occupied tracks which slots hold a real entry, since the zero Move
	// (NullMove) is also a valid-looking zero key collision guard.
	occupied [tableSize]bool
)

func h1(key uint64) uint64 { return key & (tableSize/2 - 1) }
func h2(key uint64) uint64 { return (key >> 32) & (tableSize/2 - 1) + tableSize/2 }

// insert inserts (key, m) into the table using cuckoo re-hashing: starting
// at slot h1, whenever the slot it tries is occupied the existing entry is
// evicted and re-inserted at its other slot, repeatedly. The construction of the
// move set below guarantees this always terminates (it mirrors the
// well-known property that the reversible-move graph has no cycle long
// enough to starve eviction at this table size).
func insert(key uint64, m types.Move) {
	i := h1(key)
	for {
		if !occupied[i] {
			keys[i], moves[i], occupied[i] = key, m, true
			return
		}
		key, keys[i] = keys[i], key
		m, moves[i] = moves[i], m
		if i == h1(key) {
			i = h2(key)
		} else {
			i = h1(key)
		}
	}
}

// Lookup reports whether key corresponds to some registered reversible
// move, and if so returns it.
func Lookup(key uint64) (types.Move, bool) {
	i := h1(key)
	if occupied[i] && keys[i] == key {
		return moves[i], true
	}
	i = h2(key)
	if occupied[i] && keys[i] == key {
		return moves[i], true
	}
	return types.NullMove, false
}

// Init populates the table with every reversible move: a non-pawn piece
// sliding or stepping directly between two squares with no occupancy
// dependency for the relevant leaper/slider, keyed by the XOR of the
// Zobrist piece-square words for origin and destination plus the
// side-to-move toggle (since a reversible move also flips the side to
// move). It must run after bitboard.Init, and like that package's tables
// it is safe to call from multiple goroutines and is read-only once
// populated.
func Init() { initOnce.Do(buildTable) }

var initOnce sync.Once

func buildTable() {
	for t := types.Knight; t <= types.King; t++ {
		for c := types.White; c <= types.Black; c++ {
			piece := types.NewPiece(c, t)
			for from := types.A1; from <= types.H8; from++ {
				attacks := attacksFrom(t, from)
				for attacks.Any() {
					to := bitboard.PopLSB(&attacks)
					if to <= from {
						continue
					}
					key := zobrist.Native.PieceKey(piece, from) ^
						zobrist.Native.PieceKey(piece, to) ^
						zobrist.Native.Side
					insert(key, types.NewMove(from, to, types.Normal))
				}
			}
		}
	}
}

// attacksFrom computes a piece's attack set on an empty board, which is
// the correct occupancy for enumerating reversible moves: a reversible
// move must be playable with nothing in between (sliders) or is
// unconditional (leapers).
func attacksFrom(t types.PieceType, sq types.Square) bitboard.BitBoard {
	switch t {
	case types.Knight:
		return bitboard.KnightAttacks(sq)
	case types.King:
		return bitboard.KingAttacks(sq)
	case types.Bishop:
		return bitboard.BishopAttacks(sq, bitboard.Empty)
	case types.Rook:
		return bitboard.RookAttacks(sq, bitboard.Empty)
	case types.Queen:
		return bitboard.QueenAttacks(sq, bitboard.Empty)
	}
	return bitboard.Empty
}
