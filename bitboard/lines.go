package bitboard

import (
	"golang.org/x/exp/constraints"

	"github.com/corvidchess/chesscore/types"
)

// lineTable[a][b] holds the full line (rank, file or diagonal) passing
// through both a and b, or Empty if they don't share one.
var lineTable [64][64]BitBoard

// betweenTable[a][b] holds the squares strictly between a and b along a
// shared rank, file or diagonal, exclusive of both endpoints, or Empty if
// they don't share one.
var betweenTable [64][64]BitBoard

// distanceTable[a][b] holds the Chebyshev (king-move) distance between a
// and b, precomputed alongside line/between since all three are pure
// functions of a square pair.
var distanceTable [64][64]int

// Line returns the infinite rank, file or diagonal shared by a and b, or
// Empty if they don't lie on a common one.
func Line(a, b types.Square) BitBoard { return lineTable[a][b] }

// Between returns the squares strictly between a and b, exclusive, when
// they share a rank, file or diagonal; Empty otherwise. Between(a, a) is
// Empty.
func Between(a, b types.Square) BitBoard { return betweenTable[a][b] }

// Distance returns the Chebyshev distance between a and b: the number of
// king moves needed to go from one to the other.
func Distance(a, b types.Square) int { return distanceTable[a][b] }

func maxOf[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

func absDiff[T constraints.Signed](a, b T) T {
	if a > b {
		return a - b
	}
	return b - a
}

// axisPairs groups the eight ray directions into the four axes (file,
// rank, and the two diagonals) a sliding piece can move along.
var axisPairs = [4][2]types.Direction{
	{types.North, types.South},
	{types.East, types.West},
	{types.NorthEast, types.SouthWest},
	{types.NorthWest, types.SouthEast},
}

// ray walks from a in direction d, returning the visited squares in order
// and their union as a bitboard.
func ray(a types.Square, d types.Direction) ([]types.Square, BitBoard) {
	var squares []types.Square
	var mask BitBoard
	cur := a
	for {
		next, ok := cur.Offset(d)
		if !ok {
			break
		}
		squares = append(squares, next)
		mask = mask.Set(next)
		cur = next
	}
	return squares, mask
}

func initLines() {
	for a := types.A1; a <= types.H8; a++ {
		for b := types.A1; b <= types.H8; b++ {
			fileDist := absDiff(int(a.File()), int(b.File()))
			rankDist := absDiff(int(a.Rank()), int(b.Rank()))
			distanceTable[a][b] = maxOf(fileDist, rankDist)
		}
		for _, axis := range axisPairs {
			posSquares, posMask := ray(a, axis[0])
			negSquares, negMask := ray(a, axis[1])
			full := FromSquare(a) | posMask | negMask

			var seen BitBoard
			for _, b := range posSquares {
				betweenTable[a][b] = seen
				lineTable[a][b] = full
				seen = seen.Set(b)
			}
			seen = Empty
			for _, b := range negSquares {
				betweenTable[a][b] = seen
				lineTable[a][b] = full
				seen = seen.Set(b)
			}
		}
	}
}
