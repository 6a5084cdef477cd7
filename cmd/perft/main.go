// Command perft runs a depth-limited leaf count from a FEN position and
// reports the node count and elapsed time, the standard way to exercise
// the core against published perft reference values.
package main

import (
	"flag"
	"log"
	"time"

	"golang.org/x/exp/slices"

	"github.com/corvidchess/chesscore/bitboard"
	"github.com/corvidchess/chesscore/cuckoo"
	"github.com/corvidchess/chesscore/perft"
	"github.com/corvidchess/chesscore/position"
	"github.com/corvidchess/chesscore/types"
)

func main() {
	fen := flag.String("fen", position.StartFEN, "FEN of the root position")
	depth := flag.Int("depth", 5, "perft depth")
	divide := flag.Bool("divide", false, "print per-root-move subtree counts")
	cpuprofile := flag.String("cpuprofile", "", "write a CPU profile to this file")

	flag.Parse()

	bitboard.Init()
	cuckoo.Init()

	if *cpuprofile != "" {
		startProfile(*cpuprofile)
		defer stopProfile()
	}

	pos, err := position.FromFEN(*fen)
	if err != nil {
		log.Fatalf("perft: %v", err)
	}

	start := time.Now()

	if *divide {
		results := perft.Divide(pos, *depth)
		moves := make([]types.Move, 0, len(results))
		for m := range results {
			moves = append(moves, m)
		}
		// Map iteration order is randomized; sort by packed move value so two runs
		// against the same position produce byte-identical output.
		slices.SortFunc(moves, func(a, b types.Move) int {
			return int(a) - int(b)
		})

		var total int64
		for _, m := range moves {
			n := results[m]
			log.Printf("%s %d", m.UCI(), n)
			total += n
		}
		log.Printf("Nodes: %d", total)
	} else {
		nodes := perft.Count(pos, *depth)
		log.Printf("Nodes: %d", nodes)
	}

	log.Printf("Elapsed: %s", time.Since(start))
}
