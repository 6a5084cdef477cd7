package bitboard

import "sync"

var initOnce sync.Once

// Init computes every precomputed table the package relies on: leaper
// attacks, magic sliding-attack tables, and the line/between tables. It is
// safe to call from multiple goroutines; only the first call does any
// work, and every call blocks until initialization has completed. Callers
// that use the package's lookup functions must call Init first; the
// resulting tables are read-only afterward and may be shared freely
// across goroutines.
func Init() {
	initOnce.Do(func() {
		initLeapers()
		initMagics()
		initLines()
	})
}
