package generator

import "math/rand/v2"

// IntSource is the random source a Generator draws from.
// *rand.Rand satisfies it.
type IntSource interface {
	// IntN returns a value in [0, n). It panics if n <= 0.
	IntN(n int) int
}

// Bounds of a generated block. All ranges are inclusive.
const (
	MinSize  = 1
	MaxSize  = 1000
	MinValue = -10000
	MaxValue = 10000
)

// OutputFile is the fixed name of the generated document, relative to the working directory.
const OutputFile = "datgen.dat"

// NewRand returns a PCG-backed source. The same seed always yields the same document.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewEntropyRand returns a per-run source seeded from the runtime's top-level generator,
// so runs are not reproducible.
func NewEntropyRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
