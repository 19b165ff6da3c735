package ipo

import "math/rand"

// defaultRNGSeed is used when no seed (or seed 0) is supplied, so unseeded
// generators are reproducible too.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand; seed 0 maps to defaultRNGSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}
