// Package generator - RNG plumbing shared by every carving algorithm.
package generator

import (
	"math/rand"
	"time"
)

// newRNG builds the per-invocation PRNG. Policy:
//
//   - seeded:   rand.NewSource(seed) — identical seeds replay identical mazes.
//   - unseeded: the wall clock (UnixNano) picks a fresh stream.
//
// math/rand.Rand is not goroutine-safe; every Generate call owns its stream
// and never shares it.
//
// Complexity: O(1).
func newRNG(o Options) *rand.Rand {
	if o.seeded {
		return rand.New(rand.NewSource(o.seed))
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// shuffleWallsInPlace performs an in-place Fisher–Yates shuffle of walls
// using r.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleWallsInPlace(walls []wall, r *rand.Rand) {
	for i := len(walls) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		walls[i], walls[j] = walls[j], walls[i]
	}
}
