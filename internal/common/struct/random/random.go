// Released under an MIT license. See LICENSE.

// Package random provides the shared source for randomly chosen positions.
package random

import (
	"math/rand"
	"sync"
)

// T (random) is a pseudo-random source that is safe for concurrent use.
type T struct {
	sync.Mutex
	r *rand.Rand
}

type random = T

// New creates a new random source seeded with seed.
func New(seed int64) *random {
	return &random{r: rand.New(rand.NewSource(seed))} //nolint:gosec
}

// Between returns a uniformly chosen integer in [min, max].
// If max is less than min, min is returned.
func (r *random) Between(min, max int) int {
	if max <= min {
		return min
	}

	r.Lock()
	defer r.Unlock()

	return min + r.r.Intn(max-min+1)
}
