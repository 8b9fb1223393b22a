package skiplist

import (
	"math/bits"
	"math/rand/v2"
)

// MaxLevel caps tower heights. 32 levels are enough for roughly 2^32
// elements.
const MaxLevel = 32

// heightSampler draws tower heights from the geometric distribution
// P(h=k) = 2^-k, truncated at MaxLevel. Each insertion draws exactly
// once.
type heightSampler struct {
	rng *rand.Rand
}

// newHeightSampler wraps the given source. A nil source falls back to a
// randomly seeded PCG; tests inject a seeded source to get reproducible
// structures.
func newHeightSampler(src rand.Source) *heightSampler {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &heightSampler{rng: rand.New(src)}
}

// sample returns a height in [1, MaxLevel]. Counting trailing zero bits
// of one uniform draw plays out a whole run of coin flips in a single
// call.
func (s *heightSampler) sample() int {
	h := bits.TrailingZeros64(s.rng.Uint64()) + 1
	if h > MaxLevel {
		return MaxLevel
	}
	return h
}
