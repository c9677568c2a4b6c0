package testutil

import (
	"math/rand"
	"slices"
	"sync"
)

// Alphabets used by the text generators.
var (
	// ASCII is a small alphabet of lowercase letters and a space.
	ASCII = []rune("abcdefghij ")
	// Mixed contains single- and multi-byte runes.
	Mixed = []rune("aéß日本 zΩ€x")
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint32s returns n pseudo-random uint32 values.
func (r *RNG) Uint32s(n int) []uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]uint32, n)
	for i := range out {
		out[i] = r.rand.Uint32()
	}
	return out
}

// Text returns a string of n runes drawn from alphabet.
func (r *RNG) Text(n int, alphabet []rune) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.text(n, alphabet)
}

// TextWithout returns a string of n runes drawn from alphabet, never
// containing any of the excluded runes.
// It panics if every rune of the alphabet is excluded.
func (r *RNG) TextWithout(n int, alphabet []rune, exclude ...rune) string {
	allowed := slices.DeleteFunc(slices.Clone(alphabet), func(c rune) bool {
		return slices.Contains(exclude, c)
	})
	if len(allowed) == 0 {
		panic("testutil: alphabet is empty after exclusion")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.text(n, allowed)
}

// Pick returns a random rune from alphabet.
func (r *RNG) Pick(alphabet []rune) rune {
	r.mu.Lock()
	defer r.mu.Unlock()
	return alphabet[r.rand.Intn(len(alphabet))]
}

func (r *RNG) text(n int, alphabet []rune) string {
	out := make([]rune, n)
	for i := range out {
		out[i] = alphabet[r.rand.Intn(len(alphabet))]
	}
	return string(out)
}
