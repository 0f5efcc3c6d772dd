// Package sampler draws uniformly distributed random strings from a
// character pool. The generator is a non-cryptographic PRNG seeded once
// from system entropy.
package sampler

import (
	crand "crypto/rand"
	"math/rand/v2"
)

// Sampler draws characters independently and uniformly, with replacement.
// A Sampler is not safe for concurrent use.
type Sampler struct {
	rnd *rand.Rand
}

// New returns a Sampler backed by a ChaCha8 generator seeded from system
// entropy.
func New() *Sampler {
	var seed [32]byte
	if _, err := crand.Read(seed[:]); err != nil {
		panic("sampler: error reading random seed: " + err.Error())
	}

	return NewSeeded(seed)
}

// NewSeeded returns a deterministic Sampler for the given seed.
func NewSeeded(seed [32]byte) *Sampler {
	return &Sampler{rnd: rand.New(rand.NewChaCha8(seed))}
}

// String returns a string of exactly length characters, each drawn
// uniformly from pool. rand.IntN keeps the draw free of modulo bias for
// any pool size.
func (s *Sampler) String(pool []rune, length int) (string, error) {
	if len(pool) == 0 {
		return "", ErrEmptyPool
	}

	if length <= 0 {
		return "", ErrNonPositiveLength
	}

	out := make([]rune, length)
	for i := range out {
		out[i] = pool[s.rnd.IntN(len(pool))]
	}

	return string(out), nil
}
