// Package entropy provides the seeded random source used by prime generation and exponent selection.
//
// A Source is owned by its caller and passed explicitly into every operation that needs randomness,
// so that a fixed seed reproduces the same primes, moduli and exponents.
package entropy

import (
	"math/big"
	"math/rand"
)

var bigOne = big.NewInt(1)

// Source supplies uniformly random values for the number theory kernel.
type Source interface {
	// Bits returns a uniformly random integer in [0, 2^n).
	Bits(n uint) *big.Int
	// Below returns a uniformly random integer in [0, bound). bound must be positive.
	Below(bound *big.Int) *big.Int
	// Intn returns a uniformly random int in [0, n). n must be positive.
	Intn(n int) int
}

// SeededSource is a Source backed by a deterministic pseudo-random generator.
// It is not safe for concurrent use.
type SeededSource struct {
	seed int64
	rnd  *rand.Rand
}

// New returns a SeededSource initialized with seed.
func New(seed int64) *SeededSource {
	return &SeededSource{
		seed: seed,
		rnd:  rand.New(rand.NewSource(seed)),
	}
}

// Seed reports the seed the source was created with.
func (s *SeededSource) Seed() int64 {
	return s.seed
}

// Bits returns a uniformly random integer of at most n bits.
func (s *SeededSource) Bits(n uint) *big.Int {
	if n == 0 {
		return new(big.Int)
	}
	bound := new(big.Int).Lsh(bigOne, n)
	return new(big.Int).Rand(s.rnd, bound)
}

// Below returns a uniformly random integer in [0, bound).
func (s *SeededSource) Below(bound *big.Int) *big.Int {
	if bound.Sign() <= 0 {
		panic("entropy: bound must be positive")
	}
	return new(big.Int).Rand(s.rnd, bound)
}

// Intn returns a uniformly random int in [0, n).
func (s *SeededSource) Intn(n int) int {
	return s.rnd.Intn(n)
}
