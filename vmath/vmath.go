package vmath

import "math"

// Epsilon is the snap tolerance for continuous positions (cells)
const Epsilon = 1e-3

// Abs returns absolute value
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// --- Randomness ---

// Rand is the injectable random source used by generation and spawn placement
// *FastRand and *math/rand.Rand both satisfy it
type Rand interface {
	Intn(n int) int
	Int63() int64
}

// FastRand is a seeded xorshift64 generator (13, 17, 5)
type FastRand struct {
	state uint64
}

// NewFastRand returns a generator for seed, zero is remapped to 1 since xorshift has no zero state
func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Int63 returns a non-negative 63-bit value
func (r *FastRand) Int63() int64 {
	return int64(r.Next() >> 1)
}
