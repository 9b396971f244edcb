package vmath

import "math"

// DegToRad converts degrees to radians
const DegToRad = math.Pi / 180.0

// Sqrt3 is used for equilateral triangle height
var Sqrt3 = math.Sqrt(3)

// --- Randomness ---

// FastRand is an xorshift64 (13, 17, 5) generator
// Not safe for concurrent use; each worker owns its own instance
type FastRand struct {
	state uint64
}

// NewFastRand creates a generator; zero seed is remapped since xorshift has no zero state
func NewFastRand(seed uint64) *FastRand {
	r := &FastRand{}
	r.Seed(seed)
	return r
}

// Seed resets the generator state in place
func (r *FastRand) Seed(seed uint64) {
	if seed == 0 {
		seed = 1
	}
	r.state = seed
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Uint64 satisfies math/rand/v2.Source
func (r *FastRand) Uint64() uint64 {
	return r.Next()
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a uniform value in [0, 1) from the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) * (1.0 / (1 << 53))
}

// Range returns a uniform value in [lo, hi)
func (r *FastRand) Range(lo, hi float64) float64 {
	return lo + (hi-lo)*r.Float64()
}

// SeedFor derives an independent stream seed for partition index from a base seed
// splitmix64 finalizer; distinct indices give uncorrelated xorshift starting states
func SeedFor(base uint64, index int) uint64 {
	x := base + uint64(index+1)*0x9e3779b97f4a7c15
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	if x == 0 {
		x = 1
	}
	return x
}
