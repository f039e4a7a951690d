package testutil

import (
	"math"
	"math/rand"
	"sync"

	"github.com/hupe1980/vecmath"
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
		rand: rand.New(rand.NewSource(seed)),
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

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// FillUniformRange fills dst with random values in range [minVal, maxVal).
func (r *RNG) FillUniformRange(dst []float64, minVal, maxVal float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	span := maxVal - minVal
	for i := range dst {
		dst[i] = minVal + r.rand.Float64()*span
	}
}

// UniformRangeVector returns a vector with values in range [-1, 1).
func (r *RNG) UniformRangeVector(dimensions int) vecmath.Vector {
	v := make(vecmath.Vector, dimensions)
	r.FillUniformRange(v, -1, 1)
	return v
}

// UniformRangeVectors generates random vectors with values in range [-1, 1).
// Uses a single backing array for efficiency.
func (r *RNG) UniformRangeVectors(num, dimensions int) []vecmath.Vector {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dimensions)
	vectors := make([]vecmath.Vector, num)

	for i := range num {
		vec := data[i*dimensions : (i+1)*dimensions : (i+1)*dimensions]
		for j := range vec {
			vec[j] = r.rand.Float64()*2 - 1
		}
		vectors[i] = vec
	}

	return vectors
}

// GaussianVector returns a vector drawn from the standard normal distribution
// and scaled by sigma.
func (r *RNG) GaussianVector(dimensions int, sigma float64) vecmath.Vector {
	r.mu.Lock()
	defer r.mu.Unlock()

	v := make(vecmath.Vector, dimensions)
	for i := range v {
		v[i] = r.rand.NormFloat64() * sigma
	}
	return v
}

// UnitVector returns a random vector of Euclidean length 1.
func (r *RNG) UnitVector(dimensions int) vecmath.Vector {
	for {
		v := r.GaussianVector(dimensions, 1)
		var norm float64
		for _, x := range v {
			norm += x * x
		}
		if norm == 0 {
			continue
		}
		inv := 1 / math.Sqrt(norm)
		for i := range v {
			v[i] *= inv
		}
		return v
	}
}
