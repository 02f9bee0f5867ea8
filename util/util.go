// Package util provides a seeded random source for demo and test inputs.
//
// The core vecmath package has no randomness; demos and tests inject an RNG
// explicitly instead of relying on process-global generator state, so every
// run is reproducible from its seed.
package util

import (
	"math/rand"

	"github.com/hupe1980/vecmath"
)

// RNG struct encapsulates the random number generator and seed.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Seed returns the seed the RNG was created with.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Float64Range returns a pseudo-random float64 in [minVal, maxVal).
func (r *RNG) Float64Range(minVal, maxVal float64) float64 {
	return minVal + r.rand.Float64()*(maxVal-minVal)
}

// Vec2Range returns a Vec2 with components drawn uniformly from
// [minVal, maxVal).
func (r *RNG) Vec2Range(minVal, maxVal float64) vecmath.Vec2 {
	return vecmath.Vec2{
		r.Float64Range(minVal, maxVal),
		r.Float64Range(minVal, maxVal),
	}
}

// Vec3Range returns a Vec3 with components drawn uniformly from
// [minVal, maxVal).
func (r *RNG) Vec3Range(minVal, maxVal float64) vecmath.Vec3 {
	return vecmath.Vec3{
		r.Float64Range(minVal, maxVal),
		r.Float64Range(minVal, maxVal),
		r.Float64Range(minVal, maxVal),
	}
}

// Vec4Range returns a Vec4 with components drawn uniformly from
// [minVal, maxVal).
func (r *RNG) Vec4Range(minVal, maxVal float64) vecmath.Vec4 {
	return vecmath.Vec4{
		r.Float64Range(minVal, maxVal),
		r.Float64Range(minVal, maxVal),
		r.Float64Range(minVal, maxVal),
		r.Float64Range(minVal, maxVal),
	}
}
