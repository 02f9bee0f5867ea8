package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloat64Range(t *testing.T) {
	rng := NewRNG(4711)

	for range 1000 {
		f := rng.Float64Range(-10, 10)
		assert.GreaterOrEqual(t, f, -10.0)
		assert.Less(t, f, 10.0)
	}
}

func TestDeterministic(t *testing.T) {
	a := NewRNG(7)
	b := NewRNG(7)

	for range 32 {
		assert.Equal(t, a.Float64Range(0, 1), b.Float64Range(0, 1))
	}
	assert.Equal(t, a.Vec3Range(-1, 1), b.Vec3Range(-1, 1))
}

func TestSeed(t *testing.T) {
	rng := NewRNG(42)
	assert.Equal(t, int64(42), rng.Seed())
}

func TestVecRange(t *testing.T) {
	rng := NewRNG(1)

	v2 := rng.Vec2Range(0, 1)
	v3 := rng.Vec3Range(0, 1)
	v4 := rng.Vec4Range(0, 1)

	for i := range v2 {
		assert.GreaterOrEqual(t, v2[i], 0.0)
		assert.Less(t, v2[i], 1.0)
	}
	for i := range v3 {
		assert.GreaterOrEqual(t, v3[i], 0.0)
		assert.Less(t, v3[i], 1.0)
	}
	for i := range v4 {
		assert.GreaterOrEqual(t, v4[i], 0.0)
		assert.Less(t, v4[i], 1.0)
	}
}
