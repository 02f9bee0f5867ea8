package vecmath

import (
	"fmt"
	"math"
)

// Vec2 is a two-dimensional vector. The zero value is the zero vector, and a
// composite literal supplies explicit components:
//
//	v := vecmath.Vec2{1, 2}
//
// Components are addressed by index: v[0] is x, v[1] is y. An index outside
// [0, 2) panics via the standard Go array bounds check (constant indexes
// fail to compile). Components may be assigned through the index; every
// method treats its receiver as a value and returns a new vector, leaving
// the operands unmodified.
type Vec2 [2]float64

// X returns the first component.
func (v Vec2) X() float64 { return v[0] }

// Y returns the second component.
func (v Vec2) Y() float64 { return v[1] }

// Add returns the componentwise sum v + w.
func (v Vec2) Add(w Vec2) Vec2 {
	for i := range v {
		v[i] += w[i]
	}
	return v
}

// Sub returns the componentwise difference v - w.
func (v Vec2) Sub(w Vec2) Vec2 {
	for i := range v {
		v[i] -= w[i]
	}
	return v
}

// Scale returns v with every component multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	for i := range v {
		v[i] *= s
	}
	return v
}

// Div returns v with every component divided by s. Division by zero follows
// IEEE rules and produces ±Inf or NaN components.
func (v Vec2) Div(s float64) Vec2 {
	for i := range v {
		v[i] /= s
	}
	return v
}

// Neg returns v with every component negated.
func (v Vec2) Neg() Vec2 {
	for i := range v {
		v[i] = -v[i]
	}
	return v
}

// Dot returns the dot product v · w, the sum of the componentwise products.
// It measures how strongly the two vectors point the same way, scaled by
// their lengths.
func (v Vec2) Dot(w Vec2) float64 {
	var d float64
	for i := range v {
		d += v[i] * w[i]
	}
	return d
}

// Len returns the Euclidean length √(v · v).
func (v Vec2) Len() float64 { return math.Sqrt(v.Dot(v)) }

// LenSq returns the squared length v · v, avoiding the square root of Len
// when only relative lengths matter.
func (v Vec2) LenSq() float64 { return v.Dot(v) }

// Normalize returns the unit vector v/|v|. It returns ErrZeroVector when v
// is the zero vector, which has no direction.
func (v Vec2) Normalize() (Vec2, error) {
	l := v.Len()
	if l == 0 {
		return Vec2{}, ErrZeroVector
	}
	return v.Div(l), nil
}

// String renders the vector as "(x, y)" using the default float64
// formatting.
func (v Vec2) String() string {
	return fmt.Sprintf("(%v, %v)", v[0], v[1])
}
