package vecmath

import (
	"fmt"
	"math"
)

// Vec4 is a four-dimensional vector, commonly a homogeneous 3D point or a
// 4D direction. It behaves exactly like Vec2 with two more components.
type Vec4 [4]float64

// X returns the first component.
func (v Vec4) X() float64 { return v[0] }

// Y returns the second component.
func (v Vec4) Y() float64 { return v[1] }

// Z returns the third component.
func (v Vec4) Z() float64 { return v[2] }

// W returns the fourth component.
func (v Vec4) W() float64 { return v[3] }

// Add returns the componentwise sum v + w.
func (v Vec4) Add(w Vec4) Vec4 {
	for i := range v {
		v[i] += w[i]
	}
	return v
}

// Sub returns the componentwise difference v - w.
func (v Vec4) Sub(w Vec4) Vec4 {
	for i := range v {
		v[i] -= w[i]
	}
	return v
}

// Scale returns v with every component multiplied by s.
func (v Vec4) Scale(s float64) Vec4 {
	for i := range v {
		v[i] *= s
	}
	return v
}

// Div returns v with every component divided by s.
func (v Vec4) Div(s float64) Vec4 {
	for i := range v {
		v[i] /= s
	}
	return v
}

// Neg returns v with every component negated.
func (v Vec4) Neg() Vec4 {
	for i := range v {
		v[i] = -v[i]
	}
	return v
}

// Dot returns the dot product v · w.
func (v Vec4) Dot(w Vec4) float64 {
	var d float64
	for i := range v {
		d += v[i] * w[i]
	}
	return d
}

// Len returns the Euclidean length √(v · v).
func (v Vec4) Len() float64 { return math.Sqrt(v.Dot(v)) }

// LenSq returns the squared length v · v.
func (v Vec4) LenSq() float64 { return v.Dot(v) }

// Normalize returns the unit vector v/|v|, or ErrZeroVector when v is the
// zero vector.
func (v Vec4) Normalize() (Vec4, error) {
	l := v.Len()
	if l == 0 {
		return Vec4{}, ErrZeroVector
	}
	return v.Div(l), nil
}

// String renders the vector as "(x, y, z, w)".
func (v Vec4) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", v[0], v[1], v[2], v[3])
}
