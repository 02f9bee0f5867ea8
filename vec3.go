package vecmath

import (
	"fmt"
	"math"
)

// Vec3 is a three-dimensional vector. It behaves exactly like Vec2 with one
// more component: the zero value is the zero vector, composite literals
// supply explicit components, indexes outside [0, 3) panic.
type Vec3 [3]float64

// X returns the first component.
func (v Vec3) X() float64 { return v[0] }

// Y returns the second component.
func (v Vec3) Y() float64 { return v[1] }

// Z returns the third component.
func (v Vec3) Z() float64 { return v[2] }

// Add returns the componentwise sum v + w.
func (v Vec3) Add(w Vec3) Vec3 {
	for i := range v {
		v[i] += w[i]
	}
	return v
}

// Sub returns the componentwise difference v - w.
func (v Vec3) Sub(w Vec3) Vec3 {
	for i := range v {
		v[i] -= w[i]
	}
	return v
}

// Scale returns v with every component multiplied by s.
func (v Vec3) Scale(s float64) Vec3 {
	for i := range v {
		v[i] *= s
	}
	return v
}

// Div returns v with every component divided by s.
func (v Vec3) Div(s float64) Vec3 {
	for i := range v {
		v[i] /= s
	}
	return v
}

// Neg returns v with every component negated.
func (v Vec3) Neg() Vec3 {
	for i := range v {
		v[i] = -v[i]
	}
	return v
}

// Dot returns the dot product v · w.
func (v Vec3) Dot(w Vec3) float64 {
	var d float64
	for i := range v {
		d += v[i] * w[i]
	}
	return d
}

// Cross returns the cross product v × w, the vector perpendicular to both v
// and w with length |v||w|sin θ.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		v[1]*w[2] - v[2]*w[1],
		v[2]*w[0] - v[0]*w[2],
		v[0]*w[1] - v[1]*w[0],
	}
}

// Len returns the Euclidean length √(v · v).
func (v Vec3) Len() float64 { return math.Sqrt(v.Dot(v)) }

// LenSq returns the squared length v · v.
func (v Vec3) LenSq() float64 { return v.Dot(v) }

// Normalize returns the unit vector v/|v|, or ErrZeroVector when v is the
// zero vector.
func (v Vec3) Normalize() (Vec3, error) {
	l := v.Len()
	if l == 0 {
		return Vec3{}, ErrZeroVector
	}
	return v.Div(l), nil
}

// String renders the vector as "(x, y, z)".
func (v Vec3) String() string {
	return fmt.Sprintf("(%v, %v, %v)", v[0], v[1], v[2])
}
