package vecmath

import "math"

// Vector is the constraint satisfied by Vec2, Vec3 and Vec4. Operations that
// are identical across dimensions (Project, Reject and friends) are
// implemented once against it instead of once per type.
type Vector[V any] interface {
	Add(V) V
	Sub(V) V
	Scale(float64) V
	Dot(V) float64
}

// Compile time checks that every vector type satisfies Vector.
var (
	_ Vector[Vec2] = Vec2{}
	_ Vector[Vec3] = Vec3{}
	_ Vector[Vec4] = Vec4{}
)

// ApproxEqual reports whether a and b differ by at most tol, measured as the
// Euclidean length of a - b. Use it instead of == for values produced by
// different computations, where rounding makes exact equality unreliable.
func ApproxEqual[V Vector[V]](a, b V, tol float64) bool {
	d := a.Sub(b)
	return math.Sqrt(d.Dot(d)) <= tol
}
