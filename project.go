package vecmath

import "math"

// Comp returns the scalar component of a in the direction of b: the signed
// length of the projection of a onto b, computed as (a · b)/|b|. With a
// zero b the result is NaN.
func Comp[V Vector[V]](a, b V) float64 {
	return a.Dot(b) / math.Sqrt(b.Dot(b))
}

// Project returns the projection of a onto b: the component of a parallel
// to b, computed as (a · b)/(b · b) · b. The result is always a scalar
// multiple of b. Projection is not commutative; Project(a, b) and
// Project(b, a) differ whenever a and b are not parallel.
//
// b must not be the zero vector: the coefficient is then 0/0 and every
// component of the result is NaN. Decompose reports that case as an error
// instead.
func Project[V Vector[V]](a, b V) V {
	return b.Scale(a.Dot(b) / b.Dot(b))
}

// ProjectUnit returns the projection of a onto a unit vector b, computed as
// (a · b) · b. It skips the division of Project and is only correct when
// |b| == 1.
func ProjectUnit[V Vector[V]](a, b V) V {
	return b.Scale(a.Dot(b))
}

// Reject returns the rejection of a from b: the component of a
// perpendicular to b, a - Project(a, b). Projection and rejection together
// reassemble a up to floating-point rounding:
//
//	a ≈ Project(a, b) + Reject(a, b)
//
// Like Project, Reject yields NaN components when b is the zero vector.
func Reject[V Vector[V]](a, b V) V {
	return a.Sub(Project(a, b))
}

// Decompose splits a into its components parallel and perpendicular to b,
// so that a ≈ par + perp up to rounding. Unlike Project and Reject it
// guards the degenerate basis: when b is the zero vector it returns
// ErrDegenerateBasis rather than NaN vectors.
func Decompose[V Vector[V]](a, b V) (par, perp V, err error) {
	if b.Dot(b) == 0 {
		var zero V
		return zero, zero, ErrDegenerateBasis
	}
	par = Project(a, b)
	perp = a.Sub(par)
	return par, perp, nil
}
