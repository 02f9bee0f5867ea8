// Package vecmath provides fixed-dimension Euclidean vector math for games
// and simulations.
//
// The package centers on three small value types (Vec2, Vec3 and Vec4)
// backed by plain float64 arrays, plus the projection and rejection
// operations built on top of them. Vectors are pure values: copy them
// freely and compare them with ==. There is no shared state anywhere, so
// every operation is safe to call from multiple goroutines.
//
// # Quick Start
//
//	a := vecmath.Vec3{1, 1, 0}
//	b := vecmath.Vec3{1, 0, 0}
//
//	sum := a.Add(b)              // (2, 1, 0)
//	d := a.Dot(b)                // 1
//	par := vecmath.Project(a, b) // (1, 0, 0), the part of a along b
//	perp := vecmath.Reject(a, b) // (0, 1, 0), the part of a across b
//
// # Projection and Rejection
//
// Project(a, b) returns the component of a parallel to b, computed as
// (a·b)/(b·b) · b. Reject(a, b) returns the remainder a - Project(a, b),
// which is perpendicular to b. Together they decompose a relative to b:
//
//	a ≈ Project(a, b) + Reject(a, b)
//
// The decomposition holds up to floating-point rounding, so derived
// quantities should be compared with ApproxEqual rather than ==. Projection
// is not commutative: Project(a, b) and Project(b, a) differ whenever a and
// b are not parallel.
//
// These operations are written once against the Vector constraint and work
// for all three vector types.
//
// # Edge Cases
//
//   - Project and Reject do not guard against a zero b; with b = 0 the
//     scalar coefficient is 0/0 and every result component is NaN. Use
//     Decompose when a zero basis must be reported as an error instead.
//   - Normalize returns ErrZeroVector for the zero vector; there is no
//     direction to normalize to.
//   - Component indexes outside [0, N) panic via the standard Go array
//     bounds check.
//
// Equality via == is exact, componentwise floating-point equality. That is
// the right tool for checking values that were produced by the identical
// computation, and the wrong tool for checking mathematically derived
// results; use ApproxEqual for the latter.
package vecmath
