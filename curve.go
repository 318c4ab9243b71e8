package bezier

import (
	"iter"
)

// MaxOrder is the largest curve order supported by [NBez]. Larger orders
// would require combinatorics beyond what the coefficient tables guarantee to
// compute exactly.
const MaxOrder = 21

// Vector describes displacements. V is the implementing type itself.
//
// Vectors can be added to each other and scaled. They cannot be added to
// points; see [Point.Translate].
type Vector[F Float, V any] interface {
	Add(o V) V
	Sub(o V) V
	Mul(f F) V
}

// Point describes positions in an affine space, with V the space's
// displacement type. P is the implementing type itself.
//
// Points cannot be added to each other. The difference of two points is a
// vector, and translating a point by a vector yields another point.
type Point[F Float, P any, V any] interface {
	Sub(o P) V
	Translate(v V) P
	Lerp(o P, t F) P
	// Vec returns the vector from the origin to the point. The origin is the
	// point's zero value.
	Vec() V
}

// Curve describes Bézier curves evaluated at a parameter t, returning
// positions of type P and derivatives of type V.
//
// It is implemented by [NBez] and by all fixed-shape composite curves, such
// as [Bez3o2d].
type Curve[F Float, P any, V any] interface {
	// Order returns the curve's order, which is one less than the number of
	// control points.
	Order() int

	// Interp evaluates the curve at t. It returns an error wrapping
	// [ErrDomain] if t is outside of [0, 1].
	Interp(t F) (P, error)
	// InterpUnbounded evaluates the curve at t without checking that t is in
	// [0, 1]. Values outside the range extrapolate the curve.
	InterpUnbounded(t F) P

	// Slope evaluates the curve's first derivative at t. It returns an error
	// wrapping [ErrDomain] if t is outside of [0, 1].
	Slope(t F) (V, error)
	// SlopeUnbounded evaluates the curve's first derivative at t without
	// checking that t is in [0, 1].
	SlopeUnbounded(t F) V
}

// Samples returns an iterator over n+1 evenly spaced parameters in [0, 1],
// paired with the curve's position at each. The first and last samples are
// the curve's endpoints. n less than 1 is treated as 1.
func Samples[F Float, P any, V any](c Curve[F, P, V], n int) iter.Seq2[F, P] {
	n = max(n, 1)
	return func(yield func(F, P) bool) {
		for i := range n + 1 {
			t := F(i) / F(n)
			if !yield(t, c.InterpUnbounded(t)) {
				return
			}
		}
	}
}
