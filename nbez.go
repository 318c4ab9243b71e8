package bezier

import (
	"fmt"
	"slices"
)

// NBez is a Bézier curve of arbitrary order over points of type P, with
// displacements of type V.
//
// The curve's order is fixed at construction and is one less than the number
// of control points. The control points themselves may be modified through
// the slice returned by [NBez.Points].
//
// Evaluation uses a table of binomial coefficients that is computed on first
// use and kept for subsequent evaluations. The table is not part of the
// curve's value, but maintaining it makes every evaluation a potential write.
// An NBez must therefore not be evaluated from multiple goroutines at once.
// Use [NBez.Clone] to give each goroutine its own curve. The fixed-shape
// types, such as [Bez3o2d], have no such restriction.
//
// The zero value has no control points and is not a usable curve. Curves must
// be created with [NewNBez] or one of its variants.
type NBez[F Float, P Point[F, P, V], V Vector[F, V]] struct {
	points []P
	coeffs coefficients
}

var _ Curve[float64, Point2[float64], Vec2[float64]] = (*NBez[float64, Point2[float64], Vec2[float64]])(nil)

// NewNBez returns a curve with the given control points. The curve uses
// points directly, without copying it.
//
// It returns an error wrapping [ErrNoPoints] if points is empty, or
// [ErrOrderOverflow] if the implied order exceeds [MaxOrder].
//
// Type arguments usually cannot be inferred; [NewNBez2], [NewNBez3],
// [NewNBez4], and [NewNBezN] are more convenient for this package's point
// types.
func NewNBez[F Float, P Point[F, P, V], V Vector[F, V]](points []P) (*NBez[F, P, V], error) {
	if len(points) == 0 {
		return nil, ErrNoPoints
	}
	if order := len(points) - 1; order > MaxOrder {
		return nil, fmt.Errorf("%w: %d exceeds maximum of %d", ErrOrderOverflow, order, MaxOrder)
	}
	return newNBez[F, P, V](points), nil
}

// MustNewNBez is like [NewNBez] but panics on error.
func MustNewNBez[F Float, P Point[F, P, V], V Vector[F, V]](points []P) *NBez[F, P, V] {
	b, err := NewNBez[F, P, V](points)
	if err != nil {
		panic(err)
	}
	return b
}

// newNBez returns a curve without validating the number of points.
func newNBez[F Float, P Point[F, P, V], V Vector[F, V]](points []P) *NBez[F, P, V] {
	return &NBez[F, P, V]{points: points}
}

// NewNBez2 returns a curve over 2D points. See [NewNBez].
func NewNBez2[F Float](points []Point2[F]) (*NBez[F, Point2[F], Vec2[F]], error) {
	return NewNBez[F, Point2[F], Vec2[F]](points)
}

// NewNBez3 returns a curve over 3D points. See [NewNBez].
func NewNBez3[F Float](points []Point3[F]) (*NBez[F, Point3[F], Vec3[F]], error) {
	return NewNBez[F, Point3[F], Vec3[F]](points)
}

// NewNBez4 returns a curve over 4D points. See [NewNBez].
func NewNBez4[F Float](points []Point4[F]) (*NBez[F, Point4[F], Vec4[F]], error) {
	return NewNBez[F, Point4[F], Vec4[F]](points)
}

// NewNBezN returns a curve over points of arbitrary dimensionality. See
// [NewNBez].
//
// All non-nil points must have the same dimensionality, or NewNBezN returns an
// error wrapping [ErrDimensionMismatch]. A nil point is the origin of any
// dimensionality.
func NewNBezN[F Float](points []PointN[F]) (*NBez[F, PointN[F], VecN[F]], error) {
	dim := -1
	for i, pt := range points {
		if pt == nil {
			continue
		}
		if dim == -1 {
			dim = pt.Dim()
		} else if pt.Dim() != dim {
			return nil, fmt.Errorf("%w: point %d has %d axes, want %d", ErrDimensionMismatch, i, pt.Dim(), dim)
		}
	}
	return NewNBez[F, PointN[F], VecN[F]](points)
}

// Order returns the curve's order.
func (b *NBez[F, P, V]) Order() int {
	return len(b.points) - 1
}

// Points returns the curve's control points. Modifying the elements of the
// returned slice modifies the curve.
func (b *NBez[F, P, V]) Points() []P {
	return b.points
}

// Clone returns a copy of the curve that shares no state with b.
func (b *NBez[F, P, V]) Clone() *NBez[F, P, V] {
	return newNBez[F, P, V](slices.Clone(b.points))
}

// Start returns the first control point, which is the curve's start point.
func (b *NBez[F, P, V]) Start() P {
	return b.points[0]
}

// End returns the last control point, which is the curve's end point.
func (b *NBez[F, P, V]) End() P {
	return b.points[len(b.points)-1]
}

// Interp evaluates the curve at t, which must be in [0, 1].
func (b *NBez[F, P, V]) Interp(t F) (P, error) {
	if err := checkT(t); err != nil {
		var zero P
		return zero, err
	}
	return b.InterpUnbounded(t), nil
}

// InterpUnbounded evaluates the curve at t, without checking that t is in
// [0, 1].
//
// The result is the sum of the control points weighted by the Bernstein
// polynomials of the curve's order. At t = 0 and t = 1 the result is exactly
// the first and last control point, respectively.
func (b *NBez[F, P, V]) InterpUnbounded(t F) P {
	order := b.Order()
	b.coeffs.ensure(order)

	mt := 1 - t
	var acc V
	for k, pt := range b.points {
		w := F(b.coeffs.factors[k]) * powi(t, k) * powi(mt, order-k)
		acc = acc.Add(pt.Vec().Mul(w))
	}
	var origin P
	return origin.Translate(acc)
}

// Slope evaluates the curve's first derivative at t, which must be in [0, 1].
func (b *NBez[F, P, V]) Slope(t F) (V, error) {
	if err := checkT(t); err != nil {
		var zero V
		return zero, err
	}
	return b.SlopeUnbounded(t), nil
}

// SlopeUnbounded evaluates the curve's first derivative at t, without checking
// that t is in [0, 1].
//
// The derivative of a curve of order n is a curve of order n-1 whose control
// points are the scaled differences n·(P[k+1]-P[k]). A curve of order 0 has
// a zero derivative.
func (b *NBez[F, P, V]) SlopeUnbounded(t F) V {
	order := b.Order()
	b.coeffs.ensure(order)

	var acc V
	if order == 0 {
		return acc
	}
	mt := 1 - t
	dorder := order - 1
	n := F(order)
	for k := range order {
		d := b.points[k+1].Sub(b.points[k])
		w := F(b.coeffs.dfactors[k]) * n * powi(t, k) * powi(mt, dorder-k)
		acc = acc.Add(d.Mul(w))
	}
	return acc
}

// Elevate returns a curve of order n+1 with the same shape as b.
//
// It returns an error wrapping [ErrOrderOverflow] if b already has order
// [MaxOrder], or [ErrNoPoints] if b has no control points.
func (b *NBez[F, P, V]) Elevate() (*NBez[F, P, V], error) {
	if len(b.points) == 0 {
		return nil, ErrNoPoints
	}
	order := b.Order() + 1
	if order > MaxOrder {
		return nil, fmt.Errorf("%w: cannot elevate order %d", ErrOrderOverflow, b.Order())
	}

	fOrder := F(order)
	out := make([]P, 0, order+1)
	out = append(out, b.points[0])
	for i := 1; i < len(b.points); i++ {
		out = append(out, b.points[i].Lerp(b.points[i-1], F(i)/fOrder))
	}
	out = append(out, b.points[len(b.points)-1])
	return newNBez[F, P, V](out), nil
}

// Split subdivides the curve at t, which must be in [0, 1]. The first
// returned curve covers [0, t] and the second covers [t, 1], both
// reparametrized to [0, 1] and of the same order as b.
func (b *NBez[F, P, V]) Split(t F) (*NBez[F, P, V], *NBez[F, P, V], error) {
	if err := checkT(t); err != nil {
		return nil, nil, err
	}
	left, right := b.SplitUnbounded(t)
	return left, right, nil
}

// SplitUnbounded is like [NBez.Split] but doesn't check that t is in [0, 1].
//
// It uses de Casteljau's algorithm.
func (b *NBez[F, P, V]) SplitUnbounded(t F) (*NBez[F, P, V], *NBez[F, P, V]) {
	n := len(b.points)
	work := slices.Clone(b.points)
	left := make([]P, n)
	right := make([]P, n)
	for r := range n {
		// work[:n-r] holds the r-th level of de Casteljau's triangle.
		left[r] = work[0]
		right[n-1-r] = work[n-1-r]
		for i := 0; i < n-1-r; i++ {
			work[i] = work[i].Lerp(work[i+1], t)
		}
	}
	return newNBez[F, P, V](left), newNBez[F, P, V](right)
}

func (b *NBez[F, P, V]) String() string {
	return fmt.Sprintf("NBez%v", b.points)
}
