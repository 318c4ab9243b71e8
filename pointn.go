package bezier

import (
	"fmt"
	"strings"
)

// PointN is a position in a space of arbitrary dimensionality, with one
// element per axis.
//
// The nil PointN is the origin of every space. Other than that, operations
// on points or vectors of different dimensionality panic.
//
// PointN is a value type: its methods never modify their receiver or
// arguments, and always return freshly allocated results.
type PointN[F Float] []F

// VecN is a displacement in a space of arbitrary dimensionality. The nil VecN
// is the zero vector of every space. See [PointN].
type VecN[F Float] []F

var _ Point[float64, PointN[float64], VecN[float64]] = PointN[float64]{}
var _ Vector[float64, VecN[float64]] = VecN[float64]{}

// PtN returns the point with the given coordinates.
func PtN[F Float](coords ...F) PointN[F] {
	return PointN[F](append([]F(nil), coords...))
}

// VN returns the vector with the given coordinates.
func VN[F Float](coords ...F) VecN[F] {
	return VecN[F](append([]F(nil), coords...))
}

// Dim returns the number of axes.
func (pt PointN[F]) Dim() int { return len(pt) }

// Dim returns the number of axes.
func (v VecN[F]) Dim() int { return len(v) }

func (pt PointN[F]) String() string { return formatN("(", []F(pt), ")") }
func (v VecN[F]) String() string    { return formatN("⟨", []F(v), "⟩") }

func formatN[F Float](open string, coords []F, close string) string {
	var sb strings.Builder
	sb.WriteString(open)
	for i, c := range coords {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%g", c)
	}
	sb.WriteString(close)
	return sb.String()
}

// zipN applies fn to each pair of coordinates. A nil operand is treated as
// all zeros.
func zipN[F Float](a, b []F, fn func(x, y F) F) []F {
	switch {
	case a == nil && b == nil:
		return nil
	case a == nil:
		a = make([]F, len(b))
	case b == nil:
		b = make([]F, len(a))
	case len(a) != len(b):
		panic(fmt.Sprintf("bezier: dimension mismatch: %d != %d", len(a), len(b)))
	}
	out := make([]F, len(a))
	for i := range a {
		out[i] = fn(a[i], b[i])
	}
	return out
}

func add[F Float](x, y F) F { return x + y }
func sub[F Float](x, y F) F { return x - y }

// Vec returns the vector from the origin to pt.
func (pt PointN[F]) Vec() VecN[F] {
	return VecN[F](append([]F(nil), pt...))
}

func (pt PointN[F]) Translate(o VecN[F]) PointN[F] {
	return PointN[F](zipN([]F(pt), []F(o), add[F]))
}

// Sub computes pt−o.
func (pt PointN[F]) Sub(o PointN[F]) VecN[F] {
	return VecN[F](zipN([]F(pt), []F(o), sub[F]))
}

// Lerp linearly interpolates between two points.
func (pt PointN[F]) Lerp(o PointN[F], t F) PointN[F] {
	return PointN[F](VecN[F](pt).Lerp(VecN[F](o), t))
}

// Distance returns the euclidean distance between two points.
func (pt PointN[F]) Distance(o PointN[F]) F {
	return pt.Sub(o).Hypot()
}

// Point returns the point at the origin translated by v.
func (v VecN[F]) Point() PointN[F] {
	return PointN[F](append([]F(nil), v...))
}

// Add adds two vectors and returns the resulting vector.
func (v VecN[F]) Add(o VecN[F]) VecN[F] {
	return VecN[F](zipN([]F(v), []F(o), add[F]))
}

// Sub subtracts two vectors and returns the resulting vector.
func (v VecN[F]) Sub(o VecN[F]) VecN[F] {
	return VecN[F](zipN([]F(v), []F(o), sub[F]))
}

func (v VecN[F]) Mul(f F) VecN[F] {
	if v == nil {
		return nil
	}
	out := make(VecN[F], len(v))
	for i, c := range v {
		out[i] = c * f
	}
	return out
}

func (v VecN[F]) Div(f F) VecN[F] {
	if v == nil {
		return nil
	}
	out := make(VecN[F], len(v))
	for i, c := range v {
		out[i] = c / f
	}
	return out
}

// Negate returns a new vector with the signs of all coordinates flipped.
func (v VecN[F]) Negate() VecN[F] {
	return v.Mul(-1)
}

// Dot returns the dot product of v and o.
func (v VecN[F]) Dot(o VecN[F]) F {
	var sum F
	for _, c := range zipN([]F(v), []F(o), func(x, y F) F { return x * y }) {
		sum += c
	}
	return sum
}

// Hypot returns the magnitude of the vector.
func (v VecN[F]) Hypot() F { return sqrt(v.Dot(v)) }

// Lerp linearly interpolates between two vectors.
func (v VecN[F]) Lerp(o VecN[F], t F) VecN[F] {
	return v.Add(o.Sub(v).Mul(t))
}

// Normalize returns a vector of magnitude 1.0 with the same direction as v.
// v must not be the zero vector; normalizing it produces a NaN vector.
func (v VecN[F]) Normalize() VecN[F] {
	return v.Mul(1.0 / v.Hypot())
}
