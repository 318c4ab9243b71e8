package bezier

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Float is the set of floating-point types that curves can be evaluated over.
type Float interface {
	constraints.Float
}

// checkT returns an error wrapping [ErrDomain] if t is outside of [0, 1].
// NaN is rejected as well.
func checkT[F Float](t F) error {
	if !(t >= 0 && t <= 1) {
		return fmt.Errorf("%w: t = %v", ErrDomain, t)
	}
	return nil
}

// powi computes x**n for n >= 0 by repeated multiplication. Unlike math.Pow,
// it works in F's precision, and powi(0, n) is exactly 0 for n > 0.
func powi[F Float](x F, n int) F {
	r := F(1)
	for n > 0 {
		if n&1 == 1 {
			r *= x
		}
		x *= x
		n >>= 1
	}
	return r
}

func sqrt[F Float](x F) F {
	return F(math.Sqrt(float64(x)))
}

func isNaN[F Float](x F) bool {
	return x != x
}

func isInf[F Float](x F) bool {
	return math.IsInf(float64(x), 0)
}
