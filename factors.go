package bezier

import (
	"fmt"
	"math/bits"
	"slices"
)

// Factorial returns n!. It returns an error wrapping [ErrOrderOverflow] if
// the result doesn't fit in a uint64, which is the case for all n > 20.
func Factorial(n uint64) (uint64, error) {
	acc := uint64(1)
	for i := n; i > 0; i-- {
		hi, lo := bits.Mul64(acc, i)
		if hi != 0 {
			return 0, fmt.Errorf("%w: %d! overflows uint64", ErrOrderOverflow, n)
		}
		acc = lo
	}
	return acc, nil
}

// Combination returns the binomial coefficient C(n, k), the number of ways
// of choosing k elements out of n. It is 0 if k > n.
//
// The result is exact. Instead of dividing factorials, which overflow for
// n > 20, it is computed as a running product that stays integral at every
// step, so it only fails if C(n, k) itself, or an intermediate product, does
// not fit in a uint64.
func Combination(n, k uint64) (uint64, error) {
	if k > n {
		return 0, nil
	}
	k = min(k, n-k)
	acc := uint64(1)
	for i := uint64(1); i <= k; i++ {
		// acc is C(n-k+i-1, i-1); multiplying by (n-k+i) makes it divisible by i.
		hi, lo := bits.Mul64(acc, n-k+i)
		if hi != 0 {
			return 0, fmt.Errorf("%w: C(%d, %d) overflows uint64", ErrOrderOverflow, n, k)
		}
		acc = lo / i
	}
	return acc, nil
}

// coefficients caches the Bernstein weights of one curve order. The zero
// value is an empty cache.
//
// Both tables share one backing array, which is reused when the order
// changes.
type coefficients struct {
	buf []uint64
	// factors[k] is C(n, k) for k in [0, n].
	factors []uint64
	// dfactors[k] is C(n-1, k) for k in [0, n-1]. These are the weights of the
	// first derivative, which is a curve of order n-1.
	dfactors []uint64
}

// ensure makes the tables valid for order. It is a no-op if they already
// are. order must be in [0, MaxOrder].
func (c *coefficients) ensure(order int) {
	if len(c.factors) == order+1 {
		return
	}

	n := uint64(order)
	buf := slices.Grow(c.buf[:0], 2*order+1)
	for k := uint64(0); k <= n; k++ {
		buf = append(buf, mustCombination(n, k))
	}
	for k := uint64(0); k < n; k++ {
		buf = append(buf, mustCombination(n-1, k))
	}

	c.buf = buf
	c.factors = buf[: order+1 : order+1]
	c.dfactors = buf[order+1:]
}

func mustCombination(n, k uint64) uint64 {
	v, err := Combination(n, k)
	if err != nil {
		panic(err)
	}
	return v
}
