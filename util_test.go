package bezier

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floats, and structs of floats, with a tolerance suitable
// for coordinates in [-100, 100].
var approx = cmpopts.EquateApprox(1e-12, 1e-9)

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func randCoord(r *rand.Rand) float64 {
	return r.Float64()*200 - 100
}

func randPoints2(r *rand.Rand, n int) []Point2[float64] {
	pts := make([]Point2[float64], n)
	for i := range pts {
		pts[i] = Pt2(randCoord(r), randCoord(r))
	}
	return pts
}

func randPoints3(r *rand.Rand, n int) []Point3[float64] {
	pts := make([]Point3[float64], n)
	for i := range pts {
		pts[i] = Pt3(randCoord(r), randCoord(r), randCoord(r))
	}
	return pts
}

func randPoints4(r *rand.Rand, n int) []Point4[float64] {
	pts := make([]Point4[float64], n)
	for i := range pts {
		pts[i] = Pt4(randCoord(r), randCoord(r), randCoord(r), randCoord(r))
	}
	return pts
}

// params returns n+1 evenly spaced parameters in [0, 1].
func params(n int) []float64 {
	ts := make([]float64, n+1)
	for i := range ts {
		ts[i] = float64(i) / float64(n)
	}
	return ts
}
