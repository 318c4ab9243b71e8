package bezier

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

// fixed bundles what the fixed-shape tests need from a composite curve.
type fixed[P Point[float64, P, V], V Vector[float64, V]] struct {
	curve  Curve[float64, P, V]
	points []P
	nbez   *NBez[float64, P, V]
}

func newFixed[P Point[float64, P, V], V Vector[float64, V]](c interface {
	Curve[float64, P, V]
	Curve() *NBez[float64, P, V]
}, pts []P) fixed[P, V] {
	return fixed[P, V]{curve: c, points: pts, nbez: c.Curve()}
}

func checkFixed[P Point[float64, P, V], V Vector[float64, V]](t *testing.T, pts []P, f fixed[P, V]) {
	t.Helper()
	order := len(pts) - 1
	if got := f.curve.Order(); got != order {
		t.Errorf("got order %d, want %d", got, order)
	}
	diff(t, pts, f.points)
	diff(t, pts, f.nbez.Points())

	ref := MustNewNBez[float64, P, V](pts)
	for _, ts := range params(16) {
		want, err := ref.Interp(ts)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		got, err := f.curve.Interp(ts)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		diff(t, want, got, approx)

		wantSlope, err := ref.Slope(ts)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		gotSlope, err := f.curve.Slope(ts)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		diff(t, wantSlope, gotSlope, approx)
	}

	diff(t, pts[0], f.curve.InterpUnbounded(0))
	diff(t, pts[order], f.curve.InterpUnbounded(1))
	diff(t, ref.InterpUnbounded(1.5), f.curve.InterpUnbounded(1.5), approx)
	diff(t, ref.SlopeUnbounded(-0.5), f.curve.SlopeUnbounded(-0.5), approx)

	for _, ts := range []float64{-0.5, 1.5, math.NaN()} {
		if _, err := f.curve.Interp(ts); !errors.Is(err, ErrDomain) {
			t.Errorf("Interp(%g): got error %v, want ErrDomain", ts, err)
		}
		if _, err := f.curve.Slope(ts); !errors.Is(err, ErrDomain) {
			t.Errorf("Slope(%g): got error %v, want ErrDomain", ts, err)
		}
	}
}

func TestComposite2D(t *testing.T) {
	type (
		P = Point2[float64]
		V = Vec2[float64]
	)
	tests := []func(pts []P) fixed[P, V]{
		func(pts []P) fixed[P, V] {
			var c Bez2o2d[float64]
			c.SetPoints([3]P(pts))
			got := c.Points()
			return newFixed[P, V](c, got[:])
		},
		func(pts []P) fixed[P, V] {
			var c Bez3o2d[float64]
			c.SetPoints([4]P(pts))
			got := c.Points()
			return newFixed[P, V](c, got[:])
		},
		func(pts []P) fixed[P, V] {
			var c Bez4o2d[float64]
			c.SetPoints([5]P(pts))
			got := c.Points()
			return newFixed[P, V](c, got[:])
		},
		func(pts []P) fixed[P, V] {
			var c Bez5o2d[float64]
			c.SetPoints([6]P(pts))
			got := c.Points()
			return newFixed[P, V](c, got[:])
		},
		func(pts []P) fixed[P, V] {
			var c Bez6o2d[float64]
			c.SetPoints([7]P(pts))
			got := c.Points()
			return newFixed[P, V](c, got[:])
		},
	}
	r := newRand()
	for i, build := range tests {
		order := i + 2
		for range 10 {
			pts := randPoints2(r, order+1)
			checkFixed(t, pts, build(pts))
		}
	}
}

func TestComposite3D(t *testing.T) {
	type (
		P = Point3[float64]
		V = Vec3[float64]
	)
	tests := []func(pts []P) fixed[P, V]{
		func(pts []P) fixed[P, V] {
			var c Bez2o3d[float64]
			c.SetPoints([3]P(pts))
			got := c.Points()
			return newFixed[P, V](c, got[:])
		},
		func(pts []P) fixed[P, V] {
			var c Bez3o3d[float64]
			c.SetPoints([4]P(pts))
			got := c.Points()
			return newFixed[P, V](c, got[:])
		},
		func(pts []P) fixed[P, V] {
			var c Bez4o3d[float64]
			c.SetPoints([5]P(pts))
			got := c.Points()
			return newFixed[P, V](c, got[:])
		},
		func(pts []P) fixed[P, V] {
			var c Bez5o3d[float64]
			c.SetPoints([6]P(pts))
			got := c.Points()
			return newFixed[P, V](c, got[:])
		},
		func(pts []P) fixed[P, V] {
			var c Bez6o3d[float64]
			c.SetPoints([7]P(pts))
			got := c.Points()
			return newFixed[P, V](c, got[:])
		},
	}
	r := newRand()
	for i, build := range tests {
		order := i + 2
		for range 10 {
			pts := randPoints3(r, order+1)
			checkFixed(t, pts, build(pts))
		}
	}
}

func TestComposite4D(t *testing.T) {
	type (
		P = Point4[float64]
		V = Vec4[float64]
	)
	tests := []func(pts []P) fixed[P, V]{
		func(pts []P) fixed[P, V] {
			var c Bez2o4d[float64]
			c.SetPoints([3]P(pts))
			got := c.Points()
			return newFixed[P, V](c, got[:])
		},
		func(pts []P) fixed[P, V] {
			var c Bez3o4d[float64]
			c.SetPoints([4]P(pts))
			got := c.Points()
			return newFixed[P, V](c, got[:])
		},
		func(pts []P) fixed[P, V] {
			var c Bez4o4d[float64]
			c.SetPoints([5]P(pts))
			got := c.Points()
			return newFixed[P, V](c, got[:])
		},
		func(pts []P) fixed[P, V] {
			var c Bez5o4d[float64]
			c.SetPoints([6]P(pts))
			got := c.Points()
			return newFixed[P, V](c, got[:])
		},
		func(pts []P) fixed[P, V] {
			var c Bez6o4d[float64]
			c.SetPoints([7]P(pts))
			got := c.Points()
			return newFixed[P, V](c, got[:])
		},
	}
	r := newRand()
	for i, build := range tests {
		order := i + 2
		for range 10 {
			pts := randPoints4(r, order+1)
			checkFixed(t, pts, build(pts))
		}
	}
}

func TestCompositeConstructor(t *testing.T) {
	c := NewBez3o3d(Pt3(0.0, 0.0, 0.0), Pt3(1.0, 2.0, 3.0), Pt3(4.0, 5.0, 6.0), Pt3(7.0, 8.0, 9.0))
	want := Bez3o3d[float64]{
		X: NewBezPoly3o(0.0, 1.0, 4.0, 7.0),
		Y: NewBezPoly3o(0.0, 2.0, 5.0, 8.0),
		Z: NewBezPoly3o(0.0, 3.0, 6.0, 9.0),
	}
	diff(t, want, c)
}

func TestCompositeSetPoint(t *testing.T) {
	c := NewBez3o2d(Pt2(0.0, 0.0), Pt2(1.0, 2.0), Pt2(3.0, 2.0), Pt2(4.0, 0.0))
	c.SetPoint(2, Pt2(5.0, 6.0))
	diff(t, [4]Point2[float64]{Pt2(0.0, 0.0), Pt2(1.0, 2.0), Pt2(5.0, 6.0), Pt2(4.0, 0.0)}, c.Points())
	diff(t, 5.0, c.X.Ctrl2)
	diff(t, 6.0, c.Y.Ctrl2)

	q := NewBez6o4d(Pt4(0.0, 0.0, 0.0, 0.0), Pt4(0.0, 0.0, 0.0, 0.0), Pt4(0.0, 0.0, 0.0, 0.0),
		Pt4(0.0, 0.0, 0.0, 0.0), Pt4(0.0, 0.0, 0.0, 0.0), Pt4(0.0, 0.0, 0.0, 0.0), Pt4(0.0, 0.0, 0.0, 0.0))
	q.SetPoint(6, Pt4(1.0, 2.0, 3.0, 4.0))
	diff(t, Pt4(1.0, 2.0, 3.0, 4.0), q.InterpUnbounded(1))

	defer func() {
		if recover() == nil {
			t.Error("expected panic for out of range index")
		}
	}()
	c.SetPoint(4, Pt2(0.0, 0.0))
}

func TestCompositeFloat32(t *testing.T) {
	pts := [4]Point2[float32]{Pt2[float32](0, 0), Pt2[float32](1, 2), Pt2[float32](3, 2), Pt2[float32](4, 0)}
	c := NewBez3o2d(pts[0], pts[1], pts[2], pts[3])
	g, err := NewNBez2(pts[:])
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	opt := cmpopts.EquateApprox(1e-5, 1e-5)
	for _, ts := range []float32{0, 0.125, 0.25, 0.5, 0.75, 1} {
		diff(t, g.InterpUnbounded(ts), c.InterpUnbounded(ts), opt)
		diff(t, g.SlopeUnbounded(ts), c.SlopeUnbounded(ts), opt)
	}
}

func TestBezPoly(t *testing.T) {
	// Evenly spaced control values describe a straight line.
	lin := NewBezPoly3o(0.0, 1.0, 2.0, 3.0)
	diff(t, [4]float64{0, 1, 2, 3}, lin.Values())
	// Control value 0, 0, 1 describes t².
	sq := NewBezPoly2o(0.0, 0.0, 1.0)
	for _, ts := range params(8) {
		got, err := lin.Interp(ts)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		diff(t, 3*ts, got, approx)
		diff(t, 3.0, lin.SlopeUnbounded(ts), approx)

		diff(t, ts*ts, sq.InterpUnbounded(ts), approx)
		diff(t, 2*ts, sq.SlopeUnbounded(ts), approx)
	}
	if _, err := lin.Interp(1.25); !errors.Is(err, ErrDomain) {
		t.Errorf("got error %v, want ErrDomain", err)
	}
	if _, err := sq.Slope(-1); !errors.Is(err, ErrDomain) {
		t.Errorf("got error %v, want ErrDomain", err)
	}
	diff(t, 4.0, sq.InterpUnbounded(2))
}

func TestBezPolySetValue(t *testing.T) {
	p := NewBezPoly4o(0.0, 1.0, 2.0, 3.0, 4.0)
	p.SetValue(0, -1)
	p.SetValue(3, 7)
	diff(t, [5]float64{-1, 1, 2, 7, 4}, p.Values())
	diff(t, NewBezPoly4o(-1.0, 1.0, 2.0, 7.0, 4.0), p)

	p.SetValues([5]float64{5, 4, 3, 2, 1})
	diff(t, BezPoly4o[float64]{Start: 5, Ctrl1: 4, Ctrl2: 3, Ctrl3: 2, End: 1}, p)

	defer func() {
		if recover() == nil {
			t.Error("expected panic for out of range index")
		}
	}()
	p.SetValue(-1, 0)
}

func TestBezPolyOrders(t *testing.T) {
	polys := []interface{ Order() int }{
		BezPoly2o[float64]{},
		BezPoly3o[float64]{},
		BezPoly4o[float64]{},
		BezPoly5o[float64]{},
		BezPoly6o[float64]{},
	}
	for i, p := range polys {
		if got, want := p.Order(), i+2; got != want {
			t.Errorf("%T: got order %d, want %d", p, got, want)
		}
	}
}

func BenchmarkBez3o2d(b *testing.B) {
	pts := randPoints2(newRand(), 4)
	c := NewBez3o2d(pts[0], pts[1], pts[2], pts[3])
	var sink Point2[float64]
	for i := range b.N {
		sink = c.InterpUnbounded(float64(i%64) / 64)
	}
	_ = sink
}

func BenchmarkNBez3o2d(b *testing.B) {
	c := MustNewNBez[float64, Point2[float64], Vec2[float64]](randPoints2(newRand(), 4))
	var sink Point2[float64]
	for i := range b.N {
		sink = c.InterpUnbounded(float64(i%64) / 64)
	}
	_ = sink
}
