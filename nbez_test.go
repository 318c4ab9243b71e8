package bezier

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestNBezEndpoints(t *testing.T) {
	r := newRand()
	for order := 1; order <= MaxOrder; order++ {
		pts := randPoints2(r, order+1)
		b, err := NewNBez2(pts)
		if err != nil {
			t.Fatalf("order %d: unexpected error: %s", order, err)
		}
		if got := b.InterpUnbounded(0); got != pts[0] {
			t.Errorf("order %d: got start %v, want %v", order, got, pts[0])
		}
		if got := b.InterpUnbounded(1); got != pts[order] {
			t.Errorf("order %d: got end %v, want %v", order, got, pts[order])
		}
	}
}

func TestNBezEndpointsFloat32(t *testing.T) {
	pts := []Point3[float32]{
		Pt3[float32](0.1, 0.2, 0.3),
		Pt3[float32](-7, 3.5, 1),
		Pt3[float32](2.25, 9, -4),
		Pt3[float32](1.7, -0.3, 8.8),
	}
	b, err := NewNBez3(pts)
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := b.Interp(0); got != pts[0] {
		t.Errorf("got start %v, want %v", got, pts[0])
	}
	if got, _ := b.Interp(1); got != pts[3] {
		t.Errorf("got end %v, want %v", got, pts[3])
	}
}

func TestNBezInterp(t *testing.T) {
	b := MustNewNBez[float64, Point2[float64], Vec2[float64]]([]Point2[float64]{
		Pt2(0.0, 0.0),
		Pt2(1.0, 2.0),
		Pt2(3.0, 2.0),
		Pt2(4.0, 0.0),
	})
	got, err := b.Interp(0.5)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Pt2(2.0, 1.5), got)

	// The quadratic (0, 0), (1, 1), (2, 0) traces y = x - x²/2.
	q := MustNewNBez[float64, Point2[float64], Vec2[float64]]([]Point2[float64]{
		Pt2(0.0, 0.0),
		Pt2(1.0, 1.0),
		Pt2(2.0, 0.0),
	})
	for _, ts := range params(10) {
		p := q.InterpUnbounded(ts)
		diff(t, p.X-p.X*p.X/2, p.Y, approx)
	}
}

func TestNBezDomain(t *testing.T) {
	b, _ := NewNBez2([]Point2[float64]{Pt2(0.0, 0.0), Pt2(1.0, 2.0)})
	for _, ts := range []float64{-0.1, 1.1, math.Inf(1), math.NaN()} {
		if _, err := b.Interp(ts); !errors.Is(err, ErrDomain) {
			t.Errorf("Interp(%v): got error %v, want ErrDomain", ts, err)
		}
		if _, err := b.Slope(ts); !errors.Is(err, ErrDomain) {
			t.Errorf("Slope(%v): got error %v, want ErrDomain", ts, err)
		}
		if _, _, err := b.Split(ts); !errors.Is(err, ErrDomain) {
			t.Errorf("Split(%v): got error %v, want ErrDomain", ts, err)
		}
	}

	// Unbounded evaluation extrapolates the line.
	diff(t, Pt2(2.0, 4.0), b.InterpUnbounded(2))
	diff(t, Pt2(-1.0, -2.0), b.InterpUnbounded(-1))

	// Failed queries leave the curve intact.
	got, err := b.Interp(0.5)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Pt2(0.5, 1.0), got)
}

func TestNBezOrderLimit(t *testing.T) {
	r := newRand()

	b, err := NewNBez2(randPoints2(r, MaxOrder+1))
	if err != nil {
		t.Fatalf("order %d: unexpected error: %s", MaxOrder, err)
	}
	if b.Order() != MaxOrder {
		t.Errorf("got order %d, want %d", b.Order(), MaxOrder)
	}
	if p := b.InterpUnbounded(0.5); p.IsNaN() || p.IsInf() {
		t.Errorf("got non-finite point %v", p)
	}

	if _, err := NewNBez2(randPoints2(r, MaxOrder+2)); !errors.Is(err, ErrOrderOverflow) {
		t.Errorf("order %d: got error %v, want ErrOrderOverflow", MaxOrder+1, err)
	}
	if _, err := b.Elevate(); !errors.Is(err, ErrOrderOverflow) {
		t.Errorf("elevating order %d: got error %v, want ErrOrderOverflow", MaxOrder, err)
	}
	if _, err := NewNBez2[float64](nil); !errors.Is(err, ErrNoPoints) {
		t.Errorf("got error %v for no points, want ErrNoPoints", err)
	}

	defer func() {
		if recover() == nil {
			t.Errorf("MustNewNBez didn't panic")
		}
	}()
	MustNewNBez[float64, Point2[float64], Vec2[float64]](randPoints2(r, MaxOrder+2))
}

func TestNBezOrderZero(t *testing.T) {
	b, err := NewNBez2([]Point2[float64]{Pt2(3.0, 4.0)})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, 0, b.Order())
	diff(t, Pt2(3.0, 4.0), b.InterpUnbounded(0.25))
	diff(t, Vec2[float64]{}, b.SlopeUnbounded(0.25))

	e, err := b.Elevate()
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []Point2[float64]{Pt2(3.0, 4.0), Pt2(3.0, 4.0)}, e.Points())
}

func TestNBezSlope(t *testing.T) {
	r := newRand()
	for order := 1; order <= 8; order++ {
		b, _ := NewNBez2(randPoints2(r, order+1))
		const delta = 1e-6
		for _, ts := range params(10) {
			// Central difference, with an error of O(delta²).
			p0 := b.InterpUnbounded(ts - delta)
			p1 := b.InterpUnbounded(ts + delta)
			dApprox := p1.Sub(p0).Mul(1.0 / (2 * delta))
			d, err := b.Slope(ts)
			if err != nil {
				t.Fatal(err)
			}
			if l := d.Sub(dApprox).Hypot(); l > 1e-3 {
				t.Errorf("order %d, t = %g: got difference of %g between %v and %v", order, ts, l, d, dApprox)
			}
		}
	}
}

func TestNBezSlopeEndpoints(t *testing.T) {
	pts := []Point2[float64]{Pt2(0.0, 0.0), Pt2(1.0, 2.0), Pt2(3.0, 2.0), Pt2(4.0, 0.0)}
	b, _ := NewNBez2(pts)
	diff(t, pts[1].Sub(pts[0]).Mul(3), b.SlopeUnbounded(0))
	diff(t, pts[3].Sub(pts[2]).Mul(3), b.SlopeUnbounded(1))
	diff(t, V2(4.5, 0.0), b.SlopeUnbounded(0.5))
}

func TestNBezElevate(t *testing.T) {
	r := newRand()
	for order := 1; order <= 12; order++ {
		b, _ := NewNBez2(randPoints2(r, order+1))
		e, err := b.Elevate()
		if err != nil {
			t.Fatal(err)
		}
		if e.Order() != order+1 {
			t.Errorf("got order %d after elevation, want %d", e.Order(), order+1)
		}
		for _, ts := range params(16) {
			diff(t, b.InterpUnbounded(ts), e.InterpUnbounded(ts), approx)
			diff(t, b.SlopeUnbounded(ts), e.SlopeUnbounded(ts), cmpopts.EquateApprox(1e-9, 1e-7))
		}
	}
}

func TestNBezElevateQuadratic(t *testing.T) {
	// Elevating a quadratic matches the closed form used for converting
	// quadratic to cubic Béziers.
	q := []Point2[float64]{Pt2(0.0, 0.0), Pt2(30.0, 60.0), Pt2(90.0, 0.0)}
	b, _ := NewNBez2(q)
	e, _ := b.Elevate()
	want := []Point2[float64]{
		q[0],
		q[0].Translate(q[1].Sub(q[0]).Mul(2.0 / 3.0)),
		q[2].Translate(q[1].Sub(q[2]).Mul(2.0 / 3.0)),
		q[2],
	}
	diff(t, want, e.Points(), approx)
}

func TestNBezSplit(t *testing.T) {
	r := newRand()
	for order := 1; order <= 7; order++ {
		b, _ := NewNBez2(randPoints2(r, order+1))
		for _, split := range []float64{0, 0.25, 0.5, 0.9, 1} {
			left, right, err := b.Split(split)
			if err != nil {
				t.Fatal(err)
			}
			if left.Order() != order || right.Order() != order {
				t.Fatalf("got orders %d and %d, want %d", left.Order(), right.Order(), order)
			}
			for _, ts := range params(8) {
				diff(t, b.InterpUnbounded(ts*split), left.InterpUnbounded(ts), approx)
				diff(t, b.InterpUnbounded(split+ts*(1-split)), right.InterpUnbounded(ts), approx)
			}
			diff(t, left.End(), right.Start())
		}
	}
}

func TestNBezSplitUnbounded(t *testing.T) {
	b, _ := NewNBez2([]Point2[float64]{Pt2(0.0, 0.0), Pt2(1.0, 1.0), Pt2(2.0, 0.0)})
	left, _ := b.SplitUnbounded(2)
	for _, ts := range params(4) {
		diff(t, b.InterpUnbounded(2*ts), left.InterpUnbounded(ts), approx)
	}
}

func TestNBezPoints(t *testing.T) {
	pts := []Point2[float64]{Pt2(0.0, 0.0), Pt2(1.0, 1.0), Pt2(2.0, 0.0)}
	b, _ := NewNBez2(pts)
	diff(t, Pt2(1.0, 0.5), b.InterpUnbounded(0.5))

	b.Points()[1] = Pt2(1.0, -1.0)
	diff(t, Pt2(1.0, -0.5), b.InterpUnbounded(0.5))
	// The curve uses the caller's slice.
	diff(t, Pt2(1.0, -1.0), pts[1])

	c := b.Clone()
	c.Points()[1] = Pt2(1.0, 3.0)
	diff(t, Pt2(1.0, -0.5), b.InterpUnbounded(0.5))
	diff(t, Pt2(1.0, 1.5), c.InterpUnbounded(0.5))
}

func TestNBezDimensions(t *testing.T) {
	r := newRand()
	for order := 1; order <= 6; order++ {
		pts3 := randPoints3(r, order+1)
		ptsN := make([]PointN[float64], len(pts3))
		for i, p := range pts3 {
			ptsN[i] = PtN(p.X, p.Y, p.Z)
		}
		b3, _ := NewNBez3(pts3)
		bN, err := NewNBezN(ptsN)
		if err != nil {
			t.Fatal(err)
		}
		for _, ts := range params(8) {
			p3, pN := b3.InterpUnbounded(ts).Array(), bN.InterpUnbounded(ts)
			diff(t, p3[:], []float64(pN), approx)
			v3, vN := b3.SlopeUnbounded(ts).Array(), bN.SlopeUnbounded(ts)
			diff(t, v3[:], []float64(vN), approx)
		}
	}
}

func TestNBezNDimensionMismatch(t *testing.T) {
	_, err := NewNBezN([]PointN[float64]{PtN(0.0, 0.0), PtN(1.0, 1.0, 1.0)})
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("got error %v, want ErrDimensionMismatch", err)
	}
	_, err = NewNBezN([]PointN[float64]{nil, PtN(0.0, 0.0), nil, PtN(1.0, 1.0, 1.0)})
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("got error %v after nil points, want ErrDimensionMismatch", err)
	}

	// Nil points are the origin and mix with any dimensionality.
	b, err := NewNBezN([]PointN[float64]{nil, PtN(2.0, 4.0, 6.0)})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	got, err := b.Interp(0.5)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	diff(t, PtN(1.0, 2.0, 3.0), got)

	if _, err := NewNBezN([]PointN[float64]{nil, nil}); err != nil {
		t.Errorf("unexpected error for all-nil points: %s", err)
	}
}

func TestNBezZeroValue(t *testing.T) {
	var b NBez[float64, Point2[float64], Vec2[float64]]
	if _, err := b.Elevate(); !errors.Is(err, ErrNoPoints) {
		t.Errorf("got error %v, want ErrNoPoints", err)
	}
}

func TestNBez4(t *testing.T) {
	pts := []Point4[float64]{Pt4(0.0, 0.0, 0.0, 0.0), Pt4(2.0, 4.0, 6.0, 8.0)}
	b, err := NewNBez4(pts)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Pt4(1.0, 2.0, 3.0, 4.0), b.InterpUnbounded(0.5))
	diff(t, V4(2.0, 4.0, 6.0, 8.0), b.SlopeUnbounded(0.5))
}

func TestSamples(t *testing.T) {
	pts := []Point2[float64]{Pt2(0.0, 0.0), Pt2(1.0, 1.0), Pt2(2.0, 0.0)}
	b, _ := NewNBez2(pts)
	var ts []float64
	var got []Point2[float64]
	for tt, p := range Samples[float64, Point2[float64], Vec2[float64]](b, 4) {
		ts = append(ts, tt)
		got = append(got, p)
	}
	diff(t, []float64{0, 0.25, 0.5, 0.75, 1}, ts)
	diff(t, pts[0], got[0])
	diff(t, pts[2], got[4])
	diff(t, Pt2(1.0, 0.5), got[2])

	n := 0
	for range Samples[float64, Point2[float64], Vec2[float64]](b, 0) {
		n++
	}
	if n != 2 {
		t.Errorf("got %d samples for n = 0, want 2", n)
	}
}

func BenchmarkNBezInterp(b *testing.B) {
	for _, order := range []int{3, 6, 12, MaxOrder} {
		b.Run(fmt.Sprintf("order=%d", order), func(b *testing.B) {
			c, _ := NewNBez2(randPoints2(newRand(), order+1))
			for i := range b.N {
				_ = c.InterpUnbounded(float64(i%101) / 100)
			}
		})
	}
}
