package bezier_test

import (
	"errors"
	"fmt"

	"honnef.co/go/bezier"
)

func ExampleNBez() {
	c, err := bezier.NewNBez2([]bezier.Point2[float64]{
		bezier.Pt2(0.0, 0.0),
		bezier.Pt2(1.0, 2.0),
		bezier.Pt2(3.0, 2.0),
		bezier.Pt2(4.0, 0.0),
	})
	if err != nil {
		panic(err)
	}
	pt, _ := c.Interp(0.5)
	tangent, _ := c.Slope(0.5)
	fmt.Println(c.Order())
	fmt.Println(pt)
	fmt.Println(tangent)

	// Output:
	// 3
	// (2, 1.5)
	// ⟨4.5, 0⟩
}

func ExampleNBez_Elevate() {
	c := bezier.MustNewNBez[float64, bezier.Point2[float64], bezier.Vec2[float64]]([]bezier.Point2[float64]{
		bezier.Pt2(0.0, 0.0),
		bezier.Pt2(1.0, 2.0),
		bezier.Pt2(3.0, 2.0),
		bezier.Pt2(4.0, 0.0),
	})
	e, err := c.Elevate()
	if err != nil {
		panic(err)
	}
	fmt.Println(e.Order())
	fmt.Println(e.Points())

	// Output:
	// 4
	// [(0, 0) (0.75, 1.5) (2, 2) (3.25, 1.5) (4, 0)]
}

func ExampleNBez_Interp() {
	c, _ := bezier.NewNBez2([]bezier.Point2[float64]{
		bezier.Pt2(0.0, 0.0),
		bezier.Pt2(1.0, 1.0),
	})
	if _, err := c.Interp(1.5); errors.Is(err, bezier.ErrDomain) {
		fmt.Println(err)
	}
	fmt.Println(c.InterpUnbounded(1.5))

	// Output:
	// bezier: parameter out of range [0, 1]: t = 1.5
	// (1.5, 1.5)
}

func ExampleCubicChain() {
	chain, err := bezier.NewCubicChain([]bezier.BezNode[float64]{
		bezier.AnchorNode(0.0, 0.0),
		bezier.ControlNode(0.0, 4.0),
		bezier.ControlNode(4.0, 4.0),
		bezier.AnchorNode(4.0, 0.0),
		bezier.ControlNode(4.0, -4.0),
		bezier.ControlNode(8.0, -4.0),
		bezier.AnchorNode(8.0, 0.0),
	})
	if err != nil {
		panic(err)
	}
	for seg := range chain.Segments() {
		pt, _ := seg.Interp(0.5)
		fmt.Println(pt)
	}

	// Output:
	// (2, 3)
	// (6, -3)
}

func ExampleBez2o3d() {
	c := bezier.NewBez2o3d(
		bezier.Pt3(0.0, 0.0, 0.0),
		bezier.Pt3(1.0, 2.0, 4.0),
		bezier.Pt3(2.0, 0.0, 0.0),
	)
	for t, pt := range bezier.Samples[float64, bezier.Point3[float64], bezier.Vec3[float64]](c, 4) {
		fmt.Println(t, pt)
	}

	// Output:
	// 0 (0, 0, 0)
	// 0.25 (0.5, 0.75, 1.5)
	// 0.5 (1, 1, 2)
	// 0.75 (1.5, 0.75, 1.5)
	// 1 (2, 0, 0)
}
