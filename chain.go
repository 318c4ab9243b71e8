package bezier

import (
	"fmt"
	"iter"
)

// NodeKind distinguishes nodes on a curve from nodes that only shape it.
type NodeKind uint8

const (
	// Anchor nodes lie on the curve. They start and end segments.
	Anchor NodeKind = iota + 1
	// Control nodes lie off the curve and pull it towards them.
	Control
)

func (k NodeKind) String() string {
	switch k {
	case Anchor:
		return "anchor"
	case Control:
		return "control"
	default:
		return fmt.Sprintf("NodeKind(%d)", uint8(k))
	}
}

// BezNode is a 2D node of a [CubicChain].
type BezNode[F Float] struct {
	Kind NodeKind
	X    F
	Y    F
}

// AnchorNode returns an anchor node at (x, y).
func AnchorNode[F Float](x, y F) BezNode[F] {
	return BezNode[F]{Kind: Anchor, X: x, Y: y}
}

// ControlNode returns a control node at (x, y).
func ControlNode[F Float](x, y F) BezNode[F] {
	return BezNode[F]{Kind: Control, X: x, Y: y}
}

func (n BezNode[F]) IsAnchor() bool  { return n.Kind == Anchor }
func (n BezNode[F]) IsControl() bool { return n.Kind == Control }

func (n BezNode[F]) Splat() (F, F) {
	return n.X, n.Y
}

// Point returns the node's position.
func (n BezNode[F]) Point() Point2[F] {
	return Point2[F]{X: n.X, Y: n.Y}
}

func (n BezNode[F]) String() string {
	return fmt.Sprintf("%s(%g, %g)", n.Kind, n.X, n.Y)
}

// CubicChain is a sequence of cubic Bézier segments stored as a flat slice
// of nodes, with consecutive segments sharing their joining anchor.
//
// A chain of k segments has 3k+1 nodes, tagged
//
//	anchor, control, control, anchor, control, control, anchor, …
type CubicChain[F Float] struct {
	nodes []BezNode[F]
}

// NewCubicChain validates nodes and returns them as a chain. The chain uses
// nodes directly, without copying it.
//
// It returns an error wrapping [ErrInvalidLength] if len(nodes) isn't of the
// form 3k+1, or [ErrBadNodePattern] if any segment isn't tagged anchor,
// control, control, anchor.
func NewCubicChain[F Float](nodes []BezNode[F]) (CubicChain[F], error) {
	if len(nodes)%3 != 1 {
		return CubicChain[F]{}, fmt.Errorf("%w: got %d nodes", ErrInvalidLength, len(nodes))
	}
	for i := range len(nodes) / 3 {
		seg := nodes[i*3 : i*3+4]
		if !(seg[0].IsAnchor() &&
			seg[1].IsControl() &&
			seg[2].IsControl() &&
			seg[3].IsAnchor()) {
			return CubicChain[F]{}, fmt.Errorf("%w: segment %d is %s, %s, %s, %s", ErrBadNodePattern,
				i, seg[0].Kind, seg[1].Kind, seg[2].Kind, seg[3].Kind)
		}
	}
	return CubicChain[F]{nodes: nodes}, nil
}

// NewCubicChainUnchecked returns nodes as a chain without validating them.
// The caller is responsible for nodes satisfying the requirements of
// [NewCubicChain]; using a chain that doesn't has undefined results.
func NewCubicChainUnchecked[F Float](nodes []BezNode[F]) CubicChain[F] {
	return CubicChain[F]{nodes: nodes}
}

// Nodes returns the chain's nodes.
func (c CubicChain[F]) Nodes() []BezNode[F] {
	return c.nodes
}

// Len returns the number of segments in the chain.
func (c CubicChain[F]) Len() int {
	return len(c.nodes) / 3
}

// Segment returns the i-th segment. It panics if i is out of range.
func (c CubicChain[F]) Segment(i int) Bez3o2d[F] {
	seg := c.nodes[i*3 : i*3+4]
	return NewBez3o2d(seg[0].Point(), seg[1].Point(), seg[2].Point(), seg[3].Point())
}

// Segments returns an iterator over the chain's segments.
func (c CubicChain[F]) Segments() iter.Seq[Bez3o2d[F]] {
	return func(yield func(Bez3o2d[F]) bool) {
		for i := range c.Len() {
			if !yield(c.Segment(i)) {
				return
			}
		}
	}
}
