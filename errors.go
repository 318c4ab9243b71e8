package bezier

import "errors"

var (
	// ErrDomain is returned by bounds-checked queries when t is outside of
	// [0, 1].
	ErrDomain = errors.New("bezier: parameter out of range [0, 1]")

	// ErrOrderOverflow is returned when a curve's order exceeds [MaxOrder],
	// or when an exact combinatorial computation would overflow uint64.
	ErrOrderOverflow = errors.New("bezier: order too large")

	// ErrNoPoints is returned when constructing a curve without any control
	// points.
	ErrNoPoints = errors.New("bezier: no control points")

	// ErrDimensionMismatch is returned when constructing a curve from points
	// of differing dimensionality.
	ErrDimensionMismatch = errors.New("bezier: points differ in dimensionality")

	// ErrInvalidLength is returned when a chain's length isn't of the form
	// 3k+1.
	ErrInvalidLength = errors.New("bezier: chain length is not 3k+1")

	// ErrBadNodePattern is returned when a chain segment isn't tagged
	// anchor, control, control, anchor.
	ErrBadNodePattern = errors.New("bezier: chain segment is not anchor, control, control, anchor")
)
