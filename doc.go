// Package bezier evaluates Bézier curves of arbitrary order over points of
// arbitrary dimensionality and floating-point precision. It was designed to
// serve callers that need positions and tangents along curves in tight loops,
// such as animation and path generation, but it is intended to be general
// enough to be useful for other applications.
//
// # Points and vectors
//
// Positions and displacements are distinct types. [Point2], [Point3], and
// [Point4] are positions; [Vec2], [Vec3], and [Vec4] are displacements.
// The difference of two points is a vector, a point translated by a vector is
// a point, and vectors can be added and scaled, but points cannot be added to
// each other. [PointN] and [VecN] provide the same for any number of
// dimensions chosen at runtime.
//
// All types are generic over the floating-point type, which can be float32,
// float64, or any type derived from them. See [Float].
//
// # Arbitrary-order curves
//
// [NBez] is a curve of any order up to [MaxOrder], defined by a slice of
// control points. It can be evaluated ([NBez.Interp]), differentiated
// ([NBez.Slope]), degree elevated ([NBez.Elevate]), and subdivided
// ([NBez.Split]). Evaluation uses the Bernstein form, with binomial
// coefficients that are computed once per curve and cached.
//
// Because of that cache, an NBez must not be evaluated concurrently. See the
// type's documentation.
//
// # Fixed-shape curves
//
// For orders 2 through 6 and 2 through 4 dimensions, the package provides
// dedicated types with their coefficients compiled in as constants. The
// polynomials [BezPoly2o] through [BezPoly6o] describe a single axis; the
// composite curves, named Bez{order}o{dimensions}d such as [Bez3o2d], combine
// one polynomial per axis. These types are plain values without any cache
// and are safe for concurrent use. Their Curve method converts them to an
// equivalent [NBez].
//
// The Points and Values methods of fixed-shape types return copies. Control
// points are changed through the exported fields, SetPoints, and SetPoint on
// composites, or SetValues and SetValue on polynomials. [NBez.Points], in
// contrast, returns the curve's own slice, which can be written to directly.
//
// Both kinds of curves implement [Curve].
//
// # Bounds checking
//
// The curves' Interp and Slope methods return an error wrapping [ErrDomain]
// for parameters outside of [0, 1]. Their InterpUnbounded and SlopeUnbounded
// counterparts skip the check and extrapolate the curve instead. Composite
// curves check the parameter once and then evaluate every axis unbounded.
//
// # Chains of cubics
//
// [CubicChain] is a flat sequence of [BezNode] values that has been validated
// to describe consecutive cubic Béziers, sharing endpoints, such as the
// contours of fonts. [NewCubicChain] validates the sequence, while
// [NewCubicChainUnchecked] trusts the caller.
//
// # Literature
//
// This package makes use of the following ideas:
//   - [A Primer on Bézier Curves]
//   - [Degree elevation]
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
// [Degree elevation]: https://pomax.github.io/bezierinfo/#reordering
package bezier

//go:generate go run ./internal/genbez
