package bezier

import (
	"fmt"
)

// Point2 is a position in 2D space.
type Point2[F Float] struct {
	X F
	Y F
}

// Point3 is a position in 3D space.
type Point3[F Float] struct {
	X F
	Y F
	Z F
}

// Point4 is a position in 4D space.
type Point4[F Float] struct {
	X F
	Y F
	Z F
	W F
}

var _ Point[float64, Point2[float64], Vec2[float64]] = Point2[float64]{}
var _ Point[float64, Point3[float64], Vec3[float64]] = Point3[float64]{}
var _ Point[float64, Point4[float64], Vec4[float64]] = Point4[float64]{}

// Pt2 returns the point (x, y).
func Pt2[F Float](x, y F) Point2[F] {
	return Point2[F]{X: x, Y: y}
}

// Pt3 returns the point (x, y, z).
func Pt3[F Float](x, y, z F) Point3[F] {
	return Point3[F]{X: x, Y: y, Z: z}
}

// Pt4 returns the point (x, y, z, w).
func Pt4[F Float](x, y, z, w F) Point4[F] {
	return Point4[F]{X: x, Y: y, Z: z, W: w}
}

func (pt Point2[F]) Splat() (F, F) {
	return pt.X, pt.Y
}

func (pt Point3[F]) Splat() (F, F, F) {
	return pt.X, pt.Y, pt.Z
}

func (pt Point4[F]) Splat() (F, F, F, F) {
	return pt.X, pt.Y, pt.Z, pt.W
}

// Array returns the point's coordinates in axis order.
func (pt Point2[F]) Array() [2]F { return [2]F{pt.X, pt.Y} }

// Array returns the point's coordinates in axis order.
func (pt Point3[F]) Array() [3]F { return [3]F{pt.X, pt.Y, pt.Z} }

// Array returns the point's coordinates in axis order.
func (pt Point4[F]) Array() [4]F { return [4]F{pt.X, pt.Y, pt.Z, pt.W} }

func (pt Point2[F]) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

func (pt Point3[F]) String() string {
	return fmt.Sprintf("(%g, %g, %g)", pt.X, pt.Y, pt.Z)
}

func (pt Point4[F]) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", pt.X, pt.Y, pt.Z, pt.W)
}

// Vec returns the vector from the origin to pt.
func (pt Point2[F]) Vec() Vec2[F] { return Vec2[F](pt) }

// Vec returns the vector from the origin to pt.
func (pt Point3[F]) Vec() Vec3[F] { return Vec3[F](pt) }

// Vec returns the vector from the origin to pt.
func (pt Point4[F]) Vec() Vec4[F] { return Vec4[F](pt) }

func (pt Point2[F]) Translate(o Vec2[F]) Point2[F] {
	return Point2[F]{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
	}
}

func (pt Point3[F]) Translate(o Vec3[F]) Point3[F] {
	return Point3[F]{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
		Z: pt.Z + o.Z,
	}
}

func (pt Point4[F]) Translate(o Vec4[F]) Point4[F] {
	return Point4[F]{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
		Z: pt.Z + o.Z,
		W: pt.W + o.W,
	}
}

// Sub computes pt−o.
// To subtract a vector from pt, use Translate and negate the vector.
func (pt Point2[F]) Sub(o Point2[F]) Vec2[F] {
	return Vec2[F]{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
	}
}

// Sub computes pt−o.
func (pt Point3[F]) Sub(o Point3[F]) Vec3[F] {
	return Vec3[F]{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
		Z: pt.Z - o.Z,
	}
}

// Sub computes pt−o.
func (pt Point4[F]) Sub(o Point4[F]) Vec4[F] {
	return Vec4[F]{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
		Z: pt.Z - o.Z,
		W: pt.W - o.W,
	}
}

// Lerp linearly interpolates between two points.
func (pt Point2[F]) Lerp(o Point2[F], t F) Point2[F] {
	return Point2[F](Vec2[F](pt).Lerp(Vec2[F](o), t))
}

// Lerp linearly interpolates between two points.
func (pt Point3[F]) Lerp(o Point3[F], t F) Point3[F] {
	return Point3[F](Vec3[F](pt).Lerp(Vec3[F](o), t))
}

// Lerp linearly interpolates between two points.
func (pt Point4[F]) Lerp(o Point4[F], t F) Point4[F] {
	return Point4[F](Vec4[F](pt).Lerp(Vec4[F](o), t))
}

// Midpoint returns the midpoint of two points.
func (pt Point2[F]) Midpoint(o Point2[F]) Point2[F] {
	return Point2[F]{
		X: 0.5 * (pt.X + o.X),
		Y: 0.5 * (pt.Y + o.Y),
	}
}

// Distance returns the euclidean distance between two points.
func (pt Point2[F]) Distance(o Point2[F]) F {
	return pt.Sub(o).Hypot()
}

// Distance returns the euclidean distance between two points.
func (pt Point3[F]) Distance(o Point3[F]) F {
	return pt.Sub(o).Hypot()
}

// Distance returns the euclidean distance between two points.
func (pt Point4[F]) Distance(o Point4[F]) F {
	return pt.Sub(o).Hypot()
}

// IsInf reports whether at least one coordinate is infinite.
func (pt Point2[F]) IsInf() bool {
	return isInf(pt.X) || isInf(pt.Y)
}

// IsInf reports whether at least one coordinate is infinite.
func (pt Point3[F]) IsInf() bool {
	return isInf(pt.X) || isInf(pt.Y) || isInf(pt.Z)
}

// IsInf reports whether at least one coordinate is infinite.
func (pt Point4[F]) IsInf() bool {
	return isInf(pt.X) || isInf(pt.Y) || isInf(pt.Z) || isInf(pt.W)
}

// IsNaN reports whether at least one coordinate is NaN.
func (pt Point2[F]) IsNaN() bool {
	return isNaN(pt.X) || isNaN(pt.Y)
}

// IsNaN reports whether at least one coordinate is NaN.
func (pt Point3[F]) IsNaN() bool {
	return isNaN(pt.X) || isNaN(pt.Y) || isNaN(pt.Z)
}

// IsNaN reports whether at least one coordinate is NaN.
func (pt Point4[F]) IsNaN() bool {
	return isNaN(pt.X) || isNaN(pt.Y) || isNaN(pt.Z) || isNaN(pt.W)
}
