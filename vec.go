package bezier

import (
	"fmt"
)

// Vec2 is a displacement in 2D space.
type Vec2[F Float] struct {
	X F
	Y F
}

// Vec3 is a displacement in 3D space.
type Vec3[F Float] struct {
	X F
	Y F
	Z F
}

// Vec4 is a displacement in 4D space.
type Vec4[F Float] struct {
	X F
	Y F
	Z F
	W F
}

var _ Vector[float64, Vec2[float64]] = Vec2[float64]{}
var _ Vector[float64, Vec3[float64]] = Vec3[float64]{}
var _ Vector[float64, Vec4[float64]] = Vec4[float64]{}

// V2 returns the vector ⟨x, y⟩.
func V2[F Float](x, y F) Vec2[F] {
	return Vec2[F]{X: x, Y: y}
}

// V3 returns the vector ⟨x, y, z⟩.
func V3[F Float](x, y, z F) Vec3[F] {
	return Vec3[F]{X: x, Y: y, Z: z}
}

// V4 returns the vector ⟨x, y, z, w⟩.
func V4[F Float](x, y, z, w F) Vec4[F] {
	return Vec4[F]{X: x, Y: y, Z: z, W: w}
}

// Splat returns the vector's coordinates.
func (v Vec2[F]) Splat() (F, F) {
	return v.X, v.Y
}

// Splat returns the vector's coordinates.
func (v Vec3[F]) Splat() (F, F, F) {
	return v.X, v.Y, v.Z
}

// Splat returns the vector's coordinates.
func (v Vec4[F]) Splat() (F, F, F, F) {
	return v.X, v.Y, v.Z, v.W
}

func (v Vec2[F]) Array() [2]F { return [2]F{v.X, v.Y} }
func (v Vec3[F]) Array() [3]F { return [3]F{v.X, v.Y, v.Z} }
func (v Vec4[F]) Array() [4]F { return [4]F{v.X, v.Y, v.Z, v.W} }

func (v Vec2[F]) String() string {
	return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y)
}

func (v Vec3[F]) String() string {
	return fmt.Sprintf("⟨%g, %g, %g⟩", v.X, v.Y, v.Z)
}

func (v Vec4[F]) String() string {
	return fmt.Sprintf("⟨%g, %g, %g, %g⟩", v.X, v.Y, v.Z, v.W)
}

// Point returns the point at the origin translated by v.
func (v Vec2[F]) Point() Point2[F] { return Point2[F](v) }

// Point returns the point at the origin translated by v.
func (v Vec3[F]) Point() Point3[F] { return Point3[F](v) }

// Point returns the point at the origin translated by v.
func (v Vec4[F]) Point() Point4[F] { return Point4[F](v) }

// Dot returns the dot product of v and o.
func (v Vec2[F]) Dot(o Vec2[F]) F {
	return v.X*o.X + v.Y*o.Y
}

// Dot returns the dot product of v and o.
func (v Vec3[F]) Dot(o Vec3[F]) F {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Dot returns the dot product of v and o.
func (v Vec4[F]) Dot(o Vec4[F]) F {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z + v.W*o.W
}

// Cross returns the cross product of v and o.
func (v Vec2[F]) Cross(o Vec2[F]) F {
	return v.X*o.Y - v.Y*o.X
}

// Cross returns the cross product of v and o.
func (v Vec3[F]) Cross(o Vec3[F]) Vec3[F] {
	return Vec3[F]{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Hypot returns the magnitude of the vector.
func (v Vec2[F]) Hypot() F { return sqrt(v.Hypot2()) }

// Hypot returns the magnitude of the vector.
func (v Vec3[F]) Hypot() F { return sqrt(v.Hypot2()) }

// Hypot returns the magnitude of the vector.
func (v Vec4[F]) Hypot() F { return sqrt(v.Hypot2()) }

// Hypot2 returns the squared magnitude of the vector.
//
// This function is more efficient than squaring the result of [Vec2.Hypot].
func (v Vec2[F]) Hypot2() F { return v.Dot(v) }

// Hypot2 returns the squared magnitude of the vector.
func (v Vec3[F]) Hypot2() F { return v.Dot(v) }

// Hypot2 returns the squared magnitude of the vector.
func (v Vec4[F]) Hypot2() F { return v.Dot(v) }

// Lerp linearly interpolates between two vectors.
func (v Vec2[F]) Lerp(o Vec2[F], t F) Vec2[F] {
	// v + t * (o-v)
	return v.Add(o.Sub(v).Mul(t))
}

// Lerp linearly interpolates between two vectors.
func (v Vec3[F]) Lerp(o Vec3[F], t F) Vec3[F] {
	return v.Add(o.Sub(v).Mul(t))
}

// Lerp linearly interpolates between two vectors.
func (v Vec4[F]) Lerp(o Vec4[F], t F) Vec4[F] {
	return v.Add(o.Sub(v).Mul(t))
}

// Normalize returns a vector of magnitude 1.0 with the same direction as v.
// v must not be the zero vector; normalizing it produces a NaN vector.
func (v Vec2[F]) Normalize() Vec2[F] {
	return v.Mul(1.0 / v.Hypot())
}

// Normalize returns a vector of magnitude 1.0 with the same direction as v.
// v must not be the zero vector; normalizing it produces a NaN vector.
func (v Vec3[F]) Normalize() Vec3[F] {
	return v.Mul(1.0 / v.Hypot())
}

// Normalize returns a vector of magnitude 1.0 with the same direction as v.
// v must not be the zero vector; normalizing it produces a NaN vector.
func (v Vec4[F]) Normalize() Vec4[F] {
	return v.Mul(1.0 / v.Hypot())
}

// IsInf reports whether at least one coordinate is infinite.
func (v Vec2[F]) IsInf() bool {
	return isInf(v.X) || isInf(v.Y)
}

// IsInf reports whether at least one coordinate is infinite.
func (v Vec3[F]) IsInf() bool {
	return isInf(v.X) || isInf(v.Y) || isInf(v.Z)
}

// IsInf reports whether at least one coordinate is infinite.
func (v Vec4[F]) IsInf() bool {
	return isInf(v.X) || isInf(v.Y) || isInf(v.Z) || isInf(v.W)
}

// IsNaN reports whether at least one coordinate is NaN.
func (v Vec2[F]) IsNaN() bool {
	return isNaN(v.X) || isNaN(v.Y)
}

// IsNaN reports whether at least one coordinate is NaN.
func (v Vec3[F]) IsNaN() bool {
	return isNaN(v.X) || isNaN(v.Y) || isNaN(v.Z)
}

// IsNaN reports whether at least one coordinate is NaN.
func (v Vec4[F]) IsNaN() bool {
	return isNaN(v.X) || isNaN(v.Y) || isNaN(v.Z) || isNaN(v.W)
}

// Add adds two vectors and returns the resulting vector.
func (v Vec2[F]) Add(o Vec2[F]) Vec2[F] {
	return Vec2[F]{
		X: v.X + o.X,
		Y: v.Y + o.Y,
	}
}

// Add adds two vectors and returns the resulting vector.
func (v Vec3[F]) Add(o Vec3[F]) Vec3[F] {
	return Vec3[F]{
		X: v.X + o.X,
		Y: v.Y + o.Y,
		Z: v.Z + o.Z,
	}
}

// Add adds two vectors and returns the resulting vector.
func (v Vec4[F]) Add(o Vec4[F]) Vec4[F] {
	return Vec4[F]{
		X: v.X + o.X,
		Y: v.Y + o.Y,
		Z: v.Z + o.Z,
		W: v.W + o.W,
	}
}

// Sub subtracts two vectors and returns the resulting vector.
func (v Vec2[F]) Sub(o Vec2[F]) Vec2[F] {
	return Vec2[F]{
		X: v.X - o.X,
		Y: v.Y - o.Y,
	}
}

// Sub subtracts two vectors and returns the resulting vector.
func (v Vec3[F]) Sub(o Vec3[F]) Vec3[F] {
	return Vec3[F]{
		X: v.X - o.X,
		Y: v.Y - o.Y,
		Z: v.Z - o.Z,
	}
}

// Sub subtracts two vectors and returns the resulting vector.
func (v Vec4[F]) Sub(o Vec4[F]) Vec4[F] {
	return Vec4[F]{
		X: v.X - o.X,
		Y: v.Y - o.Y,
		Z: v.Z - o.Z,
		W: v.W - o.W,
	}
}

func (v Vec2[F]) Mul(f F) Vec2[F] {
	return Vec2[F]{
		X: v.X * f,
		Y: v.Y * f,
	}
}

func (v Vec3[F]) Mul(f F) Vec3[F] {
	return Vec3[F]{
		X: v.X * f,
		Y: v.Y * f,
		Z: v.Z * f,
	}
}

func (v Vec4[F]) Mul(f F) Vec4[F] {
	return Vec4[F]{
		X: v.X * f,
		Y: v.Y * f,
		Z: v.Z * f,
		W: v.W * f,
	}
}

func (v Vec2[F]) Div(f F) Vec2[F] {
	return Vec2[F]{
		X: v.X / f,
		Y: v.Y / f,
	}
}

func (v Vec3[F]) Div(f F) Vec3[F] {
	return Vec3[F]{
		X: v.X / f,
		Y: v.Y / f,
		Z: v.Z / f,
	}
}

func (v Vec4[F]) Div(f F) Vec4[F] {
	return Vec4[F]{
		X: v.X / f,
		Y: v.Y / f,
		Z: v.Z / f,
		W: v.W / f,
	}
}

// Negate returns a new vector with the signs of all coordinates flipped.
func (v Vec2[F]) Negate() Vec2[F] {
	return Vec2[F]{
		X: -v.X,
		Y: -v.Y,
	}
}

// Negate returns a new vector with the signs of all coordinates flipped.
func (v Vec3[F]) Negate() Vec3[F] {
	return Vec3[F]{
		X: -v.X,
		Y: -v.Y,
		Z: -v.Z,
	}
}

// Negate returns a new vector with the signs of all coordinates flipped.
func (v Vec4[F]) Negate() Vec4[F] {
	return Vec4[F]{
		X: -v.X,
		Y: -v.Y,
		Z: -v.Z,
		W: -v.W,
	}
}
