package gm

import (
	"fmt"
	"log/slog"

	"github.com/chewxy/math32"
)

var (
	Vec2Zero  = Vec2{}
	Vec2One   = Vec2{X: 1, Y: 1}
	Vec2UnitX = Vec2{X: 1}
	Vec2UnitY = Vec2{Y: 1}

	Vec3Zero  = Vec3{}
	Vec3One   = Vec3{X: 1, Y: 1, Z: 1}
	Vec3UnitX = Vec3{X: 1}
	Vec3UnitY = Vec3{Y: 1}
	Vec3UnitZ = Vec3{Z: 1}
)

// Vec2 is a 2-dimensional vector.
type Vec2 struct {
	X, Y float32
}

// Vec3 is a 3-dimensional vector.
type Vec3 struct {
	X, Y, Z float32
}

// Vec4 is a 4-dimensional vector.
type Vec4 struct {
	X, Y, Z, W float32
}

func Vec2Of(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

func Vec3Of(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func Vec4Of(x, y, z, w float32) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: w}
}

func (v Vec2) Add(other Vec2) Vec2 { return addFields(v, other) }
func (v Vec2) Sub(other Vec2) Vec2 { return subFields(v, other) }
func (v Vec2) Mul(scalar float32) Vec2 { return scaleFields(v, scalar) }
func (v Vec2) Div(scalar float32) Vec2 { return divFields(v, scalar) }
func (v Vec2) Neg() Vec2 { return negFields(v) }
func (v Vec2) Dot(other Vec2) float32 { return dotFields(v, other) }

func (v Vec2) MulEach(other Vec2) Vec2 {
	v.X *= other.X
	v.Y *= other.Y
	return v
}

func (v Vec2) LengthSqr() float32 {
	return v.Dot(v)
}

// Length returns the euclidean length of the vector.
func (v Vec2) Length() float32 {
	return math32.Sqrt(v.LengthSqr())
}

// Normalize scales the vector to a length of one. A zero vector
// ends up with NaN fields.
func (v *Vec2) Normalize() {
	*v = v.Div(v.Length())
}

// Normalized returns a copy of the vector scaled to a length of one.
func (v Vec2) Normalized() Vec2 {
	v.Normalize()
	return v
}

// Extend returns a Vec3 with the given z component.
func (v Vec2) Extend(z float32) Vec3 {
	return Vec3{X: v.X, Y: v.Y, Z: z}
}

// MulMat2 multiplies the row vector v with the matrix m.
func (v Vec2) MulMat2(m Mat2) Vec2 {
	return Vec2{
		X: v.X*m.C00 + v.Y*m.C01,
		Y: v.X*m.C10 + v.Y*m.C11,
	}
}

// MulMat3 transforms the point v by the 2d homogeneous matrix m.
// The point is extended with a z of 1, and the result is divided by
// the resulting z.
func (v Vec2) MulMat3(m Mat3) Vec2 {
	r := v.Extend(1).MulMat3(m)
	return Vec2{X: r.X / r.Z, Y: r.Y / r.Z}
}

func (v Vec2) String() string {
	return fmt.Sprintf("vec2(x=%v, y=%v)", v.X, v.Y)
}

func (v Vec2) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64("x", float64(v.X)),
		slog.Float64("y", float64(v.Y)),
	)
}

func (v Vec3) Add(other Vec3) Vec3 { return addFields(v, other) }
func (v Vec3) Sub(other Vec3) Vec3 { return subFields(v, other) }
func (v Vec3) Mul(scalar float32) Vec3 { return scaleFields(v, scalar) }
func (v Vec3) Div(scalar float32) Vec3 { return divFields(v, scalar) }
func (v Vec3) Neg() Vec3 { return negFields(v) }
func (v Vec3) Dot(other Vec3) float32 { return dotFields(v, other) }

func (v Vec3) MulEach(other Vec3) Vec3 {
	v.X *= other.X
	v.Y *= other.Y
	v.Z *= other.Z
	return v
}

// Cross returns the cross product of v and other. The sign follows the
// left-handed coordinate system, unit x crossed with unit z gives negative unit y.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

func (v Vec3) LengthSqr() float32 {
	return v.Dot(v)
}

// Length returns the euclidean length of the vector.
func (v Vec3) Length() float32 {
	return math32.Sqrt(v.LengthSqr())
}

// Normalize scales the vector to a length of one. A zero vector
// ends up with NaN fields.
func (v *Vec3) Normalize() {
	*v = v.Div(v.Length())
}

// Normalized returns a copy of the vector scaled to a length of one.
func (v Vec3) Normalized() Vec3 {
	v.Normalize()
	return v
}

// Extend returns a Vec4 with the given w component.
func (v Vec3) Extend(w float32) Vec4 {
	return Vec4{X: v.X, Y: v.Y, Z: v.Z, W: w}
}

// XY drops the z component.
func (v Vec3) XY() Vec2 {
	return Vec2{X: v.X, Y: v.Y}
}

// MulMat3 multiplies the row vector v with the matrix m.
func (v Vec3) MulMat3(m Mat3) Vec3 {
	return Vec3{
		X: v.X*m.C00 + v.Y*m.C01 + v.Z*m.C02,
		Y: v.X*m.C10 + v.Y*m.C11 + v.Z*m.C12,
		Z: v.X*m.C20 + v.Y*m.C21 + v.Z*m.C22,
	}
}

// MulMat4 transforms the point v by m. The point is extended with a w of 1,
// and the result is divided by the resulting w.
func (v Vec3) MulMat4(m Mat4) Vec3 {
	r := v.Extend(1).MulMat4(m)
	return Vec3{X: r.X / r.W, Y: r.Y / r.W, Z: r.Z / r.W}
}

// MulQuat rotates the point v by the rotation matrix of q.
func (v Vec3) MulQuat(q Quat) Vec3 {
	return v.MulMat4(q.Mat4())
}

func (v Vec3) String() string {
	return fmt.Sprintf("vec3(x=%v, y=%v, z=%v)", v.X, v.Y, v.Z)
}

func (v Vec3) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64("x", float64(v.X)),
		slog.Float64("y", float64(v.Y)),
		slog.Float64("z", float64(v.Z)),
	)
}

func (v Vec4) Add(other Vec4) Vec4 { return addFields(v, other) }
func (v Vec4) Sub(other Vec4) Vec4 { return subFields(v, other) }
func (v Vec4) Mul(scalar float32) Vec4 { return scaleFields(v, scalar) }
func (v Vec4) Div(scalar float32) Vec4 { return divFields(v, scalar) }
func (v Vec4) Neg() Vec4 { return negFields(v) }
func (v Vec4) Dot(other Vec4) float32 { return dotFields(v, other) }

func (v Vec4) LengthSqr() float32 {
	return v.Dot(v)
}

// Length returns the euclidean length of the vector.
func (v Vec4) Length() float32 {
	return math32.Sqrt(v.LengthSqr())
}

// Normalize scales the vector to a length of one. A zero vector
// ends up with NaN fields.
func (v *Vec4) Normalize() {
	*v = v.Div(v.Length())
}

// Normalized returns a copy of the vector scaled to a length of one.
func (v Vec4) Normalized() Vec4 {
	v.Normalize()
	return v
}

// XYZ drops the w component.
func (v Vec4) XYZ() Vec3 {
	return Vec3{X: v.X, Y: v.Y, Z: v.Z}
}

// MulMat4 multiplies the row vector v with the matrix m.
func (v Vec4) MulMat4(m Mat4) Vec4 {
	return Vec4{
		X: v.X*m.C00 + v.Y*m.C01 + v.Z*m.C02 + v.W*m.C03,
		Y: v.X*m.C10 + v.Y*m.C11 + v.Z*m.C12 + v.W*m.C13,
		Z: v.X*m.C20 + v.Y*m.C21 + v.Z*m.C22 + v.W*m.C23,
		W: v.X*m.C30 + v.Y*m.C31 + v.Z*m.C32 + v.W*m.C33,
	}
}

func (v Vec4) String() string {
	return fmt.Sprintf("vec4(x=%v, y=%v, z=%v, w=%v)", v.X, v.Y, v.Z, v.W)
}

func (v Vec4) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64("x", float64(v.X)),
		slog.Float64("y", float64(v.Y)),
		slog.Float64("z", float64(v.Z)),
		slog.Float64("w", float64(v.W)),
	)
}
