package glconv

import (
	"github.com/oliverbestmann/gm3d/gm"
	"golang.org/x/image/math/f32"
)

func F32Vec2Of(v gm.Vec2) f32.Vec2 {
	return f32.Vec2{v.X, v.Y}
}

func F32Vec3Of(v gm.Vec3) f32.Vec3 {
	return f32.Vec3{v.X, v.Y, v.Z}
}

func F32Vec4Of(v gm.Vec4) f32.Vec4 {
	return f32.Vec4{v.X, v.Y, v.Z, v.W}
}

func Vec2OfF32(v f32.Vec2) gm.Vec2 {
	return gm.Vec2{X: v[0], Y: v[1]}
}

func Vec3OfF32(v f32.Vec3) gm.Vec3 {
	return gm.Vec3{X: v[0], Y: v[1], Z: v[2]}
}

func Vec4OfF32(v f32.Vec4) gm.Vec4 {
	return gm.Vec4{X: v[0], Y: v[1], Z: v[2], W: v[3]}
}

// F32Mat3Of returns the values of m in row major order. Both types share
// the same layout, the matrix is not transposed.
func F32Mat3Of(m gm.Mat3) f32.Mat3 {
	return m.Array()
}

// F32Mat4Of returns the values of m in row major order.
func F32Mat4Of(m gm.Mat4) f32.Mat4 {
	return m.Array()
}

func Mat3OfF32(m f32.Mat3) gm.Mat3 {
	return gm.Mat3FromArray(m)
}

func Mat4OfF32(m f32.Mat4) gm.Mat4 {
	return gm.Mat4FromArray(m)
}
