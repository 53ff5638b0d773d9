package glconv

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oliverbestmann/gm3d/gm"
)

func MglVec2Of(v gm.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{v.X, v.Y}
}

func MglVec3Of(v gm.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

func MglVec4Of(v gm.Vec4) mgl32.Vec4 {
	return mgl32.Vec4{v.X, v.Y, v.Z, v.W}
}

func Vec2OfMgl(v mgl32.Vec2) gm.Vec2 {
	return gm.Vec2{X: v[0], Y: v[1]}
}

func Vec3OfMgl(v mgl32.Vec3) gm.Vec3 {
	return gm.Vec3{X: v[0], Y: v[1], Z: v[2]}
}

func Vec4OfMgl(v mgl32.Vec4) gm.Vec4 {
	return gm.Vec4{X: v[0], Y: v[1], Z: v[2], W: v[3]}
}

// MglMat3Of returns m as a column major mgl32 matrix that transforms
// column vectors the same way m transforms row vectors.
func MglMat3Of(m gm.Mat3) mgl32.Mat3 {
	// row major storage read as column major is the transpose
	return mgl32.Mat3(m.Array())
}

// MglMat4Of returns m as a column major mgl32 matrix that transforms
// column vectors the same way m transforms row vectors. The result can be
// uploaded to a shader uniform as is.
func MglMat4Of(m gm.Mat4) mgl32.Mat4 {
	return mgl32.Mat4(m.Array())
}

func Mat3OfMgl(m mgl32.Mat3) gm.Mat3 {
	return gm.Mat3FromArray(m)
}

func Mat4OfMgl(m mgl32.Mat4) gm.Mat4 {
	return gm.Mat4FromArray(m)
}

// MglQuatOf returns the mgl32 quaternion that describes the same rotation as q.
// Vec3.MulQuat(q) rotates a vector like the returned quaternions Rotate method.
func MglQuatOf(q gm.Quat) mgl32.Quat {
	return mgl32.Quat{
		W: q.W,
		V: mgl32.Vec3{-q.X, -q.Y, -q.Z},
	}
}

func QuatOfMgl(q mgl32.Quat) gm.Quat {
	return gm.Quat{
		X: -q.V[0],
		Y: -q.V[1],
		Z: -q.V[2],
		W: q.W,
	}
}
