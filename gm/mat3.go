package gm

import (
	"fmt"
	"log/slog"
	"unsafe"
)

// Mat3 is a 3x3 matrix. Field CXY holds the value in column X of row Y.
//
// Used as a 2d homogeneous transform, the translation lives in the
// third row, see TranslationMat3.
type Mat3 struct {
	C00, C10, C20 float32
	C01, C11, C21 float32
	C02, C12, C22 float32
}

func IdentityMat3() Mat3 {
	return Mat3{
		C00: 1, C10: 0, C20: 0,
		C01: 0, C11: 1, C21: 0,
		C02: 0, C12: 0, C22: 1,
	}
}

// LookAtMat3 creates a rotation that points in the forward direction, with the
// given up direction. The rows of the matrix are right, up and forward, where
// right = up × forward. Up is not orthogonalized against forward, the caller
// must pass perpendicular vectors to get a valid rotation.
func LookAtMat3(forward, up Vec3) Mat3 {
	forward.Normalize()
	up.Normalize()
	right := up.Cross(forward)

	return Mat3{
		C00: right.X, C10: right.Y, C20: right.Z,
		C01: up.X, C11: up.Y, C21: up.Z,
		C02: forward.X, C12: forward.Y, C22: forward.Z,
	}
}

// TranslationMat3 returns a 2d homogeneous matrix that moves a point by offset.
func TranslationMat3(offset Vec2) Mat3 {
	return Mat3{
		C00: 1, C10: 0, C20: 0,
		C01: 0, C11: 1, C21: 0,
		C02: offset.X, C12: offset.Y, C22: 1,
	}
}

// ScaleMat3 returns a 2d homogeneous matrix that scales a point.
func ScaleMat3(scale Vec2) Mat3 {
	return Mat3{
		C00: scale.X,
		C11: scale.Y,
		C22: 1,
	}
}

// RotationMat3 returns a 2d homogeneous matrix that rotates a point
// counter-clockwise around the origin, with Y pointing up.
func RotationMat3(angle Rad) Mat3 {
	sin, cos := angle.Sin(), angle.Cos()

	return Mat3{
		C00: cos, C10: sin, C20: 0,
		C01: -sin, C11: cos, C21: 0,
		C02: 0, C12: 0, C22: 1,
	}
}

// Mat3FromArray builds a matrix from values stored row by row.
func Mat3FromArray(values [9]float32) Mat3 {
	return *(*Mat3)(unsafe.Pointer(&values))
}

// Array returns the values of the matrix row by row.
func (m Mat3) Array() [9]float32 {
	return *m.flat()
}

func (m *Mat3) flat() *[9]float32 {
	return (*[9]float32)(unsafe.Pointer(m))
}

func (m Mat3) Add(other Mat3) Mat3 { return addFields(m, other) }
func (m Mat3) Sub(other Mat3) Mat3 { return subFields(m, other) }
func (m Mat3) MulScalar(scalar float32) Mat3 { return scaleFields(m, scalar) }

func (m Mat3) Mul(other Mat3) Mat3 {
	var result Mat3
	mulSquare(result.flat()[:], m.flat()[:], other.flat()[:], 3)
	return result
}

func (m Mat3) Transpose() Mat3 {
	var result Mat3
	transposeSquare(result.flat()[:], m.flat()[:], 3)
	return result
}

// MatrixOfMinors returns the matrix where every value is replaced by the
// determinant of the 2x2 matrix that remains after removing its row and column.
func (m Mat3) MatrixOfMinors() Mat3 {
	var result Mat3
	minors(result.flat()[:], m.flat()[:], 3)
	return result
}

// MatrixOfCofactors applies the checkerboard sign pattern to the matrix,
// negating every value where the sum of row and column is odd.
// Apply it to the result of MatrixOfMinors to get the cofactors.
func (m Mat3) MatrixOfCofactors() Mat3 {
	var result Mat3
	cofactors(result.flat()[:], m.flat()[:], 3)
	return result
}

func (m Mat3) Determinant() float32 {
	return determinant(m.flat()[:], 3)
}

// Inverse returns the inverse of the matrix. A singular matrix
// yields Inf and NaN values.
func (m Mat3) Inverse() Mat3 {
	var result Mat3
	inverse(result.flat()[:], m.flat()[:], 3)
	return result
}

// Mat4 extends the matrix to a 4x4 matrix with an identity fourth row and column.
func (m Mat3) Mat4() Mat4 {
	return Mat4{
		C00: m.C00, C10: m.C10, C20: m.C20, C30: 0,
		C01: m.C01, C11: m.C11, C21: m.C21, C31: 0,
		C02: m.C02, C12: m.C12, C22: m.C22, C32: 0,
		C03: 0, C13: 0, C23: 0, C33: 1,
	}
}

func (m Mat3) String() string {
	return fmt.Sprintf("mat3[[%v %v %v] [%v %v %v] [%v %v %v]]",
		m.C00, m.C10, m.C20,
		m.C01, m.C11, m.C21,
		m.C02, m.C12, m.C22)
}

func (m Mat3) LogValue() slog.Value {
	return slog.StringValue(m.String())
}
