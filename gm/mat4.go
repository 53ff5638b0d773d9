package gm

import (
	"fmt"
	"log/slog"
	"unsafe"
)

// Mat4 is a 4x4 matrix. Field CXY holds the value in column X of row Y.
//
// Affine transforms keep their translation in the fourth row, as points
// are multiplied as row vectors from the left.
type Mat4 struct {
	C00, C10, C20, C30 float32
	C01, C11, C21, C31 float32
	C02, C12, C22, C32 float32
	C03, C13, C23, C33 float32
}

func IdentityMat4() Mat4 {
	return Mat4{
		C00: 1, C10: 0, C20: 0, C30: 0,
		C01: 0, C11: 1, C21: 0, C31: 0,
		C02: 0, C12: 0, C22: 1, C32: 0,
		C03: 0, C13: 0, C23: 0, C33: 1,
	}
}

// TranslationMat4 returns a matrix that moves a point by translation.
func TranslationMat4(translation Vec3) Mat4 {
	return Mat4{
		C00: 1, C10: 0, C20: 0, C30: 0,
		C01: 0, C11: 1, C21: 0, C31: 0,
		C02: 0, C12: 0, C22: 1, C32: 0,
		C03: translation.X, C13: translation.Y, C23: translation.Z, C33: 1,
	}
}

// ScaleMat4 returns a matrix that scales each axis by the matching
// component of scale.
func ScaleMat4(scale Vec3) Mat4 {
	return Mat4{
		C00: scale.X, C10: 0, C20: 0, C30: 0,
		C01: 0, C11: scale.Y, C21: 0, C31: 0,
		C02: 0, C12: 0, C22: scale.Z, C32: 0,
		C03: 0, C13: 0, C23: 0, C33: 1,
	}
}

// UniformScaleMat4 returns a matrix that scales all axes by scale.
func UniformScaleMat4(scale float32) Mat4 {
	return ScaleMat4(Vec3{X: scale, Y: scale, Z: scale})
}

// Mat4FromQuat returns the rotation matrix of q.
func Mat4FromQuat(q Quat) Mat4 {
	x := q.X * 2
	y := q.Y * 2
	z := q.Z * 2
	xx := q.X * x
	yy := q.Y * y
	zz := q.Z * z
	xy := q.X * y
	xz := q.X * z
	yz := q.Y * z
	wx := q.W * x
	wy := q.W * y
	wz := q.W * z

	return Mat4{
		C00: 1 - (yy + zz), C10: xy - wz, C20: xz + wy, C30: 0,
		C01: xy + wz, C11: 1 - (xx + zz), C21: yz - wx, C31: 0,
		C02: xz - wy, C12: yz + wx, C22: 1 - (xx + yy), C32: 0,
		C03: 0, C13: 0, C23: 0, C33: 1,
	}
}

// Mat4FromArray builds a matrix from values stored row by row.
func Mat4FromArray(values [16]float32) Mat4 {
	return *(*Mat4)(unsafe.Pointer(&values))
}

// Array returns the values of the matrix row by row.
func (m Mat4) Array() [16]float32 {
	return *m.flat()
}

func (m *Mat4) flat() *[16]float32 {
	return (*[16]float32)(unsafe.Pointer(m))
}

func (m Mat4) Add(other Mat4) Mat4 { return addFields(m, other) }
func (m Mat4) Sub(other Mat4) Mat4 { return subFields(m, other) }
func (m Mat4) MulScalar(scalar float32) Mat4 { return scaleFields(m, scalar) }

// Mul multiplies the matrix with other. Transforming a point with the result
// is the same as transforming it by m first and by other second.
func (m Mat4) Mul(other Mat4) Mat4 {
	var result Mat4
	mulSquare(result.flat()[:], m.flat()[:], other.flat()[:], 4)
	return result
}

// MulQuat multiplies the matrix with the rotation matrix of q.
func (m Mat4) MulQuat(q Quat) Mat4 {
	return m.Mul(q.Mat4())
}

func (m Mat4) Transpose() Mat4 {
	var result Mat4
	transposeSquare(result.flat()[:], m.flat()[:], 4)
	return result
}

// MatrixOfMinors returns the matrix where every value is replaced by the
// determinant of the 3x3 matrix that remains after removing its row and column.
func (m Mat4) MatrixOfMinors() Mat4 {
	var result Mat4
	minors(result.flat()[:], m.flat()[:], 4)
	return result
}

// MatrixOfCofactors applies the checkerboard sign pattern to the matrix,
// negating every value where the sum of row and column is odd.
// Apply it to the result of MatrixOfMinors to get the cofactors.
func (m Mat4) MatrixOfCofactors() Mat4 {
	var result Mat4
	cofactors(result.flat()[:], m.flat()[:], 4)
	return result
}

func (m Mat4) Determinant() float32 {
	return determinant(m.flat()[:], 4)
}

// Inverse returns the inverse of the matrix, calculated as the adjugate
// scaled by one over the determinant. A singular matrix yields Inf
// and NaN values.
func (m Mat4) Inverse() Mat4 {
	var result Mat4
	inverse(result.flat()[:], m.flat()[:], 4)
	return result
}

// Mat3 returns the upper left 3x3 part of the matrix.
func (m Mat4) Mat3() Mat3 {
	return Mat3{
		C00: m.C00, C10: m.C10, C20: m.C20,
		C01: m.C01, C11: m.C11, C21: m.C21,
		C02: m.C02, C12: m.C12, C22: m.C22,
	}
}

// Translation returns the translation stored in the fourth row.
func (m Mat4) Translation() Vec3 {
	return Vec3{X: m.C03, Y: m.C13, Z: m.C23}
}

func (m Mat4) String() string {
	return fmt.Sprintf("mat4[[%v %v %v %v] [%v %v %v %v] [%v %v %v %v] [%v %v %v %v]]",
		m.C00, m.C10, m.C20, m.C30,
		m.C01, m.C11, m.C21, m.C31,
		m.C02, m.C12, m.C22, m.C32,
		m.C03, m.C13, m.C23, m.C33)
}

func (m Mat4) LogValue() slog.Value {
	return slog.StringValue(m.String())
}
