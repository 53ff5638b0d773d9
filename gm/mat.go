package gm

import (
	"fmt"
	"log/slog"
	"unsafe"
)

// Mat1x3 is a matrix with a single column of three values.
type Mat1x3 struct {
	C00 float32
	C01 float32
	C02 float32
}

func (m Mat1x3) Add(other Mat1x3) Mat1x3 { return addFields(m, other) }
func (m Mat1x3) Sub(other Mat1x3) Mat1x3 { return subFields(m, other) }
func (m Mat1x3) MulScalar(scalar float32) Mat1x3 { return scaleFields(m, scalar) }

func (m Mat1x3) String() string {
	return fmt.Sprintf("mat1x3[%v %v %v]", m.C00, m.C01, m.C02)
}

// Mat2 is a 2x2 matrix. Field CXY holds the value in column X of row Y.
type Mat2 struct {
	C00, C10 float32
	C01, C11 float32
}

func IdentityMat2() Mat2 {
	return Mat2{
		C00: 1, C10: 0,
		C01: 0, C11: 1,
	}
}

// ScaleMat2 returns a matrix that scales a Vec2.
func ScaleMat2(scale Vec2) Mat2 {
	return Mat2{
		C00: scale.X,
		C11: scale.Y,
	}
}

// RotationMat2 returns a matrix that rotates a Vec2 counter-clockwise
// by the given angle, in a coordinate system with Y pointing up.
func RotationMat2(angle Rad) Mat2 {
	sin, cos := angle.Sin(), angle.Cos()

	return Mat2{
		C00: cos, C10: sin,
		C01: -sin, C11: cos,
	}
}

// Mat2FromArray builds a matrix from values stored row by row.
func Mat2FromArray(values [4]float32) Mat2 {
	return *(*Mat2)(unsafe.Pointer(&values))
}

// Array returns the values of the matrix row by row.
func (m Mat2) Array() [4]float32 {
	return *m.flat()
}

func (m *Mat2) flat() *[4]float32 {
	return (*[4]float32)(unsafe.Pointer(m))
}

func (m Mat2) Add(other Mat2) Mat2 { return addFields(m, other) }
func (m Mat2) Sub(other Mat2) Mat2 { return subFields(m, other) }
func (m Mat2) MulScalar(scalar float32) Mat2 { return scaleFields(m, scalar) }

func (m Mat2) Mul(other Mat2) Mat2 {
	var result Mat2
	mulSquare(result.flat()[:], m.flat()[:], other.flat()[:], 2)
	return result
}

func (m Mat2) Transpose() Mat2 {
	var result Mat2
	transposeSquare(result.flat()[:], m.flat()[:], 2)
	return result
}

func (m Mat2) Determinant() float32 {
	return determinant(m.flat()[:], 2)
}

// Inverse returns the inverse of the matrix. A singular matrix
// yields Inf and NaN values.
func (m Mat2) Inverse() Mat2 {
	f := 1 / m.Determinant()
	return Mat2{
		C00: f * m.C11, C10: f * -m.C10,
		C01: f * -m.C01, C11: f * m.C00,
	}
}

func (m Mat2) String() string {
	return fmt.Sprintf("mat2[[%v %v] [%v %v]]", m.C00, m.C10, m.C01, m.C11)
}

func (m Mat2) LogValue() slog.Value {
	return slog.StringValue(m.String())
}
