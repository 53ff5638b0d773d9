package gm

import (
	"fmt"

	"github.com/oliverbestmann/gm3d/internal/assert"
)

// Affine represents an affine transformation in 3d. It consists of a Matrix that describes
// rotation and scale, as well as a Translation vector. Points are transformed as
// row vectors, see Transform.
//
// Use IdentityAffine to build a new identity transformation.
type Affine struct {
	Matrix      Mat3
	Translation Vec3
}

// IdentityAffine returns the identity transformation.
func IdentityAffine() Affine {
	return Affine{
		Matrix: IdentityMat3(),
	}
}

// AffineOf builds a transformation that first scales a point, then rotates it
// and finally moves it by translation.
func AffineOf(scale Vec3, rotation Quat, translation Vec3) Affine {
	return IdentityAffine().
		Translate(translation).
		Rotate(rotation).
		Scale(scale)
}

// Rotate applies a rotation in the local space of the transformation.
func (a Affine) Rotate(rotation Quat) Affine {
	rot := Affine{Matrix: rotation.Mat4().Mat3()}
	return a.Mul(rot)
}

// Scale applies a scale in the local space of the transformation.
func (a Affine) Scale(scale Vec3) Affine {
	sc := Affine{Matrix: ScaleMat4(scale).Mat3()}
	return a.Mul(sc)
}

// Translate applies a translation in the local space of the transformation.
func (a Affine) Translate(translate Vec3) Affine {
	tr := Affine{Matrix: IdentityMat3(), Translation: translate}
	return a.Mul(tr)
}

// Transform applies the affine transform to the given point and returns
// the transformed point.
func (a Affine) Transform(point Vec3) Vec3 {
	return point.MulMat3(a.Matrix).Add(a.Translation)
}

// TransformVec applies the transform to a vector. This is different from transforming
// a point in that it will not apply the translation component of the Affine transform.
// The vector will only be rotated and scaled.
func (a Affine) TransformVec(vec Vec3) Vec3 {
	return vec.MulMat3(a.Matrix)
}

// Mul multiplies the affine transformation with another transformation.
// other is applied in the local space of a: transforming a point with the
// result is the same as transforming it first by other and then by a.
func (a Affine) Mul(other Affine) Affine {
	return Affine{
		Matrix:      other.Matrix.Mul(a.Matrix),
		Translation: other.Translation.MulMat3(a.Matrix).Add(a.Translation),
	}
}

// Mat4 returns the transformation as a matrix, with the translation in the
// fourth row.
func (a Affine) Mat4() Mat4 {
	m := a.Matrix.Mat4()
	m.C03 = a.Translation.X
	m.C13 = a.Translation.Y
	m.C23 = a.Translation.Z
	return m
}

// Inverse returns the inverse of the Affine transformation.
// This method will panic if an inverse can not be calculated.
func (a Affine) Inverse() Affine {
	assert.NonZero(a.Matrix.Determinant(), "determinant")
	return a.inverse()
}

// TryInverse returns the inverse of the Affine transformation if possible.
func (a Affine) TryInverse() (inverse Affine, ok bool) {
	if a.Matrix.Determinant() == 0 {
		return Affine{}, false
	}

	return a.inverse(), true
}

func (a Affine) inverse() Affine {
	mat := a.Matrix.Inverse()
	translation := a.Translation.MulMat3(mat).Neg()
	return Affine{
		Matrix:      mat,
		Translation: translation,
	}
}

func (a Affine) String() string {
	return fmt.Sprintf("affine(matrix=%s, translation=%s)", a.Matrix, a.Translation)
}
