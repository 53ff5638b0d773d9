package gm

import (
	"unsafe"

	"github.com/oliverbestmann/gm3d/approx"
)

// Aggregate is the set of types that consist of nothing but float32 fields.
type Aggregate interface {
	Rad | Deg | Vec2 | Vec3 | Vec4 | Mat1x3 | Mat2 | Mat3 | Mat4 | Quat
}

// fieldsOf views the fields of value as a slice.
func fieldsOf[T Aggregate](value *T) []float32 {
	count := unsafe.Sizeof(*value) / unsafe.Sizeof(float32(0))
	return unsafe.Slice((*float32)(unsafe.Pointer(value)), count)
}

func addFields[T Aggregate](lhs, rhs T) T {
	l, r := fieldsOf(&lhs), fieldsOf(&rhs)
	for idx := range l {
		l[idx] += r[idx]
	}

	return lhs
}

func subFields[T Aggregate](lhs, rhs T) T {
	l, r := fieldsOf(&lhs), fieldsOf(&rhs)
	for idx := range l {
		l[idx] -= r[idx]
	}

	return lhs
}

func scaleFields[T Aggregate](value T, scalar float32) T {
	fields := fieldsOf(&value)
	for idx := range fields {
		fields[idx] *= scalar
	}

	return value
}

func divFields[T Aggregate](value T, scalar float32) T {
	fields := fieldsOf(&value)
	for idx := range fields {
		fields[idx] /= scalar
	}

	return value
}

func negFields[T Aggregate](value T) T {
	fields := fieldsOf(&value)
	for idx := range fields {
		fields[idx] = -fields[idx]
	}

	return value
}

func dotFields[T Aggregate](lhs, rhs T) float32 {
	l, r := fieldsOf(&lhs), fieldsOf(&rhs)

	var sum float32
	for idx := range l {
		sum += l[idx] * r[idx]
	}

	return sum
}

func allFields[T Aggregate](lhs, rhs T, eq func(a, b float32) bool) bool {
	l, r := fieldsOf(&lhs), fieldsOf(&rhs)

	result := true
	for idx := range l {
		result = eq(l[idx], r[idx]) && result
	}

	return result
}

// Lerp does a linear interpolation between lhs and rhs using the factor f.
// A value for f of 0 returns lhs, a value of 1 returns rhs.
func Lerp[T Aggregate](f float32, lhs, rhs T) T {
	return addFields(lhs, scaleFields(subFields(rhs, lhs), f))
}

// AbsDiffEq reports whether every field of lhs differs from the
// matching field of rhs by at most epsilon.
func AbsDiffEq[T Aggregate](lhs, rhs T, epsilon float32) bool {
	return allFields(lhs, rhs, func(a, b float32) bool {
		return approx.AbsDiffEq(a, b, epsilon)
	})
}

// RelativeEq reports whether every field of lhs equals the matching field
// of rhs, relative to their magnitude.
func RelativeEq[T Aggregate](lhs, rhs T, epsilon, maxRelative float32) bool {
	return allFields(lhs, rhs, func(a, b float32) bool {
		return approx.RelativeEq(a, b, epsilon, maxRelative)
	})
}

// UlpsEq reports whether every field of lhs is at most maxUlps
// representable values away from the matching field of rhs.
func UlpsEq[T Aggregate](lhs, rhs T, epsilon float32, maxUlps uint32) bool {
	return allFields(lhs, rhs, func(a, b float32) bool {
		return approx.UlpsEq(a, b, epsilon, maxUlps)
	})
}

// ApproxEqual compares lhs and rhs field by field using UlpsEq with the
// thresholds of approx.Default.
func ApproxEqual[T Aggregate](lhs, rhs T) bool {
	return ApproxEqualWithin(lhs, rhs, approx.Default)
}

// ApproxEqualWithin compares lhs and rhs field by field using UlpsEq
// with the given tolerance.
func ApproxEqualWithin[T Aggregate](lhs, rhs T, tolerance approx.Tolerance) bool {
	return allFields(lhs, rhs, tolerance.UlpsEq)
}
