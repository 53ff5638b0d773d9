// Package approx compares float32 values for approximate equality.
//
// Three strategies are available: an absolute difference, a difference relative
// to the larger of both values, and a distance in units in the last place (ULPs).
// Tolerance bundles the thresholds, Default holds the ones used by the gm package.
package approx

import (
	"math"

	"github.com/chewxy/math32"
)

// Epsilon is the difference between 1 and the next representable float32.
const Epsilon float32 = 0x1p-23

// MaxUlps is the default number of representable values two floats may be apart.
const MaxUlps uint32 = 4

// Tolerance holds the thresholds for an approximate comparison.
type Tolerance struct {
	// Epsilon is the absolute difference below which two values are always equal.
	Epsilon float32

	// MaxRelative is the allowed difference relative to the larger magnitude.
	MaxRelative float32

	// MaxUlps is the allowed distance in representable float32 values.
	MaxUlps uint32
}

var Default = Tolerance{
	Epsilon:     Epsilon,
	MaxRelative: Epsilon,
	MaxUlps:     MaxUlps,
}

// AbsDiffEq reports whether a and b differ by at most t.Epsilon.
func (t Tolerance) AbsDiffEq(a, b float32) bool {
	return AbsDiffEq(a, b, t.Epsilon)
}

// RelativeEq reports whether a and b are equal relative to their magnitude.
func (t Tolerance) RelativeEq(a, b float32) bool {
	return RelativeEq(a, b, t.Epsilon, t.MaxRelative)
}

// UlpsEq reports whether a and b are at most t.MaxUlps representable values apart.
func (t Tolerance) UlpsEq(a, b float32) bool {
	return UlpsEq(a, b, t.Epsilon, t.MaxUlps)
}

// AbsDiffEq reports whether the absolute difference of a and b is at most epsilon.
// NaN is never equal to anything.
func AbsDiffEq(a, b, epsilon float32) bool {
	return math32.Abs(a-b) <= epsilon
}

// RelativeEq reports whether a and b are equal within epsilon, or within
// maxRelative times the larger of their magnitudes.
func RelativeEq(a, b, epsilon, maxRelative float32) bool {
	if a == b {
		// handles infinities of equal sign
		return true
	}

	if math32.IsInf(a, 0) || math32.IsInf(b, 0) {
		return false
	}

	diff := math32.Abs(a - b)
	if diff <= epsilon {
		return true
	}

	largest := max(math32.Abs(a), math32.Abs(b))
	return diff <= largest*maxRelative
}

// UlpsEq reports whether a and b are equal within epsilon, or at most maxUlps
// representable float32 values apart. Values of different sign are only
// equal within epsilon.
func UlpsEq(a, b, epsilon float32, maxUlps uint32) bool {
	if AbsDiffEq(a, b, epsilon) {
		return true
	}

	if math32.IsNaN(a) || math32.IsNaN(b) {
		return false
	}

	if math32.Signbit(a) != math32.Signbit(b) {
		return false
	}

	return Ulps(a, b) <= maxUlps
}

// Ulps returns the number of representable float32 values between a and b.
// Both values must have the same sign.
func Ulps(a, b float32) uint32 {
	ia := int64(math.Float32bits(a))
	ib := int64(math.Float32bits(b))

	diff := ia - ib
	if diff < 0 {
		diff = -diff
	}

	return uint32(diff)
}
