package gm

import (
	"fmt"
	"math"

	"github.com/chewxy/math32"
)

// Rad is an angle in radians.
type Rad float32

// Deg is an angle in degrees.
type Deg float32

// Deg converts the angle to degrees.
func (r Rad) Deg() Deg {
	return Deg(float32(r) * 180 / math.Pi)
}

// Rad converts the angle to radians.
func (d Deg) Rad() Rad {
	return Rad(float32(d) * math.Pi / 180)
}

// Radians returns the value of the angle in radians as float32.
func (r Rad) Radians() float32 {
	return float32(r)
}

// Degrees returns the value of the angle in degrees as float32.
func (d Deg) Degrees() float32 {
	return float32(d)
}

// Normalized returns the angle normalized to the range [-π, π)
func (r Rad) Normalized() Rad {
	angle := math32.Mod(float32(r)+math.Pi, 2*math.Pi)
	if angle < 0 {
		angle += 2 * math.Pi
	}

	return Rad(angle - math.Pi)
}

// DifferenceTo returns the smallest difference between to angles
// normalized to the range [-π, π)
func (r Rad) DifferenceTo(other Rad) Rad {
	return (r - other).Normalized()
}

// Cos returns the cosine of the angle.
func (r Rad) Cos() float32 {
	return math32.Cos(float32(r))
}

// Sin returns the sine of the angle.
func (r Rad) Sin() float32 {
	return math32.Sin(float32(r))
}

// Tan returns the tangent of the angle.
func (r Rad) Tan() float32 {
	return math32.Tan(float32(r))
}

func (r Rad) String() string {
	return fmt.Sprintf("%vrad", float32(r))
}

func (d Deg) String() string {
	return fmt.Sprintf("%v°", float32(d))
}
