package gm

import (
	"math"
	"math/rand/v2"
)

// RandomIn returns a random value uniformly sampled from the given range, excluding max.
func RandomIn[S ~float32](min, max S) S {
	return S(rand.Float32()*float32(max-min)) + min
}

// RandomAngle returns a random angle uniformly sampled from the full circle
func RandomAngle() Rad {
	return RandomIn[Rad](0, 2*math.Pi)
}

// RandomVec2 returns a vector uniformly sampled from within the unit circle.
func RandomVec2() Vec2 {
	for {
		v := Vec2{
			X: RandomIn[float32](-1, 1),
			Y: RandomIn[float32](-1, 1),
		}

		if v.LengthSqr() <= 1 {
			return v
		}
	}
}

// RandomVec3 returns a vector uniformly sampled from within the unit sphere.
func RandomVec3() Vec3 {
	for {
		v := Vec3{
			X: RandomIn[float32](-1, 1),
			Y: RandomIn[float32](-1, 1),
			Z: RandomIn[float32](-1, 1),
		}

		if v.LengthSqr() <= 1 {
			return v
		}
	}
}

// RandomQuat returns a uniformly distributed random rotation.
func RandomQuat() Quat {
	for {
		q := Quat{
			X: RandomIn[float32](-1, 1),
			Y: RandomIn[float32](-1, 1),
			Z: RandomIn[float32](-1, 1),
			W: RandomIn[float32](-1, 1),
		}

		// reject samples outside the unit ball and those too short to normalize
		lenSqr := q.Dot(q)
		if lenSqr <= 1 && lenSqr > 1e-6 {
			return q.Normalized()
		}
	}
}
