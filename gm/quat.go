package gm

import (
	"fmt"
	"log/slog"

	"github.com/chewxy/math32"
)

// Quat is a quaternion describing a rotation.
//
// A rotation quaternion has a length of one. The constructors in this package
// return normalized values, but Mul does not renormalize, so a long chain of
// multiplications may slowly drift away from unit length.
type Quat struct {
	X, Y, Z, W float32
}

// IdentityQuat returns the rotation that does not rotate at all.
func IdentityQuat() Quat {
	return Quat{X: 0, Y: 0, Z: 0, W: 1}
}

// QuatFromAxisAngle returns a rotation of angle around axis.
func QuatFromAxisAngle(axis Vec3, angle Rad) Quat {
	half := angle / 2
	sin := half.Sin()

	q := Quat{
		X: axis.X * sin,
		Y: axis.Y * sin,
		Z: axis.Z * sin,
		W: half.Cos(),
	}

	q.Normalize()
	return q
}

// QuatFromEuler returns a rotation of x around the x axis (roll),
// y around the y axis (pitch) and z around the z axis (yaw).
func QuatFromEuler(x, y, z Rad) Quat {
	halfX := x * 0.5
	halfY := y * 0.5
	halfZ := z * 0.5

	cy, sy := halfZ.Cos(), halfZ.Sin()
	cr, sr := halfX.Cos(), halfX.Sin()
	cp, sp := halfY.Cos(), halfY.Sin()

	q := Quat{
		X: cy*sr*cp - sy*cr*sp,
		Y: cy*cr*sp + sy*sr*cp,
		Z: sy*cr*cp - cy*sr*sp,
		W: cy*cr*cp + sy*sr*sp,
	}

	q.Normalize()
	return q
}

// QuatFromLookAt returns a rotation that points in the forward direction
// with the given up direction. See LookAtMat3.
func QuatFromLookAt(forward, up Vec3) Quat {
	q := quatFromRotation(LookAtMat3(forward, up))
	q.Normalize()
	return q
}

// quatFromRotation extracts the rotation of an orthonormal matrix. The branch
// is picked by the trace first, then by the largest diagonal value, to keep
// the divisor away from zero.
func quatFromRotation(m Mat3) Quat {
	trace := m.C00 + m.C11 + m.C22

	switch {
	case trace >= 0:
		s := math32.Sqrt(trace+1) * 2
		return Quat{
			X: (m.C21 - m.C12) / s,
			Y: (m.C02 - m.C20) / s,
			Z: (m.C10 - m.C01) / s,
			W: 0.25 * s,
		}

	case m.C00 > m.C11 && m.C00 > m.C22:
		s := math32.Sqrt(1+m.C00-m.C11-m.C22) * 2
		return Quat{
			X: 0.25 * s,
			Y: (m.C01 + m.C10) / s,
			Z: (m.C02 + m.C20) / s,
			W: (m.C21 - m.C12) / s,
		}

	case m.C11 > m.C22:
		s := math32.Sqrt(1+m.C11-m.C00-m.C22) * 2
		return Quat{
			X: (m.C01 + m.C10) / s,
			Y: 0.25 * s,
			Z: (m.C12 + m.C21) / s,
			W: (m.C02 - m.C20) / s,
		}

	default:
		s := math32.Sqrt(1+m.C22-m.C00-m.C11) * 2
		return Quat{
			X: (m.C02 + m.C20) / s,
			Y: (m.C12 + m.C21) / s,
			Z: 0.25 * s,
			W: (m.C10 - m.C01) / s,
		}
	}
}

// Mul returns the hamilton product of q and other.
func (q Quat) Mul(other Quat) Quat {
	return Quat{
		X: q.W*other.X + q.X*other.W + q.Y*other.Z - q.Z*other.Y,
		Y: q.W*other.Y + q.Y*other.W + q.Z*other.X - q.X*other.Z,
		Z: q.W*other.Z + q.Z*other.W + q.X*other.Y - q.Y*other.X,
		W: q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
	}
}

// MulMat4 multiplies the rotation matrix of q with m.
func (q Quat) MulMat4(m Mat4) Mat4 {
	return q.Mat4().Mul(m)
}

// Mat4 returns the rotation matrix of q.
func (q Quat) Mat4() Mat4 {
	return Mat4FromQuat(q)
}

// Conjugate returns the quaternion with its vector part negated. For a unit
// quaternion this is the inverse rotation.
func (q Quat) Conjugate() Quat {
	return Quat{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

func (q Quat) Dot(other Quat) float32 {
	return dotFields(q, other)
}

func (q Quat) Length() float32 {
	return math32.Sqrt(q.Dot(q))
}

// Normalize scales the quaternion to a length of one.
func (q *Quat) Normalize() {
	*q = divFields(*q, q.Length())
}

func (q Quat) Normalized() Quat {
	q.Normalize()
	return q
}

// Nlerp interpolates linearly between q and other and normalizes the result.
// The shorter path is taken if both quaternions point in different hemispheres.
func (q Quat) Nlerp(f float32, other Quat) Quat {
	if q.Dot(other) < 0 {
		other = negFields(other)
	}

	return Lerp(f, q, other).Normalized()
}

func (q Quat) String() string {
	return fmt.Sprintf("quat(x=%v, y=%v, z=%v, w=%v)", q.X, q.Y, q.Z, q.W)
}

func (q Quat) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64("x", float64(q.X)),
		slog.Float64("y", float64(q.Y)),
		slog.Float64("z", float64(q.Z)),
		slog.Float64("w", float64(q.W)),
	)
}
