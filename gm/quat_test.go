package gm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQuatFromAxisAngle(t *testing.T) {
	q := QuatFromAxisAngle(Vec3UnitY, Deg(90).Rad())
	requireNear(t, Quat{X: 0, Y: 0.7071067811865474, Z: 0, W: 0.7071067811865474}, q, 1e-6)

	requireApprox(t, IdentityQuat(), QuatFromAxisAngle(Vec3UnitX, 0))
}

func TestQuatFromLookAt(t *testing.T) {
	cases := []struct {
		name     string
		forward  Vec3
		up       Vec3
		expected Quat
	}{
		{
			name:     "default orientation",
			forward:  Vec3UnitZ,
			up:       Vec3UnitY,
			expected: Quat{X: 0, Y: 0, Z: 0, W: 1},
		},
		{
			name:     "negative up, right and forward",
			forward:  Vec3UnitX.Neg(),
			up:       Vec3UnitZ.Neg(),
			expected: Quat{X: -0.5, Y: -0.5, Z: 0.5, W: 0.5},
		},
		{
			name:     "pitched",
			forward:  Vec3{X: 0, Y: 1, Z: 1},
			up:       Vec3{X: 0, Y: 1, Z: -1},
			expected: Quat{X: -0.3826834290674337, Y: 0, Z: 0, W: 0.9238795338772207},
		},
		{
			name:     "pitched and rolled",
			forward:  Vec3{X: -1, Y: 0, Z: 1},
			up:       Vec3{X: -1, Y: 0, Z: -1},
			expected: Quat{X: -0.2705980477413035, Y: -0.2705980477413035, Z: 0.6532814834040493, W: 0.6532814834040493},
		},
		{
			name:     "rolled",
			forward:  Vec3{X: 0, Y: 0, Z: 1},
			up:       Vec3{X: -1, Y: 1, Z: 0},
			expected: Quat{X: 0, Y: 0, Z: 0.3826834290674337, W: 0.9238795338772207},
		},
		{
			name:     "largest right",
			forward:  Vec3UnitZ.Neg(),
			up:       Vec3UnitY.Neg(),
			expected: Quat{X: 1, Y: 0, Z: 0, W: 0},
		},
		{
			name:     "largest up",
			forward:  Vec3UnitZ.Neg(),
			up:       Vec3UnitY,
			expected: Quat{X: 0, Y: 1, Z: 0, W: 0},
		},
		{
			name:     "largest forward",
			forward:  Vec3UnitZ,
			up:       Vec3UnitY.Neg(),
			expected: Quat{X: 0, Y: 0, Z: 1, W: 0},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := QuatFromLookAt(tc.forward, tc.up)
			requireNear(t, tc.expected, q, 1e-6)
		})
	}
}

func TestQuatFromLookAt_Basis(t *testing.T) {
	forward := Vec3{X: 1, Y: 0, Z: 1}
	q := QuatFromLookAt(forward, Vec3UnitY)

	// the rotation matrix holds the look at basis in its columns
	requireNear(t, LookAtMat3(forward, Vec3UnitY).Transpose(), q.Mat4().Mat3(), 1e-6)
	requireNear(t, forward.Normalized(), Vec3UnitZ.MulQuat(q.Conjugate()), 1e-6)
}

func TestQuatFromEuler(t *testing.T) {
	requireNear(t, Quat{X: 0.7071068, Y: 0, Z: 0, W: 0.7071068}, QuatFromEuler(Deg(90).Rad(), 0, 0), 1e-6)
	requireNear(t, Quat{X: 0, Y: 0.7071068, Z: 0, W: 0.7071068}, QuatFromEuler(0, Deg(90).Rad(), 0), 1e-6)
	requireNear(t, Quat{X: 0, Y: 0, Z: 0.7071068, W: 0.7071068}, QuatFromEuler(0, 0, Deg(90).Rad()), 1e-6)

	// a single axis matches the axis angle constructor
	requireNear(t, QuatFromAxisAngle(Vec3UnitY, 0.4), QuatFromEuler(0, 0.4, 0), 1e-6)
}

func TestQuat_Mul(t *testing.T) {
	a := Quat{X: 1, Y: 2, Z: 3, W: 4}
	b := Quat{X: 2, Y: 4, Z: 6, W: 8}
	requireApprox(t, Quat{X: 16, Y: 32, Z: 48, W: 4}, a.Mul(b))

	// no normalization happens
	require.Greater(t, a.Mul(b).Length(), float32(1))

	q := QuatFromEuler(0.1, 0.2, 0.3)
	requireApprox(t, q, q.Mul(IdentityQuat()))
	requireApprox(t, q, IdentityQuat().Mul(q))
}

func TestQuat_MulComposesRotations(t *testing.T) {
	for range 100 {
		a := RandomQuat()
		b := RandomQuat()
		v := RandomVec3()

		// rotating by a and then by b is the same as rotating by a*b
		requireNear(t, v.MulQuat(a).MulQuat(b), v.MulQuat(a.Mul(b)), 1e-5)
	}
}

func TestQuat_Conjugate(t *testing.T) {
	for range 100 {
		q := RandomQuat()
		requireNear(t, IdentityQuat(), q.Mul(q.Conjugate()), 1e-6)

		v := RandomVec3()
		requireNear(t, v, v.MulQuat(q).MulQuat(q.Conjugate()), 1e-5)
	}
}

func TestQuat_Normalize(t *testing.T) {
	q := Quat{X: 1, Y: 2, Z: 3, W: 4}
	requireApproxScalar(t, 1, q.Normalized().Length())

	q.Normalize()
	requireApproxScalar(t, 1, q.Length())
	requireApprox(t, q, q.Normalized())
}

func TestQuat_Nlerp(t *testing.T) {
	a := QuatFromAxisAngle(Vec3UnitY, 0)
	b := QuatFromAxisAngle(Vec3UnitY, Deg(90).Rad())

	requireNear(t, a, a.Nlerp(0, b), 1e-6)
	requireNear(t, b, a.Nlerp(1, b), 1e-6)
	requireNear(t, QuatFromAxisAngle(Vec3UnitY, Deg(45).Rad()), a.Nlerp(0.5, b), 1e-6)

	// the opposite hemisphere describes the same rotation
	negated := Quat{X: -b.X, Y: -b.Y, Z: -b.Z, W: -b.W}
	requireNear(t, b, a.Nlerp(1, negated), 1e-6)
}

func TestQuat_String(t *testing.T) {
	require.Equal(t, "quat(x=0, y=0, z=0, w=1)", IdentityQuat().String())
}
