package physics

import (
	"testing"

	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/gm3d/gm"
	"github.com/stretchr/testify/require"
)

func TestVectorOf(t *testing.T) {
	v := gm.Vec2{X: 1.5, Y: -2}
	require.Equal(t, cp.Vector{X: 1.5, Y: -2}, VectorOf(v))
	require.Equal(t, v, Vec2Of(VectorOf(v)))
}

func TestPose(t *testing.T) {
	body := cp.NewKinematicBody()

	pose := Pose{Position: gm.Vec2{X: 1, Y: 2}, Angle: gm.Deg(90).Rad()}
	pose.ApplyTo(body)

	actual := PoseOf(body)
	require.InDelta(t, 1, actual.Position.X, 1e-6)
	require.InDelta(t, 2, actual.Position.Y, 1e-6)
	require.InDelta(t, float32(pose.Angle), float32(actual.Angle), 1e-6)

	// rotates counter-clockwise, then moves to the position
	p := gm.Vec2{X: 1}.MulMat3(pose.Mat3())
	require.InDelta(t, 1, p.X, 1e-5)
	require.InDelta(t, 3, p.Y, 1e-5)
}

func TestBodyMat3(t *testing.T) {
	body := cp.NewKinematicBody()
	Pose{Position: gm.Vec2{X: -4, Y: 7}, Angle: 0.3}.ApplyTo(body)

	m := BodyMat3(body)

	for _, local := range []gm.Vec2{{}, {X: 1}, {Y: 1}, {X: 3, Y: -2}} {
		expected := Vec2Of(body.LocalToWorld(VectorOf(local)))
		actual := local.MulMat3(m)

		require.InDelta(t, expected.X, actual.X, 1e-5)
		require.InDelta(t, expected.Y, actual.Y, 1e-5)
	}
}

func TestPose_String(t *testing.T) {
	pose := Pose{Position: gm.Vec2{X: 1, Y: 2}, Angle: 0.5}
	require.Equal(t, "pose(position=vec2(x=1, y=2), angle=0.5rad)", pose.String())
}

func TestShapes(t *testing.T) {
	cases := []struct {
		name     string
		shape    ToShape
		expected cp.BB
	}{
		{
			name:     "circle",
			shape:    CircleShape{Center: gm.Vec2{X: 1}, Radius: 2},
			expected: cp.BB{L: -1, B: -2, R: 3, T: 2},
		},
		{
			name:     "segment",
			shape:    SegmentShape{A: gm.Vec2{X: -1}, B: gm.Vec2{X: 2, Y: 1}, Radius: 0.5},
			expected: cp.BB{L: -1.5, B: -0.5, R: 2.5, T: 1.5},
		},
		{
			name:     "polygon",
			shape:    PolygonShape{Points: []gm.Vec2{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 2, Y: 3}}},
			expected: cp.BB{L: 0, B: 0, R: 4, T: 3},
		},
		{
			name:     "rect",
			shape:    RectShape{Rect: gm.RectWithPoints(gm.Vec2{X: -1, Y: -2}, gm.Vec2{X: 1, Y: 2})},
			expected: cp.BB{L: -1, B: -2, R: 1, T: 2},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body := cp.NewKinematicBody()
			shape := tc.shape.MakeShape(body)

			bb := shape.CacheBB()
			require.InDelta(t, tc.expected.L, bb.L, 1e-9)
			require.InDelta(t, tc.expected.B, bb.B, 1e-9)
			require.InDelta(t, tc.expected.R, bb.R, 1e-9)
			require.InDelta(t, tc.expected.T, bb.T, 1e-9)
		})
	}
}

func TestPolygonShape_TooFewPoints(t *testing.T) {
	require.PanicsWithValue(t, "polygon needs at least three points", func() {
		PolygonShape{Points: []gm.Vec2{{}, {X: 1}}}.MakeShape(cp.NewKinematicBody())
	})
}

func TestDebugDrawer_Transform(t *testing.T) {
	d := DebugDrawer{
		Transform: gm.ScaleMat3(gm.Vec2{X: 2, Y: -2}).Mul(gm.TranslationMat3(gm.Vec2{X: 100, Y: 50})),
	}

	require.Equal(t, gm.Vec2{X: 102, Y: 46}, d.point(cp.Vector{X: 1, Y: 2}))
	require.Equal(t, float32(6), d.length(3))
}

func TestDebugDrawer_Colors(t *testing.T) {
	var d cp.Drawer = DebugDrawer{}

	require.Equal(t, uint(0), d.Flags())
	require.Nil(t, d.Data())
	require.Equal(t, float32(1), d.OutlineColor().A)
	require.Equal(t, float32(1), d.ShapeColor(nil, nil).A)
	require.Equal(t, float32(1), d.ConstraintColor().A)
	require.Equal(t, float32(1), d.CollisionPointColor().A)
}
