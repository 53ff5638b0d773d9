package gm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRect(t *testing.T) {
	r := RectWithPoints(Vec2{X: 3, Y: 4}, Vec2{X: 1, Y: 2})
	require.Equal(t, Rect{Min: Vec2{X: 1, Y: 2}, Max: Vec2{X: 3, Y: 4}}, r)

	require.Equal(t, Vec2{X: 2, Y: 3}, r.Center())
	require.Equal(t, Vec2{X: 2, Y: 2}, r.Size())

	require.Equal(t, Vec2{X: 1, Y: 2}, r.BottomLeft())
	require.Equal(t, Vec2{X: 3, Y: 2}, r.BottomRight())
	require.Equal(t, Vec2{X: 1, Y: 4}, r.TopLeft())
	require.Equal(t, Vec2{X: 3, Y: 4}, r.TopRight())

	require.Equal(t, r, RectWithOriginAndSize(Vec2{X: 1, Y: 2}, Vec2{X: 2, Y: 2}))
	require.Equal(t, r, RectWithCenterAndSize(Vec2{X: 2, Y: 3}, Vec2{X: 2, Y: 2}))
	require.Equal(t, r.Translate(Vec2{X: -1, Y: -2}), RectWithSize(Vec2{X: 2, Y: 2}))

	require.True(t, r.Contains(Vec2{X: 2, Y: 3}))
	require.True(t, r.Contains(r.Max))
	require.False(t, r.Contains(Vec2{X: 0, Y: 3}))

	require.Equal(t, "Rect(min=vec2(x=1, y=2), max=vec2(x=3, y=4))", r.String())
}

func TestRect_Orthographic(t *testing.T) {
	r := RectWithCenterAndSize(Vec2Zero, Vec2{X: 10, Y: 20})
	m := r.Orthographic(0.1, 1000)

	require.Equal(t, OrthographicMat4(10, -10, -5, 5, 0.1, 1000), m)

	// corners of the rectangle end up on the edges of clip space
	requireNear(t, Vec3{X: 1, Y: 1, Z: 0}, Vec3{X: 5, Y: 10, Z: 0.1}.MulMat4(m), 1e-6)
	requireNear(t, Vec3{X: -1, Y: -1, Z: 1}, Vec3{X: -5, Y: -10, Z: 1000}.MulMat4(m), 1e-6)
}
