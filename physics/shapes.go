package physics

import (
	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/gm3d/gm"
)

// ToShape creates a chipmunk collision shape attached to a body.
type ToShape interface {
	MakeShape(body *cp.Body) *cp.Shape
}

type CircleShape struct {
	Center gm.Vec2
	Radius float32
}

func (s CircleShape) MakeShape(body *cp.Body) *cp.Shape {
	return cp.NewCircle(body, float64(s.Radius), VectorOf(s.Center))
}

type SegmentShape struct {
	A, B   gm.Vec2
	Radius float32
}

func (s SegmentShape) MakeShape(body *cp.Body) *cp.Shape {
	return cp.NewSegment(body, VectorOf(s.A), VectorOf(s.B), float64(s.Radius))
}

// PolygonShape is a convex polygon. Chipmunk computes the convex hull of the
// points, the order of the points does not matter.
type PolygonShape struct {
	Points []gm.Vec2
	Radius float32
}

func (s PolygonShape) MakeShape(body *cp.Body) *cp.Shape {
	if len(s.Points) < 3 {
		panic("polygon needs at least three points")
	}

	verts := vectorsOf(s.Points)
	return cp.NewPolyShape(body, len(verts), verts, cp.NewTransformIdentity(), float64(s.Radius))
}

// RectShape is an axis aligned rectangle in the local space of the body.
type RectShape struct {
	Rect   gm.Rect
	Radius float32
}

func (s RectShape) MakeShape(body *cp.Body) *cp.Shape {
	r := s.Rect
	return PolygonShape{
		Points: []gm.Vec2{r.BottomLeft(), r.BottomRight(), r.TopRight(), r.TopLeft()},
		Radius: s.Radius,
	}.MakeShape(body)
}
