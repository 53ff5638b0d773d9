package physics

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/gm3d/gm"
)

// DrawSpace draws the shapes and constraints of space onto image. Positions
// in the space are transformed into screen space using worldToScreen.
func DrawSpace(space *cp.Space, image *ebiten.Image, worldToScreen gm.Mat3) {
	cp.DrawSpace(space, DebugDrawer{Image: image, Transform: worldToScreen})
}

// DebugDrawer implements cp.Drawer on top of an ebiten image.
type DebugDrawer struct {
	Image     *ebiten.Image
	Transform gm.Mat3
}

var _ cp.Drawer = DebugDrawer{}

func (d DebugDrawer) point(pos cp.Vector) gm.Vec2 {
	return Vec2Of(pos).MulMat3(d.Transform)
}

// length transforms a distance. Non uniform scaling is approximated
// by scaling along the x axis.
func (d DebugDrawer) length(value float64) float32 {
	return gm.Vec2{X: float32(value)}.Extend(0).MulMat3(d.Transform).XY().Length()
}

func (d DebugDrawer) draw(p vector.Path, outline cp.FColor, fill cp.FColor, width float32) {
	dpo := &vector.DrawPathOptions{}
	dpo.ColorScale.Scale(fill.R*fill.A, fill.G*fill.A, fill.B*fill.A, fill.A)
	vector.FillPath(d.Image, &p, &vector.FillOptions{}, dpo)

	*dpo = vector.DrawPathOptions{}
	dpo.ColorScale.Scale(outline.R*outline.A, outline.G*outline.A, outline.B*outline.A, outline.A)
	vector.StrokePath(d.Image, &p, &vector.StrokeOptions{Width: width}, dpo)
}

func (d DebugDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	center := d.point(pos)
	r := d.length(radius)

	// marks the rotation of the circle
	edge := d.point(pos.Add(cp.ForAngle(angle).Mult(radius)))

	var p vector.Path
	p.Arc(center.X, center.Y, r, 0, 2*3.1415927, vector.Clockwise)
	p.MoveTo(center.X, center.Y)
	p.LineTo(edge.X, edge.Y)

	d.draw(p, outline, fill, 1)
}

func (d DebugDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	ta := d.point(a)
	tb := d.point(b)

	var p vector.Path
	p.MoveTo(ta.X, ta.Y)
	p.LineTo(tb.X, tb.Y)
	d.draw(p, fill, cp.FColor{}, 1)
}

func (d DebugDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	ta := d.point(a)
	tb := d.point(b)

	var p vector.Path
	p.MoveTo(ta.X, ta.Y)
	p.LineTo(tb.X, tb.Y)
	d.draw(p, fill, cp.FColor{}, max(1, 2*d.length(radius)))
}

func (d DebugDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if count == 0 {
		return
	}

	var p vector.Path

	first := d.point(verts[0])
	p.MoveTo(first.X, first.Y)

	for _, vert := range verts[1:count] {
		pt := d.point(vert)
		p.LineTo(pt.X, pt.Y)
	}

	p.Close()

	d.draw(p, outline, fill, max(1, 2*d.length(radius)))
}

func (d DebugDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	d.DrawCircle(pos, 0, size/2, fill, fill, data)
}

func (d DebugDrawer) Flags() uint {
	return 0
}

func (d DebugDrawer) OutlineColor() cp.FColor {
	return cp.FColor{R: 1, G: 1, B: 1, A: 1}
}

func (d DebugDrawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	return cp.FColor{G: 1, A: 1}
}

func (d DebugDrawer) ConstraintColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.75, A: 1}
}

func (d DebugDrawer) CollisionPointColor() cp.FColor {
	return cp.FColor{R: 1, A: 1}
}

func (d DebugDrawer) Data() interface{} {
	return nil
}
