package gm

import (
	"fmt"
)

// Rect is an axis aligned rectangle. Min is the bottom left corner,
// Max the top right corner, with Y pointing up.
type Rect struct {
	Min, Max Vec2
}

func RectWithPoints(a, b Vec2) Rect {
	return Rect{
		Min: Vec2{
			X: min(a.X, b.X),
			Y: min(a.Y, b.Y),
		},
		Max: Vec2{
			X: max(a.X, b.X),
			Y: max(a.Y, b.Y),
		},
	}
}

func RectWithSize(size Vec2) Rect {
	return Rect{
		Min: Vec2Zero,
		Max: size,
	}
}

func RectWithOriginAndSize(origin, size Vec2) Rect {
	return Rect{
		Min: origin,
		Max: origin.Add(size),
	}
}

func RectWithCenterAndSize(center, size Vec2) Rect {
	half := size.Mul(0.5)
	return Rect{
		Min: center.Sub(half),
		Max: center.Add(half),
	}
}

func (r Rect) Center() Vec2 {
	return r.Min.Add(r.Max).Mul(0.5)
}

func (r Rect) Size() Vec2 {
	return r.Max.Sub(r.Min)
}

func (r Rect) BottomLeft() Vec2 {
	return r.Min
}

func (r Rect) BottomRight() Vec2 {
	return Vec2{
		X: r.Max.X,
		Y: r.Min.Y,
	}
}

func (r Rect) TopLeft() Vec2 {
	return Vec2{
		X: r.Min.X,
		Y: r.Max.Y,
	}
}

func (r Rect) TopRight() Vec2 {
	return r.Max
}

func (r Rect) Translate(offset Vec2) Rect {
	return Rect{
		Min: r.Min.Add(offset),
		Max: r.Max.Add(offset),
	}
}

func (r Rect) Contains(p Vec2) bool {
	return r.Min.X <= p.X && p.X <= r.Max.X &&
		r.Min.Y <= p.Y && p.Y <= r.Max.Y
}

// Orthographic returns an orthographic projection with the extents of the
// rectangle, see OrthographicMat4. The projection does not translate, so only
// a rectangle centered on the origin maps exactly to clip space.
func (r Rect) Orthographic(near, far float32) Mat4 {
	return OrthographicMat4(r.Max.Y, r.Min.Y, r.Min.X, r.Max.X, near, far)
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect(min=%s, max=%s)", r.Min, r.Max)
}
