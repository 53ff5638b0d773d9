// Package gmebiten converts gm values into the types used by ebiten for drawing.
package gmebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oliverbestmann/gm3d/gm"
)

// GeoM converts a 2d homogeneous transform into an ebiten.GeoM.
// The third column of m is expected to be (0, 0, 1), anything else
// can not be represented and is dropped.
func GeoM(m gm.Mat3) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, float64(m.C00))
	g.SetElement(0, 1, float64(m.C01))
	g.SetElement(0, 2, float64(m.C02))
	g.SetElement(1, 0, float64(m.C10))
	g.SetElement(1, 1, float64(m.C11))
	g.SetElement(1, 2, float64(m.C12))
	return g
}

// Mat3OfGeoM converts an ebiten.GeoM into a 2d homogeneous transform.
func Mat3OfGeoM(g ebiten.GeoM) gm.Mat3 {
	return gm.Mat3{
		C00: float32(g.Element(0, 0)), C10: float32(g.Element(1, 0)), C20: 0,
		C01: float32(g.Element(0, 1)), C11: float32(g.Element(1, 1)), C21: 0,
		C02: float32(g.Element(0, 2)), C12: float32(g.Element(1, 2)), C22: 1,
	}
}

// GeoMOfAffine converts the x/y part of a 3d transform into an ebiten.GeoM,
// dropping everything that involves the z axis.
func GeoMOfAffine(a gm.Affine) ebiten.GeoM {
	m := a.Matrix
	return GeoM(gm.Mat3{
		C00: m.C00, C10: m.C10, C20: 0,
		C01: m.C01, C11: m.C11, C21: 0,
		C02: a.Translation.X, C12: a.Translation.Y, C22: 1,
	})
}

// ColorScale builds a color scale from a color given as rgba in the
// range [0, 1]. The color is premultiplied by its alpha value.
func ColorScale(color gm.Vec4) ebiten.ColorScale {
	var cs ebiten.ColorScale
	cs.Scale(color.X*color.W, color.Y*color.W, color.Z*color.W, color.W)
	return cs
}
