// Package physics connects gm values to the chipmunk physics engine.
//
// Bodies in chipmunk use float64 vectors and an angle in radians that turns
// counter-clockwise. The helpers in this package convert between both worlds.
package physics

import (
	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/gm3d/gm"
)

func VectorOf(v gm.Vec2) cp.Vector {
	return cp.Vector{X: float64(v.X), Y: float64(v.Y)}
}

func Vec2Of(v cp.Vector) gm.Vec2 {
	return gm.Vec2{X: float32(v.X), Y: float32(v.Y)}
}

func vectorsOf(points []gm.Vec2) []cp.Vector {
	vectors := make([]cp.Vector, len(points))
	for idx := range points {
		vectors[idx] = VectorOf(points[idx])
	}

	return vectors
}
