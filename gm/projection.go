package gm

import (
	"github.com/oliverbestmann/gm3d/internal/assert"
)

// PerspectiveMat4 returns a perspective projection with the given field of view.
// The depth of a point ends up in w, so the projected point needs a
// homogeneous divide, see Vec3.MulMat4.
//
// Panics if aspectRatio is zero or near equals far. Negative or swapped
// values are accepted.
func PerspectiveMat4(fov Rad, aspectRatio, near, far float32) Mat4 {
	assert.NonZero(aspectRatio, "aspect ratio")
	assert.NonZeroExtent(near, far, "near and far plane")

	xScale := 2 / (fov / 2).Tan()

	return Mat4{
		C00: xScale,
		C11: xScale / aspectRatio,
		C22: far / (far - near),
		C32: 1,
		C33: near * far / (near - far),
	}
}

// OrthographicMat4 returns an orthographic projection of the given box
// into clip space, with depth mapped to [0, 1].
//
// Panics if any pair of planes is equal. The order of the planes is not checked.
func OrthographicMat4(top, bottom, left, right, near, far float32) Mat4 {
	assert.NonZeroExtent(top, bottom, "top and bottom plane")
	assert.NonZeroExtent(left, right, "left and right plane")
	assert.NonZeroExtent(near, far, "near and far plane")

	return Mat4{
		C00: 2 / (right - left),
		C11: 2 / (top - bottom),
		C22: 1 / (far - near),
		C23: -near / (far - near),
		C33: 1,
	}
}
