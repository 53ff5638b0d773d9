// Package glconv converts gm values to and from the math types used by OpenGL
// style consumers: github.com/go-gl/mathgl/mgl32 and golang.org/x/image/math/f32.
//
// gm multiplies row vectors from the left, mgl32 multiplies column vectors
// from the right. The conversions keep the transformation a value describes,
// so a matrix ends up transposed and a quaternion conjugated.
package glconv
