// Package gm (stands for geometry math) provides float32 vectors, matrices and
// quaternions for real-time 3d graphics.
//
// The coordinate system is left-handed with Y pointing up. Vectors are row
// vectors multiplied on the left of a matrix, so transformations apply in
// reading order: to scale, then rotate, then translate a position, write
//
//	pos.MulMat4(ScaleMat4(scale).MulQuat(rotation).Mul(TranslationMat4(offset)))
//
// Matrix fields are named CXY, where X is the column and Y is the row. Fields
// are declared row by row, so a Mat4 has the memory layout of a row-major
// [16]float32.
//
// Nothing in this package checks for degenerate input. Inverting a singular
// matrix or normalizing a zero vector yields Inf and NaN values. Only the
// projection constructors panic, when their clipping volume has no extent.
//
// Angles use the types Rad and Deg.
package gm
