package gm

// The functions in this file work on square matrices of size n that are stored
// row by row in a flat slice, element (row, col) at index row*n + col. They back
// Mat2, Mat3 and Mat4 so that every size runs through the same algorithm.

// mulSquare stores lhs ⋅ rhs in dst. dst must not alias lhs or rhs.
func mulSquare(dst, lhs, rhs []float32, n int) {
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			var sum float32
			for k := 0; k < n; k++ {
				sum += lhs[row*n+k] * rhs[k*n+col]
			}

			dst[row*n+col] = sum
		}
	}
}

// transposeSquare stores the transpose of m in dst. dst must not alias m.
func transposeSquare(dst, m []float32, n int) {
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			dst[col*n+row] = m[row*n+col]
		}
	}
}

// submatrix stores m without the given row and column in dst.
func submatrix(dst, m []float32, n, row, col int) {
	idx := 0
	for r := 0; r < n; r++ {
		if r == row {
			continue
		}

		for c := 0; c < n; c++ {
			if c == col {
				continue
			}

			dst[idx] = m[r*n+c]
			idx++
		}
	}
}

// minor returns the determinant of m without the given row and column.
func minor(m []float32, n, row, col int) float32 {
	var sub [9]float32
	size := n - 1

	submatrix(sub[:size*size], m, n, row, col)
	return determinant(sub[:size*size], size)
}

// cofactorSign is the checkerboard pattern, positive at (0, 0).
func cofactorSign(row, col int) float32 {
	if (row+col)%2 == 0 {
		return 1
	}

	return -1
}

// minors stores the matrix of minors of m in dst.
func minors(dst, m []float32, n int) {
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			dst[row*n+col] = minor(m, n, row, col)
		}
	}
}

// cofactors applies the checkerboard sign pattern to m and stores the result in dst.
func cofactors(dst, m []float32, n int) {
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			dst[row*n+col] = m[row*n+col] * cofactorSign(row, col)
		}
	}
}

// expandFirstRow computes the determinant of m by laplace expansion along
// the first row, given the first row of the cofactor matrix.
func expandFirstRow(m, cofactorRow []float32, n int) float32 {
	var det float32
	for col := 0; col < n; col++ {
		det += m[col] * cofactorRow[col]
	}

	return det
}

// determinant computes the determinant of m. The 2x2 case is solved directly,
// larger matrices expand along their first row and recurse into their minors.
func determinant(m []float32, n int) float32 {
	switch n {
	case 1:
		return m[0]
	case 2:
		return m[0]*m[3] - m[1]*m[2]
	}

	// only the first row of cofactors is needed
	var cofactorRow [4]float32
	for col := 0; col < n; col++ {
		cofactorRow[col] = minor(m, n, 0, col) * cofactorSign(0, col)
	}

	return expandFirstRow(m, cofactorRow[:n], n)
}

// inverse stores the inverse of m in dst: the adjugate scaled by one over
// the determinant. A singular matrix yields Inf and NaN values.
func inverse(dst, m []float32, n int) {
	var minorsOf, cofactorsOf, adjugate [16]float32
	size := n * n

	minors(minorsOf[:size], m, n)
	cofactors(cofactorsOf[:size], minorsOf[:size], n)
	transposeSquare(adjugate[:size], cofactorsOf[:size], n)

	det := expandFirstRow(m, cofactorsOf[:n], n)

	f := 1 / det
	for idx := 0; idx < size; idx++ {
		dst[idx] = adjugate[idx] * f
	}
}
