// SPDX-License-Identifier: MIT

package matrix

// Strassen — recursive seven-product matrix multiplication.
//
// Algorithm Outline:
//  1. Let A be r×k and B be k×c. Pad both with zeros to n×n where n is the
//     next power of two ≥ max(r, k, c).
//  2. If n ≤ leaf, multiply classically.
//  3. Otherwise split into h×h quadrants (h = n/2) and form
//     M1 = (A11 + A22)(B11 + B22)
//     M2 = (A21 + A22) B11
//     M3 = A11 (B12 − B22)
//     M4 = A22 (B21 − B11)
//     M5 = (A11 + A12) B22
//     M6 = (A21 − A11)(B11 + B12)
//     M7 = (A12 − A22)(B21 + B22)
//  4. Assemble
//     C11 = M1 + M4 − M5 + M7    C12 = M3 + M5
//     C21 = M2 + M4              C22 = M1 − M2 + M3 + M6
//  5. Crop the padded product back to r×c.
//
// Results agree with Mul up to floating-point rounding; the extra additions
// make Strassen slightly less accurate on ill-conditioned inputs.
//
// Complexity:
//
//	Time   = O(n^log2(7))
//	Memory = O(n²) live at each recursion level

// Strassen computes A × B with Strassen's algorithm.
// Options: WithLeafSize (default DefaultLeafSize).
// Errors: ErrNilMatrix, ErrDimensionMismatch, or At failures of a non-Dense operand.
func Strassen(a, b Matrix, opts ...Option) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opStrassen, err)
	}
	o := gatherOptions(opts...)

	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opStrassen, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opStrassen, err)
	}

	rows, cols := da.r, db.c
	n := nextPow2(max(da.r, da.c, db.c))
	if n <= o.leafSize {
		res := &Dense{r: rows, c: cols, data: make([]float64, rows*cols), validateNaNInf: DefaultValidateNaNInf}
		mulInto(res, da, db)

		return res, nil
	}

	// Padding is a no-op copy when the shapes already are n×n.
	pc := strassen(da.block(0, 0, n, n), db.block(0, 0, n, n), o.leafSize)
	if pc.r == rows && pc.c == cols {
		return pc, nil
	}

	return pc.block(0, 0, rows, cols), nil
}

// strassen multiplies two n×n matrices, n a power of two.
func strassen(a, b *Dense, leaf int) *Dense {
	n := a.r
	if n <= leaf {
		res := newSquare(n)
		mulInto(res, a, b)

		return res
	}

	a11, a12, a21, a22 := splitBlocks(a)
	b11, b12, b21, b22 := splitBlocks(b)

	m1 := strassen(plus(a11, a22), plus(b11, b22), leaf)
	m2 := strassen(plus(a21, a22), b11, leaf)
	m3 := strassen(a11, minus(b12, b22), leaf)
	m4 := strassen(a22, minus(b21, b11), leaf)
	m5 := strassen(plus(a11, a12), b22, leaf)
	m6 := strassen(minus(a21, a11), plus(b11, b12), leaf)
	m7 := strassen(minus(a12, a22), plus(b21, b22), leaf)

	c11 := plus(minus(plus(m1, m4), m5), m7)
	c12 := plus(m3, m5)
	c21 := plus(m2, m4)
	c22 := plus(plus(minus(m1, m2), m3), m6)

	return assembleBlocks(c11, c12, c21, c22)
}

// splitBlocks cuts an even-sized square into its four quadrants.
func splitBlocks(m *Dense) (m11, m12, m21, m22 *Dense) {
	h := m.r / 2

	return m.block(0, 0, h, h), m.block(0, h, h, h), m.block(h, 0, h, h), m.block(h, h, h, h)
}

// assembleBlocks is the inverse of splitBlocks; all quadrants share one size.
func assembleBlocks(m11, m12, m21, m22 *Dense) *Dense {
	h := m11.r
	out := newSquare(2 * h)
	out.setBlock(0, 0, m11)
	out.setBlock(0, h, m12)
	out.setBlock(h, 0, m21)
	out.setBlock(h, h, m22)

	return out
}

// plus and minus are allocation-per-call kernels over equal-shaped Dense.
func plus(x, y *Dense) *Dense {
	out := &Dense{r: x.r, c: x.c, data: make([]float64, len(x.data))}
	for i := range out.data {
		out.data[i] = x.data[i] + y.data[i]
	}

	return out
}

func minus(x, y *Dense) *Dense {
	out := &Dense{r: x.r, c: x.c, data: make([]float64, len(x.data))}
	for i := range out.data {
		out.data[i] = x.data[i] - y.data[i]
	}

	return out
}

// nextPow2 returns the smallest power of two ≥ n (n ≥ 1).
func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
