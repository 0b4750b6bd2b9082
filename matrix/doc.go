// Package matrix provides a small dense linear-algebra kernel set with a
// recursive Strassen multiplier.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set.
//   - Add, Sub and Mul (classical i-k-j product) with sentinel errors.
//   - Strassen, the seven-product divide-and-conquer multiplication, with
//     zero-padding to the next power of two and a configurable leaf size
//     below which it falls back to Mul.
//
// The package is a standalone numeric utility: it shares no types or state
// with the sequence aligner in package align.
//
// Complexity:
//
//	Mul:      O(n³)
//	Strassen: O(n^log2(7)) ≈ O(n^2.807), plus O(n²) per level for padding
//	          and block copies.
//
// See example_test.go for usage and bench_test.go for the Mul vs Strassen
// timing harness.
package matrix
