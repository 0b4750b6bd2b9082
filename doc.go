// Package swalign is a small, dependency-light toolkit for local sequence
// alignment, plus a standalone dense matrix kernel set.
//
// 🚀 What is inside?
//
//	• align/  — Smith–Waterman local alignment with a linear gap penalty:
//	            dense score table, deterministic tie-breaking, traceback,
//	            and a bounded worker pool for batches of independent pairs.
//	• matrix/ — row-major Dense matrices with Add/Sub/Mul and a recursive
//	            Strassen multiplier (zero-padded, configurable leaf size).
//
// The two packages are independent: align never touches matrix.
//
// Quick example:
//
//	a := align.New(align.WithScores(2, 3, 3)) // gap, match, mismatch
//	res := a.Align("TGTTACGG", "GGTTGACTA")
//	fmt.Println(res)
//	// GTT-AC
//	// GTTGAC
//
//	go get github.com/katalvlaran/swalign
package swalign
