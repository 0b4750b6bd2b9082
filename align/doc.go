// Package align computes local sequence alignments with the Smith–Waterman
// dynamic-programming algorithm under a linear gap penalty.
//
// 🚀 What is Smith–Waterman?
//
//	Given two symbol sequences, Smith–Waterman finds the pair of substrings
//	whose alignment scores highest. Unlike global alignment it is free to
//	ignore poorly matching prefixes and suffixes, which makes it the usual
//	choice for:
//	  • locating a conserved motif inside two longer DNA/protein reads
//	  • fuzzy substring search over arbitrary text
//	  • comparing fragments of different length without end penalties
//
// ✨ Key features:
//   - exact O(N·M) score table with explicit per-cell traceback steps
//   - deterministic tie-breaking: diagonal only if strictly best, vertical
//     gap over horizontal gap only if strictly greater
//   - first maximal cell in row-major order wins the end point
//   - per-call table allocation; an *Aligner is safe for concurrent use
//   - AlignAll fans independent pairs out over a bounded worker pool
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/swalign/align"
//
//	a := align.New(
//	  align.WithGapPenalty(2),
//	  align.WithMatchBonus(3),
//	  align.WithMismatchPenalty(3),
//	)
//
//	res := a.Align("TGTTACGG", "GGTTGACTA")
//	fmt.Println(res) // GTT-AC
//	                 // GTTGAC
//
// Performance:
//
//   - Time:   O(N·M)
//   - Memory: O(N·M) (score table + step table)
//
// Symbols are compared as runes; no alphabet is enforced.
package align
