// Package matrix_test provides the classical-vs-Strassen timing harness,
// using deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/swalign/matrix"
)

// benchSizes are the square matrix edges to benchmark.
var benchSizes = []int{128, 256, 512}

// sink to defeat dead-code elimination
var sinkM matrix.Matrix

func BenchmarkMul(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustDense(b, n, n)
			fillDenseRand(b, A, 1337)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(A, A)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkStrassen(b *testing.B) {
	for _, n := range benchSizes {
		for _, leaf := range []int{16, matrix.DefaultLeafSize, 128} {
			b.Run(fmt.Sprintf("n=%d/leaf=%d", n, leaf), func(b *testing.B) {
				A := mustDense(b, n, n)
				fillDenseRand(b, A, 1337)
				b.ReportAllocs()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					m, err := matrix.Strassen(A, A, matrix.WithLeafSize(leaf))
					if err != nil {
						b.Fatal(err)
					}
					sinkM = m
				}
			})
		}
	}
}
