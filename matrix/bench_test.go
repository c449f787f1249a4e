// Package matrix_test provides benchmarks for the reduction and the
// multiplication kernel, using deterministic random fill for Dense
// matrices.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/malg/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{16, 64, 128}

// sinks to defeat dead-code elimination
var (
	sinkM   matrix.Matrix[float64]
	sinkErr error
)

func BenchmarkReduce(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			src := mustDense(b, n, n)
			fillDenseRand(b, src, 1337)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				// Reduce mutates in place; work on a fresh clone each round.
				m := src.Clone().(*matrix.Dense[float64])
				if err := matrix.Reduce(f64, m); err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkReduceAugmented(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			left := mustDense(b, n, n)
			right := mustDense(b, n, 1)
			fillDenseRand(b, left, 1337)
			fillDenseRand(b, right, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				l := left.Clone().(*matrix.Dense[float64])
				r := right.Clone().(*matrix.Dense[float64])
				aug, err := matrix.NewAugmented(l, r)
				if err != nil {
					b.Fatal(err)
				}
				if err = matrix.Reduce(f64, aug); err != nil {
					b.Fatal(err)
				}
				sinkM = aug.Left()
			}
		})
	}
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustDense(b, n, n)
			B := mustDense(b, n, n)
			fillDenseRand(b, A, 1337)
			fillDenseRand(b, B, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul[float64](f64, A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
				sinkErr = err
			}
		})
	}
}
