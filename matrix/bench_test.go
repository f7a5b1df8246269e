// Package matrix_test provides benchmarks for the Square kernels,
// using deterministic random fill.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/sqmatrix/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{16, 64, 128}

// sinks to defeat dead-code elimination
var (
	sinkF *matrix.Square[float64]
	sinkI *matrix.Square[int]
	sinkV float64
)

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandomFloat(b, n, 1337)
			B := RandomFloat(b, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Add(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = m
			}
		})
	}
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandomInt(b, n, 11)
			B := RandomInt(b, n, 22)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkI = m
			}
		})
	}
}

func BenchmarkDiagonalSum(b *testing.B) {
	m := RandomFloat(b, 512, 5)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkV = m.DiagonalSum()
	}
}

func BenchmarkSwapRows(b *testing.B) {
	m := RandomFloat(b, 512, 6)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := m.SwapRows(i%512, (i+1)%512); err != nil {
			b.Fatal(err)
		}
	}
}
