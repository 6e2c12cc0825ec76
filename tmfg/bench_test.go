// Package tmfg_test provides benchmarks for the construction scheduler.
package tmfg_test

import (
	"testing"

	"github.com/katalvlaran/planfilt/matrix"
	"github.com/katalvlaran/planfilt/tmfg"
)

// benchMatrix builds a deterministic dense proximity matrix without driving
// pseudo-randomness through the benchmark timer.
func benchMatrix(b *testing.B, n int) *matrix.Matrix {
	b.Helper()
	data := make([][]float64, n)
	for i := range data {
		data[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			w := 1.0 / float64(1+(i*31+j*17)%97)
			data[i][j] = w
			data[j][i] = w
		}
	}
	m, err := matrix.New(data)
	if err != nil {
		b.Fatal(err)
	}

	return m
}

// BenchmarkConstruct_Sequential measures the plain full-scan scheduler:
// every (remaining node, open face) gain evaluated in one pass per iteration.
func BenchmarkConstruct_Sequential(b *testing.B) {
	m := benchMatrix(b, 96)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tmfg.Construct(m); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkConstruct_Batched measures the gain scan under an explicit batch
// size; selection is identical, only the scan partitioning changes.
func BenchmarkConstruct_Batched(b *testing.B) {
	m := benchMatrix(b, 96)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tmfg.Construct(m, tmfg.WithBatchSize(16)); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkConstruct_Parallel measures the fanned-out gain scan with four
// workers over batched chunks.
func BenchmarkConstruct_Parallel(b *testing.B) {
	m := benchMatrix(b, 96)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := tmfg.Construct(m, tmfg.WithBatchSize(16), tmfg.WithParallelism(4))
		if err != nil {
			b.Fatal(err)
		}
	}
}
