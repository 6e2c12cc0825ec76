// Package matrix_test provides benchmarks for validation and pre-filtering.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/planfilt/matrix"
)

// benchData builds a deterministic symmetric table of order n.
func benchData(n int) [][]float64 {
	data := make([][]float64, n)
	for i := range data {
		data[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			w := 1.0 / float64(1+(i*13+j*7)%89)
			data[i][j] = w
			data[j][i] = w
		}
	}

	return data
}

// BenchmarkNew measures full validation (shape, finiteness, symmetry) plus
// the private copy.
func BenchmarkNew(b *testing.B) {
	data := benchData(256)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.New(data); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkNew_Float32 measures validation with reduced-precision storage.
func BenchmarkNew_Float32(b *testing.B) {
	data := benchData(256)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.New(data, matrix.WithFloat32()); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkPrefilter measures the percentile cut: gather, sort, threshold,
// symmetric zeroing.
func BenchmarkPrefilter(b *testing.B) {
	m, err := matrix.New(benchData(256))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := m.Prefilter(75); err != nil {
			b.Fatal(err)
		}
	}
}
