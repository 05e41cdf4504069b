package yen_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlpath/core"
	"github.com/katalvlaran/lvlpath/yen"
)

// BenchmarkSearch_Random runs the benchmark driver's default topology,
// G(1000, 0.1) from 0 to 1, at a few target lengths.
func BenchmarkSearch_Random(b *testing.B) {
	g, _ := core.New(1000)
	_ = g.FillUndirected(0.1, rand.New(rand.NewSource(79544948)))

	for _, length := range []int{3, 4, 6} {
		b.Run(fmt.Sprintf("L=%d", length), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = yen.Search(g, 0, 1, length)
			}
		})
	}
}

// BenchmarkSearch_Complete measures enumeration on small complete graphs.
func BenchmarkSearch_Complete(b *testing.B) {
	g, _ := core.New(7)
	_ = g.FillUndirected(1, nil)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = yen.Search(g, 0, 1, 7)
	}
}
