package prims_test

import (
	"testing"

	"github.com/daedalab/mazegen/core"
	"github.com/daedalab/mazegen/prims"
)

// BenchmarkGenerate_16x16 measures a small carve end to end, seed
// varied per iteration so the frontier shape differs each run.
func BenchmarkGenerate_16x16(b *testing.B) {
	g := prims.New()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := g.Generate(16, 16, core.WithSeed(int64(i))); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkGenerate_128x128 measures the large-grid case where the
// frontier bookkeeping earns its keep.
func BenchmarkGenerate_128x128(b *testing.B) {
	g := prims.New()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := g.Generate(128, 128, core.WithSeed(int64(i))); err != nil {
			b.Fatal(err)
		}
	}
}
