package percolation_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/percolation/percolation"
)

// BenchmarkOpenUntilPercolates measures one full trial on a 200×200 grid.
func BenchmarkOpenUntilPercolates(b *testing.B) {
	const n = 200
	r := rand.New(rand.NewSource(42))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g, _ := percolation.New(n)
		for !g.Percolates() {
			_ = g.Open(r.Intn(n)+1, r.Intn(n)+1)
		}
	}
}
