// Package percolation is an in-memory toolkit for studying site percolation
// on square grids and estimating its critical threshold by Monte Carlo
// simulation.
//
// What is inside?
//
//	unionfind/   — weighted quick-union with path halving over [0, n)
//	percolation/ — n×n Grid: Open/IsOpen/IsFull/Percolates, backwash-free
//	stats/       — sample mean, sample stddev (n−1), 95% confidence interval
//	montecarlo/  — repeated trials until percolation, aggregated into Stats
//	cmd/percolation — CLI: `percolation stats N T`, `percolation grid N --open r,c`
//
// Quick ASCII example (3×3, '#' full, 'o' open, '.' closed):
//
//	.#.
//	.#.
//	.##   ← percolates: a chain of open sites joins row 1 to row 3
//
// For a 2D square lattice the threshold p* is ≈ 0.5927.
//
// The grid size N and trial count T belong to the stats subcommand, so the
// CLI is invoked as
//
//	percolation stats 200 100
//
// and not as `percolation 200 100`, which reports that usage and exits 2.
//
//	go install github.com/katalvlaran/percolation/cmd/percolation@latest
package percolation
