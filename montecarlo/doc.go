// Package montecarlo estimates the percolation threshold of an n×n grid by
// repeated simulation.
//
// Each trial builds a fresh percolation.Grid, opens uniformly random sites
// (row and column each uniform over [1, n]) until the grid percolates, and
// records the fraction of open sites. The results are reduced to a sample
// mean, sample standard deviation and 95% confidence interval.
//
// Determinism:
//
//	Trial i draws from rand.New(rand.NewSource(seed + i)). Results depend only
//	on (n, trials, seed), never on the worker count or scheduling.
//
// Concurrency:
//
//	Trials run on an errgroup limited to Options.Workers goroutines. Each
//	trial owns its Grid and RNG and writes a single slot of the result
//	slice; the reduction runs after every trial has finished.
//
// Degenerate statistics:
//
//	With trials == 1 the sample standard deviation is NaN and the confidence
//	interval collapses to [mean, mean]. See package stats.
package montecarlo
