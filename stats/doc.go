// Package stats provides the sample statistics used to summarise Monte Carlo
// trials: mean, sample standard deviation and a normal-approximation 95%
// confidence interval.
//
// Degenerate-sample policy:
//
//   - Mean of an empty sample is NaN.
//   - StdDev uses the n−1 denominator, so it is NaN for fewer than two samples.
//   - Confidence95 collapses to [mean, mean] when stddev is NaN, so a single
//     trial yields a point interval rather than NaN bounds.
package stats
