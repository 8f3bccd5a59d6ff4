// SPDX-License-Identifier: MIT
// Package: percolation/stats
//
// stats.go — sample statistics over per-trial percolation thresholds.
//
// Purpose:
//   - Reduce a slice of trial results to mean, sample variance/stddev and a
//     normal-approximation 95% confidence interval.
//
// Contract:
//   - Mean(∅) = NaN; Variance/StdDev need ≥ 2 samples, else NaN.
//   - Variance uses the unbiased n−1 denominator.
//   - Confidence95 never returns NaN bounds for a finite mean: a NaN stddev
//     (single trial) collapses the interval to [mean, mean].
//
// Determinism:
//   - Fixed left-to-right summation; identical inputs give identical bits.
//
// AI-Hints:
//   - Pass Thresholds() from montecarlo.Stats to recompute with another z.
//   - Two-pass Variance trades one extra scan for stability over the
//     one-pass Σx² − n·μ² form.

package stats

import "math"

// Z95 is the two-sided 95% quantile of the standard normal distribution.
const Z95 = 1.96

// Mean returns the arithmetic mean of xs, or NaN if xs is empty.
// Complexity: O(len(xs)).
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}

	return sum / float64(len(xs))
}

// Variance returns the sample variance of xs (denominator len(xs)-1),
// or NaN if len(xs) < 2.
// Complexity: O(len(xs)), two passes.
func Variance(xs []float64) float64 {
	if len(xs) < 2 {
		return math.NaN()
	}
	// Pass 1 fixes the mean; pass 2 sums squared deviations from it.
	mu := Mean(xs)
	var ss float64
	for _, x := range xs {
		d := x - mu
		ss += d * d
	}

	return ss / float64(len(xs)-1)
}

// StdDev returns the sample standard deviation of xs, or NaN if len(xs) < 2.
func StdDev(xs []float64) float64 {
	return math.Sqrt(Variance(xs))
}

// Confidence95 returns mean ∓ Z95·stddev/√trials.
// A NaN stddev yields lo == hi == mean.
func Confidence95(mean, stddev float64, trials int) (lo, hi float64) {
	// Degenerate policy: no spread estimate means a point interval.
	if math.IsNaN(stddev) || trials <= 0 {
		return mean, mean
	}
	half := Z95 * stddev / math.Sqrt(float64(trials))

	return mean - half, mean + half
}
