package montecarlo

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/percolation/percolation"
	"github.com/katalvlaran/percolation/stats"
)

const methodNew = "New"

// New runs trials independent simulations on n×n grids and summarises the
// percolation thresholds.
// Returns ErrInvalidSize if n ≤ 0 or n > percolation.MaxSize, and
// ErrInvalidTrials if trials ≤ 0.
// Complexity: O(trials · n² · α(n²)) time, O(workers · n² + trials) memory.
func New(n, trials int, opts ...Option) (*Stats, error) {
	return NewContext(context.Background(), n, trials, opts...)
}

// NewContext is New with cancellation. ctx is checked before each trial
// starts; a cancelled run returns ctx.Err().
func NewContext(ctx context.Context, n, trials int, opts ...Option) (*Stats, error) {
	if n <= 0 || n > percolation.MaxSize {
		return nil, fmt.Errorf("%s: n=%d: %w", methodNew, n, ErrInvalidSize)
	}
	if trials <= 0 {
		return nil, fmt.Errorf("%s: trials=%d: %w", methodNew, trials, ErrInvalidTrials)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	thresholds := make([]float64, trials)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)
	for i := 0; i < trials; i++ {
		if gctx.Err() != nil {
			break
		}
		i := i // per-iteration copy; go directive is 1.21 (pre-loopvar semantics)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rng := rand.New(rand.NewSource(o.Seed + int64(i)))
			x, err := runTrial(n, rng)
			if err != nil {
				return fmt.Errorf("%s: trial %d: %w", methodNew, i, err)
			}
			thresholds[i] = x
			o.Logger.Debug("trial done", slog.Int("trial", i), slog.Float64("threshold", x))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// errgroup's derived context is cancelled by Wait; report the caller's.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s := &Stats{
		n:          n,
		thresholds: thresholds,
		mean:       stats.Mean(thresholds),
		stddev:     stats.StdDev(thresholds),
	}
	s.lo, s.hi = stats.Confidence95(s.mean, s.stddev, trials)

	return s, nil
}

// runTrial opens uniformly random sites on a fresh n×n grid until it
// percolates and returns the open fraction at that moment.
func runTrial(n int, rng *rand.Rand) (float64, error) {
	grid, err := percolation.New(n)
	if err != nil {
		return 0, err
	}
	// A fully open grid always percolates, so the loop terminates.
	for !grid.Percolates() {
		row := rng.Intn(n) + 1
		col := rng.Intn(n) + 1
		if err = grid.Open(row, col); err != nil {
			return 0, err
		}
	}

	return grid.OpenFraction(), nil
}

// Mean returns the sample mean of the percolation thresholds.
func (s *Stats) Mean() float64 { return s.mean }

// StdDev returns the sample standard deviation of the thresholds.
// It is NaN when Trials() == 1.
func (s *Stats) StdDev() float64 { return s.stddev }

// ConfidenceLo returns the low endpoint of the 95% confidence interval.
func (s *Stats) ConfidenceLo() float64 { return s.lo }

// ConfidenceHi returns the high endpoint of the 95% confidence interval.
func (s *Stats) ConfidenceHi() float64 { return s.hi }

// Trials returns the number of trials run.
func (s *Stats) Trials() int { return len(s.thresholds) }

// Size returns the grid side length n.
func (s *Stats) Size() int { return s.n }

// Thresholds returns a copy of the per-trial open fractions, indexed by trial.
func (s *Stats) Thresholds() []float64 {
	out := make([]float64, len(s.thresholds))
	copy(out, s.thresholds)
	return out
}
