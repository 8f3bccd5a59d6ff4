package cli

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/percolation/montecarlo"
)

func (a *app) statsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats N T",
		Short: "Run T trials on an N×N grid and print the threshold estimate",
		Args:  exactArgs(2),
		RunE:  a.runStats,
	}
	cmd.Flags().Int64Var(&a.cfg.Seed, "seed", a.cfg.Seed, "base RNG seed (0 seeds from the clock)")
	cmd.Flags().IntVar(&a.cfg.Workers, "workers", a.cfg.Workers, "concurrent trials (0 uses GOMAXPROCS)")

	return cmd
}

func (a *app) runStats(cmd *cobra.Command, args []string) error {
	n, err := parsePositive("N", args[0])
	if err != nil {
		return err
	}
	trials, err := parsePositive("T", args[1])
	if err != nil {
		return err
	}
	if a.cfg.Workers < 0 {
		return usageError(fmt.Errorf("workers=%d must be >= 0", a.cfg.Workers))
	}

	seed := a.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	opts := []montecarlo.Option{montecarlo.WithSeed(seed), montecarlo.WithLogger(a.logger)}
	if a.cfg.Workers > 0 {
		opts = append(opts, montecarlo.WithWorkers(a.cfg.Workers))
	}

	a.logger.Info("simulation started",
		slog.String("grid", fmt.Sprintf("%dx%d", n, n)),
		slog.String("sites", humanize.Comma(int64(n)*int64(n))),
		slog.String("trials", humanize.Comma(int64(trials))),
		slog.Int64("seed", seed))
	start := time.Now()

	s, err := montecarlo.NewContext(cmd.Context(), n, trials, opts...)
	if err != nil {
		return err
	}
	a.logger.Info("simulation finished",
		slog.String("trials", humanize.Comma(int64(s.Trials()))),
		slog.Duration("elapsed", time.Since(start)))

	_, err = fmt.Fprintf(a.out,
		"mean                    = %f\n"+
			"stddev                  = %f\n"+
			"95%% confidence interval = [%f, %f]\n",
		s.Mean(), s.StdDev(), s.ConfidenceLo(), s.ConfidenceHi())
	return err
}

// parsePositive parses a positional integer argument.
func parsePositive(name, s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, usageError(fmt.Errorf("%s=%q is not an integer", name, s))
	}
	if v <= 0 {
		return 0, usageError(fmt.Errorf("%s=%d must be positive", name, v))
	}
	return v, nil
}
