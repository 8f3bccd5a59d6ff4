// SPDX-License-Identifier: MIT
// Package: percolation/montecarlo
//
// options.go — functional options for the Monte Carlo driver.
//
// Contract (strict):
//   • Options are functional (type Option func(*Options)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     New itself never panics and reports argument errors as values.
//   • Determinism is explicit: trial i is seeded with Seed+i, so the worker
//     count never changes results.
//   • No hidden globals; everything flows through Options.
//
// AI-Hints:
//   • Prefer WithSeed in tests and examples to lock outcomes.
//   • WithWorkers(1) gives a strictly sequential run, handy when profiling.
//   • WithLogger only receives Debug records; set the handler level to see them.

package montecarlo

import (
	"io"
	"log/slog"
	"runtime"
)

// DefaultSeed is the base seed used when WithSeed is not given.
const DefaultSeed int64 = 1

// Options configures a simulation run.
type Options struct {
	// Seed is the base seed; trial i uses Seed+i.
	Seed int64
	// Workers caps the number of trials running at once.
	Workers int
	// Logger receives per-trial debug records.
	Logger *slog.Logger
}

// Option mutates Options before the run starts.
type Option func(*Options)

// DefaultOptions returns Seed=DefaultSeed, Workers=GOMAXPROCS and a
// logger that discards everything.
func DefaultOptions() Options {
	return Options{
		// Fixed default seed: an unseeded run is still reproducible.
		Seed:    DefaultSeed,
		Workers: runtime.GOMAXPROCS(0),
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithSeed sets the base seed for reproducible runs.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		// Seeded sources → reproducible draws for every trial.
		o.Seed = seed
	}
}

// WithWorkers caps concurrent trials. Panics if w < 1.
func WithWorkers(w int) Option {
	if w < 1 {
		// Fail fast: a zero limit would leave errgroup unable to start a trial.
		panic("montecarlo: WithWorkers(w<1)")
	}
	return func(o *Options) {
		// Upper bound only; errgroup starts at most this many goroutines.
		o.Workers = w
	}
}

// WithLogger routes per-trial debug records to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		// Fail fast rather than nil-deref inside a worker goroutine.
		panic("montecarlo: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Logger = l
	}
}
