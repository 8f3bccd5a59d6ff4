package montecarlo

import (
	"fmt"

	"github.com/katalvlaran/percolation/percolation"
)

// ErrInvalidArgument is shared with package percolation so a single
// errors.Is check covers both constructors.
var ErrInvalidArgument = percolation.ErrInvalidArgument

// Sentinel errors for New.
var (
	// ErrInvalidSize indicates a grid size outside [1, percolation.MaxSize].
	ErrInvalidSize = percolation.ErrInvalidSize
	// ErrInvalidTrials indicates a non-positive trial count.
	ErrInvalidTrials = fmt.Errorf("%w: trial count must be positive", ErrInvalidArgument)
)

// Stats holds the outcome of a simulation run. All values are computed by
// New; the accessors only read them.
type Stats struct {
	n          int
	thresholds []float64
	mean       float64
	stddev     float64
	lo, hi     float64
}
