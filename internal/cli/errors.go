package cli

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/percolation/percolation"
)

// Process exit codes.
const (
	CodeSuccess = 0
	CodeFailure = 1
	CodeUsage   = 2
)

// ExitError carries the process exit code for err.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit with code %d", e.Code)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// usageError marks err as a command-line usage problem.
func usageError(err error) error {
	return &ExitError{Code: CodeUsage, Err: err}
}

// ExitCode maps err to a process exit code. Invalid simulation arguments
// count as usage errors.
func ExitCode(err error) int {
	if err == nil {
		return CodeSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	if errors.Is(err, percolation.ErrInvalidArgument) {
		return CodeUsage
	}
	return CodeFailure
}
