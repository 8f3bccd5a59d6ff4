package cli

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/percolation/internal/config"
	"github.com/katalvlaran/percolation/percolation"
)

// run executes the root command with args and returns stdout, stderr and the error.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cfg := config.Config{LogLevel: "error", LogFormat: "text"}
	root := NewRootCommand(cfg, &out, &errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

//----------------------------------------------------------------------------//
// stats
//----------------------------------------------------------------------------//

func TestStats_SingleSite(t *testing.T) {
	out, _, err := run(t, "stats", "1", "5", "--seed", "3")
	require.NoError(t, err)
	want := "" +
		"mean                    = 1.000000\n" +
		"stddev                  = 0.000000\n" +
		"95% confidence interval = [1.000000, 1.000000]\n"
	assert.Equal(t, want, out)
}

func TestStats_Reproducible(t *testing.T) {
	a, _, err := run(t, "stats", "8", "20", "--seed", "11", "--workers", "1")
	require.NoError(t, err)
	b, _, err := run(t, "stats", "8", "20", "--seed", "11", "--workers", "4")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestStats_InfoLog(t *testing.T) {
	var out, errOut bytes.Buffer
	root := NewRootCommand(config.Config{LogLevel: "warn", LogFormat: "text"}, &out, &errOut)
	root.SetArgs([]string{"--log-level", "info", "stats", "3", "1200", "--seed", "1"})
	require.NoError(t, root.Execute())
	assert.Contains(t, errOut.String(), "simulation finished")
	assert.Contains(t, errOut.String(), "trials=1,200")
}

func TestStats_UsageErrors(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{"NonNumericN", []string{"stats", "abc", "5"}},
		{"NonNumericT", []string{"stats", "5", "x"}},
		{"ZeroN", []string{"stats", "0", "5"}},
		{"NegativeT", []string{"stats", "5", "-1"}},
		{"MissingT", []string{"stats", "5"}},
		{"ExtraArg", []string{"stats", "5", "5", "5"}},
		{"UnknownFlag", []string{"stats", "5", "5", "--bogus"}},
		{"NegativeWorkers", []string{"stats", "5", "5", "--workers", "-1"}},
		{"BadLogLevel", []string{"--log-level", "loud", "stats", "5", "5"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := run(t, tc.args...)
			require.Error(t, err)
			assert.Equal(t, CodeUsage, ExitCode(err), "err=%v", err)
		})
	}
}

// TestStats_OversizedGrid checks sizes whose n² would overflow are usage errors.
func TestStats_OversizedGrid(t *testing.T) {
	tooBig := strconv.Itoa(percolation.MaxSize + 1)
	for _, args := range [][]string{
		{"stats", tooBig, "1"},
		{"stats", strconv.Itoa(math.MaxInt32), "1"},
		{"grid", tooBig, "--open", "1,1"},
	} {
		_, _, err := run(t, args...)
		assert.ErrorIs(t, err, percolation.ErrInvalidSize, "args=%v", args)
		assert.Equal(t, CodeUsage, ExitCode(err), "args=%v", args)
	}
}

//----------------------------------------------------------------------------//
// root
//----------------------------------------------------------------------------//

// TestRoot_PositionalArgs checks `percolation N T` points at the stats subcommand.
func TestRoot_PositionalArgs(t *testing.T) {
	_, _, err := run(t, "200", "100")
	require.Error(t, err)
	assert.Equal(t, CodeUsage, ExitCode(err))
	assert.Contains(t, err.Error(), "percolation stats N T")
}

// TestRoot_Help checks the bare command prints help mentioning stats N T.
func TestRoot_Help(t *testing.T) {
	out, _, err := run(t)
	require.NoError(t, err)
	assert.Contains(t, out, "percolation stats N T")
}

//----------------------------------------------------------------------------//
// grid
//----------------------------------------------------------------------------//

func TestGrid_Column(t *testing.T) {
	out, _, err := run(t, "grid", "2", "--open", "1,1", "-o", "2,1", "--query", "1,2", "-q", "2,1")
	require.NoError(t, err)
	want := "" +
		"#.\n" +
		"#.\n" +
		"open sites: 2\n" +
		"percolates: true\n" +
		"site 1,2: open=false full=false\n" +
		"site 2,1: open=true full=true\n"
	assert.Equal(t, want, out)
}

func TestGrid_Dump(t *testing.T) {
	out, _, err := run(t, "grid", "2", "--open", "1,1", "--dump")
	require.NoError(t, err)
	assert.Contains(t, out, "percolates: false\n")
	assert.Contains(t, out, "virtual top:   0\n")
}

func TestGrid_Errors(t *testing.T) {
	_, _, err := run(t, "grid", "2", "--open", "3,1")
	assert.ErrorIs(t, err, percolation.ErrOutOfRange)
	assert.Equal(t, CodeUsage, ExitCode(err))

	_, _, err = run(t, "grid", "2", "--open", "nope")
	assert.Equal(t, CodeUsage, ExitCode(err))

	_, _, err = run(t, "grid", "2", "--query", "0,0")
	assert.Equal(t, CodeUsage, ExitCode(err))
}

//----------------------------------------------------------------------------//
// helpers
//----------------------------------------------------------------------------//

func TestParseSite(t *testing.T) {
	cases := []struct {
		in   string
		want percolation.Site
		ok   bool
	}{
		{"1,4", percolation.Site{Row: 1, Col: 4}, true},
		{" 10 , 2 ", percolation.Site{Row: 10, Col: 2}, true},
		{"0,-1", percolation.Site{Row: 0, Col: -1}, true},
		{"1", percolation.Site{}, false},
		{"a,1", percolation.Site{}, false},
		{"1,b", percolation.Site{}, false},
	}
	for _, tc := range cases {
		got, err := ParseSite(tc.in)
		if !tc.ok {
			assert.Error(t, err, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, CodeSuccess, ExitCode(nil))
	assert.Equal(t, CodeFailure, ExitCode(errors.New("boom")))
	assert.Equal(t, CodeUsage, ExitCode(usageError(errors.New("bad"))))
	assert.Equal(t, CodeUsage, ExitCode(fmt.Errorf("wrapped: %w", percolation.ErrInvalidSize)))
	assert.Equal(t, 7, ExitCode(&ExitError{Code: 7}))
	assert.Equal(t, "exit with code 7", (&ExitError{Code: 7}).Error())
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "percolation dev\n", out)
}
