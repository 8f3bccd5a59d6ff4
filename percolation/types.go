package percolation

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/percolation/unionfind"
)

// MaxSize is the largest accepted side length: n²+1 union-find elements
// stay within int32 on every platform.
const MaxSize = 46340

// ErrInvalidArgument is the root of every argument error in this package.
var ErrInvalidArgument = errors.New("percolation: invalid argument")

// Sentinel errors for Grid operations; each wraps ErrInvalidArgument.
var (
	// ErrInvalidSize indicates a grid size outside [1, MaxSize].
	ErrInvalidSize = fmt.Errorf("%w: grid size must be in [1,%d]", ErrInvalidArgument, MaxSize)
	// ErrOutOfRange indicates a row or column outside [1, n].
	ErrOutOfRange = fmt.Errorf("%w: site outside grid", ErrInvalidArgument)
)

// Site is a 1-based (Row, Col) coordinate on the grid.
type Site struct {
	Row, Col int
}

// String formats the site as "row,col".
func (s Site) String() string {
	return fmt.Sprintf("%d,%d", s.Row, s.Col)
}

// neighborOffsets lists (drow, dcol) in union order: up, down, left, right.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Grid is one percolation system. Sites are stored row-major with
// index (row-1)*n + (col-1); index n*n is the virtual node in both
// union-find structures.
type Grid struct {
	n          int
	open       []bool
	openCount  int
	percolates bool
	top        *unionfind.UnionFind // sites + virtual top
	bottom     *unionfind.UnionFind // sites + virtual bottom
}
