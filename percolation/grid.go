package percolation

import (
	"fmt"

	"github.com/katalvlaran/percolation/unionfind"
)

// Method tags used when wrapping sentinel errors.
const (
	methodNew    = "New"
	methodOpen   = "Open"
	methodIsOpen = "IsOpen"
	methodIsFull = "IsFull"
)

// New returns an n×n Grid with every site closed.
// Returns ErrInvalidSize if n ≤ 0 or n > MaxSize.
// Complexity: O(n²) time and memory.
func New(n int) (*Grid, error) {
	if n <= 0 || n > MaxSize {
		return nil, fmt.Errorf("%s: n=%d: %w", methodNew, n, ErrInvalidSize)
	}
	top, err := unionfind.New(n*n + 1)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodNew, err)
	}
	bottom, err := unionfind.New(n*n + 1)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodNew, err)
	}

	return &Grid{
		n:      n,
		open:   make([]bool, n*n),
		top:    top,
		bottom: bottom,
	}, nil
}

// Size returns n, the side length of the grid.
func (g *Grid) Size() int {
	return g.n
}

// Open opens site (row, col) and links it to its open neighbours.
// Opening an already open site is a no-op.
// Returns ErrOutOfRange if the site is outside the grid.
// Complexity: O(α(n²)) amortized.
func (g *Grid) Open(row, col int) error {
	if err := g.validate(methodOpen, row, col); err != nil {
		return err
	}
	p := g.index(row, col)
	if g.open[p] {
		return nil
	}
	g.open[p] = true
	g.openCount++

	// Indices below are in range by construction, so Union cannot fail.
	virtual := g.virtual()
	if row == 1 {
		_, _ = g.top.Union(p, virtual)
	}
	if row == g.n {
		_, _ = g.bottom.Union(p, virtual)
	}
	for _, d := range neighborOffsets {
		r, c := row+d[0], col+d[1]
		if !g.inBounds(r, c) {
			continue
		}
		q := g.index(r, c)
		if !g.open[q] {
			continue
		}
		_, _ = g.top.Union(p, q)
		_, _ = g.bottom.Union(p, q)
	}

	if g.reachesTop(p) && g.reachesBottom(p) {
		g.percolates = true
	}

	return nil
}

// IsOpen reports whether site (row, col) is open.
// Returns ErrOutOfRange if the site is outside the grid.
func (g *Grid) IsOpen(row, col int) (bool, error) {
	if err := g.validate(methodIsOpen, row, col); err != nil {
		return false, err
	}

	return g.open[g.index(row, col)], nil
}

// IsFull reports whether site (row, col) is open and connected to the top
// row through open sites. Bottom-row sites never become full through the
// virtual bottom node.
// Returns ErrOutOfRange if the site is outside the grid.
func (g *Grid) IsFull(row, col int) (bool, error) {
	if err := g.validate(methodIsFull, row, col); err != nil {
		return false, err
	}
	p := g.index(row, col)

	return g.open[p] && g.reachesTop(p), nil
}

// NumberOfOpenSites returns how many distinct sites have been opened.
func (g *Grid) NumberOfOpenSites() int {
	return g.openCount
}

// OpenFraction returns NumberOfOpenSites / n².
func (g *Grid) OpenFraction() float64 {
	return float64(g.openCount) / float64(g.n*g.n)
}

// Percolates reports whether the grid has percolated. Once true it stays true.
// Complexity: O(1).
func (g *Grid) Percolates() bool {
	return g.percolates
}

// reachesTop reports whether index p shares a root with the virtual top.
func (g *Grid) reachesTop(p int) bool {
	ok, _ := g.top.Connected(p, g.virtual())
	return ok
}

// reachesBottom reports whether index p shares a root with the virtual bottom.
func (g *Grid) reachesBottom(p int) bool {
	ok, _ := g.bottom.Connected(p, g.virtual())
	return ok
}

// virtual is the union-find index of the virtual top/bottom node.
func (g *Grid) virtual() int {
	return g.n * g.n
}

// index maps 1-based (row, col) to a row-major index.
func (g *Grid) index(row, col int) int {
	return (row-1)*g.n + (col - 1)
}

// site converts a row-major index back to a 1-based Site.
func (g *Grid) site(idx int) Site {
	return Site{Row: idx/g.n + 1, Col: idx%g.n + 1}
}

// inBounds reports whether (row, col) lies in [1,n]×[1,n].
func (g *Grid) inBounds(row, col int) bool {
	return row >= 1 && row <= g.n && col >= 1 && col <= g.n
}

func (g *Grid) validate(method string, row, col int) error {
	if !g.inBounds(row, col) {
		return fmt.Errorf("%s: (%d,%d) not in [1,%d]×[1,%d]: %w",
			method, row, col, g.n, g.n, ErrOutOfRange)
	}

	return nil
}
