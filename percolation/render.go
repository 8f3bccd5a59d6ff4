package percolation

import (
	"fmt"
	"io"
	"strings"
)

// Glyphs used by String.
const (
	glyphClosed = '.'
	glyphOpen   = 'o'
	glyphFull   = '#'
)

// String renders the grid one row per line: '#' full, 'o' open, '.' closed.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.n * (g.n + 1))
	for row := 1; row <= g.n; row++ {
		for col := 1; col <= g.n; col++ {
			p := g.index(row, col)
			switch {
			case !g.open[p]:
				sb.WriteByte(glyphClosed)
			case g.reachesTop(p):
				sb.WriteByte(glyphFull)
			default:
				sb.WriteByte(glyphOpen)
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Dump writes a debugging view of the grid to w: the 0/1 open matrix,
// the root of the virtual top, then the top-structure root of every site.
// Sites sharing a root are connected.
func (g *Grid) Dump(w io.Writer) error {
	var sb strings.Builder
	for row := 1; row <= g.n; row++ {
		for col := 1; col <= g.n; col++ {
			v := 0
			if g.open[g.index(row, col)] {
				v = 1
			}
			fmt.Fprintf(&sb, "%3d ", v)
		}
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')

	root, _ := g.top.Find(g.virtual())
	fmt.Fprintf(&sb, "virtual top: %3d\n", root)
	for row := 1; row <= g.n; row++ {
		for col := 1; col <= g.n; col++ {
			r, _ := g.top.Find(g.index(row, col))
			fmt.Fprintf(&sb, "%3d ", r)
		}
		sb.WriteByte('\n')
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
