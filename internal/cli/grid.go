package cli

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/percolation/percolation"
)

func (a *app) gridCommand() *cobra.Command {
	var (
		opens   []string
		queries []string
		dump    bool
	)
	cmd := &cobra.Command{
		Use:   "grid N",
		Short: "Open sites on an N×N grid and print its state",
		Example: "  percolation grid 5 --open 1,4 --open 1,3 --open 4,4 --open 3,4 \\\n" +
			"      --open 5,4 --open 2,4 --open 5,1 --query 5,1 --dump",
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parsePositive("N", args[0])
			if err != nil {
				return err
			}
			g, err := percolation.New(n)
			if err != nil {
				return err
			}
			for _, raw := range opens {
				s, err := ParseSite(raw)
				if err != nil {
					return err
				}
				if err = g.Open(s.Row, s.Col); err != nil {
					return err
				}
				a.logger.Debug("opened", slog.String("site", s.String()), slog.Bool("percolates", g.Percolates()))
			}

			fmt.Fprint(a.out, g)
			fmt.Fprintf(a.out, "open sites: %d\n", g.NumberOfOpenSites())
			fmt.Fprintf(a.out, "percolates: %t\n", g.Percolates())
			for _, raw := range queries {
				s, err := ParseSite(raw)
				if err != nil {
					return err
				}
				open, err := g.IsOpen(s.Row, s.Col)
				if err != nil {
					return err
				}
				full, err := g.IsFull(s.Row, s.Col)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "site %v: open=%t full=%t\n", s, open, full)
			}
			if dump {
				fmt.Fprintln(a.out)
				return g.Dump(a.out)
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&opens, "open", "o", nil, "site to open as row,col (repeatable, applied in order)")
	cmd.Flags().StringArrayVarP(&queries, "query", "q", nil, "site to report as row,col (repeatable)")
	cmd.Flags().BoolVar(&dump, "dump", false, "print the open matrix and union-find roots")

	return cmd
}

// ParseSite parses "row,col" into a Site. Range checks are left to the grid.
func ParseSite(s string) (percolation.Site, error) {
	rs, cs, ok := strings.Cut(s, ",")
	if !ok {
		return percolation.Site{}, usageError(fmt.Errorf("site %q: want row,col", s))
	}
	row, err := strconv.Atoi(strings.TrimSpace(rs))
	if err != nil {
		return percolation.Site{}, usageError(fmt.Errorf("site %q: bad row: %w", s, err))
	}
	col, err := strconv.Atoi(strings.TrimSpace(cs))
	if err != nil {
		return percolation.Site{}, usageError(fmt.Errorf("site %q: bad col: %w", s, err))
	}
	return percolation.Site{Row: row, Col: col}, nil
}
