// Package percolation models site percolation on an n×n grid.
//
// What:
//
//   - Grid holds the open/closed state of n² sites addressed by 1-based (row, col).
//   - Open is incremental: each call unions the new site with its open
//     neighbours and with a virtual boundary node.
//   - Percolates reports whether some chain of open, adjacent sites spans
//     from the top row to the bottom row.
//
// Backwash:
//
//	A single union-find holding both a virtual top and a virtual bottom
//	node wrongly reports bottom-row sites as full once the grid percolates:
//	they reach the top through the virtual bottom. Grid therefore keeps two
//	independent structures:
//
//	  top    — sites + virtual top    (answers IsFull)
//	  bottom — sites + virtual bottom (answers "reaches the bottom")
//
//	A site that is connected in both at the moment it is opened makes the
//	grid percolate. The flag is sticky.
//
// Complexity:
//
//   - New:                      O(n²) time and memory.
//   - Open/IsFull:              O(α(n²)) amortized.
//   - IsOpen/Percolates/counts: O(1).
//   - Clusters/String/Dump:     O(n²).
//
// Errors:
//
//   - ErrInvalidSize: n outside [1, MaxSize] passed to New.
//   - ErrOutOfRange:  row or col outside [1, n].
//
// Both wrap ErrInvalidArgument.
//
// A Grid is owned by a single goroutine; it is not safe for concurrent use.
package percolation
