// Package unionfind provides a disjoint-set (union-find) structure over the
// dense integer universe [0, n).
//
// What:
//
//   - UnionFind tracks a partition of n elements into disjoint sets.
//   - Union merges two sets; Find returns the canonical root of a set.
//   - Connected, Count and Size answer partition queries.
//
// Why:
//
//   - Incremental connectivity: percolation grids, Kruskal MST, image labelling.
//   - Answers "are a and b connected?" without rescanning the structure.
//
// Complexity:
//
//   - New:               O(n) time, O(n) memory.
//   - Find/Union/Size:   O(α(n)) amortized (union by size + path halving).
//   - Count/Len:         O(1).
//
// Errors:
//
//   - ErrInvalidSize:     n ≤ 0 passed to New.
//   - ErrIndexOutOfRange: element outside [0, n).
//
// UnionFind is not safe for concurrent use; give each goroutine its own.
package unionfind
