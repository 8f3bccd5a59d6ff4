// SPDX-License-Identifier: MIT
// Package: percolation/unionfind
//
// unionfind.go — disjoint-set forest over the dense universe [0, n).
//
// Canonical model:
//   - parent[i] == i marks a root; size[r] counts the elements under root r.
//   - Union links the root of the smaller tree under the larger (union by
//     size); equal sizes attach q's root under p's root.
//   - Find walks to the root with path halving: every visited node is
//     re-pointed at its grandparent.
//
// Contract:
//   - n ≥ 1 (else ErrInvalidSize).
//   - Every element argument in [0, n) (else ErrIndexOutOfRange).
//   - Failed calls leave the partition untouched.
//
// Complexity:
//   - O(α(n)) amortized per Find/Union; O(1) for Count/Len.
//
// Determinism:
//   - No randomness; the same call sequence always yields the same roots.
//
// AI-Hints:
//   - Callers that validate indices themselves may discard the error results
//     (percolation.Grid does exactly that).

package unionfind

import "fmt"

// Method tags used when wrapping sentinel errors.
const (
	methodNew       = "New"
	methodFind      = "Find"
	methodUnion     = "Union"
	methodConnected = "Connected"
	methodSize      = "Size"
)

// New returns a UnionFind of n singleton sets {0}, {1}, ..., {n-1}.
// Returns ErrInvalidSize if n ≤ 0.
// Complexity: O(n) time and memory.
func New(n int) (*UnionFind, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodNew, n, ErrInvalidSize)
	}
	parent := make([]int, n)
	size := make([]int, n)
	for i := range parent {
		parent[i] = i
		size[i] = 1
	}

	return &UnionFind{parent: parent, size: size, count: n}, nil
}

// Len returns the number of elements in the universe.
func (uf *UnionFind) Len() int {
	return len(uf.parent)
}

// Count returns the number of disjoint sets.
func (uf *UnionFind) Count() int {
	return uf.count
}

// Find returns the root of the set containing p.
// Two elements share a root iff they are in the same set.
// Complexity: O(α(n)) amortized.
func (uf *UnionFind) Find(p int) (int, error) {
	if err := uf.validate(methodFind, p); err != nil {
		return 0, err
	}

	return uf.find(p), nil
}

// Union merges the sets containing p and q and reports whether a merge
// happened (false when they were already connected).
// The root of the smaller tree is linked under the larger; on ties q's root
// goes under p's root.
// Complexity: O(α(n)) amortized.
func (uf *UnionFind) Union(p, q int) (bool, error) {
	if err := uf.validate(methodUnion, p); err != nil {
		return false, err
	}
	if err := uf.validate(methodUnion, q); err != nil {
		return false, err
	}

	return uf.union(p, q), nil
}

// Connected reports whether p and q are in the same set.
func (uf *UnionFind) Connected(p, q int) (bool, error) {
	if err := uf.validate(methodConnected, p); err != nil {
		return false, err
	}
	if err := uf.validate(methodConnected, q); err != nil {
		return false, err
	}

	return uf.find(p) == uf.find(q), nil
}

// Size returns the number of elements in the set containing p.
func (uf *UnionFind) Size(p int) (int, error) {
	if err := uf.validate(methodSize, p); err != nil {
		return 0, err
	}

	return uf.size[uf.find(p)], nil
}

// find is Find without bounds checking; callers guarantee 0 ≤ p < Len().
func (uf *UnionFind) find(p int) int {
	for uf.parent[p] != p {
		// Path halving: point p at its grandparent while walking up.
		uf.parent[p] = uf.parent[uf.parent[p]]
		p = uf.parent[p]
	}

	return p
}

// union is Union without bounds checking.
func (uf *UnionFind) union(p, q int) bool {
	rootP, rootQ := uf.find(p), uf.find(q)
	if rootP == rootQ {
		// Already in the same set; no action needed.
		return false
	}
	// Attach smaller-size tree under larger-size root.
	if uf.size[rootP] < uf.size[rootQ] {
		uf.parent[rootP] = rootQ
		uf.size[rootQ] += uf.size[rootP]
	} else {
		uf.parent[rootQ] = rootP
		uf.size[rootP] += uf.size[rootQ]
	}
	uf.count--

	return true
}

func (uf *UnionFind) validate(method string, p int) error {
	if p < 0 || p >= len(uf.parent) {
		return fmt.Errorf("%s: p=%d not in [0,%d): %w", method, p, len(uf.parent), ErrIndexOutOfRange)
	}

	return nil
}
