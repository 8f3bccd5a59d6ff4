package unionfind

import "errors"

// Sentinel errors for unionfind operations.
var (
	// ErrInvalidSize indicates a non-positive element count.
	ErrInvalidSize = errors.New("unionfind: size must be positive")
	// ErrIndexOutOfRange indicates an element outside [0, n).
	ErrIndexOutOfRange = errors.New("unionfind: element index out of range")
)

// UnionFind is a weighted quick-union forest with path halving.
// parent[i] == i marks a root; size[r] is valid only for roots r.
type UnionFind struct {
	parent []int
	size   []int
	count  int
}
