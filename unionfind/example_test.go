package unionfind_test

import (
	"fmt"

	"github.com/katalvlaran/percolation/unionfind"
)

// ExampleUnionFind demonstrates merging sets and querying connectivity.
//
//	0─1─2   3   4─5
func ExampleUnionFind() {
	uf, _ := unionfind.New(6)
	_, _ = uf.Union(0, 1)
	_, _ = uf.Union(1, 2)
	_, _ = uf.Union(4, 5)

	c02, _ := uf.Connected(0, 2)
	c23, _ := uf.Connected(2, 3)
	size, _ := uf.Size(0)
	fmt.Println("sets:", uf.Count())
	fmt.Println("0~2:", c02)
	fmt.Println("2~3:", c23)
	fmt.Println("|{0}|:", size)

	// Output:
	// sets: 3
	// 0~2: true
	// 2~3: false
	// |{0}|: 3
}
