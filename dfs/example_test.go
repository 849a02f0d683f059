package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/slink/core"
	"github.com/katalvlaran/slink/dfs"
)

// ExampleDFS shows post-order on a diamond with a tail:
//
//	  0
//	 / \
//	1   2
//	 \ /
//	  3
//	 / \
//	4   5
func ExampleDFS() {
	g, _ := core.NewGraph(6)
	for _, p := range [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}, {3, 4}, {3, 5}} {
		_ = g.AddEdge(p[0], p[1], 1)
	}

	res, err := dfs.DFS(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	fmt.Println(res.PathTo(5))
	// Output:
	// [2 4 5 3 1 0]
	// [0 1 3 5]
}

// ExampleIsSpanningTree checks the edge set of a minimum spanning tree.
func ExampleIsSpanningTree() {
	mst := []core.Edge{
		core.NewEdge(0, 1, 1),
		core.NewEdge(1, 2, 2),
		core.NewEdge(2, 3, 3),
	}
	g, _ := core.FromEdges(4, mst)
	ok, _ := dfs.IsSpanningTree(g)
	fmt.Println(ok)

	_ = g.AddEdge(3, 0, 4)
	cyclic, _ := dfs.HasCycle(g)
	fmt.Println(cyclic)
	// Output:
	// true
	// true
}
