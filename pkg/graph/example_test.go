package graph_test

import (
	"fmt"

	"github.com/matzehuels/graphink/pkg/graph"
)

// Build a small directed graph and inspect its topology.
func Example() {
	g := graph.MustNew(3, true)
	_ = g.AddEdge(1, 2)
	_ = g.AddEdge(2, 3)

	fmt.Println("vertices:", g.VertexCount())
	fmt.Println("edges:", g.EdgeCount())
	fmt.Println("1->2:", g.HasEdge(1, 2))
	fmt.Println("2->1:", g.HasEdge(2, 1))
	// Output:
	// vertices: 3
	// edges: 2
	// 1->2: true
	// 2->1: false
}
