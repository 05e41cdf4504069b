package yen_test

import (
	"fmt"

	"github.com/katalvlaran/lvlpath/core"
	"github.com/katalvlaran/lvlpath/search"
	"github.com/katalvlaran/lvlpath/yen"
)

// ExampleSearch asks for every length on a graph whose only start→end routes
// have 2 and 4 vertices.
func ExampleSearch() {
	g, _ := core.New(4)
	for _, e := range [][2]int{{0, 3}, {0, 1}, {1, 2}, {2, 3}} {
		_ = g.AddEdge(e[0], e[1])
	}
	for length := 1; length <= 4; length++ {
		path, err := yen.Search(g, 0, 3, length)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("L=%d: %v\n", length, path)
	}
	// Output:
	// L=1: []
	// L=2: [0 3]
	// L=3: []
	// L=4: [0 1 2 3]
}

// ExampleRun shows the work cap: a Hamiltonian path on K8 needs every shorter
// path to be enumerated first, far more than ten candidates.
func ExampleRun() {
	g, _ := core.New(8)
	_ = g.FillUndirected(1, nil)

	res, err := yen.Run(g, 0, 1, 8, search.WithMaxCandidates(10))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("found:", res.Found, "capped:", res.Capped)
	// Output:
	// found: false capped: true
}
