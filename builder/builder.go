// SPDX-License-Identifier: MIT
//
// File: builder.go
// Role: Constructor type, BuildGraph orchestrator and sentinel errors.
// Policy:
//   - Constructors validate before touching the graph; a failed constructor
//     leaves earlier constructors' edges in place and BuildGraph returns nil.
//   - Never panic on caller input.

package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlpath/core"
)

var (
	// ErrTooFewVertices indicates a size parameter below the topology's minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrGraphTooSmall indicates the graph has fewer vertices than the constructor names.
	ErrGraphTooSmall = errors.New("builder: graph too small for topology")

	// ErrConstructFailed indicates a nil constructor was passed to BuildGraph.
	ErrConstructFailed = errors.New("builder: construction failed")
)

// Constructor adds one topology's edges to g.
type Constructor func(g *core.Graph) error

// BuildGraph creates an n-vertex graph and applies cons in order.
// Constructor errors are wrapped with "BuildGraph: %w".
func BuildGraph(n int, cons ...Constructor) (*core.Graph, error) {
	g, err := core.New(n)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// MustBuild is BuildGraph for fixtures whose arguments are known valid.
func MustBuild(n int, cons ...Constructor) *core.Graph {
	g, err := BuildGraph(n, cons...)
	if err != nil {
		panic(err)
	}

	return g
}

// checkSize checks size against minSize and the graph against need vertices.
func checkSize(g *core.Graph, method string, size, minSize, need int) error {
	if size < minSize {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, size, minSize, ErrTooFewVertices)
	}
	if g.VertexCount() < need {
		return fmt.Errorf("%s: needs %d vertices, graph has %d: %w", method, need, g.VertexCount(), ErrGraphTooSmall)
	}

	return nil
}

// link adds u–v, wrapping any error with method.
func link(g *core.Graph, method string, u, v int) error {
	if err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}

	return nil
}
