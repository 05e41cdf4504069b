// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for lvlpath/core.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion utilities for core.Graph.
//   - Enforce concurrency-safe testing patterns (no *testing.T usage inside goroutines).

package core_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlpath/core"
)

// Common sizes and seeds used across core tests (avoid magic numbers in test bodies).
const (
	NSmall  = 5
	NMedium = 70 // spans two bitset words
	NLarge  = 200

	NReaders = 32

	SeedFill int64 = 79544948
)

// MustNew builds a graph of n vertices or fails the test.
func MustNew(t *testing.T, n int) *core.Graph {
	t.Helper()

	g, err := core.New(n)
	MustNoError(t, err, "core.New")

	return g
}

// NewFilled builds an n-vertex graph filled at density p with a fixed seed.
func NewFilled(t *testing.T, n int, p float64, seed int64) *core.Graph {
	t.Helper()

	g := MustNew(t, n)
	MustNoError(t, g.FillUndirected(p, rand.New(rand.NewSource(seed))), "FillUndirected")

	return g
}

// MustNoError fails the test if err is non-nil.
func MustNoError(t *testing.T, err error, op string) {
	t.Helper()

	if err != nil {
		t.Fatalf("%s: unexpected error: %v", op, err)
	}
}

// MustErrorIs fails the test unless errors.Is(err, target).
func MustErrorIs(t *testing.T, err error, target error, op string) {
	t.Helper()

	if errors.Is(err, target) {
		return
	}

	t.Fatalf("%s: want errors.Is(err,%v)=true; got err=%v", op, target, err)
}

// MustSymmetric fails the test if HasEdge(u,v) != HasEdge(v,u) for any pair.
func MustSymmetric(t *testing.T, g *core.Graph) {
	t.Helper()

	n := g.VertexCount()
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if g.HasEdge(u, v) != g.HasEdge(v, u) {
				t.Fatalf("asymmetric edge relation at (%d,%d)", u, v)
			}
		}
	}
}

// CountPairs returns the number of unordered pairs {u,v}, u<v, joined by an edge.
func CountPairs(g *core.Graph) int {
	n, c := g.VertexCount(), 0
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if g.HasEdge(u, v) {
				c++
			}
		}
	}

	return c
}
