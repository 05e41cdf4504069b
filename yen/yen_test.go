package yen_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlpath/builder"
	"github.com/katalvlaran/lvlpath/core"
	"github.com/katalvlaran/lvlpath/search"
	"github.com/katalvlaran/lvlpath/verify"
	"github.com/katalvlaran/lvlpath/yen"
)

func build(t testing.TB, n int, edges ...[2]int) *core.Graph {
	t.Helper()
	g, err := core.New(n)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	return g
}

func complete(t testing.TB, n int) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(n, builder.Complete(n))
	require.NoError(t, err)

	return g
}

func TestRun_Errors(t *testing.T) {
	g := build(t, 3, [2]int{0, 1})
	_, err := yen.Run(nil, 0, 1, 2)
	assert.ErrorIs(t, err, search.ErrGraphNil)
	_, err = yen.Run(g, 0, 3, 2)
	assert.ErrorIs(t, err, search.ErrVertexOutOfRange)
	_, err = yen.Run(g, -1, 1, 2)
	assert.ErrorIs(t, err, search.ErrVertexOutOfRange)
	_, err = yen.Run(g, 0, 1, 0)
	assert.ErrorIs(t, err, search.ErrInvalidLength)
	_, err = yen.Run(g, 0, 1, 2, search.WithMaxCandidates(-5))
	assert.ErrorIs(t, err, search.ErrOptionViolation)
}

// TestSearch_ChoosesByLength uses a triangle-free graph offering start→end paths
// of 2 and 4 vertices only.
func TestSearch_ChoosesByLength(t *testing.T) {
	g := build(t, 4, [2]int{0, 3}, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3})
	cases := []struct {
		length int
		want   []int
	}{
		{1, nil},
		{2, []int{0, 3}},
		{3, nil},
		{4, []int{0, 1, 2, 3}},
		{5, nil},
	}
	for _, tc := range cases {
		path, err := yen.Search(g, 0, 3, tc.length)
		require.NoError(t, err)
		assert.Equal(t, tc.want, path, "length %d", tc.length)
	}
}

func TestSearch_Trivial(t *testing.T) {
	g := build(t, 3, [2]int{0, 1})
	path, err := yen.Search(g, 2, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, path)

	path, err = yen.Search(g, 0, 1, 1)
	require.NoError(t, err)
	assert.Nil(t, path)
}

func TestSearch_Unreachable(t *testing.T) {
	g := build(t, 4, [2]int{0, 1}, [2]int{2, 3})
	res, err := yen.Run(g, 0, 3, 3)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.False(t, res.Capped)
	assert.Nil(t, res.Path)
}

// TestSearch_Detour needs a deviation below the first spur: the shortest path
// 0–1–4 must be bent into 0–1–2–3–4.
func TestSearch_Detour(t *testing.T) {
	g := build(t, 5, [2]int{0, 1}, [2]int{1, 4}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 4})
	path, err := yen.Search(g, 0, 4, 5)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, path)
	verify.MustPath(g, path, 0, 4, 5)
}

func TestSearch_CompleteGraph(t *testing.T) {
	const n = 7
	g := complete(t, n)
	for length := 1; length <= n; length++ {
		end := 1
		if length == 1 {
			end = 0
		}
		path, err := yen.Search(g, 0, end, length)
		require.NoError(t, err)
		require.NotNil(t, path, "length %d", length)
		assert.NoError(t, verify.Path(g, path, 0, end, length))
	}
}

func TestRun_Capped(t *testing.T) {
	g := complete(t, 8)
	res, err := yen.Run(g, 0, 1, 8, search.WithMaxCandidates(10))
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.True(t, res.Capped)
	assert.Positive(t, res.Steps)
}

func TestRun_StepBudget(t *testing.T) {
	g := complete(t, 8)
	_, err := yen.Run(g, 0, 1, 8, search.WithMaxSteps(50))
	assert.ErrorIs(t, err, search.ErrBudgetExceeded)
}

func TestRun_ContextCanceled(t *testing.T) {
	g := complete(t, 9)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := yen.Run(g, 0, 1, 9, search.WithContext(ctx), search.WithMaxCandidates(1<<20))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSearch_Deterministic(t *testing.T) {
	g := complete(t, 6)
	first, err := yen.Search(g, 0, 5, 5)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := yen.Search(g, 0, 5, 5)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestSearch_DoesNotMutateGraph(t *testing.T) {
	g := complete(t, 6)
	before := g.Clone()
	_, err := yen.Search(g, 0, 5, 6)
	require.NoError(t, err)
	for u := 0; u < 6; u++ {
		for v := 0; v < 6; v++ {
			require.Equal(t, before.HasEdge(u, v), g.HasEdge(u, v))
		}
	}
}

func TestRegistered(t *testing.T) {
	fn, err := search.Lookup(yen.Name)
	require.NoError(t, err)
	res, err := fn(complete(t, 4), 0, 3, 4)
	require.NoError(t, err)
	assert.True(t, res.Found)
}
