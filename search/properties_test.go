package search_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlpath/core"
	_ "github.com/katalvlaran/lvlpath/fls"
	"github.com/katalvlaran/lvlpath/search"
	"github.com/katalvlaran/lvlpath/verify"
	_ "github.com/katalvlaran/lvlpath/yen"
)

var algorithms = []string{"yen", "fls"}

func lookup(t *testing.T, name string) search.Func {
	t.Helper()
	fn, err := search.Lookup(name)
	require.NoError(t, err)

	return fn
}

// TestProperty_FoundPathsVerify runs both algorithms over seeded random graphs
// and checks every returned path against the verifier.
func TestProperty_FoundPathsVerify(t *testing.T) {
	const n = 24
	rng := rand.New(rand.NewSource(79544948))
	g, err := core.New(n)
	require.NoError(t, err)

	found := map[string]int{}
	for round := 0; round < 12; round++ {
		g.Clear()
		require.NoError(t, g.FillUndirected(0.08+0.02*float64(round%4), rng))
		for trial := 0; trial < 6; trial++ {
			s, e := rng.Intn(n), rng.Intn(n)
			length := 1 + rng.Intn(9)
			for _, name := range algorithms {
				res, err := lookup(t, name)(g, s, e, length, search.WithMaxSteps(200_000))
				if err != nil {
					require.ErrorIs(t, err, search.ErrBudgetExceeded, "%s", name)
					continue
				}
				if !res.Found {
					assert.Nil(t, res.Path)
					continue
				}
				found[name]++
				require.NoError(t, verify.Path(g, res.Path, s, e, length),
					"%s round=%d s=%d e=%d L=%d", name, round, s, e, length)
			}
		}
	}
	t.Logf("found per algorithm: %v", found)
}

func TestProperty_ProvablyAbsent(t *testing.T) {
	g, err := core.New(5)
	require.NoError(t, err)
	require.NoError(t, g.FillUndirected(1, nil))
	for _, name := range algorithms {
		run := lookup(t, name)

		res, err := run(g, 0, 4, 6)
		require.NoError(t, err)
		assert.False(t, res.Found, "%s: L > n", name)

		res, err = run(g, 0, 4, 1)
		require.NoError(t, err)
		assert.False(t, res.Found, "%s: L=1 with s!=e", name)

		res, err = run(g, 3, 3, 1)
		require.NoError(t, err)
		assert.Equal(t, []int{3}, res.Path, "%s: L=1 with s==e", name)
	}
}

func TestProperty_CompleteGraphExistence(t *testing.T) {
	for n := 2; n <= 7; n++ {
		g, err := core.New(n)
		require.NoError(t, err)
		require.NoError(t, g.FillUndirected(1, nil))
		for _, name := range algorithms {
			run := lookup(t, name)
			for length := 2; length <= n; length++ {
				res, err := run(g, 0, n-1, length)
				require.NoError(t, err)
				require.True(t, res.Found, "%s n=%d L=%d", name, n, length)
				assert.NoError(t, verify.Path(g, res.Path, 0, n-1, length))
			}
		}
	}
}

// TestProperty_CompleteGraphBeyondCap pins the bounded answer of deviation
// search: on K_10 every shorter 0→9 path must be generated before one with 10
// vertices, far more than the default candidate cap. yen must say "capped",
// never return a wrong path; fls still finds one.
func TestProperty_CompleteGraphBeyondCap(t *testing.T) {
	const n = 10
	g, err := core.New(n)
	require.NoError(t, err)
	require.NoError(t, g.FillUndirected(1, nil))

	res, err := lookup(t, "yen")(g, 0, n-1, n)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.True(t, res.Capped)
	assert.Nil(t, res.Path)

	res, err = lookup(t, "fls")(g, 0, n-1, n)
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.False(t, res.Capped)
	assert.NoError(t, verify.Path(g, res.Path, 0, n-1, n))
}

func TestProperty_Deterministic(t *testing.T) {
	g, err := core.New(40)
	require.NoError(t, err)
	require.NoError(t, g.FillUndirected(0.15, rand.New(rand.NewSource(7))))
	for _, name := range algorithms {
		run := lookup(t, name)
		for length := 2; length <= 6; length++ {
			a, errA := run(g, 0, 1, length)
			b, errB := run(g, 0, 1, length)
			require.NoError(t, errA)
			require.NoError(t, errB)
			assert.Equal(t, a, b, "%s L=%d", name, length)
		}
	}
}

// TestProperty_Divergence records outcomes where the strategies disagree.
// Disagreement is allowed: the cap bounds yen, the step budget bounds fls.
func TestProperty_Divergence(t *testing.T) {
	g, err := core.New(30)
	require.NoError(t, err)
	require.NoError(t, g.FillUndirected(0.3, rand.New(rand.NewSource(11))))

	diverged := 0
	for length := 2; length <= 14; length++ {
		y, errY := lookup(t, "yen")(g, 0, 1, length, search.WithMaxCandidates(64))
		f, errF := lookup(t, "fls")(g, 0, 1, length, search.WithMaxSteps(100_000))
		if errY != nil || errF != nil || y.Found != f.Found {
			diverged++
		}
	}
	t.Logf("diverged on %d of 13 lengths", diverged)
}
