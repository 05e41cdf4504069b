package report

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlpath/bench"
)

func sampleReport() *bench.Report {
	cfg := bench.DefaultConfig()
	cfg.MinLength, cfg.MaxLength = 1, 3

	return &bench.Report{
		RunID:      uuid.MustParse("6f1c1d7e-3a4b-4c5d-9e8f-0a1b2c3d4e5f"),
		StartedAt:  time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		FinishedAt: time.Date(2025, 3, 1, 12, 5, 0, 0, time.UTC),
		Config:     cfg,
		Rows: []bench.Row{
			{Length: 1, Stats: map[string]bench.Stat{"yen": {}, "fls": {}}},
			{Length: 2, Stats: map[string]bench.Stat{"yen": {Mean: 0.00125, Found: 3}, "fls": {Mean: 0.5, Found: 1}}},
			{Length: 3, Stats: map[string]bench.Stat{"yen": {Mean: 0.000012, Found: 10}, "fls": {Capped: 2}}},
		},
	}
}

func TestWriteTimes(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "target")
	paths, err := WriteTimes(dir, sampleReport())
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(dir, "yen_times"), filepath.Join(dir, "fls_times")}, paths)

	yen, err := os.ReadFile(paths[0])
	require.NoError(t, err)
	assert.Equal(t, "0\n0.00125\n0.000012\n", string(yen))

	fls, err := os.ReadFile(paths[1])
	require.NoError(t, err)
	assert.Equal(t, "0\n0.5\n0\n", string(fls))
}

func TestJSONRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "report.json")
	want := sampleReport()
	require.NoError(t, WriteJSON(path, want))

	got, err := ReadJSON(path)
	require.NoError(t, err)
	assert.Equal(t, want.RunID, got.RunID)
	assert.True(t, want.StartedAt.Equal(got.StartedAt))
	assert.Equal(t, want.Config, got.Config)
	assert.Equal(t, want.Rows, got.Rows)
}

func TestNilReport(t *testing.T) {
	_, err := WriteTimes(t.TempDir(), nil)
	assert.ErrorIs(t, err, ErrNilReport)
	assert.ErrorIs(t, WriteJSON(filepath.Join(t.TempDir(), "r.json"), nil), ErrNilReport)
}
