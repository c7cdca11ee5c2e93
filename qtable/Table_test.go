package qtable

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/samuelfneumann/sc2learn/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	a = state.Key{1}
	b = state.Key{1, 1}
)

func TestLazyRows(t *testing.T) {
	table := New(4)
	table.Set(a, 2, 0.5)

	assert.False(t, table.Has(b))
	assert.Equal(t, []float64{0, 0, 0, 0}, table.Row(b))
	assert.True(t, table.Has(b))
	assert.Equal(t, 2, table.Len())

	// Creating b did not touch a
	assert.Equal(t, []float64{0, 0, 0.5, 0}, table.Row(a))
}

func TestRowIsCopy(t *testing.T) {
	table := New(3)
	row := table.Row(a)
	row[0] = 10

	assert.Equal(t, 0.0, table.At(a, 0))
}

func TestBestActions(t *testing.T) {
	table := New(4)
	table.Set(a, 0, 1)
	table.Set(a, 1, 1)
	table.Set(a, 2, -1)

	assert.Equal(t, []int{0, 1}, table.BestActions(a, nil))
	assert.Equal(t, []int{1}, table.BestActions(a, []int{0}))
	assert.Equal(t, []int{3}, table.BestActions(a, []int{0, 1}))
	assert.Equal(t, []int{2}, table.BestActions(a, []int{0, 1, 3}))

	// Everything excluded falls back to the full catalog
	assert.Equal(t, []int{0, 1, 2, 3}, table.BestActions(a, []int{0, 1, 2, 3}))
}

func TestMax(t *testing.T) {
	table := New(3)
	assert.Equal(t, 0.0, table.Max(b))

	table.Set(b, 1, 0.75)
	assert.Equal(t, 0.75, table.Max(b))
}

func TestSetOutOfRange(t *testing.T) {
	table := New(3)
	assert.Panics(t, func() { table.Set(a, 3, 1) })
	assert.Panics(t, func() { table.At(a, -1) })
}

func TestSaveLoad(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "data", "q_table.gz")

	table := New(4)
	table.Set(a, 0, 0.1)
	table.Set(b, 3, -0.25)
	require.NoError(t, table.Save(filename))

	loaded, err := Load(filename, 4)
	require.NoError(t, err)
	assert.Equal(t, table.Len(), loaded.Len())
	assert.Equal(t, table.Row(a), loaded.Row(a))
	assert.Equal(t, table.Row(b), loaded.Row(b))

	_, err = Load(filename, 5)
	assert.Error(t, err)
}

func TestLoadMissing(t *testing.T) {
	table, err := Load(filepath.Join(t.TempDir(), "missing.gz"), 8)
	require.NoError(t, err)
	assert.Equal(t, 0, table.Len())
	assert.Equal(t, 8, table.NumActions())
}

func TestLoadCorrupt(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "corrupt.gz")
	require.NoError(t, os.WriteFile(filename, []byte("not a table"), 0o644))

	_, err := Load(filename, 4)
	assert.Error(t, err)
}

func BenchmarkBestActions(b *testing.B) {
	table := New(8)
	key := state.Key{1, 2, 1, 5, 0, 0, 0, 1, 1, 0, 0, 0}
	table.Set(key, 3, 0.5)

	for i := 0; i < b.N; i++ {
		table.BestActions(key, []int{1, 2})
	}
}
