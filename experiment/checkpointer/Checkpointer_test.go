package checkpointer

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/samuelfneumann/sc2learn/environment/sc2"
	"github.com/samuelfneumann/sc2learn/qtable"
	"github.com/samuelfneumann/sc2learn/state"
	ts "github.com/samuelfneumann/sc2learn/timestep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// saves records the filenames it was saved to
type saves struct {
	names []string
	err   error
}

func (s *saves) Save(filename string) error {
	s.names = append(s.names, filename)
	return s.err
}

func mid(n int) ts.TimeStep {
	return ts.New(ts.Mid, 0, sc2.Observation{}, n)
}

func last(n int) ts.TimeStep {
	return ts.New(ts.Last, 1, sc2.Observation{}, n)
}

func TestFilenameEnumerator(t *testing.T) {
	next := FilenameEnumerator(2, "backups", "table", ".gob.gz")

	assert.Equal(t, filepath.Join("backups", "table-0003.gob.gz"), next())
	assert.Equal(t, filepath.Join("backups", "table-0004.gob.gz"), next())
}

func TestEpisodeEnd(t *testing.T) {
	s := &saves{}
	c := NewEpisodeEnd(s, "table.gob.gz")

	require.NoError(t, c.Checkpoint(ts.New(ts.First, 0, sc2.Observation{}, 0)))
	require.NoError(t, c.Checkpoint(mid(1)))
	assert.Empty(t, s.names)

	require.NoError(t, c.Checkpoint(last(2)))
	require.NoError(t, c.Checkpoint(last(7)))
	assert.Equal(t, []string{"table.gob.gz", "table.gob.gz"}, s.names)

	s.err = errors.New("disk full")
	assert.Error(t, c.Checkpoint(last(3)))
}

func TestNStep(t *testing.T) {
	_, err := NewNStep(0, &saves{}, nil)
	assert.Error(t, err)

	s := &saves{}
	c, err := NewNStep(2, s, FilenameEnumerator(0, "", "table", ".bin"))
	require.NoError(t, err)

	for episode := 0; episode < 5; episode++ {
		require.NoError(t, c.Checkpoint(mid(1)))
		require.NoError(t, c.Checkpoint(last(2)))
	}
	assert.Equal(t, []string{"table-0001.bin", "table-0002.bin"}, s.names)
}

func TestEpisodeEndTable(t *testing.T) {
	table := qtable.New(4)
	table.Set(state.Key{1}, 2, 0.5)

	filename := filepath.Join(t.TempDir(), "table.gob.gz")
	c := NewEpisodeEnd(table, filename)
	require.NoError(t, c.Checkpoint(last(10)))

	loaded, err := qtable.Load(filename, 4)
	require.NoError(t, err)
	assert.Equal(t, 0.5, loaded.At(state.Key{1}, 2))
}
