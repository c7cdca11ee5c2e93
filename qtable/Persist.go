package qtable

import (
	"compress/gzip"
	"encoding/gob"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// snapshot is the on-disk form of a Table
type snapshot struct {
	NumActions int
	Rows       map[string][]float64
}

// Save writes the Table to filename as a gzip-compressed gob. The file
// is written to a temporary file first and renamed into place so that
// an interrupted save never leaves a truncated snapshot.
func (t *Table) Save(filename string) error {
	if dir := filepath.Dir(filename); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("save: %w", err)
		}
	}

	tmp, err := os.CreateTemp(filepath.Dir(filename), ".qtable-*")
	if err != nil {
		return fmt.Errorf("save: %w", err)
	}
	defer os.Remove(tmp.Name())

	zw := gzip.NewWriter(tmp)
	en := gob.NewEncoder(zw)
	if err := en.Encode(snapshot{t.numActions, t.rows}); err != nil {
		tmp.Close()
		return fmt.Errorf("save: could not encode table: %w", err)
	}
	if err := zw.Close(); err != nil {
		tmp.Close()
		return fmt.Errorf("save: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("save: %w", err)
	}

	if err := os.Rename(tmp.Name(), filename); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	return nil
}

// Load reads a Table saved with Save. If filename does not exist, a new
// empty Table over numActions actions is returned. It is an error for
// the saved Table to have a different number of actions.
func Load(filename string, numActions int) (*Table, error) {
	file, err := os.Open(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return New(numActions), nil
	} else if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	defer file.Close()

	zr, err := gzip.NewReader(file)
	if err != nil {
		return nil, fmt.Errorf("load: %v: %w", filename, err)
	}
	defer zr.Close()

	var s snapshot
	if err := gob.NewDecoder(zr).Decode(&s); err != nil {
		return nil, fmt.Errorf("load: could not decode %v: %w", filename, err)
	}

	if s.NumActions != numActions {
		return nil, fmt.Errorf("load: %v has %d actions, want %d", filename,
			s.NumActions, numActions)
	}

	t := New(numActions)
	for k, row := range s.Rows {
		if len(row) != numActions {
			return nil, fmt.Errorf("load: row %v has %d actions, want %d", k,
				len(row), numActions)
		}
		t.rows[k] = row
	}
	return t, nil
}
