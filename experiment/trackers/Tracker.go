// Package trackers implements Trackers, which track and save data in an
// experiment
package trackers

import (
	"compress/gzip"
	"encoding/gob"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	ts "github.com/samuelfneumann/sc2learn/timestep"
)

// Interface Tracker keeps track of experiment data and saves the data
// to disk when asked to
type Tracker interface {
	Track(t ts.TimeStep)
	Save() error
}

// save writes data to filename as a gzip-compressed gob
func save(filename string, data interface{}) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return err
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("could not open save file: %w", err)
	}
	defer file.Close()

	zw := gzip.NewWriter(file)
	if err := gob.NewEncoder(zw).Encode(data); err != nil {
		return fmt.Errorf("could not encode data: %w", err)
	}
	if err := zw.Close(); err != nil {
		return err
	}
	return file.Close()
}

// load reads data saved with save into data. It returns false if
// filename does not exist.
func load(filename string, data interface{}) (bool, error) {
	file, err := os.Open(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	} else if err != nil {
		return false, fmt.Errorf("could not open data file: %w", err)
	}
	defer file.Close()

	zr, err := gzip.NewReader(file)
	if err != nil {
		return false, fmt.Errorf("%v: %w", filename, err)
	}
	defer zr.Close()

	if err := gob.NewDecoder(zr).Decode(data); err != nil {
		return false, fmt.Errorf("could not decode data: %w", err)
	}
	return true, nil
}
