package trackers

import (
	"fmt"

	"github.com/samuelfneumann/sc2learn/timestep"
)

// EpisodeLength tracks and saves the lengths of episodes in an
// experiment.
// Note that an episode must finish for this Tracker to save its data.
// If the last episode in an experiment does not finish, that episode's
// length will not be saved.
type EpisodeLength struct {
	episodeLengths []int
	filename       string
}

// NewEpisodeLength returns a new EpisodeLength tracker which will save
// its data at the specified location filename
func NewEpisodeLength(filename string) *EpisodeLength {
	return &EpisodeLength{filename: filename}
}

// Track caches the episode length if the timestep passed to it is the
// last timestep in the episode
func (e *EpisodeLength) Track(t timestep.TimeStep) {
	if t.Last() {
		e.episodeLengths = append(e.episodeLengths, t.Number)
	}
}

// Lengths returns the tracked episode lengths
func (e *EpisodeLength) Lengths() []int {
	lengths := make([]int, len(e.episodeLengths))
	copy(lengths, e.episodeLengths)
	return lengths
}

// Save saves the data tracked by the EpisodeLength Tracker to disk.
func (e *EpisodeLength) Save() error {
	if err := save(e.filename, e.episodeLengths); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	return nil
}

// LoadEpisodeLengths loads the episode lengths saved by an EpisodeLength
// Tracker. A missing file holds no episodes.
func LoadEpisodeLengths(filename string) ([]int, error) {
	var lengths []int
	if _, err := load(filename, &lengths); err != nil {
		return nil, fmt.Errorf("loadEpisodeLengths: %w", err)
	}
	return lengths, nil
}
