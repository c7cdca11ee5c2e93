package checkpointer

import ts "github.com/samuelfneumann/sc2learn/timestep"

// episodeEnd implements checkpointing to the same file at the end of
// every episode
type episodeEnd struct {
	object   Serializable
	filename string
}

// NewEpisodeEnd returns a checkpointer that saves object to filename
// whenever an episode ends, overwriting the previous checkpoint
func NewEpisodeEnd(object Serializable, filename string) Checkpointer {
	return &episodeEnd{object: object, filename: filename}
}

// Checkpoint saves the tracked object if t is the last step of an
// episode
func (e *episodeEnd) Checkpoint(t ts.TimeStep) error {
	if t.Last() {
		return e.object.Save(e.filename)
	}
	return nil
}
