package trackers

import (
	"fmt"

	"github.com/google/uuid"

	ts "github.com/samuelfneumann/sc2learn/timestep"
	"github.com/samuelfneumann/sc2learn/utils/floatutils"
)

// Record is the running outcome statistics after one episode
type Record struct {
	// Run identifies the process which played the episode
	Run     uuid.UUID
	Episode int
	Steps   int
	Outcome ts.Outcome

	// Reward is the terminal reward the Outcome was classified from
	Reward float64

	// Percentages of all episodes so far, rounded to two decimal places
	WinPct  float64
	LossPct float64
	DrawPct float64
}

// Outcome tracks the win, loss, and draw percentages over every episode
// played, including those of earlier runs saved to the same file.
//
// Episodes with an unknown outcome count towards the total number of
// episodes only.
type Outcome struct {
	run      uuid.UUID
	filename string
	records  []Record

	wins, losses, draws int
}

// NewOutcome returns a new Outcome tracker recording episodes of run.
// The history saved at filename, if any, is loaded so that counts
// continue from where the previous run stopped.
func NewOutcome(filename string, run uuid.UUID) (*Outcome, error) {
	records, err := LoadRecords(filename)
	if err != nil {
		return nil, fmt.Errorf("newOutcome: %w", err)
	}

	o := &Outcome{run: run, filename: filename, records: records}
	for _, r := range records {
		o.count(r.Outcome)
	}
	return o, nil
}

func (o *Outcome) count(outcome ts.Outcome) {
	switch outcome {
	case ts.Win:
		o.wins++
	case ts.Loss:
		o.losses++
	case ts.Draw:
		o.draws++
	}
}

// Track appends a Record if t is the last step of an episode
func (o *Outcome) Track(t ts.TimeStep) {
	if !t.Last() {
		return
	}

	outcome := t.Outcome()
	o.count(outcome)
	total := float64(len(o.records) + 1)

	percent := func(n int) float64 {
		return floatutils.Round(float64(n)/total*100, 2)
	}

	o.records = append(o.records, Record{
		Run:     o.run,
		Episode: len(o.records) + 1,
		Steps:   t.Number,
		Outcome: outcome,
		Reward:  t.Reward,
		WinPct:  percent(o.wins),
		LossPct: percent(o.losses),
		DrawPct: percent(o.draws),
	})
}

// Records returns every Record tracked so far, oldest first
func (o *Outcome) Records() []Record {
	records := make([]Record, len(o.records))
	copy(records, o.records)
	return records
}

// Last returns the most recent Record and whether any Record exists
func (o *Outcome) Last() (Record, bool) {
	if len(o.records) == 0 {
		return Record{}, false
	}
	return o.records[len(o.records)-1], true
}

// Save saves every Record to disk
func (o *Outcome) Save() error {
	if err := save(o.filename, o.records); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	return nil
}

// LoadRecords loads the Records saved by an Outcome tracker. A missing
// file holds no Records.
func LoadRecords(filename string) ([]Record, error) {
	var records []Record
	if _, err := load(filename, &records); err != nil {
		return nil, fmt.Errorf("loadRecords: %w", err)
	}
	return records, nil
}
