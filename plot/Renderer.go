// Package plot renders charts of the running outcome percentages of an
// experiment
package plot

import (
	"fmt"

	"github.com/samuelfneumann/sc2learn/experiment/trackers"
)

// Renderer renders a chart of outcome Records
type Renderer interface {
	Render(records []trackers.Record) error
}

// Series is one line of a chart
type Series struct {
	Name   string
	Values []float64
}

// Percentages splits records into the win, loss, and draw percentage
// series, in that order
func Percentages(records []trackers.Record) []Series {
	win := make([]float64, len(records))
	loss := make([]float64, len(records))
	draw := make([]float64, len(records))

	for i, r := range records {
		win[i] = r.WinPct
		loss[i] = r.LossPct
		draw[i] = r.DrawPct
	}

	return []Series{
		{Name: "Win %", Values: win},
		{Name: "Loss %", Values: loss},
		{Name: "Draw %", Values: draw},
	}
}

// episodes returns the episode numbers of records as axis labels
func episodes(records []trackers.Record) []string {
	labels := make([]string, len(records))
	for i, r := range records {
		labels[i] = fmt.Sprint(r.Episode)
	}
	return labels
}
