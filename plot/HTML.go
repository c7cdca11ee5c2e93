package plot

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/samuelfneumann/sc2learn/experiment/trackers"
)

// HTML renders an interactive line chart of outcome percentages against
// episode number to an HTML page
type HTML struct {
	Filename string
	Title    string
}

// NewHTML returns a new HTML renderer writing to filename
func NewHTML(filename string) *HTML {
	return &HTML{Filename: filename, Title: "Episode outcomes"}
}

// Render draws the chart and saves it, replacing any previous chart
func (h *HTML) Render(records []trackers.Record) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: h.Title,
		}),
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: h.Title,
			Theme:     "shine",
		}),
	)

	line.SetXAxis(episodes(records))
	for _, s := range Percentages(records) {
		items := make([]opts.LineData, 0, len(s.Values))
		for _, v := range s.Values {
			items = append(items, opts.LineData{Value: v})
		}
		line.AddSeries(s.Name, items)
	}

	if err := os.MkdirAll(filepath.Dir(h.Filename), 0o755); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	f, err := os.Create(h.Filename)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	defer f.Close()

	if err := line.Render(f); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return f.Close()
}
