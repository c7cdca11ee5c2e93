package plot

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"

	"github.com/samuelfneumann/sc2learn/experiment/trackers"
)

const margin = 50.0

var colours = []color.Color{
	color.RGBA{R: 0x2e, G: 0x8b, B: 0x57, A: 0xff}, // win
	color.RGBA{R: 0xcd, G: 0x37, B: 0x37, A: 0xff}, // loss
	color.RGBA{R: 0x46, G: 0x68, B: 0xb4, A: 0xff}, // draw
}

// PNG renders a static line chart of outcome percentages against
// episode number to a PNG file
type PNG struct {
	Filename      string
	Width, Height int
}

// NewPNG returns a new PNG renderer writing to filename
func NewPNG(filename string) *PNG {
	return &PNG{Filename: filename, Width: 800, Height: 500}
}

// Render draws the chart and saves it, replacing any previous chart
func (p *PNG) Render(records []trackers.Record) error {
	if p.Width <= 2*margin || p.Height <= 2*margin {
		return fmt.Errorf("render: chart of %dx%d pixels is too small",
			p.Width, p.Height)
	}

	w, h := float64(p.Width), float64(p.Height)
	dc := gg.NewContext(p.Width, p.Height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	// Axes and gridlines every 25%
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(1)
	dc.DrawLine(margin, margin, margin, h-margin)
	dc.DrawLine(margin, h-margin, w-margin, h-margin)
	dc.Stroke()
	for pct := 0.0; pct <= 100; pct += 25 {
		y := toY(pct, h)
		dc.DrawStringAnchored(fmt.Sprintf("%.0f", pct), margin-5, y, 1, 0.5)
		dc.SetRGBA(0, 0, 0, 0.15)
		dc.DrawLine(margin, y, w-margin, y)
		dc.Stroke()
		dc.SetRGB(0, 0, 0)
	}
	dc.DrawStringAnchored("episode", w/2, h-margin/2, 0.5, 0.5)

	if len(records) > 0 {
		last := records[len(records)-1].Episode
		dc.DrawStringAnchored(fmt.Sprint(last), w-margin, h-margin+5, 0.5, 1)
	}

	for i, s := range Percentages(records) {
		dc.SetColor(colours[i])
		dc.SetLineWidth(2)
		for j, v := range s.Values {
			x := toX(j, len(s.Values), w)
			if j == 0 {
				dc.MoveTo(x, toY(v, h))
			} else {
				dc.LineTo(x, toY(v, h))
			}
		}
		dc.Stroke()

		// Legend
		ly := margin/2 + float64(i)*12
		dc.DrawLine(w-margin-90, ly, w-margin-70, ly)
		dc.Stroke()
		dc.DrawStringAnchored(s.Name, w-margin-65, ly, 0, 0.5)
	}

	if err := os.MkdirAll(filepath.Dir(p.Filename), 0o755); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err := dc.SavePNG(p.Filename); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

// toX converts the index of an episode into a horizontal pixel
// coordinate
func toX(i, n int, width float64) float64 {
	if n <= 1 {
		return margin
	}
	return margin + float64(i)/float64(n-1)*(width-2*margin)
}

// toY converts a percentage into a vertical pixel coordinate
func toY(pct, height float64) float64 {
	return height - margin - pct/100*(height-2*margin)
}
