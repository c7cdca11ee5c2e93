package plot

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/samuelfneumann/sc2learn/experiment/trackers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func records() []trackers.Record {
	return []trackers.Record{
		{Episode: 1, WinPct: 100},
		{Episode: 2, WinPct: 50, LossPct: 50},
		{Episode: 3, WinPct: 33.33, LossPct: 33.33, DrawPct: 33.33},
	}
}

func TestPercentages(t *testing.T) {
	s := Percentages(records())
	require.Len(t, s, 3)

	assert.Equal(t, "Win %", s[0].Name)
	assert.Equal(t, []float64{100, 50, 33.33}, s[0].Values)
	assert.Equal(t, []float64{0, 50, 33.33}, s[1].Values)
	assert.Equal(t, []float64{0, 0, 33.33}, s[2].Values)
	assert.Equal(t, []string{"1", "2", "3"}, episodes(records()))
}

func TestPNG(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "charts", "outcomes.png")
	p := NewPNG(filename)
	require.NoError(t, p.Render(records()))

	f, err := os.Open(filename)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 800, img.Bounds().Dx())
	assert.Equal(t, 500, img.Bounds().Dy())

	// Rendering without records still draws the axes
	require.NoError(t, p.Render(nil))

	p.Width = 10
	assert.Error(t, p.Render(records()))
}

func TestHTML(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "outcomes.html")
	require.NoError(t, NewHTML(filename).Render(records()))

	page, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Contains(t, string(page), "Episode outcomes")
	assert.Contains(t, string(page), "Loss")
}

func TestToY(t *testing.T) {
	assert.Equal(t, 450.0, toY(0, 500))
	assert.Equal(t, 50.0, toY(100, 500))
	assert.Equal(t, margin, toX(0, 1, 800))
	assert.Equal(t, 750.0, toX(2, 3, 800))
}
