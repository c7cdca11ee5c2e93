// Package progressbar implements functionality of printing a progress
// bar to the terminal window
package progressbar

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// ManualProgressBar implement progress bar functionality that must
// be manually managed. That is, the Display() function must be called
// whenever an updated progress bar should be printed.
//
// ManualProgressBar does not use concurrency.
type ManualProgressBar struct {
	out             io.Writer
	width           int
	maxProgress     int
	currentProgress int
	status          string
	bar             strings.Builder
	startTime       time.Time
}

// NewManualProgressBar returns a new ManualProgressBar of the given
// width in characters, which is full after max calls to Increment
func NewManualProgressBar(out io.Writer, width, max int) *ManualProgressBar {
	return &ManualProgressBar{
		out:         out,
		width:       width,
		maxProgress: max,
		startTime:   time.Now(),
	}
}

// Increment increments the interal progress counter. Each time an
// iteration is performed, Increment should be called.
func (p *ManualProgressBar) Increment() {
	if p.currentProgress < p.maxProgress {
		p.currentProgress++
	}
}

// SetStatus sets a short status shown after the bar
func (p *ManualProgressBar) SetStatus(status string) {
	p.status = status
}

// Fraction returns the completed fraction of the bar
func (p *ManualProgressBar) Fraction() float64 {
	if p.maxProgress <= 0 {
		return 1
	}
	return float64(p.currentProgress) / float64(p.maxProgress)
}

// String returns the current progress bar without the elapsed time
func (p *ManualProgressBar) String() string {
	p.bar.Reset()
	p.bar.WriteString("|")

	filled := int(p.Fraction() * float64(p.width))
	p.bar.WriteString(strings.Repeat("█", filled))
	p.bar.WriteString(strings.Repeat(" ", p.width-filled))

	fmt.Fprintf(&p.bar, "| [%d/%d %.2f%%]", p.currentProgress,
		p.maxProgress, p.Fraction()*100)
	if p.status != "" {
		fmt.Fprintf(&p.bar, " %v", p.status)
	}
	return p.bar.String()
}

// Display redraws the progress bar over the current terminal line
func (p *ManualProgressBar) Display() {
	fmt.Fprintf(p.out, "\r\033[K%v [elapsed: %v]", p.String(),
		time.Since(p.startTime).Truncate(time.Second))
}
