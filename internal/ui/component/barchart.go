package component

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"funding-monitor/internal/ui/style"
)

// Bar is one horizontal bar: a label, a value, and its bar color.
type Bar struct {
	Label string
	Value float64
	Color lipgloss.Color
}

// BarChart renders horizontal bars scaled to the largest absolute
// value. The funding chart wraps one of these.
type BarChart struct {
	bars       []Bar
	barWidth   int
	labelWidth int
	valueFmt   func(float64) string
}

// NewBarChart creates a new bar chart component.
func NewBarChart(labelWidth, barWidth int) *BarChart {
	return &BarChart{
		barWidth:   barWidth,
		labelWidth: labelWidth,
		valueFmt:   func(v float64) string { return fmt.Sprintf("%.2f", v) },
	}
}

// SetBars replaces all bars.
func (b *BarChart) SetBars(bars []Bar) *BarChart {
	b.bars = make([]Bar, len(bars))
	copy(b.bars, bars)
	return b
}

// SetValueFormatter sets the function used to render the value next to
// each bar.
func (b *BarChart) SetValueFormatter(f func(float64) string) *BarChart {
	b.valueFmt = f
	return b
}

// Bars returns the current bars.
func (b *BarChart) Bars() []Bar {
	return b.bars
}

// View renders the chart, one bar per line.
func (b *BarChart) View() string {
	if len(b.bars) == 0 {
		return lipgloss.NewStyle().
			Foreground(style.DefaultPalette().TextMuted).
			Render("no data")
	}

	maxAbs := 0.0
	for _, bar := range b.bars {
		if a := math.Abs(bar.Value); a > maxAbs {
			maxAbs = a
		}
	}

	labelStyle := lipgloss.NewStyle().
		Foreground(style.DefaultPalette().TextSecondary).
		Width(b.labelWidth)

	var lines []string
	for _, bar := range b.bars {
		fill := 0
		if maxAbs > 0 {
			fill = int(math.Abs(bar.Value) / maxAbs * float64(b.barWidth))
		}
		if fill < 1 && bar.Value != 0 {
			fill = 1
		}

		barStyle := lipgloss.NewStyle().Foreground(bar.Color)
		line := labelStyle.Render(bar.Label) + " " +
			barStyle.Render(strings.Repeat("█", fill)) +
			strings.Repeat(" ", b.barWidth-fill) + " " +
			barStyle.Render(b.valueFmt(bar.Value))
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}
