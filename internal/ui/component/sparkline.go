package component

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"funding-monitor/internal/ui/style"
)

var sparkChars = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders a numeric series as a row of block characters. The
// equity chart wraps one of these with a date axis.
type Sparkline struct {
	data  []float64
	width int
	color lipgloss.Color
}

// NewSparkline creates a new sparkline component.
func NewSparkline(width int) *Sparkline {
	return &Sparkline{
		width: width,
		color: style.DefaultPalette().Primary,
	}
}

// SetData replaces the data points. The series is resampled to the
// component width when it is longer.
func (s *Sparkline) SetData(data []float64) *Sparkline {
	s.data = make([]float64, len(data))
	copy(s.data, data)
	return s
}

// SetWidth sets the render width.
func (s *Sparkline) SetWidth(width int) *Sparkline {
	s.width = width
	return s
}

// SetColor sets the series color.
func (s *Sparkline) SetColor(color lipgloss.Color) *Sparkline {
	s.color = color
	return s
}

// Len returns the number of data points.
func (s *Sparkline) Len() int {
	return len(s.data)
}

// Last returns the most recent data point, or 0 when empty.
func (s *Sparkline) Last() float64 {
	if len(s.data) == 0 {
		return 0
	}
	return s.data[len(s.data)-1]
}

// ChangePercent returns the percentage change from first to last point.
func (s *Sparkline) ChangePercent() float64 {
	if len(s.data) < 2 || s.data[0] == 0 {
		return 0
	}
	return (s.data[len(s.data)-1] - s.data[0]) / s.data[0] * 100
}

// View renders the sparkline.
func (s *Sparkline) View() string {
	if s.width <= 0 {
		return ""
	}
	if len(s.data) == 0 {
		return lipgloss.NewStyle().
			Foreground(style.DefaultPalette().TextMuted).
			Render(strings.Repeat("▁", s.width))
	}
	return lipgloss.NewStyle().Foreground(s.color).Render(s.blocks())
}

// blocks maps the (resampled) series onto the spark characters.
func (s *Sparkline) blocks() string {
	points := resample(s.data, s.width)

	min, max := points[0], points[0]
	for _, v := range points {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if min == max {
		return strings.Repeat("▄", len(points))
	}

	var b strings.Builder
	for _, v := range points {
		idx := int((v - min) / (max - min) * float64(len(sparkChars)-1))
		if idx < 0 {
			idx = 0
		} else if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteRune(sparkChars[idx])
	}
	return b.String()
}

// resample shrinks a series to at most width points by picking evenly
// spaced samples. Shorter series pass through unchanged.
func resample(data []float64, width int) []float64 {
	if len(data) <= width {
		return data
	}
	out := make([]float64, width)
	for i := range out {
		out[i] = data[i*(len(data)-1)/(width-1)]
	}
	return out
}
