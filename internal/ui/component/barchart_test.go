package component

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"funding-monitor/internal/ui/style"
)

func TestBarChart_ScalesToLargestAbsoluteValue(t *testing.T) {
	chart := NewBarChart(6, 10).SetBars([]Bar{
		{Label: "BTC", Value: 10, Color: style.Green},
		{Label: "ETH", Value: -5, Color: style.Red},
	})

	lines := strings.Split(chart.View(), "\n")
	assert.Len(t, lines, 2)
	assert.Greater(t,
		strings.Count(lines[0], "█"),
		strings.Count(lines[1], "█"),
		"larger value gets the longer bar")
}

func TestBarChart_NonZeroValueAlwaysVisible(t *testing.T) {
	chart := NewBarChart(6, 10).SetBars([]Bar{
		{Label: "BTC", Value: 1000, Color: style.Green},
		{Label: "DOGE", Value: 0.01, Color: style.Green},
	})

	lines := strings.Split(chart.View(), "\n")
	assert.GreaterOrEqual(t, strings.Count(lines[1], "█"), 1)
}

func TestBarChart_EmptyShowsPlaceholder(t *testing.T) {
	assert.Contains(t, NewBarChart(6, 10).View(), "no data")
}

func TestBarChart_UsesValueFormatter(t *testing.T) {
	chart := NewBarChart(6, 10).
		SetValueFormatter(func(v float64) string { return "12.50%" }).
		SetBars([]Bar{{Label: "BTC", Value: 12.5, Color: style.Green}})

	assert.Contains(t, chart.View(), "12.50%")
}
