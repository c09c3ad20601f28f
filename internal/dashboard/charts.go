package dashboard

import (
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"funding-monitor/internal/api"
	"funding-monitor/internal/format"
	"funding-monitor/internal/ui/component"
	"funding-monitor/internal/ui/style"
)

// maxFundingBars caps how many leaderboard entries reach the chart.
const maxFundingBars = 10

// EquityChart owns the equity-curve sparkline. Update replaces the
// whole series; an empty result keeps the previous chart state.
type EquityChart struct {
	mu     sync.Mutex
	spark  *component.Sparkline
	labels []string
}

// NewEquityChart creates the equity chart with a fixed width.
func NewEquityChart(width int) *EquityChart {
	return &EquityChart{
		spark: component.NewSparkline(width).
			SetColor(style.DefaultPalette().Primary),
	}
}

// Update replaces the chart series with the given points, in input
// order. No-op when points is empty.
func (c *EquityChart) Update(points []api.EquityPoint) {
	if len(points) == 0 {
		return
	}

	labels := make([]string, len(points))
	values := make([]float64, len(points))
	for i, p := range points {
		labels[i] = format.DateLabel(p.Timestamp)
		v := api.Float(p.TotalEquity)
		if math.IsNaN(v) {
			v = 0
		}
		values[i] = v
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.labels = labels
	c.spark.SetData(values)
}

// Labels returns the current label axis.
func (c *EquityChart) Labels() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.labels))
	copy(out, c.labels)
	return out
}

// SetWidth resizes the sparkline.
func (c *EquityChart) SetWidth(width int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.spark.SetWidth(width)
}

// View renders the sparkline with its date axis and latest value.
func (c *EquityChart) View() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	palette := style.DefaultPalette()
	line := c.spark.View()
	if len(c.labels) == 0 {
		return line
	}

	change := c.spark.ChangePercent()
	changeStyle := lipgloss.NewStyle().Foreground(palette.Profit)
	if change < 0 {
		changeStyle = changeStyle.Foreground(palette.Loss)
	}
	summary := fmt.Sprintf("%s (%+.2f%%)", format.Currency(c.spark.Last()), change)

	axisStyle := lipgloss.NewStyle().Foreground(palette.TextMuted)
	first, last := c.labels[0], c.labels[len(c.labels)-1]
	gap := lipgloss.Width(line) - len(first) - len(last)
	if gap < 1 {
		gap = 1
	}
	axis := axisStyle.Render(first + strings.Repeat(" ", gap) + last)

	return line + " " + changeStyle.Render(summary) + "\n" + axis
}

// FundingChart owns the funding-rate APR bar chart. Bars are colored
// by the sign of the APR.
type FundingChart struct {
	mu    sync.Mutex
	chart *component.BarChart
}

// NewFundingChart creates the funding chart.
func NewFundingChart(labelWidth, barWidth int) *FundingChart {
	chart := component.NewBarChart(labelWidth, barWidth).
		SetValueFormatter(func(v float64) string { return format.Percent(v) })
	return &FundingChart{chart: chart}
}

// Update replaces the bars with at most the first ten entries. Symbols
// lose their literal "USDT" suffix for readability. No-op when empty.
func (c *FundingChart) Update(rates []api.FundingRate) {
	if len(rates) == 0 {
		return
	}
	if len(rates) > maxFundingBars {
		rates = rates[:maxFundingBars]
	}

	bars := make([]component.Bar, len(rates))
	for i, r := range rates {
		apr := api.Float(r.APR)
		if math.IsNaN(apr) {
			apr = 0
		}
		color := style.Green
		if apr < 0 {
			color = style.Red
		}
		bars[i] = component.Bar{
			Label: strings.ReplaceAll(r.Symbol, "USDT", ""),
			Value: apr,
			Color: color,
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.chart.SetBars(bars)
}

// Bars returns the current bars.
func (c *FundingChart) Bars() []component.Bar {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.chart.Bars()
}

// View renders the bar chart.
func (c *FundingChart) View() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.chart.View()
}
