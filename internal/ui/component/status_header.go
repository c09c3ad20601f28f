package component

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"funding-monitor/internal/ui/style"
)

// StatusHeader is the top bar: bot running state, last refresh time and
// any sources whose last fetch failed.
type StatusHeader struct {
	running     bool
	runKnown    bool
	lastUpdated string
	failing     []string
	width       int
	style       StatusHeaderStyle
}

// StatusHeaderStyle contains all styling for the status header.
type StatusHeaderStyle struct {
	container lipgloss.Style
	title     lipgloss.Style
	running   lipgloss.Style
	stopped   lipgloss.Style
	unknown   lipgloss.Style
	updated   lipgloss.Style
	degraded  lipgloss.Style
}

// NewStatusHeader creates a new status header component.
func NewStatusHeader() *StatusHeader {
	palette := style.DefaultPalette()

	return &StatusHeader{
		style: StatusHeaderStyle{
			container: lipgloss.NewStyle().
				Background(palette.Background).
				Foreground(palette.Text).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(palette.Primary).
				Padding(0, 2).
				MarginBottom(1),

			title: lipgloss.NewStyle().
				Foreground(palette.Primary).
				Bold(true),

			running: lipgloss.NewStyle().
				Foreground(palette.Success).
				Bold(true),

			stopped: lipgloss.NewStyle().
				Foreground(palette.Error).
				Bold(true),

			unknown: lipgloss.NewStyle().
				Foreground(palette.TextMuted),

			updated: lipgloss.NewStyle().
				Foreground(palette.TextSecondary),

			degraded: lipgloss.NewStyle().
				Foreground(palette.Warning).
				Bold(true),
		},
	}
}

// SetRunning updates the bot running indicator. known is false until the
// first status fetch succeeds.
func (sh *StatusHeader) SetRunning(running, known bool) {
	sh.running = running
	sh.runKnown = known
}

// SetLastUpdated sets the last refresh clock time.
func (sh *StatusHeader) SetLastUpdated(at string) {
	sh.lastUpdated = at
}

// SetFailingSources sets the list of sources whose last fetch failed.
func (sh *StatusHeader) SetFailingSources(names []string) {
	sh.failing = names
}

// SetWidth sets the component width for responsive layout.
func (sh *StatusHeader) SetWidth(width int) {
	sh.width = width
	sh.style.container = sh.style.container.Width(width - 4)
}

// View renders the status header.
func (sh *StatusHeader) View() string {
	parts := []string{
		sh.style.title.Render("Funding Arbitrage Monitor"),
		sh.renderRunStatus(),
	}

	if sh.lastUpdated != "" {
		parts = append(parts, sh.style.updated.Render("Updated: "+sh.lastUpdated))
	}
	if len(sh.failing) > 0 {
		parts = append(parts, sh.style.degraded.Render(
			fmt.Sprintf("Degraded: %s", strings.Join(sh.failing, ", "))))
	}

	return sh.style.container.Render(strings.Join(parts, " | "))
}

func (sh *StatusHeader) renderRunStatus() string {
	if !sh.runKnown {
		return sh.style.unknown.Render("● Status: Unknown")
	}
	if sh.running {
		return sh.style.running.Render("● Bot: Running")
	}
	return sh.style.stopped.Render("● Bot: Stopped")
}
