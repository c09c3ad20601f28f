// Package screen contains the bubbletea model for the dashboard view.
package screen

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"funding-monitor/internal/dashboard"
	"funding-monitor/internal/logger"
	"funding-monitor/internal/ui"
	"funding-monitor/internal/ui/component"
	"funding-monitor/internal/ui/style"
)

// Pane identifiers for tab cycling.
const (
	panePositions = iota
	paneFunding
	panePerformance
	paneCount
)

// DashboardScreen is the root model: one full-screen view over the
// region store, repainted whenever a refresh cycle completes.
type DashboardScreen struct {
	dash   *dashboard.Dashboard
	keyMap ui.KeyMap

	width  int
	height int
	focus  int

	header      *component.StatusHeader
	badge       *component.Badge
	positions   *component.Table
	funding     *component.Table
	performance *component.Table
	logTail     *component.LogTail
	helpBar     *component.HelpBar
	showHelp    bool

	snap dashboard.Snapshot

	titleStyle      lipgloss.Style
	focusTitleStyle lipgloss.Style
	labelStyle      lipgloss.Style
	valueStyle      lipgloss.Style
	panelStyle      lipgloss.Style
	mutedStyle      lipgloss.Style
	toneStyles      map[dashboard.Tone]lipgloss.Style
	alertStyles     map[string]lipgloss.Style
}

// NewDashboardScreen creates the screen over an already wired pipeline.
func NewDashboardScreen(dash *dashboard.Dashboard, buffer *logger.LogBuffer) *DashboardScreen {
	palette := style.DefaultPalette()

	s := &DashboardScreen{
		dash:   dash,
		keyMap: ui.DefaultKeyMap(),
		snap:   dash.Regions.Snapshot(),

		header:  component.NewStatusHeader(),
		badge:   component.NewBadge(),
		logTail: component.NewLogTail(buffer),
		helpBar: component.NewHelpBar(),

		titleStyle: lipgloss.NewStyle().
			Foreground(palette.Secondary).
			Bold(true),

		focusTitleStyle: lipgloss.NewStyle().
			Foreground(palette.Primary).
			Bold(true).
			Underline(true),

		labelStyle: lipgloss.NewStyle().
			Foreground(palette.TextMuted).
			Width(22),

		valueStyle: lipgloss.NewStyle().
			Foreground(palette.Text),

		panelStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(palette.TextMuted).
			Padding(0, 1).
			MarginRight(1),

		mutedStyle: lipgloss.NewStyle().
			Foreground(palette.TextMuted),

		toneStyles: map[dashboard.Tone]lipgloss.Style{
			dashboard.ToneNeutral: lipgloss.NewStyle().Foreground(palette.Text),
			dashboard.ToneGood:    lipgloss.NewStyle().Foreground(palette.Profit).Bold(true),
			dashboard.ToneBad:     lipgloss.NewStyle().Foreground(palette.Loss).Bold(true),
			dashboard.ToneWarn:    lipgloss.NewStyle().Foreground(palette.Warning).Bold(true),
			dashboard.ToneMuted:   lipgloss.NewStyle().Foreground(palette.TextMuted),
		},

		alertStyles: map[string]lipgloss.Style{
			"info":     lipgloss.NewStyle().Foreground(palette.Info),
			"warning":  lipgloss.NewStyle().Foreground(palette.Warning).Bold(true),
			"critical": lipgloss.NewStyle().Foreground(style.Orange).Bold(true),
		},
	}

	s.positions = component.NewTable().
		AddColumn("Symbol", 10, lipgloss.Left).
		AddColumn("Side", 24, lipgloss.Left).
		AddColumn("Value", 12, lipgloss.Right).
		AddColumn("Entry Rate", 12, lipgloss.Right).
		AddColumn("Curr Rate", 12, lipgloss.Right).
		AddColumn("Funding", 12, lipgloss.Right).
		AddColumn("Net PnL", 12, lipgloss.Right).
		AddColumn("Age", 9, lipgloss.Right).
		SetEmptyMessage("No open positions")

	s.funding = component.NewTable().
		AddColumn("Symbol", 10, lipgloss.Left).
		AddColumn("Rate", 10, lipgloss.Right).
		AddColumn("APR", 10, lipgloss.Right).
		AddColumn("Price", 13, lipgloss.Right).
		AddColumn("Volume", 10, lipgloss.Right).
		AddColumn("Next", 10, lipgloss.Center).
		SetEmptyMessage("No funding data available")

	s.performance = component.NewTable().
		AddColumn("Symbol", 10, lipgloss.Left).
		AddColumn("Trades", 8, lipgloss.Right).
		AddColumn("Win Rate", 10, lipgloss.Right).
		AddColumn("Total PnL", 12, lipgloss.Right).
		AddColumn("Funding", 12, lipgloss.Right).
		AddColumn("Fees", 12, lipgloss.Right).
		SetEmptyMessage("No performance data available")

	s.helpBar.SetKeyBindings(s.keyMap.ShortHelp())

	return s
}

// Init starts listening on the event bus.
func (s *DashboardScreen) Init() tea.Cmd {
	return ui.ListenBus()
}

// Update handles key presses, resizes and refresh notifications.
func (s *DashboardScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, s.keyMap.Quit):
			s.dash.Control.Stop()
			return s, tea.Quit

		case key.Matches(msg, s.keyMap.Refresh):
			s.dash.Control.RefreshNow(context.Background())

		case key.Matches(msg, s.keyMap.Tab):
			s.focus = (s.focus + 1) % paneCount

		case key.Matches(msg, s.keyMap.ShiftTab):
			s.focus = (s.focus + paneCount - 1) % paneCount

		case key.Matches(msg, s.keyMap.ToggleLogs):
			s.logTail.Toggle()

		case key.Matches(msg, s.keyMap.Help):
			s.showHelp = !s.showHelp
			if s.showHelp {
				s.helpBar.SetKeyBindings(s.keyMap.AllBindings())
			} else {
				s.helpBar.SetKeyBindings(s.keyMap.ShortHelp())
			}
		}

	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.header.SetWidth(msg.Width)
		s.helpBar.SetWidth(msg.Width)
		s.logTail.SetSize(msg.Width, 8)
		s.dash.Equity.SetWidth(max(20, msg.Width/2-10))

	case ui.RefreshDoneMsg:
		s.pullSnapshot()
		return s, ui.ListenBus()

	case ui.LogMsg:
		// The line already landed in the ring buffer through the zap
		// core; the message only triggers a repaint of the tail.
		return s, ui.ListenBus()
	}

	return s, nil
}

// pullSnapshot copies fresh region state into the components.
func (s *DashboardScreen) pullSnapshot() {
	s.snap = s.dash.Regions.Snapshot()

	s.header.SetRunning(s.snap.Status.Running, s.snap.Status.Known)
	s.header.SetLastUpdated(s.snap.LastUpdated)
	s.header.SetFailingSources(s.dash.Orch.FailingSources())

	s.badge.
		SetVisible(s.snap.Badge.Visible).
		SetLabel(s.snap.Badge.Label).
		SetDetail(s.snap.Badge.Tooltip)

	s.positions.SetRows(tableRows(s.snap.Positions)).SetEmptyMessage(emptyText(s.snap.Positions, "No open positions"))
	s.funding.SetRows(tableRows(s.snap.Funding)).SetEmptyMessage(emptyText(s.snap.Funding, "No funding data available"))
	s.performance.SetRows(tableRows(s.snap.Performance)).SetEmptyMessage(emptyText(s.snap.Performance, "No performance data available"))
}

// tableRows converts region cells into component cells.
func tableRows(region dashboard.TableRegion) [][]component.Cell {
	rows := make([][]component.Cell, 0, len(region.Rows))
	for _, row := range region.Rows {
		cells := make([]component.Cell, 0, len(row))
		for _, c := range row {
			cells = append(cells, component.Cell{Text: c.Text, Tone: component.Tone(c.Tone)})
		}
		rows = append(rows, cells)
	}
	return rows
}

func emptyText(region dashboard.TableRegion, fallback string) string {
	if region.Empty != "" {
		return region.Empty
	}
	return fallback
}

// View renders the whole dashboard.
func (s *DashboardScreen) View() string {
	if s.width == 0 || s.height == 0 {
		return "Loading..."
	}

	var content strings.Builder

	content.WriteString(s.header.View())
	content.WriteString("\n")

	if badge := s.badge.View(); badge != "" {
		content.WriteString(badge)
		content.WriteString("\n\n")
	}

	topRow := lipgloss.JoinHorizontal(lipgloss.Top,
		s.panelStyle.Render(s.renderOverview()),
		s.panelStyle.Render(s.renderRisk()),
		s.panelStyle.Render(s.renderConfig()),
	)
	content.WriteString(topRow)
	content.WriteString("\n\n")

	content.WriteString(s.renderPaneTitle("Open Positions", panePositions))
	content.WriteString("\n")
	content.WriteString(s.positions.View())
	content.WriteString("\n\n")

	middle := lipgloss.JoinHorizontal(lipgloss.Top,
		s.renderFundingPane(),
		"  ",
		s.renderChartsPane(),
	)
	content.WriteString(middle)
	content.WriteString("\n\n")

	content.WriteString(s.renderPaneTitle("Daily Performance", panePerformance))
	content.WriteString("\n")
	content.WriteString(s.performance.View())
	content.WriteString("\n")

	if s.logTail.Visible() {
		content.WriteString(s.logTail.View())
		content.WriteString("\n")
	}

	content.WriteString(s.helpBar.View())

	return content.String()
}

func (s *DashboardScreen) renderPaneTitle(title string, pane int) string {
	if s.focus == pane {
		return s.focusTitleStyle.Render("▸ " + title)
	}
	return s.titleStyle.Render(title)
}

func (s *DashboardScreen) renderFundingPane() string {
	return s.renderPaneTitle("Funding Rates", paneFunding) + "\n" + s.funding.View()
}

func (s *DashboardScreen) renderChartsPane() string {
	var b strings.Builder
	b.WriteString(s.titleStyle.Render("Funding APR"))
	b.WriteString("\n")
	b.WriteString(s.dash.Funding.View())
	b.WriteString("\n\n")
	b.WriteString(s.titleStyle.Render("Equity (30d)"))
	b.WriteString("\n")
	b.WriteString(s.dash.Equity.View())
	return b.String()
}

func (s *DashboardScreen) renderOverview() string {
	o := s.snap.Overview

	var b strings.Builder
	b.WriteString(s.titleStyle.Render("Account Overview"))
	b.WriteString("\n\n")
	s.writeRow(&b, "Total Equity", o.TotalEquity)
	s.writeRow(&b, "Total PnL", o.TotalPnL)
	s.writeRow(&b, "Total PnL %", o.TotalPnLPct)
	s.writeRow(&b, "Daily APR", o.DailyAPR)
	s.writeRow(&b, "Monthly APR", o.MonthlyAPR)
	s.writeRow(&b, "Annualized APR", o.AnnualizedAPR)
	s.writeRow(&b, "Open Positions", o.OpenPositions)
	s.writeRow(&b, "Funding Collected", o.TotalFunding)
	s.writeRow(&b, "Fees Paid", o.TotalFees)
	return b.String()
}

func (s *DashboardScreen) renderRisk() string {
	r := s.snap.Risk

	levelStyle := lipgloss.NewStyle().
		Foreground(style.RiskColor(r.LevelRaw)).
		Bold(true)

	var b strings.Builder
	b.WriteString(s.titleStyle.Render("Risk"))
	b.WriteString("\n\n")
	b.WriteString(s.labelStyle.Render("Risk Level"))
	b.WriteString(levelStyle.Render(r.Level))
	b.WriteString("\n")
	b.WriteString(s.labelStyle.Render("Margin Ratio"))
	b.WriteString(s.valueStyle.Render(r.MarginRatio))
	b.WriteString("\n")
	b.WriteString(s.labelStyle.Render("Liquidation Distance"))
	b.WriteString(s.valueStyle.Render(r.LiquidationDistance))
	b.WriteString("\n")
	b.WriteString(s.labelStyle.Render("Drawdown"))
	b.WriteString(s.valueStyle.Render(r.Drawdown))
	b.WriteString("\n")

	if len(r.Alerts) == 0 {
		b.WriteString("\n")
		b.WriteString(s.mutedStyle.Render("No active alerts"))
	} else {
		for _, a := range r.Alerts {
			alertStyle, ok := s.alertStyles[a.Level]
			if !ok {
				alertStyle = s.alertStyles["info"]
			}
			b.WriteString("\n")
			b.WriteString(alertStyle.Render(fmt.Sprintf("⚠ %s: %s", a.Title, a.Message)))
		}
	}
	return b.String()
}

func (s *DashboardScreen) renderConfig() string {
	c := s.snap.Config

	var b strings.Builder
	b.WriteString(s.titleStyle.Render("Bot Configuration"))
	b.WriteString("\n\n")
	s.writeText(&b, "Min Funding Rate", c.MinFundingRate)
	s.writeText(&b, "Max Spread", c.MaxSpread)
	s.writeText(&b, "Position Size", c.PositionSize)
	s.writeText(&b, "Max Positions", c.MaxPositions)
	s.writeText(&b, "Max Coin Alloc", c.MaxCoinAllocation)
	s.writeText(&b, "Margin Warning", c.MarginWarning)
	s.writeText(&b, "Margin Critical", c.MarginCritical)
	s.writeText(&b, "Max Drawdown", c.MaxDrawdown)
	return b.String()
}

func (s *DashboardScreen) writeRow(b *strings.Builder, label string, cell dashboard.Cell) {
	toneStyle, ok := s.toneStyles[cell.Tone]
	if !ok {
		toneStyle = s.valueStyle
	}
	b.WriteString(s.labelStyle.Render(label))
	b.WriteString(toneStyle.Render(cell.Text))
	b.WriteString("\n")
}

func (s *DashboardScreen) writeText(b *strings.Builder, label, value string) {
	if value == "" {
		value = "-"
	}
	b.WriteString(s.labelStyle.Render(label))
	b.WriteString(s.valueStyle.Render(value))
	b.WriteString("\n")
}
