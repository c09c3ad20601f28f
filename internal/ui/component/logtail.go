package component

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap/zapcore"

	"funding-monitor/internal/logger"
	"funding-monitor/internal/ui/style"
)

// LogTail shows the most recent log lines from the ring buffer in a
// bordered pane at the bottom of the dashboard.
type LogTail struct {
	buffer  *logger.LogBuffer
	vp      viewport.Model
	visible bool
	width   int
	height  int

	containerStyle lipgloss.Style
	titleStyle     lipgloss.Style
	timeStyle      lipgloss.Style
	levelStyles    map[zapcore.Level]lipgloss.Style
}

// NewLogTail creates a log tail over the given buffer.
func NewLogTail(buffer *logger.LogBuffer) *LogTail {
	palette := style.DefaultPalette()

	return &LogTail{
		buffer:  buffer,
		vp:      viewport.New(80, 4),
		visible: false,

		containerStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(palette.Info).
			Padding(0, 1),

		titleStyle: lipgloss.NewStyle().
			Foreground(palette.Info).
			Bold(true),

		timeStyle: lipgloss.NewStyle().
			Foreground(palette.TextMuted),

		levelStyles: map[zapcore.Level]lipgloss.Style{
			zapcore.DebugLevel: lipgloss.NewStyle().Foreground(palette.TextMuted),
			zapcore.InfoLevel:  lipgloss.NewStyle().Foreground(palette.Info),
			zapcore.WarnLevel:  lipgloss.NewStyle().Foreground(palette.Warning).Bold(true),
			zapcore.ErrorLevel: lipgloss.NewStyle().Foreground(palette.Error).Bold(true),
		},
	}
}

// SetSize sets the pane dimensions.
func (lt *LogTail) SetSize(width, height int) {
	lt.width = width
	lt.height = height
	lt.vp.Width = width - 4
	if h := height - 3; h > 0 {
		lt.vp.Height = h
	}
}

// Toggle flips visibility and reports the new state.
func (lt *LogTail) Toggle() bool {
	lt.visible = !lt.visible
	return lt.visible
}

// Visible reports whether the pane is shown.
func (lt *LogTail) Visible() bool {
	return lt.visible
}

// View renders the pane with the latest buffer contents.
func (lt *LogTail) View() string {
	if !lt.visible || lt.buffer == nil {
		return ""
	}

	entries := lt.buffer.Recent(lt.vp.Height)
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		levelStyle, ok := lt.levelStyles[e.Level]
		if !ok {
			levelStyle = lt.levelStyles[zapcore.InfoLevel]
		}
		lines = append(lines,
			lt.timeStyle.Render(e.Time.Format("15:04:05"))+" "+
				levelStyle.Render(e.Level.CapitalString())+" "+
				e.Message)
	}
	lt.vp.SetContent(strings.Join(lines, "\n"))
	lt.vp.GotoBottom()

	return lt.containerStyle.Width(lt.width - 2).Render(
		lt.titleStyle.Render("Recent Logs") + "\n" + lt.vp.View())
}
