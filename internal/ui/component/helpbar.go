package component

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"funding-monitor/internal/ui/style"
)

// HelpBar shows keyboard shortcuts along the bottom of the screen.
type HelpBar struct {
	bindings []key.Binding
	width    int

	keyStyle       lipgloss.Style
	descStyle      lipgloss.Style
	sepStyle       lipgloss.Style
	containerStyle lipgloss.Style
}

// NewHelpBar creates a new help bar component.
func NewHelpBar() *HelpBar {
	palette := style.DefaultPalette()

	return &HelpBar{
		width: 80,

		keyStyle: lipgloss.NewStyle().
			Foreground(palette.Primary).
			Bold(true),

		descStyle: lipgloss.NewStyle().
			Foreground(palette.TextMuted),

		sepStyle: lipgloss.NewStyle().
			Foreground(palette.TextMuted),

		containerStyle: lipgloss.NewStyle().
			Padding(0, 1),
	}
}

// SetKeyBindings sets the bindings to display.
func (h *HelpBar) SetKeyBindings(bindings []key.Binding) *HelpBar {
	h.bindings = bindings
	return h
}

// SetWidth sets the help bar width.
func (h *HelpBar) SetWidth(width int) *HelpBar {
	h.width = width
	return h
}

// View renders the help bar.
func (h *HelpBar) View() string {
	if len(h.bindings) == 0 {
		return ""
	}

	items := make([]string, 0, len(h.bindings))
	for _, binding := range h.bindings {
		if !binding.Enabled() {
			continue
		}
		help := binding.Help()
		if help.Key == "" {
			continue
		}
		items = append(items, h.keyStyle.Render(help.Key)+" "+h.descStyle.Render(help.Desc))
	}

	content := strings.Join(items, h.sepStyle.Render(" • "))
	return h.containerStyle.Width(h.width).Render(content)
}
