package component

import (
	"github.com/charmbracelet/lipgloss"

	"funding-monitor/internal/ui/style"
)

// Badge is a small labeled marker with an optional detail line, used
// for the paper-trading indicator. Hidden badges render nothing.
type Badge struct {
	label   string
	detail  string
	visible bool

	labelStyle  lipgloss.Style
	detailStyle lipgloss.Style
}

// NewBadge creates a new badge component.
func NewBadge() *Badge {
	palette := style.DefaultPalette()

	return &Badge{
		labelStyle: lipgloss.NewStyle().
			Foreground(style.Base03).
			Background(palette.Warning).
			Bold(true).
			Padding(0, 1),

		detailStyle: lipgloss.NewStyle().
			Foreground(palette.TextMuted),
	}
}

// SetLabel sets the badge text.
func (b *Badge) SetLabel(label string) *Badge {
	b.label = label
	return b
}

// SetDetail sets the detail text shown next to the label.
func (b *Badge) SetDetail(detail string) *Badge {
	b.detail = detail
	return b
}

// SetVisible toggles the badge.
func (b *Badge) SetVisible(visible bool) *Badge {
	b.visible = visible
	return b
}

// View renders the badge, or nothing when hidden.
func (b *Badge) View() string {
	if !b.visible {
		return ""
	}
	out := b.labelStyle.Render(b.label)
	if b.detail != "" {
		out += " " + b.detailStyle.Render(b.detail)
	}
	return out
}
