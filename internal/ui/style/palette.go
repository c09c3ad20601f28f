package style

import "github.com/charmbracelet/lipgloss"

// Terminal color palette for the dashboard.
var (
	Cyan    = lipgloss.Color("#00E5FF") // Primary highlight
	Magenta = lipgloss.Color("#FF1B6B") // Accent
	Yellow  = lipgloss.Color("#FFB500") // Warnings / medium risk
	Green   = lipgloss.Color("#2AFFAA") // Positive PnL / low risk
	Red     = lipgloss.Color("#FF5555") // Negative PnL / high risk
	Blue    = lipgloss.Color("#3B82F6") // Info
	Orange  = lipgloss.Color("#FF8C42") // Critical risk

	Base03 = lipgloss.Color("#1B1D23") // Background
	Base02 = lipgloss.Color("#262831") // Darker background
	Base01 = lipgloss.Color("#6C7280") // Muted text
	Base2  = lipgloss.Color("#ECEFF4") // Primary text
	Base1  = lipgloss.Color("#B4BCC8") // Secondary text
)

// Palette provides centralized color management.
type Palette struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Success   lipgloss.Color
	Error     lipgloss.Color
	Warning   lipgloss.Color
	Info      lipgloss.Color

	Background    lipgloss.Color
	BackgroundAlt lipgloss.Color
	Text          lipgloss.Color
	TextMuted     lipgloss.Color
	TextSecondary lipgloss.Color

	Profit lipgloss.Color
	Loss   lipgloss.Color
}

// DefaultPalette returns the default color palette.
func DefaultPalette() Palette {
	return Palette{
		Primary:   Cyan,
		Secondary: Magenta,
		Success:   Green,
		Error:     Red,
		Warning:   Yellow,
		Info:      Blue,

		Background:    Base03,
		BackgroundAlt: Base02,
		Text:          Base2,
		TextMuted:     Base01,
		TextSecondary: Base1,

		Profit: Green,
		Loss:   Red,
	}
}

// RiskColor maps a lower-case risk level to its display color. Unknown
// levels render muted rather than failing.
func RiskColor(level string) lipgloss.Color {
	switch level {
	case "low":
		return Green
	case "medium":
		return Yellow
	case "high":
		return Red
	case "critical":
		return Orange
	default:
		return Base01
	}
}
