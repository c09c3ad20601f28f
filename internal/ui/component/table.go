package component

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"funding-monitor/internal/ui/style"
)

// Tone classifies a cell for color coding.
type Tone int

const (
	ToneNeutral Tone = iota
	ToneGood
	ToneBad
	ToneWarn
	ToneMuted
)

// TableColumn represents a column configuration.
type TableColumn struct {
	Header string
	Width  int
	Align  lipgloss.Position
}

// Cell is one pre-formatted table cell with its display tone.
type Cell struct {
	Text string
	Tone Tone
}

// Table renders read-only rows of formatted cells. When there are no
// rows and an empty message is set, a single row spanning all columns
// shows the message instead of a bare table.
type Table struct {
	columns  []TableColumn
	rows     [][]Cell
	emptyMsg string
	maxRows  int

	headerStyle lipgloss.Style
	cellStyles  map[Tone]lipgloss.Style
	borderStyle lipgloss.Style
	emptyStyle  lipgloss.Style

	showBorder bool
}

// NewTable creates a new table component.
func NewTable() *Table {
	palette := style.DefaultPalette()

	base := lipgloss.NewStyle().Padding(0, 1)
	return &Table{
		headerStyle: lipgloss.NewStyle().
			Foreground(palette.Secondary).
			Bold(true).
			Padding(0, 1),

		cellStyles: map[Tone]lipgloss.Style{
			ToneNeutral: base.Foreground(palette.Text),
			ToneGood:    base.Foreground(palette.Profit),
			ToneBad:     base.Foreground(palette.Loss),
			ToneWarn:    base.Foreground(palette.Warning),
			ToneMuted:   base.Foreground(palette.TextMuted),
		},

		borderStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(palette.TextMuted),

		emptyStyle: lipgloss.NewStyle().
			Foreground(palette.TextMuted).
			Italic(true).
			Padding(0, 1),

		showBorder: true,
	}
}

// AddColumn adds a column to the table.
func (t *Table) AddColumn(header string, width int, align lipgloss.Position) *Table {
	t.columns = append(t.columns, TableColumn{Header: header, Width: width, Align: align})
	return t
}

// SetRows replaces all rows.
func (t *Table) SetRows(rows [][]Cell) *Table {
	t.rows = rows
	return t
}

// SetEmptyMessage sets the message shown when the table has no rows.
func (t *Table) SetEmptyMessage(msg string) *Table {
	t.emptyMsg = msg
	return t
}

// SetMaxRows caps how many rows are rendered (0 = unlimited).
func (t *Table) SetMaxRows(n int) *Table {
	t.maxRows = n
	return t
}

// SetShowBorder enables/disables the outer border.
func (t *Table) SetShowBorder(show bool) *Table {
	t.showBorder = show
	return t
}

// RowCount returns the number of data rows.
func (t *Table) RowCount() int {
	return len(t.rows)
}

// totalWidth is the rendered width of the cell area including separators.
func (t *Table) totalWidth() int {
	w := 0
	for _, col := range t.columns {
		w += col.Width
	}
	return w + len(t.columns) - 1
}

// View renders the table.
func (t *Table) View() string {
	if len(t.columns) == 0 {
		return ""
	}

	var content strings.Builder

	for i, col := range t.columns {
		content.WriteString(t.renderCell(col.Header, col.Width, col.Align, t.headerStyle))
		if i < len(t.columns)-1 {
			content.WriteString("│")
		}
	}
	content.WriteString("\n")

	for i, col := range t.columns {
		content.WriteString(strings.Repeat("─", col.Width))
		if i < len(t.columns)-1 {
			content.WriteString("┼")
		}
	}

	if len(t.rows) == 0 {
		content.WriteString("\n")
		content.WriteString(t.renderCell(t.emptyMsg, t.totalWidth(), lipgloss.Center, t.emptyStyle))
	} else {
		rows := t.rows
		if t.maxRows > 0 && len(rows) > t.maxRows {
			rows = rows[:t.maxRows]
		}
		for _, row := range rows {
			content.WriteString("\n")
			for i, col := range t.columns {
				var cell Cell
				if i < len(row) {
					cell = row[i]
				}
				cellStyle, ok := t.cellStyles[cell.Tone]
				if !ok {
					cellStyle = t.cellStyles[ToneNeutral]
				}
				content.WriteString(t.renderCell(cell.Text, col.Width, col.Align, cellStyle))
				if i < len(t.columns)-1 {
					content.WriteString("│")
				}
			}
		}
	}

	result := content.String()
	if t.showBorder {
		result = t.borderStyle.Render(result)
	}
	return result
}

// renderCell renders a single cell. Content is truncated to the text
// area left inside the style's padding, otherwise lipgloss wraps the
// overflow onto a second line and breaks row alignment.
func (t *Table) renderCell(content string, width int, align lipgloss.Position, cellStyle lipgloss.Style) string {
	avail := width - cellStyle.GetHorizontalFrameSize()
	if avail < 1 {
		avail = 1
	}
	if len(content) > avail {
		if avail > 3 {
			content = content[:avail-3] + "..."
		} else {
			content = content[:avail]
		}
	}
	return cellStyle.Width(width).Align(align).Render(content)
}
