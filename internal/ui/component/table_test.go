package component

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func newThreeColTable() *Table {
	return NewTable().
		AddColumn("Symbol", 10, lipgloss.Left).
		AddColumn("Rate", 10, lipgloss.Right).
		AddColumn("APR", 10, lipgloss.Right).
		SetShowBorder(false)
}

func TestTable_EmptyShowsMessageRow(t *testing.T) {
	table := newThreeColTable().SetEmptyMessage("No funding data available")

	out := table.View()
	assert.Contains(t, out, "Symbol")
	assert.Contains(t, out, "No funding data available")
	assert.Equal(t, 0, table.RowCount())
}

func TestTable_RendersRowsInOrder(t *testing.T) {
	table := newThreeColTable().SetRows([][]Cell{
		{{Text: "BTCUSDT"}, {Text: "0.0100%", Tone: ToneGood}, {Text: "10.95%"}},
		{{Text: "ETHUSDT"}, {Text: "-0.0050%", Tone: ToneBad}, {Text: "-5.48%"}},
	})

	out := table.View()
	btc := strings.Index(out, "BTCUSDT")
	eth := strings.Index(out, "ETHUSDT")
	assert.Greater(t, btc, -1)
	assert.Greater(t, eth, btc, "rows must keep input order")
	assert.Equal(t, 2, table.RowCount())
}

func TestTable_MaxRowsCapsRendering(t *testing.T) {
	rows := make([][]Cell, 5)
	for i := range rows {
		rows[i] = []Cell{{Text: "SOLUSDT"}, {Text: "0.0001%"}, {Text: "1.00%"}}
	}
	table := newThreeColTable().SetRows(rows).SetMaxRows(3)

	out := table.View()
	assert.Equal(t, 3, strings.Count(out, "SOLUSDT"))
}

func TestTable_TruncatesOverlongCells(t *testing.T) {
	table := NewTable().
		AddColumn("Symbol", 8, lipgloss.Left).
		SetShowBorder(false).
		SetRows([][]Cell{{{Text: "VERYLONGSYMBOLUSDT"}}})

	out := table.View()
	assert.Contains(t, out, "VER...")
	assert.NotContains(t, out, "VERYLONGSYMBOLUSDT")
	assert.Len(t, strings.Split(out, "\n"), 3, "truncated cell must stay on its row")
}

func TestTable_CellFillingTextAreaStaysOnOneLine(t *testing.T) {
	// 12 runes in a 14-wide column leave exactly the padded text area.
	table := NewTable().
		AddColumn("Symbol", 14, lipgloss.Left).
		SetShowBorder(false).
		SetRows([][]Cell{{{Text: "1000PEPEUSDT"}}})

	out := table.View()
	assert.Contains(t, out, "1000PEPEUSDT")
	assert.Len(t, strings.Split(out, "\n"), 3)
}
