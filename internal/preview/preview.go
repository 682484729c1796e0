// Package preview renders converted rows as an aligned terminal table.
package preview

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/cleared-dev/bankconverter/internal/model"
)

// Header is the first table row.
var Header = []string{"Datum", "Bedrag", "Omschrijving"}

const amountCol = 1

// Render returns the table lines: header, separator, one line per row.
// Columns are padded by display width; the amount column is right-aligned.
func Render(rows []model.OutputRow) []string {
	table := make([][]string, 0, len(rows)+1)
	table = append(table, Header)
	for _, r := range rows {
		table = append(table, r.Record())
	}

	widths := make([]int, len(Header))
	for _, row := range table {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	lines := make([]string, 0, len(table)+1)
	for i, row := range table {
		lines = append(lines, renderRow(row, widths))
		if i == 0 {
			lines = append(lines, renderSeparator(widths))
		}
	}
	return lines
}

func renderRow(row []string, widths []int) string {
	var sb strings.Builder
	sb.WriteString("|")
	for i, cell := range row {
		sb.WriteString(" ")
		pad := strings.Repeat(" ", widths[i]-runewidth.StringWidth(cell))
		if i == amountCol {
			sb.WriteString(pad)
			sb.WriteString(cell)
		} else {
			sb.WriteString(cell)
			sb.WriteString(pad)
		}
		sb.WriteString(" |")
	}
	return sb.String()
}

func renderSeparator(widths []int) string {
	var sb strings.Builder
	sb.WriteString("|")
	for _, w := range widths {
		sb.WriteString(" ")
		sb.WriteString(strings.Repeat("-", w))
		sb.WriteString(" |")
	}
	return sb.String()
}
