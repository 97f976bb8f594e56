package display

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Table renders rows under headers inside a box-drawing frame.
func (f *Formatter) Table(headers []string, rows [][]string) string {
	widths := columnWidths(headers, rows)
	if len(widths) == 0 {
		return ""
	}

	border := func(left, mid, right string) string {
		parts := make([]string, len(widths))
		for i, w := range widths {
			parts[i] = strings.Repeat("─", w+2)
		}
		return left + strings.Join(parts, mid) + right
	}

	lines := make([]string, 0, len(rows)+4)
	lines = append(lines, border("┌", "┬", "┐"))
	lines = append(lines, f.highlight.Bold(true).Render(formatRow(headers, widths)))
	lines = append(lines, border("├", "┼", "┤"))
	for _, row := range rows {
		lines = append(lines, formatRow(row, widths))
	}
	lines = append(lines, border("└", "┴", "┘"))
	return strings.Join(lines, "\n")
}

func columnWidths(headers []string, rows [][]string) []int {
	colCount := len(headers)
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	if colCount == 0 {
		return nil
	}
	widths := make([]int, colCount)
	for i, header := range headers {
		widths[i] = runewidth.StringWidth(header)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func formatRow(row []string, widths []int) string {
	cells := make([]string, len(widths))
	for i, w := range widths {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		cells[i] = padRight(cell, w)
	}
	return "│ " + strings.Join(cells, " │ ") + " │"
}
