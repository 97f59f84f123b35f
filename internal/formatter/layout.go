package formatter

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/jimvm/cucumber/internal/status"
)

// ColumnWidths returns the display width of the widest cell of each column.
// Short rows leave the missing columns alone.
func ColumnWidths(rows [][]string) []int {
	var widths []int
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// FormatRow renders "| a   | bb |" with every cell padded to its column
// width and decorated with its status.
func FormatRow(values []string, widths []int, statuses []status.Kind, decorate status.Decorator) string {
	var b strings.Builder
	b.WriteString("|")
	for i, value := range values {
		if i < len(widths) {
			value = runewidth.FillRight(value, widths[i])
		}

		k := status.SkippedParam
		if i < len(statuses) {
			k = statuses[i]
		}

		b.WriteString(" ")
		b.WriteString(decorate(value, k))
		b.WriteString(" |")
	}
	return b.String()
}

// Indent prefixes every non-empty line of text with n spaces.
func Indent(text string, n int) string {
	prefix := strings.Repeat(" ", n)
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}
