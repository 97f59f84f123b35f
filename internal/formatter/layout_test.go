package formatter

import (
	"strings"
	"testing"

	"github.com/ImSingee/tt"
	"github.com/stretchr/testify/assert"

	"github.com/jimvm/cucumber/internal/status"
)

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}

func TestColumnWidths(t *testing.T) {
	rows := [][]string{{"a", "bb"}, {"ccc", "d"}}
	widths := ColumnWidths(rows)

	assert.Equal(t, []int{3, 2}, widths)

	statuses := []status.Kind{status.Passed, status.Passed}
	tt.AssertEqual(t, "| a   | bb |", FormatRow(rows[0], widths, statuses, status.Plain))
	tt.AssertEqual(t, "| ccc | d  |", FormatRow(rows[1], widths, statuses, status.Plain))
}

func TestColumnWidthsUneven(t *testing.T) {
	assert.Equal(t, []int{2, 5}, ColumnWidths([][]string{{"a"}, {"bb", "ccccc"}}))
	assert.Empty(t, ColumnWidths(nil))
}

func TestColumnWidthsWide(t *testing.T) {
	widths := ColumnWidths([][]string{{"名前"}, {"ab"}})

	assert.Equal(t, []int{4}, widths)
	tt.AssertEqual(t, "| ab   |", FormatRow([]string{"ab"}, widths, nil, status.Plain))
}

func TestFormatRowDecorates(t *testing.T) {
	decorate := func(text string, k status.Kind) string {
		return "<" + k.String() + ">" + text
	}

	tt.AssertEqual(t, "| <failed>x  | <skipped_param>y |",
		FormatRow([]string{"x", "y"}, []int{2, 1}, []status.Kind{status.Failed}, decorate))
}

func TestIndent(t *testing.T) {
	tt.AssertEqual(t, "  a\n\n  b", Indent("a\n\nb", 2))
}
