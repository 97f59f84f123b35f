package formatter

import (
	"github.com/jimvm/cucumber/internal/ast"
	"github.com/jimvm/cucumber/internal/status"
)

// OutlineTable is the examples table being rendered.
type OutlineTable struct {
	Examples *ast.Examples
	// Widths of the columns, over all rows of the table.
	Widths []int
}

// RenderContext is the state a formatter carries between events of one run.
type RenderContext struct {
	Depth       int
	NoMultiline bool

	// Table is nil outside BeforeOutlineTable/AfterOutlineTable.
	Table *OutlineTable
	// Last is the status of the last step result.
	Last  status.Kind
	Latch Latch
}

func NewRenderContext(noMultiline bool) *RenderContext {
	return &RenderContext{NoMultiline: noMultiline}
}

func (c *RenderContext) OpenTable(ex *ast.Examples) {
	c.Table = &OutlineTable{
		Examples: ex,
		Widths:   ColumnWidths(ex.Values()),
	}
}

func (c *RenderContext) CloseTable() {
	c.Table = nil
}

// CellStatus is the status a table cell renders with: its own, or the
// status of the last step result when it has none.
func (c *RenderContext) CellStatus(k status.Kind) status.Kind {
	if k == status.None {
		return c.Last
	}
	return k
}

// Record remembers the status of a step result.
func (c *RenderContext) Record(k status.Kind) {
	c.Last = k
	c.Latch.Observe(k)
}

func (c *RenderContext) Indent() int {
	return c.Depth * 2
}
