package formatter

import (
	"strings"

	"github.com/jimvm/cucumber/internal/ast"
	"github.com/jimvm/cucumber/internal/config"
	"github.com/jimvm/cucumber/internal/status"
	"github.com/jimvm/cucumber/internal/visitor"
)

// Pretty prints the features as written, with every step colored by its
// status and failures printed under the step or row that raised them.
type Pretty struct {
	visitor.Base
	console

	ctx *RenderContext

	// status of the step being printed
	step status.Kind

	// inside a step's multiline argument
	arg      bool
	suppress bool
	widths   []int

	inRow  bool
	cells  []status.Kind
	rowErr error
}

func NewPretty(out *Sink, opts *config.Options, decorate status.Decorator) *Pretty {
	return &Pretty{
		console: console{out: out, decorate: decorate, opts: opts},
		ctx:     NewRenderContext(opts.NoMultiline),
	}
}

func (p *Pretty) BeforeFeatures(*ast.Features) {
	p.printProfileInformation()
}

func (p *Pretty) AfterFeatures(features *ast.Features) {
	p.printSummary(features, false)
}

func (p *Pretty) BeforeFeature(*ast.Feature) {
	p.ctx.Depth = 0
}

func (p *Pretty) AfterFeature(*ast.Feature) {
	_ = p.out.Flush()
}

func (p *Pretty) FeatureName(keyword, name, description string, tags []string) {
	p.tags(tags)
	p.line(heading(keyword, name))

	if description = strings.TrimSpace(description); description != "" {
		p.ctx.Depth++
		for _, line := range strings.Split(description, "\n") {
			p.line(strings.TrimSpace(line))
		}
		p.ctx.Depth--
	}

	p.blank()
}

func (p *Pretty) BeforeBackground(*ast.Background) {
	p.ctx.Depth = 1
}

func (p *Pretty) AfterBackground(*ast.Background) {
	p.blank()
}

func (p *Pretty) BeforeFeatureElement(el ast.FeatureElement) {
	if _, ok := el.(*ast.Scenario); ok {
		p.ctx.Depth = 1
	}
}

func (p *Pretty) AfterFeatureElement(el ast.FeatureElement) {
	// failures were printed where they were raised
	p.ctx.Latch.Consume()

	if _, ok := el.(*ast.Scenario); ok {
		p.blank()
	}
}

func (p *Pretty) BeforeOutline(*ast.Outline) {
	p.ctx.Depth = 1
}

func (p *Pretty) AfterOutline(*ast.Outline) {
	p.blank()
}

func (p *Pretty) ScenarioName(keyword, name string, tags []string) {
	p.tags(tags)
	p.line(heading(keyword, name))
}

func (p *Pretty) BeforeSteps([]*ast.Step) {
	p.ctx.Latch.Consume()
	p.ctx.Depth = 2
}

func (p *Pretty) AfterSteps([]*ast.Step) {
	p.ctx.Depth = 1
}

func (p *Pretty) StepName(keyword, text string, k status.Kind) {
	p.step = k
	p.line(p.decorate(keyword+text, k))
}

func (p *Pretty) AfterStepResult(result *ast.StepResult) {
	p.ctx.Record(result.Status)
}

func (p *Pretty) BeforeMultilineArg(arg ast.MultilineArg) {
	p.arg = true
	p.suppress = p.ctx.NoMultiline
	if table, ok := arg.(ast.Table); ok {
		p.widths = ColumnWidths(table)
	}
	p.ctx.Depth++
}

func (p *Pretty) AfterMultilineArg(ast.MultilineArg) {
	p.arg = false
	p.suppress = false
	p.widths = nil
	p.ctx.Depth--
}

func (p *Pretty) DocString(doc *ast.DocString) {
	if p.suppress {
		return
	}

	p.line(p.decorate(`"""`+doc.ContentType, p.step))
	if doc.Content != "" {
		for _, line := range strings.Split(doc.Content, "\n") {
			p.line(p.decorate(line, p.step))
		}
	}
	p.line(p.decorate(`"""`, p.step))
}

func (p *Pretty) ExamplesName(keyword, name string) {
	p.blank()
	p.ctx.Depth = 2
	p.line(heading(keyword, name))
}

func (p *Pretty) BeforeOutlineTable(ex *ast.Examples) {
	p.ctx.OpenTable(ex)
	p.ctx.Depth = 3
}

func (p *Pretty) AfterOutlineTable(*ast.Examples) {
	p.ctx.CloseTable()
	p.ctx.Depth = 2
}

func (p *Pretty) BeforeTableRow([]string) {
	p.inRow = true
	p.cells = p.cells[:0]
	p.rowErr = nil
}

func (p *Pretty) TableCellValue(_ string, k status.Kind) {
	if p.suppress {
		return
	}
	p.cells = append(p.cells, p.ctx.CellStatus(k))
}

// AfterTableRow prints the row once all its cell statuses are known.
func (p *Pretty) AfterTableRow(values []string) {
	p.inRow = false

	var widths []int
	switch {
	case p.arg:
		if p.suppress {
			return
		}
		widths = p.widths
	case p.ctx.Table != nil:
		widths = p.ctx.Table.Widths
	default:
		return
	}

	p.line(FormatRow(values, widths, p.cells, p.decorate))

	if p.rowErr != nil {
		p.failure(p.rowErr)
		p.rowErr = nil
	}
}

func (p *Pretty) Exception(err error, _ status.Kind) {
	p.ctx.Latch.Raise()

	if p.inRow && p.ctx.Table != nil {
		p.rowErr = err
		return
	}
	p.failure(err)
}

// failure prints err one level below the current line.
func (p *Pretty) failure(err error) {
	p.ctx.Depth++
	for _, line := range strings.Split(strings.TrimRight(err.Error(), "\n"), "\n") {
		p.line(p.decorate(line, status.Failed))
	}
	p.ctx.Depth--
}

func (p *Pretty) tags(tags []string) {
	if len(tags) > 0 {
		p.line(strings.Join(tags, " "))
	}
}

func (p *Pretty) line(s string) {
	p.println(Indent(s, p.ctx.Indent()))
}

func (p *Pretty) blank() {
	p.println("")
}

func heading(keyword, name string) string {
	if name == "" {
		return keyword + ":"
	}
	return keyword + ": " + name
}
