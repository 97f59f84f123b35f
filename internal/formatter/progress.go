package formatter

import (
	"github.com/jimvm/cucumber/internal/ast"
	"github.com/jimvm/cucumber/internal/config"
	"github.com/jimvm/cucumber/internal/status"
	"github.com/jimvm/cucumber/internal/visitor"
)

// Progress prints one glyph per step result and per outline example cell.
type Progress struct {
	visitor.Base
	console

	ctx *RenderContext
}

func NewProgress(out *Sink, opts *config.Options, decorate status.Decorator) *Progress {
	return &Progress{
		console: console{out: out, decorate: decorate, opts: opts},
		ctx:     NewRenderContext(opts.NoMultiline),
	}
}

func (p *Progress) BeforeFeatures(*ast.Features) {
	p.printProfileInformation()
	_ = p.out.Flush()
}

func (p *Progress) AfterFeatures(features *ast.Features) {
	p.print("\n\n")
	p.printSummary(features, true)
}

func (p *Progress) AfterFeatureElement(ast.FeatureElement) {
	if p.ctx.Latch.Consume() {
		p.progress(status.Failed)
	}
}

func (p *Progress) BeforeSteps([]*ast.Step) {
	if p.ctx.Latch.Consume() {
		p.progress(status.Failed)
	}
}

func (p *Progress) AfterStepResult(result *ast.StepResult) {
	p.ctx.Record(result.Status)
	p.progress(result.Status)
}

func (p *Progress) BeforeOutlineTable(ex *ast.Examples) {
	p.ctx.OpenTable(ex)
}

func (p *Progress) AfterOutlineTable(*ast.Examples) {
	p.ctx.CloseTable()
}

func (p *Progress) TableCellValue(_ string, k status.Kind) {
	if p.ctx.Table == nil {
		return
	}

	k = p.ctx.CellStatus(k)
	if k == status.SkippedParam {
		return
	}
	p.progress(k)
}

func (p *Progress) Exception(error, status.Kind) {
	p.ctx.Latch.Raise()
}

func (p *Progress) progress(k status.Kind) {
	p.print(p.decorate(status.Glyph(k), k))
	_ = p.out.Flush()
	p.ctx.Latch.Observe(k)
}
