package visitor

import (
	"errors"
	"log/slog"

	"github.com/ImSingee/go-ex/ee"
	"github.com/google/uuid"

	"github.com/jimvm/cucumber/internal/ast"
	"github.com/jimvm/cucumber/internal/status"
)

// Walker drives one traversal of a run through its visitors. Every event
// goes to every visitor, in the order they were added.
type Walker struct {
	visitors []Visitor

	id string
}

func NewWalker(visitors ...Visitor) *Walker {
	return &Walker{visitors: visitors}
}

func (w *Walker) Add(v Visitor) {
	w.visitors = append(w.visitors, v)
}

// Id only available after walk
func (w *Walker) Id() string {
	return w.id
}

// errReporter is implemented by visitors writing to a sink that can fail.
type errReporter interface {
	Err() error
}

// Walk emits the events of features. It stops at the next feature boundary
// once a visitor reports an output error, and returns that error.
func (w *Walker) Walk(features *ast.Features) error {
	w.id = uuid.NewString()
	slog.Debug("Start walking run", "run", w.id, "features", len(features.Features), "visitors", len(w.visitors))

	w.emit(func(v Visitor) { v.BeforeFeatures(features) })

	for _, feature := range features.Features {
		w.feature(feature)

		if err := w.err(); err != nil {
			slog.Debug("Stop walking run", "run", w.id, "feature", feature.URI, "err", err)
			return ee.Wrap(err, "cannot write report")
		}
	}

	w.emit(func(v Visitor) { v.AfterFeatures(features) })

	if err := w.err(); err != nil {
		return ee.Wrap(err, "cannot write report")
	}

	slog.Debug("Finish walking run", "run", w.id)
	return nil
}

func (w *Walker) emit(event func(v Visitor)) {
	for _, v := range w.visitors {
		event(v)
	}
}

func (w *Walker) err() error {
	for _, v := range w.visitors {
		if r, ok := v.(errReporter); ok {
			if err := r.Err(); err != nil {
				return err
			}
		}
	}
	return nil
}

func (w *Walker) feature(feature *ast.Feature) {
	slog.Debug("Walk feature", "run", w.id, "uri", feature.URI)

	w.emit(func(v Visitor) { v.BeforeFeature(feature) })
	w.emit(func(v Visitor) { v.FeatureName(feature.Keyword, feature.Name, feature.Description, feature.Tags) })

	if bg := feature.Background; bg != nil {
		w.background(bg)
	}

	for _, element := range feature.Elements {
		switch el := element.(type) {
		case *ast.Scenario:
			w.scenario(el)
		case *ast.Outline:
			w.outline(el)
		}
	}

	w.emit(func(v Visitor) { v.AfterFeature(feature) })
}

func (w *Walker) background(bg *ast.Background) {
	w.emit(func(v Visitor) { v.BeforeBackground(bg) })
	w.emit(func(v Visitor) { v.ScenarioName(bg.Keyword, bg.Name, nil) })
	w.steps(bg.Steps, true)
	w.emit(func(v Visitor) { v.AfterBackground(bg) })
}

func (w *Walker) scenario(s *ast.Scenario) {
	w.emit(func(v Visitor) { v.BeforeFeatureElement(s) })
	w.emit(func(v Visitor) { v.ScenarioName(s.Keyword, s.Name, s.Tags) })
	w.exception(s.BeforeError)
	w.steps(s.Steps, true)
	w.exception(s.AfterError)
	w.emit(func(v Visitor) { v.AfterFeatureElement(s) })
}

func (w *Walker) outline(o *ast.Outline) {
	w.emit(func(v Visitor) { v.BeforeOutline(o) })
	w.emit(func(v Visitor) { v.ScenarioName(o.Keyword, o.Name, o.Tags) })
	w.steps(o.Steps, false)

	for _, ex := range o.Examples {
		w.examples(ex)
	}

	w.emit(func(v Visitor) { v.AfterOutline(o) })
}

func (w *Walker) examples(ex *ast.Examples) {
	w.emit(func(v Visitor) { v.ExamplesName(ex.Keyword, ex.Name) })
	w.emit(func(v Visitor) { v.BeforeOutlineTable(ex) })

	if header := ex.Header(); header != nil {
		values := header.Values()
		w.emit(func(v Visitor) { v.BeforeTableRow(values) })
		for _, value := range values {
			w.emit(func(v Visitor) { v.TableCellValue(value, status.SkippedParam) })
		}
		w.emit(func(v Visitor) { v.AfterTableRow(values) })
	}

	for _, row := range ex.Body() {
		w.row(row)
	}

	w.emit(func(v Visitor) { v.AfterOutlineTable(ex) })
}

func (w *Walker) row(row *ast.Row) {
	values := row.Values()

	w.emit(func(v Visitor) { v.BeforeFeatureElement(row) })
	w.emit(func(v Visitor) { v.BeforeTableRow(values) })
	w.exception(row.Error)
	for _, cell := range row.Cells {
		w.emit(func(v Visitor) { v.TableCellValue(cell.Value, cell.Status) })
	}
	w.emit(func(v Visitor) { v.AfterTableRow(values) })
	w.emit(func(v Visitor) { v.AfterFeatureElement(row) })
}

// steps walks a step block; outline templates did not run and carry no
// results.
func (w *Walker) steps(steps []*ast.Step, ran bool) {
	w.emit(func(v Visitor) { v.BeforeSteps(steps) })
	for _, step := range steps {
		w.step(step, ran)
	}
	w.emit(func(v Visitor) { v.AfterSteps(steps) })
}

func (w *Walker) step(step *ast.Step, ran bool) {
	st := step.Status()
	if !ran || st == status.None {
		st = status.Skipped
	}

	w.emit(func(v Visitor) { v.BeforeStep(step) })
	w.emit(func(v Visitor) { v.StepName(step.Keyword, step.Text, st) })

	if arg := step.Arg(); arg != nil {
		w.multilineArg(arg, st)
	}

	if result := step.Result; ran && result != nil {
		if result.Status == status.Failed {
			w.exception(result.Error)
		}
		w.emit(func(v Visitor) { v.AfterStepResult(result) })
	}

	w.emit(func(v Visitor) { v.AfterStep(step) })
}

func (w *Walker) multilineArg(arg ast.MultilineArg, st status.Kind) {
	w.emit(func(v Visitor) { v.BeforeMultilineArg(arg) })

	switch a := arg.(type) {
	case ast.Table:
		for _, row := range a {
			w.emit(func(v Visitor) { v.BeforeTableRow(row) })
			for _, value := range row {
				w.emit(func(v Visitor) { v.TableCellValue(value, st) })
			}
			w.emit(func(v Visitor) { v.AfterTableRow(row) })
		}
	case *ast.DocString:
		w.emit(func(v Visitor) { v.DocString(a) })
	}

	w.emit(func(v Visitor) { v.AfterMultilineArg(arg) })
}

func (w *Walker) exception(msg string) {
	if msg == "" {
		return
	}

	err := errors.New(msg)
	w.emit(func(v Visitor) { v.Exception(err, status.Failed) })
}
