package visitor

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jimvm/cucumber/internal/ast"
	"github.com/jimvm/cucumber/internal/status"
)

type recorder struct {
	Base
	events []string
	fail   error
}

func (r *recorder) add(format string, args ...any) {
	r.events = append(r.events, fmt.Sprintf(format, args...))
}

func (r *recorder) Err() error { return r.fail }

func (r *recorder) BeforeFeature(f *ast.Feature) { r.add("feature %s", f.Name) }
func (r *recorder) BeforeBackground(*ast.Background) { r.add("background") }
func (r *recorder) BeforeFeatureElement(ast.FeatureElement) { r.add("element") }
func (r *recorder) AfterFeatureElement(ast.FeatureElement) { r.add("/element") }
func (r *recorder) BeforeOutline(*ast.Outline) { r.add("outline") }
func (r *recorder) AfterOutline(*ast.Outline) { r.add("/outline") }
func (r *recorder) BeforeSteps([]*ast.Step) { r.add("steps") }
func (r *recorder) StepName(kw, text string, st status.Kind) { r.add("step %s%s %s", kw, text, st) }
func (r *recorder) DocString(d *ast.DocString) { r.add("doc %s", d.Content) }
func (r *recorder) AfterStepResult(res *ast.StepResult) { r.add("result %s", res.Status) }
func (r *recorder) BeforeOutlineTable(*ast.Examples) { r.add("table") }
func (r *recorder) AfterOutlineTable(*ast.Examples) { r.add("/table") }
func (r *recorder) TableCellValue(value string, st status.Kind) { r.add("cell %s %s", value, st) }
func (r *recorder) Exception(err error, st status.Kind) { r.add("exception %s", err) }

func TestWalkScenario(t *testing.T) {
	features := &ast.Features{Features: []*ast.Feature{{
		Name: "Banana party",
		Background: &ast.Background{Steps: []*ast.Step{
			{Keyword: "Given ", Text: "stuff:", DocString: &ast.DocString{Content: "foo"}, Result: &ast.StepResult{Status: status.Passed}},
		}},
		Elements: []ast.Element{&ast.Scenario{
			BeforeError: "hook",
			Steps: []*ast.Step{
				{Keyword: "Given ", Text: "a", Table: ast.Table{{"x"}}, Result: &ast.StepResult{Status: status.Failed, Error: "boom"}},
				{Keyword: "Then ", Text: "b", Result: &ast.StepResult{Status: status.Skipped}},
			},
		}},
	}}}

	r := &recorder{}
	require.NoError(t, NewWalker(r).Walk(features))

	assert.Equal(t, []string{
		"feature Banana party",
		"background",
		"steps",
		"step Given stuff: passed",
		"doc foo",
		"result passed",
		"element",
		"exception hook",
		"steps",
		"step Given a failed",
		"cell x failed",
		"exception boom",
		"result failed",
		"step Then b skipped",
		"result skipped",
		"/element",
	}, r.events)
}

func TestWalkOutline(t *testing.T) {
	features := &ast.Features{Features: []*ast.Feature{{
		Name: "Fud Pyramid",
		Elements: []ast.Element{&ast.Outline{
			Steps: []*ast.Step{{Keyword: "Given ", Text: "there are <Things>"}},
			Examples: []*ast.Examples{{
				Rows: []*ast.Row{
					{Cells: []ast.Cell{{Value: "Things"}}},
					{Cells: []ast.Cell{{Value: "apples", Status: status.Undefined}}},
					{Cells: []ast.Cell{{Value: "bananas"}}, Error: "after hook"},
				},
			}},
		}},
	}}}

	r := &recorder{}
	require.NoError(t, NewWalker(r).Walk(features))

	assert.Equal(t, []string{
		"feature Fud Pyramid",
		"outline",
		"steps",
		"step Given there are <Things> skipped",
		"table",
		"cell Things skipped_param",
		"element",
		"cell apples undefined",
		"/element",
		"element",
		"exception after hook",
		"cell bananas ",
		"/element",
		"/table",
		"/outline",
	}, r.events)
}

func TestWalkFanOut(t *testing.T) {
	features := &ast.Features{Features: []*ast.Feature{{Name: "a"}, {Name: "b"}}}

	first, second := &recorder{}, &recorder{}
	w := NewWalker(first)
	w.Add(second)
	require.NoError(t, w.Walk(features))

	assert.Equal(t, first.events, second.events)
	assert.NotEmpty(t, w.Id())
}

func TestWalkStopsOnOutputError(t *testing.T) {
	features := &ast.Features{Features: []*ast.Feature{{Name: "a"}, {Name: "b"}}}

	r := &recorder{fail: errors.New("closed pipe")}
	err := NewWalker(r).Walk(features)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "closed pipe"))
	assert.Equal(t, []string{"feature a"}, r.events)
}
