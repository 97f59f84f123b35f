package formatter

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jimvm/cucumber/internal/ast"
	"github.com/jimvm/cucumber/internal/config"
	"github.com/jimvm/cucumber/internal/status"
	"github.com/jimvm/cucumber/internal/visitor"
)

func passed() *ast.StepResult {
	return &ast.StepResult{Status: status.Passed}
}

func feature(name string, elements ...ast.Element) *ast.Feature {
	return &ast.Feature{
		URI:      "features/test.feature",
		Keyword:  "Feature",
		Name:     name,
		Elements: elements,
	}
}

func scenario(name string, steps ...*ast.Step) *ast.Scenario {
	return &ast.Scenario{Keyword: "Scenario", Name: name, Line: 3, Steps: steps}
}

func run(features ...*ast.Feature) *ast.Features {
	return &ast.Features{Features: features}
}

func bananaParty() *ast.Features {
	return run(feature("Banana party",
		scenario("Monkey eats banana", &ast.Step{Keyword: "Given ", Text: "x", Line: 4, Result: passed()}),
	))
}

// fudPyramid is an outline with two examples blocks of two undefined rows.
func fudPyramid() *ast.Features {
	undefined := func(line int, value string) *ast.Row {
		return &ast.Row{
			Line:    line,
			Cells:   []ast.Cell{{Value: value, Status: status.Undefined}},
			Results: []*ast.StepResult{{Status: status.Undefined}},
		}
	}
	header := func(line int) *ast.Row {
		return &ast.Row{Line: line, Cells: []ast.Cell{{Value: "Things"}}}
	}

	return run(feature("Fud Pyramid", &ast.Outline{
		Keyword: "Scenario Outline",
		Name:    "Monkey eats a balanced diet",
		Line:    3,
		Steps:   []*ast.Step{{Keyword: "Given ", Text: "there are <Things>", Line: 4}},
		Examples: []*ast.Examples{
			{Keyword: "Examples", Name: "Fruit", Rows: []*ast.Row{header(7), undefined(8, "apples"), undefined(9, "bananas")}},
			{Keyword: "Examples", Name: "Vegetables", Rows: []*ast.Row{header(11), undefined(12, "broccoli"), undefined(13, "carrots")}},
		},
	}))
}

type output struct {
	buf  *bytes.Buffer
	sink *Sink
}

func newOutput() *output {
	buf := &bytes.Buffer{}
	return &output{buf: buf, sink: NewSink(buf)}
}

func (o *output) String() string {
	_ = o.sink.Flush()
	return o.buf.String()
}

func options(apply ...func(o *config.Options)) *config.Options {
	o := config.Default()
	for _, f := range apply {
		f(o)
	}
	return o
}

func noMultiline(o *config.Options) {
	o.NoMultiline = true
}

// render walks features through a new formatter of the given format.
func render(t *testing.T, format string, features *ast.Features, opts *config.Options) string {
	t.Helper()

	out := newOutput()
	f, err := New(format, out.sink, opts, status.Plain)
	require.NoError(t, err)

	require.NoError(t, visitor.NewWalker(f).Walk(features))
	require.NoError(t, f.Close())

	return out.String()
}
