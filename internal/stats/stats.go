// Package stats aggregates a run into scenario and step counts and prints
// the end-of-run summary.
package stats

import (
	"fmt"
	"strings"
	"time"

	"github.com/jimvm/cucumber/internal/ast"
	"github.com/jimvm/cucumber/internal/status"
)

type Counts map[status.Kind]int

func (c Counts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// Scenario is one executed scenario or outline example row.
type Scenario struct {
	URI     string
	Line    int
	Keyword string
	Name    string
	Status  status.Kind
}

func (s Scenario) Location() string {
	return fmt.Sprintf("%s:%d", s.URI, s.Line)
}

// Step is one executed step.
type Step struct {
	URI     string
	Line    int
	Keyword string
	// ActualKeyword resolves And/But/* to the keyword they continue.
	ActualKeyword string
	Text          string
	Status        status.Kind
	Error         string
	Arg           ast.MultilineArg
}

func (s Step) Location() string {
	return fmt.Sprintf("%s:%d", s.URI, s.Line)
}

type Summary struct {
	Scenarios []Scenario
	Steps     []Step
	Duration  time.Duration
}

func (s *Summary) ScenarioCounts() Counts {
	c := Counts{}
	for _, sc := range s.Scenarios {
		c[sc.Status]++
	}
	return c
}

func (s *Summary) StepCounts() Counts {
	c := Counts{}
	for _, st := range s.Steps {
		c[st.Status]++
	}
	return c
}

func (s *Summary) ScenariosWith(k status.Kind) []Scenario {
	var result []Scenario
	for _, sc := range s.Scenarios {
		if sc.Status == k {
			result = append(result, sc)
		}
	}
	return result
}

func (s *Summary) StepsWith(k status.Kind) []Step {
	var result []Step
	for _, st := range s.Steps {
		if st.Status == k {
			result = append(result, st)
		}
	}
	return result
}

// Collect computes the summary of a run. Background steps count once per
// scenario they ran for.
func Collect(features *ast.Features) *Summary {
	s := &Summary{}
	for _, f := range features.Features {
		s.feature(f)
	}
	return s
}

func (s *Summary) feature(f *ast.Feature) {
	var background []*ast.Step
	if f.Background != nil {
		background = f.Background.Steps
	}

	for _, element := range f.Elements {
		switch el := element.(type) {
		case *ast.Scenario:
			s.scenario(f.URI, background, el)
		case *ast.Outline:
			for _, ex := range el.Examples {
				header := ex.Header()
				for _, row := range ex.Body() {
					s.row(f.URI, background, el, header, row)
				}
			}
		}
	}
}

func (s *Summary) scenario(uri string, background []*ast.Step, sc *ast.Scenario) {
	worst := status.None
	if sc.BeforeError != "" || sc.AfterError != "" {
		worst = status.Failed
	}

	k := keywords{}
	for _, step := range append(append([]*ast.Step(nil), background...), sc.Steps...) {
		if step.Result == nil {
			continue
		}
		st := s.step(uri, step.Line, k.resolve(step.Keyword), step.Keyword, step.Text, step.Arg(), step.Result)
		if status.Worse(st, worst) {
			worst = st
		}
	}

	s.Scenarios = append(s.Scenarios, Scenario{
		URI:     uri,
		Line:    sc.Line,
		Keyword: sc.Keyword,
		Name:    sc.Name,
		Status:  orPassed(worst),
	})
}

func (s *Summary) row(uri string, background []*ast.Step, o *ast.Outline, header, row *ast.Row) {
	worst := status.None
	if row.Error != "" {
		worst = status.Failed
	}

	k := keywords{}
	for _, step := range background {
		if step.Result == nil {
			continue
		}
		st := s.step(uri, step.Line, k.resolve(step.Keyword), step.Keyword, step.Text, step.Arg(), step.Result)
		if status.Worse(st, worst) {
			worst = st
		}
	}

	for i, step := range o.Steps {
		if i >= len(row.Results) || row.Results[i] == nil {
			continue
		}
		text := substitute(step.Text, header, row)
		st := s.step(uri, rowLine(o, row), k.resolve(step.Keyword), step.Keyword, text, step.Arg(), row.Results[i])
		if status.Worse(st, worst) {
			worst = st
		}
	}

	if len(row.Results) == 0 {
		for _, c := range row.Cells {
			if status.Reportable(c.Status) && status.Worse(c.Status, worst) {
				worst = c.Status
			}
		}
	}

	s.Scenarios = append(s.Scenarios, Scenario{
		URI:     uri,
		Line:    rowLine(o, row),
		Keyword: o.Keyword,
		Name:    o.Name,
		Status:  orPassed(worst),
	})
}

func (s *Summary) step(uri string, line int, actual, keyword, text string, arg ast.MultilineArg, result *ast.StepResult) status.Kind {
	s.Steps = append(s.Steps, Step{
		URI:           uri,
		Line:          line,
		Keyword:       keyword,
		ActualKeyword: actual,
		Text:          text,
		Status:        result.Status,
		Error:         result.Error,
		Arg:           arg,
	})
	s.Duration += result.Duration

	return result.Status
}

func rowLine(o *ast.Outline, row *ast.Row) int {
	if row.Line != 0 {
		return row.Line
	}
	return o.Line
}

// an element without any result (no steps) passed
func orPassed(k status.Kind) status.Kind {
	if k == status.None {
		return status.Passed
	}
	return k
}

func substitute(text string, header, row *ast.Row) string {
	if header == nil {
		return text
	}

	for i, name := range header.Values() {
		if i >= len(row.Cells) {
			break
		}
		text = strings.ReplaceAll(text, "<"+name+">", row.Cells[i].Value)
	}
	return text
}

// keywords remembers the last Given/When/Then of a scenario.
type keywords struct {
	last string
}

func (k *keywords) resolve(keyword string) string {
	switch strings.TrimSpace(keyword) {
	case "And", "But", "*":
		if k.last != "" {
			return k.last
		}
		return "Given"
	}

	k.last = strings.TrimSpace(keyword)
	return k.last
}
