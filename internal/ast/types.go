// Package ast holds the run document produced by the execution engine: the
// feature tree as written, annotated with the results of running it.
package ast

import (
	"encoding/json"
	"time"

	"github.com/ImSingee/go-ex/ee"

	"github.com/jimvm/cucumber/internal/status"
)

type Features struct {
	Version  string     `json:"version"`
	Features []*Feature `json:"features"`
}

type Feature struct {
	URI         string      `json:"uri"`
	Keyword     string      `json:"keyword"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Tags        []string    `json:"tags,omitempty"`
	Line        int         `json:"line,omitempty"`
	Background  *Background `json:"background,omitempty"`

	Elements []Element `json:"-"`
}

type Background struct {
	Keyword string  `json:"keyword"`
	Name    string  `json:"name,omitempty"`
	Line    int     `json:"line,omitempty"`
	Steps   []*Step `json:"steps"`
}

// Element is a Scenario or an Outline.
type Element interface {
	element()
}

// FeatureElement is one executed unit: a Scenario or a data Row of an
// Outline's examples.
type FeatureElement interface {
	featureElement()
}

type Scenario struct {
	Keyword string   `json:"keyword"`
	Name    string   `json:"name"`
	Line    int      `json:"line,omitempty"`
	Tags    []string `json:"tags,omitempty"`
	Steps   []*Step  `json:"steps"`

	// BeforeError and AfterError hold failures raised outside any step
	// (hooks, step matching).
	BeforeError string `json:"before_error,omitempty"`
	AfterError  string `json:"after_error,omitempty"`
}

func (*Scenario) element()        {}
func (*Scenario) featureElement() {}

type Outline struct {
	Keyword  string      `json:"keyword"`
	Name     string      `json:"name"`
	Line     int         `json:"line,omitempty"`
	Tags     []string    `json:"tags,omitempty"`
	Steps    []*Step     `json:"steps"`
	Examples []*Examples `json:"examples"`
}

func (*Outline) element() {}

type Examples struct {
	Keyword string `json:"keyword"`
	Name    string `json:"name,omitempty"`
	Line    int    `json:"line,omitempty"`
	// Rows[0] is the header row.
	Rows []*Row `json:"rows"`
}

func (e *Examples) Header() *Row {
	if len(e.Rows) == 0 {
		return nil
	}
	return e.Rows[0]
}

func (e *Examples) Body() []*Row {
	if len(e.Rows) < 2 {
		return nil
	}
	return e.Rows[1:]
}

// Values returns the cell values of every row, header included.
func (e *Examples) Values() [][]string {
	values := make([][]string, 0, len(e.Rows))
	for _, row := range e.Rows {
		values = append(values, row.Values())
	}
	return values
}

type Row struct {
	Line  int    `json:"line,omitempty"`
	Cells []Cell `json:"cells"`
	// Results holds one result per outline step; header rows have none.
	Results []*StepResult `json:"results,omitempty"`
	// Error is a failure raised while running the row that is not carried
	// by a cell status.
	Error string `json:"error,omitempty"`
}

func (*Row) featureElement() {}

func (r *Row) Values() []string {
	values := make([]string, len(r.Cells))
	for i, c := range r.Cells {
		values[i] = c.Value
	}
	return values
}

// Cell is one outline table value. Status is None when the engine did not
// attribute a status to the cell.
type Cell struct {
	Value  string      `json:"value"`
	Status status.Kind `json:"status,omitempty"`
}

func (c *Cell) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*c = Cell{Value: s}
		return nil
	}

	type plain Cell
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*c = Cell(p)
	return nil
}

type Step struct {
	Keyword   string      `json:"keyword"`
	Text      string      `json:"text"`
	Line      int         `json:"line,omitempty"`
	Table     Table       `json:"table,omitempty"`
	DocString *DocString  `json:"doc_string,omitempty"`
	Result    *StepResult `json:"result,omitempty"`
}

// Name is the step line as written, keyword included.
func (s *Step) Name() string {
	return s.Keyword + s.Text
}

// Arg returns the multiline argument of the step, or nil.
func (s *Step) Arg() MultilineArg {
	switch {
	case len(s.Table) > 0:
		return s.Table
	case s.DocString != nil:
		return s.DocString
	}
	return nil
}

// Status is the result status of the step, None when it did not run.
func (s *Step) Status() status.Kind {
	if s.Result == nil {
		return status.None
	}
	return s.Result.Status
}

// MultilineArg is a Table or a *DocString.
type MultilineArg interface {
	multilineArg()
}

type Table [][]string

func (Table) multilineArg() {}

type DocString struct {
	Content     string `json:"content"`
	ContentType string `json:"content_type,omitempty"`
}

func (*DocString) multilineArg() {}

// StepResult is the outcome of one executed step. It is never modified
// once loaded.
type StepResult struct {
	Status   status.Kind   `json:"status"`
	Error    string        `json:"error,omitempty"`
	Duration time.Duration `json:"duration,omitempty"`
}

func (f *Feature) UnmarshalJSON(data []byte) error {
	type plain Feature
	var raw struct {
		plain
		Elements []json.RawMessage `json:"elements"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*f = Feature(raw.plain)
	f.Elements = make([]Element, 0, len(raw.Elements))

	for i, msg := range raw.Elements {
		var head struct {
			Type string `json:"type"`
		}
		if err := json.Unmarshal(msg, &head); err != nil {
			return err
		}

		var el Element
		switch head.Type {
		case "", "scenario":
			el = &Scenario{}
		case "scenario_outline":
			el = &Outline{}
		default:
			return ee.Errorf("element %d of %s: unknown type %q", i+1, f.URI, head.Type)
		}

		if err := json.Unmarshal(msg, el); err != nil {
			return ee.Wrapf(err, "element %d of %s", i+1, f.URI)
		}
		f.Elements = append(f.Elements, el)
	}

	return nil
}
