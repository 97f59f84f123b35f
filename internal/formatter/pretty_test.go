package formatter

import (
	"testing"

	"github.com/ImSingee/tt"
	"github.com/stretchr/testify/assert"

	"github.com/jimvm/cucumber/internal/ast"
	"github.com/jimvm/cucumber/internal/config"
	"github.com/jimvm/cucumber/internal/status"
)

func bananas() *ast.Features {
	f := feature("Bananas")
	f.Description = "  In order to find my inner monkey\n  As a human\n  I must eat bananas\n"
	return run(f)
}

func pyStringOutline() *ast.Features {
	return run(feature("", &ast.Outline{
		Keyword: "Scenario Outline",
		Name:    "Monkey eats a balanced diet",
		Steps: []*ast.Step{{
			Keyword:   "Given ",
			Text:      "a multiline string:",
			DocString: &ast.DocString{Content: "Monkeys eat <things>"},
		}},
		Examples: []*ast.Examples{{
			Keyword: "Examples",
			Rows: []*ast.Row{
				{Cells: []ast.Cell{{Value: "things"}}},
				{Cells: []ast.Cell{{Value: "apples", Status: status.Undefined}}, Results: []*ast.StepResult{{Status: status.Undefined}}},
			},
		}},
	}))
}

func travelingCircusDocString() *ast.Features {
	return run(feature("Traveling circus", scenario("Monkey goes to town", &ast.Step{
		Keyword:   "Given ",
		Text:      "there is a monkey called:",
		DocString: &ast.DocString{Content: "foo"},
		Result:    &ast.StepResult{Status: status.Undefined},
	})))
}

func travelingCircusTable() *ast.Features {
	return run(feature("Traveling circus", scenario("Monkey goes to town", &ast.Step{
		Keyword: "Given ",
		Text:    "there are monkeys:",
		Table:   ast.Table{{"name"}, {"foo"}, {"bar"}},
		Result:  &ast.StepResult{Status: status.Undefined},
	})))
}

func accountantMonkey() *ast.Features {
	f := feature("accountant monkey", scenario("", &ast.Step{
		Keyword: "Given ",
		Text:    "another table:",
		Table:   ast.Table{{"e", "f"}, {"g", "h"}},
		Result:  &ast.StepResult{Status: status.Undefined},
	}))
	f.Background = &ast.Background{Keyword: "Background", Steps: []*ast.Step{{
		Keyword: "Given ",
		Text:    "table:",
		Table:   ast.Table{{"a", "b"}, {"c", "d"}},
		Result:  &ast.StepResult{Status: status.Undefined},
	}}}
	return run(f)
}

func pyStrings() *ast.Features {
	f := feature("py strings", scenario("", &ast.Step{
		Keyword:   "Given ",
		Text:      "more stuff:",
		DocString: &ast.DocString{Content: "bar"},
		Result:    &ast.StepResult{Status: status.Undefined},
	}))
	f.Background = &ast.Background{Keyword: "Background", Steps: []*ast.Step{{
		Keyword:   "Given ",
		Text:      "stuff:",
		DocString: &ast.DocString{Content: "foo"},
		Result:    &ast.StepResult{Status: status.Undefined},
	}}}
	return run(f)
}

func TestPrettySingleScenario(t *testing.T) {
	got := render(t, "pretty", bananaParty(), options())

	tt.AssertEqual(t, "Feature: Banana party\n"+
		"\n"+
		"  Scenario: Monkey eats banana\n"+
		"    Given x\n"+
		"\n"+
		"1 scenario (1 passed)\n"+
		"1 step (1 passed)\n", got)
}

func TestPretty(t *testing.T) {
	for _, multiline := range []bool{true, false} {
		opts := options(func(o *config.Options) { o.NoMultiline = !multiline })

		t.Run("multiline="+map[bool]string{true: "on", false: "off"}[multiline], func(t *testing.T) {
			t.Run("feature description", func(t *testing.T) {
				got := render(t, "pretty", bananas(), opts)

				assert.Contains(t, got, "Feature: Bananas\n")
				assert.Contains(t, got, "  I must eat bananas\n")
			})

			t.Run("scenario", func(t *testing.T) {
				got := render(t, "pretty", bananaParty(), opts)

				assert.Contains(t, got, "  Scenario: Monkey eats banana\n")
				assert.Contains(t, got, "    Given x\n")
			})

			t.Run("scenario outline", func(t *testing.T) {
				got := render(t, "pretty", fudPyramid(), opts)

				assert.Contains(t, got, "    Given there are <Things>\n"+
					"\n"+
					"    Examples: Fruit\n"+
					"      | Things  |\n"+
					"      | apples  |\n"+
					"      | bananas |\n"+
					"\n"+
					"    Examples: Vegetables\n"+
					"      | Things   |\n"+
					"      | broccoli |\n"+
					"      | carrots  |\n")
				assert.Contains(t, got, "4 scenarios (4 undefined)\n")
				assert.Contains(t, got, "4 steps (4 undefined)\n")
			})

			t.Run("py string", func(t *testing.T) {
				got := render(t, "pretty", travelingCircusDocString(), opts)

				assert.Contains(t, got, "    Given there is a monkey called:\n")
				assert.Equal(t, multiline, contains(got, "      \"\"\"\n      foo\n      \"\"\"\n"))
			})

			t.Run("step table", func(t *testing.T) {
				got := render(t, "pretty", travelingCircusTable(), opts)

				assert.Contains(t, got, "    Given there are monkeys:\n")
				assert.Equal(t, multiline, contains(got, "    Given there are monkeys:\n      | name |\n      | foo  |\n      | bar  |\n"))
				assert.Equal(t, multiline, contains(got, "| foo  |"))
			})

			t.Run("tables in background and scenario", func(t *testing.T) {
				got := render(t, "pretty", accountantMonkey(), opts)

				assert.Contains(t, got, "  Background:\n    Given table:\n")
				assert.Equal(t, multiline, contains(got, "    Given table:\n      | a | b |\n      | c | d |\n"))
				assert.Equal(t, multiline, contains(got, "    Given another table:\n      | e | f |\n      | g | h |\n"))
			})

			t.Run("py strings in background and scenario", func(t *testing.T) {
				got := render(t, "pretty", pyStrings(), opts)

				assert.Equal(t, multiline, contains(got, "    Given stuff:\n      \"\"\"\n      foo\n      \"\"\"\n"))
				assert.Equal(t, multiline, contains(got, "    Given more stuff:\n      \"\"\"\n      bar\n      \"\"\"\n"))
			})
		})
	}
}

func TestPrettyOutlinePyString(t *testing.T) {
	got := render(t, "pretty", pyStringOutline(), options())

	assert.Contains(t, got, "  Scenario Outline: Monkey eats a balanced diet\n"+
		"    Given a multiline string:\n"+
		"      \"\"\"\n"+
		"      Monkeys eat <things>\n"+
		"      \"\"\"\n"+
		"\n"+
		"    Examples:\n"+
		"      | things |\n"+
		"      | apples |\n")
}

func TestPrettyFailures(t *testing.T) {
	features := run(feature("Failures",
		&ast.Scenario{Keyword: "Scenario", Name: "hooked", BeforeError: "hook failed", Steps: []*ast.Step{
			{Keyword: "Given ", Text: "x", Result: &ast.StepResult{Status: status.Skipped}},
		}},
		scenario("broken", &ast.Step{Keyword: "Given ", Text: "boom", Result: &ast.StepResult{Status: status.Failed, Error: "exploded\nat here"}}),
		&ast.Outline{Keyword: "Scenario Outline", Name: "rows", Steps: []*ast.Step{{Keyword: "Given ", Text: "<n>"}}, Examples: []*ast.Examples{{
			Keyword: "Examples",
			Rows: []*ast.Row{
				{Cells: []ast.Cell{{Value: "n"}}},
				{Cells: []ast.Cell{{Value: "1", Status: status.Failed}}, Error: "row broke", Results: []*ast.StepResult{{Status: status.Failed}}},
			},
		}}},
	))

	got := render(t, "pretty", features, options())

	assert.Contains(t, got, "  Scenario: hooked\n    hook failed\n    Given x\n")
	assert.Contains(t, got, "    Given boom\n      exploded\n      at here\n\n")
	assert.Contains(t, got, "      | 1 |\n        row broke\n")
}

func TestPrettyTagsAndProfiles(t *testing.T) {
	f := feature("Tagged", &ast.Scenario{Keyword: "Scenario", Name: "one", Tags: []string{"@wip", "@slow"}})
	f.Tags = []string{"@billing"}

	got := render(t, "pretty", run(f), options(func(o *config.Options) { o.Profiles = []string{"ci", "html"} }))

	assert.Contains(t, got, "Using the ci and html profiles...\n@billing\nFeature: Tagged\n")
	assert.Contains(t, got, "  @wip @slow\n  Scenario: one\n")
}

func TestPrettyHeaderCell(t *testing.T) {
	out := newOutput()
	p := NewPretty(out.sink, options(), status.Plain)

	p.TableCellValue("value", status.SkippedParam)
	p.BeforeOutlineTable(&ast.Examples{})
	p.TableCellValue("value", status.SkippedParam)

	tt.AssertEqual(t, "", out.String())
}

func TestPrettyIdempotent(t *testing.T) {
	first := render(t, "pretty", accountantMonkey(), options())
	second := render(t, "pretty", accountantMonkey(), options())

	tt.AssertEqual(t, first, second)
}

func TestUnknownFormat(t *testing.T) {
	_, err := New("html", NewSink(nil), options(), status.Plain)
	assert.Error(t, err)
}

func TestPrettyEmptyDocString(t *testing.T) {
	got := render(t, "pretty", run(feature("Letters", scenario("blank", &ast.Step{
		Keyword:   "Given ",
		Text:      "an empty letter:",
		DocString: &ast.DocString{},
		Result:    passed(),
	}))), options())

	assert.Contains(t, got, "    Given an empty letter:\n      \"\"\"\n      \"\"\"\n")
}
