package stats

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/ImSingee/go-ex/mr"

	"github.com/jimvm/cucumber/internal/ast"
	"github.com/jimvm/cucumber/internal/lib/shells"
	"github.com/jimvm/cucumber/internal/status"
)

// Reporter prints the end-of-run listings of a Summary.
type Reporter struct {
	Out      io.Writer
	Decorate status.Decorator
	Summary  *Summary
}

func (r *Reporter) println(a ...any) {
	_, _ = fmt.Fprintln(r.Out, a...)
}

// PrintSteps lists the steps that ended with status k.
func (r *Reporter) PrintSteps(k status.Kind) {
	steps := r.Summary.StepsWith(k)
	if len(steps) == 0 {
		return
	}

	r.println(r.Decorate(fmt.Sprintf("(::) %s steps (::)", k), k))
	r.println()

	for _, step := range steps {
		line := backtraceLine(step.Location(), step.Keyword+step.Text)
		if k == status.Failed && step.Error != "" {
			line = strings.TrimRight(step.Error, "\n") + "\n" + line
		}
		r.println(r.Decorate(line, k))
		r.println()
	}
}

// PrintStats prints failing scenarios as rerun commands followed by the
// scenario and step counts.
func (r *Reporter) PrintStats(profiles []string) {
	failures := dedupe(r.Summary.ScenariosWith(status.Failed))
	if len(failures) > 0 {
		r.println(r.Decorate("Failing Scenarios:", status.Failed))
		for _, sc := range failures {
			comment := fmt.Sprintf(" # %s: %s", sc.Keyword, sc.Name)
			r.println(r.Decorate(shells.RerunCommand(profiles, sc.Location()), status.Failed) + comment)
		}
		r.println()
	}

	r.println(CountLine("scenario", r.Summary.ScenarioCounts(), r.Decorate))
	r.println(CountLine("step", r.Summary.StepCounts(), r.Decorate))

	if r.Summary.Duration > 0 {
		r.println(FormatDuration(r.Summary.Duration))
	}
}

// PrintSnippets suggests step definitions for undefined steps.
func (r *Reporter) PrintSnippets() {
	undefined := r.Summary.StepsWith(status.Undefined)
	if len(undefined) == 0 {
		return
	}

	seen := make(map[string]bool, len(undefined))
	snippets := make([]string, 0, len(undefined))
	for _, step := range undefined {
		s := Snippet(step.ActualKeyword, step.Text, step.Arg)
		if seen[s] {
			continue
		}
		seen[s] = true
		snippets = append(snippets, s)
	}

	text := "\nYou can implement step definitions for undefined steps with these snippets:\n\n" + strings.Join(snippets, "\n\n")
	r.println(r.Decorate(text, status.Undefined))
	r.println()
}

// PrintPassingWip reports scenarios that passed although --wip was used.
func (r *Reporter) PrintPassingWip() {
	passed := r.Summary.ScenariosWith(status.Passed)
	if len(passed) == 0 {
		r.println(r.Decorate("\nThe --wip switch was used, so the failures were expected. All is good.\n", status.Passed))
		return
	}

	r.println(r.Decorate("\nThe --wip switch was used, so I didn't expect anything to pass. These scenarios passed:", status.Failed))
	r.println(r.Decorate("(::) passed scenarios (::)", status.Passed))
	r.println()
	for _, sc := range passed {
		r.println(r.Decorate(backtraceLine(sc.Location(), sc.Keyword+": "+sc.Name), status.Passed))
		r.println()
	}
}

// CountLine renders "4 scenarios (1 failed, 3 passed)".
func CountLine(noun string, c Counts, decorate status.Decorator) string {
	total := c.Total()
	line := fmt.Sprintf("%d %s", total, noun)
	if total != 1 {
		line += "s"
	}

	reported := mr.Filter(status.Reported, func(k status.Kind, _index int) bool {
		return c[k] > 0
	})
	if len(reported) == 0 {
		return line
	}

	parts := mr.Map(reported, func(k status.Kind, _index int) string {
		return decorate(fmt.Sprintf("%d %s", c[k], k), k)
	})
	return line + " (" + strings.Join(parts, ", ") + ")"
}

func FormatDuration(d time.Duration) string {
	minutes := int(d / time.Minute)
	seconds := (d % time.Minute).Seconds()
	return fmt.Sprintf("%dm%.3fs", minutes, seconds)
}

func backtraceLine(location, name string) string {
	return fmt.Sprintf("%s:in `%s'", location, name)
}

func dedupe(scenarios []Scenario) []Scenario {
	seen := make(map[string]bool, len(scenarios))
	return mr.Filter(scenarios, func(sc Scenario, _index int) bool {
		loc := sc.Location()
		if seen[loc] {
			return false
		}
		seen[loc] = true
		return true
	})
}

var quotedParam = regexp.MustCompile(`"[^"]*"`)

// Snippet renders a step definition skeleton for an undefined step.
func Snippet(keyword, text string, arg ast.MultilineArg) string {
	escaped := strings.ReplaceAll(regexp.QuoteMeta(text), "/", `\/`)

	var params []string
	escaped = quotedParam.ReplaceAllStringFunc(escaped, func(string) string {
		params = append(params, fmt.Sprintf("arg%d", len(params)+1))
		return `"([^"]*)"`
	})

	switch arg.(type) {
	case ast.Table:
		params = append(params, "table")
	case *ast.DocString:
		params = append(params, "string")
	}

	block := ""
	if len(params) > 0 {
		block = " |" + strings.Join(params, ", ") + "|"
	}

	return fmt.Sprintf("%s /^%s$/ do%s\n  pending # express the regexp above with the code you wish you had\nend", keyword, escaped, block)
}

// Failed reports whether the run should exit with a failure status.
func (s *Summary) Failed(strict, wip bool) bool {
	c := s.ScenarioCounts()
	if wip {
		return c[status.Passed] > 0
	}
	if c[status.Failed] > 0 {
		return true
	}
	return strict && (c[status.Undefined] > 0 || c[status.Pending] > 0)
}
