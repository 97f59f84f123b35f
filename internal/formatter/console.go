package formatter

import (
	"fmt"
	"strings"

	"github.com/jimvm/cucumber/internal/ast"
	"github.com/jimvm/cucumber/internal/config"
	"github.com/jimvm/cucumber/internal/stats"
	"github.com/jimvm/cucumber/internal/status"
)

// console holds what the formatters share: the sink, the decoration and
// the end-of-run reporting.
type console struct {
	out      *Sink
	decorate status.Decorator
	opts     *config.Options
}

func (c *console) Err() error {
	return c.out.Err()
}

func (c *console) Close() error {
	return c.out.Close()
}

func (c *console) print(s string) {
	_, _ = c.out.WriteString(s)
}

func (c *console) println(s string) {
	_, _ = c.out.WriteString(s + "\n")
}

func (c *console) printProfileInformation() {
	profiles := c.opts.Profiles
	if len(profiles) == 0 {
		return
	}

	c.println(ProfileSentence(profiles))
}

// ProfileSentence renders "Using the a, b and c profiles...".
func ProfileSentence(profiles []string) string {
	if len(profiles) == 1 {
		return fmt.Sprintf("Using the %s profile...", profiles[0])
	}

	last := len(profiles) - 1
	return fmt.Sprintf("Using the %s and %s profiles...", strings.Join(profiles[:last], ", "), profiles[last])
}

// printSummary prints the end-of-run report. withSteps adds the pending
// and failed step listings.
func (c *console) printSummary(features *ast.Features, withSteps bool) {
	r := &stats.Reporter{
		Out:      c.out,
		Decorate: c.decorate,
		Summary:  stats.Collect(features),
	}

	if withSteps {
		r.PrintSteps(status.Pending)
		r.PrintSteps(status.Failed)
	}
	r.PrintStats(c.opts.Profiles)
	if c.opts.Snippets {
		r.PrintSnippets()
	}
	if c.opts.Wip {
		r.PrintPassingWip()
	}

	_ = c.out.Flush()
}
