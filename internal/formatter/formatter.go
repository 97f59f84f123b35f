// Package formatter renders the events of a run as text.
package formatter

import (
	"github.com/ImSingee/go-ex/ee"

	"github.com/jimvm/cucumber/internal/config"
	"github.com/jimvm/cucumber/internal/status"
	"github.com/jimvm/cucumber/internal/visitor"
)

// Formatter is a visitor writing to its own sink.
type Formatter interface {
	visitor.Visitor

	// Err returns the first error writing the output.
	Err() error
	// Close flushes and releases the output.
	Close() error
}

var (
	_ Formatter = (*Progress)(nil)
	_ Formatter = (*Pretty)(nil)
)

func New(name string, out *Sink, opts *config.Options, decorate status.Decorator) (Formatter, error) {
	switch name {
	case "progress":
		return NewProgress(out, opts, decorate), nil
	case "pretty":
		return NewPretty(out, opts, decorate), nil
	}

	return nil, ee.Errorf("unknown format `%s`", name)
}
