package main

import (
	"strings"

	"github.com/ImSingee/go-ex/ee"
	"github.com/ImSingee/go-ex/exstrings"
	"github.com/ImSingee/go-ex/mr"

	"github.com/jimvm/cucumber/internal/config"
	"github.com/jimvm/cucumber/internal/runner"
)

// formatList keeps --format and --out in command line order, so that each
// --out applies to the --format before it.
type formatList []config.Format

func (l formatList) String() string {
	return strings.Join(mr.Map([]config.Format(l), func(f config.Format, _index int) string {
		if f.Out == "" {
			return f.Name
		}
		return f.Name + ":" + f.Out
	}), ",")
}

type formatValue struct {
	list *formatList
}

func (v formatValue) String() string {
	return v.list.String()
}

func (v formatValue) Set(name string) error {
	if !exstrings.InStringList(config.FormatNames, name) {
		return ee.Errorf("unknown format `%s` (must be %s)", name, strings.Join(config.FormatNames, " or "))
	}

	*v.list = append(*v.list, config.Format{Name: name})
	return nil
}

func (v formatValue) Type() string {
	return "format"
}

type outValue struct {
	list *formatList
}

func (v outValue) String() string {
	return ""
}

// Set applies to the last --format; an --out before any --format applies
// to the default format.
func (v outValue) Set(dest string) error {
	if len(*v.list) == 0 {
		*v.list = append(*v.list, runner.DefaultFormat)
	}

	last := &(*v.list)[len(*v.list)-1]
	if last.Out != "" {
		return ee.Errorf("--format %s already writes to %s", last.Name, last.Out)
	}
	last.Out = dest
	return nil
}

func (v outValue) Type() string {
	return "path"
}
