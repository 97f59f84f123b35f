package glob

import (
	"path"
	"strings"

	"github.com/ImSingee/go-ex/ee"
	"github.com/gobwas/glob"
)

// Matcher matches feature uris against include patterns. Patterns without
// a slash match the base name only.
type Matcher struct {
	patterns []string
	globs    []glob.Glob
}

func Compile(patterns []string) (*Matcher, error) {
	m := &Matcher{
		patterns: patterns,
		globs:    make([]glob.Glob, 0, len(patterns)),
	}

	for _, p := range patterns {
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, ee.Wrapf(err, "invalid pattern `%s`", p)
		}
		m.globs = append(m.globs, g)
	}

	return m, nil
}

// Match reports whether name matches any pattern. An empty Matcher
// matches everything.
func (m *Matcher) Match(name string) bool {
	if m == nil || len(m.globs) == 0 {
		return true
	}

	for i, g := range m.globs {
		if match(m.patterns[i], g, name) {
			return true
		}
	}
	return false
}

func match(pattern string, g glob.Glob, name string) bool {
	name = strings.ReplaceAll(name, "\\", "/")

	if strings.Contains(pattern, "/") {
		return g.Match(name)
	} else {
		return g.Match(path.Base(name))
	}
}
