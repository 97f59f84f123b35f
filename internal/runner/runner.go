// Package runner loads run documents and reports them through the
// configured formatters.
package runner

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ImSingee/go-ex/ee"
	"github.com/ImSingee/go-ex/exstrings"
	"github.com/ImSingee/go-ex/mr"

	"github.com/jimvm/cucumber/internal/ast"
	"github.com/jimvm/cucumber/internal/config"
	"github.com/jimvm/cucumber/internal/formatter"
	"github.com/jimvm/cucumber/internal/lib/glob"
	"github.com/jimvm/cucumber/internal/lib/ignore"
	"github.com/jimvm/cucumber/internal/stats"
	"github.com/jimvm/cucumber/internal/status"
	"github.com/jimvm/cucumber/internal/visitor"
)

var DefaultFormat = config.Format{Name: "progress"}

// Stdin as a path reads one run document from standard input.
const Stdin = "-"

// Run reports the run documents found at paths (files, or directories to
// scan). It returns ee.Phantom when the run itself failed.
func Run(paths []string, options *config.Options) (err error) {
	features, err := Load(paths, options.Include)
	if err != nil {
		return err
	}

	formats := options.Formats
	if len(formats) == 0 {
		formats = []config.Format{DefaultFormat}
	}

	var formatters []formatter.Formatter
	defer func() {
		for _, f := range formatters {
			if closeErr := f.Close(); closeErr != nil && err == nil {
				err = ee.Wrap(closeErr, "cannot close output")
			}
		}
	}()

	walker := visitor.NewWalker()
	for _, format := range formats {
		sink, openErr := formatter.Open(format.Out)
		if openErr != nil {
			return openErr
		}

		f, newErr := formatter.New(format.Name, sink, options, decorator(options.Color, format.Out))
		if newErr != nil {
			_ = sink.Close()
			return newErr
		}

		formatters = append(formatters, f)
		walker.Add(f)
	}

	if err = walker.Walk(features); err != nil {
		return err
	}
	slog.Debug("Reported run", "run", walker.Id(), "features", len(features.Features), "formats", len(formats))

	if stats.Collect(features).Failed(options.Strict, options.Wip) {
		return ee.Phantom
	}

	return nil
}

// Load reads and merges the run documents at paths, keeping the features
// whose uri matches include.
func Load(paths []string, include []string) (*ast.Features, error) {
	if len(paths) == 0 {
		paths = []string{"."}
	}

	matcher, err := glob.Compile(include)
	if err != nil {
		return nil, ee.Wrap(err, "invalid --include")
	}

	var files []string
	for _, p := range paths {
		if p == Stdin {
			files = append(files, p)
			continue
		}

		info, err := os.Stat(p)
		if err != nil {
			return nil, ee.Wrapf(err, "cannot access %s", p)
		}

		if !info.IsDir() {
			files = append(files, p)
			continue
		}

		found, err := ignore.Discover(p)
		if err != nil {
			return nil, ee.Wrapf(err, "cannot scan %s", p)
		}

		// profile files live next to the documents
		files = append(files, mr.Filter(found, func(file string, _index int) bool {
			return !exstrings.InStringList(config.ConfigFileNames, filepath.Base(file))
		})...)
	}

	if len(files) == 0 {
		return nil, ee.New("no run documents found")
	}

	docs := make([]*ast.Features, 0, len(files))
	for _, file := range files {
		doc, err := load(file)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	features := ast.Merge(docs...)
	features.Features = mr.Filter(features.Features, func(f *ast.Feature, _index int) bool {
		return matcher.Match(f.URI)
	})

	slog.Debug("Loaded run", "documents", len(docs), "features", len(features.Features))

	return features, nil
}

func load(file string) (*ast.Features, error) {
	if file != Stdin {
		return ast.Load(file)
	}

	doc, err := ast.Decode(os.Stdin)
	if err != nil {
		return nil, ee.Wrap(err, "invalid run document on stdin")
	}
	return doc, nil
}

func decorator(mode config.ColorMode, dest string) status.Decorator {
	switch mode {
	case config.ColorAlways:
		return status.Colored
	case config.ColorNever:
		return status.Plain
	}

	if dest == "" || dest == "-" {
		return status.Colored
	}
	return status.Plain
}
