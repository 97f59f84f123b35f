package ast

import (
	"encoding/json"
	"io"
	"log/slog"
	"strings"

	"github.com/ImSingee/go-ex/ee"
	"github.com/ImSingee/go-ex/exjson"
	"github.com/ImSingee/semver"

	"github.com/jimvm/cucumber/internal/status"
)

// SchemaVersion is the run document version written by the engine.
const SchemaVersion = "1.0.0"

const supportedMajor = 1

// Load reads a run document from filename.
func Load(filename string) (*Features, error) {
	doc := &Features{}
	if err := exjson.Read(filename, doc); err != nil {
		return nil, ee.Wrapf(err, "cannot read run document %s", filename)
	}

	if err := checkVersion(doc.Version); err != nil {
		return nil, ee.Wrapf(err, "invalid run document %s", filename)
	}
	if err := validate(doc); err != nil {
		return nil, ee.Wrapf(err, "invalid run document %s", filename)
	}

	slog.Debug("Loaded run document", "file", filename, "version", doc.Version, "features", len(doc.Features))

	return doc, nil
}

// Decode reads a run document from r.
func Decode(r io.Reader) (*Features, error) {
	doc := &Features{}
	if err := json.NewDecoder(r).Decode(doc); err != nil {
		return nil, ee.Wrap(err, "cannot decode run document")
	}

	if err := checkVersion(doc.Version); err != nil {
		return nil, err
	}
	if err := validate(doc); err != nil {
		return nil, err
	}

	return doc, nil
}

// validate checks that every step result carries an execution status.
func validate(doc *Features) error {
	for _, f := range doc.Features {
		if f.Background != nil {
			if err := validateSteps(f.URI, f.Background.Steps); err != nil {
				return err
			}
		}

		for _, element := range f.Elements {
			switch el := element.(type) {
			case *Scenario:
				if err := validateSteps(f.URI, el.Steps); err != nil {
					return err
				}
			case *Outline:
				if err := validateSteps(f.URI, el.Steps); err != nil {
					return err
				}
				for _, ex := range el.Examples {
					for n, row := range ex.Body() {
						for i, result := range row.Results {
							if err := validateResult(result); err != nil {
								return ee.Wrapf(err, "%s: result %d of examples row %d", f.URI, i+1, n+1)
							}
						}
					}
				}
			}
		}
	}

	return nil
}

func validateSteps(uri string, steps []*Step) error {
	for i, step := range steps {
		if err := validateResult(step.Result); err != nil {
			return ee.Wrapf(err, "%s: step %d (%s)", uri, i+1, strings.TrimSpace(step.Name()))
		}
	}
	return nil
}

// a nil result is a step that did not run
func validateResult(result *StepResult) error {
	switch {
	case result == nil:
		return nil
	case result.Status == status.None:
		return ee.New("has no status")
	case !status.Reportable(result.Status):
		return ee.Errorf("has status %s, which is not an execution result", result.Status)
	}
	return nil
}

// an empty version is accepted as the current one
func checkVersion(v string) error {
	if v == "" {
		return nil
	}

	version, err := semver.NewVersion(v)
	if err != nil {
		return ee.Wrapf(err, "malformed version %q", v)
	}
	if version.Major() != supportedMajor {
		return ee.Errorf("unsupported version %s (want %d.x)", v, supportedMajor)
	}

	return nil
}

// Merge joins several documents into one run, keeping feature order.
func Merge(docs ...*Features) *Features {
	merged := &Features{Version: SchemaVersion}
	for _, doc := range docs {
		if doc == nil {
			continue
		}
		merged.Features = append(merged.Features, doc.Features...)
	}
	return merged
}
