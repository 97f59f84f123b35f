package config

import (
	"github.com/ImSingee/go-ex/ee"
	"github.com/ImSingee/go-ex/exstrings"
	"github.com/ysmood/gson"
)

type ColorMode uint8

const (
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

func ParseColorMode(s string) (ColorMode, error) {
	switch s {
	case "", "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	}
	return ColorAuto, ee.Errorf("invalid color mode `%s` (must be auto, always or never)", s)
}

var FormatNames = []string{"progress", "pretty"}

// Format is one formatter and its destination ("" or "-" for stdout).
type Format struct {
	Name string
	Out  string
}

type Options struct {
	Formats []Format

	// NoMultiline hides step tables and doc strings in pretty output.
	NoMultiline bool
	// Profiles are announced before the run.
	Profiles []string

	Strict   bool
	Wip      bool
	Snippets bool
	Color    ColorMode

	// Include keeps only features whose uri matches one of the patterns.
	Include []string
}

func Default() *Options {
	return &Options{
		Snippets: true,
	}
}

// FromMap reads options from a config map. Unknown keys are ignored.
func FromMap(m map[string]gson.JSON) (*Options, error) {
	o := Default()

	for key, v := range m {
		var err error

		switch key {
		case "no_multiline":
			err = setBool(&o.NoMultiline, key, v)
		case "strict":
			err = setBool(&o.Strict, key, v)
		case "wip":
			err = setBool(&o.Wip, key, v)
		case "snippets":
			err = setBool(&o.Snippets, key, v)
		case "profiles":
			o.Profiles, err = stringList(key, v)
		case "include":
			o.Include, err = stringList(key, v)
		case "color":
			s, ok := v.Val().(string)
			if !ok {
				return nil, ee.Errorf("invalid value type (must be string) for key %s", key)
			}
			o.Color, err = ParseColorMode(s)
		case "format":
			name, ok := v.Val().(string)
			if !ok {
				return nil, ee.Errorf("invalid value type (must be string) for key %s", key)
			}
			if !exstrings.InStringList(FormatNames, name) {
				return nil, ee.Errorf("unknown format `%s`", name)
			}
			o.Formats = []Format{{Name: name}}
		}

		if err != nil {
			return nil, err
		}
	}

	return o, nil
}

func setBool(dst *bool, key string, v gson.JSON) error {
	b, ok := v.Val().(bool)
	if !ok {
		return ee.Errorf("invalid value type (must be bool) for key %s", key)
	}
	*dst = b
	return nil
}

func stringList(key string, v gson.JSON) ([]string, error) {
	switch vv := v.Val().(type) {
	case nil:
		return nil, nil
	case string:
		return []string{vv}, nil
	case []any:
		result := make([]string, 0, len(vv))
		for i, item := range vv {
			s, ok := item.(string)
			if !ok {
				return nil, ee.Errorf("invalid value for %s.%d (must be string)", key, i+1)
			}
			result = append(result, s)
		}
		return result, nil
	}

	return nil, ee.Errorf("invalid value type (must be string or string list) for key %s", key)
}
