package config

import (
	"os"
	"path/filepath"

	"github.com/ImSingee/go-ex/ee"
	"github.com/ImSingee/go-ex/exjson"
	"github.com/ysmood/gson"
)

// Debug is set by the global --debug flag.
var Debug bool

var ConfigFileNames = []string{
	"cucumber.json",
	".cucumberrc",
	".cucumberrc.json",
}

// File is the content of a profile file.
type File struct {
	Path     string
	Profiles map[string]string
	Options  map[string]gson.JSON
}

func ReadConfig(filename string) (map[string]gson.JSON, error) {
	// only parse json now

	var obj map[string]any
	err := exjson.Read(filename, &obj)
	if err != nil {
		return nil, err
	}

	return gson.New(obj).Map(), nil
}

// Find loads the first existing profile file in dir. It returns an empty
// File when there is none.
func Find(dir string) (*File, error) {
	for _, name := range ConfigFileNames {
		filename := filepath.Join(dir, name)

		if _, err := os.Stat(filename); err != nil {
			if IsNotExist(err) {
				continue
			}
			return nil, ee.Wrapf(err, "cannot access %s", filename)
		}

		return Load(filename)
	}

	return &File{}, nil
}

func Load(filename string) (*File, error) {
	c, err := ReadConfig(filename)
	if err != nil {
		return nil, ee.Wrapf(err, "cannot read config file %s", filename)
	}

	f := &File{
		Path:     filename,
		Profiles: map[string]string{},
	}

	if profiles := c["profiles"].Val(); profiles != nil {
		profiles, ok := profiles.(map[string]any)
		if !ok {
			return nil, ee.Errorf("invalid `profiles` key in %s", filename)
		}

		for name, v := range profiles {
			args, ok := v.(string)
			if !ok {
				return nil, ee.Errorf("invalid profile `%s` in %s (must be a string)", name, filename)
			}
			f.Profiles[name] = args
		}
	}

	if options := c["options"].Val(); options != nil {
		if _, ok := options.(map[string]any); !ok {
			return nil, ee.Errorf("invalid `options` key in %s", filename)
		}
		f.Options = c["options"].Map()
	}

	return f, nil
}
