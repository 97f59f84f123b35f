package ignore

import (
	"bufio"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ImSingee/go-ex/ee"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

type Matcher = gitignore.Matcher
type Pattern = gitignore.Pattern

// FileName holds patterns of files a directory scan skips, in gitignore
// syntax.
const FileName = ".cucumberignore"

const (
	commentPrefix = "#"
	gitDir        = ".git"
)

// Discover lists the run documents (*.json) under root, skipping the ones
// ignored by FileName files. The result is sorted.
func Discover(root string) ([]string, error) {
	ps, err := ReadPatterns(root, nil, FileName)
	if err != nil {
		return nil, ee.Wrapf(err, "cannot read ignore files under %s", root)
	}
	matcher := gitignore.NewMatcher(ps)

	var found []string
	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}

		parts := strings.Split(filepath.ToSlash(rel), "/")
		if d.IsDir() {
			if d.Name() == gitDir || matcher.Match(parts, true) {
				return filepath.SkipDir
			}
			return nil
		}

		if filepath.Ext(p) != ".json" || matcher.Match(parts, false) {
			return nil
		}

		found = append(found, p)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(found)
	slog.Debug("Discovered run documents", "root", root, "count", len(found))

	return found, nil
}

// ReadPatterns read and parse ignoreFileNames recursively
//
// The result is in the ascending order of priority (last higher).
func ReadPatterns(root string, dirs []string, ignoreFileNames ...string) ([]Pattern, error) {
	ps, err := readIgnoreFiles(root, dirs, ignoreFileNames...)
	if err != nil {
		return nil, err
	}

	sub, err := os.ReadDir(filepath.Join(root, filepath.Join(dirs...)))
	if err != nil {
		return nil, err
	}

	for _, fi := range sub {
		if !fi.IsDir() || fi.Name() == gitDir {
			continue
		}

		nextDirs := make([]string, 0, len(dirs)+1)
		nextDirs = append(nextDirs, dirs...)
		nextDirs = append(nextDirs, fi.Name())

		subps, err := ReadPatterns(root, nextDirs, ignoreFileNames...)
		if err != nil {
			return nil, err
		}
		ps = append(ps, subps...)
	}

	return ps, nil
}

func readIgnoreFiles(root string, dirs []string, ignoreFiles ...string) (ps []Pattern, err error) {
	for _, ignoreFile := range ignoreFiles {
		subps, err := readIgnoreFile(root, dirs, ignoreFile)
		if err != nil {
			return nil, err
		}

		ps = append(ps, subps...)
	}
	return
}

func readIgnoreFile(root string, dirs []string, ignoreFile string) (ps []Pattern, err error) {
	filename := filepath.Join(root, filepath.Join(dirs...), ignoreFile)

	f, err := os.Open(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		s := strings.TrimSpace(scanner.Text())
		if s == "" || strings.HasPrefix(s, commentPrefix) {
			continue
		}

		ps = append(ps, gitignore.ParsePattern(s, dirs))
	}

	return ps, scanner.Err()
}
