// Package version is set at build time with
//
//	-ldflags "-X github.com/jimvm/cucumber/internal/version.version=..."
package version

import "fmt"

var (
	version = "DEV"
	commit  = ""
	buildAt = ""
)

func Version() string {
	return version
}

func Commit() string {
	return commit
}

func BuildAt() string {
	return buildAt
}

// GetVersionString is what `cucumber --version` prints after the name.
func GetVersionString() string {
	s := version
	if commit != "" {
		s += fmt.Sprintf("\nCommit: %s", commit)
	}
	if buildAt != "" {
		s += fmt.Sprintf("\nBuild At: %s", buildAt)
	}
	return s
}
