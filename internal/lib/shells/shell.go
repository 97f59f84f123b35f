package shells

import (
	"fmt"

	"github.com/alessio/shellescape"
	"github.com/google/shlex"
)

func Quote(arg string) string {
	return shellescape.Quote(arg)
}

// Split splits a profile's argument line the way sh would.
func Split(line string) ([]string, error) {
	return shlex.Split(line)
}

// Command renders a command line that can be pasted back into a shell.
// name is written as is, args are quoted when needed.
func Command(name string, args ...string) string {
	if len(args) == 0 {
		return name
	} else {
		return fmt.Sprintf("%s %s", name, shellescape.QuoteCommand(args))
	}
}

// RerunCommand is the command that reruns the scenario at location with
// the same profiles.
func RerunCommand(profiles []string, location string) string {
	args := make([]string, 0, len(profiles)*2+1)
	for _, p := range profiles {
		args = append(args, "-p", p)
	}
	args = append(args, location)

	return Command("cucumber", args...)
}
