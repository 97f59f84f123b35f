package config

import (
	"strings"

	"github.com/ImSingee/go-ex/ee"

	"github.com/jimvm/cucumber/internal/lib/shells"
)

const DefaultProfile = "default"

// ExpandProfiles replaces every -p/--profile flag in args with the
// arguments of that profile, in place. When args name no profile and do
// not pass -P/--no-profile, the default profile (if defined) is put in
// front of args.
//
// used lists the expanded profile names in order.
func ExpandProfiles(args []string, profiles map[string]string) (expanded []string, used []string, err error) {
	expanded = make([]string, 0, len(args))
	disableDefault := false

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if arg == "--" {
			expanded = append(expanded, args[i:]...)
			break
		}

		var name string
		switch {
		case arg == "-P" || arg == "--no-profile":
			disableDefault = true
			continue
		case arg == "-p" || arg == "--profile":
			if i+1 >= len(args) {
				return nil, nil, ee.Errorf("flag needs an argument: %s", arg)
			}
			i++
			name = args[i]
		case strings.HasPrefix(arg, "--profile="):
			name = strings.TrimPrefix(arg, "--profile=")
		case strings.HasPrefix(arg, "-p") && len(arg) > 2:
			name = arg[2:]
		default:
			expanded = append(expanded, arg)
			continue
		}

		profileArgs, err := profileArgs(name, profiles)
		if err != nil {
			return nil, nil, err
		}
		expanded = append(expanded, profileArgs...)
		used = append(used, name)
	}

	if len(used) == 0 && !disableDefault {
		if _, ok := profiles[DefaultProfile]; ok {
			defaultArgs, err := profileArgs(DefaultProfile, profiles)
			if err != nil {
				return nil, nil, err
			}
			expanded = append(defaultArgs, expanded...)
			used = append(used, DefaultProfile)
		}
	}

	return expanded, used, nil
}

func profileArgs(name string, profiles map[string]string) ([]string, error) {
	line, ok := profiles[name]
	if !ok {
		return nil, ee.Wrapf(ErrUnknownProfile, "cannot find profile `%s`", name)
	}

	args, err := shells.Split(line)
	if err != nil {
		return nil, ee.Wrapf(err, "cannot parse profile `%s`", name)
	}

	return args, nil
}
