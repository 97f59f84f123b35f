package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/ImSingee/go-ex/ee"
	"github.com/ImSingee/go-ex/pp"
	"github.com/spf13/cobra"

	"github.com/jimvm/cucumber/internal/config"
	"github.com/jimvm/cucumber/internal/lib/xlog"
	"github.com/jimvm/cucumber/internal/runner"
	"github.com/jimvm/cucumber/internal/version"
)

const help = `Usage:
  cucumber [flags] [run.json|dir|-]...

Reports the run documents written by the execution engine. Directories are
scanned for *.json documents, skipping the ones listed in .cucumberignore.
"-" reads a document from stdin.

Profiles are read from cucumber.json, .cucumberrc or .cucumberrc.json in the
working directory.
`

func main() {
	err := run(os.Args[1:])
	if err != nil {
		if !ee.Is(err, ee.Phantom) {
			l("Error: %v", err)
		}

		os.Exit(1)
	}
}

func run(args []string) error {
	file, err := config.Find(".")
	if err != nil {
		return err
	}

	args, profiles, err := config.ExpandProfiles(args, file.Profiles)
	if err != nil {
		return err
	}
	slog.Debug("Expanded profiles", "profiles", profiles, "args", args)

	app := newApp(file, profiles)
	app.SetArgs(args)

	return app.Execute()
}

func newApp(file *config.File, profiles []string) *cobra.Command {
	var formats formatList
	var noMultiline bool
	var strict bool
	var wip bool
	var noSnippets bool
	var color string
	var include []string

	app := &cobra.Command{
		Use:           "cucumber [run.json|dir|-]...",
		Long:          help,
		Version:       version.GetVersionString(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			options, err := config.FromMap(file.Options)
			if err != nil {
				return ee.Wrapf(err, "invalid options in %s", file.Path)
			}

			flags := cmd.Flags()
			if len(formats) > 0 {
				options.Formats = formats
			}
			if flags.Changed("no-multiline") {
				options.NoMultiline = noMultiline
			}
			if flags.Changed("strict") {
				options.Strict = strict
			}
			if flags.Changed("wip") {
				options.Wip = wip
			}
			if flags.Changed("no-snippets") {
				options.Snippets = !noSnippets
			}
			if flags.Changed("color") {
				options.Color, err = config.ParseColorMode(color)
				if err != nil {
					return err
				}
			}
			if len(include) > 0 {
				options.Include = include
			}
			if len(profiles) > 0 {
				options.Profiles = profiles
			}

			return runner.Run(args, options)
		},
	}

	flags := app.Flags()
	flags.SortFlags = false
	flags.VarP(formatValue{&formats}, "format", "f", "how to report the run: "+strings.Join(config.FormatNames, " or ")+" (repeatable)")
	flags.VarP(outValue{&formats}, "out", "o", `write the preceding --format to a file instead of stdout ("-" for stdout)`)
	flags.StringArrayP("profile", "p", nil, "pull arguments from a profile of the profile file (repeatable)")
	flags.BoolP("no-profile", "P", false, "do not use the default profile")
	flags.BoolVar(&noMultiline, "no-multiline", false, "hide step tables and doc strings in pretty output")
	flags.BoolVar(&strict, "strict", false, "fail when there are undefined or pending steps")
	flags.BoolVar(&wip, "wip", false, "fail when any scenario passed")
	flags.BoolVar(&noSnippets, "no-snippets", false, "do not print snippets for undefined steps")
	flags.StringVar(&color, "color", "auto", "colorize output: auto, always or never")
	flags.StringArrayVar(&include, "include", nil, "only report features whose uri matches the pattern (repeatable)")

	// for global flags
	app.PersistentFlags().SortFlags = false
	app.PersistentFlags().StringP("root", "R", "", "change command working directory")
	app.PersistentFlags().BoolVar(&config.Debug, "debug", false, "print additional debug information")
	app.PersistentFlags().BoolP("quiet", "q", false, "quiet mode (hide any output)")
	app.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		quiet, _ := cmd.Flags().GetBool("quiet")
		if quiet {
			if null, _ := os.Open(os.DevNull); null != nil {
				os.Stdout = null
				os.Stderr = null
			}

			pp.Stdout.ChangeWriter(io.Discard)
			pp.Stderr.ChangeWriter(io.Discard)

			slog.SetDefault(xlog.DisabledLogger)
		}

		if !quiet { // setup logger
			if config.Debug {
				slog.SetDefault(xlog.NewDebugLogger(os.Stderr))
			}
		}

		if root, _ := app.PersistentFlags().GetString("root"); root != "" {
			slog.Debug("Change working directory", "root", root)
			err := os.Chdir(root)
			if err != nil {
				return ee.Wrapf(err, "cannot change working directory to %s", root)
			}
		}

		return nil
	}

	return app
}

func l(msg string, args ...any) {
	s := msg
	if len(args) != 0 {
		s = fmt.Sprintf(msg, args...)
	}

	_, _ = os.Stderr.Write([]byte("cucumber - " + strings.TrimSpace(s) + "\n"))
}
