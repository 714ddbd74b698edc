package cli

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Execute parses the process arguments, prefixed by the config file, and runs
// the search. It returns the process exit code.
func Execute() int {
	return execute(os.Args[1:], Run)
}

func execute(args []string, runFn func(Config) int) int {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "minigrep"})

	fileArgs, err := LoadConfigArgs()
	if err != nil {
		logger.Error("cannot load config file", "err", err)
		return 1
	}

	code := 0
	cmd := newRootCmd(func(cfg Config) {
		code = runFn(cfg)
	})
	// non-nil so cobra never falls back to os.Args
	all := make([]string, 0, len(fileArgs)+len(args))
	all = append(all, fileArgs...)
	cmd.SetArgs(append(all, args...))
	if err := cmd.Execute(); err != nil {
		logger.Error("invalid arguments", "err", err)
		return 1
	}
	return code
}

// newRootCmd builds the minigrep command. onRun receives the parsed Config.
func newRootCmd(onRun func(Config)) *cobra.Command {
	var (
		cfg   Config
		color string
	)

	cmd := &cobra.Command{
		Use:   "minigrep [flags] PATTERN [PATH]",
		Short: "Search files or standard input for lines matching a regular expression",
		Long: `minigrep searches PATH (a file, or a directory walked recursively) for
lines matching PATTERN. With no PATH it reads standard input.

Directories honor .gitignore files and skip hidden entries unless told
otherwise. Binary files are skipped.`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := ParseColorMode(color)
			if err != nil {
				return err
			}
			cfg.Color = mode
			cfg.Pattern = args[0]
			if len(args) == 2 {
				cfg.Path = args[1]
			}
			onRun(cfg)
			return nil
		},
	}

	f := cmd.Flags()
	f.SortFlags = false

	f.BoolVarP(&cfg.IgnoreCase, "ignore-case", "i", false, "case-insensitive matching")
	f.BoolVarP(&cfg.Invert, "invert-match", "v", false, "select non-matching lines")
	f.BoolVarP(&cfg.OnlyMatching, "only-matching", "o", false, "print only the matched parts of a line")
	f.BoolVarP(&cfg.PCRE, "pcre", "P", false, "use the PCRE2 engine (lookaround, backreferences)")

	f.BoolP("line-number", "n", false, "accepted for grep compatibility; line numbers are always printed")
	f.IntVarP(&cfg.After, "after-context", "A", 0, "print `N` lines of trailing context")
	f.IntVarP(&cfg.Before, "before-context", "B", 0, "print `N` lines of leading context")
	f.IntVarP(&cfg.Context, "context", "C", 0, "print `N` lines of context on both sides")

	f.BoolVar(&cfg.JSON, "json", false, "print matches as a JSON array")
	f.BoolVarP(&cfg.Count, "count", "c", false, "print the number of matching lines per file")
	f.BoolVarP(&cfg.FilesWithMatches, "files-with-matches", "l", false, "print only names of files with a match")
	f.BoolVarP(&cfg.FilesWithoutMatch, "files-without-match", "L", false, "print only names of files without a match")
	f.StringVar(&color, "color", "auto", "highlight matches: auto, always or never")

	f.BoolVar(&cfg.Hidden, "hidden", false, "search hidden files and directories")
	f.BoolVar(&cfg.NoIgnore, "no-ignore", false, "do not respect .gitignore files")
	f.StringArrayVarP(&cfg.Globs, "glob", "g", nil, "include files matching `GLOB`; prefix with ! to exclude")

	f.BoolVar(&cfg.Debug, "debug", false, "enable debug logging")

	cmd.MarkFlagsMutuallyExclusive("json", "count", "files-with-matches", "files-without-match")
	cmd.MarkFlagsMutuallyExclusive("invert-match", "only-matching")

	return cmd
}
