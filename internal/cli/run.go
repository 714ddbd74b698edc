package cli

import (
	"bufio"
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/nanamils/minigrep/internal/input"
	"github.com/nanamils/minigrep/internal/matcher"
	"github.com/nanamils/minigrep/internal/output"
	"github.com/nanamils/minigrep/internal/search"
	"github.com/nanamils/minigrep/internal/walker"
)

// ErrFilesWithoutMatchStdin is returned when -L is combined with standard input.
var ErrFilesWithoutMatchStdin = errors.New("-L (files-without-match) needs a path; it cannot read standard input")

// Run executes the search with the given config.
// Returns exit code: 0 = run completed (with or without matches), 1 = fatal error.
func Run(cfg Config) int {
	return run(cfg, os.Stdin, output.NewWriter(), os.Stderr, output.StdoutIsTerminal())
}

func run(cfg Config, in io.Reader, out io.Writer, errOut io.Writer, tty bool) int {
	level := log.WarnLevel
	if cfg.Debug {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(errOut, log.Options{
		Level:  level,
		Prefix: "minigrep",
	})

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid arguments", "err", err)
		return 1
	}

	m, err := matcher.New(matcher.Options{
		Pattern:      cfg.Pattern,
		IgnoreCase:   cfg.IgnoreCase,
		Invert:       cfg.Invert,
		OnlyMatching: cfg.OnlyMatching,
		PCRE:         cfg.PCRE,
	})
	if err != nil {
		logger.Error("invalid pattern", "err", err)
		return 1
	}
	defer m.Close()
	logger.Debug("matcher ready", "kind", m.Kind(), "pcre", cfg.PCRE)

	mode := cfg.OutputMode()
	readFromStdin := cfg.Path == ""
	if readFromStdin && mode == output.ModeFilesWithoutMatch {
		logger.Error("invalid arguments", "err", ErrFilesWithoutMatchStdin)
		return 1
	}

	styles := resolveStyles(cfg.Color, tty, out)

	var (
		paths    []string
		showPath bool
		isBinary func(string) (bool, error)
	)
	if !readFromStdin {
		info, err := os.Stat(cfg.Path)
		if err != nil {
			logger.Error("cannot search path", "path", cfg.Path, "err", err)
			return 1
		}
		showPath = info.IsDir()
		if !showPath {
			// a file named on the command line is judged by content only
			isBinary = walker.IsBinaryContent
		}

		paths, err = walker.Walk(cfg.Path, walker.WalkOptions{
			NoIgnore: cfg.NoIgnore,
			Hidden:   cfg.Hidden,
			Globs:    cfg.Globs,
		}, func(err error) {
			logger.Warn("walk error", "err", err)
		})
		if err != nil {
			logger.Error("cannot walk path", "path", cfg.Path, "err", err)
			return 1
		}
		logger.Debug("walk complete", "root", cfg.Path, "files", len(paths))
	}

	sinkOpts := output.SinkOptions{
		Formatter: output.NewFormatter(styles, showPath),
		Styles:    styles,
	}
	if mode == output.ModeFilesWithoutMatch {
		sinkOpts.Universe = paths
		if sinkOpts.Universe == nil {
			sinkOpts.Universe = []string{}
		}
	}

	w := bufio.NewWriterSize(out, 64*1024)
	sink, err := output.NewSink(mode, w, sinkOpts)
	if err != nil {
		logger.Error("cannot create output", "mode", mode, "err", err)
		return 1
	}

	before, after := cfg.EffectiveContext()
	s := search.New(m, sink, search.Options{
		Before:   before,
		After:    after,
		IsBinary: isBinary,
		Logger:   logger,
	})

	if readFromStdin {
		err = s.SearchReader(in, input.StdinLabel)
		var readErr *search.ReadError
		if errors.As(err, &readErr) {
			logger.Warn("read error", "path", readErr.Path, "err", readErr.Err)
			err = nil
		}
	} else {
		err = s.SearchFiles(paths)
	}
	if err != nil {
		logger.Error("search aborted", "err", err)
		return 1
	}

	if err := s.Finish(); err != nil {
		var encErr *output.EncodeError
		if !errors.As(err, &encErr) {
			logger.Error("write failed", "err", err)
			return 1
		}
		logger.Error("json output dropped", "err", encErr.Err)
	}

	if err := w.Flush(); err != nil {
		logger.Error("write failed", "err", err)
		return 1
	}
	return 0
}

// resolveStyles decides whether output is colored. Colored styles get their
// own renderer on out with an ANSI profile: the terminal check is already
// done, and ColorAlways must survive pipes.
func resolveStyles(mode ColorMode, tty bool, out io.Writer) output.Styles {
	useColor := mode == ColorAlways || (mode == ColorAuto && tty)
	if !useColor {
		return output.NoStyles()
	}
	return output.NewStyles(lipgloss.NewRenderer(out, termenv.WithProfile(termenv.ANSI)))
}
