package search

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/nanamils/minigrep/internal/input"
	"github.com/nanamils/minigrep/internal/matcher"
	"github.com/nanamils/minigrep/internal/output"
	"github.com/nanamils/minigrep/internal/walker"
)

// ErrAlreadyFinished is returned by a second call to Searcher.Finish.
var ErrAlreadyFinished = errors.New("search already finished")

// ReadError reports a file that could not be sniffed, opened or read.
// It is recoverable: the file is skipped and the run goes on.
type ReadError struct {
	Path string
	Op   string
	Err  error
}

func (e *ReadError) Error() string {
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// Options configures a Searcher.
type Options struct {
	Before int // leading context lines
	After  int // trailing context lines
	// IsBinary decides whether a path is skipped. Defaults to walker.IsBinaryFile.
	IsBinary func(path string) (bool, error)
	Logger   *log.Logger
}

// Searcher drives line sources through the matcher and a per-stream
// ContextManager into one sink. It owns both for the duration of a run.
type Searcher struct {
	matcher  *matcher.Matcher
	sink     output.Sink
	before   int
	after    int
	isBinary func(path string) (bool, error)
	logger   *log.Logger
	finished bool
}

// New creates a Searcher for one run.
func New(m *matcher.Matcher, sink output.Sink, opts Options) *Searcher {
	s := &Searcher{
		matcher:  m,
		sink:     sink,
		before:   opts.Before,
		after:    opts.After,
		isBinary: opts.IsBinary,
		logger:   opts.Logger,
	}
	if s.isBinary == nil {
		s.isBinary = walker.IsBinaryFile
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	return s
}

// SearchReader scans one stream, reporting lines under path.
// A read failure is returned as a *ReadError; lines already routed stay routed.
func (s *Searcher) SearchReader(r io.Reader, path string) error {
	lines := input.NewLineReader(r)
	cm := NewContextManager(s.sink, path, s.before, s.after)

	for lines.Next() {
		line := lines.Line()

		var (
			sig output.Signal
			err error
		)
		if outcome, ok := s.matcher.Find(line); ok {
			sig, err = cm.HandleMatch(lines.LineNum(), outcome)
		} else {
			sig, err = cm.HandleNonMatch(lines.LineNum(), line)
		}
		if err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		if sig == output.Break {
			return nil
		}
	}

	if err := lines.Err(); err != nil {
		return &ReadError{Path: path, Op: "read", Err: err}
	}
	return nil
}

// SearchFiles scans paths in the given order. Binary files are skipped
// silently; files that cannot be sniffed, opened or read are logged and
// skipped. Only output failures abort the loop.
func (s *Searcher) SearchFiles(paths []string) error {
	for _, path := range paths {
		err := s.searchFile(path)
		if err == nil {
			continue
		}
		var readErr *ReadError
		if errors.As(err, &readErr) {
			s.logger.Warn("skipping file", "path", path, "op", readErr.Op, "err", readErr.Err)
			continue
		}
		return err
	}
	return nil
}

func (s *Searcher) searchFile(path string) error {
	binary, err := s.isBinary(path)
	if err != nil {
		return &ReadError{Path: path, Op: "sniff", Err: err}
	}
	if binary {
		s.logger.Debug("skipping binary file", "path", path)
		return nil
	}

	f, err := input.OpenFile(path)
	if err != nil {
		return &ReadError{Path: path, Op: "open", Err: err}
	}
	defer f.Close()

	return s.SearchReader(f, path)
}

// Finish flushes the sink's aggregate output. It must be called exactly once,
// after the last stream.
func (s *Searcher) Finish() error {
	if s.finished {
		return ErrAlreadyFinished
	}
	s.finished = true
	return s.sink.Finish()
}
