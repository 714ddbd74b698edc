package output

import (
	"errors"
	"fmt"
	"io"

	"github.com/nanamils/minigrep/internal/matcher"
)

// Signal tells the caller whether to keep scanning the current file.
type Signal int

const (
	Continue Signal = iota
	Break           // stop scanning the rest of the current file
)

// Mode selects the one sink variant that is active for a run.
type Mode int

const (
	ModeStandard Mode = iota
	ModeJSON
	ModeCount
	ModeFilesWithMatches
	ModeFilesWithoutMatch
)

func (m Mode) String() string {
	switch m {
	case ModeStandard:
		return "standard"
	case ModeJSON:
		return "json"
	case ModeCount:
		return "count"
	case ModeFilesWithMatches:
		return "files-with-matches"
	case ModeFilesWithoutMatch:
		return "files-without-match"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Role is the position of a rendered line relative to a match.
type Role int

const (
	RoleMatch  Role = iota // an actual match line
	RoleBefore             // leading context
	RoleAfter              // trailing context
)

// MatchedLine is one matched line handed to a sink. The outcome borrows the
// current line buffer and is only valid for the duration of the call.
type MatchedLine struct {
	Path    string
	LineNum int // 1-based
	Outcome matcher.Outcome
}

// ContextLine is a non-matching line shown around a match. Text is owned.
type ContextLine struct {
	Path    string
	LineNum int
	Text    string
	Role    Role // RoleBefore or RoleAfter
}

// Sink consumes classified lines for a whole run.
// Finish must be called exactly once after all input is exhausted, also when
// nothing matched.
type Sink interface {
	Matched(m MatchedLine) (Signal, error)
	Context(c ContextLine) (Signal, error)
	ContextBreak() (Signal, error)
	Finish() error
}

// ignoreContext provides the no-op context handling shared by the
// aggregating sinks.
type ignoreContext struct{}

func (ignoreContext) Context(ContextLine) (Signal, error) { return Continue, nil }
func (ignoreContext) ContextBreak() (Signal, error)      { return Continue, nil }

// ErrNoUniverse is returned when a files-without-match sink is requested
// without the list of candidate files.
var ErrNoUniverse = errors.New("files-without-match requires the list of candidate files")

// SinkOptions carries what the sink variants need beyond the output stream.
type SinkOptions struct {
	Formatter *Formatter
	Styles    Styles
	// Universe is every candidate path of the run. Required for ModeFilesWithoutMatch.
	Universe []string
}

// NewSink builds the sink for mode. It is the only place a variant is chosen.
func NewSink(mode Mode, w io.Writer, opts SinkOptions) (Sink, error) {
	switch mode {
	case ModeStandard:
		f := opts.Formatter
		if f == nil {
			f = NewFormatter(opts.Styles, false)
		}
		return NewStandardSink(w, f, opts.Styles), nil
	case ModeJSON:
		return NewJSONSink(w), nil
	case ModeCount:
		return NewCountSink(w, opts.Styles), nil
	case ModeFilesWithMatches:
		return NewFilesWithMatchesSink(w, opts.Styles), nil
	case ModeFilesWithoutMatch:
		if opts.Universe == nil {
			return nil, ErrNoUniverse
		}
		return NewFilesWithoutMatchSink(w, opts.Styles, opts.Universe), nil
	}
	return nil, fmt.Errorf("unknown output mode %v", mode)
}
