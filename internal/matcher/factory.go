package matcher

import (
	"errors"
	"fmt"
)

// ErrInvertOnlyMatching is returned when invert and only-matching are both requested.
var ErrInvertOnlyMatching = errors.New("cannot use -v (invert) and -o (only-matching) together")

// Options configures matcher construction.
type Options struct {
	Pattern      string
	IgnoreCase   bool
	Invert       bool
	OnlyMatching bool
	PCRE         bool
}

// PatternError reports a pattern that failed to compile.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}

// New compiles the pattern once and returns the matcher variant selected by opts.
// Selection logic:
//   - OnlyMatching -> fragments of every occurrence
//   - otherwise    -> whole line, honoring Invert
//
// The PCRE flag switches the engine from RE2 to PCRE2 for either variant.
func New(opts Options) (*Matcher, error) {
	if opts.Invert && opts.OnlyMatching {
		return nil, ErrInvertOnlyMatching
	}

	var (
		re     engine
		closer func()
		err    error
	)
	if opts.PCRE {
		re, closer, err = compilePCRE(opts.Pattern, opts.IgnoreCase)
	} else {
		re, err = compileRegex(opts.Pattern, opts.IgnoreCase)
	}
	if err != nil {
		return nil, &PatternError{Pattern: opts.Pattern, Err: err}
	}

	m := &Matcher{re: re, closer: closer}
	if opts.OnlyMatching {
		m.kind = OnlyMatching
	} else {
		m.kind = Default
		m.invert = opts.Invert
	}
	return m, nil
}
