package cli

import (
	"fmt"

	"github.com/nanamils/minigrep/internal/output"
	"github.com/nanamils/minigrep/internal/walker"
)

// ColorMode controls when colored output is used.
type ColorMode int

const (
	ColorAuto   ColorMode = iota // color when stdout is a terminal
	ColorAlways                  // always use color
	ColorNever                   // never use color
)

// ParseColorMode maps the --color flag value to a ColorMode.
func ParseColorMode(s string) (ColorMode, error) {
	switch s {
	case "auto", "":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	}
	return ColorAuto, fmt.Errorf("invalid color mode %q (want auto, always or never)", s)
}

// Config holds all configuration for a minigrep run.
type Config struct {
	Pattern string
	Path    string // "" reads standard input

	IgnoreCase   bool
	Invert       bool
	OnlyMatching bool
	PCRE         bool

	Before  int
	After   int
	Context int // overrides Before and After when > 0

	JSON              bool
	Count             bool
	FilesWithMatches  bool
	FilesWithoutMatch bool
	Color             ColorMode

	Hidden   bool
	NoIgnore bool
	Globs    []string

	Debug bool
}

// Validate checks that the config is valid and returns an error if not.
func (c *Config) Validate() error {
	if c.Pattern == "" {
		return fmt.Errorf("no pattern specified")
	}
	if c.Invert && c.OnlyMatching {
		return fmt.Errorf("cannot use -v (invert) and -o (only-matching) together")
	}
	if c.Before < 0 {
		return fmt.Errorf("invalid context before: %d", c.Before)
	}
	if c.After < 0 {
		return fmt.Errorf("invalid context after: %d", c.After)
	}
	if c.Context < 0 {
		return fmt.Errorf("invalid context: %d", c.Context)
	}

	modes := 0
	for _, on := range []bool{c.JSON, c.Count, c.FilesWithMatches, c.FilesWithoutMatch} {
		if on {
			modes++
		}
	}
	if modes > 1 {
		return fmt.Errorf("--json, -c, -l and -L are mutually exclusive")
	}

	for _, g := range c.Globs {
		if err := walker.ValidateGlob(g); err != nil {
			return err
		}
	}
	return nil
}

// EffectiveContext returns the leading and trailing context line counts.
func (c *Config) EffectiveContext() (before, after int) {
	if c.Context > 0 {
		return c.Context, c.Context
	}
	return c.Before, c.After
}

// OutputMode picks the sink variant for the run.
func (c *Config) OutputMode() output.Mode {
	switch {
	case c.JSON:
		return output.ModeJSON
	case c.Count:
		return output.ModeCount
	case c.FilesWithMatches:
		return output.ModeFilesWithMatches
	case c.FilesWithoutMatch:
		return output.ModeFilesWithoutMatch
	}
	return output.ModeStandard
}
