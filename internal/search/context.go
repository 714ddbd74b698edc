package search

import (
	"github.com/nanamils/minigrep/internal/matcher"
	"github.com/nanamils/minigrep/internal/output"
)

// bufferedLine is a non-matching line held for possible leading context.
type bufferedLine struct {
	lineNum int
	text    string
}

// ContextManager turns the classified lines of one stream into ordered
// match/context events for a sink. It holds the leading-context buffer, the
// trailing-context countdown and the group-break bookkeeping.
//
// Lines must be fed in strictly increasing line-number order. A manager is
// used for a single stream; context never spans files.
type ContextManager struct {
	sink   output.Sink
	path   string
	before int
	after  int

	ring           []bufferedLine // at most before entries, oldest first
	afterRemaining int
	lastMatch      int // line number of the most recent match, 0 = none
	lastEmitted    int // last line shown as a match or trailing context
}

// NewContextManager creates a manager for one stream. With before and after
// both 0 it passes matches straight through.
func NewContextManager(sink output.Sink, path string, before, after int) *ContextManager {
	c := &ContextManager{
		sink:   sink,
		path:   path,
		before: before,
		after:  after,
	}
	if before > 0 {
		c.ring = make([]bufferedLine, 0, before)
	}
	return c
}

func (c *ContextManager) enabled() bool {
	return c.before > 0 || c.after > 0
}

// HandleMatch emits an optional group break, the pending leading context and
// the match itself.
func (c *ContextManager) HandleMatch(lineNum int, outcome matcher.Outcome) (output.Signal, error) {
	// lastMatch moves only on real matches; trailing context never extends a group.
	if c.enabled() && c.lastMatch > 0 && lineNum > c.lastMatch+c.after+1 {
		if sig, err := c.sink.ContextBreak(); err != nil || sig == output.Break {
			return sig, err
		}
	}

	for _, bl := range c.ring {
		// Lines already shown as trailing context are not repeated.
		if bl.lineNum <= c.lastEmitted {
			continue
		}
		sig, err := c.sink.Context(output.ContextLine{
			Path:    c.path,
			LineNum: bl.lineNum,
			Text:    bl.text,
			Role:    output.RoleBefore,
		})
		if err != nil || sig == output.Break {
			c.ring = c.ring[:0]
			return sig, err
		}
	}
	c.ring = c.ring[:0]

	sig, err := c.sink.Matched(output.MatchedLine{
		Path:    c.path,
		LineNum: lineNum,
		Outcome: outcome,
	})

	c.lastMatch = lineNum
	c.lastEmitted = lineNum
	c.afterRemaining = c.after
	return sig, err
}

// HandleNonMatch emits the line as trailing context while the countdown is
// running, and keeps it as a leading-context candidate.
func (c *ContextManager) HandleNonMatch(lineNum int, line []byte) (output.Signal, error) {
	if c.afterRemaining == 0 && c.before == 0 {
		return output.Continue, nil
	}

	text := string(line)

	if c.afterRemaining > 0 {
		c.afterRemaining--
		c.lastEmitted = lineNum
		sig, err := c.sink.Context(output.ContextLine{
			Path:    c.path,
			LineNum: lineNum,
			Text:    text,
			Role:    output.RoleAfter,
		})
		if err != nil || sig == output.Break {
			return sig, err
		}
	}

	if c.before > 0 {
		if len(c.ring) >= c.before {
			// evict oldest
			copy(c.ring, c.ring[1:])
			c.ring = c.ring[:len(c.ring)-1]
		}
		c.ring = append(c.ring, bufferedLine{lineNum: lineNum, text: text})
	}
	return output.Continue, nil
}
