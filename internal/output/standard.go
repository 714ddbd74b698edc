package output

import (
	"io"

	"github.com/nanamils/minigrep/internal/matcher"
)

// StandardSink prints every matched and context line as it arrives, with the
// matched portions highlighted. It never aggregates.
type StandardSink struct {
	w      io.Writer
	f      *Formatter
	styles Styles
	buf    []byte // reused per line
}

// NewStandardSink creates a StandardSink writing to w.
func NewStandardSink(w io.Writer, f *Formatter, styles Styles) *StandardSink {
	return &StandardSink{w: w, f: f, styles: styles}
}

func (s *StandardSink) Matched(m MatchedLine) (Signal, error) {
	prefix := s.f.Prefix(m.Path, m.LineNum, RoleMatch)
	buf := s.buf[:0]

	switch m.Outcome.Kind {
	case matcher.WholeLine:
		buf = append(buf, prefix...)
		buf = s.highlightMatches(buf, m.Outcome.Line, m.Outcome.Positions)
		buf = append(buf, '\n')
	case matcher.Fragments:
		for _, frag := range m.Outcome.Fragments {
			buf = append(buf, prefix...)
			buf = append(buf, s.styles.paint(s.styles.Match, string(frag))...)
			buf = append(buf, '\n')
		}
	}

	s.buf = buf
	_, err := s.w.Write(buf)
	return Continue, err
}

func (s *StandardSink) Context(c ContextLine) (Signal, error) {
	buf := append(s.buf[:0], s.f.Prefix(c.Path, c.LineNum, c.Role)...)
	buf = append(buf, s.styles.paint(s.styles.Context, c.Text)...)
	buf = append(buf, '\n')

	s.buf = buf
	_, err := s.w.Write(buf)
	return Continue, err
}

func (s *StandardSink) ContextBreak() (Signal, error) {
	_, err := io.WriteString(s.w, s.styles.paint(s.styles.Separator, "--")+"\n")
	return Continue, err
}

// Finish is a no-op: everything was printed as it arrived.
func (s *StandardSink) Finish() error { return nil }

func (s *StandardSink) highlightMatches(buf []byte, line []byte, positions [][2]int) []byte {
	if !s.styles.Enabled || len(positions) == 0 {
		return append(buf, line...)
	}

	prev := 0
	for _, pos := range positions {
		start, end := pos[0], pos[1]
		if start > len(line) {
			break
		}
		if end > len(line) {
			end = len(line)
		}
		if start > prev {
			buf = append(buf, line[prev:start]...)
		}
		buf = append(buf, s.styles.paint(s.styles.Match, string(line[start:end]))...)
		prev = end
	}
	if prev < len(line) {
		buf = append(buf, line[prev:]...)
	}
	return buf
}

var _ Sink = (*StandardSink)(nil)
