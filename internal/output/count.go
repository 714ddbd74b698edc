package output

import (
	"io"
	"sort"
	"strconv"
)

// CountSink counts matched lines per path. Fragments on the same line count once.
type CountSink struct {
	ignoreContext
	w      io.Writer
	styles Styles
	counts map[string]int
}

// NewCountSink creates a CountSink.
func NewCountSink(w io.Writer, styles Styles) *CountSink {
	return &CountSink{w: w, styles: styles, counts: make(map[string]int)}
}

func (s *CountSink) Matched(m MatchedLine) (Signal, error) {
	s.counts[m.Path]++
	return Continue, nil
}

// Finish prints "path:count" per path in path order, then a Total line when
// more than one path matched.
func (s *CountSink) Finish() error {
	paths := make([]string, 0, len(s.counts))
	for p := range s.counts {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	var buf []byte
	total := 0
	for _, p := range paths {
		n := s.counts[p]
		total += n
		buf = append(buf, s.styles.paint(s.styles.Filename, p)...)
		buf = append(buf, ':')
		buf = strconv.AppendInt(buf, int64(n), 10)
		buf = append(buf, '\n')
	}
	if len(paths) > 1 {
		buf = append(buf, "Total: "...)
		buf = strconv.AppendInt(buf, int64(total), 10)
		buf = append(buf, '\n')
	}

	if len(buf) == 0 {
		return nil
	}
	_, err := s.w.Write(buf)
	return err
}

var _ Sink = (*CountSink)(nil)
