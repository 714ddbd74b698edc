package output

import (
	"io"
	"sort"
)

// FilesWithMatchesSink records each path with at least one match.
type FilesWithMatchesSink struct {
	ignoreContext
	w       io.Writer
	styles  Styles
	matched map[string]struct{}
}

// NewFilesWithMatchesSink creates a FilesWithMatchesSink.
func NewFilesWithMatchesSink(w io.Writer, styles Styles) *FilesWithMatchesSink {
	return &FilesWithMatchesSink{w: w, styles: styles, matched: make(map[string]struct{})}
}

// Matched records the path and asks the caller to skip the rest of the file.
func (s *FilesWithMatchesSink) Matched(m MatchedLine) (Signal, error) {
	s.matched[m.Path] = struct{}{}
	return Break, nil
}

// Finish prints every recorded path once, sorted.
func (s *FilesWithMatchesSink) Finish() error {
	return writePaths(s.w, s.styles, sortedKeys(s.matched))
}

// FilesWithoutMatchSink reports the candidate paths that never matched.
// It needs the full universe of candidates up front, so it cannot serve a
// single standard-input stream.
type FilesWithoutMatchSink struct {
	ignoreContext
	w        io.Writer
	styles   Styles
	universe map[string]struct{}
	matched  map[string]struct{}
}

// NewFilesWithoutMatchSink creates a FilesWithoutMatchSink over universe.
func NewFilesWithoutMatchSink(w io.Writer, styles Styles, universe []string) *FilesWithoutMatchSink {
	u := make(map[string]struct{}, len(universe))
	for _, p := range universe {
		u[p] = struct{}{}
	}
	return &FilesWithoutMatchSink{
		w:        w,
		styles:   styles,
		universe: u,
		matched:  make(map[string]struct{}),
	}
}

// Matched records the path. One match settles the file, so scanning stops.
func (s *FilesWithoutMatchSink) Matched(m MatchedLine) (Signal, error) {
	s.matched[m.Path] = struct{}{}
	return Break, nil
}

// Finish prints the universe minus the matched paths, sorted.
func (s *FilesWithoutMatchSink) Finish() error {
	var paths []string
	for p := range s.universe {
		if _, ok := s.matched[p]; !ok {
			paths = append(paths, p)
		}
	}
	sort.Strings(paths)
	return writePaths(s.w, s.styles, paths)
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func writePaths(w io.Writer, styles Styles, paths []string) error {
	if len(paths) == 0 {
		return nil
	}
	var buf []byte
	for _, p := range paths {
		buf = append(buf, styles.paint(styles.Filename, p)...)
		buf = append(buf, '\n')
	}
	_, err := w.Write(buf)
	return err
}

var (
	_ Sink = (*FilesWithMatchesSink)(nil)
	_ Sink = (*FilesWithoutMatchSink)(nil)
)
