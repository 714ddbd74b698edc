package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/nanamils/minigrep/internal/matcher"
)

// EncodeError reports that the accumulated matches could not be serialized.
// Nothing was written when it is returned.
type EncodeError struct {
	Err error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encode json: %v", e.Err)
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}

// JSONSink collects one record per matched line and writes them as a single
// pretty-printed array on Finish. It is the only sink that buffers the whole
// run, since the document needs one top-level array.
type JSONSink struct {
	ignoreContext
	w       io.Writer
	matches []jsonMatch
}

// NewJSONSink creates a JSONSink.
func NewJSONSink(w io.Writer) *JSONSink {
	return &JSONSink{w: w}
}

// jsonMatch is the JSON serialization format for a matched line.
// Content is a string for whole-line matches or a []string of fragments.
type jsonMatch struct {
	Path    string `json:"path"`
	LineNum int    `json:"line_number"`
	Content any    `json:"content"`
}

func (s *JSONSink) Matched(m MatchedLine) (Signal, error) {
	jm := jsonMatch{Path: m.Path, LineNum: m.LineNum}
	switch m.Outcome.Kind {
	case matcher.WholeLine:
		jm.Content = string(m.Outcome.Line)
	case matcher.Fragments:
		frags := make([]string, len(m.Outcome.Fragments))
		for i, f := range m.Outcome.Fragments {
			frags[i] = string(f)
		}
		jm.Content = frags
	}
	s.matches = append(s.matches, jm)
	return Continue, nil
}

// Finish writes the accumulated array, or [] when nothing matched.
// On an encoding failure nothing is written and the error is returned.
func (s *JSONSink) Finish() error {
	if len(s.matches) == 0 {
		_, err := io.WriteString(s.w, "[]\n")
		return err
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s.matches); err != nil {
		return &EncodeError{Err: err}
	}
	_, err := s.w.Write(buf.Bytes())
	return err
}

var _ Sink = (*JSONSink)(nil)
