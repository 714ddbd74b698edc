package input

import (
	"bufio"
	"io"
)

const (
	initialLineBuf = 64 * 1024
	maxLineSize    = 1024 * 1024
)

// LineReader processes an io.Reader line-by-line for streaming search.
// Unlike batch readers, it doesn't load the entire file into memory.
// Lines are numbered from 1 and have their "\n" or "\r\n" terminator removed.
type LineReader struct {
	scanner *bufio.Scanner
	lineNum int
}

// NewLineReader creates a LineReader for the given io.Reader.
func NewLineReader(r io.Reader) *LineReader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, initialLineBuf), maxLineSize)
	return &LineReader{scanner: scanner}
}

// Next advances to the next line. It returns false at end of input or on
// a read error; check Err to tell them apart.
func (r *LineReader) Next() bool {
	if !r.scanner.Scan() {
		return false
	}
	r.lineNum++
	return true
}

// Line returns the current line. The slice is reused by the next call to
// Next, so callers that keep it must copy.
func (r *LineReader) Line() []byte {
	return r.scanner.Bytes()
}

// LineNum returns the 1-based number of the current line.
func (r *LineReader) LineNum() int {
	return r.lineNum
}

// Err returns the first non-EOF read error.
func (r *LineReader) Err() error {
	return r.scanner.Err()
}
