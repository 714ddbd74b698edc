package output

import (
	"strconv"
	"strings"
)

// Formatter renders the path/line-number prefix of an output line.
type Formatter struct {
	styles   Styles
	showPath bool // target is a directory, so several files may report
}

// NewFormatter creates a Formatter. showPath should be true only when the
// search target is a directory.
func NewFormatter(styles Styles, showPath bool) *Formatter {
	return &Formatter{
		styles:   styles,
		showPath: showPath,
	}
}

// Prefix returns the display prefix for a line: an optional path, then the
// line number. Match lines use ':' as the separator, context lines use '-'.
func (f *Formatter) Prefix(path string, lineNum int, role Role) string {
	sep := ":"
	if role != RoleMatch {
		sep = "-"
	}
	sep = f.styles.paint(f.styles.Separator, sep)

	var b strings.Builder
	if f.showPath {
		b.WriteString(f.styles.paint(f.styles.Filename, path))
		b.WriteString(sep)
	}
	b.WriteString(f.styles.paint(f.styles.LineNum, strconv.Itoa(lineNum)))
	b.WriteString(sep)
	return b.String()
}
