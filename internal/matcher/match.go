package matcher

// OutcomeKind distinguishes the two shapes of a match result.
type OutcomeKind int

const (
	WholeLine OutcomeKind = iota // the full line matched (default and invert modes)
	Fragments                    // only the matched substrings (only-matching mode)
)

// Outcome is the classification of one matching line.
//
// Line, Positions and Fragments borrow from the line passed to Find and are
// only valid until the caller reuses that buffer. Anything that keeps an
// Outcome past the current line must copy it.
type Outcome struct {
	Kind      OutcomeKind
	Line      []byte   // full line content (no trailing newline)
	Positions [][2]int // start/end byte offsets of each occurrence within Line; empty when inverted
	Fragments [][]byte // matched substrings in left-to-right order (Fragments kind only)
}

// Kind selects the matching behavior. The set is closed: Find switches over it.
type Kind int

const (
	Default      Kind = iota // whole-line match, optionally inverted
	OnlyMatching             // every non-overlapping occurrence
)

func (k Kind) String() string {
	switch k {
	case Default:
		return "default"
	case OnlyMatching:
		return "only-matching"
	}
	return "unknown"
}

// engine is the compiled-pattern surface the matcher needs.
// Both *regexp.Regexp and *pcre.Regexp satisfy it.
type engine interface {
	Match(b []byte) bool
	FindAllIndex(b []byte, n int) [][]int
}

// Matcher classifies lines against one compiled pattern.
// It is a pure function of the line, the pattern and its flags.
type Matcher struct {
	kind   Kind
	re     engine
	invert bool
	closer func()
}

// Kind reports which variant this matcher is.
func (m *Matcher) Kind() Kind {
	return m.kind
}

// Find classifies a single line. It returns false when the line should not
// be reported.
func (m *Matcher) Find(line []byte) (Outcome, bool) {
	switch m.kind {
	case Default:
		return m.findLine(line)
	case OnlyMatching:
		return m.findFragments(line)
	}
	return Outcome{}, false
}

func (m *Matcher) findLine(line []byte) (Outcome, bool) {
	if m.invert {
		if m.re.Match(line) {
			return Outcome{}, false
		}
		return Outcome{Kind: WholeLine, Line: line}, true
	}

	locs := m.re.FindAllIndex(line, -1)
	if len(locs) == 0 {
		return Outcome{}, false
	}
	return Outcome{Kind: WholeLine, Line: line, Positions: toPositions(locs)}, true
}

func (m *Matcher) findFragments(line []byte) (Outcome, bool) {
	locs := m.re.FindAllIndex(line, -1)
	if len(locs) == 0 {
		return Outcome{}, false
	}
	frags := make([][]byte, len(locs))
	for i, loc := range locs {
		frags[i] = line[loc[0]:loc[1]]
	}
	return Outcome{
		Kind:      Fragments,
		Line:      line,
		Positions: toPositions(locs),
		Fragments: frags,
	}, true
}

// Close releases engine resources held by the compiled pattern.
func (m *Matcher) Close() {
	if m.closer != nil {
		m.closer()
		m.closer = nil
	}
}

func toPositions(locs [][]int) [][2]int {
	pos := make([][2]int, len(locs))
	for i, loc := range locs {
		pos[i] = [2]int{loc[0], loc[1]}
	}
	return pos
}
