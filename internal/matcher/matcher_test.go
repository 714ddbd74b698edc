package matcher

import (
	"errors"
	"regexp"
	"strings"
	"testing"
)

// findLines runs the matcher over each line of input and returns the
// 1-based numbers of the lines it reported.
func findLines(m *Matcher, input string) []int {
	var got []int
	for i, line := range strings.Split(input, "\n") {
		if _, ok := m.Find([]byte(line)); ok {
			got = append(got, i+1)
		}
	}
	return got
}

func TestMatcher_Default(t *testing.T) {
	tests := []struct {
		name       string
		pattern    string
		ignoreCase bool
		invert     bool
		input      string
		wantLines  []int
	}{
		{
			name:      "simple match",
			pattern:   "duct",
			input:     "Rust:\nsafe, fast, productive.\nPick three.\nDuct tape.",
			wantLines: []int{2},
		},
		{
			name:       "case insensitive",
			pattern:    "rUsT",
			ignoreCase: true,
			input:      "Rust:\nsafe, fast, productive.\nPick three.\nTrust me.",
			wantLines:  []int{1, 4},
		},
		{
			name:      "no match",
			pattern:   "xyz",
			input:     "hello world\ngoodbye world",
			wantLines: nil,
		},
		{
			name:      "regex metacharacters",
			pattern:   `\d+`,
			input:     "abc\n123\ndef456",
			wantLines: []int{2, 3},
		},
		{
			name:      "invert match",
			pattern:   "hello",
			invert:    true,
			input:     "hello\nworld\nhello again",
			wantLines: []int{2},
		},
		{
			name:      "invert keeps empty line",
			pattern:   "x",
			invert:    true,
			input:     "x\n\nx",
			wantLines: []int{2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(Options{Pattern: tt.pattern, IgnoreCase: tt.ignoreCase, Invert: tt.invert})
			if err != nil {
				t.Fatalf("New() error: %v", err)
			}
			if m.Kind() != Default {
				t.Fatalf("Kind() = %v, want default", m.Kind())
			}

			got := findLines(m, tt.input)
			if len(got) != len(tt.wantLines) {
				t.Fatalf("got lines %v, want %v", got, tt.wantLines)
			}
			for i := range got {
				if got[i] != tt.wantLines[i] {
					t.Errorf("line[%d] = %d, want %d", i, got[i], tt.wantLines[i])
				}
			}
		})
	}
}

func TestMatcher_DefaultPositions(t *testing.T) {
	m, err := New(Options{Pattern: "ab"})
	if err != nil {
		t.Fatal(err)
	}

	out, ok := m.Find([]byte("xabcabd"))
	if !ok {
		t.Fatal("expected match")
	}
	if out.Kind != WholeLine {
		t.Fatalf("Kind = %v, want WholeLine", out.Kind)
	}
	if string(out.Line) != "xabcabd" {
		t.Errorf("Line = %q, want whole line", out.Line)
	}
	if len(out.Positions) != 2 {
		t.Fatalf("got %d positions, want 2", len(out.Positions))
	}
	if out.Positions[0] != [2]int{1, 3} {
		t.Errorf("position[0] = %v, want [1,3]", out.Positions[0])
	}
	if out.Positions[1] != [2]int{4, 6} {
		t.Errorf("position[1] = %v, want [4,6]", out.Positions[1])
	}
}

func TestMatcher_InvertHasNoPositions(t *testing.T) {
	m, err := New(Options{Pattern: "hello", Invert: true})
	if err != nil {
		t.Fatal(err)
	}
	out, ok := m.Find([]byte("world"))
	if !ok {
		t.Fatal("expected inverted match")
	}
	if len(out.Positions) != 0 {
		t.Errorf("Positions = %v, want none for inverted match", out.Positions)
	}
}

// The default matcher reports a line iff pattern-match XOR invert.
func TestMatcher_InvertIsXor(t *testing.T) {
	lines := []string{"", "a", "abc", "xyz", "aaa", "b a b", "ABC"}
	re := regexp.MustCompile("a")

	for _, invert := range []bool{false, true} {
		m, err := New(Options{Pattern: "a", Invert: invert})
		if err != nil {
			t.Fatal(err)
		}
		for _, line := range lines {
			out, ok := m.Find([]byte(line))
			want := re.MatchString(line) != invert
			if ok != want {
				t.Errorf("invert=%v line=%q: ok=%v, want %v", invert, line, ok, want)
			}
			if ok && string(out.Line) != line {
				t.Errorf("invert=%v: Line = %q, want %q", invert, out.Line, line)
			}
		}
	}
}

func TestMatcher_OnlyMatching(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		line    string
		want    []string
	}{
		{"digits", `\d+`, "hello 123 world 456", []string{"123", "456"}},
		{"no match", `\d+`, "no numbers here", nil},
		{"non overlapping", "aa", "aaaaa", []string{"aa", "aa"}},
		{"whole line", "^.*$", "abc", []string{"abc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(Options{Pattern: tt.pattern, OnlyMatching: true})
			if err != nil {
				t.Fatal(err)
			}
			if m.Kind() != OnlyMatching {
				t.Fatalf("Kind() = %v, want only-matching", m.Kind())
			}

			out, ok := m.Find([]byte(tt.line))
			if tt.want == nil {
				if ok {
					t.Fatalf("expected no match, got %q", out.Fragments)
				}
				return
			}
			if !ok {
				t.Fatal("expected match")
			}
			if out.Kind != Fragments {
				t.Fatalf("Kind = %v, want Fragments", out.Kind)
			}

			var got []string
			for _, f := range out.Fragments {
				got = append(got, string(f))
			}
			if strings.Join(got, ",") != strings.Join(tt.want, ",") || len(got) != len(tt.want) {
				t.Errorf("fragments = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMatcher_FragmentsBorrowLine(t *testing.T) {
	m, err := New(Options{Pattern: "b+", OnlyMatching: true})
	if err != nil {
		t.Fatal(err)
	}
	line := []byte("abba")
	out, ok := m.Find(line)
	if !ok {
		t.Fatal("expected match")
	}
	line[1] = 'x'
	if string(out.Fragments[0]) != "xb" {
		t.Errorf("fragment = %q, want it to alias the input line", out.Fragments[0])
	}
}

func TestNew_InvalidPattern(t *testing.T) {
	_, err := New(Options{Pattern: "("})
	if err == nil {
		t.Fatal("expected error for invalid pattern")
	}
	var pe *PatternError
	if !errors.As(err, &pe) {
		t.Fatalf("error %v is not a *PatternError", err)
	}
	if pe.Pattern != "(" {
		t.Errorf("Pattern = %q, want %q", pe.Pattern, "(")
	}
}

func TestNew_InvertWithOnlyMatching(t *testing.T) {
	_, err := New(Options{Pattern: "a", Invert: true, OnlyMatching: true})
	if !errors.Is(err, ErrInvertOnlyMatching) {
		t.Errorf("err = %v, want ErrInvertOnlyMatching", err)
	}
}
