package walker

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// globFilter holds the include and exclude patterns of a walk.
type globFilter struct {
	include []string
	exclude []string
}

// ValidateGlob reports whether pattern (with an optional "!" prefix) is a
// well-formed doublestar pattern.
func ValidateGlob(pattern string) error {
	p := strings.TrimPrefix(pattern, "!")
	if p == "" || !doublestar.ValidatePattern(p) {
		return fmt.Errorf("invalid glob %q", pattern)
	}
	return nil
}

func newGlobFilter(patterns []string) (globFilter, error) {
	var g globFilter
	for _, p := range patterns {
		if err := ValidateGlob(p); err != nil {
			return globFilter{}, err
		}
		if rest, ok := strings.CutPrefix(p, "!"); ok {
			g.exclude = append(g.exclude, rest)
		} else {
			g.include = append(g.include, p)
		}
	}
	return g, nil
}

func (g globFilter) empty() bool {
	return len(g.include) == 0 && len(g.exclude) == 0
}

// allow reports whether rel (slash-separated, relative to the walk root)
// passes the filter. Excludes win over includes; with no includes, every
// path not excluded passes. Patterns without a slash also match the base name.
func (g globFilter) allow(rel string) bool {
	for _, p := range g.exclude {
		if globMatch(p, rel) {
			return false
		}
	}
	if len(g.include) == 0 {
		return true
	}
	for _, p := range g.include {
		if globMatch(p, rel) {
			return true
		}
	}
	return false
}

func globMatch(pattern, rel string) bool {
	if ok, _ := doublestar.Match(pattern, rel); ok {
		return true
	}
	if !strings.Contains(pattern, "/") {
		base := rel[strings.LastIndexByte(rel, '/')+1:]
		ok, _ := doublestar.Match(pattern, base)
		return ok
	}
	return false
}
