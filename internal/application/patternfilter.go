package application

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// PatternFilter decides whether a file path is in scope for review.
// Exclude patterns dominate include patterns unconditionally; an empty
// include list means default-allow. The filter is a pure predicate and
// safe for concurrent use.
type PatternFilter struct {
	exclude []string
	include []string
}

// NewPatternFilter builds a filter from ordered exclude and include glob
// lists. Blank and whitespace-only patterns are dropped before matching.
func NewPatternFilter(exclude, include []string) PatternFilter {
	return PatternFilter{
		exclude: cleanPatterns(exclude),
		include: cleanPatterns(include),
	}
}

// Allowed reports whether the given repository-relative path should be
// reviewed.
func (f PatternFilter) Allowed(path string) bool {
	if matchAny(f.exclude, path) {
		return false
	}
	if len(f.include) == 0 {
		return true
	}
	return matchAny(f.include, path)
}

func cleanPatterns(patterns []string) []string {
	var out []string
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func matchAny(patterns []string, path string) bool {
	for _, p := range patterns {
		// A malformed pattern simply never matches.
		if ok, err := doublestar.Match(p, path); err == nil && ok {
			return true
		}
	}
	return false
}
