package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPatternFilter_ExcludeDominates(t *testing.T) {
	// Exclude wins even when an include pattern matches the same file.
	f := NewPatternFilter([]string{"**/*.md"}, []string{"docs/**"})
	assert.False(t, f.Allowed("docs/readme.md"))
	assert.True(t, f.Allowed("docs/diagram.png"))
}

func TestPatternFilter_DefaultAllow(t *testing.T) {
	f := NewPatternFilter([]string{"**/*.md"}, nil)
	assert.False(t, f.Allowed("docs/readme.md"))
	assert.True(t, f.Allowed("src/a.ts"))
	assert.True(t, f.Allowed("main.go"))
}

func TestPatternFilter_IncludeList(t *testing.T) {
	f := NewPatternFilter(nil, []string{"src/**", "*.go"})
	assert.True(t, f.Allowed("src/deep/nested/a.ts"))
	assert.True(t, f.Allowed("main.go"))
	assert.False(t, f.Allowed("vendor/lib.js"))
}

func TestPatternFilter_BlankPatternsIgnored(t *testing.T) {
	f := NewPatternFilter([]string{"", "   "}, []string{" ", ""})
	// Both lists are effectively empty, so everything is allowed.
	assert.True(t, f.Allowed("anything/at/all.txt"))
}

func TestPatternFilter_DoubleStarMatchesRoot(t *testing.T) {
	f := NewPatternFilter([]string{"**/*.md"}, nil)
	assert.False(t, f.Allowed("readme.md"))
}

func TestPatternFilter_MalformedPatternNeverMatches(t *testing.T) {
	f := NewPatternFilter([]string{"[invalid"}, nil)
	assert.True(t, f.Allowed("src/a.ts"))
}
