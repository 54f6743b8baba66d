package model

// LineKind discriminates the three unified-diff line variants.
type LineKind int

const (
	// LineContext is an unchanged line present in both old and new file.
	LineContext LineKind = iota
	// LineAdded is a line present only in the new file.
	LineAdded
	// LineRemoved is a line present only in the old file.
	LineRemoved
)

// LineChange is a single line of a diff hunk. OldLine is set for context and
// removed lines; NewLine is set for context and added lines. A zero value
// means the number does not apply to the variant.
type LineChange struct {
	Kind    LineKind
	OldLine int
	NewLine int
	Content string // Line text without the +/-/space prefix.
}

// Hunk is one contiguous change region within a file's diff. Content holds
// the raw hunk text including the @@ header, exactly as it appeared in the
// unified diff.
type Hunk struct {
	Content  string
	OldStart int
	OldCount int
	NewStart int
	NewCount int
	Lines    []LineChange
}

// TargetLines returns the set of line numbers a review comment may legally
// reference within this hunk: the new-side numbers of added and context
// lines. Removed lines exist only in the old file and are never commentable.
func (h Hunk) TargetLines() map[int]struct{} {
	targets := make(map[int]struct{}, len(h.Lines))
	for _, line := range h.Lines {
		if line.NewLine > 0 {
			targets[line.NewLine] = struct{}{}
		}
	}
	return targets
}

// DiffFile is the parsed diff of a single file. An empty Path is the
// deletion sentinel: the file no longer exists on the new side and is never
// a candidate for comments.
type DiffFile struct {
	Path  string
	Hunks []Hunk
}

// IsDeleted reports whether the file was deleted in this diff.
func (f DiffFile) IsDeleted() bool {
	return f.Path == ""
}
