package model

// ReviewUnit is the atomic unit of model interaction: one hunk of one
// in-scope file, plus the precomputed set of line numbers a suggestion may
// attach to. Targets are hunk-local and never merged across hunks, even
// within the same file.
type ReviewUnit struct {
	Path    string
	Hunk    Hunk
	Targets map[int]struct{}
}

// NewReviewUnit builds a unit for the given file path and hunk.
func NewReviewUnit(path string, hunk Hunk) ReviewUnit {
	return ReviewUnit{
		Path:    path,
		Hunk:    hunk,
		Targets: hunk.TargetLines(),
	}
}

// InTargets reports whether line is a legal comment target for this unit.
func (u ReviewUnit) InTargets(line int) bool {
	_, ok := u.Targets[line]
	return ok
}
