package application

import "github.com/ericfisherdev/prreview/internal/domain/model"

// Decompose enumerates review units: one per hunk of every in-scope,
// non-deleted file, each carrying its own valid target line set. Target
// sets stay hunk-local; they are never merged across hunks of the same
// file because a line number is only meaningful relative to its hunk.
func Decompose(files []model.DiffFile, filter PatternFilter) []model.ReviewUnit {
	var units []model.ReviewUnit
	for _, file := range files {
		if file.IsDeleted() || !filter.Allowed(file.Path) {
			continue
		}
		for _, hunk := range file.Hunks {
			units = append(units, model.NewReviewUnit(file.Path, hunk))
		}
	}
	return units
}
