package application

import (
	"sort"

	"github.com/ericfisherdev/prreview/internal/domain/model"
)

// UnitResult carries one review unit's reconciled comments through
// aggregation. Units that failed or produced nothing have an empty
// Comments slice.
type UnitResult struct {
	Unit     model.ReviewUnit
	Comments []model.Comment
}

// AggregateComments flattens per-unit comments into one batch ordered by
// (file path, hunk start line, comment line) so the output is deterministic
// regardless of unit completion order. Comments with non-positive line
// numbers are dropped; reconciliation should never produce one, but the
// guard keeps the posting contract safe against future decomposition
// changes.
func AggregateComments(results []UnitResult) []model.Comment {
	sorted := make([]UnitResult, len(results))
	copy(sorted, results)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Unit.Path != sorted[j].Unit.Path {
			return sorted[i].Unit.Path < sorted[j].Unit.Path
		}
		return sorted[i].Unit.Hunk.NewStart < sorted[j].Unit.Hunk.NewStart
	})

	var comments []model.Comment
	for _, result := range sorted {
		unitComments := make([]model.Comment, 0, len(result.Comments))
		for _, c := range result.Comments {
			if c.Line <= 0 {
				continue
			}
			unitComments = append(unitComments, c)
		}
		sort.SliceStable(unitComments, func(i, j int) bool {
			return unitComments[i].Line < unitComments[j].Line
		})
		comments = append(comments, unitComments...)
	}
	return comments
}
