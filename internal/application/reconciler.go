package application

import (
	"strconv"
	"strings"

	"github.com/ericfisherdev/prreview/internal/domain/model"
)

// Reconcile validates raw model suggestions against a unit's target line
// set. Valid suggestions become comments; everything else is returned as a
// discard record for diagnostic logging. Reconcile never fails: malformed
// line fields are a data case, not an error.
func Reconcile(unit model.ReviewUnit, suggestions []model.Suggestion) ([]model.Comment, []model.DiscardedSuggestion) {
	var comments []model.Comment
	var discarded []model.DiscardedSuggestion

	for _, s := range suggestions {
		if unit.Path == "" {
			discarded = append(discarded, discard(unit, s, model.DiscardNoTargetPath))
			continue
		}

		line, err := strconv.Atoi(strings.TrimSpace(s.Line))
		if err != nil {
			discarded = append(discarded, discard(unit, s, model.DiscardNotANumber))
			continue
		}
		if !unit.InTargets(line) {
			discarded = append(discarded, discard(unit, s, model.DiscardOutOfRange))
			continue
		}

		comments = append(comments, model.Comment{
			Path: unit.Path,
			Line: line,
			Body: s.Body,
		})
	}

	return comments, discarded
}

func discard(unit model.ReviewUnit, s model.Suggestion, reason string) model.DiscardedSuggestion {
	return model.DiscardedSuggestion{
		Path:   unit.Path,
		Line:   s.Line,
		Body:   s.Body,
		Reason: reason,
	}
}
