package driven

import (
	"context"

	"github.com/ericfisherdev/prreview/internal/domain/model"
)

// PostedCommentFilter narrows ListPostedComments results. Zero values mean
// no filtering on that field.
type PostedCommentFilter struct {
	Repo     string
	PRNumber int
}

// CommentStore defines the driven port for the local comment history
// database. The pipeline records every successfully posted comment; the
// reviewlog binary reads them back for export.
type CommentStore interface {
	// SavePostedComments persists a batch of posted comments.
	SavePostedComments(ctx context.Context, comments []model.PostedComment) error

	// ListPostedComments returns posted comments matching the filter,
	// ordered by posted_at then id.
	ListPostedComments(ctx context.Context, filter PostedCommentFilter) ([]model.PostedComment, error)
}
