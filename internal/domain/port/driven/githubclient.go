package driven

import (
	"context"

	"github.com/ericfisherdev/prreview/internal/domain/model"
)

// GitHubClient defines the driven port for interacting with the GitHub API.
// It covers the three interactions a review run needs: resolving PR
// metadata, fetching the raw diff, and submitting the review.
type GitHubClient interface {
	// FetchPRContext resolves the pull request's metadata (title, description).
	FetchPRContext(ctx context.Context, repoFullName string, prNumber int) (*model.PRContext, error)

	// FetchDiff returns the pull request's unified diff as raw text.
	// An empty string with a nil error means the PR has no diff; callers
	// treat that as a clean early exit, not a failure.
	FetchDiff(ctx context.Context, repoFullName string, prNumber int) (string, error)

	// SubmitReview creates a single COMMENT-event review carrying all
	// inline comments. Callers must not invoke it with an empty batch.
	SubmitReview(ctx context.Context, repoFullName string, prNumber int, comments []model.Comment) error
}
