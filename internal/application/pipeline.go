// Package application contains the review pipeline: unit decomposition,
// prompt construction, suggestion reconciliation, and aggregation, plus
// the orchestration that drives them against the driven ports.
package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ericfisherdev/prreview/internal/diff"
	"github.com/ericfisherdev/prreview/internal/domain/model"
	"github.com/ericfisherdev/prreview/internal/domain/port/driven"
)

// PipelineOptions holds the per-run configuration the pipeline consumes.
// It is constructed once at startup and passed in explicitly; pipeline
// logic never reads ambient globals.
type PipelineOptions struct {
	Exclude     []string // Glob patterns for files to skip.
	Include     []string // Glob patterns for files to review; empty means all.
	Model       string   // Model identifier, recorded with posted comments.
	Concurrency int      // Max in-flight model calls; values < 1 mean sequential.
}

// ReviewPipeline orchestrates one review run: fetch, filter, decompose,
// prompt, reconcile, aggregate, post, persist. It depends only on port
// interfaces.
type ReviewPipeline struct {
	gh      driven.GitHubClient
	modelAI driven.ModelClient
	store   driven.CommentStore // Optional; nil disables history persistence.
	opts    PipelineOptions
}

// NewReviewPipeline creates a pipeline with the given collaborators.
func NewReviewPipeline(gh driven.GitHubClient, modelAI driven.ModelClient, store driven.CommentStore, opts PipelineOptions) *ReviewPipeline {
	return &ReviewPipeline{
		gh:      gh,
		modelAI: modelAI,
		store:   store,
		opts:    opts,
	}
}

// Run executes the pipeline for one pull request. Only the outer
// interactions are fatal (resolving PR context, fetching the diff,
// submitting the review); every per-unit and per-suggestion failure is
// absorbed and surfaced as diagnostics.
func (p *ReviewPipeline) Run(ctx context.Context, repoFullName string, prNumber int) error {
	prCtx, err := p.gh.FetchPRContext(ctx, repoFullName, prNumber)
	if err != nil {
		return fmt.Errorf("resolving PR context for %s#%d: %w", repoFullName, prNumber, err)
	}

	diffText, err := p.gh.FetchDiff(ctx, repoFullName, prNumber)
	if err != nil {
		return fmt.Errorf("fetching diff for %s#%d: %w", repoFullName, prNumber, err)
	}
	if strings.TrimSpace(diffText) == "" {
		slog.Info("no diff found, nothing to review", "repo", repoFullName, "pr", prNumber)
		return nil
	}

	files := diff.Parse(diffText)
	filter := NewPatternFilter(p.opts.Exclude, p.opts.Include)
	units := Decompose(files, filter)
	if len(units) == 0 {
		slog.Info("no reviewable hunks after filtering", "repo", repoFullName, "pr", prNumber, "files", len(files))
		return nil
	}
	slog.Info("review units prepared", "repo", repoFullName, "pr", prNumber, "units", len(units))

	results := p.reviewUnits(ctx, *prCtx, units)

	comments := AggregateComments(results)
	if len(comments) == 0 {
		slog.Info("no comments to post", "repo", repoFullName, "pr", prNumber)
		return nil
	}

	if err := p.gh.SubmitReview(ctx, repoFullName, prNumber, comments); err != nil {
		return fmt.Errorf("submitting review for %s#%d: %w", repoFullName, prNumber, err)
	}
	slog.Info("review submitted", "repo", repoFullName, "pr", prNumber, "comments", len(comments))

	p.persistHistory(ctx, *prCtx, comments)
	return nil
}

// reviewUnits fans out over units with a bounded concurrency limit.
// Results land at the unit's own index, so completion order never affects
// aggregation. Unit failures are absorbed inside each goroutine; nothing
// cancels sibling units.
func (p *ReviewPipeline) reviewUnits(ctx context.Context, prCtx model.PRContext, units []model.ReviewUnit) []UnitResult {
	limit := p.opts.Concurrency
	if limit < 1 {
		limit = 1
	}

	results := make([]UnitResult, len(units))

	var g errgroup.Group
	g.SetLimit(limit)
	for i, unit := range units {
		g.Go(func() error {
			results[i] = p.reviewOne(ctx, prCtx, unit)
			return nil
		})
	}
	_ = g.Wait() // Goroutines never return errors.

	return results
}

// reviewOne runs a single unit through prompt, model call, and
// reconciliation. A failed or unparseable model call contributes zero
// comments.
func (p *ReviewPipeline) reviewOne(ctx context.Context, prCtx model.PRContext, unit model.ReviewUnit) UnitResult {
	prompt := BuildPrompt(unit, prCtx)

	suggestions, err := p.modelAI.Review(ctx, prompt)
	if err != nil {
		slog.Warn("model call failed, unit skipped",
			"path", unit.Path,
			"hunk_start", unit.Hunk.NewStart,
			"error", err,
		)
		return UnitResult{Unit: unit}
	}

	comments, discarded := Reconcile(unit, suggestions)
	for _, d := range discarded {
		slog.Warn("suggestion discarded",
			"path", d.Path,
			"line", d.Line,
			"reason", d.Reason,
			"comment", d.Body,
		)
	}

	return UnitResult{Unit: unit, Comments: comments}
}

// persistHistory records posted comments in the local store, keyed by the
// resolved PR context. Failures are logged but not propagated: the review
// already posted.
func (p *ReviewPipeline) persistHistory(ctx context.Context, pr model.PRContext, comments []model.Comment) {
	if p.store == nil {
		return
	}

	repo := pr.RepoFullName()
	now := time.Now().UTC()
	posted := make([]model.PostedComment, 0, len(comments))
	for _, c := range comments {
		posted = append(posted, model.PostedComment{
			Repo:     repo,
			PRNumber: pr.Number,
			Path:     c.Path,
			Line:     c.Line,
			Body:     c.Body,
			Model:    p.opts.Model,
			PostedAt: now,
		})
	}

	if err := p.store.SavePostedComments(ctx, posted); err != nil {
		slog.Error("saving comment history failed", "repo", repo, "pr", pr.Number, "error", err)
	}
}
