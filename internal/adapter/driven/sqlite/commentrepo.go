package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ericfisherdev/prreview/internal/domain/model"
	"github.com/ericfisherdev/prreview/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.CommentStore = (*CommentRepo)(nil)

// CommentRepo is the SQLite implementation of the CommentStore port interface.
type CommentRepo struct {
	db *DB
}

// NewCommentRepo creates a new CommentRepo backed by the given DB.
func NewCommentRepo(db *DB) *CommentRepo {
	return &CommentRepo{db: db}
}

// SavePostedComments persists a batch of posted comments in one transaction.
func (r *CommentRepo) SavePostedComments(ctx context.Context, comments []model.PostedComment) error {
	const query = `
		INSERT INTO posted_comments (repo, pr_number, path, line, body, model, posted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	tx, err := r.db.Writer.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save posted comments: %w", err)
	}
	defer tx.Rollback()

	for _, c := range comments {
		_, err := tx.ExecContext(ctx, query,
			c.Repo, c.PRNumber, c.Path, c.Line, c.Body, c.Model, c.PostedAt.UTC(),
		)
		if err != nil {
			return fmt.Errorf("insert posted comment %s:%d: %w", c.Path, c.Line, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit posted comments: %w", err)
	}

	return nil
}

// ListPostedComments returns posted comments matching the filter, ordered
// by posted_at then id.
func (r *CommentRepo) ListPostedComments(ctx context.Context, filter driven.PostedCommentFilter) ([]model.PostedComment, error) {
	query := `
		SELECT id, repo, pr_number, path, line, body, model, posted_at
		FROM posted_comments
	`

	var conds []string
	var args []any
	if filter.Repo != "" {
		conds = append(conds, "repo = ?")
		args = append(args, filter.Repo)
	}
	if filter.PRNumber > 0 {
		conds = append(conds, "pr_number = ?")
		args = append(args, filter.PRNumber)
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY posted_at, id"

	rows, err := r.db.Reader.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query posted comments: %w", err)
	}
	defer rows.Close()

	var comments []model.PostedComment
	for rows.Next() {
		comment, err := scanPostedComment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan posted comment: %w", err)
		}
		comments = append(comments, *comment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate posted comments: %w", err)
	}

	return comments, nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanPostedComment(s scanner) (*model.PostedComment, error) {
	var comment model.PostedComment
	var postedAt string

	err := s.Scan(
		&comment.ID, &comment.Repo, &comment.PRNumber, &comment.Path,
		&comment.Line, &comment.Body, &comment.Model, &postedAt,
	)
	if err != nil {
		return nil, err
	}

	comment.PostedAt, err = parseTime(postedAt)
	if err != nil {
		return nil, fmt.Errorf("parse posted_at: %w", err)
	}

	return &comment, nil
}

// parseTime tries multiple SQLite datetime formats.
func parseTime(s string) (time.Time, error) {
	formats := []string{
		"2006-01-02T15:04:05Z",
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05.000",
		time.RFC3339,
		time.RFC3339Nano,
	}

	for _, format := range formats {
		if t, err := time.Parse(format, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized time format: %s", s)
}
