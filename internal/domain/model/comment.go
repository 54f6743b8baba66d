package model

import "time"

// Comment is a validated inline review comment, ready to submit. Line is
// always positive and was a member of some review unit's target set for
// Path at the time the comment was produced.
type Comment struct {
	Path string
	Line int
	Body string
}

// PostedComment is a Comment as persisted to the local history database
// after a successful review submission.
type PostedComment struct {
	ID       int64
	Repo     string // "owner/repo"
	PRNumber int
	Path     string
	Line     int
	Body     string
	Model    string // Model identifier that produced the comment.
	PostedAt time.Time
}
