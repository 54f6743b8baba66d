package model

// PRContext is the pull request metadata embedded into review prompts.
// It is resolved once at startup and immutable for the duration of a run.
type PRContext struct {
	Owner       string
	Repo        string
	Number      int
	Title       string
	Description string
}

// RepoFullName returns the "owner/repo" form used by the GitHub API adapter.
func (p PRContext) RepoFullName() string {
	return p.Owner + "/" + p.Repo
}
