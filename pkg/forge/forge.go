// Package forge talks to the source-forge platform: issues, comments, and
// pull requests over its REST API, plus webhook payload decoding for the
// intake side.
package forge

import "context"

// Issue is the subset of a forge issue the engine consumes.
type Issue struct {
	Number  int      `json:"number"`
	Title   string   `json:"title"`
	Body    string   `json:"body"`
	State   string   `json:"state"`
	Labels  []string `json:"-"`
	HTMLURL string   `json:"html_url"`
	ID      int64    `json:"id"`
}

// PullRequest is the subset of a forge pull request the engine consumes.
type PullRequest struct {
	Number  int    `json:"number"`
	Title   string `json:"title"`
	State   string `json:"state"`
	HTMLURL string `json:"html_url"`
	Branch  string `json:"-"`
}

// Client is the engine's view of the forge REST API.
type Client interface {
	GetIssue(ctx context.Context, repo string, number int) (*Issue, error)
	CreateIssue(ctx context.Context, repo, title, body string, labels []string) (*Issue, error)
	CreateIssueComment(ctx context.Context, repo string, number int, body string) error
	AddLabels(ctx context.Context, repo string, number int, labels []string) error

	CreatePullRequest(ctx context.Context, repo, title, body, head, base string) (*PullRequest, error)
	FindPullRequestByBranch(ctx context.Context, repo, branch string) (*PullRequest, error)

	// CloneURL returns an authenticated HTTPS clone URL for the repo.
	CloneURL(ctx context.Context, repo string) (string, error)
}
