package forge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultAPIBase = "https://api.github.com"

// RESTClient implements Client against the forge REST API using tokens
// from a TokenSource.
type RESTClient struct {
	apiBase    string
	host       string
	tokens     TokenSource
	httpClient *http.Client
}

// NewRESTClient creates a RESTClient. Empty apiBase targets the public
// forge endpoint.
func NewRESTClient(apiBase string, tokens TokenSource) *RESTClient {
	if apiBase == "" {
		apiBase = defaultAPIBase
	}
	host := "github.com"
	if u, err := url.Parse(apiBase); err == nil && u.Host != "" && !strings.HasPrefix(u.Host, "api.") {
		host = u.Host
	}
	return &RESTClient{
		apiBase: strings.TrimSuffix(apiBase, "/"),
		host:    host,
		tokens:  tokens,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *RESTClient) GetIssue(ctx context.Context, repo string, number int) (*Issue, error) {
	var raw rawIssue
	endpoint := fmt.Sprintf("/repos/%s/issues/%d", repo, number)
	if err := c.get(ctx, endpoint, &raw); err != nil {
		return nil, fmt.Errorf("get issue #%d: %w", number, err)
	}
	return raw.toIssue(), nil
}

func (c *RESTClient) CreateIssue(ctx context.Context, repo, title, body string, labels []string) (*Issue, error) {
	payload := map[string]interface{}{
		"title": title,
		"body":  body,
	}
	if len(labels) > 0 {
		payload["labels"] = labels
	}
	var raw rawIssue
	endpoint := fmt.Sprintf("/repos/%s/issues", repo)
	if err := c.post(ctx, endpoint, payload, &raw); err != nil {
		return nil, fmt.Errorf("create issue: %w", err)
	}
	return raw.toIssue(), nil
}

func (c *RESTClient) CreateIssueComment(ctx context.Context, repo string, number int, body string) error {
	endpoint := fmt.Sprintf("/repos/%s/issues/%d/comments", repo, number)
	if err := c.post(ctx, endpoint, map[string]interface{}{"body": body}, nil); err != nil {
		return fmt.Errorf("create comment on #%d: %w", number, err)
	}
	return nil
}

func (c *RESTClient) AddLabels(ctx context.Context, repo string, number int, labels []string) error {
	endpoint := fmt.Sprintf("/repos/%s/issues/%d/labels", repo, number)
	if err := c.post(ctx, endpoint, map[string]interface{}{"labels": labels}, nil); err != nil {
		return fmt.Errorf("add labels to #%d: %w", number, err)
	}
	return nil
}

func (c *RESTClient) CreatePullRequest(ctx context.Context, repo, title, body, head, base string) (*PullRequest, error) {
	payload := map[string]interface{}{
		"title": title,
		"body":  body,
		"head":  head,
		"base":  base,
	}
	var raw rawPR
	endpoint := fmt.Sprintf("/repos/%s/pulls", repo)
	if err := c.post(ctx, endpoint, payload, &raw); err != nil {
		return nil, fmt.Errorf("create pull request: %w", err)
	}
	return raw.toPullRequest(), nil
}

func (c *RESTClient) FindPullRequestByBranch(ctx context.Context, repo, branch string) (*PullRequest, error) {
	owner := repo
	if i := strings.IndexByte(repo, '/'); i > 0 {
		owner = repo[:i]
	}
	var raw []rawPR
	endpoint := fmt.Sprintf("/repos/%s/pulls?head=%s:%s&state=open&per_page=1",
		repo, owner, url.QueryEscape(branch))
	if err := c.get(ctx, endpoint, &raw); err != nil {
		return nil, fmt.Errorf("find pull request by branch: %w", err)
	}
	if len(raw) == 0 {
		return nil, nil
	}
	return raw[0].toPullRequest(), nil
}

func (c *RESTClient) CloneURL(ctx context.Context, repo string) (string, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return "", fmt.Errorf("resolve clone token: %w", err)
	}
	return fmt.Sprintf("https://x-access-token:%s@%s/%s.git", token, c.host, repo), nil
}

// ────────────────────────────────────────────────────────────
// HTTP helpers
// ────────────────────────────────────────────────────────────

func (c *RESTClient) get(ctx context.Context, endpoint string, result interface{}) error {
	return c.do(ctx, http.MethodGet, endpoint, nil, result)
}

func (c *RESTClient) post(ctx context.Context, endpoint string, payload, result interface{}) error {
	return c.do(ctx, http.MethodPost, endpoint, payload, result)
}

func (c *RESTClient) do(ctx context.Context, method, endpoint string, payload, result interface{}) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode %s payload: %w", endpoint, err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.apiBase+endpoint, body)
	if err != nil {
		return err
	}
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return fmt.Errorf("resolve token: %w", err)
	}
	req.Header.Set("Authorization", "token "+token)
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", "2022-11-28")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", endpoint, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return &AuthError{StatusCode: resp.StatusCode, Endpoint: endpoint}
	}
	if resp.StatusCode >= 400 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("forge API %s returned %d: %s", endpoint, resp.StatusCode, string(raw))
	}
	if result == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(result)
}

// AuthError marks a credential problem; the dispatcher treats it as
// integration_auth and attempts one token refresh.
type AuthError struct {
	StatusCode int
	Endpoint   string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("forge API %s returned %d: credential rejected", e.Endpoint, e.StatusCode)
}

// ────────────────────────────────────────────────────────────
// Wire shapes
// ────────────────────────────────────────────────────────────

type rawIssue struct {
	ID      int64  `json:"id"`
	Number  int    `json:"number"`
	Title   string `json:"title"`
	Body    string `json:"body"`
	State   string `json:"state"`
	HTMLURL string `json:"html_url"`
	Labels  []struct {
		Name string `json:"name"`
	} `json:"labels"`
}

func (r *rawIssue) toIssue() *Issue {
	issue := &Issue{
		ID:      r.ID,
		Number:  r.Number,
		Title:   r.Title,
		Body:    r.Body,
		State:   r.State,
		HTMLURL: r.HTMLURL,
	}
	for _, l := range r.Labels {
		issue.Labels = append(issue.Labels, l.Name)
	}
	return issue
}

type rawPR struct {
	Number  int    `json:"number"`
	Title   string `json:"title"`
	State   string `json:"state"`
	HTMLURL string `json:"html_url"`
	Head    struct {
		Ref string `json:"ref"`
	} `json:"head"`
}

func (r *rawPR) toPullRequest() *PullRequest {
	return &PullRequest{
		Number:  r.Number,
		Title:   r.Title,
		State:   r.State,
		HTMLURL: r.HTMLURL,
		Branch:  r.Head.Ref,
	}
}
