package forge

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Notifier posts request-lifecycle updates as issue comments.
// Nil-safe: all methods are no-ops when the notifier is nil.
type Notifier struct {
	client Client
	logger *slog.Logger
}

// NewNotifier creates a forge notifier. Returns nil when no client is
// configured, which disables forge notifications.
func NewNotifier(client Client) *Notifier {
	if client == nil {
		return nil
	}
	return &Notifier{
		client: client,
		logger: slog.Default().With("component", "forge-notifier"),
	}
}

// NotifyProcessingStarted comments that work has begun.
// Fail-open: errors are logged, never returned.
func (n *Notifier) NotifyProcessingStarted(ctx context.Context, repo string, issueNumber int, requestID string) {
	if n == nil || issueNumber == 0 {
		return
	}
	body := fmt.Sprintf("🤖 Working on this now.\n\n<sub>request: %s</sub>", requestID)
	n.post(ctx, repo, issueNumber, requestID, body)
}

// NotifyPullRequest comments with the opened or updated pull request.
func (n *Notifier) NotifyPullRequest(ctx context.Context, repo string, issueNumber int, requestID, prURL, summary string, updated bool) {
	if n == nil || issueNumber == 0 {
		return
	}
	verb := "opened"
	if updated {
		verb = "updated"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "🤖 Pull request %s: %s\n", verb, prURL)
	if summary != "" {
		fmt.Fprintf(&b, "\n%s\n", summary)
	}
	fmt.Fprintf(&b, "\n<sub>request: %s</sub>", requestID)
	n.post(ctx, repo, issueNumber, requestID, b.String())
}

// NotifyClarification comments the agent's clarifying questions. Answers
// arrive as issue-comment webhooks and are correlated by the router.
func (n *Notifier) NotifyClarification(ctx context.Context, repo string, issueNumber int, requestID string, questions []string) {
	if n == nil || issueNumber == 0 {
		return
	}
	var b strings.Builder
	b.WriteString("🤖 I need a bit more information before continuing:\n\n")
	for _, q := range questions {
		fmt.Fprintf(&b, "- %s\n", q)
	}
	fmt.Fprintf(&b, "\nReply on this issue to answer.\n\n<sub>request: %s</sub>", requestID)
	n.post(ctx, repo, issueNumber, requestID, b.String())
}

// NotifyCompleted comments the final summary when the request finished
// without code changes (analysis or question answers).
func (n *Notifier) NotifyCompleted(ctx context.Context, repo string, issueNumber int, requestID, summary string) {
	if n == nil || issueNumber == 0 {
		return
	}
	var b strings.Builder
	b.WriteString("🤖 Done — no code changes were needed.\n")
	if summary != "" {
		fmt.Fprintf(&b, "\n%s\n", summary)
	}
	fmt.Fprintf(&b, "\n<sub>request: %s</sub>", requestID)
	n.post(ctx, repo, issueNumber, requestID, b.String())
}

// NotifyError comments a terminal failure with the retry affordance.
func (n *Notifier) NotifyError(ctx context.Context, repo string, issueNumber int, requestID, reason string) {
	if n == nil || issueNumber == 0 {
		return
	}
	body := fmt.Sprintf("🤖 I hit a problem and stopped: %s\n\nComment `retry` on this issue to try again.\n\n<sub>request: %s</sub>", reason, requestID)
	n.post(ctx, repo, issueNumber, requestID, body)
}

func (n *Notifier) post(ctx context.Context, repo string, issueNumber int, requestID, body string) {
	if err := n.client.CreateIssueComment(ctx, repo, issueNumber, body); err != nil {
		n.logger.Error("Failed to post forge notification",
			"request_id", requestID,
			"repository", repo,
			"issue_number", issueNumber,
			"error", err)
	}
}
