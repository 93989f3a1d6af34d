package chat

import (
	"context"
	"log/slog"
	"time"
)

// NotifierConfig holds the parameters needed to construct a Notifier.
type NotifierConfig struct {
	Token        string
	DashboardURL string
}

// Notifier delivers lifecycle notifications to chat threads.
// Nil-safe: all methods are no-ops when the notifier is nil.
type Notifier struct {
	client       *Client
	dashboardURL string
	logger       *slog.Logger
}

// NewNotifier creates a chat notifier. Returns nil if no token is
// configured, which disables chat notifications.
func NewNotifier(cfg NotifierConfig) *Notifier {
	if cfg.Token == "" {
		return nil
	}
	return &Notifier{
		client:       NewClient(cfg.Token),
		dashboardURL: cfg.DashboardURL,
		logger:       slog.Default().With("component", "chat-notifier"),
	}
}

// NewNotifierWithClient creates a Notifier backed by a pre-built Client.
// Useful for testing with a mock API server.
func NewNotifierWithClient(client *Client, dashboardURL string) *Notifier {
	return &Notifier{
		client:       client,
		dashboardURL: dashboardURL,
		logger:       slog.Default().With("component", "chat-notifier"),
	}
}

// Client returns the underlying API client, nil when the notifier is
// disabled.
func (n *Notifier) Client() *Client {
	if n == nil {
		return nil
	}
	return n.client
}

// NotifyAccepted posts the request-accepted message in thread.
// Fail-open: errors are logged, never returned.
func (n *Notifier) NotifyAccepted(ctx context.Context, requestID, channel, threadKey, repository string) {
	if n == nil || channel == "" {
		return
	}
	blocks := BuildAcceptedMessage(requestID, repository, n.dashboardURL)
	if err := n.client.PostMessage(ctx, channel, blocks, threadKey, 5*time.Second); err != nil {
		n.logger.Error("Failed to send accepted notification",
			"request_id", requestID,
			"error", err)
	}
}

// NotifyClarification posts the agent's clarifying questions in thread.
func (n *Notifier) NotifyClarification(ctx context.Context, requestID, channel, threadKey string, questions []string) {
	if n == nil || channel == "" {
		return
	}
	blocks := BuildClarificationMessage(requestID, questions, n.dashboardURL)
	if err := n.client.PostMessage(ctx, channel, blocks, threadKey, 5*time.Second); err != nil {
		n.logger.Error("Failed to send clarification notification",
			"request_id", requestID,
			"error", err)
	}
}

// PullRequestInput carries the stats for a PR notification.
type PullRequestInput struct {
	RequestID     string
	Channel       string
	ThreadKey     string
	PRURL         string
	Summary       string
	FilesModified int
	CostCents     int
	DurationMs    int64
	Updated       bool
}

// NotifyPullRequest posts the PR created/updated message in thread.
func (n *Notifier) NotifyPullRequest(ctx context.Context, input PullRequestInput) {
	if n == nil || input.Channel == "" {
		return
	}
	blocks := BuildPullRequestMessage(input.RequestID, input.PRURL, input.Summary,
		input.FilesModified, input.CostCents, input.DurationMs, input.Updated, n.dashboardURL)
	if err := n.client.PostMessage(ctx, input.Channel, blocks, input.ThreadKey, 10*time.Second); err != nil {
		n.logger.Error("Failed to send pull request notification",
			"request_id", input.RequestID,
			"error", err)
	}
}

// NotifyCompleted posts the analysis-complete (no code changes) message.
func (n *Notifier) NotifyCompleted(ctx context.Context, requestID, channel, threadKey, summary string) {
	if n == nil || channel == "" {
		return
	}
	blocks := BuildCompletedMessage(requestID, summary, n.dashboardURL)
	if err := n.client.PostMessage(ctx, channel, blocks, threadKey, 10*time.Second); err != nil {
		n.logger.Error("Failed to send completed notification",
			"request_id", requestID,
			"error", err)
	}
}

// NotifyError posts the terminal error message with the retry affordance.
func (n *Notifier) NotifyError(ctx context.Context, requestID, channel, threadKey, reason string) {
	if n == nil || channel == "" {
		return
	}
	blocks := BuildErrorMessage(requestID, reason, n.dashboardURL)
	if err := n.client.PostMessage(ctx, channel, blocks, threadKey, 10*time.Second); err != nil {
		n.logger.Error("Failed to send error notification",
			"request_id", requestID,
			"error", err)
	}
}
