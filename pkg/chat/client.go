// Package chat is the chat-platform surface: a thin client over the Slack
// SDK, notification builders for lifecycle moments, and the router that
// correlates thread utterances with requests.
package chat

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	goslack "github.com/slack-go/slack"
)

// Client is a thin wrapper around the slack-go SDK.
type Client struct {
	api    *goslack.Client
	logger *slog.Logger
}

// NewClient creates a new chat API client.
func NewClient(token string) *Client {
	return &Client{
		api:    goslack.New(token),
		logger: slog.Default().With("component", "chat-client"),
	}
}

// NewClientWithAPIURL creates a chat client that targets a custom API URL.
// Useful for testing with a mock server.
func NewClientWithAPIURL(token, apiURL string) *Client {
	return &Client{
		api:    goslack.New(token, goslack.OptionAPIURL(apiURL)),
		logger: slog.Default().With("component", "chat-client"),
	}
}

// UserDisplayName resolves a user ID to a display name via users.info,
// preferring the profile display name, then the real name, then the login.
// Nil-safe so callers can hold a client from a disabled integration.
func (c *Client) UserDisplayName(ctx context.Context, userID string) (string, error) {
	if c == nil {
		return "", fmt.Errorf("chat client not configured")
	}
	user, err := c.api.GetUserInfoContext(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("users.info failed: %w", err)
	}
	if name := user.Profile.DisplayName; name != "" {
		return name, nil
	}
	if user.RealName != "" {
		return user.RealName, nil
	}
	return user.Name, nil
}

// PostMessage sends a message to the channel. If threadKey is non-empty,
// the message is posted as a threaded reply.
func (c *Client) PostMessage(ctx context.Context, channel string, blocks []goslack.Block, threadKey string, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	opts := []goslack.MsgOption{
		goslack.MsgOptionBlocks(blocks...),
	}
	if threadKey != "" {
		opts = append(opts, goslack.MsgOptionTS(threadKey))
	}

	_, _, err := c.api.PostMessageContext(ctx, channel, opts...)
	if err != nil {
		return fmt.Errorf("chat.postMessage failed: %w", err)
	}
	return nil
}
