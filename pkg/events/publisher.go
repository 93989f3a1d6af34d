package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
)

// Publisher broadcasts events via pg_notify. Nil-safe: all methods are
// no-ops when the publisher is nil. Delivery is best-effort and never
// rolls back the state change that caused it.
type Publisher struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewPublisher creates a Publisher over the database connection pool.
// The db parameter should be the *sql.DB from database.Client.DB().
func NewPublisher(db *sql.DB) *Publisher {
	if db == nil {
		return nil
	}
	return &Publisher{
		db:     db,
		logger: slog.Default().With("component", "event-publisher"),
	}
}

// PublishRequestStatus broadcasts a status transition to the request
// channel and the global requests channel.
func (p *Publisher) PublishRequestStatus(ctx context.Context, requestID, from, to string) {
	if p == nil {
		return
	}
	payload := RequestStatusPayload{
		Type:      EventTypeRequestStatus,
		RequestID: requestID,
		From:      from,
		To:        to,
	}
	p.notify(ctx, RequestChannel(requestID), payload)
	p.notify(ctx, GlobalRequestsChannel, payload)
}

// PublishMessageAppended broadcasts a new conversation-log entry to the
// request channel.
func (p *Publisher) PublishMessageAppended(ctx context.Context, requestID, messageID, messageType, content string) {
	if p == nil {
		return
	}
	p.notify(ctx, RequestChannel(requestID), MessageAppendedPayload{
		Type:        EventTypeMessageAppended,
		RequestID:   requestID,
		MessageID:   messageID,
		MessageType: messageType,
		Content:     content,
	})
}

// PublishAgentProgress broadcasts a mid-execution progress event to the
// request channel. High-frequency and ephemeral.
func (p *Publisher) PublishAgentProgress(ctx context.Context, requestID string, payload AgentProgressPayload) {
	if p == nil {
		return
	}
	payload.Type = EventTypeAgentProgress
	payload.RequestID = requestID
	p.notify(ctx, RequestChannel(requestID), payload)
}

// notify marshals and broadcasts one payload. Fail-open: errors are
// logged, never returned.
func (p *Publisher) notify(ctx context.Context, channel string, payload interface{}) {
	raw, err := json.Marshal(payload)
	if err != nil {
		p.logger.Warn("Failed to marshal event payload", "channel", channel, "error", err)
		return
	}
	body, err := truncateIfNeeded(raw)
	if err != nil {
		p.logger.Warn("Failed to truncate event payload", "channel", channel, "error", err)
		return
	}
	if _, err := p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, body); err != nil {
		p.logger.Warn("pg_notify failed", "channel", channel, "error", err)
	}
}

// truncateIfNeeded returns the payload as-is when it fits within
// PostgreSQL's 8000-byte NOTIFY limit, otherwise a minimal envelope with
// only routing fields; the client refetches the full record.
func truncateIfNeeded(payload []byte) (string, error) {
	if len(payload) <= 7900 {
		return string(payload), nil
	}

	var routing struct {
		Type      string `json:"type"`
		RequestID string `json:"request_id"`
	}
	if err := json.Unmarshal(payload, &routing); err != nil {
		return "", fmt.Errorf("failed to extract routing fields for truncation: %w", err)
	}
	truncated, err := json.Marshal(map[string]interface{}{
		"type":       routing.Type,
		"request_id": routing.RequestID,
		"truncated":  true,
	})
	if err != nil {
		return "", err
	}
	return string(truncated), nil
}
