package api

import (
	"github.com/patchwork-dev/patchwork/ent"
	"github.com/patchwork-dev/patchwork/pkg/queue"
)

// HealthCheck is one named component check in the health response.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is the GET /health body.
type HealthResponse struct {
	Status  string                 `json:"status"`
	Version string                 `json:"version"`
	Checks  map[string]HealthCheck `json:"checks"`
	Pool    *queue.PoolHealth      `json:"pool,omitempty"`
}

// MessagePageResponse is the GET /api/requests/:id/messages body: one page
// of the conversation log, oldest first within the page.
type MessagePageResponse struct {
	Messages []*ent.Message `json:"messages"`
	HasMore  bool           `json:"has_more"`
}

// SessionBlobResponse describes a stored agent session; the blob itself is
// served as the response body.
type SessionBlobResponse struct {
	RequestID        string `json:"request_id"`
	SessionID        string `json:"session_id"`
	AgentKind        string `json:"agent_kind"`
	UncompressedSize int    `json:"uncompressed_size"`
}

// ackResponse is the uniform fast-ack body for intake endpoints.
type ackResponse struct {
	Status string `json:"status"`
}

var (
	ackAccepted = ackResponse{Status: "accepted"}
	ackIgnored  = ackResponse{Status: "ignored"}
)
