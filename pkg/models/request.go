// Package models defines the request/response DTOs shared by services,
// the queue dispatcher, and the HTTP API.
package models

import (
	"time"

	"github.com/patchwork-dev/patchwork/ent"
	"github.com/patchwork-dev/patchwork/ent/message"
	"github.com/patchwork-dev/patchwork/ent/request"
)

// CreateRequestRequest contains fields for creating a new request row.
type CreateRequestRequest struct {
	RequestID   string         `json:"request_id"`
	Origin      request.Origin `json:"origin"`
	Repository  string         `json:"repository"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	RequestType string         `json:"request_type,omitempty"`

	AgentKind string `json:"agent_kind"`
	Provider  string `json:"provider,omitempty"`
	Model     string `json:"model,omitempty"`

	ChatUserID    string `json:"chat_user_id,omitempty"`
	ChatChannel   string `json:"chat_channel,omitempty"`
	ChatThreadKey string `json:"chat_thread_key,omitempty"`

	IssueID     string `json:"issue_id,omitempty"`
	IssueNumber int    `json:"issue_number,omitempty"`
	IssueURL    string `json:"issue_url,omitempty"`
}

// StatusPatch carries optional columns written together with a status
// transition. Nil fields are left untouched. LogContent and Meta enrich the
// single transition log entry (e.g. PR link on pr_created, questions on
// awaiting_clarification) so callers never append a duplicate lifecycle
// message.
type StatusPatch struct {
	ErrorMessage *string
	CostCents    *int
	DurationMs   *int
	ProcessedAt  *time.Time

	LogContent string
	Meta       map[string]interface{}

	// LogType overrides the default message type derived from the target
	// status (e.g. pr_updated instead of pr_created when the request
	// already has a pull request). Empty keeps the default.
	LogType message.Type
}

// RequestFilters contains filtering options for listing requests.
type RequestFilters struct {
	Status     string `json:"status,omitempty"`
	Repository string `json:"repository,omitempty"`
	Origin     string `json:"origin,omitempty"`
	Limit      int    `json:"limit,omitempty"`
	Offset     int    `json:"offset,omitempty"`
}

// RequestListResponse contains a paginated request list.
type RequestListResponse struct {
	Requests   []*ent.Request `json:"requests"`
	TotalCount int            `json:"total_count"`
	Limit      int            `json:"limit"`
	Offset     int            `json:"offset"`
}
