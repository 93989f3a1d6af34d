package models

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
)

// Queue message variants. Every envelope carries either a request id (for
// existing requests) or a correlation key (for creation variants).
const (
	VariantRequestCreateFromForge  = "request_create_from_forge"
	VariantRequestCreateFromChat   = "request_create_from_chat"
	VariantChatMention             = "chat_mention"
	VariantChatClarificationAnswer = "chat_clarification_answer"
	VariantChatSuggestChanges      = "chat_suggest_changes"
	VariantChatRetryRequest        = "chat_retry_request"
	VariantRequestExecute          = "request_execute"
	VariantSessionSweep            = "session_sweep"
)

// Envelope is one queue message before persistence. The dispatcher assigns
// the sequence and attempt bookkeeping.
type Envelope struct {
	Variant        string                 `json:"variant"`
	RequestID      string                 `json:"request_id,omitempty"`
	CorrelationKey string                 `json:"correlation_key,omitempty"`
	Payload        map[string]interface{} `json:"payload,omitempty"`
}

// AgentHint is an explicit agent selection carried on a queue message. It
// outranks forge labels and system defaults.
type AgentHint struct {
	Kind     string `json:"kind,omitempty"`
	Provider string `json:"provider,omitempty"`
	Model    string `json:"model,omitempty"`
}

// IsZero reports whether the hint selects nothing.
func (h AgentHint) IsZero() bool {
	return h.Kind == "" && h.Provider == "" && h.Model == ""
}

// CreateFromChatPayload is the payload of request_create_from_chat.
type CreateFromChatPayload struct {
	Channel     string    `json:"channel"`
	ThreadKey   string    `json:"thread_key"`
	UserID      string    `json:"user_id"`
	UserName    string    `json:"user_name,omitempty"`
	Repository  string    `json:"repository,omitempty"`
	Branch      string    `json:"branch,omitempty"`
	RequestType string    `json:"request_type,omitempty"`
	Description string    `json:"description"`
	Title       string    `json:"title,omitempty"`
	Agent       AgentHint `json:"agent,omitempty"`
}

// CreateFromForgePayload is the payload of request_create_from_forge.
type CreateFromForgePayload struct {
	Repository  string   `json:"repository"`
	IssueID     string   `json:"issue_id,omitempty"`
	IssueNumber int      `json:"issue_number"`
	IssueURL    string   `json:"issue_url,omitempty"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Labels      []string `json:"labels,omitempty"`
	ActorID     string   `json:"actor_id,omitempty"`
	ActorName   string   `json:"actor_name,omitempty"`
}

// MentionPayload is the payload of chat_mention: a raw bot mention the
// intake surface acked immediately, routed by the dispatcher.
type MentionPayload struct {
	Channel   string `json:"channel"`
	ThreadKey string `json:"thread_key"`
	UserID    string `json:"user_id"`
	UserName  string `json:"user_name,omitempty"`
	Text      string `json:"text"`
}

// UtterancePayload is the payload of chat_clarification_answer and
// chat_suggest_changes: one user utterance correlated to a request.
type UtterancePayload struct {
	Content   string `json:"content"`
	Source    string `json:"source"` // chat or forge
	ActorID   string `json:"actor_id,omitempty"`
	ActorName string `json:"actor_name,omitempty"`
}

// Execution reasons carried on request_execute payloads.
const (
	ExecuteReasonInitial   = "initial"
	ExecuteReasonClarified = "clarified"
	ExecuteReasonFollowUp  = "follow_up"
	ExecuteReasonRetry     = "retry"
)

// ExecutePayload is the payload of request_execute.
type ExecutePayload struct {
	Agent  AgentHint `json:"agent,omitempty"`
	Reason string    `json:"reason,omitempty"` // initial, clarified, follow_up, retry
}

// RetryPayload is the payload of chat_retry_request.
type RetryPayload struct {
	ActorID   string `json:"actor_id,omitempty"`
	ActorName string `json:"actor_name,omitempty"`
}

// NewRequestID generates a URL-safe request id. The id round-trips through
// comment bodies and button payloads unchanged.
func NewRequestID() string {
	return "req-" + strings.ReplaceAll(uuid.New().String(), "-", "")[:20]
}

// ToPayloadMap converts a typed payload to the generic map stored on the
// queue row.
func ToPayloadMap(v interface{}) map[string]interface{} {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var out map[string]interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}

// FromPayloadMap decodes the generic payload map into a typed payload.
func FromPayloadMap(payload map[string]interface{}, out interface{}) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}
