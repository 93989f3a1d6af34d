// Package events broadcasts request-lifecycle events over PostgreSQL
// NOTIFY for cross-pod delivery to the dashboard's websocket layer.
// Events are transient: a reconnecting client refetches state over the
// REST API, so nothing here is persisted.
package events

// Event types.
const (
	EventTypeRequestStatus   = "request.status"
	EventTypeMessageAppended = "message.appended"
	EventTypeAgentProgress   = "agent.progress"
)

// GlobalRequestsChannel carries status events for every request. The
// request list page subscribes to this.
const GlobalRequestsChannel = "requests"

// RequestChannel returns the channel for one request's events.
// Format: "request:{request_id}"
func RequestChannel(requestID string) string {
	return "request:" + requestID
}

// RequestStatusPayload announces a status transition.
type RequestStatusPayload struct {
	Type      string `json:"type"`
	RequestID string `json:"request_id"`
	From      string `json:"from"`
	To        string `json:"to"`
}

// MessageAppendedPayload announces a new conversation-log entry.
type MessageAppendedPayload struct {
	Type        string `json:"type"`
	RequestID   string `json:"request_id"`
	MessageID   string `json:"message_id"`
	MessageType string `json:"message_type"`
	Content     string `json:"content,omitempty"`
}

// AgentProgressPayload announces one agent progress event mid-execution.
type AgentProgressPayload struct {
	Type      string `json:"type"`
	RequestID string `json:"request_id"`
	Kind      string `json:"kind"`
	TurnID    string `json:"turn_id,omitempty"`
	Content   string `json:"content,omitempty"`
	ToolName  string `json:"tool_name,omitempty"`
	FilePath  string `json:"file_path,omitempty"`
}
