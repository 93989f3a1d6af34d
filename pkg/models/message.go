package models

import (
	"github.com/patchwork-dev/patchwork/ent/message"
)

// Metadata keys used in Message.Metadata. Cost is integer cents everywhere;
// formatting is a notification-layer concern.
const (
	MetaToolName    = "tool_name"
	MetaToolInput   = "tool_input"
	MetaToolOutput  = "tool_output"
	MetaFilePath    = "file_path"
	MetaFileAction  = "file_action"
	MetaFileDiff    = "file_diff"
	MetaCommand     = "command"
	MetaExitCode    = "exit_code"
	MetaStdout      = "stdout"
	MetaStderr      = "stderr"
	MetaTurnID      = "turn_id"
	MetaCostCents   = "cost_cents"
	MetaDurationMs  = "duration_ms"
	MetaErrorCode   = "error_code"
	MetaErrorMsg    = "error_message"
	MetaErrorStack  = "error_stack"
	MetaFromStatus  = "from_status"
	MetaToStatus    = "to_status"
	MetaPRURL       = "pr_url"
	MetaPRNumber    = "pr_number"
	MetaBranchName  = "branch_name"
	MetaFilesChange = "files_modified"
)

// Error codes written to MetaErrorCode on terminal error transitions.
// Closed set; the dispatcher is the only writer.
const (
	ErrCodeTransientIO     = "transient_io"
	ErrCodeIntegrationAuth = "integration_auth"
	ErrCodeValidation      = "validation"
	ErrCodeAgentFailure    = "agent_failure"
	ErrCodeCircuitOpen     = "circuit_open"
	ErrCodeTimeout         = "timeout"
)

// AppendMessageRequest contains fields for appending a conversation-log message.
type AppendMessageRequest struct {
	RequestID string                 `json:"request_id"`
	Type      message.Type           `json:"type"`
	Source    message.Source         `json:"source"`
	Content   string                 `json:"content"`
	ActorID   string                 `json:"actor_id,omitempty"`
	ActorName string                 `json:"actor_name,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// CostAndDuration is the aggregate over a request's thread — the authoritative
// cost figure exposed to users.
type CostAndDuration struct {
	CostCents  int `json:"cost_cents"`
	DurationMs int `json:"duration_ms"`
}
