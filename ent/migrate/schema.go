// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentSessionsColumns holds the columns for the "agent_sessions" table.
	AgentSessionsColumns = []*schema.Column{
		{Name: "agent_session_id", Type: field.TypeString, Unique: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "agent_kind", Type: field.TypeString},
		{Name: "blob", Type: field.TypeBytes},
		{Name: "uncompressed_size", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "request_id", Type: field.TypeString},
	}
	// AgentSessionsTable holds the schema information for the "agent_sessions" table.
	AgentSessionsTable = &schema.Table{
		Name:       "agent_sessions",
		Columns:    AgentSessionsColumns,
		PrimaryKey: []*schema.Column{AgentSessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agent_sessions_requests_agent_sessions",
				Columns:    []*schema.Column{AgentSessionsColumns[7]},
				RefColumns: []*schema.Column{RequestsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agentsession_request_id_session_id",
				Unique:  true,
				Columns: []*schema.Column{AgentSessionsColumns[7], AgentSessionsColumns[1]},
			},
			{
				Name:    "agentsession_request_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{AgentSessionsColumns[7], AgentSessionsColumns[5]},
			},
			{
				Name:    "agentsession_expires_at",
				Unique:  false,
				Columns: []*schema.Column{AgentSessionsColumns[6]},
			},
		},
	}
	// ConfigEntriesColumns holds the columns for the "config_entries" table.
	ConfigEntriesColumns = []*schema.Column{
		{Name: "config_id", Type: field.TypeString, Unique: true},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"forge", "chat", "llm", "system_defaults", "auth"}},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ConfigEntriesTable holds the schema information for the "config_entries" table.
	ConfigEntriesTable = &schema.Table{
		Name:       "config_entries",
		Columns:    ConfigEntriesColumns,
		PrimaryKey: []*schema.Column{ConfigEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "configentry_kind",
				Unique:  true,
				Columns: []*schema.Column{ConfigEntriesColumns[1]},
			},
		},
	}
	// MessagesColumns holds the columns for the "messages" table.
	MessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"initial_request", "clarification_ask", "clarification_answer", "follow_up_request", "processing_started", "processing_update", "pr_created", "pr_updated", "error", "retry", "cancelled", "agent_thinking", "agent_tool_call", "agent_tool_result", "agent_file_change", "agent_terminal", "agent_summary"}},
		{Name: "source", Type: field.TypeEnum, Enums: []string{"chat", "forge", "web", "system"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "actor_id", Type: field.TypeString, Nullable: true},
		{Name: "actor_name", Type: field.TypeString, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "request_id", Type: field.TypeString},
	}
	// MessagesTable holds the schema information for the "messages" table.
	MessagesTable = &schema.Table{
		Name:       "messages",
		Columns:    MessagesColumns,
		PrimaryKey: []*schema.Column{MessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "messages_requests_messages",
				Columns:    []*schema.Column{MessagesColumns[8]},
				RefColumns: []*schema.Column{RequestsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "message_request_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[8], MessagesColumns[7]},
			},
			{
				Name:    "message_request_id_type",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[8], MessagesColumns[1]},
			},
		},
	}
	// QueueMessagesColumns holds the columns for the "queue_messages" table.
	QueueMessagesColumns = []*schema.Column{
		{Name: "queue_message_id", Type: field.TypeString, Unique: true},
		{Name: "variant", Type: field.TypeEnum, Enums: []string{"request_create_from_forge", "request_create_from_chat", "chat_mention", "chat_clarification_answer", "chat_suggest_changes", "chat_retry_request", "request_execute", "session_sweep"}},
		{Name: "request_id", Type: field.TypeString, Nullable: true},
		{Name: "correlation_key", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "seq", Type: field.TypeInt64},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_flight", "completed", "dead"}, Default: "pending"},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "available_at", Type: field.TypeTime},
		{Name: "locked_by", Type: field.TypeString, Nullable: true},
		{Name: "locked_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
		{Name: "enqueued_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// QueueMessagesTable holds the schema information for the "queue_messages" table.
	QueueMessagesTable = &schema.Table{
		Name:       "queue_messages",
		Columns:    QueueMessagesColumns,
		PrimaryKey: []*schema.Column{QueueMessagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "queuemessage_status_available_at",
				Unique:  false,
				Columns: []*schema.Column{QueueMessagesColumns[6], QueueMessagesColumns[8]},
			},
			{
				Name:    "queuemessage_request_id",
				Unique:  false,
				Columns: []*schema.Column{QueueMessagesColumns[2]},
			},
			{
				Name:    "queuemessage_correlation_key",
				Unique:  false,
				Columns: []*schema.Column{QueueMessagesColumns[3]},
			},
			{
				Name:    "queuemessage_status_last_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{QueueMessagesColumns[6], QueueMessagesColumns[11]},
			},
		},
	}
	// RequestsColumns holds the columns for the "requests" table.
	RequestsColumns = []*schema.Column{
		{Name: "request_id", Type: field.TypeString, Unique: true},
		{Name: "origin", Type: field.TypeEnum, Enums: []string{"chat", "forge_issue", "web"}},
		{Name: "repository", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "request_type", Type: field.TypeEnum, Enums: []string{"feature", "bug", "refactor", "docs", "question"}, Default: "feature"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "issue_created", "processing", "awaiting_clarification", "pr_created", "completed", "error", "cancelled"}, Default: "pending"},
		{Name: "agent_kind", Type: field.TypeString},
		{Name: "provider", Type: field.TypeString, Nullable: true},
		{Name: "model", Type: field.TypeString, Nullable: true},
		{Name: "chat_user_id", Type: field.TypeString, Nullable: true},
		{Name: "chat_channel", Type: field.TypeString, Nullable: true},
		{Name: "chat_thread_key", Type: field.TypeString, Nullable: true},
		{Name: "issue_id", Type: field.TypeString, Nullable: true},
		{Name: "issue_number", Type: field.TypeInt, Nullable: true},
		{Name: "issue_url", Type: field.TypeString, Nullable: true},
		{Name: "pr_url", Type: field.TypeString, Nullable: true},
		{Name: "pr_number", Type: field.TypeInt, Nullable: true},
		{Name: "pr_branch_name", Type: field.TypeString, Nullable: true},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "cost_cents", Type: field.TypeInt, Default: 0},
		{Name: "duration_ms", Type: field.TypeInt, Default: 0},
		{Name: "latest_session_id", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "processed_at", Type: field.TypeTime, Nullable: true},
	}
	// RequestsTable holds the schema information for the "requests" table.
	RequestsTable = &schema.Table{
		Name:       "requests",
		Columns:    RequestsColumns,
		PrimaryKey: []*schema.Column{RequestsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "request_status",
				Unique:  false,
				Columns: []*schema.Column{RequestsColumns[6]},
			},
			{
				Name:    "request_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{RequestsColumns[6], RequestsColumns[24]},
			},
			{
				Name:    "request_chat_channel_chat_thread_key",
				Unique:  false,
				Columns: []*schema.Column{RequestsColumns[11], RequestsColumns[12]},
			},
			{
				Name:    "request_repository_issue_number",
				Unique:  false,
				Columns: []*schema.Column{RequestsColumns[2], RequestsColumns[14]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentSessionsTable,
		ConfigEntriesTable,
		MessagesTable,
		QueueMessagesTable,
		RequestsTable,
	}
)

func init() {
	AgentSessionsTable.ForeignKeys[0].RefTable = RequestsTable
	MessagesTable.ForeignKeys[0].RefTable = RequestsTable
}
