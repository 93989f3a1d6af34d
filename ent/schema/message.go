package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Message holds the schema definition for the Message entity — the append-only
// conversation-thread log, the single source of truth for user-visible history,
// cost, and error context.
type Message struct {
	ent.Schema
}

// Fields of the Message.
func (Message) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("message_id").
			Unique().
			Immutable(),
		field.String("request_id").
			Immutable(),
		field.Enum("type").
			Values(
				// user-surface
				"initial_request", "clarification_ask", "clarification_answer", "follow_up_request",
				// lifecycle
				"processing_started", "processing_update", "pr_created", "pr_updated",
				"error", "retry", "cancelled",
				// agent activity
				"agent_thinking", "agent_tool_call", "agent_tool_result",
				"agent_file_change", "agent_terminal", "agent_summary",
			),
		field.Enum("source").
			Values("chat", "forge", "web", "system"),
		field.Text("content"),
		field.String("actor_id").
			Optional().
			Nillable(),
		field.String("actor_name").
			Optional().
			Nillable(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Comment("Per-type extensions: tool name/input/output, file path/diff, cost_cents, duration_ms, from/to status, error code/message/stack"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Message.
func (Message) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("request", Request.Type).
			Ref("messages").
			Field("request_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Message.
func (Message) Indexes() []ent.Index {
	return []ent.Index{
		// Thread order
		index.Fields("request_id", "created_at"),
		index.Fields("request_id", "type"),
	}
}
