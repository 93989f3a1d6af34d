package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QueueMessage holds the schema definition for the QueueMessage entity — the
// durable work-queue envelope. Workers claim pending rows with
// FOR UPDATE SKIP LOCKED; delivery is at-least-once.
type QueueMessage struct {
	ent.Schema
}

// Fields of the QueueMessage.
func (QueueMessage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("queue_message_id").
			Unique().
			Immutable(),
		field.Enum("variant").
			Values(
				"request_create_from_forge", "request_create_from_chat",
				"chat_mention", "chat_clarification_answer", "chat_suggest_changes",
				"chat_retry_request", "request_execute", "session_sweep",
			),
		field.String("request_id").
			Optional().
			Nillable().
			Comment("Set once the request row exists"),
		field.String("correlation_key").
			Comment("Surface correlation for request creation, e.g. forge:owner/repo#42 or chat:C1:T1"),
		field.JSON("payload", map[string]interface{}{}).
			Optional(),
		field.Int64("seq").
			Immutable().
			Comment("Monotonically increasing envelope sequence (per enqueueing pod)"),
		field.Enum("status").
			Values("pending", "in_flight", "completed", "dead").
			Default("pending"),
		field.Int("attempts").
			Default(0),
		field.Time("available_at").
			Default(time.Now).
			Comment("Not claimable before this time (retry backoff)"),
		field.String("locked_by").
			Optional().
			Nillable().
			Comment("Pod that claimed the message"),
		field.Time("locked_at").
			Optional().
			Nillable(),
		field.Time("last_heartbeat_at").
			Optional().
			Nillable().
			Comment("For orphan requeue"),
		field.String("last_error").
			Optional().
			Nillable(),
		field.Time("enqueued_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the QueueMessage.
func (QueueMessage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "available_at"),
		index.Fields("request_id"),
		index.Fields("correlation_key"),
		index.Fields("status", "last_heartbeat_at"),
	}
}
