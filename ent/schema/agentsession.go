package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentSession holds the schema definition for the AgentSession entity — an
// opaque compressed agent-session blob that lets a stateless container resume
// a stateful agent. The engine never parses the payload.
type AgentSession struct {
	ent.Schema
}

// Fields of the AgentSession.
func (AgentSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("agent_session_id").
			Unique().
			Immutable(),
		field.String("request_id").
			Immutable(),
		field.String("session_id").
			Immutable().
			Comment("Session identifier assigned by the agent itself"),
		field.String("agent_kind").
			Immutable(),
		field.Bytes("blob").
			Comment("Compressed payload, typically 50KB-4MB; Postgres TOASTs large values out of line"),
		field.Int("uncompressed_size").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("expires_at"),
	}
}

// Edges of the AgentSession.
func (AgentSession) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("request", Request.Type).
			Ref("agent_sessions").
			Field("request_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the AgentSession.
func (AgentSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("request_id", "session_id").
			Unique(),
		index.Fields("request_id", "created_at"),
		index.Fields("expires_at"),
	}
}
