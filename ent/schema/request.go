package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Request holds the schema definition for the Request entity — one durable
// record per user ask, from intake through terminal outcome.
type Request struct {
	ent.Schema
}

// Fields of the Request.
func (Request) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("request_id").
			Unique().
			Immutable(),
		field.Enum("origin").
			Values("chat", "forge_issue", "web"),
		field.String("repository").
			Comment("Target repository as owner/name"),
		field.String("title"),
		field.Text("description"),
		field.Enum("request_type").
			Values("feature", "bug", "refactor", "docs", "question").
			Default("feature"),
		field.Enum("status").
			Values("pending", "issue_created", "processing", "awaiting_clarification",
				"pr_created", "completed", "error", "cancelled").
			Default("pending"),

		// Agent configuration resolved at intake (router may refine at dispatch).
		field.String("agent_kind"),
		field.String("provider").
			Optional().
			Nillable(),
		field.String("model").
			Optional().
			Nillable(),

		// Chat-surface correlation keys.
		field.String("chat_user_id").
			Optional().
			Nillable(),
		field.String("chat_channel").
			Optional().
			Nillable(),
		field.String("chat_thread_key").
			Optional().
			Nillable().
			Comment("Thread timestamp identifying the conversation thread"),

		// Forge-issue correlation keys.
		field.String("issue_id").
			Optional().
			Nillable(),
		field.Int("issue_number").
			Optional().
			Nillable(),
		field.String("issue_url").
			Optional().
			Nillable(),

		// Pull-request correlation. Branch name is write-once (enforced by
		// RequestService.SetPullRequest, not by the schema).
		field.String("pr_url").
			Optional().
			Nillable(),
		field.Int("pr_number").
			Optional().
			Nillable(),
		field.String("pr_branch_name").
			Optional().
			Nillable(),

		field.Int("retry_count").
			Default(0),
		field.Int("cost_cents").
			Default(0).
			Comment("Denormalized cache; authoritative figure is the Thread sum"),
		field.Int("duration_ms").
			Default(0).
			Comment("Denormalized cache; authoritative figure is the Thread sum"),

		field.String("latest_session_id").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable(),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now),
		field.Time("processed_at").
			Optional().
			Nillable().
			Comment("When the dispatcher last finished an execution turn"),
	}
}

// Edges of the Request.
func (Request) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("messages", Message.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("agent_sessions", AgentSession.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Request.
func (Request) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("status", "created_at"),
		index.Fields("chat_channel", "chat_thread_key"),

		// Forge-issue correlation lookups. The one-request-per-issue guarantee
		// is a partial unique index created in pkg/database/migrations.go
		// (Ent cannot express partial unique indexes).
		index.Fields("repository", "issue_number"),
	}
}
