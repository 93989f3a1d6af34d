package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ConfigEntry holds the schema definition for the ConfigEntry entity — one
// typed configuration row per kind. Secret fields inside the payload are
// stored only in encrypted form; the store handles ciphertext exclusively.
type ConfigEntry struct {
	ent.Schema
}

// Fields of the ConfigEntry.
func (ConfigEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("config_id").
			Unique().
			Immutable(),
		field.Enum("kind").
			Values("forge", "chat", "llm", "system_defaults", "auth"),
		field.JSON("payload", map[string]interface{}{}),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now),
	}
}

// Indexes of the ConfigEntry.
func (ConfigEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("kind").
			Unique(),
	}
}
