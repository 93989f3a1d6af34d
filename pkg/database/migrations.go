package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateAuxiliaryIndexes creates PostgreSQL indexes that Ent cannot express
// in schema definitions. Idempotent; also invoked by the test harness after
// Schema.Create.
func CreateAuxiliaryIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// Partial unique index: one request per forge issue.
	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_requests_forge_issue
		ON requests (repository, issue_number)
		WHERE origin = 'forge_issue'`)
	if err != nil {
		return fmt.Errorf("failed to create forge-issue unique index: %w", err)
	}

	// GIN index for metadata lookups on the conversation log
	// (e.g. dashboard filters on tool name or error code).
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_messages_metadata_gin
		ON messages USING gin(metadata jsonb_path_ops)`)
	if err != nil {
		return fmt.Errorf("failed to create message metadata GIN index: %w", err)
	}

	return nil
}
