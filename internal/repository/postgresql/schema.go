package postgresql

import (
	"context"
	"fmt"

	"github.com/ncl-services/ncl-backend-go/internal/pkg/database"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS time_records (
		seq         BIGSERIAL PRIMARY KEY,
		id          UUID NOT NULL UNIQUE,
		job_id      TEXT NOT NULL,
		job_name    TEXT NOT NULL,
		staff_id    TEXT NOT NULL DEFAULT '',
		staff_name  TEXT NOT NULL DEFAULT '',
		time_in     TIMESTAMPTZ NOT NULL,
		time_out    TIMESTAMPTZ NOT NULL,
		duration_ms BIGINT NOT NULL CHECK (duration_ms >= 0),
		record_type TEXT NOT NULL CHECK (record_type IN ('Self', 'Proxy')),
		record_date DATE NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`DROP INDEX IF EXISTS idx_time_records_time_out`,
}

// EnsureSchema creates the ledger tables when missing.
func EnsureSchema(ctx context.Context, db *database.DB) error {
	return WithTransaction(ctx, db, func(ctx context.Context) error {
		q := GetQuerier(ctx, db)
		for _, stmt := range schemaStatements {
			if _, err := q.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("failed to apply schema: %w", err)
			}
		}
		return nil
	})
}
