package database

import (
	"database/sql"
	"fmt"
)

// The only persisted entity is a per-conversion audit row; resolved records
// themselves are request-scoped and never stored.
const schema = `
CREATE TABLE IF NOT EXISTS render_history (
	id          TEXT PRIMARY KEY,
	title       TEXT NOT NULL,
	format      TEXT NOT NULL,
	status      TEXT NOT NULL,
	bytes       INTEGER NOT NULL DEFAULT 0,
	duration_ms INTEGER NOT NULL DEFAULT 0,
	created_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_render_history_created_at
	ON render_history (created_at DESC);
`

func Migrate(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
