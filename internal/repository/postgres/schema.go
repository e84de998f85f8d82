package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id              BIGSERIAL PRIMARY KEY,
	email           TEXT NOT NULL UNIQUE,
	hashed_password TEXT NOT NULL,
	session_id      TEXT,
	reset_token     TEXT,
	created_at      TIMESTAMPTZ NOT NULL,
	updated_at      TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_users_session_id ON users (session_id);
CREATE INDEX IF NOT EXISTS idx_users_reset_token ON users (reset_token);
`

// EnsureSchema creates the users table if it does not exist yet.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}
	return nil
}
