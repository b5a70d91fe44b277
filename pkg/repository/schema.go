package repository

import (
	"context"
	"database/sql"

	"github.com/AccelByte/extend-achievement-reminder/pkg/errors"
)

// Schema creates the transition history table and its lookup index.
const Schema = `
	CREATE TABLE IF NOT EXISTS achievement_transitions (
		id VARCHAR(36) PRIMARY KEY,
		app_id VARCHAR(20) NOT NULL,
		name VARCHAR(200) NOT NULL,
		direction VARCHAR(10) NOT NULL,
		title TEXT NOT NULL DEFAULT '',
		earned_time BIGINT NOT NULL DEFAULT 0,
		observed_at TIMESTAMP NOT NULL DEFAULT NOW(),
		CONSTRAINT check_direction CHECK (direction IN ('gained', 'lost')),
		CONSTRAINT check_earned_time_non_negative CHECK (earned_time >= 0)
	);

	CREATE INDEX IF NOT EXISTS idx_achievement_transitions_app_observed
	ON achievement_transitions(app_id, observed_at DESC);
`

// EnsureSchema applies Schema. It is safe to call on every start.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, Schema); err != nil {
		return errors.ErrDatabaseError("ensure schema", err)
	}
	return nil
}
