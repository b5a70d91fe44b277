package repository

import (
	"context"
	"database/sql"

	"github.com/lib/pq" // PostgreSQL driver and array support

	"github.com/AccelByte/extend-achievement-reminder/pkg/domain"
	"github.com/AccelByte/extend-achievement-reminder/pkg/errors"
)

// PostgresTransitionRepository implements TransitionRepository using PostgreSQL.
type PostgresTransitionRepository struct {
	db *sql.DB
}

// NewPostgresTransitionRepository creates a new PostgreSQL-backed transition history.
func NewPostgresTransitionRepository(db *sql.DB) *PostgresTransitionRepository {
	return &PostgresTransitionRepository{
		db: db,
	}
}

// Record appends a single transition.
func (r *PostgresTransitionRepository) Record(ctx context.Context, rec *domain.TransitionRecord) error {
	if !rec.Direction.IsValid() {
		return errors.ErrDatabaseError("record transition", errInvalidDirection(rec.Direction))
	}

	query := `
		INSERT INTO achievement_transitions (
			id, app_id, name, direction, title, earned_time, observed_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		)
		ON CONFLICT (id) DO NOTHING
	`

	_, err := r.db.ExecContext(ctx, query,
		rec.ID,
		rec.AppID,
		rec.Name,
		string(rec.Direction),
		rec.Title,
		int64(rec.EarnedTime),
		rec.ObservedAt,
	)
	if err != nil {
		return errors.ErrDatabaseError("record transition", err)
	}

	return nil
}

// RecordBatch appends the records in one transaction using the COPY protocol.
//
// Implementation:
// 1. Creates a temporary table dropped on commit
// 2. COPY FROM STDIN into the temp table
// 3. Merges into achievement_transitions, skipping IDs already present
func (r *PostgresTransitionRepository) RecordBatch(ctx context.Context, recs []*domain.TransitionRecord) error {
	if len(recs) == 0 {
		return nil
	}
	for _, rec := range recs {
		if !rec.Direction.IsValid() {
			return errors.ErrDatabaseError("record transition batch", errInvalidDirection(rec.Direction))
		}
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.ErrDatabaseError("begin transaction for COPY", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	_, err = tx.ExecContext(ctx, `
		CREATE TEMP TABLE IF NOT EXISTS temp_achievement_transitions (
			id VARCHAR(36) NOT NULL,
			app_id VARCHAR(20) NOT NULL,
			name VARCHAR(200) NOT NULL,
			direction VARCHAR(10) NOT NULL,
			title TEXT NOT NULL,
			earned_time BIGINT NOT NULL,
			observed_at TIMESTAMP NOT NULL
		) ON COMMIT DROP
	`)
	if err != nil {
		return errors.ErrDatabaseError("create temp table for COPY", err)
	}

	stmt, err := tx.PrepareContext(ctx, pq.CopyIn(
		"temp_achievement_transitions",
		"id", "app_id", "name", "direction", "title", "earned_time", "observed_at",
	))
	if err != nil {
		return errors.ErrDatabaseError("prepare COPY statement", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, rec := range recs {
		_, err = stmt.ExecContext(ctx,
			rec.ID,
			rec.AppID,
			rec.Name,
			string(rec.Direction),
			rec.Title,
			int64(rec.EarnedTime),
			rec.ObservedAt,
		)
		if err != nil {
			return errors.ErrDatabaseError("execute COPY row", err)
		}
	}

	_, err = stmt.ExecContext(ctx)
	if err != nil {
		return errors.ErrDatabaseError("flush COPY to temp table", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO achievement_transitions (
			id, app_id, name, direction, title, earned_time, observed_at
		)
		SELECT id, app_id, name, direction, title, earned_time, observed_at
		FROM temp_achievement_transitions
		ON CONFLICT (id) DO NOTHING
	`)
	if err != nil {
		return errors.ErrDatabaseError("merge temp table into achievement_transitions", err)
	}

	err = tx.Commit()
	if err != nil {
		return errors.ErrDatabaseError("commit COPY transaction", err)
	}

	return nil
}

// ListRecent returns up to limit records for appID, newest first.
func (r *PostgresTransitionRepository) ListRecent(ctx context.Context, appID string, limit int) ([]*domain.TransitionRecord, error) {
	if limit <= 0 {
		return []*domain.TransitionRecord{}, nil
	}

	query := `
		SELECT id, app_id, name, direction, title, earned_time, observed_at
		FROM achievement_transitions
		WHERE app_id = $1
		ORDER BY observed_at DESC, id
		LIMIT $2
	`

	rows, err := r.db.QueryContext(ctx, query, appID, limit)
	if err != nil {
		return nil, errors.ErrDatabaseError("list recent transitions", err)
	}
	defer func() { _ = rows.Close() }()

	return scanTransitionRows(rows)
}

// ListByAchievement returns every record for appID whose name is in names, newest first.
func (r *PostgresTransitionRepository) ListByAchievement(ctx context.Context, appID string, names []string) ([]*domain.TransitionRecord, error) {
	if len(names) == 0 {
		return []*domain.TransitionRecord{}, nil
	}

	query := `
		SELECT id, app_id, name, direction, title, earned_time, observed_at
		FROM achievement_transitions
		WHERE app_id = $1 AND name = ANY($2)
		ORDER BY observed_at DESC, id
	`

	rows, err := r.db.QueryContext(ctx, query, appID, pq.Array(names))
	if err != nil {
		return nil, errors.ErrDatabaseError("list transitions by achievement", err)
	}
	defer func() { _ = rows.Close() }()

	return scanTransitionRows(rows)
}

func scanTransitionRows(rows *sql.Rows) ([]*domain.TransitionRecord, error) {
	records := []*domain.TransitionRecord{}

	for rows.Next() {
		var (
			rec        domain.TransitionRecord
			direction  string
			earnedTime int64
		)
		err := rows.Scan(
			&rec.ID,
			&rec.AppID,
			&rec.Name,
			&direction,
			&rec.Title,
			&earnedTime,
			&rec.ObservedAt,
		)
		if err != nil {
			return nil, errors.ErrDatabaseError("scan transition row", err)
		}
		rec.Direction = domain.Direction(direction)
		rec.EarnedTime = uint64(earnedTime)
		records = append(records, &rec)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.ErrDatabaseError("iterate transition rows", err)
	}

	return records, nil
}
