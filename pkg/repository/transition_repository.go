package repository

import (
	"context"
	"fmt"

	"github.com/AccelByte/extend-achievement-reminder/pkg/domain"
)

// TransitionRepository stores the history of observed achievement transitions.
// History is append-only: records are never updated or deleted by the reminder.
type TransitionRepository interface {
	// Record appends a single transition. Recording the same ID twice is a no-op.
	Record(ctx context.Context, rec *domain.TransitionRecord) error

	// RecordBatch appends all transitions of one reload cycle atomically.
	// An empty batch is a no-op.
	RecordBatch(ctx context.Context, recs []*domain.TransitionRecord) error

	// ListRecent returns up to limit records for appID, newest first.
	ListRecent(ctx context.Context, appID string, limit int) ([]*domain.TransitionRecord, error)

	// ListByAchievement returns every record for appID whose name is in names, newest first.
	// Returns an empty slice when names is empty.
	ListByAchievement(ctx context.Context, appID string, names []string) ([]*domain.TransitionRecord, error)
}

func errInvalidDirection(d domain.Direction) error {
	return fmt.Errorf("invalid direction %q", d)
}
