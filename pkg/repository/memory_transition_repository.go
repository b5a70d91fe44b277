package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/AccelByte/extend-achievement-reminder/pkg/domain"
	"github.com/AccelByte/extend-achievement-reminder/pkg/errors"
)

// MemoryTransitionRepository keeps history in process memory.
// Used when no database is configured; history is lost on exit.
type MemoryTransitionRepository struct {
	records []*domain.TransitionRecord
	ids     map[string]struct{}
	mu      sync.RWMutex
}

// NewMemoryTransitionRepository creates an empty in-memory history.
func NewMemoryTransitionRepository() *MemoryTransitionRepository {
	return &MemoryTransitionRepository{
		ids: make(map[string]struct{}),
	}
}

// Record appends a single transition.
func (r *MemoryTransitionRepository) Record(ctx context.Context, rec *domain.TransitionRecord) error {
	return r.RecordBatch(ctx, []*domain.TransitionRecord{rec})
}

// RecordBatch appends all records or none.
func (r *MemoryTransitionRepository) RecordBatch(ctx context.Context, recs []*domain.TransitionRecord) error {
	for _, rec := range recs {
		if !rec.Direction.IsValid() {
			return errors.ErrDatabaseError("record transition batch", errInvalidDirection(rec.Direction))
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, rec := range recs {
		if _, dup := r.ids[rec.ID]; dup {
			continue
		}
		cp := *rec
		r.ids[rec.ID] = struct{}{}
		r.records = append(r.records, &cp)
	}
	return nil
}

// ListRecent returns up to limit records for appID, newest first.
func (r *MemoryTransitionRepository) ListRecent(ctx context.Context, appID string, limit int) ([]*domain.TransitionRecord, error) {
	out := r.filter(func(rec *domain.TransitionRecord) bool { return rec.AppID == appID })
	if limit <= 0 {
		return []*domain.TransitionRecord{}, nil
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// ListByAchievement returns every record for appID whose name is in names, newest first.
func (r *MemoryTransitionRepository) ListByAchievement(ctx context.Context, appID string, names []string) ([]*domain.TransitionRecord, error) {
	want := make(map[string]struct{}, len(names))
	for _, n := range names {
		want[n] = struct{}{}
	}
	return r.filter(func(rec *domain.TransitionRecord) bool {
		_, ok := want[rec.Name]
		return ok && rec.AppID == appID
	}), nil
}

// filter returns copies of matching records, newest first.
func (r *MemoryTransitionRepository) filter(match func(*domain.TransitionRecord) bool) []*domain.TransitionRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []*domain.TransitionRecord{}
	for _, rec := range r.records {
		if match(rec) {
			cp := *rec
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].ObservedAt.Equal(out[j].ObservedAt) {
			return out[i].ObservedAt.After(out[j].ObservedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}
