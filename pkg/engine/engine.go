// Package engine turns state reloads into ordered, display-ready transition views.
package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/AccelByte/extend-achievement-reminder/pkg/catalog"
	"github.com/AccelByte/extend-achievement-reminder/pkg/domain"
	"github.com/AccelByte/extend-achievement-reminder/pkg/repository"
)

// StateStore is the part of state.Store the engine depends on.
type StateStore interface {
	ReloadAndDiff() (domain.Diff, error)
	Snapshot() domain.Snapshot
}

// Engine combines a catalog with a reloadable state store. It owns no state of its own
// beyond its collaborators; Cycle must be called from one goroutine at a time.
type Engine struct {
	catalog catalog.Catalog
	store   StateStore
	history repository.TransitionRepository // Optional
	appID   string
	now     func() time.Time
	logger  *slog.Logger
}

// New creates an Engine.
func New(cat catalog.Catalog, store StateStore, logger *slog.Logger) *Engine {
	return &Engine{
		catalog: cat,
		store:   store,
		now:     time.Now,
		logger:  logger,
	}
}

// WithHistory records every emitted transition to repo under appID.
// Recording failures are logged and never hold back the views.
func (e *Engine) WithHistory(repo repository.TransitionRepository, appID string) *Engine {
	e.history = repo
	e.appID = appID
	return e
}

// Cycle reloads the state and returns the resulting transition views: the gained batch
// in catalog order, then the lost batch in catalog order.
//
// A non-nil error means the reload failed and nothing is known about this cycle; the store
// keeps its previous snapshot. Transitions for names missing from the catalog are dropped.
func (e *Engine) Cycle(ctx context.Context) ([]domain.TransitionView, error) {
	diff, err := e.store.ReloadAndDiff()
	if err != nil {
		return nil, err
	}
	if diff.IsEmpty() {
		return []domain.TransitionView{}, nil
	}

	snapshot := e.store.Snapshot()
	views := make([]domain.TransitionView, 0, diff.Len())

	for _, batch := range []struct {
		names     []string
		direction domain.Direction
	}{
		{diff.Gained, domain.DirectionGained},
		{diff.Lost, domain.DirectionLost},
	} {
		known, unknown := e.catalog.InCatalogOrder(batch.names)
		for _, name := range unknown {
			e.logger.Debug("Ignoring transition for achievement not in catalog",
				"name", name,
				"direction", batch.direction,
			)
		}

		for _, name := range known {
			tv, err := e.catalog.TransitionView(domain.Transition{Name: name, Direction: batch.direction}, snapshot)
			if err != nil {
				return nil, err
			}
			if tv == nil {
				continue
			}
			views = append(views, *tv)
		}
	}

	e.logger.Info("Achievement state changed",
		"gained", len(diff.Gained),
		"lost", len(diff.Lost),
		"reported", len(views),
	)

	e.record(ctx, views)

	return views, nil
}

// Project returns one view per catalog entry merged with the current snapshot.
func (e *Engine) Project() ([]domain.ResolvedAchievementView, error) {
	return e.catalog.ProjectAll(e.store.Snapshot())
}

// Run performs a Cycle for every signal on changes and sends non-empty results to out.
// Reload failures are logged and skipped. Run returns when ctx is done or changes is closed.
// Views sent on out are independent values; the receiver may keep them.
func (e *Engine) Run(ctx context.Context, changes <-chan struct{}, out chan<- []domain.TransitionView) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-changes:
			if !ok {
				return nil
			}

			views, err := e.Cycle(ctx)
			if err != nil {
				e.logger.Warn("Reload skipped, keeping previous state", "error", err)
				continue
			}
			if len(views) == 0 {
				continue
			}

			select {
			case out <- views:
			case <-ctx.Done():
				return nil
			}
		}
	}
}

func (e *Engine) record(ctx context.Context, views []domain.TransitionView) {
	if e.history == nil || len(views) == 0 {
		return
	}

	observed := e.now().UTC()
	recs := make([]*domain.TransitionRecord, 0, len(views))
	for _, tv := range views {
		recs = append(recs, domain.NewTransitionRecord(e.appID, tv, observed))
	}

	if err := e.history.RecordBatch(ctx, recs); err != nil {
		e.logger.Warn("Failed to record transition history",
			"transitions", len(recs),
			"error", err,
		)
	}
}
