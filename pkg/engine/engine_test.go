package engine

import (
	"context"
	stderrors "errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/AccelByte/extend-achievement-reminder/pkg/catalog"
	"github.com/AccelByte/extend-achievement-reminder/pkg/config"
	"github.com/AccelByte/extend-achievement-reminder/pkg/domain"
	"github.com/AccelByte/extend-achievement-reminder/pkg/errors"
	"github.com/AccelByte/extend-achievement-reminder/pkg/icon"
	"github.com/AccelByte/extend-achievement-reminder/pkg/repository"
	"github.com/AccelByte/extend-achievement-reminder/pkg/state"
)

const statePath = "/saves/480/achievements.json"

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func definition(name string) *domain.AchievementDefinition {
	return &domain.AchievementDefinition{
		Name:        name,
		Hidden:      "0",
		DisplayName: map[string]string{"english": "Title " + name},
		Description: map[string]string{"english": "Description " + name},
		Icon:        name + ".jpg",
		IconGray:    name + "_gray.jpg",
	}
}

type fixture struct {
	fs     afero.Fs
	store  *state.Store
	engine *Engine
}

func (f *fixture) write(t *testing.T, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(f.fs, statePath, []byte(content), 0644))
}

// newFixture builds an engine over catalog entries d, b, a, c (in that file order)
// with every icon present under /icons.
func newFixture(t *testing.T, initial string) *fixture {
	t.Helper()

	fs := afero.NewMemMapFs()
	names := []string{"ach_d", "ach_b", "ach_a", "ach_c"}
	defs := make([]*domain.AchievementDefinition, 0, len(names))
	for _, n := range names {
		defs = append(defs, definition(n))
		require.NoError(t, afero.WriteFile(fs, "/icons/"+n+".jpg", []byte("img"), 0644))
		require.NoError(t, afero.WriteFile(fs, "/icons/"+n+"_gray.jpg", []byte("img"), 0644))
	}

	cat := catalog.NewInMemoryCatalog(&config.Catalog{Achievements: defs, ImageDir: "/icons"},
		icon.NewResolver(fs), testLogger()).WithLocation(time.UTC)

	f := &fixture{fs: fs}
	f.write(t, initial)

	store, err := state.Load(state.NewFileSource(fs, statePath), testLogger())
	require.NoError(t, err)
	f.store = store.WithLocation(time.UTC)
	f.engine = New(cat, f.store, testLogger())
	return f
}

func ids(views []domain.TransitionView) []string {
	out := make([]string, 0, len(views))
	for _, v := range views {
		out = append(out, string(v.Direction)+":"+v.View.ID)
	}
	return out
}

func TestEngine_Cycle_OrdersGainedThenLostInCatalogOrder(t *testing.T) {
	f := newFixture(t, `{
		"ach_a": {"earned": false, "earned_time": 0},
		"ach_b": {"earned": true, "earned_time": 100},
		"ach_c": {"earned": false, "earned_time": 0},
		"ach_d": {"earned": true, "earned_time": 200}
	}`)

	f.write(t, `{
		"ach_a": {"earned": true, "earned_time": 300},
		"ach_b": {"earned": false, "earned_time": 100},
		"ach_c": {"earned": true, "earned_time": 400},
		"ach_d": {"earned": false, "earned_time": 200}
	}`)

	views, err := f.engine.Cycle(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"gained:ach_a", "gained:ach_c",
		"lost:ach_d", "lost:ach_b",
	}, ids(views))
}

func TestEngine_Cycle_ViewContents(t *testing.T) {
	f := newFixture(t, `{"ach_a": {"earned": false, "earned_time": 0}, "ach_b": {"earned": true, "earned_time": 1000}}`)
	f.write(t, `{"ach_a": {"earned": true, "earned_time": 1760711025}, "ach_b": {"earned": false, "earned_time": 1000}}`)

	views, err := f.engine.Cycle(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 2)

	g := views[0]
	assert.Equal(t, domain.DirectionGained, g.Direction)
	assert.Equal(t, "/icons/ach_a.jpg", g.View.IconPath)
	assert.Equal(t, "Title ach_a", g.View.Title)
	assert.Equal(t, "2025-10-17 14:23:45", g.View.EarnedTime)
	assert.True(t, g.View.Earned)
	assert.Equal(t, uint64(1760711025), g.EarnedAt)

	l := views[1]
	assert.Equal(t, domain.DirectionLost, l.Direction)
	assert.Equal(t, "/icons/ach_b_gray.jpg", l.View.IconPath)
	assert.False(t, l.View.Earned)
	assert.Equal(t, "1970-01-01 00:16:40", l.View.EarnedTime)
}

func TestEngine_Cycle_DropsNamesNotInCatalog(t *testing.T) {
	f := newFixture(t, `{}`)
	f.write(t, `{"ach_a": {"earned": true, "earned_time": 1}, "ach_unknown": {"earned": true, "earned_time": 1}}`)

	views, err := f.engine.Cycle(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"gained:ach_a"}, ids(views))
}

func TestEngine_Cycle_ReloadFailure(t *testing.T) {
	f := newFixture(t, `{"ach_a": {"earned": true, "earned_time": 1}}`)
	f.write(t, `{"ach_a": `)

	views, err := f.engine.Cycle(context.Background())
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeSourceMalformed))
	assert.Nil(t, views)

	f.write(t, `{"ach_a": {"earned": false, "earned_time": 1}}`)

	views, err = f.engine.Cycle(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"lost:ach_a"}, ids(views))
}

func TestEngine_Cycle_NoChange(t *testing.T) {
	f := newFixture(t, `{"ach_a": {"earned": true, "earned_time": 1}}`)

	views, err := f.engine.Cycle(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, views)
	assert.Empty(t, views)
}

func TestEngine_Cycle_RecordsHistory(t *testing.T) {
	f := newFixture(t, `{}`)
	observed := time.Date(2025, 10, 17, 12, 0, 0, 0, time.UTC)

	repo := repository.NewMockTransitionRepository()
	repo.On("RecordBatch", mock.Anything, mock.MatchedBy(func(recs []*domain.TransitionRecord) bool {
		return len(recs) == 2 &&
			recs[0].Name == "ach_b" && recs[1].Name == "ach_a" &&
			recs[0].AppID == "480" && recs[0].Direction == domain.DirectionGained &&
			recs[0].ObservedAt.Equal(observed)
	})).Return(nil).Once()

	f.engine.WithHistory(repo, "480")
	f.engine.now = func() time.Time { return observed }

	f.write(t, `{"ach_a": {"earned": true, "earned_time": 1}, "ach_b": {"earned": true, "earned_time": 2}}`)

	views, err := f.engine.Cycle(context.Background())
	require.NoError(t, err)
	assert.Len(t, views, 2)
	repo.AssertExpectations(t)
}

func TestEngine_Cycle_HistoryFailureDoesNotBlockViews(t *testing.T) {
	f := newFixture(t, `{}`)

	repo := repository.NewMockTransitionRepository()
	repo.On("RecordBatch", mock.Anything, mock.Anything).Return(stderrors.New("connection refused"))
	f.engine.WithHistory(repo, "480")

	f.write(t, `{"ach_a": {"earned": true, "earned_time": 1}}`)

	views, err := f.engine.Cycle(context.Background())
	require.NoError(t, err)
	assert.Len(t, views, 1)
	repo.AssertNumberOfCalls(t, "RecordBatch", 1)
}

func TestEngine_Cycle_NoHistoryCallWithoutTransitions(t *testing.T) {
	f := newFixture(t, `{}`)
	repo := repository.NewMockTransitionRepository()
	f.engine.WithHistory(repo, "480")

	_, err := f.engine.Cycle(context.Background())
	require.NoError(t, err)
	repo.AssertNotCalled(t, "RecordBatch", mock.Anything, mock.Anything)
}

func TestEngine_Project(t *testing.T) {
	f := newFixture(t, `{"ach_b": {"earned": true, "earned_time": 0}}`)

	views, err := f.engine.Project()
	require.NoError(t, err)
	require.Len(t, views, 4)

	assert.Equal(t, "ach_d", views[0].ID)
	assert.Equal(t, "ach_b", views[1].ID)
	assert.True(t, views[1].Earned)
	assert.Equal(t, "1970-01-01 00:00:00", views[1].EarnedTime)
	assert.False(t, views[2].Earned)
}

func TestEngine_Run(t *testing.T) {
	f := newFixture(t, `{}`)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan struct{})
	out := make(chan []domain.TransitionView, 4)
	done := make(chan error, 1)
	go func() { done <- f.engine.Run(ctx, changes, out) }()

	// Malformed write: logged and skipped.
	f.write(t, `{"ach_a"`)
	changes <- struct{}{}

	// Nothing changed: no batch sent.
	f.write(t, `{}`)
	changes <- struct{}{}

	f.write(t, `{"ach_a": {"earned": true, "earned_time": 1}}`)
	changes <- struct{}{}

	select {
	case views := <-out:
		assert.Equal(t, []string{"gained:ach_a"}, ids(views))
	case <-time.After(2 * time.Second):
		t.Fatal("expected a batch of views")
	}

	close(changes)
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after changes was closed")
	}
	assert.Len(t, out, 0)
}

func TestEngine_Run_StopsOnCancel(t *testing.T) {
	f := newFixture(t, `{}`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := f.engine.Run(ctx, make(chan struct{}), make(chan []domain.TransitionView))
	assert.NoError(t, err)
}
