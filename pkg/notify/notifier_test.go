package notify

import (
	"bytes"
	"context"
	stderrors "errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/AccelByte/extend-achievement-reminder/pkg/domain"
	"github.com/AccelByte/extend-achievement-reminder/pkg/errors"
	"github.com/AccelByte/extend-achievement-reminder/pkg/i18n"
)

func gained(id, title string) domain.TransitionView {
	return domain.TransitionView{
		Direction: domain.DirectionGained,
		View: domain.ResolvedAchievementView{
			ID:          id,
			IconPath:    "/icons/" + id + ".jpg",
			Earned:      true,
			EarnedTime:  "2025-10-17 14:23:45",
			Title:       title,
			Description: "Description of " + title,
			Visible:     true,
		},
		EarnedAt: 1760711025,
	}
}

func lost(id, title string) domain.TransitionView {
	tv := gained(id, title)
	tv.Direction = domain.DirectionLost
	tv.View.Earned = false
	tv.View.IconPath = "/icons/" + id + "_gray.jpg"
	return tv
}

func TestToastFor(t *testing.T) {
	msgs := i18n.EnglishNotifyMessages

	t.Run("gained", func(t *testing.T) {
		toast := ToastFor(gained("ach_first", "First Blood"), msgs)
		assert.Equal(t, Toast{
			Header: "Achievement Get!",
			Title:  "First Blood",
			Text:   "Description of First Blood",
			Note:   "Earned at 2025-10-17 14:23:45",
			Image:  "/icons/ach_first.jpg",
		}, toast)
	})

	t.Run("lost", func(t *testing.T) {
		toast := ToastFor(lost("ach_first", "First Blood"), msgs)
		assert.Equal(t, ">>>--- Lose achievement ---<<<", toast.Header)
		assert.Equal(t, "/icons/ach_first_gray.jpg", toast.Image)
	})

	t.Run("no time", func(t *testing.T) {
		tv := gained("ach_first", "First Blood")
		tv.View.EarnedTime = ""
		assert.Empty(t, ToastFor(tv, msgs).Note)
	})
}

func TestConsoleNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := NewConsoleNotifier(&buf, i18n.EnglishNotifyMessages)

	err := n.Notify(context.Background(), []domain.TransitionView{
		gained("ach_first", "First Blood"),
		lost("ach_second", "Second Wind"),
	})
	require.NoError(t, err)

	want := "Achievement Get!\n" +
		"First Blood\n" +
		"Description of First Blood\n" +
		"Earned at 2025-10-17 14:23:45\n" +
		"Icon: /icons/ach_first.jpg\n" +
		"\n" +
		">>>--- Lose achievement ---<<<\n" +
		"Second Wind\n" +
		"Description of Second Wind\n" +
		"Earned at 2025-10-17 14:23:45\n" +
		"Icon: /icons/ach_second_gray.jpg\n" +
		"\n"
	assert.Equal(t, want, buf.String())
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, stderrors.New("disk full")
}

func TestConsoleNotifier_WriteError(t *testing.T) {
	n := NewConsoleNotifier(failingWriter{}, i18n.EnglishNotifyMessages)
	err := n.Notify(context.Background(), []domain.TransitionView{gained("a", "A")})
	assert.Error(t, err)
}

func TestQueueNotifier(t *testing.T) {
	ctx := context.Background()
	q := NewQueueNotifier(0)

	_, ok := q.Next()
	assert.False(t, ok)

	require.NoError(t, q.Notify(ctx, []domain.TransitionView{gained("a", "A"), gained("b", "B")}))
	require.NoError(t, q.Notify(ctx, []domain.TransitionView{lost("c", "C")}))
	assert.Equal(t, 3, q.Len())

	tv, ok := q.Next()
	require.True(t, ok)
	assert.Equal(t, "a", tv.View.ID)

	rest := q.Drain()
	require.Len(t, rest, 2)
	assert.Equal(t, "b", rest[0].View.ID)
	assert.Equal(t, "c", rest[1].View.ID)
	assert.Equal(t, 0, q.Len())
}

func TestQueueNotifier_Limit(t *testing.T) {
	q := NewQueueNotifier(2)

	require.NoError(t, q.Notify(context.Background(), []domain.TransitionView{
		gained("a", "A"), gained("b", "B"), gained("c", "C"),
	}))

	items := q.Drain()
	require.Len(t, items, 2)
	assert.Equal(t, "b", items[0].View.ID)
	assert.Equal(t, "c", items[1].View.ID)
}

func TestLogNotifier(t *testing.T) {
	n := NewLogNotifier()
	assert.NoError(t, n.Notify(context.Background(), []domain.TransitionView{gained("a", "A")}))
}

func TestMulti(t *testing.T) {
	ctx := context.Background()
	views := []domain.TransitionView{gained("a", "A")}

	failing := NewMockNotifier()
	failing.On("Notify", ctx, views).Return(stderrors.New("toast unavailable"))
	working := NewMockNotifier()
	working.On("Notify", ctx, views).Return(nil)

	err := Multi{failing, working}.Notify(ctx, views)

	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeNotifyFailed))
	failing.AssertExpectations(t)
	working.AssertExpectations(t)
}

func TestDispatch(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("forwards batches until closed", func(t *testing.T) {
		q := NewQueueNotifier(0)
		in := make(chan []domain.TransitionView, 2)
		in <- []domain.TransitionView{gained("a", "A")}
		in <- []domain.TransitionView{lost("b", "B")}
		close(in)

		err := Dispatch(context.Background(), in, q, logger)
		require.NoError(t, err)
		assert.Equal(t, 2, q.Len())
	})

	t.Run("delivery failure does not stop the loop", func(t *testing.T) {
		m := NewMockNotifier()
		m.On("Notify", mock.Anything, mock.Anything).Return(stderrors.New("boom")).Once()
		m.On("Notify", mock.Anything, mock.Anything).Return(nil).Once()

		in := make(chan []domain.TransitionView, 2)
		in <- []domain.TransitionView{gained("a", "A")}
		in <- []domain.TransitionView{gained("b", "B")}
		close(in)

		require.NoError(t, Dispatch(context.Background(), in, m, logger))
		m.AssertNumberOfCalls(t, "Notify", 2)
	})

	t.Run("stops on cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		in := make(chan []domain.TransitionView)

		done := make(chan error, 1)
		go func() { done <- Dispatch(ctx, in, NewQueueNotifier(0), logger) }()

		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(time.Second):
			t.Fatal("Dispatch did not return after cancellation")
		}
	})
}
