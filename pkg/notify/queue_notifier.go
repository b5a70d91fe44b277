package notify

import (
	"context"
	"sync"

	"github.com/AccelByte/extend-achievement-reminder/pkg/domain"
)

// QueueNotifier buffers transitions for a UI thread that shows one popup at a time.
// The engine side calls Notify; the UI side polls Next.
type QueueNotifier struct {
	items []domain.TransitionView
	limit int
	mu    sync.Mutex
}

// NewQueueNotifier creates a queue holding at most limit entries; older entries are
// dropped when it is full. A limit <= 0 means unbounded.
func NewQueueNotifier(limit int) *QueueNotifier {
	return &QueueNotifier{limit: limit}
}

// Notify appends views in order.
func (q *QueueNotifier) Notify(ctx context.Context, views []domain.TransitionView) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.items = append(q.items, views...)
	if q.limit > 0 && len(q.items) > q.limit {
		q.items = append([]domain.TransitionView(nil), q.items[len(q.items)-q.limit:]...)
	}
	return nil
}

// Next removes and returns the oldest entry.
func (q *QueueNotifier) Next() (domain.TransitionView, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) == 0 {
		return domain.TransitionView{}, false
	}
	tv := q.items[0]
	q.items = q.items[1:]
	return tv, true
}

// Len returns the number of queued entries.
func (q *QueueNotifier) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.items)
}

// Drain removes and returns every queued entry, oldest first.
func (q *QueueNotifier) Drain() []domain.TransitionView {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := q.items
	q.items = nil
	return out
}
