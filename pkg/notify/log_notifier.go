package notify

import (
	"context"
	"log"

	"github.com/AccelByte/extend-achievement-reminder/pkg/domain"
)

// LogNotifier writes one log line per transition.
// Useful when running headless; it never fails.
type LogNotifier struct{}

// NewLogNotifier creates a new LogNotifier.
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

// Notify logs each transition and returns success.
func (l *LogNotifier) Notify(ctx context.Context, views []domain.TransitionView) error {
	for _, tv := range views {
		log.Printf("[Reminder] %s: id=%s, title=%q, time=%s, icon=%s",
			tv.Direction, tv.View.ID, tv.View.Title, tv.View.EarnedTime, tv.View.IconPath)
	}
	return nil
}
