// Package notify delivers transition views to the presentation layer.
package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/AccelByte/extend-achievement-reminder/pkg/domain"
	"github.com/AccelByte/extend-achievement-reminder/pkg/errors"
	"github.com/AccelByte/extend-achievement-reminder/pkg/i18n"
)

// Notifier receives the transitions of one reload cycle, gained batch first.
// Implementations must not retain views after returning unless they copy them.
type Notifier interface {
	Notify(ctx context.Context, views []domain.TransitionView) error
}

// Toast is the text layout of one notification.
type Toast struct {
	Header string // "Achievement Get!" or the lost banner
	Title  string
	Text   string
	Note   string // Earned time line; empty when unknown
	Image  string
}

// ToastFor lays out tv using msgs.
func ToastFor(tv domain.TransitionView, msgs i18n.NotifyMessages) Toast {
	t := Toast{
		Header: msgs.GainedHeader,
		Title:  tv.View.Title,
		Text:   tv.View.Description,
		Image:  tv.View.IconPath,
	}
	if tv.Direction == domain.DirectionLost {
		t.Header = msgs.LostHeader
	}
	if tv.View.EarnedTime != "" {
		t.Note = fmt.Sprintf(msgs.EarnedAt, tv.View.EarnedTime)
	}
	return t
}

// Multi fans a batch out to several notifiers. Every notifier is called even when an
// earlier one fails; the first failure is returned.
type Multi []Notifier

// Notify calls each notifier in order.
func (m Multi) Notify(ctx context.Context, views []domain.TransitionView) error {
	var first error
	for i, n := range m {
		if err := n.Notify(ctx, views); err != nil && first == nil {
			first = errors.ErrNotifyFailed(fmt.Sprintf("notifier %d", i), err)
		}
	}
	return first
}

// Dispatch forwards batches from in to n until in is closed or ctx is done.
// Delivery failures are logged and do not stop the loop.
func Dispatch(ctx context.Context, in <-chan []domain.TransitionView, n Notifier, logger *slog.Logger) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case views, ok := <-in:
			if !ok {
				return nil
			}
			if err := n.Notify(ctx, views); err != nil {
				logger.Warn("Failed to deliver notifications",
					"transitions", len(views),
					"error", err,
				)
			}
		}
	}
}
