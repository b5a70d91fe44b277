package notify

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/AccelByte/extend-achievement-reminder/pkg/domain"
	"github.com/AccelByte/extend-achievement-reminder/pkg/i18n"
)

// ConsoleNotifier prints each transition as a text block.
type ConsoleNotifier struct {
	out  io.Writer
	msgs i18n.NotifyMessages
	mu   sync.Mutex
}

// NewConsoleNotifier creates a ConsoleNotifier writing to out (stdout when nil).
func NewConsoleNotifier(out io.Writer, msgs i18n.NotifyMessages) *ConsoleNotifier {
	if out == nil {
		out = os.Stdout
	}
	return &ConsoleNotifier{out: out, msgs: msgs}
}

// Notify writes one block per view, separated by blank lines.
func (c *ConsoleNotifier) Notify(ctx context.Context, views []domain.TransitionView) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, tv := range views {
		if _, err := io.WriteString(c.out, FormatToast(ToastFor(tv, c.msgs), c.msgs)); err != nil {
			return err
		}
	}
	return nil
}

// FormatToast renders t as console text, ending with a blank line.
func FormatToast(t Toast, msgs i18n.NotifyMessages) string {
	var b strings.Builder
	b.WriteString(t.Header)
	b.WriteByte('\n')
	b.WriteString(t.Title)
	b.WriteByte('\n')
	if t.Text != "" {
		b.WriteString(t.Text)
		b.WriteByte('\n')
	}
	if t.Note != "" {
		b.WriteString(t.Note)
		b.WriteByte('\n')
	}
	if t.Image != "" {
		fmt.Fprintf(&b, msgs.Icon+"\n", t.Image)
	}
	b.WriteByte('\n')
	return b.String()
}
