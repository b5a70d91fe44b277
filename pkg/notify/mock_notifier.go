package notify

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/AccelByte/extend-achievement-reminder/pkg/domain"
)

// MockNotifier is a mock implementation of Notifier for testing.
// It uses testify/mock to allow test assertions on method calls.
type MockNotifier struct {
	mock.Mock
}

// NewMockNotifier creates a new mock notifier.
func NewMockNotifier() *MockNotifier {
	return &MockNotifier{}
}

// Notify mocks delivering a batch of transitions.
func (m *MockNotifier) Notify(ctx context.Context, views []domain.TransitionView) error {
	args := m.Called(ctx, views)
	return args.Error(0)
}
