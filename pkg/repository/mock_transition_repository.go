package repository

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/AccelByte/extend-achievement-reminder/pkg/domain"
)

// MockTransitionRepository is a mock implementation of TransitionRepository for testing.
// It uses testify/mock to allow test assertions on method calls.
type MockTransitionRepository struct {
	mock.Mock
}

// NewMockTransitionRepository creates a new mock transition repository.
func NewMockTransitionRepository() *MockTransitionRepository {
	return &MockTransitionRepository{}
}

// Record mocks appending a single transition.
func (m *MockTransitionRepository) Record(ctx context.Context, rec *domain.TransitionRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

// RecordBatch mocks appending a batch of transitions.
func (m *MockTransitionRepository) RecordBatch(ctx context.Context, recs []*domain.TransitionRecord) error {
	args := m.Called(ctx, recs)
	return args.Error(0)
}

// ListRecent mocks listing recent transitions.
func (m *MockTransitionRepository) ListRecent(ctx context.Context, appID string, limit int) ([]*domain.TransitionRecord, error) {
	args := m.Called(ctx, appID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.TransitionRecord), args.Error(1)
}

// ListByAchievement mocks listing transitions by achievement name.
func (m *MockTransitionRepository) ListByAchievement(ctx context.Context, appID string, names []string) ([]*domain.TransitionRecord, error) {
	args := m.Called(ctx, appID, names)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.TransitionRecord), args.Error(1)
}
