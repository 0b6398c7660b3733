package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"veridoc/internal/domain"
)

// MockTaskRepo is a mock implementation of port.TaskRepository.
type MockTaskRepo struct {
	mock.Mock
}

func (m *MockTaskRepo) CreateBatch(ctx context.Context, tasks []domain.WorkflowTask) error {
	args := m.Called(ctx, tasks)
	return args.Error(0)
}

func (m *MockTaskRepo) ListByDocument(ctx context.Context, documentID uuid.UUID) ([]domain.WorkflowTask, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WorkflowTask), args.Error(1)
}

func (m *MockTaskRepo) GetByID(ctx context.Context, documentID, taskID uuid.UUID) (*domain.WorkflowTask, error) {
	args := m.Called(ctx, documentID, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkflowTask), args.Error(1)
}

func (m *MockTaskRepo) Update(ctx context.Context, task *domain.WorkflowTask) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}
