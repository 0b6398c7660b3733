package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"veridoc/internal/domain"
)

// MockDocumentTypeRepo is a mock implementation of port.DocumentTypeRepository.
type MockDocumentTypeRepo struct {
	mock.Mock
}

func (m *MockDocumentTypeRepo) Create(ctx context.Context, docType *domain.DocumentType) error {
	args := m.Called(ctx, docType)
	return args.Error(0)
}

func (m *MockDocumentTypeRepo) GetByType(ctx context.Context, name string) (*domain.DocumentType, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DocumentType), args.Error(1)
}

func (m *MockDocumentTypeRepo) List(ctx context.Context) ([]domain.DocumentType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DocumentType), args.Error(1)
}
