package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockEmailSender is a mock implementation of port.EmailSender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendTaskReady(ctx context.Context, toEmail, toName, docTitle, docNumber, stage string, dueDate time.Time) error {
	args := m.Called(ctx, toEmail, toName, docTitle, docNumber, stage, dueDate)
	return args.Error(0)
}

func (m *MockEmailSender) SendDocumentEffective(ctx context.Context, toEmail, toName, docTitle, docNumber string) error {
	args := m.Called(ctx, toEmail, toName, docTitle, docNumber)
	return args.Error(0)
}
