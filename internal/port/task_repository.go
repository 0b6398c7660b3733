package port

import (
	"context"

	"github.com/google/uuid"

	"veridoc/internal/domain"
)

// TaskRepository defines the contract for per-document workflow task
// persistence. ListByDocument returns tasks ordered by template step index.
type TaskRepository interface {
	CreateBatch(ctx context.Context, tasks []domain.WorkflowTask) error
	ListByDocument(ctx context.Context, documentID uuid.UUID) ([]domain.WorkflowTask, error)
	GetByID(ctx context.Context, documentID, taskID uuid.UUID) (*domain.WorkflowTask, error)
	Update(ctx context.Context, task *domain.WorkflowTask) error
}
