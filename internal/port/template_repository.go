package port

import (
	"context"

	"github.com/google/uuid"

	"veridoc/internal/domain"
)

// TemplateRepository defines the contract for workflow template storage.
// Exactly one template is marked default.
type TemplateRepository interface {
	Create(ctx context.Context, tpl *domain.WorkflowTemplate) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.WorkflowTemplate, error)
	GetDefault(ctx context.Context) (*domain.WorkflowTemplate, error)
	List(ctx context.Context) ([]domain.WorkflowTemplate, error)
}
