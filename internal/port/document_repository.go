package port

import (
	"context"

	"github.com/google/uuid"

	"veridoc/internal/domain"
)

// DocumentRepository defines the contract for document aggregate
// persistence. Update replaces the whole record atomically; readers never
// observe a partially written aggregate.
type DocumentRepository interface {
	Create(ctx context.Context, doc *domain.DocumentRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.DocumentRecord, error)
	List(ctx context.Context, filter *domain.DocumentFilter, offset, limit int) ([]domain.DocumentRecord, int, error)
	Update(ctx context.Context, doc *domain.DocumentRecord) error
	StatusSummary(ctx context.Context) (*domain.StatusSummary, error)
}
