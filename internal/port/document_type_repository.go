package port

import (
	"context"

	"veridoc/internal/domain"
)

// DocumentTypeRepository defines the contract for the controlled
// document-type vocabulary.
type DocumentTypeRepository interface {
	Create(ctx context.Context, docType *domain.DocumentType) error
	GetByType(ctx context.Context, name string) (*domain.DocumentType, error)
	List(ctx context.Context) ([]domain.DocumentType, error)
}
