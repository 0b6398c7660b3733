package port

import (
	"context"

	"github.com/google/uuid"

	"veridoc/internal/domain"
)

// AuditRepository defines the contract for the append-only audit ledger.
// Entries are never updated, deleted, or reordered.
type AuditRepository interface {
	Append(ctx context.Context, event *domain.AuditEvent) error
	ListByDocument(ctx context.Context, documentID uuid.UUID, filter *domain.AuditFilter) ([]domain.AuditEvent, error)
}
