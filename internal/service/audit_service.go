package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"veridoc/internal/domain"
	"veridoc/internal/port"
)

// AuditEntryInput is the DTO for recording an audit event. ID and timestamp
// are assigned by the ledger; callers cannot supply them.
type AuditEntryInput struct {
	DocumentID  uuid.UUID
	Actor       string
	Role        domain.UserRole
	Action      domain.AuditAction
	Description string
	Metadata    map[string]string
}

// AuditService is the append-only audit ledger contract.
type AuditService interface {
	Record(ctx context.Context, input *AuditEntryInput) (*domain.AuditEvent, error)
	Query(ctx context.Context, documentID uuid.UUID, filter *domain.AuditFilter) ([]domain.AuditEvent, error)
}

type auditService struct {
	auditRepo port.AuditRepository
}

// NewAuditService creates a new AuditService implementation.
func NewAuditService(auditRepo port.AuditRepository) AuditService {
	return &auditService{auditRepo: auditRepo}
}

func (s *auditService) Record(ctx context.Context, input *AuditEntryInput) (*domain.AuditEvent, error) {
	event := &domain.AuditEvent{
		ID:          uuid.New(),
		DocumentID:  input.DocumentID,
		Timestamp:   time.Now().UTC(),
		Actor:       input.Actor,
		Role:        input.Role,
		Action:      input.Action,
		Description: input.Description,
		Metadata:    input.Metadata,
	}
	if err := s.auditRepo.Append(ctx, event); err != nil {
		return nil, fmt.Errorf("recording audit event %q for %s: %w", input.Action, input.DocumentID, err)
	}
	return event, nil
}

func (s *auditService) Query(ctx context.Context, documentID uuid.UUID, filter *domain.AuditFilter) ([]domain.AuditEvent, error) {
	return s.auditRepo.ListByDocument(ctx, documentID, filter)
}
