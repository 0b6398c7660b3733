package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"veridoc/internal/domain"
	"veridoc/internal/port"
)

// SignInput is the DTO for capturing an electronic signature.
type SignInput struct {
	DocumentID    uuid.UUID
	VersionID     uuid.UUID
	SignerID      uuid.UUID
	PIN           string
	Meaning       domain.SignatureMeaning
	Justification string
}

// SignatureService captures electronic signatures on document versions. A
// signature binds an authenticated identity, a PIN second factor, a declared
// meaning, and a justification to exactly one version.
type SignatureService interface {
	Sign(ctx context.Context, input *SignInput) (*domain.ElectronicSignature, error)
}

type signatureService struct {
	docRepo  port.DocumentRepository
	userRepo port.UserRepository
	identity IdentityService
	audit    AuditService
	locker   *DocLocker
}

// NewSignatureService creates a new SignatureService implementation.
func NewSignatureService(
	docRepo port.DocumentRepository,
	userRepo port.UserRepository,
	identity IdentityService,
	audit AuditService,
	locker *DocLocker,
) SignatureService {
	return &signatureService{
		docRepo:  docRepo,
		userRepo: userRepo,
		identity: identity,
		audit:    audit,
		locker:   locker,
	}
}

// Sign checks its preconditions in a fixed order: justification present,
// signer known and active, PIN digest match, signing permission for the
// requested meaning. A rejected attempt records nothing: no signature and no
// audit entry exist for a failed PIN.
func (s *signatureService) Sign(ctx context.Context, input *SignInput) (*domain.ElectronicSignature, error) {
	if strings.TrimSpace(input.Justification) == "" {
		return nil, domain.ErrMissingJustification
	}
	if !domain.ValidSignatureMeanings[input.Meaning] {
		return nil, domain.ErrValidation
	}

	signer, err := s.userRepo.GetByID(ctx, input.SignerID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, domain.ErrUnknownSigner
		}
		return nil, fmt.Errorf("looking up signer: %w", err)
	}
	if !signer.IsActive {
		return nil, domain.ErrUnknownSigner
	}

	if !domain.VerifyPIN(signer.PINDigest, input.PIN) {
		return nil, domain.ErrInvalidCredential
	}

	allowed, err := s.identity.HasPermission(ctx, signer.Role, domain.PermissionForMeaning(input.Meaning))
	if err != nil {
		return nil, fmt.Errorf("checking permissions: %w", err)
	}
	if !allowed {
		return nil, domain.ErrForbidden
	}

	unlock := s.locker.Lock(input.DocumentID)
	defer unlock()

	doc, err := s.docRepo.GetByID(ctx, input.DocumentID)
	if err != nil {
		return nil, err
	}
	version := doc.VersionByID(input.VersionID)
	if version == nil {
		return nil, domain.ErrNotFound
	}
	if doc.Status == domain.StatusObsolete {
		return nil, domain.ErrInvalidState
	}

	// The signing moment is the server clock, never caller input.
	signature := domain.ElectronicSignature{
		ID:            uuid.New(),
		SignedBy:      signer.FullName,
		SignerRole:    signer.Role,
		SignedAt:      time.Now().UTC(),
		Meaning:       input.Meaning,
		Justification: input.Justification,
	}
	version.SignedOffBy = append(version.SignedOffBy, signature)

	if err := s.docRepo.Update(ctx, doc); err != nil {
		return nil, fmt.Errorf("persisting signature: %w", err)
	}

	if _, err := s.audit.Record(ctx, &AuditEntryInput{
		DocumentID:  doc.ID,
		Actor:       signer.FullName,
		Role:        signer.Role,
		Action:      domain.SignatureCapturedAction(input.Meaning),
		Description: fmt.Sprintf("%s signed version %s with justification: %s.", signer.FullName, version.Version, input.Justification),
		Metadata:    map[string]string{"version": version.Version, "meaning": string(input.Meaning)},
	}); err != nil {
		return nil, err
	}

	log.Printf("signatureService.Sign: %s signature captured on document %s version %s", input.Meaning, doc.ID, version.Version)
	return &signature, nil
}
