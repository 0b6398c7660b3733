package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"veridoc/internal/domain"
	"veridoc/internal/service"
	"veridoc/mocks"
)

func setupSignature() (*mocks.MockDocumentRepo, *mocks.MockUserRepo, *mocks.MockRoleRepo, *mocks.MockAuditRepo, service.SignatureService) {
	docRepo := new(mocks.MockDocumentRepo)
	userRepo := new(mocks.MockUserRepo)
	roleRepo := new(mocks.MockRoleRepo)
	auditRepo := new(mocks.MockAuditRepo)

	identity := service.NewIdentityService(userRepo, roleRepo)
	audit := service.NewAuditService(auditRepo)
	svc := service.NewSignatureService(docRepo, userRepo, identity, audit, service.NewDocLocker())
	return docRepo, userRepo, roleRepo, auditRepo, svc
}

func signingUser(pin string) *domain.User {
	return &domain.User{
		ID:        uuid.New(),
		Email:     "quality.head@veridoc.local",
		FullName:  "Elena Duarte",
		Role:      domain.RoleQualityHead,
		PINDigest: domain.HashPIN(pin),
		IsActive:  true,
	}
}

func signableDocument() *domain.DocumentRecord {
	return &domain.DocumentRecord{
		ID:     uuid.New(),
		Title:  "Equipment Cleaning Procedure",
		Status: domain.StatusPendingApproval,
		Versions: []domain.DocumentVersion{{
			ID:      uuid.New(),
			Version: "1.0",
		}},
	}
}

func TestSign_MissingJustification(t *testing.T) {
	docRepo, userRepo, _, auditRepo, svc := setupSignature()

	_, err := svc.Sign(context.Background(), &service.SignInput{
		DocumentID:    uuid.New(),
		VersionID:     uuid.New(),
		SignerID:      uuid.New(),
		PIN:           "482916",
		Meaning:       domain.MeaningApproval,
		Justification: "   ",
	})

	assert.ErrorIs(t, err, domain.ErrMissingJustification)
	userRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	docRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	auditRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestSign_UnknownSigner(t *testing.T) {
	_, userRepo, _, auditRepo, svc := setupSignature()

	signerID := uuid.New()
	userRepo.On("GetByID", mock.Anything, signerID).Return(nil, domain.ErrNotFound)

	_, err := svc.Sign(context.Background(), &service.SignInput{
		DocumentID:    uuid.New(),
		VersionID:     uuid.New(),
		SignerID:      signerID,
		PIN:           "482916",
		Meaning:       domain.MeaningApproval,
		Justification: "Reviewed against change control CC-2026-041.",
	})

	assert.ErrorIs(t, err, domain.ErrUnknownSigner)
	auditRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestSign_InactiveSigner(t *testing.T) {
	_, userRepo, _, _, svc := setupSignature()

	signer := signingUser("482916")
	signer.IsActive = false
	userRepo.On("GetByID", mock.Anything, signer.ID).Return(signer, nil)

	_, err := svc.Sign(context.Background(), &service.SignInput{
		DocumentID:    uuid.New(),
		VersionID:     uuid.New(),
		SignerID:      signer.ID,
		PIN:           "482916",
		Meaning:       domain.MeaningApproval,
		Justification: "Scheduled biennial review complete.",
	})

	assert.ErrorIs(t, err, domain.ErrUnknownSigner)
}

func TestSign_WrongPINLeavesNoTrace(t *testing.T) {
	docRepo, userRepo, _, auditRepo, svc := setupSignature()

	signer := signingUser("482916")
	userRepo.On("GetByID", mock.Anything, signer.ID).Return(signer, nil)

	_, err := svc.Sign(context.Background(), &service.SignInput{
		DocumentID:    uuid.New(),
		VersionID:     uuid.New(),
		SignerID:      signer.ID,
		PIN:           "000000",
		Meaning:       domain.MeaningApproval,
		Justification: "Scheduled biennial review complete.",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidCredential)
	// A rejected attempt records nothing.
	docRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	auditRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestSign_RoleLacksMeaningPermission(t *testing.T) {
	_, userRepo, roleRepo, auditRepo, svc := setupSignature()

	signer := signingUser("246801")
	signer.Role = domain.RoleQualityAssurance
	userRepo.On("GetByID", mock.Anything, signer.ID).Return(signer, nil)
	roleRepo.On("GetByName", mock.Anything, domain.RoleQualityAssurance).Return(&domain.RoleDefinition{
		Name:        domain.RoleQualityAssurance,
		Permissions: []domain.Permission{domain.PermSignReview},
	}, nil)

	_, err := svc.Sign(context.Background(), &service.SignInput{
		DocumentID:    uuid.New(),
		VersionID:     uuid.New(),
		SignerID:      signer.ID,
		PIN:           "246801",
		Meaning:       domain.MeaningApproval,
		Justification: "Approving on behalf of quality head.",
	})

	assert.ErrorIs(t, err, domain.ErrForbidden)
	auditRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestSign_Success(t *testing.T) {
	docRepo, userRepo, roleRepo, auditRepo, svc := setupSignature()

	signer := signingUser("482916")
	doc := signableDocument()
	versionID := doc.Versions[0].ID

	userRepo.On("GetByID", mock.Anything, signer.ID).Return(signer, nil)
	roleRepo.On("GetByName", mock.Anything, domain.RoleQualityHead).Return(&domain.RoleDefinition{
		Name:        domain.RoleQualityHead,
		Permissions: []domain.Permission{domain.PermSignReview, domain.PermSignApproval},
	}, nil)
	docRepo.On("GetByID", mock.Anything, doc.ID).Return(doc, nil)
	docRepo.On("Update", mock.Anything, doc).Return(nil)

	var recorded *domain.AuditEvent
	auditRepo.On("Append", mock.Anything, mock.AnythingOfType("*domain.AuditEvent")).
		Run(func(args mock.Arguments) {
			recorded = args.Get(1).(*domain.AuditEvent)
		}).Return(nil)

	before := time.Now().UTC()
	sig, err := svc.Sign(context.Background(), &service.SignInput{
		DocumentID:    doc.ID,
		VersionID:     versionID,
		SignerID:      signer.ID,
		PIN:           "482916",
		Meaning:       domain.MeaningApproval,
		Justification: "Reviewed against change control CC-2026-041.",
	})

	require.NoError(t, err)
	assert.Equal(t, "Elena Duarte", sig.SignedBy)
	assert.Equal(t, domain.RoleQualityHead, sig.SignerRole)
	assert.Equal(t, domain.MeaningApproval, sig.Meaning)
	assert.False(t, sig.SignedAt.Before(before))

	// The signature is bound to the version.
	require.Len(t, doc.Versions[0].SignedOffBy, 1)
	assert.Equal(t, sig.ID, doc.Versions[0].SignedOffBy[0].ID)

	// The audit entry carries the meaning and the verbatim justification.
	require.NotNil(t, recorded)
	assert.Equal(t, domain.AuditAction("Approval Signature Captured"), recorded.Action)
	assert.Equal(t, "Elena Duarte signed version 1.0 with justification: Reviewed against change control CC-2026-041..", recorded.Description)

	docRepo.AssertExpectations(t)
	auditRepo.AssertExpectations(t)
}

func TestSign_VersionNotFound(t *testing.T) {
	docRepo, userRepo, roleRepo, _, svc := setupSignature()

	signer := signingUser("482916")
	doc := signableDocument()

	userRepo.On("GetByID", mock.Anything, signer.ID).Return(signer, nil)
	roleRepo.On("GetByName", mock.Anything, domain.RoleQualityHead).Return(&domain.RoleDefinition{
		Name:        domain.RoleQualityHead,
		Permissions: []domain.Permission{domain.PermSignApproval},
	}, nil)
	docRepo.On("GetByID", mock.Anything, doc.ID).Return(doc, nil)

	_, err := svc.Sign(context.Background(), &service.SignInput{
		DocumentID:    doc.ID,
		VersionID:     uuid.New(),
		SignerID:      signer.ID,
		PIN:           "482916",
		Meaning:       domain.MeaningApproval,
		Justification: "Routine approval.",
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSign_ObsoleteDocument(t *testing.T) {
	docRepo, userRepo, roleRepo, _, svc := setupSignature()

	signer := signingUser("482916")
	doc := signableDocument()
	doc.Status = domain.StatusObsolete

	userRepo.On("GetByID", mock.Anything, signer.ID).Return(signer, nil)
	roleRepo.On("GetByName", mock.Anything, domain.RoleQualityHead).Return(&domain.RoleDefinition{
		Name:        domain.RoleQualityHead,
		Permissions: []domain.Permission{domain.PermSignApproval},
	}, nil)
	docRepo.On("GetByID", mock.Anything, doc.ID).Return(doc, nil)

	_, err := svc.Sign(context.Background(), &service.SignInput{
		DocumentID:    doc.ID,
		VersionID:     doc.Versions[0].ID,
		SignerID:      signer.ID,
		PIN:           "482916",
		Meaning:       domain.MeaningApproval,
		Justification: "Routine approval.",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidState)
}
