package service

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"veridoc/internal/domain"
	"veridoc/internal/port"
)

const (
	defaultEffectiveDays  = 7
	defaultNextReviewDays = 180
	defaultVersionLabel   = "0.1"
	initialChangeSummary  = "Initial draft created within the controlled document register."
)

// CreateDocumentInput is the DTO for registering a controlled document.
type CreateDocumentInput struct {
	Title            string
	DocumentNumber   string
	DocumentCategory string
	DocumentType     string
	DocumentSecurity domain.SecurityLevel
	IssuedBy         string
	IssuerRole       domain.UserRole
	InitialVersion   string
	DateOfIssue      time.Time
	EffectiveFrom    time.Time
	NextReviewDate   time.Time
	TemplateID       *uuid.UUID
	CreatedBy        uuid.UUID
}

// AddVersionInput is the DTO for opening a new document version.
type AddVersionInput struct {
	DocumentID    uuid.UUID
	ActorID       uuid.UUID
	ChangeSummary string
	Label         string
}

// UpdateSummaryInput is the DTO for editing an unsigned version's change summary.
type UpdateSummaryInput struct {
	DocumentID    uuid.UUID
	VersionID     uuid.UUID
	ActorID       uuid.UUID
	ChangeSummary string
}

// RegisterTypeInput is the DTO for extending the document-type vocabulary.
type RegisterTypeInput struct {
	Type        string
	Description string
	ActorID     uuid.UUID
}

// RegistryService owns DocumentRecord entities: creation, versioning,
// vocabulary, and retirement.
type RegistryService interface {
	Create(ctx context.Context, input *CreateDocumentInput) (*domain.DocumentRecord, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.DocumentRecord, error)
	List(ctx context.Context, filter *domain.DocumentFilter, offset, limit int) ([]domain.DocumentRecord, int, error)
	AddVersion(ctx context.Context, input *AddVersionInput) (*domain.DocumentVersion, error)
	UpdateChangeSummary(ctx context.Context, input *UpdateSummaryInput) (*domain.DocumentVersion, error)
	RegisterType(ctx context.Context, input *RegisterTypeInput) (*domain.DocumentType, error)
	ListTypes(ctx context.Context) ([]domain.DocumentType, error)
	Retire(ctx context.Context, documentID, actorID uuid.UUID) (*domain.DocumentRecord, error)
}

type registryService struct {
	docRepo      port.DocumentRepository
	taskRepo     port.TaskRepository
	typeRepo     port.DocumentTypeRepository
	templateRepo port.TemplateRepository
	identity     IdentityService
	audit        AuditService
	locker       *DocLocker
}

// NewRegistryService creates a new RegistryService implementation.
func NewRegistryService(
	docRepo port.DocumentRepository,
	taskRepo port.TaskRepository,
	typeRepo port.DocumentTypeRepository,
	templateRepo port.TemplateRepository,
	identity IdentityService,
	audit AuditService,
	locker *DocLocker,
) RegistryService {
	return &registryService{
		docRepo:      docRepo,
		taskRepo:     taskRepo,
		typeRepo:     typeRepo,
		templateRepo: templateRepo,
		identity:     identity,
		audit:        audit,
		locker:       locker,
	}
}

func (s *registryService) Create(ctx context.Context, input *CreateDocumentInput) (*domain.DocumentRecord, error) {
	for _, required := range []string{
		input.Title, input.DocumentNumber, input.DocumentCategory, input.IssuedBy, string(input.IssuerRole),
	} {
		if strings.TrimSpace(required) == "" {
			return nil, domain.ErrValidation
		}
	}
	if input.DocumentSecurity != "" && !domain.ValidSecurityLevels[input.DocumentSecurity] {
		return nil, domain.ErrValidation
	}

	creator, err := s.identity.ResolveActor(ctx, input.CreatedBy)
	if err != nil {
		return nil, fmt.Errorf("resolving creator: %w", err)
	}

	var template *domain.WorkflowTemplate
	if input.TemplateID != nil {
		template, err = s.templateRepo.GetByID(ctx, *input.TemplateID)
	} else {
		template, err = s.templateRepo.GetDefault(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("loading workflow template: %w", err)
	}

	now := time.Now().UTC()
	security := input.DocumentSecurity
	if security == "" {
		security = domain.SecurityConfidential
	}
	versionLabel := input.InitialVersion
	if versionLabel == "" {
		versionLabel = defaultVersionLabel
	}
	dateOfIssue := input.DateOfIssue
	if dateOfIssue.IsZero() {
		dateOfIssue = now
	}
	effectiveFrom := input.EffectiveFrom
	if effectiveFrom.IsZero() {
		effectiveFrom = now.AddDate(0, 0, defaultEffectiveDays)
	}
	nextReview := input.NextReviewDate
	if nextReview.IsZero() {
		nextReview = now.AddDate(0, 0, defaultNextReviewDays)
	}

	doc := &domain.DocumentRecord{
		ID:               uuid.New(),
		Title:            input.Title,
		DocumentNumber:   input.DocumentNumber,
		DocumentCategory: input.DocumentCategory,
		DocumentType:     input.DocumentType,
		DocumentSecurity: security,
		CreatedBy:        creator.FullName,
		DateCreated:      now,
		IssuedBy:         input.IssuedBy,
		IssuerRole:       input.IssuerRole,
		DateOfIssue:      dateOfIssue,
		EffectiveFrom:    effectiveFrom,
		NextReviewDate:   nextReview,
		Status:           domain.StatusDraft,
		WorkflowConfig:   template.Clone(),
		Versions: []domain.DocumentVersion{{
			ID:            uuid.New(),
			Version:       versionLabel,
			CreatedAt:     now,
			ChangeSummary: initialChangeSummary,
			SignedOffBy:   []domain.ElectronicSignature{},
		}},
		Lifecycle: []domain.LifecycleEntry{{
			ID:        uuid.New(),
			Stage:     domain.StageDrafting,
			Status:    domain.StatusDraft,
			UpdatedAt: now,
			Actor:     creator.FullName,
			Role:      creator.Role,
		}},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.docRepo.Create(ctx, doc); err != nil {
		return nil, fmt.Errorf("creating document: %w", err)
	}

	tasks := make([]domain.WorkflowTask, 0, len(doc.WorkflowConfig.Steps))
	for i, step := range doc.WorkflowConfig.Steps {
		tasks = append(tasks, domain.WorkflowTask{
			ID:         uuid.New(),
			DocumentID: doc.ID,
			StepIndex:  i,
			Stage:      step.Stage,
			AssignedTo: string(step.Role),
			Role:       step.Role,
			DueDate:    now.AddDate(0, 0, step.SLADays),
			Status:     domain.TaskPending,
			CreatedAt:  now,
			UpdatedAt:  now,
		})
	}
	if err := s.taskRepo.CreateBatch(ctx, tasks); err != nil {
		return nil, fmt.Errorf("materializing workflow tasks: %w", err)
	}

	if _, err := s.audit.Record(ctx, &AuditEntryInput{
		DocumentID:  doc.ID,
		Actor:       creator.FullName,
		Role:        creator.Role,
		Action:      domain.AuditDocumentCreated,
		Description: fmt.Sprintf("%s created %s with number %s.", creator.FullName, doc.Title, doc.DocumentNumber),
		Metadata:    map[string]string{"document_type": doc.DocumentType, "security": string(doc.DocumentSecurity)},
	}); err != nil {
		return nil, err
	}

	log.Printf("registryService.Create: registered document %s (%s)", doc.ID, doc.DocumentNumber)
	return doc, nil
}

func (s *registryService) GetByID(ctx context.Context, id uuid.UUID) (*domain.DocumentRecord, error) {
	return s.docRepo.GetByID(ctx, id)
}

func (s *registryService) List(ctx context.Context, filter *domain.DocumentFilter, offset, limit int) ([]domain.DocumentRecord, int, error) {
	return s.docRepo.List(ctx, filter, offset, limit)
}

func (s *registryService) AddVersion(ctx context.Context, input *AddVersionInput) (*domain.DocumentVersion, error) {
	if strings.TrimSpace(input.ChangeSummary) == "" {
		return nil, domain.ErrValidation
	}
	actor, err := s.identity.ResolveActor(ctx, input.ActorID)
	if err != nil {
		return nil, fmt.Errorf("resolving actor: %w", err)
	}

	unlock := s.locker.Lock(input.DocumentID)
	defer unlock()

	doc, err := s.docRepo.GetByID(ctx, input.DocumentID)
	if err != nil {
		return nil, err
	}

	// At most one open version: the latest must be signed off before the
	// next revision opens.
	if active := doc.ActiveVersion(); active != nil && !active.Signed() {
		return nil, domain.ErrInvalidState
	}

	label := input.Label
	if label == "" {
		label = bumpVersionLabel(doc.ActiveVersion())
	}

	now := time.Now().UTC()
	version := domain.DocumentVersion{
		ID:            uuid.New(),
		Version:       label,
		CreatedAt:     now,
		ChangeSummary: input.ChangeSummary,
		SignedOffBy:   []domain.ElectronicSignature{},
	}
	doc.Versions = append(doc.Versions, version)

	if err := s.docRepo.Update(ctx, doc); err != nil {
		return nil, fmt.Errorf("adding version: %w", err)
	}

	if _, err := s.audit.Record(ctx, &AuditEntryInput{
		DocumentID:  doc.ID,
		Actor:       actor.FullName,
		Role:        actor.Role,
		Action:      domain.AuditVersionAdded,
		Description: fmt.Sprintf("%s opened version %s of %s.", actor.FullName, label, doc.Title),
		Metadata:    map[string]string{"version": label},
	}); err != nil {
		return nil, err
	}
	return &version, nil
}

func (s *registryService) UpdateChangeSummary(ctx context.Context, input *UpdateSummaryInput) (*domain.DocumentVersion, error) {
	if strings.TrimSpace(input.ChangeSummary) == "" {
		return nil, domain.ErrValidation
	}
	actor, err := s.identity.ResolveActor(ctx, input.ActorID)
	if err != nil {
		return nil, fmt.Errorf("resolving actor: %w", err)
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
	// A signed version is frozen.
	if version.Signed() {
		return nil, domain.ErrInvalidState
	}

	version.ChangeSummary = input.ChangeSummary
	if err := s.docRepo.Update(ctx, doc); err != nil {
		return nil, fmt.Errorf("updating change summary: %w", err)
	}

	if _, err := s.audit.Record(ctx, &AuditEntryInput{
		DocumentID:  doc.ID,
		Actor:       actor.FullName,
		Role:        actor.Role,
		Action:      domain.AuditSummaryUpdated,
		Description: fmt.Sprintf("%s revised the change summary of version %s.", actor.FullName, version.Version),
		Metadata:    map[string]string{"version": version.Version},
	}); err != nil {
		return nil, err
	}
	return version, nil
}

func (s *registryService) RegisterType(ctx context.Context, input *RegisterTypeInput) (*domain.DocumentType, error) {
	if strings.TrimSpace(input.Type) == "" {
		return nil, domain.ErrValidation
	}
	actor, err := s.identity.ResolveActor(ctx, input.ActorID)
	if err != nil {
		return nil, fmt.Errorf("resolving actor: %w", err)
	}
	allowed, err := s.identity.HasPermission(ctx, actor.Role, domain.PermManageTypes)
	if err != nil {
		return nil, fmt.Errorf("checking permissions: %w", err)
	}
	if !allowed {
		return nil, domain.ErrForbidden
	}

	if _, err := s.typeRepo.GetByType(ctx, input.Type); err == nil {
		return nil, domain.ErrDuplicateType
	} else if err != domain.ErrNotFound {
		return nil, fmt.Errorf("checking vocabulary: %w", err)
	}

	docType := &domain.DocumentType{
		ID:          uuid.New(),
		Type:        input.Type,
		Description: input.Description,
	}
	if err := s.typeRepo.Create(ctx, docType); err != nil {
		return nil, err
	}
	return docType, nil
}

func (s *registryService) ListTypes(ctx context.Context) ([]domain.DocumentType, error) {
	return s.typeRepo.List(ctx)
}

func (s *registryService) Retire(ctx context.Context, documentID, actorID uuid.UUID) (*domain.DocumentRecord, error) {
	actor, err := s.identity.ResolveActor(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("resolving actor: %w", err)
	}
	allowed, err := s.identity.HasPermission(ctx, actor.Role, domain.PermRetireDocuments)
	if err != nil {
		return nil, fmt.Errorf("checking permissions: %w", err)
	}
	if !allowed {
		return nil, domain.ErrForbidden
	}

	unlock := s.locker.Lock(documentID)
	defer unlock()

	doc, err := s.docRepo.GetByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	// Obsolete is terminal; retirement is not reversible or repeatable.
	if doc.Status == domain.StatusObsolete {
		return nil, domain.ErrInvalidState
	}

	now := time.Now().UTC()
	doc.Status = domain.StatusObsolete
	doc.Lifecycle = append(doc.Lifecycle, domain.LifecycleEntry{
		ID:        uuid.New(),
		Stage:     doc.CurrentStage(),
		Status:    domain.StatusObsolete,
		UpdatedAt: now,
		Actor:     actor.FullName,
		Role:      actor.Role,
	})
	if err := s.docRepo.Update(ctx, doc); err != nil {
		return nil, fmt.Errorf("retiring document: %w", err)
	}

	if _, err := s.audit.Record(ctx, &AuditEntryInput{
		DocumentID:  doc.ID,
		Actor:       actor.FullName,
		Role:        actor.Role,
		Action:      domain.AuditDocumentRetired,
		Description: fmt.Sprintf("%s retired %s from the controlled register.", actor.FullName, doc.Title),
	}); err != nil {
		return nil, err
	}

	log.Printf("registryService.Retire: document %s marked obsolete", doc.ID)
	return doc, nil
}

// bumpVersionLabel derives the next version label from the previous one by
// incrementing the final numeric segment, e.g. "1.0" -> "1.1". Labels that
// do not end in a number gain a ".1" suffix.
func bumpVersionLabel(prev *domain.DocumentVersion) string {
	if prev == nil {
		return defaultVersionLabel
	}
	parts := strings.Split(prev.Version, ".")
	last := parts[len(parts)-1]
	if n, err := strconv.Atoi(last); err == nil {
		parts[len(parts)-1] = strconv.Itoa(n + 1)
		return strings.Join(parts, ".")
	}
	return prev.Version + ".1"
}
