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

func setupRegistry() (*mocks.MockDocumentRepo, *mocks.MockTaskRepo, *mocks.MockDocumentTypeRepo, *mocks.MockTemplateRepo, *mocks.MockUserRepo, *mocks.MockRoleRepo, *mocks.MockAuditRepo, service.RegistryService) {
	docRepo := new(mocks.MockDocumentRepo)
	taskRepo := new(mocks.MockTaskRepo)
	typeRepo := new(mocks.MockDocumentTypeRepo)
	templateRepo := new(mocks.MockTemplateRepo)
	userRepo := new(mocks.MockUserRepo)
	roleRepo := new(mocks.MockRoleRepo)
	auditRepo := new(mocks.MockAuditRepo)

	identity := service.NewIdentityService(userRepo, roleRepo)
	audit := service.NewAuditService(auditRepo)
	svc := service.NewRegistryService(docRepo, taskRepo, typeRepo, templateRepo, identity, audit, service.NewDocLocker())
	return docRepo, taskRepo, typeRepo, templateRepo, userRepo, roleRepo, auditRepo, svc
}

func controllerUser() *domain.User {
	return &domain.User{
		ID:       uuid.New(),
		Email:    "controller@veridoc.local",
		FullName: "Marcus Webb",
		Role:     domain.RoleDocumentController,
		IsActive: true,
	}
}

func standardTemplate() *domain.WorkflowTemplate {
	return &domain.WorkflowTemplate{
		ID:        uuid.New(),
		Name:      "Standard Review Cycle",
		IsDefault: true,
		Steps: []domain.WorkflowStep{
			{Stage: domain.StageDrafting, Role: domain.RoleDocumentController, MinimumSignatures: 0, SLADays: 5},
			{Stage: domain.StageReview, Role: domain.RoleQualityAssurance, MinimumSignatures: 1, SLADays: 7, SignatureMeaning: domain.MeaningReview},
			{Stage: domain.StageApproval, Role: domain.RoleQualityHead, MinimumSignatures: 1, SLADays: 5, SignatureMeaning: domain.MeaningApproval},
		},
	}
}

func createInput(createdBy uuid.UUID) *service.CreateDocumentInput {
	return &service.CreateDocumentInput{
		Title:            "Cleaning Validation Protocol",
		DocumentNumber:   "VAL-0310",
		DocumentCategory: "Validation",
		DocumentType:     "SOP",
		IssuedBy:         "Quality Operations",
		IssuerRole:       domain.RoleDocumentController,
		CreatedBy:        createdBy,
	}
}

func TestCreateDocument_MissingRequiredField(t *testing.T) {
	docRepo, _, _, _, userRepo, _, _, svc := setupRegistry()

	input := createInput(uuid.New())
	input.Title = "  "

	_, err := svc.Create(context.Background(), input)

	assert.ErrorIs(t, err, domain.ErrValidation)
	userRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	docRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateDocument_UnknownSecurityLevel(t *testing.T) {
	_, _, _, _, _, _, _, svc := setupRegistry()

	input := createInput(uuid.New())
	input.DocumentSecurity = domain.SecurityLevel("Top Secret")

	_, err := svc.Create(context.Background(), input)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCreateDocument_Defaults(t *testing.T) {
	docRepo, taskRepo, _, templateRepo, userRepo, _, auditRepo, svc := setupRegistry()

	creator := controllerUser()
	tpl := standardTemplate()

	userRepo.On("GetByID", mock.Anything, creator.ID).Return(creator, nil)
	templateRepo.On("GetDefault", mock.Anything).Return(tpl, nil)
	docRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.DocumentRecord")).Return(nil)

	var batch []domain.WorkflowTask
	taskRepo.On("CreateBatch", mock.Anything, mock.AnythingOfType("[]domain.WorkflowTask")).
		Run(func(args mock.Arguments) {
			batch = args.Get(1).([]domain.WorkflowTask)
		}).Return(nil)

	var recorded *domain.AuditEvent
	auditRepo.On("Append", mock.Anything, mock.AnythingOfType("*domain.AuditEvent")).
		Run(func(args mock.Arguments) {
			recorded = args.Get(1).(*domain.AuditEvent)
		}).Return(nil)

	doc, err := svc.Create(context.Background(), createInput(creator.ID))

	require.NoError(t, err)
	assert.Equal(t, domain.StatusDraft, doc.Status)
	assert.Equal(t, domain.SecurityConfidential, doc.DocumentSecurity)
	assert.Equal(t, "Marcus Webb", doc.CreatedBy)

	// One open initial version.
	require.Len(t, doc.Versions, 1)
	assert.Equal(t, "0.1", doc.Versions[0].Version)
	assert.Empty(t, doc.Versions[0].SignedOffBy)

	// Lifecycle seeded at the drafting stage.
	require.Len(t, doc.Lifecycle, 1)
	assert.Equal(t, domain.StageDrafting, doc.Lifecycle[0].Stage)
	assert.Equal(t, domain.StatusDraft, doc.Lifecycle[0].Status)

	// The template is copied, not referenced.
	assert.NotEqual(t, tpl.ID, doc.WorkflowConfig.ID)
	assert.Len(t, doc.WorkflowConfig.Steps, 3)

	// One task per step, due dates from the step SLAs.
	require.Len(t, batch, 3)
	assert.Equal(t, 0, batch[0].StepIndex)
	assert.Equal(t, domain.RoleQualityAssurance, batch[1].Role)
	assert.WithinDuration(t, time.Now().UTC().AddDate(0, 0, 7), batch[1].DueDate, time.Minute)

	require.NotNil(t, recorded)
	assert.Equal(t, domain.AuditDocumentCreated, recorded.Action)
	assert.Equal(t, "Marcus Webb created Cleaning Validation Protocol with number VAL-0310.", recorded.Description)

	docRepo.AssertExpectations(t)
	taskRepo.AssertExpectations(t)
}

func TestCreateDocument_ExplicitTemplate(t *testing.T) {
	docRepo, taskRepo, _, templateRepo, userRepo, _, auditRepo, svc := setupRegistry()

	creator := controllerUser()
	tpl := standardTemplate()
	tpl.IsDefault = false

	userRepo.On("GetByID", mock.Anything, creator.ID).Return(creator, nil)
	templateRepo.On("GetByID", mock.Anything, tpl.ID).Return(tpl, nil)
	docRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.DocumentRecord")).Return(nil)
	taskRepo.On("CreateBatch", mock.Anything, mock.AnythingOfType("[]domain.WorkflowTask")).Return(nil)
	auditRepo.On("Append", mock.Anything, mock.AnythingOfType("*domain.AuditEvent")).Return(nil)

	input := createInput(creator.ID)
	input.TemplateID = &tpl.ID

	_, err := svc.Create(context.Background(), input)

	require.NoError(t, err)
	templateRepo.AssertNotCalled(t, "GetDefault", mock.Anything)
	templateRepo.AssertExpectations(t)
}

func TestAddVersion_OpenVersionBlocks(t *testing.T) {
	docRepo, _, _, _, userRepo, _, auditRepo, svc := setupRegistry()

	actor := controllerUser()
	doc := &domain.DocumentRecord{
		ID:     uuid.New(),
		Title:  "Cleaning Validation Protocol",
		Status: domain.StatusDraft,
		Versions: []domain.DocumentVersion{{
			ID:      uuid.New(),
			Version: "0.1",
		}},
	}

	userRepo.On("GetByID", mock.Anything, actor.ID).Return(actor, nil)
	docRepo.On("GetByID", mock.Anything, doc.ID).Return(doc, nil)

	_, err := svc.AddVersion(context.Background(), &service.AddVersionInput{
		DocumentID:    doc.ID,
		ActorID:       actor.ID,
		ChangeSummary: "Annual review updates.",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidState)
	auditRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestAddVersion_BumpsLabel(t *testing.T) {
	docRepo, _, _, _, userRepo, _, auditRepo, svc := setupRegistry()

	actor := controllerUser()
	doc := &domain.DocumentRecord{
		ID:     uuid.New(),
		Title:  "Cleaning Validation Protocol",
		Status: domain.StatusEffective,
		Versions: []domain.DocumentVersion{{
			ID:          uuid.New(),
			Version:     "1.2",
			SignedOffBy: []domain.ElectronicSignature{{ID: uuid.New(), Meaning: domain.MeaningApproval}},
		}},
	}

	userRepo.On("GetByID", mock.Anything, actor.ID).Return(actor, nil)
	docRepo.On("GetByID", mock.Anything, doc.ID).Return(doc, nil)
	docRepo.On("Update", mock.Anything, doc).Return(nil)
	auditRepo.On("Append", mock.Anything, mock.AnythingOfType("*domain.AuditEvent")).Return(nil)

	version, err := svc.AddVersion(context.Background(), &service.AddVersionInput{
		DocumentID:    doc.ID,
		ActorID:       actor.ID,
		ChangeSummary: "Annual review updates.",
	})

	require.NoError(t, err)
	assert.Equal(t, "1.3", version.Version)
	assert.Equal(t, "Annual review updates.", version.ChangeSummary)
	assert.Empty(t, version.SignedOffBy)
	require.Len(t, doc.Versions, 2)
}

func TestUpdateChangeSummary_SignedVersionFrozen(t *testing.T) {
	docRepo, _, _, _, userRepo, _, _, svc := setupRegistry()

	actor := controllerUser()
	versionID := uuid.New()
	doc := &domain.DocumentRecord{
		ID: uuid.New(),
		Versions: []domain.DocumentVersion{{
			ID:          versionID,
			Version:     "1.0",
			SignedOffBy: []domain.ElectronicSignature{{ID: uuid.New(), Meaning: domain.MeaningReview}},
		}},
	}

	userRepo.On("GetByID", mock.Anything, actor.ID).Return(actor, nil)
	docRepo.On("GetByID", mock.Anything, doc.ID).Return(doc, nil)

	_, err := svc.UpdateChangeSummary(context.Background(), &service.UpdateSummaryInput{
		DocumentID:    doc.ID,
		VersionID:     versionID,
		ActorID:       actor.ID,
		ChangeSummary: "Rewritten summary.",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidState)
	docRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestRegisterType_Duplicate(t *testing.T) {
	_, _, typeRepo, _, userRepo, roleRepo, _, svc := setupRegistry()

	actor := controllerUser()
	userRepo.On("GetByID", mock.Anything, actor.ID).Return(actor, nil)
	roleRepo.On("GetByName", mock.Anything, domain.RoleDocumentController).Return(&domain.RoleDefinition{
		Name:        domain.RoleDocumentController,
		Permissions: []domain.Permission{domain.PermManageTypes},
	}, nil)
	typeRepo.On("GetByType", mock.Anything, "SOP").Return(&domain.DocumentType{Type: "SOP"}, nil)

	_, err := svc.RegisterType(context.Background(), &service.RegisterTypeInput{
		Type:    "SOP",
		ActorID: actor.ID,
	})

	assert.ErrorIs(t, err, domain.ErrDuplicateType)
	typeRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterType_RequiresPermission(t *testing.T) {
	_, _, typeRepo, _, userRepo, roleRepo, _, svc := setupRegistry()

	actor := controllerUser()
	actor.Role = domain.RoleQualityAssurance
	userRepo.On("GetByID", mock.Anything, actor.ID).Return(actor, nil)
	roleRepo.On("GetByName", mock.Anything, domain.RoleQualityAssurance).Return(&domain.RoleDefinition{
		Name:        domain.RoleQualityAssurance,
		Permissions: []domain.Permission{domain.PermSignReview},
	}, nil)

	_, err := svc.RegisterType(context.Background(), &service.RegisterTypeInput{
		Type:    "Batch Record",
		ActorID: actor.ID,
	})

	assert.ErrorIs(t, err, domain.ErrForbidden)
	typeRepo.AssertNotCalled(t, "GetByType", mock.Anything, mock.Anything)
}

func TestRegisterType_Success(t *testing.T) {
	_, _, typeRepo, _, userRepo, roleRepo, _, svc := setupRegistry()

	actor := controllerUser()
	userRepo.On("GetByID", mock.Anything, actor.ID).Return(actor, nil)
	roleRepo.On("GetByName", mock.Anything, domain.RoleDocumentController).Return(&domain.RoleDefinition{
		Name:        domain.RoleDocumentController,
		Permissions: []domain.Permission{domain.PermManageTypes},
	}, nil)
	typeRepo.On("GetByType", mock.Anything, "Batch Record").Return(nil, domain.ErrNotFound)
	typeRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.DocumentType")).Return(nil)

	docType, err := svc.RegisterType(context.Background(), &service.RegisterTypeInput{
		Type:        "Batch Record",
		Description: "Executed production batch records.",
		ActorID:     actor.ID,
	})

	require.NoError(t, err)
	assert.Equal(t, "Batch Record", docType.Type)
	typeRepo.AssertExpectations(t)
}

func TestRetire_RequiresPermission(t *testing.T) {
	docRepo, _, _, _, userRepo, roleRepo, _, svc := setupRegistry()

	actor := controllerUser()
	actor.Role = domain.RoleQualityAssurance
	userRepo.On("GetByID", mock.Anything, actor.ID).Return(actor, nil)
	roleRepo.On("GetByName", mock.Anything, domain.RoleQualityAssurance).Return(&domain.RoleDefinition{
		Name:        domain.RoleQualityAssurance,
		Permissions: []domain.Permission{domain.PermSignReview},
	}, nil)

	_, err := svc.Retire(context.Background(), uuid.New(), actor.ID)

	assert.ErrorIs(t, err, domain.ErrForbidden)
	docRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestRetire_AlreadyObsolete(t *testing.T) {
	docRepo, _, _, _, userRepo, roleRepo, _, svc := setupRegistry()

	actor := controllerUser()
	actor.Role = domain.RoleQualityHead
	doc := &domain.DocumentRecord{ID: uuid.New(), Status: domain.StatusObsolete}

	userRepo.On("GetByID", mock.Anything, actor.ID).Return(actor, nil)
	roleRepo.On("GetByName", mock.Anything, domain.RoleQualityHead).Return(&domain.RoleDefinition{
		Name:        domain.RoleQualityHead,
		Permissions: []domain.Permission{domain.PermRetireDocuments},
	}, nil)
	docRepo.On("GetByID", mock.Anything, doc.ID).Return(doc, nil)

	_, err := svc.Retire(context.Background(), doc.ID, actor.ID)

	assert.ErrorIs(t, err, domain.ErrInvalidState)
	docRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestRetire_Success(t *testing.T) {
	docRepo, _, _, _, userRepo, roleRepo, auditRepo, svc := setupRegistry()

	actor := controllerUser()
	actor.Role = domain.RoleQualityHead
	actor.FullName = "Elena Duarte"
	doc := &domain.DocumentRecord{
		ID:     uuid.New(),
		Title:  "Legacy Cleaning Procedure",
		Status: domain.StatusEffective,
		Lifecycle: []domain.LifecycleEntry{{
			Stage:  domain.StageRelease,
			Status: domain.StatusEffective,
		}},
	}

	userRepo.On("GetByID", mock.Anything, actor.ID).Return(actor, nil)
	roleRepo.On("GetByName", mock.Anything, domain.RoleQualityHead).Return(&domain.RoleDefinition{
		Name:        domain.RoleQualityHead,
		Permissions: []domain.Permission{domain.PermRetireDocuments},
	}, nil)
	docRepo.On("GetByID", mock.Anything, doc.ID).Return(doc, nil)
	docRepo.On("Update", mock.Anything, doc).Return(nil)

	var recorded *domain.AuditEvent
	auditRepo.On("Append", mock.Anything, mock.AnythingOfType("*domain.AuditEvent")).
		Run(func(args mock.Arguments) {
			recorded = args.Get(1).(*domain.AuditEvent)
		}).Return(nil)

	retired, err := svc.Retire(context.Background(), doc.ID, actor.ID)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusObsolete, retired.Status)
	require.Len(t, retired.Lifecycle, 2)
	assert.Equal(t, domain.StageRelease, retired.Lifecycle[1].Stage)
	assert.Equal(t, domain.StatusObsolete, retired.Lifecycle[1].Status)

	require.NotNil(t, recorded)
	assert.Equal(t, domain.AuditDocumentRetired, recorded.Action)
	assert.Equal(t, "Elena Duarte retired Legacy Cleaning Procedure from the controlled register.", recorded.Description)
}
