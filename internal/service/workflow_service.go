package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"veridoc/internal/domain"
	"veridoc/internal/port"
)

// CompleteTaskInput is the DTO for closing a workflow task.
type CompleteTaskInput struct {
	DocumentID uuid.UUID
	TaskID     uuid.UUID
	ActorID    uuid.UUID
}

// WorkflowService drives the document lifecycle state machine through its
// per-document task list.
type WorkflowService interface {
	ListTasks(ctx context.Context, documentID uuid.UUID) ([]domain.WorkflowTask, error)
	CompleteTask(ctx context.Context, input *CompleteTaskInput) (*domain.WorkflowTask, error)
}

type workflowService struct {
	docRepo  port.DocumentRepository
	taskRepo port.TaskRepository
	userRepo port.UserRepository
	identity IdentityService
	audit    AuditService
	email    port.EmailSender
	locker   *DocLocker
}

// NewWorkflowService creates a new WorkflowService implementation.
func NewWorkflowService(
	docRepo port.DocumentRepository,
	taskRepo port.TaskRepository,
	userRepo port.UserRepository,
	identity IdentityService,
	audit AuditService,
	email port.EmailSender,
	locker *DocLocker,
) WorkflowService {
	return &workflowService{
		docRepo:  docRepo,
		taskRepo: taskRepo,
		userRepo: userRepo,
		identity: identity,
		audit:    audit,
		email:    email,
		locker:   locker,
	}
}

func (s *workflowService) ListTasks(ctx context.Context, documentID uuid.UUID) ([]domain.WorkflowTask, error) {
	if _, err := s.docRepo.GetByID(ctx, documentID); err != nil {
		return nil, err
	}
	return s.taskRepo.ListByDocument(ctx, documentID)
}

// CompleteTask validates, in order: the document is not in a terminal status,
// the task exists and is still pending, all earlier steps are complete, the
// active version carries enough signatures of the step's meaning, and the
// actor holds the task's role. Readiness is checked before the actor: an
// unready workflow reports out-of-order no matter who asks. Only then does
// the task close and the document advance.
func (s *workflowService) CompleteTask(ctx context.Context, input *CompleteTaskInput) (*domain.WorkflowTask, error) {
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
	if doc.Status.Terminal() {
		return nil, domain.ErrInvalidState
	}

	task, err := s.taskRepo.GetByID(ctx, input.DocumentID, input.TaskID)
	if err != nil {
		return nil, err
	}
	if task.Status == domain.TaskCompleted {
		return nil, domain.ErrInvalidState
	}

	tasks, err := s.taskRepo.ListByDocument(ctx, input.DocumentID)
	if err != nil {
		return nil, err
	}
	for _, t := range tasks {
		if t.StepIndex < task.StepIndex && t.Status != domain.TaskCompleted {
			return nil, domain.ErrOutOfOrder
		}
	}

	step := doc.WorkflowConfig.Steps[task.StepIndex]
	meaning := step.SignatureMeaning
	if meaning == "" {
		meaning = defaultMeaningForStage(step.Stage)
	}
	active := doc.ActiveVersion()
	// The signature gate applies only to steps that require signatures.
	if step.MinimumSignatures > 0 {
		if active == nil || countSignatures(active, meaning) < step.MinimumSignatures {
			return nil, domain.ErrOutOfOrder
		}
	}

	if actor.Role != task.Role {
		return nil, domain.ErrForbidden
	}

	now := time.Now().UTC()
	task.Status = domain.TaskCompleted
	task.UpdatedAt = now
	if active != nil {
		if sig := latestSignature(active, meaning); sig != nil {
			id := sig.ID
			task.SignatureID = &id
		}
	}
	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("completing task: %w", err)
	}

	// Advance the document: the next pending step's entry status applies, or
	// Effective when the completed step was the last one.
	next := nextPendingStep(tasks, task)
	var newStatus domain.DocumentStatus
	var newStage domain.WorkflowStage
	if next == nil {
		newStatus = domain.StatusEffective
		newStage = task.Stage
	} else {
		newStatus = domain.StageEntryStatus[next.Stage]
		newStage = next.Stage
	}
	doc.Status = newStatus
	doc.Lifecycle = append(doc.Lifecycle, domain.LifecycleEntry{
		ID:          uuid.New(),
		Stage:       newStage,
		Status:      newStatus,
		UpdatedAt:   now,
		Actor:       actor.FullName,
		Role:        actor.Role,
		SignatureID: task.SignatureID,
	})
	if err := s.docRepo.Update(ctx, doc); err != nil {
		return nil, fmt.Errorf("advancing document: %w", err)
	}

	if _, err := s.audit.Record(ctx, &AuditEntryInput{
		DocumentID:  doc.ID,
		Actor:       actor.FullName,
		Role:        actor.Role,
		Action:      domain.AuditWorkflowStepCompleted,
		Description: fmt.Sprintf("%s completed the %s step for %s.", actor.FullName, task.Stage, doc.Title),
		Metadata:    map[string]string{"stage": string(task.Stage), "new_status": string(newStatus)},
	}); err != nil {
		return nil, err
	}

	s.notify(ctx, doc, next)

	log.Printf("workflowService.CompleteTask: document %s advanced to %s", doc.ID, newStatus)
	return task, nil
}

// notify emails the people responsible for what comes next. Delivery
// failures are logged, never surfaced: notification is best effort and must
// not roll back a completed step.
func (s *workflowService) notify(ctx context.Context, doc *domain.DocumentRecord, next *domain.WorkflowTask) {
	if s.email == nil {
		return
	}
	if next == nil {
		users, err := s.userRepo.ListByRole(ctx, doc.IssuerRole)
		if err != nil {
			log.Printf("workflowService.notify: listing %s users: %v", doc.IssuerRole, err)
			return
		}
		for _, u := range users {
			if err := s.email.SendDocumentEffective(ctx, u.Email, u.FullName, doc.Title, doc.DocumentNumber); err != nil {
				log.Printf("workflowService.notify: effective notice to %s: %v", u.Email, err)
			}
		}
		return
	}
	users, err := s.userRepo.ListByRole(ctx, next.Role)
	if err != nil {
		log.Printf("workflowService.notify: listing %s users: %v", next.Role, err)
		return
	}
	for _, u := range users {
		if err := s.email.SendTaskReady(ctx, u.Email, u.FullName, doc.Title, doc.DocumentNumber, string(next.Stage), next.DueDate); err != nil {
			log.Printf("workflowService.notify: task notice to %s: %v", u.Email, err)
		}
	}
}

// defaultMeaningForStage is the signature meaning a step requires when the
// template does not name one. Early stages gate on Review signatures, the
// approval and release stages on Approval signatures.
func defaultMeaningForStage(stage domain.WorkflowStage) domain.SignatureMeaning {
	switch stage {
	case domain.StageApproval, domain.StageRelease:
		return domain.MeaningApproval
	default:
		return domain.MeaningReview
	}
}

func countSignatures(v *domain.DocumentVersion, meaning domain.SignatureMeaning) int {
	n := 0
	for _, sig := range v.SignedOffBy {
		if sig.Meaning == meaning {
			n++
		}
	}
	return n
}

func latestSignature(v *domain.DocumentVersion, meaning domain.SignatureMeaning) *domain.ElectronicSignature {
	for i := len(v.SignedOffBy) - 1; i >= 0; i-- {
		if v.SignedOffBy[i].Meaning == meaning {
			return &v.SignedOffBy[i]
		}
	}
	return nil
}

// nextPendingStep returns the lowest-index task still pending after done
// closes, or nil when done was the final step.
func nextPendingStep(tasks []domain.WorkflowTask, done *domain.WorkflowTask) *domain.WorkflowTask {
	var next *domain.WorkflowTask
	for i := range tasks {
		t := &tasks[i]
		if t.ID == done.ID || t.Status == domain.TaskCompleted {
			continue
		}
		if next == nil || t.StepIndex < next.StepIndex {
			next = t
		}
	}
	return next
}
