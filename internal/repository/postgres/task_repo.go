package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"veridoc/internal/domain"
	"veridoc/internal/port"
)

type taskRepo struct {
	db *sqlx.DB
}

// NewTaskRepo creates a new PostgreSQL-backed TaskRepository.
func NewTaskRepo(db *sqlx.DB) port.TaskRepository {
	return &taskRepo{db: db}
}

func (r *taskRepo) CreateBatch(ctx context.Context, tasks []domain.WorkflowTask) error {
	if len(tasks) == 0 {
		return nil
	}
	query := `INSERT INTO workflow_tasks (id, document_id, step_index, stage, assigned_to, role,
		due_date, status, signature_id, created_at, updated_at)
		VALUES (:id, :document_id, :step_index, :stage, :assigned_to, :role,
		:due_date, :status, :signature_id, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, tasks); err != nil {
		return fmt.Errorf("taskRepo.CreateBatch: %w", err)
	}
	return nil
}

func (r *taskRepo) ListByDocument(ctx context.Context, documentID uuid.UUID) ([]domain.WorkflowTask, error) {
	var tasks []domain.WorkflowTask
	err := r.db.SelectContext(ctx, &tasks,
		"SELECT * FROM workflow_tasks WHERE document_id = $1 ORDER BY step_index ASC", documentID)
	if err != nil {
		return nil, fmt.Errorf("taskRepo.ListByDocument: %w", err)
	}
	return tasks, nil
}

func (r *taskRepo) GetByID(ctx context.Context, documentID, taskID uuid.UUID) (*domain.WorkflowTask, error) {
	var task domain.WorkflowTask
	err := r.db.GetContext(ctx, &task,
		"SELECT * FROM workflow_tasks WHERE id = $1 AND document_id = $2", taskID, documentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("taskRepo.GetByID: %w", err)
	}
	return &task, nil
}

func (r *taskRepo) Update(ctx context.Context, task *domain.WorkflowTask) error {
	task.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE workflow_tasks SET status = $1, signature_id = $2, assigned_to = $3, updated_at = $4
		 WHERE id = $5 AND document_id = $6`,
		task.Status, task.SignatureID, task.AssignedTo, task.UpdatedAt, task.ID, task.DocumentID)
	if err != nil {
		return fmt.Errorf("taskRepo.Update: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("taskRepo.Update: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
