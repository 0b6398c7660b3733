package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"veridoc/internal/domain"
	"veridoc/internal/port"
)

type templateRepo struct {
	db *sqlx.DB
}

// NewTemplateRepo creates a new PostgreSQL-backed TemplateRepository.
func NewTemplateRepo(db *sqlx.DB) port.TemplateRepository {
	return &templateRepo{db: db}
}

type templateRow struct {
	ID        uuid.UUID       `db:"id"`
	Name      string          `db:"name"`
	IsDefault bool            `db:"is_default"`
	Steps     json.RawMessage `db:"steps"`
}

func (row *templateRow) toDomain() (*domain.WorkflowTemplate, error) {
	tpl := &domain.WorkflowTemplate{
		ID:        row.ID,
		Name:      row.Name,
		IsDefault: row.IsDefault,
	}
	if err := json.Unmarshal(row.Steps, &tpl.Steps); err != nil {
		return nil, fmt.Errorf("unmarshaling steps for template %q: %w", row.Name, err)
	}
	return tpl, nil
}

func (r *templateRepo) Create(ctx context.Context, tpl *domain.WorkflowTemplate) error {
	if tpl.ID == uuid.Nil {
		tpl.ID = uuid.New()
	}
	steps, err := json.Marshal(tpl.Steps)
	if err != nil {
		return fmt.Errorf("templateRepo.Create: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		"INSERT INTO workflow_templates (id, name, is_default, steps) VALUES ($1, $2, $3, $4)",
		tpl.ID, tpl.Name, tpl.IsDefault, steps)
	if err != nil {
		return fmt.Errorf("templateRepo.Create: %w", err)
	}
	return nil
}

func (r *templateRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.WorkflowTemplate, error) {
	var row templateRow
	err := r.db.GetContext(ctx, &row, "SELECT * FROM workflow_templates WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("templateRepo.GetByID: %w", err)
	}
	return row.toDomain()
}

func (r *templateRepo) GetDefault(ctx context.Context) (*domain.WorkflowTemplate, error) {
	var row templateRow
	err := r.db.GetContext(ctx, &row, "SELECT * FROM workflow_templates WHERE is_default LIMIT 1")
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("templateRepo.GetDefault: %w", err)
	}
	return row.toDomain()
}

func (r *templateRepo) List(ctx context.Context) ([]domain.WorkflowTemplate, error) {
	var rows []templateRow
	if err := r.db.SelectContext(ctx, &rows, "SELECT * FROM workflow_templates ORDER BY name ASC"); err != nil {
		return nil, fmt.Errorf("templateRepo.List: %w", err)
	}
	tpls := make([]domain.WorkflowTemplate, 0, len(rows))
	for i := range rows {
		tpl, err := rows[i].toDomain()
		if err != nil {
			return nil, fmt.Errorf("templateRepo.List: %w", err)
		}
		tpls = append(tpls, *tpl)
	}
	return tpls, nil
}
