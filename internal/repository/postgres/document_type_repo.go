package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"veridoc/internal/domain"
	"veridoc/internal/port"
)

type documentTypeRepo struct {
	db *sqlx.DB
}

// NewDocumentTypeRepo creates a new PostgreSQL-backed DocumentTypeRepository.
// The table has a unique index on LOWER(type) so vocabulary collisions are
// case-insensitive.
func NewDocumentTypeRepo(db *sqlx.DB) port.DocumentTypeRepository {
	return &documentTypeRepo{db: db}
}

func (r *documentTypeRepo) Create(ctx context.Context, docType *domain.DocumentType) error {
	if docType.ID == uuid.Nil {
		docType.ID = uuid.New()
	}
	docType.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO document_types (id, type, description, created_at) VALUES ($1, $2, $3, $4)",
		docType.ID, docType.Type, docType.Description, docType.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return domain.ErrDuplicateType
		}
		return fmt.Errorf("documentTypeRepo.Create: %w", err)
	}
	return nil
}

func (r *documentTypeRepo) GetByType(ctx context.Context, name string) (*domain.DocumentType, error) {
	var docType domain.DocumentType
	err := r.db.GetContext(ctx, &docType,
		"SELECT * FROM document_types WHERE LOWER(type) = LOWER($1)", name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("documentTypeRepo.GetByType: %w", err)
	}
	return &docType, nil
}

func (r *documentTypeRepo) List(ctx context.Context) ([]domain.DocumentType, error) {
	var types []domain.DocumentType
	if err := r.db.SelectContext(ctx, &types, "SELECT * FROM document_types ORDER BY type ASC"); err != nil {
		return nil, fmt.Errorf("documentTypeRepo.List: %w", err)
	}
	return types, nil
}
