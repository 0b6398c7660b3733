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

type roleRepo struct {
	db *sqlx.DB
}

// NewRoleRepo creates a new PostgreSQL-backed RoleRepository.
func NewRoleRepo(db *sqlx.DB) port.RoleRepository {
	return &roleRepo{db: db}
}

type roleRow struct {
	ID          uuid.UUID       `db:"id"`
	Name        domain.UserRole `db:"name"`
	Description string          `db:"description"`
	Permissions json.RawMessage `db:"permissions"`
}

func (row *roleRow) toDomain() (*domain.RoleDefinition, error) {
	var raw []string
	if err := json.Unmarshal(row.Permissions, &raw); err != nil {
		return nil, fmt.Errorf("unmarshaling permissions for role %q: %w", row.Name, err)
	}
	def := &domain.RoleDefinition{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Permissions: make([]domain.Permission, 0, len(raw)),
	}
	for _, p := range raw {
		perm := domain.Permission(p)
		if !domain.ValidPermissions[perm] {
			return nil, fmt.Errorf("role %q carries unrecognized permission %q", row.Name, p)
		}
		def.Permissions = append(def.Permissions, perm)
	}
	return def, nil
}

func (r *roleRepo) GetByName(ctx context.Context, name domain.UserRole) (*domain.RoleDefinition, error) {
	var row roleRow
	err := r.db.GetContext(ctx, &row, "SELECT * FROM roles WHERE name = $1", name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("roleRepo.GetByName: %w", err)
	}
	return row.toDomain()
}

func (r *roleRepo) List(ctx context.Context) ([]domain.RoleDefinition, error) {
	var rows []roleRow
	if err := r.db.SelectContext(ctx, &rows, "SELECT * FROM roles ORDER BY name ASC"); err != nil {
		return nil, fmt.Errorf("roleRepo.List: %w", err)
	}
	defs := make([]domain.RoleDefinition, 0, len(rows))
	for i := range rows {
		def, err := rows[i].toDomain()
		if err != nil {
			return nil, fmt.Errorf("roleRepo.List: %w", err)
		}
		defs = append(defs, *def)
	}
	return defs, nil
}
