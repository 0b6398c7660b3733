package port

import (
	"context"

	"github.com/google/uuid"

	"veridoc/internal/domain"
)

// UserRepository defines the contract for user credential persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ListByRole(ctx context.Context, role domain.UserRole) ([]domain.User, error)
}

// RoleRepository defines the contract for role definition lookups. Role
// definitions are read-only at runtime and safe for concurrent access.
type RoleRepository interface {
	GetByName(ctx context.Context, name domain.UserRole) (*domain.RoleDefinition, error)
	List(ctx context.Context) ([]domain.RoleDefinition, error)
}
