package service

import (
	"context"

	"github.com/google/uuid"

	"veridoc/internal/domain"
	"veridoc/internal/port"
)

// IdentityService resolves acting users and their role permission sets. It
// is read-only and safe for unsynchronized concurrent use.
type IdentityService interface {
	ResolveActor(ctx context.Context, actorID uuid.UUID) (*domain.User, error)
	PermissionsOf(ctx context.Context, role domain.UserRole) (*domain.RoleDefinition, error)
	HasPermission(ctx context.Context, role domain.UserRole, perm domain.Permission) (bool, error)
}

type identityService struct {
	userRepo port.UserRepository
	roleRepo port.RoleRepository
}

// NewIdentityService creates a new IdentityService implementation.
func NewIdentityService(userRepo port.UserRepository, roleRepo port.RoleRepository) IdentityService {
	return &identityService{userRepo: userRepo, roleRepo: roleRepo}
}

func (s *identityService) ResolveActor(ctx context.Context, actorID uuid.UUID) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, actorID)
}

func (s *identityService) PermissionsOf(ctx context.Context, role domain.UserRole) (*domain.RoleDefinition, error) {
	return s.roleRepo.GetByName(ctx, role)
}

func (s *identityService) HasPermission(ctx context.Context, role domain.UserRole, perm domain.Permission) (bool, error) {
	def, err := s.roleRepo.GetByName(ctx, role)
	if err != nil {
		return false, err
	}
	return def.HasPermission(perm), nil
}
