package service

import (
	"context"
	"fmt"

	"github.com/fedcourts/docket-engine/internal/core/entity"
	"github.com/fedcourts/docket-engine/internal/core/port"
	"github.com/fedcourts/docket-engine/internal/core/usecase"
)

// NewTenantService creates a new tenant (court) resolution service.
func NewTenantService(courtRepo port.CourtRepository) usecase.TenantUseCase {
	return &TenantService{courtRepo: courtRepo}
}

// TenantService implements the Tenant Guard's court lookup.
type TenantService struct {
	courtRepo port.CourtRepository
}

// ResolveCourt looks up the court identified by courtCode.
func (s *TenantService) ResolveCourt(ctx context.Context, courtCode string) (*entity.Court, error) {
	if courtCode == "" {
		return nil, entity.ErrMissingCourtDistrict
	}
	court, err := s.courtRepo.FindByCode(ctx, courtCode)
	if err != nil {
		return nil, fmt.Errorf("resolving court %s: %w", courtCode, err)
	}
	return court, nil
}

// ListCourts returns every registered court.
func (s *TenantService) ListCourts(ctx context.Context) ([]*entity.Court, error) {
	courts, err := s.courtRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing courts: %w", err)
	}
	return courts, nil
}

// NewRoleResolverService creates a new role resolver service.
func NewRoleResolverService() usecase.RoleResolverUseCase {
	return &RoleResolverService{}
}

// RoleResolverService implements the Role Resolver's pure resolution rule:
// global Admin wins outright, otherwise the principal's per-court grant
// applies, and an absent entry resolves to Public.
type RoleResolverService struct{}

// Resolve computes the effective role for principal within courtID.
func (s *RoleResolverService) Resolve(_ context.Context, principal *entity.Principal, courtID string) entity.Role {
	if principal == nil {
		return entity.RolePublic
	}
	return principal.ResolveRole(courtID)
}
