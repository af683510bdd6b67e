package usecase

import (
	"context"

	"github.com/fedcourts/docket-engine/internal/core/entity"
)

// TenantUseCase defines the input port for resolving the court a request is
// scoped to from its X-Court-District header value.
type TenantUseCase interface {
	// ResolveCourt looks up the court identified by courtCode, the tenant
	// boundary every other repository call is scoped under.
	ResolveCourt(ctx context.Context, courtCode string) (*entity.Court, error)

	// ListCourts returns every registered court (used by admin tooling).
	ListCourts(ctx context.Context) ([]*entity.Court, error)
}

// RoleResolverUseCase defines the input port for computing a requester's
// effective role within a court.
type RoleResolverUseCase interface {
	// Resolve computes the effective role for principal within courtID.
	Resolve(ctx context.Context, principal *entity.Principal, courtID string) entity.Role
}
