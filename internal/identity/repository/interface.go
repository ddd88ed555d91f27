package repository

import (
	"context"

	"github.com/google/uuid"
)

// IdentityRepository defines the interface for organization and membership
// data operations. Services depend on this abstraction rather than the
// concrete pgx implementation.
type IdentityRepository interface {
	// RunInTx executes fn inside one transaction; writes made through the
	// provided DBTX are rolled back if fn fails.
	RunInTx(ctx context.Context, fn func(q DBTX) error) error

	CreateOrganization(ctx context.Context, q DBTX, name, description string) (Organization, error)
	GetOrganization(ctx context.Context, organizationID uuid.UUID) (Organization, error)

	AddMember(ctx context.Context, q DBTX, organizationID, userID uuid.UUID) error
	IsMember(ctx context.Context, organizationID, userID uuid.UUID) (bool, error)
	ListUserOrganizations(ctx context.Context, userID uuid.UUID) ([]Organization, error)
	ListMembers(ctx context.Context, organizationID uuid.UUID) ([]Member, error)
}

// Ensure Repository implements IdentityRepository
var _ IdentityRepository = (*Repository)(nil)
