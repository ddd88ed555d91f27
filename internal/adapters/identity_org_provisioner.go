// Package adapters contains anti-corruption adapters for cross-module
// communication, so each bounded context depends only on its own interfaces.
package adapters

import (
	"context"

	authrepo "accounts_backend/internal/auth/repository"
	authservice "accounts_backend/internal/auth/service"
	identityservice "accounts_backend/internal/identity/service"

	"github.com/google/uuid"
)

// IdentityOrgProvisioner adapts the identity service to the auth module's
// OrganizationProvisioner port used during registration.
type IdentityOrgProvisioner struct {
	svc *identityservice.Service
}

func NewIdentityOrgProvisioner(svc *identityservice.Service) *IdentityOrgProvisioner {
	return &IdentityOrgProvisioner{svc: svc}
}

// ProvisionDefaultOrganization forwards to the identity service. The auth and
// identity DBTX interfaces share the same method set, so the registration
// transaction flows through unchanged.
func (a *IdentityOrgProvisioner) ProvisionDefaultOrganization(ctx context.Context, q authrepo.DBTX, userID uuid.UUID, firstName string) (authservice.DefaultOrganization, error) {
	org, err := a.svc.ProvisionDefaultOrganization(ctx, q, userID, firstName)
	if err != nil {
		return authservice.DefaultOrganization{}, err
	}
	return authservice.DefaultOrganization{
		ID:          org.ID,
		Name:        org.Name,
		Description: org.Description,
	}, nil
}

var _ authservice.OrganizationProvisioner = (*IdentityOrgProvisioner)(nil)
