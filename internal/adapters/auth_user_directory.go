package adapters

import (
	"context"
	"errors"

	authrepo "accounts_backend/internal/auth/repository"
	authservice "accounts_backend/internal/auth/service"
	identityservice "accounts_backend/internal/identity/service"

	"github.com/google/uuid"
)

// AuthUserDirectory adapts the auth service to the identity module's
// UserDirectory port used to validate add-member targets.
type AuthUserDirectory struct {
	svc *authservice.Service
}

func NewAuthUserDirectory(svc *authservice.Service) *AuthUserDirectory {
	return &AuthUserDirectory{svc: svc}
}

func (a *AuthUserDirectory) UserExists(ctx context.Context, userID uuid.UUID) (bool, error) {
	_, err := a.svc.FindUserByID(ctx, userID)
	if errors.Is(err, authrepo.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

var _ identityservice.UserDirectory = (*AuthUserDirectory)(nil)
