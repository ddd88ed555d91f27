package repository

import (
	"context"

	"github.com/google/uuid"
)

// AuthRepository defines the interface for user identity data operations.
// Services depend on this abstraction rather than the concrete pgx
// implementation, which keeps them testable with in-memory fakes.
type AuthRepository interface {
	// RunInTx executes fn inside one transaction; writes made through the
	// provided DBTX are rolled back if fn fails.
	RunInTx(ctx context.Context, fn func(q DBTX) error) error

	CreateUser(ctx context.Context, q DBTX, firstName, lastName, email, passwordHash string, phone *string) (User, error)
	GetUserByEmail(ctx context.Context, email string) (User, error)
	GetUserByID(ctx context.Context, userID uuid.UUID) (User, error)
}

// Ensure Repository implements AuthRepository
var _ AuthRepository = (*Repository)(nil)
