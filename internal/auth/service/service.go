package service

import (
	"context"
	"errors"
	"strings"

	"accounts_backend/internal/auth/password"
	"accounts_backend/internal/auth/repository"
	"accounts_backend/internal/auth/token"
	"accounts_backend/internal/events"
	"accounts_backend/platform/apperr"
	"accounts_backend/platform/config"
	"accounts_backend/platform/logger"
	"accounts_backend/platform/phone"
	"accounts_backend/platform/sanitize"

	"github.com/google/uuid"
)

const (
	msgRegistrationFailed = "Registration unsuccessful"
	msgAuthFailed         = "Authentication failed"
	msgUserAccessDenied   = "You are not allowed to view this user"
)

// DefaultOrganization describes the organization provisioned for a new user.
type DefaultOrganization struct {
	ID          uuid.UUID
	Name        string
	Description string
}

// OrganizationProvisioner creates a user's default organization and links the
// user to it. The implementation must perform its writes through q so they
// commit or roll back together with the user insert.
type OrganizationProvisioner interface {
	ProvisionDefaultOrganization(ctx context.Context, q repository.DBTX, userID uuid.UUID, firstName string) (DefaultOrganization, error)
}

type Service struct {
	repo repository.AuthRepository
	orgs OrganizationProvisioner
	cfg  config.AuthServiceConfig
	bus  events.Bus
	log  *logger.Logger
}

func New(repo repository.AuthRepository, orgs OrganizationProvisioner, cfg config.AuthServiceConfig, bus events.Bus, log *logger.Logger) *Service {
	return &Service{repo: repo, orgs: orgs, cfg: cfg, bus: bus, log: log}
}

// RegisterInput carries the validated registration fields.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Phone     *string
}

// RegisterResult is returned on successful registration.
type RegisterResult struct {
	User         repository.User
	Organization DefaultOrganization
	AccessToken  string
}

// Register creates a user, their default organization, and the membership
// linking the two in one transaction, then issues an access token. If any
// step fails nothing is persisted.
func (s *Service) Register(ctx context.Context, in RegisterInput) (RegisterResult, error) {
	passwordHash, err := password.Hash(in.Password)
	if err != nil {
		return RegisterResult{}, apperr.Wrap(apperr.KindInternal, msgRegistrationFailed, err)
	}

	firstName := sanitize.Text(in.FirstName)
	lastName := sanitize.Text(in.LastName)
	email := strings.TrimSpace(in.Email)
	phoneNumber := normalizePhone(in.Phone, s.cfg.GetPhoneDefaultRegion())

	var user repository.User
	var org DefaultOrganization
	err = s.repo.RunInTx(ctx, func(q repository.DBTX) error {
		var txErr error
		user, txErr = s.repo.CreateUser(ctx, q, firstName, lastName, email, passwordHash, phoneNumber)
		if txErr != nil {
			return txErr
		}

		org, txErr = s.orgs.ProvisionDefaultOrganization(ctx, q, user.ID, user.FirstName)
		return txErr
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			s.log.AuthEvent("register", email, false, "duplicate email")
			return RegisterResult{}, apperr.Conflict(msgRegistrationFailed)
		}
		s.log.DatabaseError("register", err)
		return RegisterResult{}, apperr.Wrap(apperr.KindInternal, msgRegistrationFailed, err)
	}

	accessToken, err := token.IssueAccessToken(user.ID, s.cfg.GetJWTAccessSecret(), s.cfg.GetAccessTokenTTL())
	if err != nil {
		return RegisterResult{}, apperr.Wrap(apperr.KindInternal, msgRegistrationFailed, err)
	}

	s.log.AuthEvent("register", email, true, "")
	s.bus.Publish(ctx, events.UserRegistered{
		BaseEvent:      events.NewBaseEvent(),
		UserID:         user.ID,
		Email:          user.Email,
		OrganizationID: org.ID,
	})

	return RegisterResult{User: user, Organization: org, AccessToken: accessToken}, nil
}

// Login verifies an email/password pair and issues an access token. Unknown
// email and wrong password fail identically so accounts cannot be enumerated.
func (s *Service) Login(ctx context.Context, email, plainPassword string) (repository.User, string, error) {
	user, err := s.repo.GetUserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.log.DatabaseError("login", err)
		}
		s.log.AuthEvent("login", email, false, "invalid credentials")
		return repository.User{}, "", apperr.Unauthorized(msgAuthFailed)
	}

	if err := password.Compare(user.PasswordHash, plainPassword); err != nil {
		s.log.AuthEvent("login", email, false, "invalid credentials")
		return repository.User{}, "", apperr.Unauthorized(msgAuthFailed)
	}

	accessToken, err := token.IssueAccessToken(user.ID, s.cfg.GetJWTAccessSecret(), s.cfg.GetAccessTokenTTL())
	if err != nil {
		return repository.User{}, "", apperr.Wrap(apperr.KindInternal, msgAuthFailed, err)
	}

	s.log.AuthEvent("login", email, true, "")
	s.bus.Publish(ctx, events.UserLoggedIn{
		BaseEvent: events.NewBaseEvent(),
		UserID:    user.ID,
	})

	return user, accessToken, nil
}

// GetUser returns the target user's record. Callers may only read their own
// record; any other target is denied regardless of whether it exists.
func (s *Service) GetUser(ctx context.Context, callerID, targetID uuid.UUID) (repository.User, error) {
	if callerID != targetID {
		return repository.User{}, apperr.Forbidden(msgUserAccessDenied)
	}

	user, err := s.repo.GetUserByID(ctx, targetID)
	if errors.Is(err, repository.ErrNotFound) {
		return repository.User{}, apperr.NotFound("User not found")
	}
	if err != nil {
		s.log.DatabaseError("getUser", err)
		return repository.User{}, apperr.Wrap(apperr.KindInternal, "failed to load user", err)
	}
	return user, nil
}

// FindUserByID resolves a user id for other modules (e.g. membership checks).
func (s *Service) FindUserByID(ctx context.Context, userID uuid.UUID) (repository.User, error) {
	return s.repo.GetUserByID(ctx, userID)
}

func normalizePhone(input *string, region string) *string {
	if input == nil {
		return nil
	}
	normalized := phone.NormalizeE164(*input, region)
	if normalized == "" {
		return nil
	}
	return &normalized
}
