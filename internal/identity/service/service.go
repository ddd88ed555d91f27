package service

import (
	"context"
	"errors"
	"fmt"

	"accounts_backend/internal/events"
	"accounts_backend/internal/identity/repository"
	"accounts_backend/platform/apperr"
	"accounts_backend/platform/logger"
	"accounts_backend/platform/sanitize"

	"github.com/google/uuid"
)

const (
	// defaultDescription matches the placeholder the original API used for
	// organizations created without a description.
	defaultDescription = "Default description"

	msgOrgAccessDenied = "You do not have access to this organisation"
	msgUserNotFound    = "User not found"
	msgAlreadyMember   = "User already belongs to this organization"
)

// UserDirectory resolves user ids owned by the auth module. Used to validate
// the target user when adding a member.
type UserDirectory interface {
	UserExists(ctx context.Context, userID uuid.UUID) (bool, error)
}

type Service struct {
	repo  repository.IdentityRepository
	users UserDirectory
	bus   events.Bus
	log   *logger.Logger
}

func New(repo repository.IdentityRepository, users UserDirectory, bus events.Bus, log *logger.Logger) *Service {
	return &Service{repo: repo, users: users, bus: bus, log: log}
}

// SetUserDirectory wires the auth-module lookup after construction. The auth
// module itself depends on this service for registration, so one side of the
// cycle is injected late from the composition root.
func (s *Service) SetUserDirectory(users UserDirectory) {
	s.users = users
}

// ProvisionDefaultOrganization creates the "{firstName}'s Organisation" record
// for a newly registered user and links the user to it. Writes go through q
// so they commit or roll back together with the caller's user insert.
func (s *Service) ProvisionDefaultOrganization(ctx context.Context, q repository.DBTX, userID uuid.UUID, firstName string) (repository.Organization, error) {
	name := fmt.Sprintf("%s's Organisation", firstName)

	org, err := s.repo.CreateOrganization(ctx, q, name, defaultDescription)
	if err != nil {
		return repository.Organization{}, err
	}

	if err := s.repo.AddMember(ctx, q, org.ID, userID); err != nil {
		return repository.Organization{}, err
	}

	return org, nil
}

// ListOrganizations returns the organizations the caller belongs to.
func (s *Service) ListOrganizations(ctx context.Context, callerID uuid.UUID) ([]repository.Organization, error) {
	orgs, err := s.repo.ListUserOrganizations(ctx, callerID)
	if err != nil {
		s.log.DatabaseError("listOrganizations", err)
		return nil, apperr.Wrap(apperr.KindInternal, "failed to load organisations", err)
	}
	return orgs, nil
}

// GetOrganization returns an organization the caller is a member of.
// Non-members are denied uniformly, whether or not the organization exists,
// so responses never leak which ids are taken.
func (s *Service) GetOrganization(ctx context.Context, callerID, orgID uuid.UUID) (repository.Organization, error) {
	member, err := s.repo.IsMember(ctx, orgID, callerID)
	if err != nil {
		s.log.DatabaseError("getOrganization", err)
		return repository.Organization{}, apperr.Wrap(apperr.KindInternal, "failed to load organisation", err)
	}
	if !member {
		return repository.Organization{}, apperr.Forbidden(msgOrgAccessDenied)
	}

	org, err := s.repo.GetOrganization(ctx, orgID)
	if err != nil {
		s.log.DatabaseError("getOrganization", err)
		return repository.Organization{}, apperr.Wrap(apperr.KindInternal, "failed to load organisation", err)
	}
	return org, nil
}

// CreateOrganization creates an organization and links the caller as its
// first member in one transaction.
func (s *Service) CreateOrganization(ctx context.Context, callerID uuid.UUID, name string, description *string) (repository.Organization, error) {
	cleanName := sanitize.Text(name)
	desc := defaultDescription
	if description != nil {
		if cleaned := sanitize.Text(*description); cleaned != "" {
			desc = cleaned
		}
	}

	var org repository.Organization
	err := s.repo.RunInTx(ctx, func(q repository.DBTX) error {
		var txErr error
		org, txErr = s.repo.CreateOrganization(ctx, q, cleanName, desc)
		if txErr != nil {
			return txErr
		}
		return s.repo.AddMember(ctx, q, org.ID, callerID)
	})
	if err != nil {
		s.log.DatabaseError("createOrganization", err)
		return repository.Organization{}, apperr.Wrap(apperr.KindInternal, "failed to create organisation", err)
	}

	s.bus.Publish(ctx, events.OrganizationCreated{
		BaseEvent:      events.NewBaseEvent(),
		OrganizationID: org.ID,
		Name:           org.Name,
		CreatedBy:      callerID,
	})

	return org, nil
}

// AddMember links a user to an organization the caller belongs to.
func (s *Service) AddMember(ctx context.Context, callerID, orgID, newUserID uuid.UUID) error {
	member, err := s.repo.IsMember(ctx, orgID, callerID)
	if err != nil {
		s.log.DatabaseError("addMember", err)
		return apperr.Wrap(apperr.KindInternal, "failed to add member", err)
	}
	if !member {
		return apperr.Forbidden(msgOrgAccessDenied)
	}

	exists, err := s.users.UserExists(ctx, newUserID)
	if err != nil {
		s.log.DatabaseError("addMember", err)
		return apperr.Wrap(apperr.KindInternal, "failed to add member", err)
	}
	if !exists {
		return apperr.NotFound(msgUserNotFound)
	}

	// The existence check above is advisory; the composite key decides races.
	err = s.repo.RunInTx(ctx, func(q repository.DBTX) error {
		return s.repo.AddMember(ctx, q, orgID, newUserID)
	})
	if errors.Is(err, repository.ErrAlreadyMember) {
		return apperr.Conflict(msgAlreadyMember)
	}
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.NotFound(msgUserNotFound)
	}
	if err != nil {
		s.log.DatabaseError("addMember", err)
		return apperr.Wrap(apperr.KindInternal, "failed to add member", err)
	}

	s.bus.Publish(ctx, events.MemberAdded{
		BaseEvent:      events.NewBaseEvent(),
		OrganizationID: orgID,
		UserID:         newUserID,
		AddedBy:        callerID,
	})

	return nil
}

// ListMembers returns the users linked to an organization the caller belongs to.
func (s *Service) ListMembers(ctx context.Context, callerID, orgID uuid.UUID) ([]repository.Member, error) {
	member, err := s.repo.IsMember(ctx, orgID, callerID)
	if err != nil {
		s.log.DatabaseError("listMembers", err)
		return nil, apperr.Wrap(apperr.KindInternal, "failed to load members", err)
	}
	if !member {
		return nil, apperr.Forbidden(msgOrgAccessDenied)
	}

	members, err := s.repo.ListMembers(ctx, orgID)
	if err != nil {
		s.log.DatabaseError("listMembers", err)
		return nil, apperr.Wrap(apperr.KindInternal, "failed to load members", err)
	}
	return members, nil
}
