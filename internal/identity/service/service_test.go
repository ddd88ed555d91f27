package service

import (
	"context"
	"testing"
	"time"

	"accounts_backend/internal/events"
	"accounts_backend/internal/identity/repository"
	"accounts_backend/platform/apperr"
	"accounts_backend/platform/logger"

	"github.com/google/uuid"
)

type membership struct {
	orgID  uuid.UUID
	userID uuid.UUID
}

// fakeIdentityRepo is an in-memory IdentityRepository. Writes made during
// RunInTx are staged and only become visible when the callback succeeds.
type fakeIdentityRepo struct {
	orgs    map[uuid.UUID]repository.Organization
	members []membership

	stagedOrgs    []repository.Organization
	stagedMembers []membership
}

func newFakeIdentityRepo() *fakeIdentityRepo {
	return &fakeIdentityRepo{orgs: make(map[uuid.UUID]repository.Organization)}
}

func (r *fakeIdentityRepo) RunInTx(_ context.Context, fn func(q repository.DBTX) error) error {
	r.stagedOrgs, r.stagedMembers = nil, nil
	if err := fn(nil); err != nil {
		r.stagedOrgs, r.stagedMembers = nil, nil
		return err
	}
	for _, org := range r.stagedOrgs {
		r.orgs[org.ID] = org
	}
	r.members = append(r.members, r.stagedMembers...)
	r.stagedOrgs, r.stagedMembers = nil, nil
	return nil
}

func (r *fakeIdentityRepo) CreateOrganization(_ context.Context, _ repository.DBTX, name, description string) (repository.Organization, error) {
	org := repository.Organization{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	r.stagedOrgs = append(r.stagedOrgs, org)
	return org, nil
}

func (r *fakeIdentityRepo) GetOrganization(_ context.Context, organizationID uuid.UUID) (repository.Organization, error) {
	org, ok := r.orgs[organizationID]
	if !ok {
		return repository.Organization{}, repository.ErrNotFound
	}
	return org, nil
}

func (r *fakeIdentityRepo) AddMember(_ context.Context, _ repository.DBTX, organizationID, userID uuid.UUID) error {
	for _, m := range append(r.members, r.stagedMembers...) {
		if m.orgID == organizationID && m.userID == userID {
			return repository.ErrAlreadyMember
		}
	}
	r.stagedMembers = append(r.stagedMembers, membership{orgID: organizationID, userID: userID})
	return nil
}

func (r *fakeIdentityRepo) IsMember(_ context.Context, organizationID, userID uuid.UUID) (bool, error) {
	for _, m := range r.members {
		if m.orgID == organizationID && m.userID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeIdentityRepo) ListUserOrganizations(_ context.Context, userID uuid.UUID) ([]repository.Organization, error) {
	var out []repository.Organization
	for _, m := range r.members {
		if m.userID == userID {
			out = append(out, r.orgs[m.orgID])
		}
	}
	return out, nil
}

func (r *fakeIdentityRepo) ListMembers(_ context.Context, organizationID uuid.UUID) ([]repository.Member, error) {
	var out []repository.Member
	for _, m := range r.members {
		if m.orgID == organizationID {
			out = append(out, repository.Member{UserID: m.userID})
		}
	}
	return out, nil
}

type fakeUserDirectory struct {
	known map[uuid.UUID]bool
}

func (d *fakeUserDirectory) UserExists(_ context.Context, userID uuid.UUID) (bool, error) {
	return d.known[userID], nil
}

func newTestService() (*Service, *fakeIdentityRepo, *fakeUserDirectory) {
	repo := newFakeIdentityRepo()
	users := &fakeUserDirectory{known: make(map[uuid.UUID]bool)}
	log := logger.New("test")
	svc := New(repo, users, events.NewInMemoryBus(log), log)
	return svc, repo, users
}

// provision runs ProvisionDefaultOrganization inside a transaction the way the
// registration flow does.
func provision(t *testing.T, svc *Service, repo *fakeIdentityRepo, userID uuid.UUID, firstName string) repository.Organization {
	t.Helper()
	var org repository.Organization
	err := repo.RunInTx(context.Background(), func(q repository.DBTX) error {
		var txErr error
		org, txErr = svc.ProvisionDefaultOrganization(context.Background(), q, userID, firstName)
		return txErr
	})
	if err != nil {
		t.Fatalf("provisioning failed: %v", err)
	}
	return org
}

func TestProvisionDefaultOrganization(t *testing.T) {
	svc, repo, _ := newTestService()
	userID := uuid.New()

	org := provision(t, svc, repo, userID, "Ada")

	if org.Name != "Ada's Organisation" {
		t.Fatalf("unexpected name %q", org.Name)
	}
	if org.Description != "Default description" {
		t.Fatalf("unexpected description %q", org.Description)
	}

	member, err := repo.IsMember(context.Background(), org.ID, userID)
	if err != nil || !member {
		t.Fatalf("new user must be linked to the default organization (member=%v err=%v)", member, err)
	}
}

func TestGetOrganizationDeniesNonMembersUniformly(t *testing.T) {
	svc, repo, _ := newTestService()
	owner := uuid.New()
	outsider := uuid.New()
	org := provision(t, svc, repo, owner, "Ada")

	// Existing organization, non-member caller.
	_, existingErr := svc.GetOrganization(context.Background(), outsider, org.ID)
	// Organization that does not exist at all.
	_, missingErr := svc.GetOrganization(context.Background(), outsider, uuid.New())

	if !apperr.Is(existingErr, apperr.KindForbidden) || !apperr.Is(missingErr, apperr.KindForbidden) {
		t.Fatalf("expected forbidden for both, got %v and %v", existingErr, missingErr)
	}
	if existingErr.Error() != missingErr.Error() {
		t.Fatal("denial must not reveal whether the organisation exists")
	}

	got, err := svc.GetOrganization(context.Background(), owner, org.ID)
	if err != nil {
		t.Fatalf("member lookup failed: %v", err)
	}
	if got.ID != org.ID {
		t.Fatal("member must see the organization")
	}
}

func TestCreateOrganizationLinksCreator(t *testing.T) {
	svc, repo, _ := newTestService()
	creator := uuid.New()

	org, err := svc.CreateOrganization(context.Background(), creator, "Research Group", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if org.Description != "Default description" {
		t.Fatalf("missing description must fall back to the placeholder, got %q", org.Description)
	}

	member, err := repo.IsMember(context.Background(), org.ID, creator)
	if err != nil || !member {
		t.Fatal("creator must be a member of the new organization")
	}

	orgs, err := svc.ListOrganizations(context.Background(), creator)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(orgs) != 1 || orgs[0].ID != org.ID {
		t.Fatalf("expected the new organization in the creator's list, got %v", orgs)
	}
}

func TestAddMember(t *testing.T) {
	svc, repo, users := newTestService()
	owner := uuid.New()
	newcomer := uuid.New()
	outsider := uuid.New()
	users.known[newcomer] = true
	org := provision(t, svc, repo, owner, "Ada")

	// Caller outside the organization cannot add anyone.
	err := svc.AddMember(context.Background(), outsider, org.ID, newcomer)
	if !apperr.Is(err, apperr.KindForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}

	// Target user must exist.
	err = svc.AddMember(context.Background(), owner, org.ID, uuid.New())
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	if err := svc.AddMember(context.Background(), owner, org.ID, newcomer); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Linking twice conflicts.
	err = svc.AddMember(context.Background(), owner, org.ID, newcomer)
	if !apperr.Is(err, apperr.KindConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}

	members, err := svc.ListMembers(context.Background(), owner, org.ID)
	if err != nil {
		t.Fatalf("list members failed: %v", err)
	}
	if len(members) != 2 {
		t.Fatalf("expected owner and newcomer, got %d members", len(members))
	}
}

func TestListMembersRequiresMembership(t *testing.T) {
	svc, repo, _ := newTestService()
	owner := uuid.New()
	org := provision(t, svc, repo, owner, "Ada")

	_, err := svc.ListMembers(context.Background(), uuid.New(), org.ID)
	if !apperr.Is(err, apperr.KindForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}
