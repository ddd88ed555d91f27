package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("not found")
var ErrAlreadyMember = errors.New("user already belongs to this organization")

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// DBTX is the subset of pgx operations shared by the pool and transactions,
// allowing repository methods to participate in a caller-managed transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

type Organization struct {
	ID          uuid.UUID
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Member is a user row as seen through an organization's membership.
type Member struct {
	UserID    uuid.UUID
	FirstName string
	LastName  string
	Email     string
}

const listUserOrganizationsQuery = `
	SELECT o.id, o.name, o.description, o.created_at, o.updated_at
	FROM organizations o
	JOIN organization_members om ON om.organization_id = o.id
	WHERE om.user_id = $1
	ORDER BY o.created_at
`

const listMembersQuery = `
	SELECT u.id, u.first_name, u.last_name, u.email
	FROM users u
	JOIN organization_members om ON om.user_id = u.id
	WHERE om.organization_id = $1
	ORDER BY om.created_at
`

// RunInTx executes fn inside a single transaction. The transaction is rolled
// back if fn returns an error.
func (r *Repository) RunInTx(ctx context.Context, fn func(q DBTX) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if err := fn(tx); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *Repository) CreateOrganization(ctx context.Context, q DBTX, name, description string) (Organization, error) {
	var org Organization
	err := q.QueryRow(ctx, `
		INSERT INTO organizations (name, description)
		VALUES ($1, $2)
		RETURNING id, name, description, created_at, updated_at
	`, name, description).Scan(&org.ID, &org.Name, &org.Description, &org.CreatedAt, &org.UpdatedAt)
	return org, err
}

func (r *Repository) GetOrganization(ctx context.Context, organizationID uuid.UUID) (Organization, error) {
	var org Organization
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, description, created_at, updated_at
		FROM organizations
		WHERE id = $1
	`, organizationID).Scan(&org.ID, &org.Name, &org.Description, &org.CreatedAt, &org.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Organization{}, ErrNotFound
	}
	return org, err
}

// AddMember links a user to an organization. The composite primary key on
// (organization_id, user_id) is the final arbiter under concurrent inserts:
// the losing writer gets ErrAlreadyMember. A foreign key violation means the
// user or organization does not exist and surfaces as ErrNotFound.
func (r *Repository) AddMember(ctx context.Context, q DBTX, organizationID, userID uuid.UUID) error {
	_, err := q.Exec(ctx, `
		INSERT INTO organization_members (organization_id, user_id)
		VALUES ($1, $2)
	`, organizationID, userID)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return ErrAlreadyMember
		case pgForeignKeyViolation:
			return ErrNotFound
		}
	}
	return err
}

// IsMember reports whether the (organization, user) membership pair exists.
func (r *Repository) IsMember(ctx context.Context, organizationID, userID uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM organization_members
			WHERE organization_id = $1 AND user_id = $2
		)
	`, organizationID, userID).Scan(&exists)
	return exists, err
}

// ListUserOrganizations returns every organization the user belongs to.
func (r *Repository) ListUserOrganizations(ctx context.Context, userID uuid.UUID) ([]Organization, error) {
	rows, err := r.pool.Query(ctx, listUserOrganizationsQuery, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orgs := make([]Organization, 0)
	for rows.Next() {
		var org Organization
		if err := rows.Scan(&org.ID, &org.Name, &org.Description, &org.CreatedAt, &org.UpdatedAt); err != nil {
			return nil, err
		}
		orgs = append(orgs, org)
	}
	return orgs, rows.Err()
}

// ListMembers returns every user linked to the organization.
func (r *Repository) ListMembers(ctx context.Context, organizationID uuid.UUID) ([]Member, error) {
	rows, err := r.pool.Query(ctx, listMembersQuery, organizationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := make([]Member, 0)
	for rows.Next() {
		var m Member
		if err := rows.Scan(&m.UserID, &m.FirstName, &m.LastName, &m.Email); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}
