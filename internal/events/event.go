// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"accounts_backend/platform/events"

	"github.com/google/uuid"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
)

// Re-export platform functions
var NewBaseEvent = events.NewBaseEvent

// =============================================================================
// Auth Domain Events
// =============================================================================

// UserRegistered is published when a new user completes registration,
// after the user, default organization, and membership have committed.
type UserRegistered struct {
	BaseEvent
	UserID         uuid.UUID `json:"userId"`
	Email          string    `json:"email"`
	OrganizationID uuid.UUID `json:"organizationId"`
}

func (e UserRegistered) EventName() string { return "auth.user.registered" }

// UserLoggedIn is published on successful authentication.
type UserLoggedIn struct {
	BaseEvent
	UserID uuid.UUID `json:"userId"`
}

func (e UserLoggedIn) EventName() string { return "auth.user.logged_in" }

// =============================================================================
// Identity Domain Events
// =============================================================================

// OrganizationCreated is published when an organization is explicitly created.
type OrganizationCreated struct {
	BaseEvent
	OrganizationID uuid.UUID `json:"organizationId"`
	Name           string    `json:"name"`
	CreatedBy      uuid.UUID `json:"createdBy"`
}

func (e OrganizationCreated) EventName() string { return "identity.organization.created" }

// MemberAdded is published when a user is linked to an organization.
type MemberAdded struct {
	BaseEvent
	OrganizationID uuid.UUID `json:"organizationId"`
	UserID         uuid.UUID `json:"userId"`
	AddedBy        uuid.UUID `json:"addedBy"`
}

func (e MemberAdded) EventName() string { return "identity.organization.member_added" }
