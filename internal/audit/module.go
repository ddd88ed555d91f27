// Package audit subscribes to domain events and records them as structured
// audit log entries. It is not HTTP-facing.
package audit

import (
	"context"

	"accounts_backend/internal/events"
	"accounts_backend/platform/logger"
)

type Module struct {
	log *logger.Logger
}

func New(log *logger.Logger) *Module {
	return &Module{log: log}
}

func (m *Module) Name() string {
	return "audit"
}

// RegisterHandlers subscribes the audit log to the domain events it records.
func (m *Module) RegisterHandlers(bus events.Bus) {
	bus.Subscribe(events.UserRegistered{}.EventName(), events.HandlerFunc(m.onUserRegistered))
	bus.Subscribe(events.UserLoggedIn{}.EventName(), events.HandlerFunc(m.onUserLoggedIn))
	bus.Subscribe(events.OrganizationCreated{}.EventName(), events.HandlerFunc(m.onOrganizationCreated))
	bus.Subscribe(events.MemberAdded{}.EventName(), events.HandlerFunc(m.onMemberAdded))
}

func (m *Module) onUserRegistered(_ context.Context, event events.Event) error {
	e, ok := event.(events.UserRegistered)
	if !ok {
		return nil
	}
	m.log.Info("audit",
		"event", e.EventName(),
		"user_id", e.UserID.String(),
		"organization_id", e.OrganizationID.String(),
	)
	return nil
}

func (m *Module) onUserLoggedIn(_ context.Context, event events.Event) error {
	e, ok := event.(events.UserLoggedIn)
	if !ok {
		return nil
	}
	m.log.Info("audit",
		"event", e.EventName(),
		"user_id", e.UserID.String(),
	)
	return nil
}

func (m *Module) onOrganizationCreated(_ context.Context, event events.Event) error {
	e, ok := event.(events.OrganizationCreated)
	if !ok {
		return nil
	}
	m.log.Info("audit",
		"event", e.EventName(),
		"organization_id", e.OrganizationID.String(),
		"created_by", e.CreatedBy.String(),
	)
	return nil
}

func (m *Module) onMemberAdded(_ context.Context, event events.Event) error {
	e, ok := event.(events.MemberAdded)
	if !ok {
		return nil
	}
	m.log.Info("audit",
		"event", e.EventName(),
		"organization_id", e.OrganizationID.String(),
		"user_id", e.UserID.String(),
		"added_by", e.AddedBy.String(),
	)
	return nil
}
