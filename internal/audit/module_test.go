package audit

import (
	"context"
	"testing"

	"accounts_backend/internal/events"
	"accounts_backend/platform/logger"

	"github.com/google/uuid"
)

func TestAuditHandlesAllDomainEvents(t *testing.T) {
	log := logger.New("test")
	bus := events.NewInMemoryBus(log)
	New(log).RegisterHandlers(bus)

	toPublish := []events.Event{
		events.UserRegistered{
			BaseEvent:      events.NewBaseEvent(),
			UserID:         uuid.New(),
			Email:          "ada@example.com",
			OrganizationID: uuid.New(),
		},
		events.UserLoggedIn{BaseEvent: events.NewBaseEvent(), UserID: uuid.New()},
		events.OrganizationCreated{
			BaseEvent:      events.NewBaseEvent(),
			OrganizationID: uuid.New(),
			Name:           "Ada's Organisation",
			CreatedBy:      uuid.New(),
		},
		events.MemberAdded{
			BaseEvent:      events.NewBaseEvent(),
			OrganizationID: uuid.New(),
			UserID:         uuid.New(),
			AddedBy:        uuid.New(),
		},
	}

	for _, event := range toPublish {
		if err := bus.PublishSync(context.Background(), event); err != nil {
			t.Fatalf("handler failed for %s: %v", event.EventName(), err)
		}
	}
}

func TestAuditIgnoresMistypedEvents(t *testing.T) {
	m := New(logger.New("test"))

	// A handler receiving an event of an unexpected concrete type must not fail.
	if err := m.onUserRegistered(context.Background(), events.UserLoggedIn{BaseEvent: events.NewBaseEvent()}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
