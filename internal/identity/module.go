// Package identity provides the organization and membership bounded context.
package identity

import (
	"accounts_backend/internal/events"
	apphttp "accounts_backend/internal/http"
	"accounts_backend/internal/identity/handler"
	"accounts_backend/internal/identity/repository"
	"accounts_backend/internal/identity/service"
	"accounts_backend/platform/logger"
	"accounts_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the identity module. The user directory
// (owned by the auth module) is wired afterwards via Service().SetUserDirectory
// from the composition root.
func NewModule(pool *pgxpool.Pool, eventBus events.Bus, log *logger.Logger, val *validator.Validator) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, nil, eventBus, log)
	h := handler.New(svc, val)

	return &Module{handler: h, service: svc}
}

func (m *Module) Name() string {
	return "identity"
}

// Service returns the identity service for use by adapters.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts identity routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterRoutes(ctx.Protected)
}

var _ apphttp.Module = (*Module)(nil)
