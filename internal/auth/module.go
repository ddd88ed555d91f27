// Package auth provides the authentication bounded context module.
package auth

import (
	"accounts_backend/internal/auth/handler"
	"accounts_backend/internal/auth/repository"
	"accounts_backend/internal/auth/service"
	"accounts_backend/internal/events"
	apphttp "accounts_backend/internal/http"
	"accounts_backend/platform/config"
	"accounts_backend/platform/logger"
	"accounts_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the auth bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the auth module with all its dependencies.
// orgs provisions the default organization during registration; it is an
// adapter over the identity module so the transaction can span both contexts.
func NewModule(pool *pgxpool.Pool, orgs service.OrganizationProvisioner, cfg config.AuthServiceConfig, eventBus events.Bus, log *logger.Logger, val *validator.Validator) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, orgs, cfg, eventBus, log)
	h := handler.New(svc, val)

	return &Module{handler: h, service: svc}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "auth"
}

// Service returns the auth service for use by adapters.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts auth routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	// Public auth routes with stricter rate limiting
	authGroup := ctx.Root.Group("/auth")
	authGroup.Use(ctx.AuthRateLimiter.RateLimit())
	m.handler.RegisterRoutes(authGroup)

	// Protected user routes
	ctx.Protected.GET("/users/:id", m.handler.GetUser)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
