package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"accounts_backend/internal/adapters"
	"accounts_backend/internal/audit"
	"accounts_backend/internal/auth"
	"accounts_backend/internal/events"
	apphttp "accounts_backend/internal/http"
	"accounts_backend/internal/http/router"
	"accounts_backend/internal/identity"
	"accounts_backend/migrations"
	"accounts_backend/platform/config"
	"accounts_backend/platform/db"
	"accounts_backend/platform/logger"
	"accounts_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	if err := withRetry(ctx, log, "database migrations", 5, 2*time.Second, func() error {
		return db.RunMigrations(ctx, cfg, migrations.FS, ".")
	}); err != nil {
		log.Error("failed to run database migrations", "error", err)
		panic("failed to run database migrations: " + err.Error())
	}
	log.Info("database migrations complete")

	var pool *pgxpool.Pool
	if err := withRetry(ctx, log, "database connection", 5, 2*time.Second, func() error {
		p, err := db.NewPool(ctx, cfg)
		if err != nil {
			return err
		}
		pool = p
		return nil
	}); err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()
	log.Info("database connection established")

	// Event bus for decoupled communication between modules
	eventBus := events.NewInMemoryBus(log)

	// Shared validator instance for dependency injection
	val := validator.New()

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	identityModule := identity.NewModule(pool, eventBus, log, val)

	// Registration spans both contexts: the auth module drives the transaction
	// and the identity module provisions the default organization inside it.
	orgProvisioner := adapters.NewIdentityOrgProvisioner(identityModule.Service())
	authModule := auth.NewModule(pool, orgProvisioner, cfg, eventBus, log, val)

	// Identity validates add-member targets against the auth module's users.
	identityModule.Service().SetUserDirectory(adapters.NewAuthUserDirectory(authModule.Service()))

	// Audit module subscribes to domain events (not HTTP-facing)
	auditModule := audit.New(log)
	auditModule.RegisterHandlers(eventBus)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config:   cfg,
		Logger:   log,
		Health:   pool,
		EventBus: eventBus,
		Modules:  []apphttp.Module{authModule, identityModule},
	}

	engine := router.New(app)
	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server failed", "error", err)
			stop()
		}
	}()
	log.Info("server listening", "addr", cfg.HTTPAddr)

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
}

// withRetry runs op up to attempts times, backing off between failures.
// It stops early if ctx is cancelled.
func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, delay time.Duration, op func() error) error {
	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err = op(); err == nil {
			return nil
		}

		log.Warn("operation failed, retrying",
			"operation", name,
			"attempt", attempt,
			"error", err.Error(),
		)

		if attempt == attempts {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
	return err
}
