// Package server wires the auth service together: configuration, the
// credential store, the orchestrator and the gRPC transport. It also
// handles tracing setup and graceful shutdown.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/gophauth/internal/cryptox"
	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/dmitrijs2005/gophauth/internal/server/config"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gophauth/internal/server/services"
	"github.com/dmitrijs2005/gophauth/internal/server/telemetry"

	gs "github.com/dmitrijs2005/gophauth/internal/server/grpc"
)

const serviceName = "gophauth"

type App struct {
	config *config.Config
	logger logging.Logger
	repos  repomanager.RepositoryManager
	server *gs.GRPCServer
}

// NewApp builds the store, hasher, service and server from c. The store is
// migrated before the app is returned.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)
	return newApp(ctx, c, logger)
}

func newApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	rm, err := repomanager.NewRepositoryManager(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("store init error: %w", err)
	}

	if err := rm.RunMigrations(ctx); err != nil {
		_ = rm.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	as := services.NewAuthService(rm.Users(), cryptox.NewBcryptHasher(), c, logger)
	s := gs.NewGRPCServer(c.BusEndpoints, logger, as)

	return &App{config: c, logger: logger, repos: rm, server: s}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves until ctx is cancelled or a termination signal arrives, then
// shuts down gracefully and releases the store.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "endpoints", app.config.BusEndpoints, "store", app.config.StoreDriver)

	app.initSignalHandler(cancelFunc)

	shutdownTracing, err := telemetry.Setup(ctx, serviceName, app.config.OTelEndpoint)
	if err != nil {
		app.logger.Warn(ctx, "tracing disabled", "error", err)
	}

	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			app.logger.Warn(ctx, "tracing shutdown", "error", err)
		}
		if err := app.repos.Close(); err != nil {
			app.logger.Error(ctx, "store close", "error", err)
		}
		app.logger.Info(ctx, "App stopped")
	}()

	if err := app.server.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		return err
	}
	return nil
}
