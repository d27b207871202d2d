// Package server initializes and runs the SoulSpace API server. It picks a
// storage backend from the config, wires the services and HTTP router, and
// handles graceful shutdown on SIGINT/SIGTERM.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Algo-jtx/SoulSpace/internal/logging"
	"github.com/Algo-jtx/SoulSpace/internal/server/config"
	"github.com/Algo-jtx/SoulSpace/internal/server/httpapi"
	"github.com/Algo-jtx/SoulSpace/internal/server/repositories/repomanager"
	"github.com/Algo-jtx/SoulSpace/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	repos  repomanager.Manager
	router http.Handler
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.NewJSON(os.Stdout)

	var repos repomanager.Manager
	var err error
	if cfg.DevMode {
		repos = repomanager.NewInMemoryManager()
		logger.Info(ctx, "using in-memory storage")
	} else {
		repos, err = repomanager.NewPostgresManager(ctx, cfg.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
	}

	svcs := httpapi.Services{
		Users:    services.NewUserService(repos),
		Letters:  services.NewLetterService(repos),
		Capsules: services.NewCapsuleService(repos),
		Notes:    services.NewNoteService(repos),
		Wellness: services.NewWellnessService(repos),
	}
	router := httpapi.NewRouter(svcs, []byte(cfg.SecretKey), cfg.SessionTTL, logger)

	return &App{config: cfg, logger: logger, repos: repos, router: router}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "starting app", "addr", app.config.EndpointAddr)

	app.initSignalHandler(cancelFunc)

	srv := &http.Server{
		Addr:    app.config.EndpointAddr,
		Handler: app.router,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			app.logger.Error(ctx, "shutdown error", "error", err)
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.logger.Error(ctx, "server error", "error", err)
		}
	}

	if err := app.repos.Close(); err != nil {
		app.logger.Error(ctx, "storage close error", "error", err)
	}

	app.logger.Info(ctx, "app stopped")
}
