// Package server initializes and runs the authentication server: it opens
// the database pool, applies migrations, wires the service layer, and starts
// the HTTP endpoint with graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/avelichko/authgate/internal/logging"
	"github.com/avelichko/authgate/internal/server/auth"
	"github.com/avelichko/authgate/internal/server/config"
	"github.com/avelichko/authgate/internal/server/httpapi"
	"github.com/avelichko/authgate/internal/server/password"
	"github.com/avelichko/authgate/internal/server/repositories/repomanager"
	"github.com/avelichko/authgate/internal/server/services"
)

type App struct {
	config     *config.Config
	logger     logging.Logger
	db         *sql.DB
	httpServer *httpapi.Server
}

func NewApp(cfg *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	// Bounded pool: when every connection is busy, callers queue instead of
	// failing.
	db.SetMaxOpenConns(cfg.MaxDBConnections)

	manager := repomanager.NewPostgresRepositoryManager()
	if err := manager.RunMigrations(context.Background(), db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	hasher := password.NewHasher(cfg.BcryptCost)
	minter := auth.NewTokenMinter([]byte(cfg.SecretKey), cfg.TokenValidityDuration)

	authService := services.NewAuthService(db, manager, hasher, minter, logger)
	httpServer := httpapi.NewServer(cfg.EndpointAddrHTTP, logger, authService, cfg.CORSAllowedOrigins)

	return &App{
		config:     cfg,
		logger:     logger,
		db:         db,
		httpServer: httpServer,
	}, nil
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

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.httpServer.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err)
	}
}
