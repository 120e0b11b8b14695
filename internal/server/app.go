// Package server wires the store: database, migrations, services and the
// gRPC endpoint, and runs them until a shutdown signal arrives.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/touchbase/internal/logging"
	"github.com/dmitrijs2005/touchbase/internal/server/config"
	"github.com/dmitrijs2005/touchbase/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/touchbase/internal/server/services"

	gs "github.com/dmitrijs2005/touchbase/internal/server/grpc"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	grpc   *gs.GRPCServer
}

// NewApp connects to PostgreSQL, applies migrations and builds the services.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.NewJSON(os.Stdout, slog.LevelInfo)

	db, err := repomanager.OpenPostgres(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	us := services.NewUserService(db, rm, cfg, logger.With("module", "users"))
	ds := services.NewDataService(db, rm)

	return &App{
		config: cfg,
		logger: logger,
		db:     db,
		grpc:   gs.NewGRPCServer(cfg.EndpointAddrGRPC, logger, us, ds, cfg.PublicKey),
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

// Run blocks until the gRPC server stops, then closes the database.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")
	app.initSignalHandler(cancelFunc)

	err := app.grpc.Run(ctx)
	if err != nil {
		app.logger.Error(ctx, "grpc server stopped", "error", err)
	}

	if cerr := app.db.Close(); cerr != nil {
		app.logger.Warn(ctx, "closing db", "error", cerr)
	}
	app.logger.Info(ctx, "App stopped")
	return err
}
