// Package server initializes and runs the record store server.
// It selects the storage backend, seeds the first admin account, handles
// graceful shutdown and serves the REST API.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/hrconsole/internal/logging"
	"github.com/dmitrijs2005/hrconsole/internal/server/config"
	"github.com/dmitrijs2005/hrconsole/internal/server/httpapi"
	"github.com/dmitrijs2005/hrconsole/internal/server/records"
	"github.com/gin-gonic/gin"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	service *records.Service
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSON(os.Stdout, slog.LevelInfo)

	var repo records.Repository
	var db *sql.DB
	if c.DatabaseDSN == config.MemoryDSN {
		logger.Warn(ctx, "using in-memory storage, data is lost on exit")
		repo = records.NewMemoryRepository()
	} else {
		var err error
		db, err = records.OpenPostgres(ctx, c.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
		repo = records.NewPostgresRepository(db)
	}

	return &App{
		config:  c,
		logger:  logger,
		db:      db,
		service: records.NewService(repo, logger),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")
	app.initSignalHandler(cancelFunc)

	defer func() {
		if app.db != nil {
			if err := app.db.Close(); err != nil {
				app.logger.Error(ctx, "db close error", "error", err)
			}
		}
	}()

	seeded, err := app.service.SeedAdmin(ctx, app.config.SeedAdminUsername, app.config.SeedAdminPassword)
	if err != nil {
		return err
	}
	if seeded {
		app.logger.Info(ctx, "seeded admin account", "username", app.config.SeedAdminUsername)
	}

	gin.SetMode(gin.ReleaseMode)
	s := httpapi.NewServer(app.config.ListenAddr, app.service, app.logger, app.config.ShutdownTimeout)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		return err
	}

	app.logger.Info(ctx, "Stopped")
	return nil
}
