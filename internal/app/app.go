package app

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/nsien-prestige/Eventful-Backend/internal/config"
	"github.com/nsien-prestige/Eventful-Backend/internal/handler"
	"github.com/nsien-prestige/Eventful-Backend/internal/middleware"
	"github.com/nsien-prestige/Eventful-Backend/internal/router"
	"github.com/nsien-prestige/Eventful-Backend/internal/scheduler"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	core       *Core
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"Eventful",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = Migrate(cfg.Postgres.DSN(), migrationsDir); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}
	app.log.Info("migrations applied successfully")

	app.db, err = OpenDB(context.Background(), cfg.Postgres, log)
	if err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initServices(); err != nil {
		_ = app.db.Master.Close()
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initServices() error {
	core, err := NewCore(context.Background(), a.cfg, a.db, a.log)
	if err != nil {
		return err
	}
	a.core = core

	a.scheduler = scheduler.New(
		core.Reconciler,
		a.cfg.Reconcile.Interval,
		a.log,
	)

	h := handler.NewHandler(core.Settlement, core.Checkout, core.Validator, core.Reconciler)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.Auth([]byte(a.cfg.Auth.JWTSecret), a.log),
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if err := a.core.Close(shutdownCtx); err != nil {
		a.log.Error("close side channels", logger.String("error", err.Error()))
	}

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}
