package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"

	"github.com/acsess/dept-portal/config"
	"github.com/acsess/dept-portal/internal/alerts"
	"github.com/acsess/dept-portal/internal/db"
	"github.com/acsess/dept-portal/internal/rest"
)

type App struct {
	DB     *db.Repository
	Logger *slog.Logger
	Echo   *echo.Echo
	Config *config.Config
}

func New(cfg *config.Config, dbConnect *pg.DB, logger *slog.Logger) *App {
	database := db.New(dbConnect)
	handler := rest.NewAlertHandler(
		alerts.NewAlertManager(database),
		cfg.Auth,
		logger,
	)

	return &App{
		DB:     database,
		Logger: logger,
		Echo:   handler.RegisterRoutes(),
		Config: cfg,
	}
}

func (a *App) Run(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	return a.Echo.Start(addr)
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
