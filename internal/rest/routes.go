package rest

import (
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

const (
	apiV1Prefix = "/api/v1"

	staticPathPrefix = "/static"
	staticDir        = "frontend/static"
	healthPath       = "/health"
)

// RegisterRoutes registers all routes for the handler
func (h *AlertHandler) RegisterRoutes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Renderer = newTemplateRenderer()

	e.Use(middleware.Recover())
	e.Use(h.loggingMiddleware)
	if sentry.CurrentHub().Client() != nil {
		e.Use(sentryecho.New(sentryecho.Options{Repanic: true}))
	}

	// pages
	e.GET("/", h.HomePage)
	e.GET(loginPath, h.LoginPage)
	admin := e.Group("/admin", h.requireAdmin(true))
	admin.GET("/alerts", h.AdminAlertsPage)

	e.Static(staticPathPrefix, staticDir)
	e.GET(healthPath, h.handleHealth)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// API
	api := e.Group(apiV1Prefix)
	api.POST("/auth/login", h.Login)
	api.POST("/auth/logout", h.Logout)
	api.GET("/alerts", h.List)
	api.GET("/alerts/:id", h.ByID)

	gated := api.Group("", h.requireAdmin(false))
	gated.POST("/alerts", h.Create)
	gated.PUT("/alerts/:id", h.Update)
	gated.DELETE("/alerts/:id", h.Delete)

	return e
}

func (h *AlertHandler) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *AlertHandler) loggingMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			c.Error(err)
		}

		h.log.Info("HTTP request",
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"status", c.Response().Status,
			"duration_ms", time.Since(start).Milliseconds(),
			"remote_addr", c.RealIP(),
		)

		return nil
	}
}
