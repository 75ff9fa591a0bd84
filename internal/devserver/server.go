// Package devserver is an in-process implementation of the complaint
// service REST contract the client depends on. It exists so the client
// can be exercised end-to-end — in tests and local development —
// without the real service. Storage is in-memory and state is lost on
// shutdown; that is the point, not a limitation.
package devserver

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/intelligrievance/grievance-client/internal/core/domain"
)

// New builds the Echo instance with all routes registered.
func New(jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = newHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())

	// Per-instance registry so multiple servers can coexist in one
	// process (tests spin one up per case).
	registry := prometheus.NewRegistry()
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "grievance_devserver",
		Registerer: registry,
	}))

	// --- Dependencies ---
	store := newMemoryStore()
	authH := &authHandler{store: store, jwtSecret: jwtSecret}
	complaintH := &complaintHandler{store: store}
	authMW := auth(jwtSecret)

	// --- Auth routes (unauthenticated) ---
	e.POST("/auth/register", authH.Register)
	e.POST("/auth/login", authH.Login)

	// --- User routes ---
	user := e.Group("", authMW, rbac(domain.RoleUser, domain.RoleAdmin))
	user.POST("/complaints", complaintH.Create)
	user.GET("/complaints/my", complaintH.Mine)

	// --- Admin routes ---
	admin := e.Group("/admin", authMW, rbac(domain.RoleAdmin))
	admin.GET("/complaints", complaintH.All)
	admin.PUT("/complaints/:id/status", complaintH.Transition)
	admin.GET("/analytics", complaintH.Analytics)

	// --- Probes and metrics (no auth required) ---
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: registry}))

	return e
}
