// Package router wires HTTP routes to their handlers.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/theater-dashboard/internal/handler"
	"github.com/iliyamo/theater-dashboard/internal/middleware"
)

// RegisterRoutes registers the routes that require no session:
// the health check and the login gate.
func RegisterRoutes(e *echo.Echo, a *handler.AuthHandler) {
	e.GET("/healthz", handler.Health)

	g := e.Group("/v1/auth")
	g.POST("/login", a.Login)
	// Logout only clears the persisted flag, so it stays reachable
	// even with an expired token.
	g.POST("/logout", a.Logout)
}

// Handlers bundles everything the protected route group needs.
type Handlers struct {
	Directors *handler.DirectorHandler
	Plays     *handler.PlayHandler
	Seats     *handler.SeatHandler
	Tickets   *handler.TicketHandler
	Dashboard *handler.DashboardHandler
	Assistant *handler.AssistantHandler
	Admin     *handler.AdminHandler
}

// RegisterAPI registers all session-guarded endpoints under /v1.
func RegisterAPI(e *echo.Echo, h Handlers, jwtSecret string) {
	api := e.Group("/v1")
	api.Use(middleware.SessionAuth(jwtSecret))

	api.GET("/dashboard", h.Dashboard.Overview)

	api.GET("/directors", h.Directors.List)
	api.POST("/directors", h.Directors.Create)
	api.GET("/directors/:id", h.Directors.Get)
	api.PUT("/directors/:id", h.Directors.Update)
	api.DELETE("/directors/:id", h.Directors.Delete)

	api.GET("/plays", h.Plays.List)
	api.POST("/plays", h.Plays.Create)
	api.GET("/plays/:id", h.Plays.Get)
	api.PUT("/plays/:id", h.Plays.Update)
	api.DELETE("/plays/:id", h.Plays.Delete)

	api.GET("/seats", h.Seats.List)
	api.GET("/seats/layout", h.Seats.Layout)

	api.GET("/tickets", h.Tickets.List)
	api.GET("/tickets/free-seats", h.Tickets.FreeSeats)
	api.POST("/tickets", h.Tickets.Sell)
	api.DELETE("/tickets/:id", h.Tickets.Delete)

	api.POST("/assistant", h.Assistant.Ask)
	api.POST("/reset", h.Admin.Reset)
}
