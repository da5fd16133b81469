package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/theater-dashboard/internal/model"
	"github.com/iliyamo/theater-dashboard/internal/state"
	"github.com/iliyamo/theater-dashboard/internal/stats"
)

// recentSalesCount is how many sales the dashboard panel shows.
const recentSalesCount = 6

// DashboardHandler serves the aggregated overview. Every metric is
// recomputed from the current collections on each request; nothing
// is cached.
type DashboardHandler struct {
	State *state.State
}

// NewDashboardHandler constructs a DashboardHandler.
func NewDashboardHandler(st *state.State) *DashboardHandler {
	if st == nil {
		panic("nil state passed to NewDashboardHandler")
	}
	return &DashboardHandler{State: st}
}

// recentSale is one row of the recent-sales panel, with the play
// title resolved.
type recentSale struct {
	model.Ticket
	PlayTitle string `json:"play_title"`
}

// Overview handles GET /v1/dashboard.
func (h *DashboardHandler) Overview(c echo.Context) error {
	snap := h.State.Snapshot()

	recent := stats.RecentSales(snap.Tickets, recentSalesCount)
	sales := make([]recentSale, 0, len(recent))
	for _, t := range recent {
		row := recentSale{Ticket: t, PlayTitle: "unknown"}
		for _, p := range snap.Plays {
			if p.ID == t.PlayID {
				row.PlayTitle = p.Title
				break
			}
		}
		sales = append(sales, row)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"directors":          len(snap.Directors),
		"plays":              len(snap.Plays),
		"seats":              len(snap.Seats),
		"tickets":            len(snap.Tickets),
		"total_revenue":      stats.TotalRevenue(snap.Tickets, snap.Seats),
		"genre_distribution": stats.GenreDistribution(snap.Plays, model.DashboardGenres),
		"recent_sales":       sales,
	})
}
