// Package handler implements the HTTP endpoints of the dashboard
// API. Handlers bind and validate input, call into the application
// state, persist the resulting snapshot and translate sentinel
// errors into JSON responses shaped {"error": "..."}.
package handler

import (
	"log"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/theater-dashboard/internal/repository"
	"github.com/iliyamo/theater-dashboard/internal/state"
)

// parseID extracts a positive int64 path parameter.
func parseID(c echo.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// persist writes the current snapshot. The in-memory mutation has
// already happened by the time persist runs, so a persistence error
// is logged, not surfaced: the operation itself succeeded and the
// next successful save will catch the state up.
func persist(c echo.Context, repo *repository.SnapshotRepo, st *state.State) {
	if !repo.Enabled() {
		return
	}
	if err := repo.Save(c.Request().Context(), st.Snapshot()); err != nil {
		log.Printf("snapshot save failed: %v", err)
	}
}
