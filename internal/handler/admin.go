package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/theater-dashboard/internal/repository"
	"github.com/iliyamo/theater-dashboard/internal/state"
)

// AdminHandler holds the destructive maintenance operations.
type AdminHandler struct {
	State *state.State
	Repo  *repository.SnapshotRepo
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(st *state.State, repo *repository.SnapshotRepo) *AdminHandler {
	if st == nil {
		panic("nil state passed to NewAdminHandler")
	}
	return &AdminHandler{State: st, Repo: repo}
}

// Reset handles POST /v1/reset. The body must carry {"confirm": true},
// the API analog of the confirmation dialog. All four collections are
// regenerated together; there is no partial reset.
func (h *AdminHandler) Reset(c echo.Context) error {
	var body struct {
		Confirm bool `json:"confirm"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if !body.Confirm {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "reset requires confirmation"})
	}
	h.State.Reset()
	persist(c, h.Repo, h.State)
	directors, plays, seats, tickets := h.State.Counts()
	return c.JSON(http.StatusOK, echo.Map{
		"directors": directors,
		"plays":     plays,
		"seats":     seats,
		"tickets":   tickets,
	})
}
