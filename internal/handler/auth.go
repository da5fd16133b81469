package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/theater-dashboard/internal/repository"
	"github.com/iliyamo/theater-dashboard/internal/state"
	"github.com/iliyamo/theater-dashboard/internal/utils"
)

// AuthHandler implements the login gate. There are no user accounts:
// logging in flips the persisted authentication flag and mints the
// session token the protected routes expect. It deliberately
// verifies nothing.
type AuthHandler struct {
	State  *state.State
	Repo   *repository.SnapshotRepo
	Secret string
	TTLMin int
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(st *state.State, repo *repository.SnapshotRepo, secret string, ttlMin int) *AuthHandler {
	if st == nil {
		panic("nil state passed to NewAuthHandler")
	}
	return &AuthHandler{State: st, Repo: repo, Secret: secret, TTLMin: ttlMin}
}

// Login handles POST /v1/auth/login. Any submitted username is
// accepted; the response carries the session token and its expiry.
func (h *AuthHandler) Login(c echo.Context) error {
	var body struct {
		Username string `json:"username"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.Username == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username is required"})
	}
	token, err := utils.NewSessionToken(h.Secret, h.TTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to issue session token"})
	}
	h.State.SetAuthenticated(true)
	persist(c, h.Repo, h.State)
	return c.JSON(http.StatusOK, echo.Map{
		"access_token": token.Token,
		"expires_at":   token.Exp,
	})
}

// Logout handles POST /v1/auth/logout. It clears the persisted flag;
// the token simply stops being used. Logging out twice is harmless.
func (h *AuthHandler) Logout(c echo.Context) error {
	h.State.SetAuthenticated(false)
	persist(c, h.Repo, h.State)
	return c.NoContent(http.StatusNoContent)
}
