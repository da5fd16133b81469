package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/theater-dashboard/internal/handler"
	"github.com/iliyamo/theater-dashboard/internal/repository"
	"github.com/iliyamo/theater-dashboard/internal/state"
)

func resetRequest(t *testing.T, h *handler.AdminHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/reset", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Reset(e.NewContext(req, rec)))
	return rec
}

func TestResetRequiresConfirmation(t *testing.T) {
	st := state.NewFromSeed()
	h := handler.NewAdminHandler(st, repository.NewSnapshotRepo(nil))
	st.DeleteDirector(1)

	rec := resetRequest(t, h, `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	directors, _, _, _ := st.Counts()
	assert.Equal(t, 49, directors, "an unconfirmed reset must not touch state")
}

func TestResetRestoresSeedShape(t *testing.T) {
	st := state.NewFromSeed()
	h := handler.NewAdminHandler(st, repository.NewSnapshotRepo(nil))
	st.DeleteDirector(1)
	st.DeleteTicket(1)

	rec := resetRequest(t, h, `{"confirm":true}`)
	require.Equal(t, http.StatusOK, rec.Code)

	directors, plays, seats, tickets := st.Counts()
	assert.Equal(t, 50, directors)
	assert.Equal(t, 50, plays)
	assert.Equal(t, 100, seats)
	assert.Equal(t, 60, tickets)
}

func TestLoginIssuesTokenAndSetsFlag(t *testing.T) {
	st := state.NewFromSnapshot(state.Snapshot{})
	h := handler.NewAuthHandler(st, repository.NewSnapshotRepo(nil), "test-secret", 60)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", strings.NewReader(`{"username":"admin"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Login(e.NewContext(req, rec)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "access_token")
	assert.True(t, st.Authenticated())
}

func TestLogoutClearsFlag(t *testing.T) {
	st := state.NewFromSnapshot(state.Snapshot{Authenticated: true})
	h := handler.NewAuthHandler(st, repository.NewSnapshotRepo(nil), "test-secret", 60)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/logout", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Logout(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.False(t, st.Authenticated())
}
