package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync/atomic"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/theater-dashboard/internal/assistant"
	"github.com/iliyamo/theater-dashboard/internal/state"
)

// failureMessage is the one message the user sees whatever went
// wrong with the external call.
const failureMessage = "Failed to reach the AI service. Check the API key and try again."

// Asker is the assistant client surface the handler needs; the
// concrete client lives in the assistant package.
type Asker interface {
	Ask(ctx context.Context, q assistant.Question) (string, error)
}

// AssistantHandler passes analytics questions through to the
// external generative text endpoint. Only one question may be
// outstanding at a time; further submissions are rejected, not
// queued, and record state is never touched either way.
type AssistantHandler struct {
	State  *state.State
	Client Asker
	busy   atomic.Bool
}

// NewAssistantHandler constructs an AssistantHandler.
func NewAssistantHandler(st *state.State, client Asker) *AssistantHandler {
	if st == nil || client == nil {
		panic("nil dependency passed to NewAssistantHandler")
	}
	return &AssistantHandler{State: st, Client: client}
}

// Ask handles POST /v1/assistant.
func (h *AssistantHandler) Ask(c echo.Context) error {
	var body struct {
		Question string `json:"question"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if strings.TrimSpace(body.Question) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "question is required"})
	}

	if !h.busy.CompareAndSwap(false, true) {
		return c.JSON(http.StatusConflict, echo.Map{"error": "a question is already being answered"})
	}
	defer h.busy.Store(false)

	directors, plays, seats, tickets := h.State.Counts()
	answer, err := h.Client.Ask(c.Request().Context(), assistant.Question{
		Directors: directors,
		Plays:     plays,
		Seats:     seats,
		Tickets:   tickets,
		Text:      body.Question,
	})
	if err != nil {
		if errors.Is(err, assistant.ErrExternalService) {
			return c.JSON(http.StatusBadGateway, echo.Map{"error": failureMessage})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": failureMessage})
	}
	return c.JSON(http.StatusOK, echo.Map{"answer": answer})
}
