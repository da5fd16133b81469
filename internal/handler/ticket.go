package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/theater-dashboard/internal/booking"
	"github.com/iliyamo/theater-dashboard/internal/model"
	"github.com/iliyamo/theater-dashboard/internal/queue"
	"github.com/iliyamo/theater-dashboard/internal/repository"
	"github.com/iliyamo/theater-dashboard/internal/state"
)

// TicketHandler implements the sales flow: listing sold tickets,
// offering the free seats the sales form may choose from, selling
// and voiding tickets.
type TicketHandler struct {
	State *state.State
	Repo  *repository.SnapshotRepo

	// PublishEvents controls whether sales are announced on the
	// message broker. Sales never fail because of the broker.
	PublishEvents bool
}

// NewTicketHandler constructs a TicketHandler.
func NewTicketHandler(st *state.State, repo *repository.SnapshotRepo, publishEvents bool) *TicketHandler {
	if st == nil {
		panic("nil state passed to NewTicketHandler")
	}
	return &TicketHandler{State: st, Repo: repo, PublishEvents: publishEvents}
}

// ticketResponse is a ticket with its play title resolved; a deleted
// play reads "unknown".
type ticketResponse struct {
	model.Ticket
	PlayTitle string `json:"play_title"`
}

func (h *TicketHandler) respond(t model.Ticket) ticketResponse {
	title := "unknown"
	if p, ok := h.State.FindPlay(t.PlayID); ok {
		title = p.Title
	}
	return ticketResponse{Ticket: t, PlayTitle: title}
}

// List handles GET /v1/tickets. The optional ?search= parameter
// matches the buyer name case-insensitively, or the id exactly.
func (h *TicketHandler) List(c echo.Context) error {
	tickets := h.State.Tickets()
	if search := strings.TrimSpace(c.QueryParam("search")); search != "" {
		needle := strings.ToLower(search)
		filtered := make([]model.Ticket, 0, len(tickets))
		for _, t := range tickets {
			if strings.Contains(strings.ToLower(t.BuyerName), needle) || strconv.FormatInt(t.ID, 10) == search {
				filtered = append(filtered, t)
			}
		}
		tickets = filtered
	}
	out := make([]ticketResponse, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, h.respond(t))
	}
	return c.JSON(http.StatusOK, echo.Map{"tickets": out, "count": len(out)})
}

// FreeSeats handles GET /v1/tickets/free-seats: the seats the sales
// form is allowed to offer, in hall order.
func (h *TicketHandler) FreeSeats(c echo.Context) error {
	free := booking.FreeSeats(h.State.Seats(), h.State.Tickets())
	return c.JSON(http.StatusOK, echo.Map{"seats": free, "count": len(free)})
}

// Sell handles POST /v1/tickets. The availability check and the
// insert are atomic inside the state, so a seat can never be sold
// twice, no matter how requests interleave.
func (h *TicketHandler) Sell(c echo.Context) error {
	var body struct {
		PlayID    int64  `json:"play_id"`
		SeatID    int64  `json:"seat_id"`
		BuyerName string `json:"buyer_name"`
		Date      string `json:"date"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if strings.TrimSpace(body.BuyerName) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "buyer name is required"})
	}
	if body.Date == "" {
		body.Date = time.Now().Format("2006-01-02")
	}

	ticket, err := h.State.SellTicket(body.SeatID, model.Ticket{
		PlayID:    body.PlayID,
		BuyerName: strings.TrimSpace(body.BuyerName),
		Date:      body.Date,
	})
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrNoSeatSelected):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "no seat selected"})
		case errors.Is(err, booking.ErrSeatAlreadyBooked):
			return c.JSON(http.StatusConflict, echo.Map{"error": "seat is already booked"})
		case errors.Is(err, state.ErrSeatNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "seat not found"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to sell ticket"})
		}
	}
	persist(c, h.Repo, h.State)

	if h.PublishEvents {
		event := queue.TicketSoldEvent{
			TicketID:  ticket.ID,
			PlayID:    ticket.PlayID,
			SeatID:    ticket.SeatID,
			BuyerName: ticket.BuyerName,
			Date:      ticket.Date,
			SoldAt:    time.Now().UTC().Format(time.RFC3339),
		}
		if p, ok := h.State.FindPlay(ticket.PlayID); ok {
			event.PlayTitle = p.Title
		}
		if s, ok := seatByID(h.State.Seats(), ticket.SeatID); ok {
			event.SeatRow = s.Row
			event.SeatNum = s.Number
			event.Price = s.Price
		}
		_ = queue.PublishTicketSold(c.Request().Context(), event)
	}

	return c.JSON(http.StatusCreated, h.respond(ticket))
}

// Delete handles DELETE /v1/tickets/:id, voiding a sale and freeing
// its seat. Idempotent.
func (h *TicketHandler) Delete(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid ticket id"})
	}
	h.State.DeleteTicket(id)
	persist(c, h.Repo, h.State)
	return c.NoContent(http.StatusNoContent)
}

func seatByID(seats []model.Seat, id int64) (model.Seat, bool) {
	for _, s := range seats {
		if s.ID == id {
			return s, true
		}
	}
	return model.Seat{}, false
}
