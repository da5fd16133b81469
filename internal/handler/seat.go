package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/theater-dashboard/internal/booking"
	"github.com/iliyamo/theater-dashboard/internal/model"
	"github.com/iliyamo/theater-dashboard/internal/state"
)

// SeatHandler exposes the hall. The hall is a fixed grid, so seats
// are read-only; booking status is derived from the tickets on every
// request.
type SeatHandler struct {
	State *state.State
}

// NewSeatHandler constructs a SeatHandler.
func NewSeatHandler(st *state.State) *SeatHandler {
	if st == nil {
		panic("nil state passed to NewSeatHandler")
	}
	return &SeatHandler{State: st}
}

// List handles GET /v1/seats: the raw seat collection.
func (h *SeatHandler) List(c echo.Context) error {
	seats := h.State.Seats()
	return c.JSON(http.StatusOK, echo.Map{"seats": seats, "count": len(seats)})
}

// layoutSeat is one cell of the hall layout: the seat plus its
// derived booking status and, when booked, the buyer.
type layoutSeat struct {
	model.Seat
	Booked    bool   `json:"booked"`
	BuyerName string `json:"buyer_name,omitempty"`
}

// Layout handles GET /v1/seats/layout. It renders every seat with
// its booking status for the hall scheme view.
func (h *SeatHandler) Layout(c echo.Context) error {
	seats := h.State.Seats()
	tickets := h.State.Tickets()

	layout := make([]layoutSeat, 0, len(seats))
	bookedCount := 0
	for _, s := range seats {
		cell := layoutSeat{Seat: s}
		if t, ok := booking.BookingOf(s.ID, tickets); ok {
			cell.Booked = true
			cell.BuyerName = t.BuyerName
			bookedCount++
		}
		layout = append(layout, cell)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"seats":  layout,
		"free":   len(seats) - bookedCount,
		"booked": bookedCount,
	})
}
