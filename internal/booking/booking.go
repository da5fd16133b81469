// Package booking derives seat availability from the current seat and
// ticket collections and guards the one invariant of the sales flow:
// a seat id appears in at most one ticket. All functions are pure;
// the state package is responsible for running SellTicket and the
// subsequent insert under one lock so the check cannot go stale.
package booking

import (
	"errors"

	"github.com/iliyamo/theater-dashboard/internal/model"
)

// ErrSeatAlreadyBooked is returned when a sale targets a seat that
// already has a ticket. Handlers should translate this into an HTTP
// 409 response.
var ErrSeatAlreadyBooked = errors.New("seat already booked")

// ErrNoSeatSelected is returned when a sale arrives without a seat.
// The sales form never submits in that state, but the resolver
// defends it anyway.
var ErrNoSeatSelected = errors.New("no seat selected")

// IsBooked reports whether any ticket references the given seat.
func IsBooked(seatID int64, tickets []model.Ticket) bool {
	for _, t := range tickets {
		if t.SeatID == seatID {
			return true
		}
	}
	return false
}

// BookingOf returns the ticket occupying the given seat, or false
// when the seat is free. Used to show the buyer on a booked seat in
// the hall layout.
func BookingOf(seatID int64, tickets []model.Ticket) (model.Ticket, bool) {
	for _, t := range tickets {
		if t.SeatID == seatID {
			return t, true
		}
	}
	return model.Ticket{}, false
}

// FreeSeats returns the seats not referenced by any ticket,
// preserving the original seat order.
func FreeSeats(seats []model.Seat, tickets []model.Ticket) []model.Seat {
	booked := make(map[int64]struct{}, len(tickets))
	for _, t := range tickets {
		booked[t.SeatID] = struct{}{}
	}
	free := make([]model.Seat, 0, len(seats))
	for _, s := range seats {
		if _, ok := booked[s.ID]; !ok {
			free = append(free, s)
		}
	}
	return free
}

// SellTicket validates a sale against the tickets as they stand at
// the moment of the call. It returns the draft unchanged (the store
// assigns the id on insert) or one of ErrNoSeatSelected and
// ErrSeatAlreadyBooked. Callers in a concurrent setting must hold
// the state lock across this check and the insert.
func SellTicket(seatID int64, draft model.Ticket, tickets []model.Ticket) (model.Ticket, error) {
	if seatID == 0 {
		return model.Ticket{}, ErrNoSeatSelected
	}
	if IsBooked(seatID, tickets) {
		return model.Ticket{}, ErrSeatAlreadyBooked
	}
	draft.SeatID = seatID
	return draft, nil
}
