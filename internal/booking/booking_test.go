package booking_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/theater-dashboard/internal/booking"
	"github.com/iliyamo/theater-dashboard/internal/model"
)

func TestFreeSeatsNeverIncludeBookedSeats(t *testing.T) {
	seats := []model.Seat{
		{ID: 1, Row: 1, Number: 1, Price: 40000},
		{ID: 2, Row: 1, Number: 2, Price: 40000},
		{ID: 3, Row: 1, Number: 3, Price: 40000},
		{ID: 4, Row: 1, Number: 4, Price: 40000},
	}
	tickets := []model.Ticket{
		{ID: 10, SeatID: 2},
		{ID: 11, SeatID: 4},
	}

	free := booking.FreeSeats(seats, tickets)

	booked := make(map[int64]struct{})
	for _, tk := range tickets {
		booked[tk.SeatID] = struct{}{}
	}
	for _, s := range free {
		_, isBooked := booked[s.ID]
		assert.False(t, isBooked, "free seat %d appears in a ticket", s.ID)
	}
	// free + booked partitions the seat collection
	assert.Equal(t, len(seats), len(free)+len(booked))
}

func TestFreeSeatsPreserveOrder(t *testing.T) {
	seats := []model.Seat{{ID: 3}, {ID: 1}, {ID: 2}}
	free := booking.FreeSeats(seats, []model.Ticket{{ID: 1, SeatID: 1}})

	require.Len(t, free, 2)
	assert.Equal(t, int64(3), free[0].ID)
	assert.Equal(t, int64(2), free[1].ID)
}

func TestFreeSeatsScenario(t *testing.T) {
	seats := []model.Seat{
		{ID: 1, Price: 40000},
		{ID: 2, Price: 50000},
	}
	tickets := []model.Ticket{{ID: 1, SeatID: 1}}

	free := booking.FreeSeats(seats, tickets)
	require.Len(t, free, 1)
	assert.Equal(t, int64(2), free[0].ID)
}

func TestIsBooked(t *testing.T) {
	tickets := []model.Ticket{{ID: 1, SeatID: 5}}
	assert.True(t, booking.IsBooked(5, tickets))
	assert.False(t, booking.IsBooked(6, tickets))
	assert.False(t, booking.IsBooked(5, nil))
}

func TestBookingOf(t *testing.T) {
	tickets := []model.Ticket{{ID: 1, SeatID: 5, BuyerName: "Ali Valiyev"}}

	tk, ok := booking.BookingOf(5, tickets)
	require.True(t, ok)
	assert.Equal(t, "Ali Valiyev", tk.BuyerName)

	_, ok = booking.BookingOf(6, tickets)
	assert.False(t, ok)
}

func TestSellTicketRejectsUnselectedSeat(t *testing.T) {
	_, err := booking.SellTicket(0, model.Ticket{BuyerName: "A"}, nil)
	assert.ErrorIs(t, err, booking.ErrNoSeatSelected)
}

func TestSellTicketRejectsBookedSeat(t *testing.T) {
	tickets := []model.Ticket{{ID: 1, SeatID: 7}}
	_, err := booking.SellTicket(7, model.Ticket{BuyerName: "A"}, tickets)
	assert.ErrorIs(t, err, booking.ErrSeatAlreadyBooked)
}

func TestSellTicketAcceptsFreeSeat(t *testing.T) {
	tickets := []model.Ticket{{ID: 1, SeatID: 7}}
	tk, err := booking.SellTicket(8, model.Ticket{BuyerName: "A", Date: "2024-06-01"}, tickets)
	require.NoError(t, err)
	assert.Equal(t, int64(8), tk.SeatID)
	assert.Equal(t, "A", tk.BuyerName)
}
