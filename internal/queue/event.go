// Package queue defines message payloads exchanged over the message
// broker and the publisher that ships them.
package queue

// TicketSoldEvent is published after a sale is committed to the
// application state. It carries enough context for downstream
// consumers to log or feed analytics without querying the service.
type TicketSoldEvent struct {
	TicketID  int64  `json:"ticket_id"`
	PlayID    int64  `json:"play_id"`
	PlayTitle string `json:"play_title"`
	SeatID    int64  `json:"seat_id"`
	SeatRow   int    `json:"seat_row"`
	SeatNum   int    `json:"seat_number"`
	Price     int64  `json:"price"`
	BuyerName string `json:"buyer_name"`
	Date      string `json:"date"`
	SoldAt    string `json:"sold_at"`
}
