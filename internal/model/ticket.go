package model

// Ticket records the sale of one seat for one play. At any point in
// time a seat id appears in at most one ticket; the booking package
// enforces that on every sale.
//
// Fields:
//  ID        – unique record identifier.
//  PlayID    – play the ticket was sold for.
//  SeatID    – seat the ticket occupies.
//  BuyerName – free-text buyer name.
//  Date      – free-text sale date as entered by the operator. Not
//              trusted for ordering; recency is insertion order.
type Ticket struct {
	ID        int64  `json:"id"`
	PlayID    int64  `json:"play_id"`
	SeatID    int64  `json:"seat_id"`
	BuyerName string `json:"buyer_name"`
	Date      string `json:"date"`
}

// RecordID implements store.Record.
func (t Ticket) RecordID() int64 { return t.ID }

// WithID implements store.Record.
func (t Ticket) WithID(id int64) Ticket { t.ID = id; return t }
