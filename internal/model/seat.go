package model

// Seat describes a physical seat in the hall. The hall is a fixed
// grid, so row and number pairs are unique by construction, though
// nothing in the model enforces that.
//
// Fields:
//  ID     – unique record identifier.
//  Row    – row in the hall (1-based).
//  Number – position within the row (1-based).
//  Price  – ticket price for this seat.
type Seat struct {
	ID     int64 `json:"id"`
	Row    int   `json:"row"`
	Number int   `json:"number"`
	Price  int64 `json:"price"`
}

// RecordID implements store.Record.
func (s Seat) RecordID() int64 { return s.ID }

// WithID implements store.Record.
func (s Seat) WithID(id int64) Seat { s.ID = id; return s }
