// Package state owns the four record collections and the
// authentication flag. There is exactly one State per process, built
// in main and handed to the handlers; nothing else holds collection
// references. A single mutex serializes every operation, which makes
// the sell path's check-then-insert atomic even though Echo runs
// handlers concurrently.
package state

import (
	"errors"
	"sync"

	"github.com/iliyamo/theater-dashboard/internal/booking"
	"github.com/iliyamo/theater-dashboard/internal/model"
	"github.com/iliyamo/theater-dashboard/internal/seed"
	"github.com/iliyamo/theater-dashboard/internal/store"
)

// ErrSeatNotFound is returned by SellTicket when the requested seat
// id does not exist at all. Handlers translate it into a 404.
var ErrSeatNotFound = errors.New("seat not found")

// Snapshot is a deep copy of everything the State owns, used for
// persistence and for the pure projection functions.
type Snapshot struct {
	Directors     []model.Director `json:"directors"`
	Plays         []model.Play     `json:"plays"`
	Seats         []model.Seat     `json:"seats"`
	Tickets       []model.Ticket   `json:"tickets"`
	Authenticated bool             `json:"authenticated"`
}

// State is the root application state.
type State struct {
	mu            sync.Mutex
	directors     *store.Store[model.Director]
	plays         *store.Store[model.Play]
	seats         *store.Store[model.Seat]
	tickets       *store.Store[model.Ticket]
	authenticated bool
}

// NewFromSeed builds a State populated with freshly generated seed
// data. Used on first run, when no snapshot exists yet.
func NewFromSeed() *State {
	directors := seed.Directors()
	plays := seed.Plays(len(directors))
	seats := seed.Seats()
	return &State{
		directors: store.New(directors),
		plays:     store.New(plays),
		seats:     store.New(seats),
		tickets:   store.New(seed.Tickets(len(plays), len(seats))),
	}
}

// NewFromSnapshot restores a State from a previously persisted
// snapshot.
func NewFromSnapshot(snap Snapshot) *State {
	return &State{
		directors:     store.New(snap.Directors),
		plays:         store.New(snap.Plays),
		seats:         store.New(snap.Seats),
		tickets:       store.New(snap.Tickets),
		authenticated: snap.Authenticated,
	}
}

// Snapshot returns a copy of all collections and the auth flag.
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Directors:     s.directors.All(),
		Plays:         s.plays.All(),
		Seats:         s.seats.All(),
		Tickets:       s.tickets.All(),
		Authenticated: s.authenticated,
	}
}

// Reset replaces all four collections with fresh seed data in one
// step. There is no partial reset: every collection is swapped or,
// if the caller bails out earlier, none is.
func (s *State) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	directors := seed.Directors()
	plays := seed.Plays(len(directors))
	seats := seed.Seats()
	s.directors.Replace(directors)
	s.plays.Replace(plays)
	s.seats.Replace(seats)
	s.tickets.Replace(seed.Tickets(len(plays), len(seats)))
}

// Authenticated reports the persisted login flag.
func (s *State) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated
}

// SetAuthenticated flips the persisted login flag.
func (s *State) SetAuthenticated(v bool) {
	s.mu.Lock()
	s.authenticated = v
	s.mu.Unlock()
}

// Directors returns a copy of the director collection.
func (s *State) Directors() []model.Director {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.directors.All()
}

// CreateDirector stores a new director and returns it with its id.
func (s *State) CreateDirector(d model.Director) model.Director {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.directors.Create(d)
}

// UpdateDirector applies a mutation to one director; false when the
// id is unknown.
func (s *State) UpdateDirector(id int64, apply func(model.Director) model.Director) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.directors.Update(id, apply)
}

// DeleteDirector removes a director; absent ids are a no-op.
func (s *State) DeleteDirector(id int64) {
	s.mu.Lock()
	s.directors.Delete(id)
	s.mu.Unlock()
}

// FindDirector looks a director up by id.
func (s *State) FindDirector(id int64) (model.Director, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.directors.FindByID(id)
}

// Plays returns a copy of the play collection.
func (s *State) Plays() []model.Play {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.plays.All()
}

// CreatePlay stores a new play and returns it with its id.
func (s *State) CreatePlay(p model.Play) model.Play {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.plays.Create(p)
}

// UpdatePlay applies a mutation to one play; false when the id is
// unknown.
func (s *State) UpdatePlay(id int64, apply func(model.Play) model.Play) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.plays.Update(id, apply)
}

// DeletePlay removes a play; absent ids are a no-op. Tickets sold for
// the play keep their dangling reference and render as "unknown".
func (s *State) DeletePlay(id int64) {
	s.mu.Lock()
	s.plays.Delete(id)
	s.mu.Unlock()
}

// FindPlay looks a play up by id.
func (s *State) FindPlay(id int64) (model.Play, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.plays.FindByID(id)
}

// Seats returns a copy of the seat collection.
func (s *State) Seats() []model.Seat {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seats.All()
}

// Tickets returns a copy of the ticket collection.
func (s *State) Tickets() []model.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tickets.All()
}

// DeleteTicket removes a ticket, freeing its seat; absent ids are a
// no-op.
func (s *State) DeleteTicket(id int64) {
	s.mu.Lock()
	s.tickets.Delete(id)
	s.mu.Unlock()
}

// SellTicket books a seat. The availability check and the insert run
// under the state lock, so two concurrent sales for the same seat
// cannot both succeed. Returns ErrSeatNotFound for unknown seats and
// the booking package's errors for unselected or taken ones.
func (s *State) SellTicket(seatID int64, draft model.Ticket) (model.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seatID != 0 {
		if _, ok := s.seats.FindByID(seatID); !ok {
			return model.Ticket{}, ErrSeatNotFound
		}
	}
	ticket, err := booking.SellTicket(seatID, draft, s.tickets.All())
	if err != nil {
		return model.Ticket{}, err
	}
	return s.tickets.Create(ticket), nil
}

// Counts reports the size of each collection, in the order the
// assistant prompt expects them.
func (s *State) Counts() (directors, plays, seats, tickets int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.directors.Len(), s.plays.Len(), s.seats.Len(), s.tickets.Len()
}
