// Package store provides the ordered, id-keyed record collections the
// application state is built from. One Store holds all records of a
// single entity type, newest first. Stores are not safe for concurrent
// use on their own; the state package serializes access.
package store

// Record is implemented by every entity held in a Store. WithID
// returns a copy of the record with the id replaced, which lets the
// store assign identifiers without knowing the concrete type.
type Record[T any] interface {
	RecordID() int64
	WithID(id int64) T
}

// Store maintains an ordered collection of records of one entity
// type. New records are prepended, so iteration order is
// newest-first. Identifiers are assigned from a monotonic counter
// kept strictly above every id ever observed, so rapid successive
// creates can never collide.
type Store[T Record[T]] struct {
	records []T
	nextID  int64
}

// New builds a Store seeded with the given records, which keep their
// existing ids and order. The id counter starts above the largest
// seeded id.
func New[T Record[T]](records []T) *Store[T] {
	s := &Store[T]{}
	s.Replace(records)
	return s
}

// Create assigns a fresh id to the record, prepends it and returns
// the stored copy.
func (s *Store[T]) Create(record T) T {
	record = record.WithID(s.nextID)
	s.nextID++
	s.records = append([]T{record}, s.records...)
	return record
}

// Update applies the given mutation to the record with the matching
// id, leaving its position in the collection untouched. It returns
// false when no record has that id. The apply function must not
// change the record's id.
func (s *Store[T]) Update(id int64, apply func(T) T) bool {
	for i, r := range s.records {
		if r.RecordID() == id {
			s.records[i] = apply(r).WithID(id)
			return true
		}
	}
	return false
}

// Delete removes the record with the given id. Deleting an absent id
// is a no-op, so the operation is idempotent.
func (s *Store[T]) Delete(id int64) {
	for i, r := range s.records {
		if r.RecordID() == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return
		}
	}
}

// FindByID returns the record with the given id, or false when it
// does not exist.
func (s *Store[T]) FindByID(id int64) (T, bool) {
	for _, r := range s.records {
		if r.RecordID() == id {
			return r, true
		}
	}
	var zero T
	return zero, false
}

// All returns a copy of the collection in its current order. Mutating
// the returned slice does not affect the store.
func (s *Store[T]) All() []T {
	out := make([]T, len(s.records))
	copy(out, s.records)
	return out
}

// Len reports the number of records in the collection.
func (s *Store[T]) Len() int { return len(s.records) }

// Replace swaps the whole collection for the given records and
// re-derives the id counter. Used by the seed, reset and snapshot
// load paths only.
func (s *Store[T]) Replace(records []T) {
	s.records = make([]T, len(records))
	copy(s.records, records)
	s.nextID = 1
	for _, r := range records {
		if r.RecordID() >= s.nextID {
			s.nextID = r.RecordID() + 1
		}
	}
}
