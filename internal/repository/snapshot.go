// Package repository persists the application state to Redis. The
// layout mirrors the collections themselves: one JSON array per
// collection under its own key, the boolean login flag, and a schema
// version key so a future layout change can migrate old data instead
// of guessing. A nil Redis client disables persistence entirely and
// the service runs memory-only.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/theater-dashboard/internal/model"
	"github.com/iliyamo/theater-dashboard/internal/state"
)

// SchemaVersion is written alongside every snapshot. Load refuses
// versions newer than it understands.
const SchemaVersion = 1

const (
	keyVersion   = "theater:schema_version"
	keyDirectors = "theater:directors"
	keyPlays     = "theater:plays"
	keySeats     = "theater:seats"
	keyTickets   = "theater:tickets"
	keyAuth      = "theater:authenticated"
)

// ErrNoSnapshot is returned by Load when no prior state exists. The
// caller should fall back to seed data.
var ErrNoSnapshot = errors.New("no snapshot persisted")

// SnapshotRepo reads and writes full state snapshots.
type SnapshotRepo struct {
	rdb *redis.Client
}

// NewSnapshotRepo constructs a SnapshotRepo. The client may be nil,
// in which case Enabled reports false and Load/Save are no-ops.
func NewSnapshotRepo(rdb *redis.Client) *SnapshotRepo {
	return &SnapshotRepo{rdb: rdb}
}

// Enabled reports whether a Redis client is attached.
func (r *SnapshotRepo) Enabled() bool { return r != nil && r.rdb != nil }

// Load restores the last persisted snapshot. It returns ErrNoSnapshot
// when the version key is absent (first run) or persistence is
// disabled.
func (r *SnapshotRepo) Load(ctx context.Context) (state.Snapshot, error) {
	var snap state.Snapshot
	if !r.Enabled() {
		return snap, ErrNoSnapshot
	}
	version, err := r.rdb.Get(ctx, keyVersion).Int()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return snap, ErrNoSnapshot
		}
		return snap, err
	}
	if version > SchemaVersion {
		return snap, fmt.Errorf("snapshot schema version %d is newer than supported version %d", version, SchemaVersion)
	}
	if err := r.loadCollection(ctx, keyDirectors, &snap.Directors); err != nil {
		return state.Snapshot{}, err
	}
	if err := r.loadCollection(ctx, keyPlays, &snap.Plays); err != nil {
		return state.Snapshot{}, err
	}
	if err := r.loadCollection(ctx, keySeats, &snap.Seats); err != nil {
		return state.Snapshot{}, err
	}
	if err := r.loadCollection(ctx, keyTickets, &snap.Tickets); err != nil {
		return state.Snapshot{}, err
	}
	raw, err := r.rdb.Get(ctx, keyAuth).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return state.Snapshot{}, err
	}
	if err == nil {
		snap.Authenticated, _ = strconv.ParseBool(raw)
	}
	return snap, nil
}

func (r *SnapshotRepo) loadCollection(ctx context.Context, key string, dst any) error {
	raw, err := r.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			// Missing collection under a present version key: treat as
			// empty rather than failing the whole load.
			return nil
		}
		return err
	}
	return json.Unmarshal(raw, dst)
}

// Save writes the whole snapshot in one transaction so the four
// collections are always replaced together.
func (r *SnapshotRepo) Save(ctx context.Context, snap state.Snapshot) error {
	if !r.Enabled() {
		return nil
	}
	directors, err := marshalCollection(snap.Directors)
	if err != nil {
		return err
	}
	plays, err := marshalCollection(snap.Plays)
	if err != nil {
		return err
	}
	seats, err := marshalCollection(snap.Seats)
	if err != nil {
		return err
	}
	tickets, err := marshalCollection(snap.Tickets)
	if err != nil {
		return err
	}
	_, err = r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, keyVersion, SchemaVersion, 0)
		pipe.Set(ctx, keyDirectors, directors, 0)
		pipe.Set(ctx, keyPlays, plays, 0)
		pipe.Set(ctx, keySeats, seats, 0)
		pipe.Set(ctx, keyTickets, tickets, 0)
		pipe.Set(ctx, keyAuth, strconv.FormatBool(snap.Authenticated), 0)
		return nil
	})
	return err
}

// marshalCollection encodes a collection as a JSON array, never null,
// so an emptied collection round-trips as empty.
func marshalCollection[T model.Director | model.Play | model.Seat | model.Ticket](records []T) ([]byte, error) {
	if records == nil {
		records = []T{}
	}
	return json.Marshal(records)
}
