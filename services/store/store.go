package store

import (
	"context"
	"errors"

	game_models "Camaleon/models/game"
)

// ErrRoomNotFound is returned when a code matches no room
var ErrRoomNotFound = errors.New("room not found")

/*
 * 'Store' is the single authoritative room registry. The same state machine
 * runs against either backend: the in-memory map for ephemeral deployments
 * and Postgres for persisted ones (ROOM_STORE env var picks one).
 *
 * NOTE: load-mutate-save with no cross-request transactional guard, same as
 * the rest of the system. Two simultaneous joins can both pass the capacity
 * check; acceptable at party-game scale.
 */
type Store interface {
	// Create persists a new room, assigning it a unique code
	Create(ctx context.Context, room *game_models.Room) error
	// Get loads a room by its case-insensitive code
	Get(ctx context.Context, code string) (*game_models.Room, error)
	// Save writes back a mutated room
	Save(ctx context.Context, room *game_models.Room) error
	// Delete removes a room (backends may delay actual removal)
	Delete(ctx context.Context, code string) error
	// List returns all rooms
	List(ctx context.Context) ([]*game_models.Room, error)
}
