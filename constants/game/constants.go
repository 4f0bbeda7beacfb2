package game_constants

import "time"

// Room limits
const MaxPlayersPerRoom = 8
const RoomCodeLength = 6

// Minimum players needed to start, per game mode
const (
	MinPlayersSimilar  = 2
	MinPlayersImpostor = 3
	MinPlayersMixed    = 5
)

// Game modes
const (
	ModeSimilar  = "similar"
	ModeImpostor = "impostor"
	ModeMixed    = "mixed"
)

// Word kinds assigned through the spin order
const (
	WordKindNormal   = "normal"
	WordKindSimilar  = "similar"
	WordKindImpostor = "impostor"
)

// What an impostor sees instead of the secret word
const ImpostorPlaceholder = "???"

// A decoy must share at least this letter ratio with the secret word,
// otherwise we fall back to a random word from the topic pool.
const SimilarityThreshold = 0.6

// Empty rooms linger this long before the in-memory store drops them,
// so a transient disconnect of the last player doesn't kill the room.
const EmptyRoomGracePeriod = 60 * time.Second

// Live room snapshots in Redis expire after this TTL
const LiveRoomTTL = 24 * time.Hour
