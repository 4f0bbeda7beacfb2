package sync

import (
	"database/sql"
	"fmt"

	game_models "Camaleon/models/game"
	"Camaleon/services/redis"
)

// SyncManager flushes live room state from Redis into the Postgres rows.
// It runs with raw SQL so a flush never trips model hooks.
type SyncManager struct {
	redisClient *redis.RedisClient
	db          *sql.DB
}

// NewSyncManager creates a new instance of the synchronization manager
func NewSyncManager(redisClient *redis.RedisClient, db *sql.DB) *SyncManager {
	return &SyncManager{
		redisClient: redisClient,
		db:          db,
	}
}

// SyncPlayerState synchronizes one player's state from Redis to PostgreSQL
func (sm *SyncManager) SyncPlayerState(roomCode, playerID string) error {
	room, err := sm.redisClient.GetLiveRoom(roomCode)
	if err != nil {
		return fmt.Errorf("error getting room state from Redis: %v", err)
	}
	if room == nil {
		return fmt.Errorf("no live state for room %s", roomCode)
	}
	return sm.flushPlayer(room, playerID)
}

func (sm *SyncManager) flushPlayer(room *game_models.Room, playerID string) error {
	player := room.FindPlayer(playerID)
	if player == nil {
		return fmt.Errorf("player %s not in live room %s", playerID, room.Code)
	}

	playerQuery := `
		UPDATE room_players
		SET
			ready = $1,
			word = $2,
			word_kind = $3,
			has_voted = $4,
			voted_for = $5,
			vote_count = $6,
			eliminated = $7
		WHERE room_code = $8 AND player_id = $9
	`

	_, err := sm.db.Exec(playerQuery,
		player.Ready,
		player.Word,
		player.WordKind,
		player.HasVoted,
		player.VotedFor,
		player.VoteCount,
		player.Eliminated,
		room.Code,
		playerID)

	if err != nil {
		return fmt.Errorf("error updating player state in PostgreSQL: %v", err)
	}

	return nil
}

// SyncRoomState synchronizes the room row and its voting state
func (sm *SyncManager) SyncRoomState(roomCode string) error {
	room, err := sm.redisClient.GetLiveRoom(roomCode)
	if err != nil {
		return fmt.Errorf("error getting room state from Redis: %v", err)
	}
	if room == nil {
		return fmt.Errorf("no live state for room %s", roomCode)
	}
	return sm.flushRoom(room)
}

func (sm *SyncManager) flushRoom(room *game_models.Room) error {
	tx, err := sm.db.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %v", err)
	}
	defer tx.Rollback()

	roomQuery := `
		UPDATE rooms
		SET
			host_id = $1,
			state = $2
		WHERE code = $3
	`

	if _, err = tx.Exec(roomQuery, room.HostID, string(room.State), room.Code); err != nil {
		return fmt.Errorf("error updating room state in PostgreSQL: %v", err)
	}

	stateQuery := `
		UPDATE game_states
		SET
			vote_phase = $1,
			tie_break_round = $2,
			last_eliminated = $3
		WHERE room_code = $4
	`

	if _, err = tx.Exec(stateQuery,
		string(room.Vote.Phase),
		room.Vote.TieBreakRound,
		room.Vote.LastEliminated,
		room.Code); err != nil {
		return fmt.Errorf("error updating game state in PostgreSQL: %v", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %v", err)
	}

	return nil
}

// CleanupGameData flushes the final state of a finished game and clears the
// Redis keys
func (sm *SyncManager) CleanupGameData(roomCode string) error {
	room, err := sm.redisClient.GetLiveRoom(roomCode)
	if err != nil {
		return fmt.Errorf("error getting room state from Redis: %v", err)
	}
	if room == nil {
		return fmt.Errorf("no live state for room %s", roomCode)
	}

	for _, player := range room.Players {
		if err := sm.flushPlayer(room, player.ID); err != nil {
			return fmt.Errorf("error syncing final player state: %v", err)
		}
	}

	if err := sm.flushRoom(room); err != nil {
		return fmt.Errorf("error syncing final room state: %v", err)
	}

	if err := sm.redisClient.DeleteLiveRoom(roomCode); err != nil {
		return fmt.Errorf("error cleaning room state from Redis: %v", err)
	}
	for _, player := range room.Players {
		if err := sm.redisClient.DeletePlayerPresence(player.ID); err != nil {
			return fmt.Errorf("error cleaning player presence from Redis: %v", err)
		}
	}

	return nil
}
