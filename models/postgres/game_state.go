package postgres

import (
	"gorm.io/datatypes"
)

/*
 * 'GameState' holds the per-game columns of a room that only exist once the
 * game has started: the secret word, the shuffled spin order and the state
 * of the current voting round.
 */
type GameState struct {
	RoomCode   string `gorm:"primaryKey;size:6;not null"`
	SecretWord string `gorm:"size:64"`

	SpinOrder datatypes.JSON `gorm:"type:jsonb;default:'[]'"`

	VotePhase      string         `gorm:"size:16;default:'idle'"`
	TieBreakRound  int            `gorm:"default:0"`
	TiedPlayers    datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
	LastEliminated string         `gorm:"size:64"`

	// Relationship with the room
	Room Room `gorm:"foreignKey:RoomCode"`
}
