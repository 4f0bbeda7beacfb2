package postgres

import (
	"math/rand"
	"time"

	game_constants "Camaleon/constants/game"

	"gorm.io/gorm"
)

/*
 * 'Room' is the persisted row for a game room. It references RoomPlayer and
 * GameState. Live per-round state is mirrored in Redis and flushed back here
 * by the sync manager.
 */
type Room struct {
	Code         string    `gorm:"primaryKey;size:6;not null"`
	HostID       string    `gorm:"size:64;not null;index:idx_rooms_host"`
	State        string    `gorm:"size:16;default:'waiting';index:idx_rooms_state"`
	Topic        string    `gorm:"size:32"`
	Mode         string    `gorm:"size:16"`
	PasscodeHash string    `gorm:"size:255"`
	CreatedAt    time.Time `gorm:"default:CURRENT_TIMESTAMP"`

	// Relationships
	Players   []*RoomPlayer `gorm:"foreignKey:RoomCode;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	GameState *GameState    `gorm:"foreignKey:RoomCode;constraint:OnDelete:CASCADE;"`
}

// Codes avoid lookalike characters so they survive being read out loud
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func generateRoomCode(length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = codeAlphabet[rand.Intn(len(codeAlphabet))]
	}
	return string(b)
}

// Ensure the code is truly unique before inserting. Collisions are rare at
// this scale but cheap to retry.
func (r *Room) BeforeCreate(tx *gorm.DB) (err error) {
	if r.Code != "" {
		return nil
	}
	for {
		newCode := generateRoomCode(game_constants.RoomCodeLength)
		var existing Room
		if err := tx.Where("code = ?", newCode).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				r.Code = newCode
				return nil
			}
			return err
		}
		// code taken, roll again
	}
}
