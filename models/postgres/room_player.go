package postgres

/*
 * 'RoomPlayer' represents a player's membership and game state inside a
 * room. Composite primary key over (room_code, player_id).
 */
type RoomPlayer struct {
	// NOTE: composite primary key definition
	RoomCode string `gorm:"primaryKey;size:6;not null"`
	PlayerID string `gorm:"primaryKey;size:64;not null;index"`
	Name     string `gorm:"size:50;not null"`
	Position int    `gorm:"not null"` // join order, drives host reassignment
	Ready    bool   `gorm:"default:false"`

	Word     string `gorm:"size:64"`
	WordKind string `gorm:"size:16"`

	HasVoted   bool   `gorm:"default:false"`
	VotedFor   string `gorm:"size:64"`
	VoteCount  int    `gorm:"default:0"`
	Eliminated bool   `gorm:"default:false"`

	// Relationship with the room
	Room Room `gorm:"foreignKey:RoomCode"`
}
