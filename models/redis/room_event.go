package redis

import "encoding/json"

// Event names published on a room's channel. Events are signals: clients
// re-fetch the room over HTTP instead of trusting a payload.
const (
	EventRoomUpdated  = "room_updated"
	EventPlayerJoined = "player_joined"
	EventPlayerLeft   = "player_left"
	EventGameStarted  = "game_started"
	EventVoteCast     = "vote_cast"
	EventVoteResolved = "vote_resolved"
	EventPlayerEmote  = "player_emote"
	EventHostChanged  = "host_changed"
	EventRoomClosed   = "room_closed"
)

// RoomEvent is what travels over the per-room pub/sub channel
type RoomEvent struct {
	Room    string          `json:"room"`
	Event   string          `json:"event"`
	Actor   string          `json:"actor,omitempty"`
	Payload json.RawMessage `json:"payload,omitempty"` // only for transient events (emotes)
	SentAt  int64           `json:"sent_at"`           // Unix timestamp
}
