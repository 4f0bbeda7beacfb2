package game_models

import (
	"strings"
	"time"
)

// Room phase within a game
type RoomState string

const (
	StateWaiting  RoomState = "waiting"
	StatePlaying  RoomState = "playing"
	StateFinished RoomState = "finished"
)

// Voting phase of the current round
type VotePhase string

const (
	PhaseIdle     VotePhase = "idle"
	PhaseVoting   VotePhase = "voting"
	PhaseTieBreak VotePhase = "tie_break"
	PhaseResolved VotePhase = "resolved"
)

/*
 * 'Room' is the live representation of a game room. It is what the in-memory
 * store holds, what gets snapshotted to Redis, and what the Postgres store
 * maps to/from its rows.
 */
type Room struct {
	Code       string      `json:"code"` // 6 chars, stored uppercase
	HostID     string      `json:"host_id"`
	Players    []*Player   `json:"players"` // join order matters for host reassignment
	State      RoomState   `json:"state"`
	Topic      string      `json:"topic"`
	Mode       string      `json:"mode"`
	SecretWord string      `json:"secret_word,omitempty"`
	SpinOrder  []SpinEntry `json:"spin_order,omitempty"`
	Vote       VoteState   `json:"vote"`
	// bcrypt hash, empty for public rooms
	PasscodeHash string    `json:"passcode_hash,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// One slot of the shuffled spin order
type SpinEntry struct {
	PlayerID string `json:"player_id"`
	Kind     string `json:"kind"` // normal | similar | impostor
}

// VoteState tracks the current voting round of a room
type VoteState struct {
	Phase         VotePhase `json:"phase"`
	TieBreakRound int       `json:"tie_break_round"`
	// non-empty only during a tie-break: the only legal targets
	TiedPlayers []string `json:"tied_players,omitempty"`
	// player eliminated by the last resolved round
	LastEliminated string `json:"last_eliminated,omitempty"`
}

// NormalizeCode uppercases a room code so lookups are case-insensitive
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// FindPlayer returns the player with the given id, or nil
func (r *Room) FindPlayer(playerID string) *Player {
	for _, p := range r.Players {
		if p.ID == playerID {
			return p
		}
	}
	return nil
}

// HasPlayerNamed reports whether a display name is already taken,
// case-insensitively
func (r *Room) HasPlayerNamed(name string) bool {
	for _, p := range r.Players {
		if strings.EqualFold(p.Name, name) {
			return true
		}
	}
	return false
}

// ActivePlayers returns the players still in the game (not eliminated)
func (r *Room) ActivePlayers() []*Player {
	active := make([]*Player, 0, len(r.Players))
	for _, p := range r.Players {
		if !p.Eliminated {
			active = append(active, p)
		}
	}
	return active
}

// AllReady reports whether every player flagged ready
func (r *Room) AllReady() bool {
	for _, p := range r.Players {
		if !p.Ready {
			return false
		}
	}
	return true
}

// IsTiedPlayer reports whether a player is among the tie-break targets
func (v *VoteState) IsTiedPlayer(playerID string) bool {
	for _, id := range v.TiedPlayers {
		if id == playerID {
			return true
		}
	}
	return false
}
