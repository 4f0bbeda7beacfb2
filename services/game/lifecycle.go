package game

import (
	"time"

	game_constants "Camaleon/constants/game"
	models "Camaleon/models/game"
)

// NewRoom builds a waiting room with the host already joined. The room code
// is assigned by whichever store persists it.
func NewRoom(hostID, hostName, topic, mode string) (*models.Room, error) {
	if !TopicExists(topic) {
		return nil, ErrUnknownTopic
	}
	if _, err := MinPlayers(mode); err != nil {
		return nil, err
	}
	return &models.Room{
		HostID: hostID,
		Players: []*models.Player{
			{ID: hostID, Name: hostName},
		},
		State:     models.StateWaiting,
		Topic:     topic,
		Mode:      mode,
		Vote:      models.VoteState{Phase: models.PhaseIdle},
		CreatedAt: time.Now(),
	}, nil
}

// Join adds a player to a waiting room. Joining a room you are already in
// is a no-op so client retries stay harmless.
func Join(room *models.Room, playerID, name string) error {
	if room.FindPlayer(playerID) != nil {
		return nil
	}
	if room.State != models.StateWaiting {
		return ErrGameStarted
	}
	if len(room.Players) >= game_constants.MaxPlayersPerRoom {
		return ErrRoomFull
	}
	if room.HasPlayerNamed(name) {
		return ErrNameTaken
	}
	room.Players = append(room.Players, &models.Player{ID: playerID, Name: name})
	return nil
}

// Leave removes a player. When the host leaves, hosting passes to the first
// remaining player in join order. Reports whether the room ended up empty.
func Leave(room *models.Room, playerID string) (removed bool, empty bool) {
	for i, p := range room.Players {
		if p.ID == playerID {
			room.Players = append(room.Players[:i], room.Players[i+1:]...)
			removed = true
			break
		}
	}
	if !removed {
		return false, len(room.Players) == 0
	}
	if len(room.Players) == 0 {
		return true, true
	}
	if room.HostID == playerID {
		room.HostID = room.Players[0].ID
	}
	return true, false
}

// SetReady toggles a player's ready flag
func SetReady(room *models.Room, playerID string, ready bool) error {
	p := room.FindPlayer(playerID)
	if p == nil {
		return ErrNotMember
	}
	if room.State != models.StateWaiting {
		return ErrGameStarted
	}
	p.Ready = ready
	return nil
}

// TransferHost hands the room over to another current member
func TransferHost(room *models.Room, hostID, newHostID string) error {
	if room.HostID != hostID {
		return ErrNotHost
	}
	if room.FindPlayer(newHostID) == nil {
		return ErrNotMember
	}
	room.HostID = newHostID
	return nil
}

// Start begins the game: picks the secret word, builds and shuffles the
// spin order and assigns every player their word. Host only, and every
// player must be ready.
func Start(room *models.Room, hostID string) error {
	if room.HostID != hostID {
		return ErrNotHost
	}
	if room.State != models.StateWaiting {
		return ErrGameStarted
	}
	min, err := MinPlayers(room.Mode)
	if err != nil {
		return err
	}
	if len(room.Players) < min {
		return ErrNotEnoughPlayers
	}
	if !room.AllReady() {
		return ErrPlayersNotReady
	}

	secret, pool, err := PickWord(room.Topic)
	if err != nil {
		return err
	}
	kinds, err := BuildSpinOrder(room.Mode, len(room.Players))
	if err != nil {
		return err
	}
	assignWords(room, kinds, secret, pool)

	room.State = models.StatePlaying
	room.Vote = models.VoteState{Phase: models.PhaseIdle}
	for _, p := range room.Players {
		p.ResetVote()
		p.Eliminated = false
	}
	return nil
}
