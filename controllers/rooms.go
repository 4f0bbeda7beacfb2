package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"Camaleon/middleware"
	game_models "Camaleon/models/game"
	redis_models "Camaleon/models/redis"
	"Camaleon/services/game"
	"Camaleon/services/redis"
	"Camaleon/services/store"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// publish snapshots the room to Redis and fires a coarse event on its
// channel. Fire-and-forget: failures are logged and masked by the clients'
// polling fallback.
func publish(rc *redis.RedisClient, room *game_models.Room, event, actor string, payload json.RawMessage) {
	if rc == nil {
		return
	}
	if err := rc.SaveLiveRoom(room); err != nil {
		log.Printf("[BROADCAST-WARN] Error snapshotting room %s: %v", room.Code, err)
	}
	if err := rc.PublishRoomEvent(room.Code, event, actor, payload); err != nil {
		log.Printf("[BROADCAST-WARN] Error publishing %s for room %s: %v", event, room.Code, err)
	}
}

// ruleStatus maps game-engine rule violations to HTTP statuses
func ruleStatus(err error) int {
	switch err {
	case store.ErrRoomNotFound:
		return http.StatusNotFound
	case game.ErrNotHost:
		return http.StatusForbidden
	default:
		return http.StatusBadRequest
	}
}

// playerView hides other players' words while a game is running
func playerView(p *game_models.Player, viewerID string, state game_models.RoomState) gin.H {
	view := gin.H{
		"id":         p.ID,
		"name":       p.Name,
		"ready":      p.Ready,
		"has_voted":  p.HasVoted,
		"vote_count": p.VoteCount,
		"eliminated": p.Eliminated,
	}
	if p.ID == viewerID || state == game_models.StateFinished {
		view["word"] = p.Word
		view["word_kind"] = p.WordKind
	}
	return view
}

func roomView(room *game_models.Room, viewerID string) gin.H {
	players := make([]gin.H, len(room.Players))
	for i, p := range room.Players {
		players[i] = playerView(p, viewerID, room.State)
	}
	view := gin.H{
		"code":       room.Code,
		"host_id":    room.HostID,
		"state":      room.State,
		"topic":      room.Topic,
		"mode":       room.Mode,
		"private":    room.PasscodeHash != "",
		"players":    players,
		"created_at": room.CreatedAt,
	}
	if room.State == game_models.StateFinished {
		view["secret_word"] = room.SecretWord
	}
	return view
}

type createRoomRequest struct {
	Topic    string `json:"topic" binding:"required"`
	Mode     string `json:"mode" binding:"required"`
	Passcode string `json:"passcode"`
}

// @Summary Creates a new room
// @Description Creates a waiting room with the caller as host and returns its code
// @Tags rooms
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer guest token"
// @Param request body controllers.createRoomRequest true "topic, mode and optional passcode"
// @Success 200 {object} object{code=string}
// @Failure 400 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Security ApiKeyAuth
// @Router /auth/rooms [post]
func CreateRoom(s store.Store, rc *redis.RedisClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		playerID, name := middleware.PlayerFromContext(c)

		var req createRoomRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Topic and mode are required"})
			return
		}

		room, err := game.NewRoom(playerID, name, req.Topic, req.Mode)
		if err != nil {
			c.JSON(ruleStatus(err), gin.H{"error": err.Error()})
			return
		}

		if req.Passcode != "" {
			hash, err := bcrypt.GenerateFromPassword([]byte(req.Passcode), bcrypt.DefaultCost)
			if err != nil {
				log.Printf("[ROOM-ERROR] Error hashing passcode: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating room"})
				return
			}
			room.PasscodeHash = string(hash)
		}

		if err := s.Create(c.Request.Context(), room); err != nil {
			log.Printf("[ROOM-ERROR] Error creating room: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating room"})
			return
		}

		publish(rc, room, redis_models.EventRoomUpdated, playerID, nil)
		c.JSON(http.StatusOK, roomView(room, playerID))
	}
}

type joinRoomRequest struct {
	Code     string `json:"code" binding:"required"`
	Passcode string `json:"passcode"`
}

// @Summary Joins a room
// @Description Adds the caller to a waiting room; joining twice is a no-op
// @Tags rooms
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer guest token"
// @Param request body controllers.joinRoomRequest true "room code and optional passcode"
// @Success 200 {object} object{code=string}
// @Failure 400 {object} object{error=string}
// @Failure 403 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Security ApiKeyAuth
// @Router /auth/rooms/join [post]
func JoinRoom(s store.Store, rc *redis.RedisClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		playerID, name := middleware.PlayerFromContext(c)

		var req joinRoomRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Room code is required"})
			return
		}

		room, err := s.Get(c.Request.Context(), req.Code)
		if err != nil {
			if err == store.ErrRoomNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
			} else {
				log.Printf("[ROOM-ERROR] Error loading room %s: %v", req.Code, err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading room"})
			}
			return
		}

		if room.PasscodeHash != "" && room.FindPlayer(playerID) == nil {
			if bcrypt.CompareHashAndPassword([]byte(room.PasscodeHash), []byte(req.Passcode)) != nil {
				c.JSON(http.StatusForbidden, gin.H{"error": "Invalid passcode"})
				return
			}
		}

		if err := game.Join(room, playerID, name); err != nil {
			c.JSON(ruleStatus(err), gin.H{"error": err.Error()})
			return
		}

		if err := s.Save(c.Request.Context(), room); err != nil {
			log.Printf("[ROOM-ERROR] Error saving room %s: %v", room.Code, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error joining room"})
			return
		}

		publish(rc, room, redis_models.EventPlayerJoined, playerID, nil)
		c.JSON(http.StatusOK, roomView(room, playerID))
	}
}

type roomActionRequest struct {
	Code string `json:"code" binding:"required"`
}

// @Summary Leaves a room
// @Description Removes the caller; hosting passes to the next player, empty rooms are deleted
// @Tags rooms
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer guest token"
// @Param request body controllers.roomActionRequest true "room code"
// @Success 200 {object} object{message=string}
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Security ApiKeyAuth
// @Router /auth/rooms/leave [post]
func LeaveRoom(s store.Store, rc *redis.RedisClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		playerID, _ := middleware.PlayerFromContext(c)

		var req roomActionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Room code is required"})
			return
		}

		room, err := s.Get(c.Request.Context(), req.Code)
		if err != nil {
			if err == store.ErrRoomNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
			} else {
				log.Printf("[ROOM-ERROR] Error loading room %s: %v", req.Code, err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading room"})
			}
			return
		}

		oldHost := room.HostID
		removed, empty := game.Leave(room, playerID)
		if !removed {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Player is not in this room"})
			return
		}

		if empty {
			if err := s.Delete(c.Request.Context(), room.Code); err != nil && err != store.ErrRoomNotFound {
				log.Printf("[ROOM-ERROR] Error deleting room %s: %v", room.Code, err)
			}
			if rc != nil {
				if err := rc.DeleteLiveRoom(room.Code); err != nil {
					log.Printf("[BROADCAST-WARN] Error dropping room snapshot %s: %v", room.Code, err)
				}
				if err := rc.PublishRoomEvent(room.Code, redis_models.EventRoomClosed, playerID, nil); err != nil {
					log.Printf("[BROADCAST-WARN] Error publishing room_closed for %s: %v", room.Code, err)
				}
			}
			c.JSON(http.StatusOK, gin.H{"message": "Left room, room closed"})
			return
		}

		if err := s.Save(c.Request.Context(), room); err != nil {
			log.Printf("[ROOM-ERROR] Error saving room %s: %v", room.Code, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error leaving room"})
			return
		}

		publish(rc, room, redis_models.EventPlayerLeft, playerID, nil)
		if room.HostID != oldHost {
			publish(rc, room, redis_models.EventHostChanged, room.HostID, nil)
		}
		c.JSON(http.StatusOK, gin.H{"message": "Left room successfully"})
	}
}

type readyRequest struct {
	Code  string `json:"code" binding:"required"`
	Ready *bool  `json:"ready" binding:"required"`
}

// @Summary Sets the caller's ready flag
// @Tags rooms
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer guest token"
// @Param request body controllers.readyRequest true "room code and ready flag"
// @Success 200 {object} object{code=string}
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Security ApiKeyAuth
// @Router /auth/rooms/ready [post]
func SetReady(s store.Store, rc *redis.RedisClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		playerID, _ := middleware.PlayerFromContext(c)

		var req readyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Room code and ready flag are required"})
			return
		}

		room, err := s.Get(c.Request.Context(), req.Code)
		if err != nil {
			if err == store.ErrRoomNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
			} else {
				log.Printf("[ROOM-ERROR] Error loading room %s: %v", req.Code, err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading room"})
			}
			return
		}

		if err := game.SetReady(room, playerID, *req.Ready); err != nil {
			c.JSON(ruleStatus(err), gin.H{"error": err.Error()})
			return
		}
		if err := s.Save(c.Request.Context(), room); err != nil {
			log.Printf("[ROOM-ERROR] Error saving room %s: %v", room.Code, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating ready state"})
			return
		}

		publish(rc, room, redis_models.EventRoomUpdated, playerID, nil)
		c.JSON(http.StatusOK, roomView(room, playerID))
	}
}

// @Summary Starts the game
// @Description Host only; requires the mode's minimum player count and everyone ready
// @Tags rooms
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer guest token"
// @Param request body controllers.roomActionRequest true "room code"
// @Success 200 {object} object{code=string}
// @Failure 400 {object} object{error=string}
// @Failure 403 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Security ApiKeyAuth
// @Router /auth/rooms/start [post]
func StartGame(s store.Store, rc *redis.RedisClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		playerID, _ := middleware.PlayerFromContext(c)

		var req roomActionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Room code is required"})
			return
		}

		room, err := s.Get(c.Request.Context(), req.Code)
		if err != nil {
			if err == store.ErrRoomNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
			} else {
				log.Printf("[ROOM-ERROR] Error loading room %s: %v", req.Code, err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading room"})
			}
			return
		}

		if err := game.Start(room, playerID); err != nil {
			c.JSON(ruleStatus(err), gin.H{"error": err.Error()})
			return
		}
		if err := s.Save(c.Request.Context(), room); err != nil {
			log.Printf("[ROOM-ERROR] Error saving room %s: %v", room.Code, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error starting game"})
			return
		}

		log.Printf("[GAME] Room %s started: mode=%s topic=%s players=%d",
			room.Code, room.Mode, room.Topic, len(room.Players))
		publish(rc, room, redis_models.EventGameStarted, playerID, nil)
		c.JSON(http.StatusOK, roomView(room, playerID))
	}
}

type transferHostRequest struct {
	Code      string `json:"code" binding:"required"`
	NewHostID string `json:"new_host_id" binding:"required"`
}

// @Summary Transfers hosting to another member
// @Tags rooms
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer guest token"
// @Param request body controllers.transferHostRequest true "room code and new host id"
// @Success 200 {object} object{code=string}
// @Failure 400 {object} object{error=string}
// @Failure 403 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Security ApiKeyAuth
// @Router /auth/rooms/transfer-host [post]
func TransferHost(s store.Store, rc *redis.RedisClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		playerID, _ := middleware.PlayerFromContext(c)

		var req transferHostRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Room code and new host are required"})
			return
		}

		room, err := s.Get(c.Request.Context(), req.Code)
		if err != nil {
			if err == store.ErrRoomNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
			} else {
				log.Printf("[ROOM-ERROR] Error loading room %s: %v", req.Code, err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading room"})
			}
			return
		}

		if err := game.TransferHost(room, playerID, req.NewHostID); err != nil {
			c.JSON(ruleStatus(err), gin.H{"error": err.Error()})
			return
		}
		if err := s.Save(c.Request.Context(), room); err != nil {
			log.Printf("[ROOM-ERROR] Error saving room %s: %v", room.Code, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error transferring host"})
			return
		}

		publish(rc, room, redis_models.EventHostChanged, room.HostID, nil)
		c.JSON(http.StatusOK, roomView(room, playerID))
	}
}

// @Summary Opens a voting round
// @Description Host only; moves the vote phase from idle to voting
// @Tags voting
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer guest token"
// @Param request body controllers.roomActionRequest true "room code"
// @Success 200 {object} object{code=string}
// @Failure 400 {object} object{error=string}
// @Failure 403 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Security ApiKeyAuth
// @Router /auth/rooms/begin-voting [post]
func BeginVoting(s store.Store, rc *redis.RedisClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		playerID, _ := middleware.PlayerFromContext(c)

		var req roomActionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Room code is required"})
			return
		}

		room, err := s.Get(c.Request.Context(), req.Code)
		if err != nil {
			if err == store.ErrRoomNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
			} else {
				log.Printf("[ROOM-ERROR] Error loading room %s: %v", req.Code, err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading room"})
			}
			return
		}

		if err := game.BeginVoting(room, playerID); err != nil {
			c.JSON(ruleStatus(err), gin.H{"error": err.Error()})
			return
		}
		if err := s.Save(c.Request.Context(), room); err != nil {
			log.Printf("[ROOM-ERROR] Error saving room %s: %v", room.Code, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error opening voting round"})
			return
		}

		publish(rc, room, redis_models.EventRoomUpdated, playerID, nil)
		c.JSON(http.StatusOK, roomView(room, playerID))
	}
}

type voteRequest struct {
	Code     string `json:"code" binding:"required"`
	TargetID string `json:"target_id" binding:"required"`
}

// @Summary Casts a vote
// @Description Rejected for self-votes, repeat votes or eliminated participants; resolving a round eliminates the leader or opens a tie-break
// @Tags voting
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer guest token"
// @Param request body controllers.voteRequest true "room code and target id"
// @Success 200 {object} object{resolved=bool}
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Security ApiKeyAuth
// @Router /auth/rooms/vote [post]
func CastVote(s store.Store, rc *redis.RedisClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		playerID, _ := middleware.PlayerFromContext(c)

		var req voteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Room code and target are required"})
			return
		}

		room, err := s.Get(c.Request.Context(), req.Code)
		if err != nil {
			if err == store.ErrRoomNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
			} else {
				log.Printf("[ROOM-ERROR] Error loading room %s: %v", req.Code, err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading room"})
			}
			return
		}

		result, err := game.CastVote(room, playerID, req.TargetID)
		if err != nil {
			c.JSON(ruleStatus(err), gin.H{"error": err.Error()})
			return
		}
		if err := s.Save(c.Request.Context(), room); err != nil {
			log.Printf("[ROOM-ERROR] Error saving room %s: %v", room.Code, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error recording vote"})
			return
		}

		publish(rc, room, redis_models.EventVoteCast, playerID, nil)
		if result.Resolved {
			publish(rc, room, redis_models.EventVoteResolved, playerID, nil)
		}
		c.JSON(http.StatusOK, result)
	}
}

type emoteRequest struct {
	Code  string `json:"code" binding:"required"`
	Emote string `json:"emote" binding:"required"`
}

// @Summary Sends an emote
// @Description Broadcast only, no room state is touched
// @Tags rooms
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer guest token"
// @Param request body controllers.emoteRequest true "room code and emote"
// @Success 200 {object} object{message=string}
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Security ApiKeyAuth
// @Router /auth/rooms/emote [post]
func SendEmote(s store.Store, rc *redis.RedisClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		playerID, name := middleware.PlayerFromContext(c)

		var req emoteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Room code and emote are required"})
			return
		}

		room, err := s.Get(c.Request.Context(), req.Code)
		if err != nil {
			if err == store.ErrRoomNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
			} else {
				log.Printf("[ROOM-ERROR] Error loading room %s: %v", req.Code, err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading room"})
			}
			return
		}

		if room.FindPlayer(playerID) == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Player is not in this room"})
			return
		}

		payload, _ := json.Marshal(gin.H{"emote": req.Emote, "name": name})
		if rc != nil {
			if err := rc.PublishRoomEvent(room.Code, redis_models.EventPlayerEmote, playerID, payload); err != nil {
				log.Printf("[BROADCAST-WARN] Error publishing emote for %s: %v", room.Code, err)
			}
		}
		c.JSON(http.StatusOK, gin.H{"message": "Emote sent"})
	}
}

// @Summary Gets a room
// @Description Full room state for the caller; other players' words stay hidden until the game finishes
// @Tags rooms
// @Produce json
// @Param Authorization header string true "Bearer guest token"
// @Param code path string true "room code"
// @Success 200 {object} object{code=string}
// @Failure 404 {object} object{error=string}
// @Security ApiKeyAuth
// @Router /auth/rooms/{code} [get]
func GetRoom(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		playerID, _ := middleware.PlayerFromContext(c)

		room, err := s.Get(c.Request.Context(), c.Param("code"))
		if err != nil {
			if err == store.ErrRoomNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
			} else {
				log.Printf("[ROOM-ERROR] Error loading room %s: %v", c.Param("code"), err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading room"})
			}
			return
		}
		c.JSON(http.StatusOK, roomView(room, playerID))
	}
}

// @Summary Lists all rooms
// @Tags rooms
// @Produce json
// @Param Authorization header string true "Bearer guest token"
// @Success 200 {array} object{code=string}
// @Security ApiKeyAuth
// @Router /auth/rooms [get]
func ListRooms(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		rooms, err := s.List(c.Request.Context())
		if err != nil {
			log.Printf("[ROOM-ERROR] Error listing rooms: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing rooms"})
			return
		}

		list := make([]gin.H, len(rooms))
		for i, room := range rooms {
			list[i] = gin.H{
				"code":         room.Code,
				"state":        room.State,
				"topic":        room.Topic,
				"mode":         room.Mode,
				"private":      room.PasscodeHash != "",
				"player_count": len(room.Players),
			}
		}
		c.JSON(http.StatusOK, list)
	}
}

// @Summary Gets the game state of a room
// @Description Spin order positions and voting state; word kinds are only revealed to their owner, or to everyone once the game is finished
// @Tags voting
// @Produce json
// @Param Authorization header string true "Bearer guest token"
// @Param code path string true "room code"
// @Success 200 {object} object{vote_phase=string}
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Security ApiKeyAuth
// @Router /auth/rooms/{code}/game-state [get]
func GetGameState(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		playerID, _ := middleware.PlayerFromContext(c)

		room, err := s.Get(c.Request.Context(), c.Param("code"))
		if err != nil {
			if err == store.ErrRoomNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
			} else {
				log.Printf("[ROOM-ERROR] Error loading room %s: %v", c.Param("code"), err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading room"})
			}
			return
		}

		if room.State == game_models.StateWaiting {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Game has not started"})
			return
		}

		// spin order leaks who the impostor is, so kinds are per-viewer
		order := make([]gin.H, len(room.SpinOrder))
		for i, entry := range room.SpinOrder {
			e := gin.H{"player_id": entry.PlayerID}
			if entry.PlayerID == playerID || room.State == game_models.StateFinished {
				e["kind"] = entry.Kind
			}
			order[i] = e
		}

		view := gin.H{
			"code":            room.Code,
			"state":           room.State,
			"spin_order":      order,
			"vote_phase":      room.Vote.Phase,
			"tie_break_round": room.Vote.TieBreakRound,
			"tied_players":    room.Vote.TiedPlayers,
			"last_eliminated": room.Vote.LastEliminated,
		}
		if room.State == game_models.StateFinished {
			view["secret_word"] = room.SecretWord
		}
		c.JSON(http.StatusOK, view)
	}
}
