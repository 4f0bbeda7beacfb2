package handlers

import (
	"log"

	game_models "Camaleon/models/game"
	redis_models "Camaleon/models/redis"
	"Camaleon/services/redis"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
)

// HandleLeaveRoom unsubscribes a client socket from a room's events. The
// roster itself is changed over HTTP, not here.
func HandleLeaveRoom(redisClient *redis.RedisClient, client *socket.Socket,
	playerID string) func(args ...interface{}) {
	return func(args ...interface{}) {
		if len(args) < 1 {
			client.Emit("error", gin.H{"error": "Falta el código de la sala"})
			return
		}
		code, ok := args[0].(string)
		if !ok {
			client.Emit("error", gin.H{"error": "Invalid room code"})
			return
		}
		code = game_models.NormalizeCode(code)

		client.Leave(socket.Room(code))

		if err := redisClient.SavePlayerPresence(&redis_models.PlayerPresence{
			PlayerID: playerID,
			Room:     code,
			Status:   redis_models.StatusOffline,
			SocketID: string(client.Id()),
		}); err != nil {
			log.Printf("[LEAVE-WARN] Error saving presence for %s: %v", playerID, err)
		}

		log.Printf("[LEAVE] Player %s unsubscribed from room %s", playerID, code)
		client.Emit("room_left", gin.H{"room": code})
	}
}
