package handlers

import (
	"log"

	game_models "Camaleon/models/game"
	redis_models "Camaleon/models/redis"
	"Camaleon/services/redis"
	"Camaleon/services/store"
	"Camaleon/utils"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
)

// HandleJoinRoom subscribes a client socket to its room's event channel.
// Membership is established over HTTP first; the socket only listens.
func HandleJoinRoom(s store.Store, redisClient *redis.RedisClient,
	client *socket.Socket, playerID string) func(args ...interface{}) {
	return func(args ...interface{}) {
		log.Printf("[JOIN] HandleJoinRoom started - Player: %s, Socket ID: %s",
			playerID, client.Id())

		if len(args) < 1 {
			log.Printf("[JOIN-ERROR] Missing room code for player %s", playerID)
			client.Emit("error", gin.H{"error": "Falta el código de la sala"})
			return
		}

		code, ok := args[0].(string)
		if !ok {
			client.Emit("error", gin.H{"error": "Invalid room code"})
			return
		}
		code = game_models.NormalizeCode(code)

		room, err := utils.CheckRoomExists(s, code, client)
		if err != nil {
			return
		}
		if !utils.IsPlayerInRoom(room, playerID, client) {
			return
		}

		if err := redisClient.SavePlayerPresence(&redis_models.PlayerPresence{
			PlayerID: playerID,
			Room:     code,
			Status:   redis_models.StatusOnline,
			SocketID: string(client.Id()),
		}); err != nil {
			log.Printf("[JOIN-WARN] Error saving presence for %s: %v", playerID, err)
		}

		client.Join(socket.Room(code))

		log.Printf("[JOIN-SUCCESS] Player %s subscribed to room %s", playerID, code)
		client.Emit("room_joined", gin.H{
			"room":    code,
			"message": "¡Bienvenido a la sala!",
		})
	}
}
