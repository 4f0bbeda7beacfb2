package handlers

import (
	"log"

	redis_models "Camaleon/models/redis"
	"Camaleon/services/redis"
	socketio_types "Camaleon/services/socket_io/types"
)

// HandleDisconnecting marks the player offline and drops the connection
// from the map. The player stays in their room: transient disconnects are
// tolerated, leaving is an explicit HTTP action.
func HandleDisconnecting(playerID string, sio *socketio_types.SocketServer,
	redisClient *redis.RedisClient) func(args ...interface{}) {
	return func(args ...interface{}) {
		log.Printf("[DISCONNECT] Player %s disconnecting", playerID)

		presence, err := redisClient.GetPlayerPresence(playerID)
		if err != nil {
			log.Printf("[DISCONNECT-WARN] Error reading presence for %s: %v", playerID, err)
		}
		room := ""
		if presence != nil {
			room = presence.Room
		}

		if err := redisClient.SavePlayerPresence(&redis_models.PlayerPresence{
			PlayerID: playerID,
			Room:     room,
			Status:   redis_models.StatusOffline,
		}); err != nil {
			log.Printf("[DISCONNECT-WARN] Error saving presence for %s: %v", playerID, err)
		}

		sio.RemoveConnection(playerID)
		log.Printf("[DISCONNECT-SUCCESS] Player %s removed from connection map", playerID)
	}
}
