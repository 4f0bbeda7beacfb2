package socket_io

import (
	"encoding/json"
	"log"

	game_models "Camaleon/models/game"
	redis_models "Camaleon/models/redis"
	"Camaleon/services/redis"
	socketio_types "Camaleon/services/socket_io/types"
	"Camaleon/sync"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
)

// RunEventBridge pumps room events from Redis pub/sub into socket.io rooms.
// Events are refetch signals; only transient payloads (emotes) ride along.
// When a game ends, the live Redis state gets flushed back to Postgres.
func RunEventBridge(sio *socketio_types.SocketServer,
	redisClient *redis.RedisClient, syncManager *sync.SyncManager) {
	pubsub := redisClient.SubscribeRoomEvents()
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		var event redis_models.RoomEvent
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			log.Printf("[BRIDGE-WARN] Dropping malformed room event: %v", err)
			continue
		}

		sio.Sio_server.To(socket.Room(event.Room)).Emit(event.Event, gin.H{
			"room":    event.Room,
			"actor":   event.Actor,
			"payload": event.Payload,
			"sent_at": event.SentAt,
		})

		if event.Event == redis_models.EventVoteResolved && syncManager != nil {
			flushIfFinished(redisClient, syncManager, event.Room)
		}
	}
}

func flushIfFinished(redisClient *redis.RedisClient, syncManager *sync.SyncManager, code string) {
	room, err := redisClient.GetLiveRoom(code)
	if err != nil || room == nil {
		return
	}
	if room.State != game_models.StateFinished {
		return
	}
	if err := syncManager.CleanupGameData(code); err != nil {
		log.Printf("[BRIDGE-WARN] Error flushing finished room %s: %v", code, err)
	}
}
