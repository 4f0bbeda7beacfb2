package redis

import (
	"encoding/json"
	"fmt"
	"time"

	game_models "Camaleon/models/game"
	redis_models "Camaleon/models/redis"
	redis_utils "Camaleon/services/redis/utils"

	"github.com/redis/go-redis/v9"
)

/**
 * The broadcast layer. Every mutating action publishes a coarse event on
 * the room's channel; the socket.io bridge re-emits it to connected
 * clients, which then re-fetch the room over HTTP. No payload-driven sync.
 */

// PublishRoomEvent publishes an event on "room:{code}:events"
func (rc *RedisClient) PublishRoomEvent(code, event, actor string, payload json.RawMessage) error {
	code = game_models.NormalizeCode(code)
	msg := redis_models.RoomEvent{
		Room:    code,
		Event:   event,
		Actor:   actor,
		Payload: payload,
		SentAt:  time.Now().Unix(),
	}
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("error marshaling room event: %v", err)
	}
	channel := redis_utils.FormatRoomChannel(code)
	return rc.Client.Publish(rc.Ctx, channel, data).Err()
}

// SubscribeRoomEvents subscribes to every room channel (pattern
// subscription). The caller owns the returned PubSub and must Close it.
func (rc *RedisClient) SubscribeRoomEvents() *redis.PubSub {
	return rc.Client.PSubscribe(rc.Ctx, redis_utils.RoomChannelPattern())
}
