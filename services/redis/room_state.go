package redis

import (
	"encoding/json"
	"fmt"
	"time"

	game_constants "Camaleon/constants/game"
	game_models "Camaleon/models/game"
	redis_models "Camaleon/models/redis"
	redis_utils "Camaleon/services/redis/utils"

	"github.com/redis/go-redis/v9"
)

// SaveLiveRoom stores a room snapshot in Redis
// Key format: "room:{code}"
// TTL: 24 hours
func (rc *RedisClient) SaveLiveRoom(room *game_models.Room) error {
	key := redis_utils.FormatRoomKey(room.Code)
	data, err := json.Marshal(room)
	if err != nil {
		return fmt.Errorf("error marshaling room data: %v", err)
	}
	return rc.Client.Set(rc.Ctx, key, data, game_constants.LiveRoomTTL).Err()
}

// GetLiveRoom retrieves a room snapshot from Redis
// Key format: "room:{code}"
// Returns nil, nil when the key does not exist
func (rc *RedisClient) GetLiveRoom(code string) (*game_models.Room, error) {
	key := redis_utils.FormatRoomKey(game_models.NormalizeCode(code))
	data, err := rc.Client.Get(rc.Ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("error getting room data: %v", err)
	}

	var room game_models.Room
	if err := json.Unmarshal(data, &room); err != nil {
		return nil, fmt.Errorf("error unmarshaling room data: %v", err)
	}
	return &room, nil
}

// DeleteLiveRoom removes a room snapshot from Redis
func (rc *RedisClient) DeleteLiveRoom(code string) error {
	key := redis_utils.FormatRoomKey(game_models.NormalizeCode(code))
	if err := rc.Client.Del(rc.Ctx, key).Err(); err != nil {
		return fmt.Errorf("error deleting room data: %v", err)
	}
	return nil
}

// SavePlayerPresence stores a player's realtime connection state
// Key format: "player:{id}:presence"
func (rc *RedisClient) SavePlayerPresence(presence *redis_models.PlayerPresence) error {
	presence.LastPing = time.Now().Unix()
	key := redis_utils.FormatPresenceKey(presence.PlayerID)
	data, err := json.Marshal(presence)
	if err != nil {
		return fmt.Errorf("error marshaling presence data: %v", err)
	}
	return rc.Client.Set(rc.Ctx, key, data, game_constants.LiveRoomTTL).Err()
}

// GetPlayerPresence retrieves a player's presence, nil when unknown
func (rc *RedisClient) GetPlayerPresence(playerID string) (*redis_models.PlayerPresence, error) {
	key := redis_utils.FormatPresenceKey(playerID)
	data, err := rc.Client.Get(rc.Ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("error getting presence data: %v", err)
	}

	var presence redis_models.PlayerPresence
	if err := json.Unmarshal(data, &presence); err != nil {
		return nil, fmt.Errorf("error unmarshaling presence data: %v", err)
	}
	return &presence, nil
}

// DeletePlayerPresence removes a player's presence key
func (rc *RedisClient) DeletePlayerPresence(playerID string) error {
	key := redis_utils.FormatPresenceKey(playerID)
	if err := rc.Client.Del(rc.Ctx, key).Err(); err != nil {
		return fmt.Errorf("error deleting presence data: %v", err)
	}
	return nil
}
