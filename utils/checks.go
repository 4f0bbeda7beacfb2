package utils

import (
	"context"
	"errors"
	"fmt"

	game_models "Camaleon/models/game"
	"Camaleon/services/store"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
)

// CheckRoomExists loads a room, emitting an error to the socket client when
// it is missing
func CheckRoomExists(s store.Store, code string, client *socket.Socket) (*game_models.Room, error) {
	room, err := s.Get(context.Background(), code)
	if err != nil {
		fmt.Println("Room does not exist:", code)
		client.Emit("error", gin.H{"error": "Room does not exist"})
		return nil, err
	}
	return room, nil
}

// IsPlayerInRoom emits an error to the client when the player is not a
// member of the room
func IsPlayerInRoom(room *game_models.Room, playerID string, client *socket.Socket) bool {
	if room.FindPlayer(playerID) == nil {
		fmt.Println("Player is NOT in room:", playerID, "Room:", room.Code)
		client.Emit("error", gin.H{"error": "You must join the room first"})
		return false
	}
	return true
}

// GetPlayerFromClient reads the player identity out of the socket handshake
func GetPlayerFromClient(client *socket.Socket) (string, error) {
	authData, ok := client.Handshake().Auth.(map[string]interface{})
	if !ok {
		fmt.Println("No auth data provided in handshake!")
		client.Emit("error", gin.H{"error": "Authentication failed: missing auth data"})
		return "", errors.New("authentication data missing")
	}

	playerID, exists := authData["player_id"].(string)
	if !exists || playerID == "" {
		return "", errors.New("player id not found in authentication")
	}

	return playerID, nil
}
