package utils

/**
 * This file contains utility functions to format the keys for Redis
 * (key, value) pairs. It avoids having to call "fmt.Sprintf(...)"
 * with the same format spec every time, potentially confusing the key format.
 */

import "fmt"

func FormatRoomKey(code string) string {
	return fmt.Sprintf("room:%s", code)
}

func FormatPresenceKey(playerID string) string {
	return fmt.Sprintf("player:%s:presence", playerID)
}

func FormatRoomChannel(code string) string {
	return fmt.Sprintf("room:%s:events", code)
}

// Pattern matching every room channel, for the socket.io bridge
func RoomChannelPattern() string {
	return "room:*:events"
}
