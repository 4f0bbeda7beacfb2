package controllers

import (
	"fmt"
	"log"
	"net/http"
	"os"

	game_models "Camaleon/models/game"
	"Camaleon/services/store"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"
)

func joinURL(code string) string {
	base := os.Getenv("PUBLIC_URL")
	if base == "" {
		base = "http://localhost:8080"
	}
	return fmt.Sprintf("%s/join/%s", base, code)
}

// @Summary Gets a QR code for joining a room
// @Description PNG encoding of the public join URL, for sharing a room across phones
// @Tags rooms
// @Produce png
// @Param code path string true "room code"
// @Success 200 {string} binary "PNG image"
// @Failure 404 {object} object{error=string}
// @Router /rooms/{code}/qr [get]
func RoomQR(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := game_models.NormalizeCode(c.Param("code"))

		if _, err := s.Get(c.Request.Context(), code); err != nil {
			if err == store.ErrRoomNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
			} else {
				log.Printf("[ROOM-ERROR] Error loading room %s: %v", code, err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading room"})
			}
			return
		}

		png, err := qrcode.Encode(joinURL(code), qrcode.Medium, 256)
		if err != nil {
			log.Printf("[QR-ERROR] Error encoding QR for room %s: %v", code, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error generating QR code"})
			return
		}
		c.Data(http.StatusOK, "image/png", png)
	}
}
