package controllers

import (
	"log"
	"net/http"
	"strings"

	"Camaleon/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type guestRequest struct {
	Name string `json:"name" binding:"required"`
}

// @Summary Creates a guest identity
// @Description Issues a player id and a signed token for the given display name
// @Tags guest
// @Accept json
// @Produce json
// @Param request body controllers.guestRequest true "display name"
// @Success 200 {object} object{player_id=string,name=string,token=string}
// @Failure 400 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /guest [post]
func CreateGuest() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req guestRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
			return
		}

		name := strings.TrimSpace(req.Name)
		if name == "" || len(name) > 24 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name must be 1-24 characters"})
			return
		}

		playerID := uuid.NewString()
		token, err := middleware.IssueGuestToken(playerID, name)
		if err != nil {
			log.Printf("[GUEST-ERROR] Error signing guest token: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating guest"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"player_id": playerID,
			"name":      name,
			"token":     token,
		})
	}
}
