package middleware

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	ctxPlayerID   = "player_id"
	ctxPlayerName = "player_name"
)

func jwtSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "camaleon-dev-secret"
	}
	return []byte(secret)
}

// IssueGuestToken signs a 24h guest token for a player id + display name.
// Identity is throwaway, we only need a stable id per browser session.
func IssueGuestToken(playerID, name string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  playerID,
		"name": name,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// JWTDecoder extracts the player id and name from the Bearer token
func JWTDecoder(c *gin.Context) (playerID string, name string, err error) {
	header := c.GetHeader("Authorization")
	tokenString := strings.TrimPrefix(header, "Bearer ")
	if tokenString == "" || tokenString == header {
		return "", "", jwt.ErrTokenMalformed
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return "", "", jwt.ErrTokenUnverifiable
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", jwt.ErrTokenInvalidClaims
	}
	playerID, _ = claims["sub"].(string)
	name, _ = claims["name"].(string)
	if playerID == "" {
		return "", "", jwt.ErrTokenInvalidClaims
	}
	return playerID, name, nil
}

// AuthRequired rejects requests without a valid guest token
func AuthRequired(c *gin.Context) {
	playerID, name, err := JWTDecoder(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	c.Set(ctxPlayerID, playerID)
	c.Set(ctxPlayerName, name)
	c.Next()
}

// PlayerFromContext returns the authenticated player's id and name
func PlayerFromContext(c *gin.Context) (string, string) {
	return c.GetString(ctxPlayerID), c.GetString(ctxPlayerName)
}
