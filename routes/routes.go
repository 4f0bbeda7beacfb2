package routes

import (
	"Camaleon/controllers"
	"Camaleon/middleware"
	"Camaleon/services/redis"
	"Camaleon/services/store"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, s store.Store, redisClient *redis.RedisClient) {
	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes group
	api := router.Group("/")

	api.GET("/ping", controllers.Ping)

	api.POST("/guest", controllers.CreateGuest())

	// QR codes are shared around, no token needed to render one
	api.GET("/rooms/:code/qr", controllers.RoomQR(s))

	// Routes that require a guest token
	authentication := api.Group("/auth")
	authentication.Use(middleware.AuthRequired)
	{
		authentication.POST("/rooms", controllers.CreateRoom(s, redisClient))

		authentication.GET("/rooms", controllers.ListRooms(s))

		authentication.GET("/rooms/:code", controllers.GetRoom(s))

		authentication.GET("/rooms/:code/game-state", controllers.GetGameState(s))

		authentication.POST("/rooms/join", controllers.JoinRoom(s, redisClient))

		authentication.POST("/rooms/leave", controllers.LeaveRoom(s, redisClient))

		authentication.POST("/rooms/ready", controllers.SetReady(s, redisClient))

		authentication.POST("/rooms/start", controllers.StartGame(s, redisClient))

		authentication.POST("/rooms/transfer-host", controllers.TransferHost(s, redisClient))

		authentication.POST("/rooms/begin-voting", controllers.BeginVoting(s, redisClient))

		authentication.POST("/rooms/vote", controllers.CastVote(s, redisClient))

		authentication.POST("/rooms/emote", controllers.SendEmote(s, redisClient))
	}
}
