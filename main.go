package main

import (
	"log"
	"os"

	"Camaleon/config"
	game_constants "Camaleon/constants/game"
	_ "Camaleon/docs"
	"Camaleon/middleware"
	"Camaleon/routes"
	"Camaleon/services/redis"
	"Camaleon/services/socket_io"
	socketio_types "Camaleon/services/socket_io/types"
	"Camaleon/services/store"
	"Camaleon/sync"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

// @title Camaleon API
// @version 1.0
// @description Gin-Gonic server for the "Camaleon" party word-game API
// @BasePath /
func main() {
	godotenv.Load()
	log.Println("Setting up server...")

	if os.Getenv("PROD") == "true" {
		gin.SetMode(gin.ReleaseMode)
	}

	// ROOM_STORE picks the authoritative room registry: "memory" for
	// ephemeral deployments, anything else means Postgres.
	var roomStore store.Store
	var syncManager *sync.SyncManager

	redisClient, err := config.Connect_redis()
	if err != nil {
		log.Fatalf("Error connecting to Redis: %v", err)
	}
	log.Println("Connection to Redis successful")
	defer redis.CloseRedis(redisClient)

	if os.Getenv("ROOM_STORE") == "memory" {
		roomStore = store.NewMemoryStore(game_constants.EmptyRoomGracePeriod)
		log.Println("Using in-memory room store")
	} else {
		gormDB, err := config.ConnectGORM()
		if err != nil {
			log.Fatalf("Error connecting to PostgreSQL: %v", err)
		}
		log.Println("GORM Connected")

		// Only migrate in development or during deployment
		if os.Getenv("MIGRATE_POSTGRES") == "true" {
			log.Println("Migrating PostgreSQL database...")
			if err := config.MigrateDatabase(gormDB); err != nil {
				log.Printf("Warning: Database migration failed: %v", err)
				// Continue execution even if migration fails
			} else {
				log.Println("Database migrated successfully")
			}
		}

		sqlDB, err := gormDB.DB()
		if err != nil {
			log.Fatalf("Error reading GORM PostgreSQL instance: %v", err)
		}
		defer sqlDB.Close()

		roomStore = store.NewPostgresStore(gormDB)
		syncManager = sync.NewSyncManager(redisClient, sqlDB)
		log.Println("Using Postgres room store")
	}

	r := gin.Default()

	middleware.SetUpMiddleware(r)

	routes.SetupRoutes(r, roomStore, redisClient)

	sioServer := (*socket_io.MySocketServer)(socketio_types.NewSocketServer())
	sioServer.Start(r, roomStore, redisClient, syncManager)

	// Configure port
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
