package socket_io

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"Camaleon/services/redis"
	"Camaleon/services/socket_io/handlers"
	socketio_types "Camaleon/services/socket_io/types"
	"Camaleon/services/store"
	"Camaleon/sync"
	"Camaleon/utils"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io/v2/socket"
)

type MySocketServer socketio_types.SocketServer

func (sio *MySocketServer) Start(router *gin.Engine, s store.Store,
	redisClient *redis.RedisClient, syncManager *sync.SyncManager) {
	c := socket.DefaultServerOptions()
	c.SetServeClient(true)
	// NOTE: higher ping interval and timeout to 1) reduce network load and
	// 2) support slower networks
	c.SetPingInterval(5 * time.Second)
	c.SetPingTimeout(3 * time.Second)
	c.SetMaxHttpBufferSize(1000000)
	c.SetConnectTimeout(10 * time.Second)
	c.SetTransports(types.NewSet("polling", "websocket"))
	c.SetCors(&types.Cors{
		Origin:      "*",
		Credentials: true,
	})

	sio.PlayerConnections = make(map[string]*socket.Socket)

	sio.Sio_server = socket.NewServer(nil, nil)
	sio.Sio_server.On("connection", func(clients ...interface{}) {
		client := clients[0].(*socket.Socket)

		// Check if the client identified itself in the handshake
		playerID, err := utils.GetPlayerFromClient(client)
		if err != nil {
			return
		}

		// Add connection to map
		(*socketio_types.SocketServer)(sio).AddConnection(playerID, client)

		fmt.Println("An individual just connected!: ", playerID)

		// Subscribe the socket to a room's event stream
		client.On("join_room", handlers.HandleJoinRoom(s, redisClient, client, playerID))

		// Unsubscribe voluntarily
		client.On("leave_room", handlers.HandleLeaveRoom(redisClient, client, playerID))

		// NOTE: will remove sio connection from map
		client.On("disconnecting", handlers.HandleDisconnecting(playerID,
			(*socketio_types.SocketServer)(sio), redisClient))
	})

	// Redis pub/sub -> socket.io fanout
	go RunEventBridge((*socketio_types.SocketServer)(sio), redisClient, syncManager)

	router.POST("/socket.io/*f", gin.WrapH(sio.Sio_server.ServeHandler(c)))
	router.GET("/socket.io/*f", gin.WrapH(sio.Sio_server.ServeHandler(c)))

	SignalC := make(chan os.Signal, 1)

	signal.Notify(SignalC, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		for s := range SignalC {
			switch s {
			case syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT:
				sio.Sio_server.Close(nil)
				os.Exit(0)
			}
		}
	}()

	fmt.Println("Socket server started")
}
