package websocket

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins in development
		// In production, you should check the origin
		return true
	},
}

// HandleWebSocket handles websocket requests from the peer
func HandleWebSocket(hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("user_id")
		if !exists {
			// Unauthenticated connections still receive broadcast events but
			// never user-directed ones
			log.Printf("[WS] Connection attempt without auth context")
			userID = uint(0)
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Printf("[WS] Error upgrading connection: %v", err)
			return
		}

		client := &Client{
			hub:    hub,
			conn:   conn,
			send:   make(chan []byte, 256),
			userID: userID.(uint),
		}

		client.hub.register <- client

		log.Printf("[WS] New client connected: User ID %d", client.userID)

		go client.writePump()
		go client.readPump()
	}
}
