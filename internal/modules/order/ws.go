package order

import (
	"log"
	"net/http"
	"time"

	"petsitter/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Allow all origins (configure in prod)
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WSHandler upgrades clients onto the order event stream.
type WSHandler struct {
	hub        *Hub
	jwtService *jwt.Service
}

func NewWSHandler(hub *Hub, jwtService *jwt.Service) *WSHandler {
	return &WSHandler{
		hub:        hub,
		jwtService: jwtService,
	}
}

// HandleWebSocket serves GET /ws/orders?token=JWT_TOKEN.
//
// Auth goes through the query parameter since websocket clients
// cannot set an Authorization header.
func (h *WSHandler) HandleWebSocket(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Token is required. Use ?token=YOUR_JWT_TOKEN",
		})
		return
	}

	claims, err := h.jwtService.ValidateToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid or expired token",
		})
		return
	}

	userID := claims.UserID

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	client := h.hub.Register(userID, conn)
	log.Printf("User %d connected to order stream", userID)

	defer func() {
		h.hub.Unregister(userID)
		log.Printf("User %d disconnected from order stream", userID)
	}()

	conn.SetPongHandler(func(string) error {
		_ = conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	done := make(chan struct{})
	defer close(done)
	go h.pingLoop(client, done)

	h.readLoop(conn)
}

// pingLoop keeps the connection alive. Pings go through the client so
// they never interleave with event writes on the same connection.
func (h *WSHandler) pingLoop(client *wsClient, done <-chan struct{}) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := client.ping(time.Now().Add(10 * time.Second)); err != nil {
				return
			}
		}
	}
}

// readLoop drains incoming frames so pong handlers fire; the stream
// is server-to-client only.
func (h *WSHandler) readLoop(conn *websocket.Conn) {
	_ = conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
