package order

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// wsClient serializes writes to a single connection. gorilla/websocket
// permits only one concurrent writer, so every write path must hold mu.
type wsClient struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *wsClient) writeJSON(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(v)
}

func (c *wsClient) ping(deadline time.Time) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteControl(websocket.PingMessage, nil, deadline)
}

func (c *wsClient) close() {
	_ = c.conn.Close()
}

// Hub keeps one websocket connection per user and pushes order events
// to both participants of an order. It implements EventPublisher.
type Hub struct {
	clients map[int64]*wsClient
	mutex   sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[int64]*wsClient),
	}
}

// Register wraps conn and replaces any previous connection for the user.
func (h *Hub) Register(userID int64, conn *websocket.Conn) *wsClient {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if old, exists := h.clients[userID]; exists && old != nil {
		old.close()
	}

	client := &wsClient{conn: conn}
	h.clients[userID] = client
	return client
}

func (h *Hub) Unregister(userID int64) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if client, exists := h.clients[userID]; exists && client != nil {
		client.close()
		delete(h.clients, userID)
	}
}

func (h *Hub) IsOnline(userID int64) bool {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	_, exists := h.clients[userID]
	return exists
}

func (h *Hub) OnlineCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.clients)
}

// PublishOrderEvent sends the event to the order's customer and petsitter.
// Offline participants are skipped.
func (h *Hub) PublishOrderEvent(orderID int64, event OrderEvent) {
	if event.Order == nil {
		return
	}

	_ = h.sendToUser(event.Order.NormalUserID, event)
	_ = h.sendToUser(event.Order.PetsitterUserID, event)
}

func (h *Hub) sendToUser(userID int64, message interface{}) bool {
	h.mutex.RLock()
	client, exists := h.clients[userID]
	h.mutex.RUnlock()

	if !exists || client == nil {
		return false
	}

	if err := client.writeJSON(message); err != nil {
		h.Unregister(userID)
		return false
	}

	return true
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for userID, client := range h.clients {
		if client != nil {
			client.close()
		}
		delete(h.clients, userID)
	}
}
