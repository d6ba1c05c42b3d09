package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"collabhub/pkg/logger"
)

// Notification is the wire form of one user-facing alert.
type Notification struct {
	Title  string    `json:"title"`
	Body   string    `json:"body"`
	Action string    `json:"action,omitempty"`
	Time   time.Time `json:"time"`
}

// Client is one connected presentation client.
type Client struct {
	Conn *websocket.Conn
	Send chan []byte
}

// Hub broadcasts session notifications to every connected presentation
// client. It implements service.Notifier: Notify is fire-and-forget
// and never blocks the caller.
type Hub struct {
	clients    map[*Client]struct{}
	Register   chan *Client
	Unregister chan *Client
	broadcast  chan []byte
	mu         sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]struct{}),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		broadcast:  make(chan []byte, 64),
	}
}

// Start runs the hub's main loop in a goroutine until ctx is canceled.
func (h *Hub) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-h.Register:
				h.mu.Lock()
				h.clients[client] = struct{}{}
				h.mu.Unlock()
				logger.Debug("Notification client connected (%d active)", len(h.clients))

			case client := <-h.Unregister:
				h.mu.Lock()
				if _, ok := h.clients[client]; ok {
					delete(h.clients, client)
					close(client.Send)
				}
				h.mu.Unlock()

			case message := <-h.broadcast:
				h.mu.Lock()
				for client := range h.clients {
					select {
					case client.Send <- message:
					default:
						delete(h.clients, client)
						close(client.Send)
					}
				}
				h.mu.Unlock()

			case <-ctx.Done():
				return
			}
		}
	}()
}

// Notify satisfies service.Notifier. A full broadcast buffer drops the
// notification rather than stalling a core operation.
func (h *Hub) Notify(title, body, action string) {
	payload, err := json.Marshal(Notification{
		Title:  title,
		Body:   body,
		Action: action,
		Time:   time.Now(),
	})
	if err != nil {
		logger.Error("Failed to marshal notification: %v", err)
		return
	}

	select {
	case h.broadcast <- payload:
	default:
		logger.Warn("Notification dropped: broadcast buffer full")
	}
}

// ReadPump drains the connection until the client goes away.
func (c *Client) ReadPump(h *Hub) {
	defer func() {
		h.Unregister <- c
		c.Conn.Close()
	}()

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Debug("Notification client read error: %v", err)
			}
			break
		}
	}
}

// WritePump forwards broadcast payloads to the connection.
func (c *Client) WritePump() {
	defer c.Conn.Close()

	for {
		message, ok := <-c.Send
		if !ok {
			c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}
		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			logger.Debug("Notification client write error: %v", err)
			return
		}
	}
}
