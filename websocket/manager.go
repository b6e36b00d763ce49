package websocket

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/BharathDevanaboina/Linkup/middleware"
)

type Manager struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
}

type Client struct {
	conn    *websocket.Conn
	userID  string
	send    chan []byte
	manager *Manager
}

func NewManager() *Manager {
	return &Manager{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

func (m *Manager) Start() {
	for {
		select {
		case client := <-m.register:
			m.mu.Lock()
			m.clients[client] = true
			m.mu.Unlock()
			log.Printf("WebSocket client registered. Total clients: %d", len(m.clients))

		case client := <-m.unregister:
			m.mu.Lock()
			if _, ok := m.clients[client]; ok {
				delete(m.clients, client)
				close(client.send)
			}
			m.mu.Unlock()
			log.Printf("WebSocket client unregistered. Total clients: %d", len(m.clients))

		case message := <-m.broadcast:
			m.mu.RLock()
			for client := range m.clients {
				select {
				case client.send <- message:
				default:
					close(client.send)
					delete(m.clients, client)
				}
			}
			m.mu.RUnlock()
		}
	}
}

func (m *Manager) broadcastEvent(eventType string, payload interface{}) {
	data := map[string]interface{}{
		"type":    eventType,
		"payload": payload,
	}

	msg, err := json.Marshal(data)
	if err != nil {
		log.Printf("Error marshaling WebSocket event %q: %v", eventType, err)
		return
	}

	m.broadcast <- msg
}

// BroadcastSignalCreated pushes a freshly posted signal to every connected
// client, so feeds and the radar refresh without polling.
func (m *Manager) BroadcastSignalCreated(post interface{}) {
	m.broadcastEvent("signal_created", post)
}

func (m *Manager) BroadcastNewMessage(message interface{}) {
	m.broadcastEvent("new_message", message)
}

func (m *Manager) BroadcastMessageRead(payload interface{}) {
	m.broadcastEvent("message_read", payload)
}

func (m *Manager) BroadcastTyping(eventType string, chatID, userID string) {
	m.broadcastEvent(eventType, map[string]interface{}{
		"chatId":    chatID,
		"userId":    userID,
		"timestamp": time.Now().Unix(),
	})
}

func (m *Manager) GetConnectedUsers() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.clients)
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

func Handler(manager *Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := r.URL.Query().Get("token")
		if token == "" {
			http.Error(w, "Token required", http.StatusUnauthorized)
			return
		}

		userID, err := middleware.ParseToken(token)
		if err != nil {
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("WebSocket upgrade failed: %v", err)
			return
		}

		client := &Client{
			conn:    conn,
			userID:  userID,
			send:    make(chan []byte, 256),
			manager: manager,
		}

		manager.register <- client

		welcome := map[string]interface{}{
			"type": "connected",
			"payload": map[string]interface{}{
				"userId": userID,
				"time":   time.Now().Unix(),
			},
		}
		msg, _ := json.Marshal(welcome)
		client.send <- msg

		go client.writePump()
		go client.readPump()
	}
}

func (c *Client) readPump() {
	defer func() {
		c.manager.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket read error: %v", err)
			}
			break
		}

		var data map[string]interface{}
		if err := json.Unmarshal(message, &data); err != nil {
			log.Printf("WebSocket message unmarshal error: %v", err)
			continue
		}

		switch data["type"] {
		case "typing_start", "typing_end":
			c.handleTyping(data)
		case "message_read":
			c.handleMessageRead(data)
		case "ping":
			c.sendPong()
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(30 * time.Second)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) handleTyping(data map[string]interface{}) {
	payload, ok := data["payload"].(map[string]interface{})
	if !ok {
		return
	}
	chatID, _ := payload["chatId"].(string)
	eventType, _ := data["type"].(string)
	c.manager.BroadcastTyping(eventType, chatID, c.userID)
}

func (c *Client) handleMessageRead(data map[string]interface{}) {
	payload, ok := data["payload"].(map[string]interface{})
	if !ok {
		return
	}
	c.manager.BroadcastMessageRead(map[string]interface{}{
		"chatId":     payload["chatId"],
		"userId":     c.userID,
		"messageIds": payload["messageIds"],
		"timestamp":  time.Now().Unix(),
	})
}

func (c *Client) sendPong() {
	msg, err := json.Marshal(map[string]interface{}{
		"type":    "pong",
		"payload": map[string]interface{}{"time": time.Now().Unix()},
	})
	if err != nil {
		return
	}
	c.send <- msg
}
