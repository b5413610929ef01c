package websocket

import (
	"sync"

	"github.com/gorilla/websocket"

	"portfolia/internal/domain/entity"
	"portfolia/pkg/logger"
)

// Client represents one connected browser session.
type Client struct {
	UserID string
	Role   entity.Role
	Conn   *websocket.Conn
	Send   chan []byte
}

// Manager tracks active WebSocket connections and routes server pushes to
// them. A user has at most one registered connection; reconnecting replaces
// the previous one.
type Manager struct {
	clients map[string]*Client
	mutex   sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		clients: make(map[string]*Client),
	}
}

// Register adds the client to the registry. A previous connection for the
// same user is kicked; its read loop handles the rest of the teardown.
func (m *Manager) Register(client *Client) {
	m.mutex.Lock()
	if previous, ok := m.clients[client.UserID]; ok && previous != client {
		previous.Conn.Close()
	}
	m.clients[client.UserID] = client
	m.mutex.Unlock()
	logger.Info("Client registered: %s (%s)", client.UserID, client.Role)
}

// Unregister removes the client. When it returns, no Send* call can reach
// the client anymore, so the caller may close its Send channel.
func (m *Manager) Unregister(client *Client) {
	m.mutex.Lock()
	if current, ok := m.clients[client.UserID]; ok && current == client {
		delete(m.clients, client.UserID)
	}
	m.mutex.Unlock()
	logger.Info("Client unregistered: %s", client.UserID)
}

// SendToUser sends a message to a specific user if connected. The read lock
// is held across the send so Unregister cannot complete mid-push.
func (m *Manager) SendToUser(userID string, message []byte) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	client, ok := m.clients[userID]
	if !ok {
		return
	}
	select {
	case client.Send <- message:
	default:
		logger.Warn("Dropping message for slow client %s", userID)
	}
}

// SendToAdmins fans a message out to every connected admin session.
func (m *Manager) SendToAdmins(message []byte) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	for _, client := range m.clients {
		if client.Role != entity.RoleAdmin {
			continue
		}
		select {
		case client.Send <- message:
		default:
			logger.Warn("Dropping admin message for slow client %s", client.UserID)
		}
	}
}

// IsConnected reports whether the user currently holds an open connection.
func (m *Manager) IsConnected(userID string) bool {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	_, ok := m.clients[userID]
	return ok
}

// WritePump sends queued messages to the WebSocket connection. Reading is
// owned by the API handler, which also brokers live subscriptions.
func (c *Client) WritePump() {
	defer c.Conn.Close()

	for {
		message, ok := <-c.Send
		if !ok {
			c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}

		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			logger.Warn("websocket write: %v", err)
			return
		}
	}
}
