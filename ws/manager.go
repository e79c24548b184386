package ws

import (
	"sync"

	"github.com/Xae97/TaskFundi/internal/logger"
	"github.com/Xae97/TaskFundi/internal/services/dto"
)

// Event is the envelope for every frame pushed to a client.
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// Manager tracks connected clients keyed by user ID and fans events out to
// them. It implements services.MessageNotifier so the chat service can push
// new messages without knowing about websockets.
type Manager struct {
	clients    map[string]*Client
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run processes register and unregister requests. Call it once in its own
// goroutine.
func (m *Manager) Run() {
	for {
		select {
		case client := <-m.register:
			m.mu.Lock()
			if old, ok := m.clients[client.UserID]; ok {
				close(old.send)
			}
			m.clients[client.UserID] = client
			total := len(m.clients)
			m.mu.Unlock()
			logger.Debug("websocket client registered", "user_id", client.UserID, "total", total)

		case client := <-m.unregister:
			m.mu.Lock()
			if current, ok := m.clients[client.UserID]; ok && current == client {
				close(client.send)
				delete(m.clients, client.UserID)
			}
			total := len(m.clients)
			m.mu.Unlock()
			logger.Debug("websocket client unregistered", "user_id", client.UserID, "total", total)
		}
	}
}

// NotifyNewMessage pushes a new chat message to every connected recipient.
func (m *Manager) NotifyNewMessage(recipientIDs []string, message *dto.MessageResponse) {
	event := Event{Type: "new_message", Data: message}
	for _, id := range recipientIDs {
		m.SendToUser(id, event)
	}
}

// SendToUser delivers an event to one user if they are connected. A client
// whose send buffer is full is dropped rather than blocking the caller.
func (m *Manager) SendToUser(userID string, event Event) {
	m.mu.RLock()
	client, ok := m.clients[userID]
	m.mu.RUnlock()
	if !ok {
		return
	}

	select {
	case client.send <- event:
	default:
		logger.Warn("websocket send buffer full, dropping client", "user_id", userID)
		go func() { m.unregister <- client }()
	}
}

func (m *Manager) IsConnected(userID string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.clients[userID]
	return ok
}

func (m *Manager) ClientCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.clients)
}
