package ws

import (
	"encoding/json"

	"github.com/Xae97/TaskFundi/internal/logger"
	"github.com/Xae97/TaskFundi/internal/services"

	"github.com/gorilla/websocket"
)

type incomingEvent struct {
	Action string          `json:"action"`
	Data   json.RawMessage `json:"data"`
}

type sendMessagePayload struct {
	ConversationID string `json:"conversation_id"`
	Text           string `json:"text"`
}

type markReadPayload struct {
	ConversationID string `json:"conversation_id"`
}

// Client is one websocket connection bound to an authenticated user.
type Client struct {
	UserID string

	conn        *websocket.Conn
	send        chan Event
	manager     *Manager
	chatService services.ChatService
}

func (c *Client) readPump() {
	defer func() {
		c.manager.unregister <- c
		c.conn.Close()
	}()

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Debug("websocket read error", "user_id", c.UserID, "error", err)
			}
			return
		}

		var event incomingEvent
		if err := json.Unmarshal(raw, &event); err != nil {
			c.sendError("invalid payload")
			continue
		}

		c.handleEvent(event)
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()

	for event := range c.send {
		if err := c.conn.WriteJSON(event); err != nil {
			logger.Debug("websocket write error", "user_id", c.UserID, "error", err)
			return
		}
	}

	// send channel closed by the manager
	c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

func (c *Client) handleEvent(event incomingEvent) {
	switch event.Action {
	case "send_message":
		var payload sendMessagePayload
		if err := json.Unmarshal(event.Data, &payload); err != nil {
			c.sendError("invalid send_message payload")
			return
		}
		message, err := c.chatService.SendMessage(c.UserID, payload.ConversationID, payload.Text)
		if err != nil {
			c.sendError(err.Error())
			return
		}
		// Echo back so the sender sees its message with the assigned ID.
		c.send <- Event{Type: "message_sent", Data: message}

	case "mark_read":
		var payload markReadPayload
		if err := json.Unmarshal(event.Data, &payload); err != nil {
			c.sendError("invalid mark_read payload")
			return
		}
		if err := c.chatService.MarkRead(c.UserID, payload.ConversationID); err != nil {
			c.sendError(err.Error())
		}

	default:
		c.sendError("unknown action: " + event.Action)
	}
}

func (c *Client) sendError(message string) {
	select {
	case c.send <- Event{Type: "error", Data: message}:
	default:
	}
}
