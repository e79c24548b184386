package ws

import (
	"net/http"

	"github.com/Xae97/TaskFundi/internal/logger"
	"github.com/Xae97/TaskFundi/internal/middleware"
	"github.com/Xae97/TaskFundi/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type WebSocketHandler struct {
	Manager     *Manager
	chatService services.ChatService
}

func NewWebSocketHandler(manager *Manager, chatService services.ChatService) *WebSocketHandler {
	return &WebSocketHandler{
		Manager:     manager,
		chatService: chatService,
	}
}

// ServeWS upgrades an authenticated request to a websocket connection. The
// route must sit behind AuthMiddleware so the user ID is already on the
// context.
func (h *WebSocketHandler) ServeWS(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn("websocket upgrade failed", "user_id", userID, "error", err)
		return
	}

	client := &Client{
		UserID:      userID,
		conn:        conn,
		send:        make(chan Event, 256),
		manager:     h.Manager,
		chatService: h.chatService,
	}

	h.Manager.register <- client

	go client.readPump()
	go client.writePump()
}
