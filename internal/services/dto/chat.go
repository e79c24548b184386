package dto

import (
	"time"

	"github.com/Xae97/TaskFundi/internal/models"
)

type StartConversationRequest struct {
	RecipientID string `json:"recipient_id" validate:"required"`
	JobID       string `json:"job_id"`
	// Text optionally sends a first message in the same call.
	Text string `json:"text"`
}

type SendMessageRequest struct {
	Text string `json:"text" validate:"required,min=1"`
}

type MessageResponse struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id"`
	SenderID       string    `json:"sender_id"`
	Text           string    `json:"text"`
	Timestamp      time.Time `json:"timestamp"`
	Read           bool      `json:"read"`
}

type ConversationResponse struct {
	ID           string               `json:"id"`
	Participants []models.Participant `json:"participants"`
	LastMessage  *MessageResponse     `json:"last_message,omitempty"`
	JobID        string               `json:"job_id,omitempty"`
	JobTitle     string               `json:"job_title,omitempty"`
	UnreadCount  int                  `json:"unread_count"`
}

type ConversationDetailResponse struct {
	ConversationResponse
	Messages []MessageResponse `json:"messages"`
}

type UnreadCountResponse struct {
	UnreadCount int `json:"unread_count"`
}
