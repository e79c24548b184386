package services

import (
	"github.com/Xae97/TaskFundi/internal/logger"
	"github.com/Xae97/TaskFundi/internal/models"
	"github.com/Xae97/TaskFundi/internal/services/dto"
	"github.com/Xae97/TaskFundi/internal/store"
	"github.com/Xae97/TaskFundi/pkg/apperrors"
)

// MessageNotifier pushes a newly appended message to connected recipients.
// The websocket manager implements it; a nil notifier disables pushes.
type MessageNotifier interface {
	NotifyNewMessage(recipientIDs []string, message *dto.MessageResponse)
}

type ChatService interface {
	GetUserConversations(userID string) []*dto.ConversationResponse
	GetConversation(userID, conversationID string) (*dto.ConversationDetailResponse, error)
	StartConversation(userID string, req *dto.StartConversationRequest) (*dto.ConversationDetailResponse, error)
	SendMessage(userID, conversationID, text string) (*dto.MessageResponse, error)
	MarkRead(userID, conversationID string) error
	UnreadCount(userID, conversationID string) (int, error)
	UnreadTotal(userID string) int
	SetNotifier(n MessageNotifier)
}

type chatService struct {
	chatStore store.ChatStore
	userStore store.UserStore
	jobStore  store.JobStore
	maxMsgLen int
	notifier  MessageNotifier
}

func NewChatService(chatStore store.ChatStore, userStore store.UserStore, jobStore store.JobStore, maxMessageLength int) ChatService {
	return &chatService{
		chatStore: chatStore,
		userStore: userStore,
		jobStore:  jobStore,
		maxMsgLen: maxMessageLength,
	}
}

func (s *chatService) SetNotifier(n MessageNotifier) {
	s.notifier = n
}

func (s *chatService) GetUserConversations(userID string) []*dto.ConversationResponse {
	conversations := s.chatStore.GetByParticipant(userID)

	out := make([]*dto.ConversationResponse, 0, len(conversations))
	for i := range conversations {
		out = append(out, s.buildConversationResponse(&conversations[i], userID))
	}
	return out
}

func (s *chatService) GetConversation(userID, conversationID string) (*dto.ConversationDetailResponse, error) {
	conv, err := s.participantConversation(userID, conversationID)
	if err != nil {
		return nil, err
	}
	return s.buildDetailResponse(conv, userID), nil
}

// StartConversation returns the existing thread between the two users when
// one exists, otherwise creates it. An optional first message is appended
// in the same call.
func (s *chatService) StartConversation(userID string, req *dto.StartConversationRequest) (*dto.ConversationDetailResponse, error) {
	if req.RecipientID == userID {
		return nil, apperrors.ErrInvalidOperation("chat", "Cannot start a conversation with yourself")
	}

	sender, err := s.userStore.FindByID(userID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}
	recipient, err := s.userStore.FindByID(req.RecipientID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}

	conv, err := s.chatStore.FindBetween(userID, req.RecipientID)
	if err != nil {
		conv = &models.Conversation{
			Participants: []models.Participant{
				{UserID: sender.ID, Name: sender.Name, Role: sender.Role},
				{UserID: recipient.ID, Name: recipient.Name, Role: recipient.Role},
			},
		}
		if req.JobID != "" {
			if job, jErr := s.jobStore.GetByID(req.JobID); jErr == nil {
				conv.JobID = job.ID
				conv.JobTitle = job.Title
			}
		}
		if cErr := s.chatStore.Create(conv); cErr != nil {
			return nil, apperrors.InternalError(cErr)
		}
		logger.Info("conversation started", "conversation_id", conv.ID, "initiator", userID)
	}

	if req.Text != "" {
		if _, mErr := s.SendMessage(userID, conv.ID, req.Text); mErr != nil {
			return nil, mErr
		}
	}

	fresh, err := s.chatStore.GetByID(conv.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.buildDetailResponse(fresh, userID), nil
}

// SendMessage appends to the conversation; appending against an unknown
// conversation is the one chat operation that surfaces an error, since
// silently dropping a user's message would be worse.
func (s *chatService) SendMessage(userID, conversationID, text string) (*dto.MessageResponse, error) {
	if text == "" {
		return nil, apperrors.NewBadRequestError("Message text cannot be empty")
	}
	if s.maxMsgLen > 0 && len(text) > s.maxMsgLen {
		return nil, apperrors.NewBadRequestError("Message text exceeds the maximum length")
	}

	conv, err := s.participantConversation(userID, conversationID)
	if err != nil {
		return nil, err
	}

	msg, err := s.chatStore.AppendMessage(conv.ID, userID, text)
	if err != nil {
		if apperrors.Is(err, store.ErrConversationNotFound) {
			return nil, apperrors.ErrInvalidOperation("chat", "Conversation no longer exists")
		}
		return nil, apperrors.InternalError(err)
	}

	response := buildMessageResponse(msg, conv.ID)

	if s.notifier != nil {
		var recipients []string
		for _, p := range conv.Participants {
			if p.UserID != userID {
				recipients = append(recipients, p.UserID)
			}
		}
		s.notifier.NotifyNewMessage(recipients, response)
	}

	return response, nil
}

// MarkRead flips unread flags on messages from the other participant.
// Missing conversations are a silent no-op; a foreign conversation is
// forbidden.
func (s *chatService) MarkRead(userID, conversationID string) error {
	conv, err := s.chatStore.GetByID(conversationID)
	if err != nil {
		return nil
	}
	if !conv.HasParticipant(userID) {
		return apperrors.NewForbiddenError("You are not a participant in this conversation")
	}
	s.chatStore.MarkRead(conversationID, userID)
	return nil
}

func (s *chatService) UnreadCount(userID, conversationID string) (int, error) {
	if _, err := s.participantConversation(userID, conversationID); err != nil {
		return 0, err
	}
	count, err := s.chatStore.UnreadCountIn(conversationID, userID)
	if err != nil {
		return 0, apperrors.ErrNotFound(err)
	}
	return count, nil
}

func (s *chatService) UnreadTotal(userID string) int {
	return s.chatStore.UnreadCountFor(userID)
}

func (s *chatService) participantConversation(userID, conversationID string) (*models.Conversation, error) {
	conv, err := s.chatStore.GetByID(conversationID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}
	if !conv.HasParticipant(userID) {
		return nil, apperrors.NewForbiddenError("You are not a participant in this conversation")
	}
	return conv, nil
}

func (s *chatService) buildConversationResponse(conv *models.Conversation, userID string) *dto.ConversationResponse {
	out := &dto.ConversationResponse{
		ID:           conv.ID,
		Participants: conv.Participants,
		JobID:        conv.JobID,
		JobTitle:     conv.JobTitle,
	}
	if conv.LastMessage != nil {
		out.LastMessage = buildMessageResponse(conv.LastMessage, conv.ID)
	}
	if count, err := s.chatStore.UnreadCountIn(conv.ID, userID); err == nil {
		out.UnreadCount = count
	}
	return out
}

func (s *chatService) buildDetailResponse(conv *models.Conversation, userID string) *dto.ConversationDetailResponse {
	out := &dto.ConversationDetailResponse{
		ConversationResponse: *s.buildConversationResponse(conv, userID),
		Messages:             make([]dto.MessageResponse, 0, len(conv.Messages)),
	}
	for i := range conv.Messages {
		out.Messages = append(out.Messages, *buildMessageResponse(&conv.Messages[i], conv.ID))
	}
	return out
}

func buildMessageResponse(msg *models.Message, conversationID string) *dto.MessageResponse {
	return &dto.MessageResponse{
		ID:             msg.ID,
		ConversationID: conversationID,
		SenderID:       msg.SenderID,
		Text:           msg.Text,
		Timestamp:      msg.Timestamp,
		Read:           msg.Read,
	}
}
