package store

import (
	"errors"
	"sync"
	"time"

	"github.com/Xae97/TaskFundi/internal/models"

	"github.com/google/uuid"
)

var ErrConversationNotFound = errors.New("conversation not found")

// ChatStore holds conversations and computes derived read/unread state.
//
// LastMessage is never stored: every read path derives it from the tail of
// the message sequence, so it cannot drift from messages. Appending a
// message and the visibility of that message as LastMessage therefore
// happen under the same lock.
type ChatStore interface {
	GetAll() []models.Conversation
	GetByID(id string) (*models.Conversation, error)
	// GetByParticipant returns conversations in insertion order, not
	// recency. Chat list UIs traditionally want lastMessage-descending;
	// keeping insertion order preserves the observable order downstream
	// code was built against.
	GetByParticipant(userID string) []models.Conversation
	Create(conv *models.Conversation) error
	AppendMessage(conversationID, senderID, text string) (*models.Message, error)
	MarkRead(conversationID, readerID string)
	UnreadCountFor(userID string) int
	UnreadCountIn(conversationID, userID string) (int, error)
	FindBetween(userAID, userBID string) (*models.Conversation, error)
}

type chatStoreImpl struct {
	mu            sync.RWMutex
	conversations []*models.Conversation
}

// NewChatStore builds a store over the given seed conversations, preserving
// their order.
func NewChatStore(seed []models.Conversation) ChatStore {
	s := &chatStoreImpl{
		conversations: make([]*models.Conversation, 0, len(seed)),
	}
	for i := range seed {
		c := cloneConversation(&seed[i])
		c.LastMessage = nil
		s.conversations = append(s.conversations, c)
	}
	return s
}

func (s *chatStoreImpl) GetAll() []models.Conversation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Conversation, 0, len(s.conversations))
	for _, c := range s.conversations {
		out = append(out, *snapshot(c))
	}
	return out
}

func (s *chatStoreImpl) GetByID(id string) (*models.Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c := s.find(id)
	if c == nil {
		return nil, ErrConversationNotFound
	}
	return snapshot(c), nil
}

func (s *chatStoreImpl) GetByParticipant(userID string) []models.Conversation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Conversation
	for _, c := range s.conversations {
		if c.HasParticipant(userID) {
			out = append(out, *snapshot(c))
		}
	}
	return out
}

func (s *chatStoreImpl) Create(conv *models.Conversation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if conv.ID == "" {
		conv.ID = uuid.NewString()
	}
	s.conversations = append(s.conversations, cloneConversation(conv))
	return nil
}

// AppendMessage constructs the message (fresh ID, current timestamp, unread)
// and appends it. The append and the resulting LastMessage are visible
// atomically: both live behind the store lock and LastMessage is derived
// from the message tail on read.
func (s *chatStoreImpl) AppendMessage(conversationID, senderID, text string) (*models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.find(conversationID)
	if c == nil {
		return nil, ErrConversationNotFound
	}

	msg := models.Message{
		ID:        uuid.NewString(),
		SenderID:  senderID,
		Text:      text,
		Timestamp: time.Now(),
		Read:      false,
	}
	c.Messages = append(c.Messages, msg)

	out := msg
	return &out, nil
}

// MarkRead flips Read to true on every message in the conversation that was
// sent by someone other than readerID. Idempotent; a second call changes
// nothing. Unknown conversations are a no-op, not an error.
func (s *chatStoreImpl) MarkRead(conversationID, readerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.find(conversationID)
	if c == nil {
		return
	}
	for i := range c.Messages {
		if c.Messages[i].SenderID != readerID && !c.Messages[i].Read {
			c.Messages[i].Read = true
		}
	}
}

// UnreadCountFor sums, over every conversation userID participates in, the
// messages sent by the other party that are still unread. By construction
// it equals the sum of per-conversation counts from UnreadCountIn.
func (s *chatStoreImpl) UnreadCountFor(userID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, c := range s.conversations {
		if !c.HasParticipant(userID) {
			continue
		}
		count += unread(c, userID)
	}
	return count
}

func (s *chatStoreImpl) UnreadCountIn(conversationID, userID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c := s.find(conversationID)
	if c == nil {
		return 0, ErrConversationNotFound
	}
	return unread(c, userID), nil
}

// FindBetween returns the conversation whose two participants are exactly
// the given users, or not-found.
func (s *chatStoreImpl) FindBetween(userAID, userBID string) (*models.Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.conversations {
		if c.HasParticipant(userAID) && c.HasParticipant(userBID) {
			return snapshot(c), nil
		}
	}
	return nil, ErrConversationNotFound
}

// find expects the lock to be held.
func (s *chatStoreImpl) find(id string) *models.Conversation {
	for _, c := range s.conversations {
		if c.ID == id {
			return c
		}
	}
	return nil
}

func unread(c *models.Conversation, userID string) int {
	n := 0
	for _, m := range c.Messages {
		if m.SenderID != userID && !m.Read {
			n++
		}
	}
	return n
}

// snapshot deep-copies a conversation and fills LastMessage from the tail
// of its message sequence. Callers hold the lock.
func snapshot(c *models.Conversation) *models.Conversation {
	out := cloneConversation(c)
	if n := len(out.Messages); n > 0 {
		last := out.Messages[n-1]
		out.LastMessage = &last
	}
	return out
}

func cloneConversation(c *models.Conversation) *models.Conversation {
	out := *c
	out.Participants = append([]models.Participant(nil), c.Participants...)
	out.Messages = append([]models.Message(nil), c.Messages...)
	out.LastMessage = nil
	return &out
}
