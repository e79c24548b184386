package store

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/Xae97/TaskFundi/internal/models"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrUserAlreadyExists    = errors.New("user already exists")
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
)

// UserStore holds user accounts and their refresh tokens.
type UserStore interface {
	FindByID(id string) (*models.User, error)
	// FindByEmail matches case-insensitively.
	FindByEmail(email string) (*models.User, error)
	Create(user *models.User) error
	Update(user *models.User) error
	FindByRole(role models.UserRole) []models.User

	SaveRefreshToken(token *models.RefreshToken) error
	FindRefreshToken(token string) (*models.RefreshToken, error)
	DeleteRefreshToken(token string) error
}

type userStoreImpl struct {
	mu            sync.RWMutex
	users         []models.User
	refreshTokens map[string]models.RefreshToken
}

func NewUserStore(seed []models.User) UserStore {
	s := &userStoreImpl{
		users:         append([]models.User(nil), seed...),
		refreshTokens: make(map[string]models.RefreshToken),
	}
	return s
}

func (s *userStoreImpl) FindByID(id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			c := u
			return &c, nil
		}
	}
	return nil, ErrUserNotFound
}

func (s *userStoreImpl) FindByEmail(email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			c := u
			return &c, nil
		}
	}
	return nil, ErrUserNotFound
}

func (s *userStoreImpl) Create(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, user.Email) {
			return ErrUserAlreadyExists
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	s.users = append(s.users, *user)
	return nil
}

func (s *userStoreImpl) Update(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == user.ID {
			s.users[i] = *user
			return nil
		}
	}
	return ErrUserNotFound
}

func (s *userStoreImpl) FindByRole(role models.UserRole) []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.User
	for _, u := range s.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out
}

func (s *userStoreImpl) SaveRefreshToken(token *models.RefreshToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.refreshTokens[token.Token] = *token
	return nil
}

func (s *userStoreImpl) FindRefreshToken(token string) (*models.RefreshToken, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.refreshTokens[token]
	if !ok {
		return nil, ErrRefreshTokenNotFound
	}
	c := t
	return &c, nil
}

func (s *userStoreImpl) DeleteRefreshToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.refreshTokens[token]; !ok {
		return ErrRefreshTokenNotFound
	}
	delete(s.refreshTokens, token)
	return nil
}
