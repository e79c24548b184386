package services

import (
	"strings"
	"time"

	"github.com/Xae97/TaskFundi/internal/auth"
	"github.com/Xae97/TaskFundi/internal/email"
	"github.com/Xae97/TaskFundi/internal/logger"
	"github.com/Xae97/TaskFundi/internal/models"
	"github.com/Xae97/TaskFundi/internal/services/dto"
	"github.com/Xae97/TaskFundi/internal/store"
	"github.com/Xae97/TaskFundi/pkg/apperrors"

	"github.com/google/uuid"
)

const refreshTokenTTL = 30 * 24 * time.Hour

type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.LoginResponse, error)
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)
	RefreshToken(refreshToken string) (*dto.LoginResponse, error)
	Logout(refreshToken string) error
	ForgotPassword(emailAddr string) error
}

type AuthServiceImpl struct {
	userStore     store.UserStore
	emailProvider email.Provider
}

func NewAuthService(userStore store.UserStore, emailProvider email.Provider) AuthService {
	return &AuthServiceImpl{
		userStore:     userStore,
		emailProvider: emailProvider,
	}
}

func (s *AuthServiceImpl) Register(req *dto.RegisterRequest) (*dto.LoginResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	role := models.UserRole(req.Role)
	if role != models.UserRoleClient && role != models.UserRoleFundi {
		return nil, apperrors.ErrInvalidUserRole
	}
	if role == models.UserRoleFundi && strings.TrimSpace(req.Skills) == "" {
		return nil, apperrors.NewBadRequestError("Fundis must list at least one skill")
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashed,
		Phone:        req.Phone,
		Role:         role,
		Location:     models.Location{Address: req.Address},
		Skills:       req.Skills,
	}

	if err := s.userStore.Create(user); err != nil {
		if apperrors.Is(err, store.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	logger.Info("user registered", "user_id", user.ID, "role", user.Role)
	return s.issueTokens(user)
}

func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userStore.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, store.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueTokens(user)
}

func (s *AuthServiceImpl) RefreshToken(refreshToken string) (*dto.LoginResponse, error) {
	token, err := s.userStore.FindRefreshToken(refreshToken)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	if time.Now().After(token.ExpiresAt) {
		s.userStore.DeleteRefreshToken(refreshToken)
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userStore.FindByID(token.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	// Rotate: the presented refresh token is single-use.
	s.userStore.DeleteRefreshToken(refreshToken)

	return s.issueTokens(user)
}

func (s *AuthServiceImpl) Logout(refreshToken string) error {
	err := s.userStore.DeleteRefreshToken(refreshToken)
	if err != nil && !apperrors.Is(err, store.ErrRefreshTokenNotFound) {
		return apperrors.InternalError(err)
	}
	return nil
}

// ForgotPassword always reports success so account existence is not
// revealed. Delivery goes through the email provider.
func (s *AuthServiceImpl) ForgotPassword(emailAddr string) error {
	user, err := s.userStore.FindByEmail(emailAddr)
	if err != nil {
		return nil
	}

	resetToken := uuid.NewString()
	if err := s.emailProvider.SendPasswordReset(user.Email, resetToken); err != nil {
		logger.Error("failed to send password reset email", "error", err)
	}
	return nil
}

func (s *AuthServiceImpl) issueTokens(user *models.User) (*dto.LoginResponse, error) {
	accessToken, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refresh := &models.RefreshToken{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(refreshTokenTTL),
	}
	if err := s.userStore.SaveRefreshToken(refresh); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refresh.Token,
		User:         user,
	}, nil
}
