package services

import (
	"testing"
	"time"

	"github.com/Xae97/TaskFundi/internal/auth"
	"github.com/Xae97/TaskFundi/internal/email"
	"github.com/Xae97/TaskFundi/internal/models"
	"github.com/Xae97/TaskFundi/internal/services/dto"
	"github.com/Xae97/TaskFundi/internal/store"
	"github.com/Xae97/TaskFundi/pkg/apperrors"

	"github.com/stretchr/testify/assert"
)

func authFixture(t *testing.T) AuthService {
	auth.Init("unit-test-secret", 60)

	hash, err := auth.HashPassword("password123")
	assert.NoError(t, err)

	users := []models.User{
		{ID: "u1", Name: "Existing Client", Email: "client@test.com", PasswordHash: hash, Role: models.UserRoleClient},
	}
	return NewAuthService(store.NewUserStore(users), email.NewMockProvider())
}

func registerRequest() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Name:     "New Fundi",
		Email:    "new.fundi@test.com",
		Password: "password123",
		Address:  "Kasarani, Nairobi",
		Role:     "fundi",
		Skills:   "Plumbing, Tiling",
	}
}

func TestAuthServiceRegister(t *testing.T) {
	svc := authFixture(t)

	res, err := svc.Register(registerRequest())
	assert.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)
	assert.NotEmpty(t, res.RefreshToken)
	assert.NotEmpty(t, res.User.ID)
	assert.Equal(t, models.UserRoleFundi, res.User.Role)

	claims, err := auth.ParseToken(res.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, res.User.ID, claims.UserID)
	assert.Equal(t, "fundi", claims.Role)
}

func TestAuthServiceRegisterDuplicateEmail(t *testing.T) {
	svc := authFixture(t)

	req := registerRequest()
	req.Email = "client@test.com"
	_, err := svc.Register(req)
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)

	// Email comparison ignores case.
	req.Email = "CLIENT@test.com"
	_, err = svc.Register(req)
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestAuthServiceRegisterRejectsWeakPassword(t *testing.T) {
	svc := authFixture(t)

	req := registerRequest()
	req.Password = "short"
	_, err := svc.Register(req)
	assert.ErrorIs(t, err, apperrors.ErrWeakPassword)
}

func TestAuthServiceRegisterFundiNeedsSkills(t *testing.T) {
	svc := authFixture(t)

	req := registerRequest()
	req.Skills = "   "
	_, err := svc.Register(req)
	appErr, ok := apperrors.AsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)

	// Clients register without skills.
	req = registerRequest()
	req.Email = "new.client@test.com"
	req.Role = "client"
	req.Skills = ""
	_, err = svc.Register(req)
	assert.NoError(t, err)
}

func TestAuthServiceLogin(t *testing.T) {
	svc := authFixture(t)

	res, err := svc.Login(&dto.LoginRequest{Email: "client@test.com", Password: "password123"})
	assert.NoError(t, err)
	assert.Equal(t, "u1", res.User.ID)
	assert.NotEmpty(t, res.AccessToken)
}

func TestAuthServiceLoginInvalidCredentials(t *testing.T) {
	svc := authFixture(t)

	_, err := svc.Login(&dto.LoginRequest{Email: "client@test.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	// Unknown accounts produce the same error as a wrong password.
	_, err = svc.Login(&dto.LoginRequest{Email: "nobody@test.com", Password: "password123"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAuthServiceRefreshTokenRotates(t *testing.T) {
	svc := authFixture(t)

	login, err := svc.Login(&dto.LoginRequest{Email: "client@test.com", Password: "password123"})
	assert.NoError(t, err)

	refreshed, err := svc.RefreshToken(login.RefreshToken)
	assert.NoError(t, err)
	assert.Equal(t, "u1", refreshed.User.ID)
	assert.NotEqual(t, login.RefreshToken, refreshed.RefreshToken)

	// The presented token was single-use.
	_, err = svc.RefreshToken(login.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestAuthServiceRefreshTokenUnknown(t *testing.T) {
	svc := authFixture(t)

	_, err := svc.RefreshToken("never-issued")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestAuthServiceRefreshTokenExpired(t *testing.T) {
	auth.Init("unit-test-secret", 60)

	hash, err := auth.HashPassword("password123")
	assert.NoError(t, err)
	userStore := store.NewUserStore([]models.User{
		{ID: "u1", Email: "client@test.com", PasswordHash: hash, Role: models.UserRoleClient},
	})
	svc := NewAuthService(userStore, email.NewMockProvider())

	expired := &models.RefreshToken{Token: "expired-token", UserID: "u1", ExpiresAt: time.Now().Add(-time.Hour)}
	assert.NoError(t, userStore.SaveRefreshToken(expired))

	_, err = svc.RefreshToken("expired-token")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestAuthServiceLogout(t *testing.T) {
	svc := authFixture(t)

	login, err := svc.Login(&dto.LoginRequest{Email: "client@test.com", Password: "password123"})
	assert.NoError(t, err)

	assert.NoError(t, svc.Logout(login.RefreshToken))
	_, err = svc.RefreshToken(login.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)

	// Logging out an already gone token is not an error.
	assert.NoError(t, svc.Logout(login.RefreshToken))
}

func TestAuthServiceForgotPasswordNeverReveals(t *testing.T) {
	svc := authFixture(t)

	assert.NoError(t, svc.ForgotPassword("client@test.com"))
	assert.NoError(t, svc.ForgotPassword("nobody@test.com"))
}
