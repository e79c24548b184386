package store

import (
	"testing"
	"time"

	"github.com/Xae97/TaskFundi/internal/models"

	"github.com/stretchr/testify/assert"
)

func seedUsers() []models.User {
	return []models.User{
		{ID: "u1", Name: "Client", Email: "client@test.com", Role: models.UserRoleClient},
		{ID: "u2", Name: "Fundi", Email: "fundi@test.com", Role: models.UserRoleFundi, Skills: "Plumbing"},
	}
}

func TestUserStoreFindByEmailIgnoresCase(t *testing.T) {
	s := NewUserStore(seedUsers())

	user, err := s.FindByEmail("CLIENT@Test.Com")
	assert.NoError(t, err)
	assert.Equal(t, "u1", user.ID)

	_, err = s.FindByEmail("nobody@test.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserStoreCreateRejectsDuplicateEmail(t *testing.T) {
	s := NewUserStore(seedUsers())

	err := s.Create(&models.User{Name: "Dup", Email: "Client@test.com", Role: models.UserRoleClient})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)

	fresh := &models.User{Name: "New", Email: "new@test.com", Role: models.UserRoleFundi}
	assert.NoError(t, s.Create(fresh))
	assert.NotEmpty(t, fresh.ID)
}

func TestUserStoreFindByRole(t *testing.T) {
	s := NewUserStore(seedUsers())

	fundis := s.FindByRole(models.UserRoleFundi)
	assert.Len(t, fundis, 1)
	assert.Equal(t, "u2", fundis[0].ID)

	clients := s.FindByRole(models.UserRoleClient)
	assert.Len(t, clients, 1)
}

func TestUserStoreUpdate(t *testing.T) {
	s := NewUserStore(seedUsers())

	user, err := s.FindByID("u2")
	assert.NoError(t, err)
	user.Skills = "Plumbing, Tiling"
	assert.NoError(t, s.Update(user))

	updated, err := s.FindByID("u2")
	assert.NoError(t, err)
	assert.Equal(t, "Plumbing, Tiling", updated.Skills)

	assert.ErrorIs(t, s.Update(&models.User{ID: "ghost"}), ErrUserNotFound)
}

func TestUserStoreRefreshTokens(t *testing.T) {
	s := NewUserStore(seedUsers())

	token := &models.RefreshToken{Token: "rt1", UserID: "u1", ExpiresAt: time.Now().Add(time.Hour)}
	assert.NoError(t, s.SaveRefreshToken(token))

	found, err := s.FindRefreshToken("rt1")
	assert.NoError(t, err)
	assert.Equal(t, "u1", found.UserID)

	assert.NoError(t, s.DeleteRefreshToken("rt1"))
	_, err = s.FindRefreshToken("rt1")
	assert.ErrorIs(t, err, ErrRefreshTokenNotFound)
	assert.ErrorIs(t, s.DeleteRefreshToken("rt1"), ErrRefreshTokenNotFound)
}
