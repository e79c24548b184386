package services

import (
	"github.com/Xae97/TaskFundi/internal/models"
	"github.com/Xae97/TaskFundi/internal/services/dto"
	"github.com/Xae97/TaskFundi/internal/store"
	"github.com/Xae97/TaskFundi/pkg/apperrors"
)

type UserService interface {
	GetByID(id string) (*models.User, error)
	ListFundis() []models.User
	UpdateProfile(userID string, req *dto.UpdateProfileRequest) (*models.User, error)
}

type userService struct {
	userStore store.UserStore
}

func NewUserService(userStore store.UserStore) UserService {
	return &userService{userStore: userStore}
}

func (s *userService) GetByID(id string) (*models.User, error) {
	user, err := s.userStore.FindByID(id)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}
	return user, nil
}

func (s *userService) ListFundis() []models.User {
	return s.userStore.FindByRole(models.UserRoleFundi)
}

func (s *userService) UpdateProfile(userID string, req *dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.userStore.FindByID(userID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Address != nil {
		user.Location.Address = *req.Address
	}
	if req.Skills != nil {
		user.Skills = *req.Skills
	}

	if err := s.userStore.Update(user); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}
