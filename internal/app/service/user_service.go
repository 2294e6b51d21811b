package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/blueberries/blueberries-backend/internal/app/model"
	"github.com/blueberries/blueberries-backend/internal/app/repository"
	"github.com/blueberries/blueberries-backend/pkg/logger"
	"github.com/blueberries/blueberries-backend/pkg/util"
)

var (
	ErrCannotBlockAdmin = errors.New("cannot block an admin")
	ErrInvalidRole      = errors.New("invalid role")
)

type UserUpdateInput struct {
	Name  string
	Email string
	Role  model.UserRole
}

// UserService covers admin user management.
type UserService interface {
	ListUsers(filter repository.UserFilter) ([]model.User, error)
	GetUser(id uint) (*model.User, error)
	UpdateUser(id uint, input UserUpdateInput) (*model.User, error)
	ResetPassword(id uint, newPassword string) error
	// ToggleBlock flips the user between user and banned. Admins cannot
	// be blocked.
	ToggleBlock(id uint) (*model.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) ListUsers(filter repository.UserFilter) ([]model.User, error) {
	return s.userRepo.FindFiltered(filter)
}

func (s *userService) GetUser(id uint) (*model.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateUser(id uint, input UserUpdateInput) (*model.User, error) {
	user, err := s.GetUser(id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Email != "" {
		user.Email = input.Email
	}
	// Banning goes through the dedicated block toggle, so the profile
	// update only accepts user and admin.
	if input.Role != "" {
		switch input.Role {
		case model.RoleUser, model.RoleAdmin:
			user.Role = input.Role
		default:
			return nil, ErrInvalidRole
		}
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	logger.Info("User updated by admin", map[string]interface{}{
		"user_id": user.ID,
		"role":    user.Role,
	})
	return user, nil
}

func (s *userService) ResetPassword(id uint, newPassword string) error {
	if _, err := s.GetUser(id); err != nil {
		return err
	}

	hash, err := util.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.userRepo.UpdatePassword(id, hash); err != nil {
		return err
	}

	logger.Info("User password reset by admin", map[string]interface{}{
		"user_id": id,
	})
	return nil
}

func (s *userService) ToggleBlock(id uint) (*model.User, error) {
	user, err := s.GetUser(id)
	if err != nil {
		return nil, err
	}
	if user.IsAdmin() {
		return nil, ErrCannotBlockAdmin
	}

	newRole := model.RoleBanned
	if user.IsBanned() {
		newRole = model.RoleUser
	}
	if err := s.userRepo.UpdateRole(id, newRole); err != nil {
		return nil, err
	}
	user.Role = newRole

	logger.Info("User block state toggled", map[string]interface{}{
		"user_id": id,
		"role":    newRole,
	})
	return user, nil
}
