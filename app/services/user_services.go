package services

import (
	"context"

	"github.com/shashiranjanraj/leadhub/app/models"
	"github.com/shashiranjanraj/leadhub/app/repositories"
	"github.com/shashiranjanraj/leadhub/internal/store"
)

type UserService struct {
	users *repositories.UserRepository
}

func NewUserService(users *repositories.UserRepository) *UserService {
	return &UserService{users: users}
}

// Profile returns one user's record.
func (s *UserService) Profile(ctx context.Context, userID string) (models.User, error) {
	return s.users.FindByID(ctx, userID)
}

// UpdateProfile saves the editable profile fields. Email, password and role
// are not editable here; role only ever changes through the allow-list.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, in models.User) (models.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return models.User{}, err
	}

	if err := s.users.UpdateProfile(ctx, user.ID, in); err != nil {
		return models.User{}, err
	}
	return s.users.FindByID(ctx, userID)
}

// All lists users for the admin table.
func (s *UserService) All(ctx context.Context, page, limit int) ([]models.User, store.Pagination, error) {
	return s.users.All(ctx, page, limit)
}
