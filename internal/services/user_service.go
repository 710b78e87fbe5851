package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"microblog/internal/apperr"
	"microblog/internal/models"
	"microblog/internal/repository"
)

// UserService is the read-only user directory.
type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// List returns all users. An empty directory is a 404; a store failure
// stays a plain error and surfaces as 500.
func (s *UserService) List(ctx context.Context) ([]*models.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, apperr.NotFound("No users found.")
	}
	return users, nil
}

func (s *UserService) Get(ctx context.Context, userID string) (*models.User, error) {
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, apperr.NotFound(fmt.Sprintf("Could not find user: %s.", userID))
	}

	user, err := s.users.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.NotFound(fmt.Sprintf("Could not find user: %s.", userID))
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}
