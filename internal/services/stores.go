package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"microblog/internal/models"
	"microblog/internal/repository"
)

// UserStore is the credential store the services read and write.
// Implemented by repository.UserRepository.
type UserStore interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	List(ctx context.Context) ([]*models.User, error)
}

// PostStore is the post store. Implemented by repository.PostRepository.
type PostStore interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error)
	List(ctx context.Context, filter repository.PostFilter, skip, limit int64) ([]*models.Post, error)
	Count(ctx context.Context, filter repository.PostFilter) (int64, error)
	Create(ctx context.Context, post *models.Post) error
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}
