package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"microblog/internal/apperr"
	"microblog/internal/models"
	"microblog/internal/repository"
	"microblog/internal/validators"
)

type AuthService struct {
	users      UserStore
	tokens     *TokenManager
	bcryptCost int
}

func NewAuthService(users UserStore, tokens *TokenManager, bcryptCost int) *AuthService {
	return &AuthService{
		users:      users,
		tokens:     tokens,
		bcryptCost: bcryptCost,
	}
}

// Register creates a user with role "user" and an empty post list.
// Returns the hex id of the created user.
func (s *AuthService) Register(ctx context.Context, email, password, firstName, lastName string) (string, error) {
	email = validators.NormalizeEmail(email)

	var fields []apperr.FieldError
	if err := validators.ValidateEmail(email); err != nil {
		fields = append(fields, apperr.FieldError{Field: "email", Message: "Invalid email address."})
	}
	if err := validators.ValidatePassword(password); err != nil {
		fields = append(fields, apperr.FieldError{Field: "password", Message: "Password must be at least 5 characters."})
	}
	if len(fields) > 0 {
		return "", apperr.Validation("Validation failed.", fields)
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return "", apperr.Validation("Email address already exists.", []apperr.FieldError{
			{Field: "email", Message: "Email address already exists."},
		})
	} else if !errors.Is(err, repository.ErrNotFound) {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", err
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    firstName,
		LastName:     lastName,
		Role:         models.RoleUser,
		Posts:        []primitive.ObjectID{},
	}

	if err := s.users.Create(ctx, user); err != nil {
		// The unique index can still race the lookup above.
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return "", apperr.Validation("Email address already exists.", []apperr.FieldError{
				{Field: "email", Message: "Email address already exists."},
			})
		}
		return "", err
	}

	return user.ID.Hex(), nil
}

// Login verifies credentials and issues a signed session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (token, userID string, err error) {
	user, err := s.users.GetByEmail(ctx, validators.NormalizeEmail(email))
	if errors.Is(err, repository.ErrNotFound) {
		return "", "", apperr.Unauthorized("Invalid email or password.")
	}
	if err != nil {
		return "", "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", "", apperr.Unauthorized("Invalid email or password.")
	}

	userID = user.ID.Hex()
	token, err = s.tokens.Issue(userID, user.Email)
	if err != nil {
		return "", "", err
	}
	return token, userID, nil
}
