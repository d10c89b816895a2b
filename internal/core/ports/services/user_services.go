package services

import (
	"context"

	"github.com/financeira-app/gf_backend/internal/core/domain"
	"github.com/financeira-app/gf_backend/internal/dto"
)

// UserSvcFacade defines operations for managing users.
type UserSvcFacade interface {
	// CreateUser registers a new user with a bcrypt-hashed password.
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)

	// GetUserByID returns the user with the given id.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByEmail returns the user with the given email.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindOrCreateGoogleUser returns the user with the given email, creating
	// a password-less account on first Google sign-in.
	FindOrCreateGoogleUser(ctx context.Context, name, email string) (*domain.User, error)
}
