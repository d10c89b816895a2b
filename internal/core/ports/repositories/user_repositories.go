package repositories

import (
	"context"

	"github.com/financeira-app/gf_backend/internal/core/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	// SaveUser inserts or updates a user.
	SaveUser(ctx context.Context, user domain.User) error

	// FindUserByID returns the user with the given id, or apperrors.ErrNotFound.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail returns the user with the given email, or apperrors.ErrNotFound.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}
