package services

import (
	"context"

	"github.com/financeira-app/gf_backend/internal/core/domain"
	"github.com/financeira-app/gf_backend/internal/dto"
)

// CategorySvcFacade defines operations for managing a user's categories.
type CategorySvcFacade interface {
	// CreateCategory creates a category for the user. Names are unique per
	// user; a clash yields apperrors.ErrDuplicate.
	CreateCategory(ctx context.Context, userID string, req dto.CreateCategoryRequest) (*domain.Category, error)

	// GetCategoryByID returns a category the user owns; a category belonging
	// to another user yields apperrors.ErrForbidden.
	GetCategoryByID(ctx context.Context, userID, categoryID string) (*domain.Category, error)

	// ListCategories returns the user's categories ordered by name.
	ListCategories(ctx context.Context, userID string) ([]domain.Category, error)

	// UpdateCategory updates a category the user owns.
	UpdateCategory(ctx context.Context, userID, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error)

	// DeleteCategory removes a category the user owns.
	DeleteCategory(ctx context.Context, userID, categoryID string) error
}
