package repositories

import (
	"context"

	"github.com/financeira-app/gf_backend/internal/core/domain"
)

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	// SaveCategory inserts or updates a category.
	SaveCategory(ctx context.Context, category domain.Category) error

	// FindCategoryByID returns the category with the given id, or apperrors.ErrNotFound.
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)

	// ListCategoriesByUser returns the user's categories ordered by name.
	ListCategoriesByUser(ctx context.Context, userID string) ([]domain.Category, error)

	// ExistsCategoryName reports whether the user already has a category with this name.
	ExistsCategoryName(ctx context.Context, userID string, name string) (bool, error)

	// DeleteCategory removes the category. Transactions referencing it are
	// removed by the schema's ON DELETE CASCADE.
	DeleteCategory(ctx context.Context, categoryID string) error
}
