package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/financeira-app/gf_backend/internal/apperrors"
	"github.com/financeira-app/gf_backend/internal/core/domain"
	portsrepo "github.com/financeira-app/gf_backend/internal/core/ports/repositories"
	"github.com/financeira-app/gf_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCategoryRepository struct {
	db *pgxpool.Pool
}

func NewPgxCategoryRepository(db *pgxpool.Pool) portsrepo.CategoryRepository {
	return &PgxCategoryRepository{db: db}
}

// Ensure PgxCategoryRepository implements portsrepo.CategoryRepository
var _ portsrepo.CategoryRepository = (*PgxCategoryRepository)(nil)

func toModelCategory(d domain.Category) models.Category {
	return models.Category{
		CategoryID:  d.CategoryID,
		UserID:      d.UserID,
		Name:        d.Name,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
		LastUpdated: d.LastUpdatedAt,
	}
}

func toDomainCategory(m models.Category) domain.Category {
	return domain.Category{
		CategoryID:  m.CategoryID,
		UserID:      m.UserID,
		Name:        m.Name,
		Description: m.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdated,
		},
	}
}

func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	modelCategory := toModelCategory(category)
	query := `
        INSERT INTO categories (category_id, user_id, name, description, created_at, last_updated_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (category_id) DO UPDATE SET
            name = EXCLUDED.name,
            description = EXCLUDED.description,
            last_updated_at = EXCLUDED.last_updated_at;
    `
	_, err := r.db.Exec(ctx, query,
		modelCategory.CategoryID,
		modelCategory.UserID,
		modelCategory.Name,
		modelCategory.Description,
		modelCategory.CreatedAt,
		modelCategory.LastUpdated,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation on (user_id, name)
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save category: %w", err)
	}
	return nil
}

func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	query := `
		SELECT category_id, user_id, name, description, created_at, last_updated_at
		FROM categories
		WHERE category_id = $1;
	`
	var modelCategory models.Category
	err := r.db.QueryRow(ctx, query, categoryID).Scan(
		&modelCategory.CategoryID,
		&modelCategory.UserID,
		&modelCategory.Name,
		&modelCategory.Description,
		&modelCategory.CreatedAt,
		&modelCategory.LastUpdated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find category by ID %s: %w", categoryID, err)
	}

	domainCategory := toDomainCategory(modelCategory)
	return &domainCategory, nil
}

func (r *PgxCategoryRepository) ListCategoriesByUser(ctx context.Context, userID string) ([]domain.Category, error) {
	query := `
		SELECT category_id, user_id, name, description, created_at, last_updated_at
		FROM categories
		WHERE user_id = $1
		ORDER BY name;
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories for user %s: %w", userID, err)
	}
	defer rows.Close()

	categories := make([]domain.Category, 0)
	for rows.Next() {
		var m models.Category
		if err := rows.Scan(&m.CategoryID, &m.UserID, &m.Name, &m.Description, &m.CreatedAt, &m.LastUpdated); err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		categories = append(categories, toDomainCategory(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category rows: %w", err)
	}
	return categories, nil
}

func (r *PgxCategoryRepository) ExistsCategoryName(ctx context.Context, userID string, name string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM categories WHERE user_id = $1 AND name = $2);`
	var exists bool
	if err := r.db.QueryRow(ctx, query, userID, name).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check category name existence: %w", err)
	}
	return exists, nil
}

func (r *PgxCategoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM categories WHERE category_id = $1;`, categoryID)
	if err != nil {
		return fmt.Errorf("failed to delete category %s: %w", categoryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
