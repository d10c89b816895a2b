package models

import "time"

// Category is the persistence row for a category.
type Category struct {
	CategoryID  string    `db:"category_id"`
	UserID      string    `db:"user_id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
	LastUpdated time.Time `db:"last_updated_at"`
}
