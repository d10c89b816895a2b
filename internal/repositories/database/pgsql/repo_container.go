package pgsql

import (
	portsrepo "github.com/financeira-app/gf_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider builds the full set of pgx-backed repositories.
func NewRepositoryProvider(db *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:        NewPgxUserRepository(db),
		CategoryRepo:    NewPgxCategoryRepository(db),
		TransactionRepo: NewPgxTransactionRepository(db),
	}
}
