package repositories

import (
	"context"
	"time"

	"github.com/VyankateshKulkarni06/E-Rupee/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByUsername retrieves a user by its unique username.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user. Returns apperrors.ErrDuplicate when the
	// username or email is already taken.
	SaveUser(ctx context.Context, user domain.User) error
}

// UserTxOps defines user operations that run inside a caller-owned transaction.
// The ledger repositories use these to lock and mutate balances while keeping
// the commit under their control.
type UserTxOps interface {
	// FindUserForUpdate retrieves a user and locks its row for update.
	FindUserForUpdate(ctx context.Context, tx pgx.Tx, username string) (*domain.User, error)

	// AdjustBalanceInTx applies a signed delta to a user's balance.
	AdjustBalanceInTx(ctx context.Context, tx pgx.Tx, username string, delta decimal.Decimal, now time.Time) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
	UserTxOps
}

// UserRepositoryWithTx extends UserRepositoryFacade with transaction capabilities
type UserRepositoryWithTx interface {
	UserRepositoryFacade
	TransactionManager
}
