package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/VyankateshKulkarni06/E-Rupee/internal/apperrors"
	"github.com/VyankateshKulkarni06/E-Rupee/internal/core/domain"
	portsrepo "github.com/VyankateshKulkarni06/E-Rupee/internal/core/ports/repositories"
	"github.com/VyankateshKulkarni06/E-Rupee/internal/models"
	"github.com/VyankateshKulkarni06/E-Rupee/internal/utils/mapping"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxUserRepository struct {
	BaseRepository
}

// newPgxUserRepository creates a new repository for user data.
func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryWithTx {
	return &PgxUserRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.UserRepositoryWithTx = (*PgxUserRepository)(nil)

const userColumns = `user_name, name, email, balance, password, created_at, last_updated_at`

func scanUser(row pgx.Row) (*models.User, error) {
	var m models.User
	err := row.Scan(
		&m.Username,
		&m.Name,
		&m.Email,
		&m.Balance,
		&m.PasswordHash,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// FindUserByUsername retrieves a user by its unique username.
func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_name = $1;`

	m, err := scanUser(r.Pool.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find user "+username, err)
	}

	user := mapping.ToDomainUser(*m)
	return &user, nil
}

// SaveUser persists a new user.
func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `
		INSERT INTO users (user_name, name, email, balance, password, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.Username,
		m.Name,
		m.Email,
		m.Balance,
		m.PasswordHash,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to save user "+m.Username, err)
	}
	return nil
}

// FindUserForUpdate retrieves a user and locks its row for update.
// Must be called within a transaction.
func (r *PgxUserRepository) FindUserForUpdate(ctx context.Context, tx pgx.Tx, username string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_name = $1 FOR UPDATE;`

	m, err := scanUser(tx.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to lock user "+username, err)
	}

	user := mapping.ToDomainUser(*m)
	return &user, nil
}

// AdjustBalanceInTx applies a signed delta to a user's balance.
// Must be called within a transaction.
func (r *PgxUserRepository) AdjustBalanceInTx(ctx context.Context, tx pgx.Tx, username string, delta decimal.Decimal, now time.Time) error {
	query := `
		UPDATE users
		SET balance = balance + $2, last_updated_at = $3
		WHERE user_name = $1;
	`
	ct, err := tx.Exec(ctx, query, username, delta, now)
	if err != nil {
		return apperrors.NewAppError(500, "failed to adjust balance for user "+username, err)
	}
	if ct.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
