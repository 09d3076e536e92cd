package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/VyankateshKulkarni06/E-Rupee/internal/apperrors"
	"github.com/VyankateshKulkarni06/E-Rupee/internal/core/domain"
	portsrepo "github.com/VyankateshKulkarni06/E-Rupee/internal/core/ports/repositories"
	"github.com/VyankateshKulkarni06/E-Rupee/internal/models"
	"github.com/VyankateshKulkarni06/E-Rupee/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxGrantRepository struct {
	BaseRepository
	userRepo portsrepo.UserTxOps
}

// newPgxGrantRepository creates a new repository for extra-balance grants.
func newPgxGrantRepository(pool *pgxpool.Pool, userRepo portsrepo.UserTxOps) portsrepo.GrantRepositoryWithTx {
	return &PgxGrantRepository{
		BaseRepository: BaseRepository{Pool: pool},
		userRepo:       userRepo,
	}
}

var _ portsrepo.GrantRepositoryWithTx = (*PgxGrantRepository)(nil)

const grantColumns = `bal_id, sender_username, receiver_username, amount, purpose, status, created_at, last_updated_at`

func scanGrant(row pgx.Row) (*models.ExtraBalance, error) {
	var m models.ExtraBalance
	err := row.Scan(
		&m.GrantID,
		&m.Funder,
		&m.Holder,
		&m.Remaining,
		&m.Purpose,
		&m.Status,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// FindGrantByID retrieves a grant by its id.
func (r *PgxGrantRepository) FindGrantByID(ctx context.Context, grantID int64) (*domain.ExtraGrant, error) {
	query := `SELECT ` + grantColumns + ` FROM extra_bal WHERE bal_id = $1;`

	m, err := scanGrant(r.Pool.QueryRow(ctx, query, grantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to find grant %d", grantID), err)
	}

	grant := mapping.ToDomainGrant(*m)
	return &grant, nil
}

// ListGrantsByHolder retrieves all grants currently held by a user, newest first.
func (r *PgxGrantRepository) ListGrantsByHolder(ctx context.Context, holder string) ([]domain.ExtraGrant, error) {
	query := `
		SELECT ` + grantColumns + `
		FROM extra_bal
		WHERE receiver_username = $1
		ORDER BY bal_id DESC;
	`
	rows, err := r.Pool.Query(ctx, query, holder)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query grants for holder "+holder, err)
	}
	defer rows.Close()

	grants := []models.ExtraBalance{}
	for rows.Next() {
		m, err := scanGrant(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan grant row", err)
		}
		grants = append(grants, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating grant rows", err)
	}

	return mapping.ToDomainGrantSlice(grants), nil
}

// CancelGrant transitions an open grant to REJECTED, refunds its remainder to
// the funder's balance and appends the refund payment, all in one transaction.
func (r *PgxGrantRepository) CancelGrant(ctx context.Context, grantID int64) (*domain.Payment, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	query := `SELECT ` + grantColumns + ` FROM extra_bal WHERE bal_id = $1 FOR UPDATE;`
	m, err := scanGrant(tx.QueryRow(ctx, query, grantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to lock grant %d", grantID), err)
	}
	if m.Status != models.GrantOpen {
		return nil, apperrors.ErrGrantNotAvailable
	}

	now := time.Now()
	remainder := m.Remaining

	updateQuery := `
		UPDATE extra_bal
		SET amount = 0, status = $2, last_updated_at = $3
		WHERE bal_id = $1;
	`
	if _, err := tx.Exec(ctx, updateQuery, grantID, models.GrantRejected, now); err != nil {
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to cancel grant %d", grantID), err)
	}

	if err := r.userRepo.AdjustBalanceInTx(ctx, tx, m.Funder, remainder, now); err != nil {
		return nil, err
	}

	refund := models.Payment{
		Sender:   m.Holder,
		Receiver: m.Funder,
		Amount:   remainder,
		DoneAt:   now,
		Stage:    models.StageAuthorized,
		Status:   models.PaymentDone,
		Kind:     models.PaymentNormal,
		GrantID:  &grantID,
	}
	paymentID, err := insertPaymentInTx(ctx, tx, refund)
	if err != nil {
		return nil, err
	}
	refund.PaymentID = paymentID

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	payment := mapping.ToDomainPayment(refund)
	return &payment, nil
}
