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
	"github.com/shopspring/decimal"
)

type PgxPaymentRepository struct {
	BaseRepository
	userRepo portsrepo.UserTxOps
}

// newPgxPaymentRepository creates a new repository for the payment ledger.
func newPgxPaymentRepository(pool *pgxpool.Pool, userRepo portsrepo.UserTxOps) portsrepo.PaymentRepositoryWithTx {
	return &PgxPaymentRepository{
		BaseRepository: BaseRepository{Pool: pool},
		userRepo:       userRepo,
	}
}

var _ portsrepo.PaymentRepositoryWithTx = (*PgxPaymentRepository)(nil)

const paymentColumns = `payment_id, sender_username, receiver_username, amount, done_at, approved, status, type, bal_id`

func scanPayment(row pgx.Row) (*models.Payment, error) {
	var m models.Payment
	err := row.Scan(
		&m.PaymentID,
		&m.Sender,
		&m.Receiver,
		&m.Amount,
		&m.DoneAt,
		&m.Stage,
		&m.Status,
		&m.Kind,
		&m.GrantID,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// insertPaymentInTx appends a payment row and returns its assigned id.
// Shared by every ledger transaction that records a money movement.
func insertPaymentInTx(ctx context.Context, tx pgx.Tx, m models.Payment) (int64, error) {
	query := `
		INSERT INTO payment (sender_username, receiver_username, amount, done_at, approved, status, type, bal_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING payment_id;
	`
	var id int64
	err := tx.QueryRow(ctx, query,
		m.Sender,
		m.Receiver,
		m.Amount,
		m.DoneAt,
		m.Stage,
		m.Status,
		m.Kind,
		m.GrantID,
	).Scan(&id)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to insert payment", err)
	}
	return id, nil
}

// SaveTransfer persists a complete transfer as one database transaction:
// sender debit, then receiver credit or grant upsert, then the payment row.
// Any failure rolls the whole thing back.
func (r *PgxPaymentRepository) SaveTransfer(ctx context.Context, payment domain.Payment, purpose string) (*domain.Payment, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	now := payment.DoneAt

	// Lock the sender row and re-check the balance under the lock; the
	// service's pre-check may be stale by the time we get here.
	sender, err := r.userRepo.FindUserForUpdate(ctx, tx, payment.Sender)
	if err != nil {
		return nil, err
	}
	if sender.Balance.LessThan(payment.Amount) {
		return nil, apperrors.ErrInsufficientFunds
	}

	if err := r.userRepo.AdjustBalanceInTx(ctx, tx, payment.Sender, payment.Amount.Neg(), now); err != nil {
		return nil, err
	}

	saved := payment
	if payment.Kind == domain.PaymentExtra {
		grantID, err := upsertGrantInTx(ctx, tx, payment.Sender, payment.Receiver, purpose, payment.Amount, now)
		if err != nil {
			return nil, err
		}
		saved.GrantID = &grantID
	} else {
		if err := r.userRepo.AdjustBalanceInTx(ctx, tx, payment.Receiver, payment.Amount, now); err != nil {
			return nil, err
		}
	}

	paymentID, err := insertPaymentInTx(ctx, tx, mapping.ToModelPayment(saved))
	if err != nil {
		return nil, err
	}
	saved.PaymentID = paymentID

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &saved, nil
}

// upsertGrantInTx adds amount to the open grant keyed by (funder, holder,
// purpose), creating it when absent. Returns the grant id.
func upsertGrantInTx(ctx context.Context, tx pgx.Tx, funder, holder, purpose string, amount decimal.Decimal, now time.Time) (int64, error) {
	selectQuery := `
		SELECT bal_id FROM extra_bal
		WHERE sender_username = $1 AND receiver_username = $2 AND purpose = $3 AND status = $4
		FOR UPDATE;
	`
	var grantID int64
	err := tx.QueryRow(ctx, selectQuery, funder, holder, purpose, models.GrantOpen).Scan(&grantID)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.NewAppError(500, "failed to look up existing grant", err)
		}
		insertQuery := `
			INSERT INTO extra_bal (sender_username, receiver_username, amount, purpose, status, created_at, last_updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $6)
			RETURNING bal_id;
		`
		if err := tx.QueryRow(ctx, insertQuery, funder, holder, amount, purpose, models.GrantOpen, now).Scan(&grantID); err != nil {
			return 0, apperrors.NewAppError(500, "failed to create grant", err)
		}
		return grantID, nil
	}

	updateQuery := `
		UPDATE extra_bal
		SET amount = amount + $2, last_updated_at = $3
		WHERE bal_id = $1;
	`
	if _, err := tx.Exec(ctx, updateQuery, grantID, amount, now); err != nil {
		return 0, apperrors.NewAppError(500, fmt.Sprintf("failed to top up grant %d", grantID), err)
	}
	return grantID, nil
}

// FindPaymentByID retrieves a payment by its id.
func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, paymentID int64) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payment WHERE payment_id = $1;`

	m, err := scanPayment(r.Pool.QueryRow(ctx, query, paymentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to find payment %d", paymentID), err)
	}

	payment := mapping.ToDomainPayment(*m)
	return &payment, nil
}

// ListPaymentsByUser retrieves all payments where the user is sender or
// receiver, newest first.
func (r *PgxPaymentRepository) ListPaymentsByUser(ctx context.Context, username string) ([]domain.Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payment
		WHERE sender_username = $1 OR receiver_username = $1
		ORDER BY done_at DESC, payment_id DESC;
	`
	rows, err := r.Pool.Query(ctx, query, username)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query payments for user "+username, err)
	}
	defer rows.Close()

	payments := []models.Payment{}
	for rows.Next() {
		m, err := scanPayment(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan payment row", err)
		}
		payments = append(payments, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating payment rows", err)
	}

	return mapping.ToDomainPaymentSlice(payments), nil
}
