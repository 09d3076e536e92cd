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

type PgxApprovalRepository struct {
	BaseRepository
	userRepo portsrepo.UserTxOps
}

// newPgxApprovalRepository creates a new repository for release requests.
func newPgxApprovalRepository(pool *pgxpool.Pool, userRepo portsrepo.UserTxOps) portsrepo.ApprovalRepositoryWithTx {
	return &PgxApprovalRepository{
		BaseRepository: BaseRepository{Pool: pool},
		userRepo:       userRepo,
	}
}

var _ portsrepo.ApprovalRepositoryWithTx = (*PgxApprovalRepository)(nil)

const requestColumns = `pending_id, requester_username, receiver_username, original_sender, amount, purpose, status, bal_id, requested_at`

func scanRequest(row pgx.Row) (*models.PendingRequest, error) {
	var m models.PendingRequest
	err := row.Scan(
		&m.RequestID,
		&m.Requester,
		&m.Receiver,
		&m.Funder,
		&m.Amount,
		&m.Purpose,
		&m.Status,
		&m.GrantID,
		&m.RequestedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// FindRequestByID retrieves a release request by its id.
func (r *PgxApprovalRepository) FindRequestByID(ctx context.Context, requestID int64) (*domain.ApprovalRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM pending_req WHERE pending_id = $1;`

	m, err := scanRequest(r.Pool.QueryRow(ctx, query, requestID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to find request %d", requestID), err)
	}

	request := mapping.ToDomainApproval(*m)
	return &request, nil
}

// ListRequestsByFunder retrieves the release requests addressed to a funder,
// newest first.
func (r *PgxApprovalRepository) ListRequestsByFunder(ctx context.Context, funder string) ([]domain.ApprovalRequest, error) {
	query := `
		SELECT ` + requestColumns + `
		FROM pending_req
		WHERE original_sender = $1
		ORDER BY pending_id DESC;
	`
	rows, err := r.Pool.Query(ctx, query, funder)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query requests for funder "+funder, err)
	}
	defer rows.Close()

	requests := []models.PendingRequest{}
	for rows.Next() {
		m, err := scanRequest(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan request row", err)
		}
		requests = append(requests, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating request rows", err)
	}

	return mapping.ToDomainApprovalSlice(requests), nil
}

// SaveRequest inserts a new release request and returns it with its assigned id.
func (r *PgxApprovalRepository) SaveRequest(ctx context.Context, req domain.ApprovalRequest) (*domain.ApprovalRequest, error) {
	query := `
		INSERT INTO pending_req (requester_username, receiver_username, original_sender, amount, purpose, status, bal_id, requested_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING pending_id;
	`
	saved := req
	err := r.Pool.QueryRow(ctx, query,
		req.Requester,
		req.Receiver,
		req.Funder,
		req.Amount,
		req.Purpose,
		models.ApprovalStatus(req.Status),
		req.GrantID,
		req.RequestedAt,
	).Scan(&saved.RequestID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert release request", err)
	}
	return &saved, nil
}

// RejectRequest transitions a request PENDING -> REJECTED with no ledger effect.
func (r *PgxApprovalRepository) RejectRequest(ctx context.Context, requestID int64) error {
	query := `
		UPDATE pending_req
		SET status = $2
		WHERE pending_id = $1 AND status = $3;
	`
	ct, err := r.Pool.Exec(ctx, query, requestID, models.ApprovalRejected, models.ApprovalPending)
	if err != nil {
		return apperrors.NewAppError(500, fmt.Sprintf("failed to reject request %d", requestID), err)
	}
	// Zero rows means the request is gone or was already resolved; a second
	// rejection must not silently succeed.
	if ct.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SettleApproval settles an approved release request as one database
// transaction: claim the pending row, re-validate the grant remainder under a
// row lock, debit the grant, credit the final receiver and append the payment.
// A shortfall rolls everything back, leaving the request pending for retry.
func (r *PgxApprovalRepository) SettleApproval(ctx context.Context, req domain.ApprovalRequest) (*domain.Payment, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	now := time.Now()

	// Claim the request first so a concurrent resolve fails fast instead of
	// waiting on the grant lock.
	claimQuery := `
		UPDATE pending_req
		SET status = $2
		WHERE pending_id = $1 AND status = $3;
	`
	ct, err := tx.Exec(ctx, claimQuery, req.RequestID, models.ApprovalApproved, models.ApprovalPending)
	if err != nil {
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to claim request %d", req.RequestID), err)
	}
	if ct.RowsAffected() == 0 {
		return nil, apperrors.ErrNotFound
	}

	grantQuery := `SELECT amount, status FROM extra_bal WHERE bal_id = $1 FOR UPDATE;`
	var remaining decimal.Decimal
	var status models.GrantStatus
	if err := tx.QueryRow(ctx, grantQuery, req.GrantID).Scan(&remaining, &status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to lock grant %d", req.GrantID), err)
	}
	if status != models.GrantOpen {
		return nil, apperrors.ErrGrantNotAvailable
	}
	// Re-validated here because request creation reserved nothing: another
	// approval may have drained the grant since.
	if remaining.LessThan(req.Amount) {
		return nil, apperrors.ErrInsufficientGrant
	}

	newRemaining := remaining.Sub(req.Amount)
	newStatus := models.GrantOpen
	if newRemaining.IsZero() {
		newStatus = models.GrantExhausted
	}
	grantUpdate := `
		UPDATE extra_bal
		SET amount = $2, status = $3, last_updated_at = $4
		WHERE bal_id = $1;
	`
	if _, err := tx.Exec(ctx, grantUpdate, req.GrantID, newRemaining, newStatus, now); err != nil {
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to debit grant %d", req.GrantID), err)
	}

	if err := r.userRepo.AdjustBalanceInTx(ctx, tx, req.Receiver, req.Amount, now); err != nil {
		return nil, err
	}

	settlement := models.Payment{
		Sender:   req.Requester,
		Receiver: req.Receiver,
		Amount:   req.Amount,
		DoneAt:   now,
		Stage:    models.StageAuthorized,
		Status:   models.PaymentDone,
		Kind:     models.PaymentNormal,
		GrantID:  &req.GrantID,
	}
	paymentID, err := insertPaymentInTx(ctx, tx, settlement)
	if err != nil {
		return nil, err
	}
	settlement.PaymentID = paymentID

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	payment := mapping.ToDomainPayment(settlement)
	return &payment, nil
}
