package repositories

import (
	"context"

	"github.com/VyankateshKulkarni06/E-Rupee/internal/core/domain"
)

// ApprovalReader defines read operations for release requests
type ApprovalReader interface {
	// FindRequestByID retrieves a release request by its id.
	FindRequestByID(ctx context.Context, requestID int64) (*domain.ApprovalRequest, error)

	// ListRequestsByFunder retrieves the release requests addressed to a
	// funder, newest first.
	ListRequestsByFunder(ctx context.Context, funder string) ([]domain.ApprovalRequest, error)
}

// ApprovalWriter defines write operations for release requests
type ApprovalWriter interface {
	// SaveRequest inserts a new release request with PENDING status and
	// returns it with its assigned id. No balance or grant mutation occurs.
	SaveRequest(ctx context.Context, req domain.ApprovalRequest) (*domain.ApprovalRequest, error)

	// RejectRequest transitions a request PENDING -> REJECTED with no ledger
	// effect. Returns apperrors.ErrNotFound when the request does not exist
	// or is no longer pending.
	RejectRequest(ctx context.Context, requestID int64) error

	// SettleApproval transitions a request PENDING -> APPROVED, debits the
	// referenced grant's remainder (marking it EXHAUSTED on reaching zero),
	// credits the final receiver and appends the settlement payment, all in
	// one transaction. The grant remainder is re-validated under the row
	// lock; a shortfall rolls everything back with
	// apperrors.ErrInsufficientGrant, leaving the request pending.
	SettleApproval(ctx context.Context, req domain.ApprovalRequest) (*domain.Payment, error)
}

// ApprovalRepositoryFacade combines all release-request repository interfaces
type ApprovalRepositoryFacade interface {
	ApprovalReader
	ApprovalWriter
}

// ApprovalRepositoryWithTx extends ApprovalRepositoryFacade with transaction capabilities
type ApprovalRepositoryWithTx interface {
	ApprovalRepositoryFacade
	TransactionManager
}
