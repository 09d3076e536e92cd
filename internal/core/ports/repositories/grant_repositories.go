package repositories

import (
	"context"

	"github.com/VyankateshKulkarni06/E-Rupee/internal/core/domain"
)

// GrantReader defines read operations for extra-balance grants
type GrantReader interface {
	// FindGrantByID retrieves a grant by its id.
	FindGrantByID(ctx context.Context, grantID int64) (*domain.ExtraGrant, error)

	// ListGrantsByHolder retrieves all grants currently held by a user.
	ListGrantsByHolder(ctx context.Context, holder string) ([]domain.ExtraGrant, error)
}

// GrantWriter defines the funder-initiated cancellation of a grant.
type GrantWriter interface {
	// CancelGrant transitions an open grant to REJECTED, refunds its
	// remainder to the funder's balance and appends the refund payment,
	// all in one transaction. Returns apperrors.ErrGrantNotAvailable if
	// the grant is not open.
	CancelGrant(ctx context.Context, grantID int64) (*domain.Payment, error)
}

// GrantRepositoryFacade combines all grant-related repository interfaces
type GrantRepositoryFacade interface {
	GrantReader
	GrantWriter
}

// GrantRepositoryWithTx extends GrantRepositoryFacade with transaction capabilities
type GrantRepositoryWithTx interface {
	GrantRepositoryFacade
	TransactionManager
}
