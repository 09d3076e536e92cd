package services

import (
	"context"

	"github.com/VyankateshKulkarni06/E-Rupee/internal/core/domain"
	"github.com/VyankateshKulkarni06/E-Rupee/internal/dto"
)

// GrantSvcFacade covers the holder and funder operations on extra-balance grants.
type GrantSvcFacade interface {
	// RequestRelease records the holder's intent to redirect part of a grant
	// to a third party. The grant is located through the extra-kind payment
	// that funded it; only that payment's receiver may request. No funds are
	// reserved at this step.
	RequestRelease(ctx context.Context, holder string, req dto.ReleaseRequest) (*domain.ApprovalRequest, error)

	// ListGrantsByHolder returns the grants currently held by a user.
	ListGrantsByHolder(ctx context.Context, holder string) ([]domain.ExtraGrant, error)

	// CancelGrant lets the funder cancel an open grant, reclaiming its
	// remainder into their own balance.
	CancelGrant(ctx context.Context, funder string, grantID int64) (*domain.Payment, error)
}

// ApprovalSvcFacade resolves pending release requests.
type ApprovalSvcFacade interface {
	// Resolve applies the funder's decision to a pending request. Approval
	// settles the amount into the final receiver's balance; rejection has no
	// ledger effect. Only the grant's funder may resolve.
	Resolve(ctx context.Context, funder string, requestID int64, decision domain.ResolveDecision) (*domain.Payment, error)

	// ListPendingForFunder returns the release requests addressed to a funder.
	ListPendingForFunder(ctx context.Context, funder string) ([]domain.ApprovalRequest, error)
}
