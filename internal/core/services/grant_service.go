package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/VyankateshKulkarni06/E-Rupee/internal/apperrors"
	"github.com/VyankateshKulkarni06/E-Rupee/internal/core/domain"
	portsrepo "github.com/VyankateshKulkarni06/E-Rupee/internal/core/ports/repositories"
	portssvc "github.com/VyankateshKulkarni06/E-Rupee/internal/core/ports/services"
	"github.com/VyankateshKulkarni06/E-Rupee/internal/dto"
	"github.com/VyankateshKulkarni06/E-Rupee/internal/middleware"
)

// grantService handles the holder and funder operations on extra-balance grants.
type grantService struct {
	userRepo     portsrepo.UserRepositoryFacade
	paymentRepo  portsrepo.PaymentRepositoryFacade
	grantRepo    portsrepo.GrantRepositoryWithTx
	approvalRepo portsrepo.ApprovalRepositoryFacade
}

// NewGrantService creates a new GrantService.
func NewGrantService(
	grantRepo portsrepo.GrantRepositoryWithTx,
	paymentRepo portsrepo.PaymentRepositoryFacade,
	approvalRepo portsrepo.ApprovalRepositoryFacade,
	userRepo portsrepo.UserRepositoryFacade,
) portssvc.GrantSvcFacade {
	return &grantService{
		userRepo:     userRepo,
		paymentRepo:  paymentRepo,
		grantRepo:    grantRepo,
		approvalRepo: approvalRepo,
	}
}

var _ portssvc.GrantSvcFacade = (*grantService)(nil)

// RequestRelease records the holder's intent to redirect part of a grant to a
// third party. Nothing is reserved here; the remainder is re-validated under
// the approval transaction when the funder decides.
func (s *grantService) RequestRelease(ctx context.Context, holder string, req dto.ReleaseRequest) (*domain.ApprovalRequest, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	payment, err := s.paymentRepo.FindPaymentByID(ctx, req.PaymentID)
	if err != nil {
		return nil, err
	}
	// The grant is addressed through the extra-kind payment that funded it.
	if payment.Kind != domain.PaymentExtra || payment.GrantID == nil {
		return nil, fmt.Errorf("%w: payment %d did not fund an extra balance", apperrors.ErrNotFound, req.PaymentID)
	}

	grant, err := s.grantRepo.FindGrantByID(ctx, *payment.GrantID)
	if err != nil {
		return nil, err
	}

	// The grant's holder field is the authoritative owner. It is set from the
	// same value as the funding payment's receiver and nothing moves it.
	if grant.Holder != holder {
		return nil, apperrors.ErrForbidden
	}
	if !grant.IsOpen() {
		return nil, apperrors.ErrGrantNotAvailable
	}
	if !grant.CanCover(req.Amount) {
		return nil, apperrors.ErrInsufficientGrant
	}

	if _, err := s.userRepo.FindUserByUsername(ctx, req.Receiver); err != nil {
		return nil, err
	}

	purpose := req.Purpose
	if purpose == "" {
		purpose = grant.Purpose
	}

	request := domain.ApprovalRequest{
		Requester:   holder,
		Receiver:    req.Receiver,
		Funder:      grant.Funder,
		Amount:      req.Amount,
		Purpose:     purpose,
		Status:      domain.ApprovalPending,
		GrantID:     grant.GrantID,
		RequestedAt: time.Now(),
	}

	saved, err := s.approvalRepo.SaveRequest(ctx, request)
	if err != nil {
		return nil, err
	}

	logger.Info("Release request recorded",
		slog.Int64("pending_id", saved.RequestID),
		slog.Int64("bal_id", saved.GrantID),
		slog.String("final_receiver", saved.Receiver),
	)
	return saved, nil
}

// ListGrantsByHolder returns the grants currently held by a user.
func (s *grantService) ListGrantsByHolder(ctx context.Context, holder string) ([]domain.ExtraGrant, error) {
	return s.grantRepo.ListGrantsByHolder(ctx, holder)
}

// CancelGrant lets the funder cancel an open grant and reclaim its remainder.
func (s *grantService) CancelGrant(ctx context.Context, funder string, grantID int64) (*domain.Payment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	grant, err := s.grantRepo.FindGrantByID(ctx, grantID)
	if err != nil {
		return nil, err
	}
	if grant.Funder != funder {
		return nil, apperrors.ErrForbidden
	}
	if !grant.IsOpen() {
		return nil, apperrors.ErrGrantNotAvailable
	}

	refund, err := s.grantRepo.CancelGrant(ctx, grantID)
	if err != nil {
		return nil, err
	}

	logger.Info("Grant cancelled", slog.Int64("bal_id", grantID), slog.String("refund_amount", refund.Amount.String()))
	return refund, nil
}
