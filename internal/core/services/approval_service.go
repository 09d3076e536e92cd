package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/VyankateshKulkarni06/E-Rupee/internal/apperrors"
	"github.com/VyankateshKulkarni06/E-Rupee/internal/core/domain"
	portsrepo "github.com/VyankateshKulkarni06/E-Rupee/internal/core/ports/repositories"
	portssvc "github.com/VyankateshKulkarni06/E-Rupee/internal/core/ports/services"
	"github.com/VyankateshKulkarni06/E-Rupee/internal/middleware"
)

// approvalService resolves pending release requests on behalf of the funder.
type approvalService struct {
	approvalRepo portsrepo.ApprovalRepositoryWithTx
}

// NewApprovalService creates a new ApprovalService.
func NewApprovalService(approvalRepo portsrepo.ApprovalRepositoryWithTx) portssvc.ApprovalSvcFacade {
	return &approvalService{approvalRepo: approvalRepo}
}

var _ portssvc.ApprovalSvcFacade = (*approvalService)(nil)

// Resolve applies the funder's decision to a pending request. A request can be
// resolved exactly once: a second resolve attempt fails with ErrNotFound. An
// approval that cannot be settled (the grant was drained or cancelled in the
// meantime) rolls back completely and leaves the request pending for retry.
func (s *approvalService) Resolve(ctx context.Context, funder string, requestID int64, decision domain.ResolveDecision) (*domain.Payment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	request, err := s.approvalRepo.FindRequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request.Funder != funder {
		return nil, apperrors.ErrForbidden
	}
	if !request.IsPending() {
		return nil, fmt.Errorf("%w: request %d already resolved", apperrors.ErrNotFound, requestID)
	}

	switch decision {
	case domain.DecisionReject:
		if err := s.approvalRepo.RejectRequest(ctx, requestID); err != nil {
			return nil, err
		}
		logger.Info("Release request rejected", slog.Int64("pending_id", requestID))
		return nil, nil

	case domain.DecisionApprove:
		payment, err := s.approvalRepo.SettleApproval(ctx, *request)
		if err != nil {
			logger.Warn("Release request approval failed", slog.Int64("pending_id", requestID), slog.String("error", err.Error()))
			return nil, err
		}
		logger.Info("Release request approved",
			slog.Int64("pending_id", requestID),
			slog.Int64("payment_id", payment.PaymentID),
		)
		return payment, nil

	default:
		return nil, fmt.Errorf("%w: unknown decision %q", apperrors.ErrValidation, decision)
	}
}

// ListPendingForFunder returns the release requests addressed to a funder.
func (s *approvalService) ListPendingForFunder(ctx context.Context, funder string) ([]domain.ApprovalRequest, error) {
	return s.approvalRepo.ListRequestsByFunder(ctx, funder)
}
