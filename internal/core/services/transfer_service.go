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
	"github.com/VyankateshKulkarni06/E-Rupee/internal/utils"
)

// transferService executes immediate balance-to-balance transfers.
type transferService struct {
	userRepo    portsrepo.UserRepositoryFacade
	paymentRepo portsrepo.PaymentRepositoryWithTx
}

// NewTransferService creates a new TransferService.
func NewTransferService(paymentRepo portsrepo.PaymentRepositoryWithTx, userRepo portsrepo.UserRepositoryFacade) portssvc.TransferSvcFacade {
	return &transferService{
		userRepo:    userRepo,
		paymentRepo: paymentRepo,
	}
}

var _ portssvc.TransferSvcFacade = (*transferService)(nil)

// Transfer validates the request, re-verifies the sender's password and hands
// the ledger mutation to the repository as a single transaction. The sender's
// own balance funds the transfer regardless of kind; the extra kind differs
// only in where the money lands (a restricted grant instead of the receiver's
// balance).
func (s *transferService) Transfer(ctx context.Context, sender string, req dto.TransferRequest) (*domain.Payment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	kind := domain.PaymentNormal
	switch req.Kind {
	case "", "normal":
	case "extra":
		kind = domain.PaymentExtra
		if req.Purpose == "" {
			return nil, fmt.Errorf("%w: purpose is required for extra transfers", apperrors.ErrValidation)
		}
	default:
		return nil, fmt.Errorf("%w: unknown transfer type %q", apperrors.ErrValidation, req.Kind)
	}

	senderUser, err := s.userRepo.FindUserByUsername(ctx, sender)
	if err != nil {
		return nil, err
	}

	// Step-up confirmation: the password is re-checked on every transfer,
	// not just at login.
	if !utils.CheckPasswordHash(req.Password, senderUser.PasswordHash) {
		return nil, apperrors.ErrInvalidCredential
	}

	if senderUser.Balance.LessThan(req.Amount) {
		return nil, apperrors.ErrInsufficientFunds
	}

	if _, err := s.userRepo.FindUserByUsername(ctx, req.Receiver); err != nil {
		return nil, err
	}

	payment := domain.Payment{
		Sender:   sender,
		Receiver: req.Receiver,
		Amount:   req.Amount,
		DoneAt:   time.Now(),
		Stage:    domain.StageAuthorized,
		Status:   domain.PaymentDone,
		Kind:     kind,
	}

	saved, err := s.paymentRepo.SaveTransfer(ctx, payment, req.Purpose)
	if err != nil {
		logger.Error("Transfer failed", slog.String("receiver", req.Receiver), slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Transfer completed",
		slog.Int64("payment_id", saved.PaymentID),
		slog.String("receiver", saved.Receiver),
		slog.String("type", string(saved.Kind)),
	)
	return saved, nil
}

// ListHistory returns every payment where the user is sender or receiver.
func (s *transferService) ListHistory(ctx context.Context, username string) ([]domain.Payment, error) {
	return s.paymentRepo.ListPaymentsByUser(ctx, username)
}
