package services

import (
	"context"

	"github.com/VyankateshKulkarni06/E-Rupee/internal/core/domain"
	"github.com/VyankateshKulkarni06/E-Rupee/internal/dto"
)

// TransferSvcFacade executes immediate transfers and serves the payment log.
type TransferSvcFacade interface {
	// Transfer moves req.Amount from the authenticated sender. Normal kind
	// credits the receiver's balance; extra kind funds a restricted grant
	// held by the receiver instead. The sender's password is re-verified as
	// a step-up confirmation before any ledger access.
	Transfer(ctx context.Context, sender string, req dto.TransferRequest) (*domain.Payment, error)

	// ListHistory returns every payment where the user is sender or receiver.
	ListHistory(ctx context.Context, username string) ([]domain.Payment, error)
}
