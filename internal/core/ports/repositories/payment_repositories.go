package repositories

import (
	"context"

	"github.com/VyankateshKulkarni06/E-Rupee/internal/core/domain"
)

// PaymentReader defines read operations for the payment ledger
type PaymentReader interface {
	// FindPaymentByID retrieves a payment by its id.
	FindPaymentByID(ctx context.Context, paymentID int64) (*domain.Payment, error)

	// ListPaymentsByUser retrieves all payments where the user is sender or
	// receiver, newest first.
	ListPaymentsByUser(ctx context.Context, username string) ([]domain.Payment, error)
}

// TransferWriter persists a complete transfer as one database transaction.
type TransferWriter interface {
	// SaveTransfer debits the sender, then either credits the receiver
	// (normal kind) or upserts an extra-balance grant keyed by
	// (funder, holder, purpose) (extra kind), and appends the payment row.
	// Either every effect commits or none does. The sender's balance is
	// re-checked under the row lock; a concurrent spend surfaces as
	// apperrors.ErrInsufficientFunds.
	SaveTransfer(ctx context.Context, payment domain.Payment, purpose string) (*domain.Payment, error)
}

// PaymentRepositoryFacade combines all payment-related repository interfaces
type PaymentRepositoryFacade interface {
	PaymentReader
	TransferWriter
}

// PaymentRepositoryWithTx extends PaymentRepositoryFacade with transaction capabilities
type PaymentRepositoryWithTx interface {
	PaymentRepositoryFacade
	TransactionManager
}
