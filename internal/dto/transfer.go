package dto

import (
	"github.com/VyankateshKulkarni06/E-Rupee/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransferRequest defines the payload for POST /transact/transfer.
// The sender is taken from the authenticated context, never from the body.
type TransferRequest struct {
	Receiver string          `json:"receiver" binding:"required"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Password string          `json:"password" binding:"required"`
	Kind     string          `json:"type" binding:"omitempty,oneof=normal extra"`
	Purpose  string          `json:"purpose"`
}

// PaymentResponse is the wire view of a ledger entry, using the column names
// the frontend already consumes.
type PaymentResponse struct {
	PaymentID int64           `json:"payment_id"`
	Sender    string          `json:"sender_username"`
	Receiver  string          `json:"receiver_username"`
	Amount    decimal.Decimal `json:"amount"`
	DoneAt    string          `json:"done_at"`
	Status    string          `json:"status"`
	Kind      string          `json:"type"`
	GrantID   *int64          `json:"bal_id,omitempty"`
}

// TransferResponse acknowledges a completed transfer.
type TransferResponse struct {
	Message string          `json:"message"`
	Payment PaymentResponse `json:"payment"`
}

// HistoryResponse wraps the caller's payment history.
type HistoryResponse struct {
	UserResults []PaymentResponse `json:"userResults"`
}

// ToPaymentResponse converts a domain Payment to a PaymentResponse DTO
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID: p.PaymentID,
		Sender:    p.Sender,
		Receiver:  p.Receiver,
		Amount:    p.Amount,
		DoneAt:    p.DoneAt.Format("2006-01-02 15:04:05"),
		Status:    string(p.Status),
		Kind:      string(p.Kind),
		GrantID:   p.GrantID,
	}
}

// ToHistoryResponse converts a slice of domain Payments to a HistoryResponse DTO
func ToHistoryResponse(payments []domain.Payment) HistoryResponse {
	results := make([]PaymentResponse, len(payments))
	for i := range payments {
		results[i] = ToPaymentResponse(&payments[i])
	}
	return HistoryResponse{UserResults: results}
}
