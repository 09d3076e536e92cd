package dto

import (
	"github.com/VyankateshKulkarni06/E-Rupee/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ResolveRequest defines the payload for PUT /transact/pending_request.
// Status "a" approves the release request, "r" rejects it.
type ResolveRequest struct {
	PendingID int64  `json:"pending_id" binding:"required"`
	Status    string `json:"status" binding:"required,oneof=a r"`
}

// Decision maps the wire status flag to a resolution decision.
func (r ResolveRequest) Decision() domain.ResolveDecision {
	if r.Status == "a" {
		return domain.DecisionApprove
	}
	return domain.DecisionReject
}

// ResolveResponse acknowledges a resolved release request.
type ResolveResponse struct {
	Message string           `json:"message"`
	Payment *PaymentResponse `json:"payment,omitempty"`
}

// PendingRequestResponse is the wire view of a release request awaiting the funder.
type PendingRequestResponse struct {
	PendingID   int64           `json:"pending_id"`
	Requester   string          `json:"requester_username"`
	Receiver    string          `json:"receiver_username"`
	Funder      string          `json:"original_sender"`
	Amount      decimal.Decimal `json:"amount"`
	Purpose     string          `json:"purpose"`
	Status      string          `json:"status"`
	GrantID     int64           `json:"bal_id"`
	RequestedAt string          `json:"requested_at"`
}

// PendingListResponse wraps the release requests addressed to the caller.
type PendingListResponse struct {
	UserResults []PendingRequestResponse `json:"userResults"`
}

// ToPendingRequestResponse converts a domain ApprovalRequest to its DTO
func ToPendingRequestResponse(r *domain.ApprovalRequest) PendingRequestResponse {
	return PendingRequestResponse{
		PendingID:   r.RequestID,
		Requester:   r.Requester,
		Receiver:    r.Receiver,
		Funder:      r.Funder,
		Amount:      r.Amount,
		Purpose:     r.Purpose,
		Status:      string(r.Status),
		GrantID:     r.GrantID,
		RequestedAt: r.RequestedAt.Format("2006-01-02 15:04:05"),
	}
}

// ToPendingListResponse converts a slice of domain ApprovalRequests to a PendingListResponse DTO
func ToPendingListResponse(reqs []domain.ApprovalRequest) PendingListResponse {
	results := make([]PendingRequestResponse, len(reqs))
	for i := range reqs {
		results[i] = ToPendingRequestResponse(&reqs[i])
	}
	return PendingListResponse{UserResults: results}
}
