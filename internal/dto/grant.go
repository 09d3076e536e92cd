package dto

import (
	"github.com/VyankateshKulkarni06/E-Rupee/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReleaseRequest defines the payload for POST /transact/permission_extra_bal.
// The requesting holder is taken from the authenticated context.
type ReleaseRequest struct {
	PaymentID int64           `json:"payment_id" binding:"required"`
	Receiver  string          `json:"receiver_username" binding:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	Purpose   string          `json:"purpose"`
}

// ReleaseResponse acknowledges a recorded release request.
type ReleaseResponse struct {
	PendingID int64  `json:"pending_id"`
	Status    string `json:"status"`
}

// CancelGrantRequest defines the payload for POST /transact/cancel_extra_bal.
type CancelGrantRequest struct {
	GrantID int64 `json:"bal_id" binding:"required"`
}

// GrantResponse is the wire view of an extra-balance grant.
type GrantResponse struct {
	GrantID   int64           `json:"bal_id"`
	Funder    string          `json:"sender_username"`
	Holder    string          `json:"receiver_username"`
	Remaining decimal.Decimal `json:"amount"`
	Purpose   string          `json:"purpose"`
	Status    string          `json:"status"`
}

// GrantListResponse wraps the grants held by the caller.
type GrantListResponse struct {
	UserResults []GrantResponse `json:"userResults"`
}

// ToGrantResponse converts a domain ExtraGrant to a GrantResponse DTO
func ToGrantResponse(g *domain.ExtraGrant) GrantResponse {
	return GrantResponse{
		GrantID:   g.GrantID,
		Funder:    g.Funder,
		Holder:    g.Holder,
		Remaining: g.Remaining,
		Purpose:   g.Purpose,
		Status:    string(g.Status),
	}
}

// ToGrantListResponse converts a slice of domain ExtraGrants to a GrantListResponse DTO
func ToGrantListResponse(grants []domain.ExtraGrant) GrantListResponse {
	results := make([]GrantResponse, len(grants))
	for i := range grants {
		results[i] = ToGrantResponse(&grants[i])
	}
	return GrantListResponse{UserResults: results}
}
