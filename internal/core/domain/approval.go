package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ApprovalStatus tracks the single allowed transition of a release request:
// PENDING -> APPROVED (settles funds) or PENDING -> REJECTED (no effect).
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "PENDING"
	ApprovalApproved ApprovalStatus = "APPROVED"
	ApprovalRejected ApprovalStatus = "REJECTED"
)

// ResolveDecision is the funder's verdict on a release request.
type ResolveDecision string

const (
	DecisionApprove ResolveDecision = "APPROVE"
	DecisionReject  ResolveDecision = "REJECT"
)

// ApprovalRequest records a grant holder's intent to redirect part of an
// extra-balance grant to a third party. The funder field is copied from the
// grant at creation time and is the sole authorization source for resolution.
type ApprovalRequest struct {
	RequestID   int64           `json:"requestID"`
	Requester   string          `json:"requester"`
	Receiver    string          `json:"receiver"`
	Funder      string          `json:"funder"`
	Amount      decimal.Decimal `json:"amount"`
	Purpose     string          `json:"purpose"`
	Status      ApprovalStatus  `json:"status"`
	GrantID     int64           `json:"grantID"`
	RequestedAt time.Time       `json:"requestedAt"`
}

// IsPending reports whether the request can still be resolved.
func (r ApprovalRequest) IsPending() bool {
	return r.Status == ApprovalPending
}
