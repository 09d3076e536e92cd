package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ApprovalStatus values stored in pending_req.status.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "PENDING"
	ApprovalApproved ApprovalStatus = "APPROVED"
	ApprovalRejected ApprovalStatus = "REJECTED"
)

// PendingRequest mirrors the pending_req table.
type PendingRequest struct {
	RequestID   int64           `db:"pending_id"`
	Requester   string          `db:"requester_username"`
	Receiver    string          `db:"receiver_username"`
	Funder      string          `db:"original_sender"`
	Amount      decimal.Decimal `db:"amount"`
	Purpose     string          `db:"purpose"`
	Status      ApprovalStatus  `db:"status"`
	GrantID     int64           `db:"bal_id"`
	RequestedAt time.Time       `db:"requested_at"`
}
