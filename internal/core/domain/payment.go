package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentKind distinguishes an ordinary transfer from one that funds an extra-balance grant.
type PaymentKind string

const (
	PaymentNormal PaymentKind = "NORMAL"
	PaymentExtra  PaymentKind = "EXTRA"
)

// PaymentStage is the first-stage settlement marker on a payment row.
type PaymentStage string

const (
	StageAuthorized PaymentStage = "AUTHORIZED"
	StagePending    PaymentStage = "PENDING"
	StageRejected   PaymentStage = "REJECTED"
)

// PaymentStatus is the overall outcome of a payment.
type PaymentStatus string

const (
	PaymentDone    PaymentStatus = "DONE"
	PaymentPending PaymentStatus = "PENDING"
	PaymentFailed  PaymentStatus = "FAILED"
)

// Payment is an append-only ledger entry. Rows are inserted inside the same
// database transaction as the balance effects they record and are never
// updated afterwards.
type Payment struct {
	PaymentID int64           `json:"paymentID"`
	Sender    string          `json:"sender"`
	Receiver  string          `json:"receiver"`
	Amount    decimal.Decimal `json:"amount"`
	DoneAt    time.Time       `json:"doneAt"`
	Stage     PaymentStage    `json:"stage"`
	Status    PaymentStatus   `json:"status"`
	Kind      PaymentKind     `json:"kind"`
	// GrantID references the extra-balance grant this payment funded or
	// settled. Nil for plain normal transfers.
	GrantID *int64 `json:"grantID,omitempty"`
}
