package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentKind values stored in payment.type.
type PaymentKind string

const (
	PaymentNormal PaymentKind = "NORMAL"
	PaymentExtra  PaymentKind = "EXTRA"
)

// PaymentStage values stored in payment.approved.
type PaymentStage string

const (
	StageAuthorized PaymentStage = "AUTHORIZED"
	StagePending    PaymentStage = "PENDING"
	StageRejected   PaymentStage = "REJECTED"
)

// PaymentStatus values stored in payment.status.
type PaymentStatus string

const (
	PaymentDone    PaymentStatus = "DONE"
	PaymentPending PaymentStatus = "PENDING"
	PaymentFailed  PaymentStatus = "FAILED"
)

// Payment mirrors the payment table. The id sequence starts at 1001.
type Payment struct {
	PaymentID int64           `db:"payment_id"`
	Sender    string          `db:"sender_username"`
	Receiver  string          `db:"receiver_username"`
	Amount    decimal.Decimal `db:"amount"`
	DoneAt    time.Time       `db:"done_at"`
	Stage     PaymentStage    `db:"approved"`
	Status    PaymentStatus   `db:"status"`
	Kind      PaymentKind     `db:"type"`
	GrantID   *int64          `db:"bal_id"`
}
