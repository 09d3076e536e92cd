package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// GrantStatus values stored in extra_bal.status.
type GrantStatus string

const (
	GrantOpen      GrantStatus = "OPEN"
	GrantExhausted GrantStatus = "EXHAUSTED"
	GrantRejected  GrantStatus = "REJECTED"
)

// ExtraBalance mirrors the extra_bal table.
type ExtraBalance struct {
	GrantID       int64           `db:"bal_id"`
	Funder        string          `db:"sender_username"`
	Holder        string          `db:"receiver_username"`
	Remaining     decimal.Decimal `db:"amount"`
	Purpose       string          `db:"purpose"`
	Status        GrantStatus     `db:"status"`
	CreatedAt     time.Time       `db:"created_at"`
	LastUpdatedAt time.Time       `db:"last_updated_at"`
}
