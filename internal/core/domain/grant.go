package domain

import (
	"github.com/shopspring/decimal"
)

// GrantStatus tracks the lifecycle of an extra-balance grant.
// OPEN -> EXHAUSTED when the remainder reaches exactly zero through approvals,
// OPEN -> REJECTED when the funder cancels the grant and reclaims the remainder.
type GrantStatus string

const (
	GrantOpen      GrantStatus = "OPEN"
	GrantExhausted GrantStatus = "EXHAUSTED"
	GrantRejected  GrantStatus = "REJECTED"
)

// ExtraGrant is a restricted balance: money the funder has already been
// debited for, held in the holder's name, spendable only through
// funder-approved release requests.
type ExtraGrant struct {
	GrantID   int64           `json:"grantID"`
	Funder    string          `json:"funder"`
	Holder    string          `json:"holder"`
	Remaining decimal.Decimal `json:"remaining"`
	Purpose   string          `json:"purpose"`
	Status    GrantStatus     `json:"status"`
	AuditFields
}

// IsOpen reports whether the grant can still back release requests.
func (g ExtraGrant) IsOpen() bool {
	return g.Status == GrantOpen
}

// CanCover reports whether the grant remainder covers amount.
func (g ExtraGrant) CanCover(amount decimal.Decimal) bool {
	return g.Remaining.GreaterThanOrEqual(amount)
}
