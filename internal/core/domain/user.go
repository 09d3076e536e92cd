package domain

import (
	"github.com/shopspring/decimal"
)

// User represents a registered account holder. The username is the primary
// domain identifier and the only identity other entities refer to.
type User struct {
	Username     string          `json:"username"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Balance      decimal.Decimal `json:"balance"`
	PasswordHash string          `json:"-"`
	AuditFields
}
