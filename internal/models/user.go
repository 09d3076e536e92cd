package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// User mirrors the users table.
type User struct {
	Username      string          `db:"user_name"`
	Name          string          `db:"name"`
	Email         string          `db:"email"`
	Balance       decimal.Decimal `db:"balance"`
	PasswordHash  string          `db:"password"`
	CreatedAt     time.Time       `db:"created_at"`
	LastUpdatedAt time.Time       `db:"last_updated_at"`
}
