package services

import (
	"context"

	"github.com/VyankateshKulkarni06/E-Rupee/internal/core/domain"
	"github.com/VyankateshKulkarni06/E-Rupee/internal/dto"
	"github.com/shopspring/decimal"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByUsername retrieves a user by username.
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// GetBalance discloses the caller's balance after re-verifying the password.
	GetBalance(ctx context.Context, username string, password string) (decimal.Decimal, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// CreateUser registers a new user with a hashed password and zero balance.
	CreateUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)
}

// UserAuthenticatorSvc verifies credentials at login.
type UserAuthenticatorSvc interface {
	// AuthenticateUser validates a username/password pair and returns the user.
	AuthenticateUser(ctx context.Context, username string, password string) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserAuthenticatorSvc
}
