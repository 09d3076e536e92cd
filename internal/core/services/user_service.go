package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/VyankateshKulkarni06/E-Rupee/internal/apperrors"
	"github.com/VyankateshKulkarni06/E-Rupee/internal/core/domain"
	portsrepo "github.com/VyankateshKulkarni06/E-Rupee/internal/core/ports/repositories"
	portssvc "github.com/VyankateshKulkarni06/E-Rupee/internal/core/ports/services"
	"github.com/VyankateshKulkarni06/E-Rupee/internal/dto"
	"github.com/VyankateshKulkarni06/E-Rupee/internal/middleware"
	"github.com/VyankateshKulkarni06/E-Rupee/internal/utils"
	"github.com/shopspring/decimal"
)

// userService provides registration, authentication and balance inquiry.
type userService struct {
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new UserService.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// CreateUser registers a new user with a hashed password and zero balance.
func (s *userService) CreateUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.userRepo.FindUserByUsername(ctx, req.Username)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check username availability: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: username %s is taken", apperrors.ErrDuplicate, req.Username)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	// New accounts are seeded with a starting balance; there is no deposit
	// operation, so this is the only way money enters the system.
	user := domain.User{
		Username:     req.Username,
		Name:         req.Name,
		Email:        req.Email,
		Balance:      decimal.NewFromInt(100),
		PasswordHash: hash,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, err
	}

	logger.Info("User registered", slog.String("new_username", user.Username))
	return &user, nil
}

// GetUserByUsername retrieves a user by username.
func (s *userService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.userRepo.FindUserByUsername(ctx, username)
}

// AuthenticateUser validates a username/password pair.
func (s *userService) AuthenticateUser(ctx context.Context, username string, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredential
		}
		return nil, err
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredential
	}
	return user, nil
}

// GetBalance discloses the caller's balance after re-verifying the password.
func (s *userService) GetBalance(ctx context.Context, username string, password string) (decimal.Decimal, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		return decimal.Zero, err
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return decimal.Zero, apperrors.ErrInvalidCredential
	}
	return user.Balance, nil
}
