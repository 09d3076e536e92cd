package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/VyankateshKulkarni06/E-Rupee/internal/apperrors"
	"github.com/VyankateshKulkarni06/E-Rupee/internal/core/domain"
	portssvc "github.com/VyankateshKulkarni06/E-Rupee/internal/core/ports/services"
	"github.com/VyankateshKulkarni06/E-Rupee/internal/core/services"
	"github.com/VyankateshKulkarni06/E-Rupee/internal/dto"
	"github.com/VyankateshKulkarni06/E-Rupee/internal/utils"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock UserRepository (based on UserRepositoryFacade) ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserForUpdate(ctx context.Context, tx pgx.Tx, username string) (*domain.User, error) {
	args := m.Called(ctx, tx, username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) AdjustBalanceInTx(ctx context.Context, tx pgx.Tx, username string, delta decimal.Decimal, now time.Time) error {
	args := m.Called(ctx, tx, username, delta, now)
	return args.Error(0)
}

// --- Test Suite ---
type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)
}

// --- CreateUser Tests ---
func (suite *UserServiceTestSuite) TestCreateUser_Success() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Name:     "Test User",
		Username: "testuser",
		Email:    "test@example.com",
		Password: "password123",
	}

	suite.mockUserRepo.On("FindUserByUsername", ctx, req.Username).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Username == req.Username &&
			user.Balance.Equal(decimal.NewFromInt(100)) &&
			user.PasswordHash != req.Password &&
			utils.CheckPasswordHash(req.Password, user.PasswordHash)
	})).Return(nil).Once()

	created, err := suite.service.CreateUser(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.Equal(req.Username, created.Username)
	suite.Equal(req.Name, created.Name)
	suite.True(created.Balance.Equal(decimal.NewFromInt(100)))
	suite.NotEqual(req.Password, created.PasswordHash)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_DuplicateUsername() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Name:     "Test User",
		Username: "taken",
		Email:    "taken@example.com",
		Password: "password123",
	}
	existing := &domain.User{Username: "taken"}

	suite.mockUserRepo.On("FindUserByUsername", ctx, req.Username).Return(existing, nil).Once()

	created, err := suite.service.CreateUser(ctx, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_SaveError() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Name:     "Test User",
		Username: "saveerror",
		Email:    "saveerror@example.com",
		Password: "password123",
	}
	expectedErr := assert.AnError

	suite.mockUserRepo.On("FindUserByUsername", ctx, req.Username).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(expectedErr).Once()

	created, err := suite.service.CreateUser(ctx, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, expectedErr)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- AuthenticateUser Tests ---
func (suite *UserServiceTestSuite) TestAuthenticateUser_Success() {
	ctx := context.Background()
	password := "password123"
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)
	user := &domain.User{Username: "testuser", PasswordHash: hash}

	suite.mockUserRepo.On("FindUserByUsername", ctx, user.Username).Return(user, nil).Once()

	authed, err := suite.service.AuthenticateUser(ctx, user.Username, password)

	suite.Require().NoError(err)
	suite.Equal(user, authed)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-password")
	suite.Require().NoError(err)
	user := &domain.User{Username: "testuser", PasswordHash: hash}

	suite.mockUserRepo.On("FindUserByUsername", ctx, user.Username).Return(user, nil).Once()

	authed, err := suite.service.AuthenticateUser(ctx, user.Username, "wrong-password")

	suite.Require().Error(err)
	suite.Nil(authed)
	suite.ErrorIs(err, apperrors.ErrInvalidCredential)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_UnknownUser() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByUsername", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	authed, err := suite.service.AuthenticateUser(ctx, "ghost", "whatever")

	suite.Require().Error(err)
	suite.Nil(authed)
	// Unknown users surface the same error as a bad password.
	suite.ErrorIs(err, apperrors.ErrInvalidCredential)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- GetBalance Tests ---
func (suite *UserServiceTestSuite) TestGetBalance_Success() {
	ctx := context.Background()
	password := "password123"
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)
	user := &domain.User{
		Username:     "testuser",
		Balance:      decimal.NewFromInt(250),
		PasswordHash: hash,
	}

	suite.mockUserRepo.On("FindUserByUsername", ctx, user.Username).Return(user, nil).Once()

	balance, err := suite.service.GetBalance(ctx, user.Username, password)

	suite.Require().NoError(err)
	suite.True(balance.Equal(decimal.NewFromInt(250)))
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestGetBalance_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-password")
	suite.Require().NoError(err)
	user := &domain.User{Username: "testuser", Balance: decimal.NewFromInt(250), PasswordHash: hash}

	suite.mockUserRepo.On("FindUserByUsername", ctx, user.Username).Return(user, nil).Once()

	balance, err := suite.service.GetBalance(ctx, user.Username, "wrong-password")

	suite.Require().Error(err)
	suite.True(balance.IsZero())
	suite.ErrorIs(err, apperrors.ErrInvalidCredential)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
