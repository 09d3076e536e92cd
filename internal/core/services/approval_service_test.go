package services_test

import (
	"context"
	"testing"

	"github.com/VyankateshKulkarni06/E-Rupee/internal/apperrors"
	"github.com/VyankateshKulkarni06/E-Rupee/internal/core/domain"
	portssvc "github.com/VyankateshKulkarni06/E-Rupee/internal/core/ports/services"
	"github.com/VyankateshKulkarni06/E-Rupee/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type ApprovalServiceTestSuite struct {
	suite.Suite
	mockApprovalRepo *MockApprovalRepository
	service          portssvc.ApprovalSvcFacade

	requestID int64
	grantID   int64
	request   *domain.ApprovalRequest
}

func (suite *ApprovalServiceTestSuite) SetupTest() {
	suite.mockApprovalRepo = new(MockApprovalRepository)
	suite.service = services.NewApprovalService(suite.mockApprovalRepo)

	suite.requestID = 42
	suite.grantID = 7
	suite.request = &domain.ApprovalRequest{
		RequestID: suite.requestID,
		Requester: "bob",
		Receiver:  "college",
		Funder:    "alice",
		Amount:    decimal.NewFromInt(150),
		Purpose:   "college fees",
		Status:    domain.ApprovalPending,
		GrantID:   suite.grantID,
	}
}

// --- Resolve Tests ---
func (suite *ApprovalServiceTestSuite) TestResolve_ApproveSuccess() {
	ctx := context.Background()
	settlement := &domain.Payment{
		PaymentID: 1003,
		Sender:    "bob",
		Receiver:  "college",
		Amount:    decimal.NewFromInt(150),
		Kind:      domain.PaymentNormal,
		GrantID:   &suite.grantID,
	}

	suite.mockApprovalRepo.On("FindRequestByID", ctx, suite.requestID).Return(suite.request, nil).Once()
	suite.mockApprovalRepo.On("SettleApproval", ctx, *suite.request).Return(settlement, nil).Once()

	payment, err := suite.service.Resolve(ctx, "alice", suite.requestID, domain.DecisionApprove)

	suite.Require().NoError(err)
	suite.Equal(settlement, payment)
	suite.mockApprovalRepo.AssertExpectations(suite.T())
}

func (suite *ApprovalServiceTestSuite) TestResolve_RejectSuccess() {
	ctx := context.Background()

	suite.mockApprovalRepo.On("FindRequestByID", ctx, suite.requestID).Return(suite.request, nil).Once()
	suite.mockApprovalRepo.On("RejectRequest", ctx, suite.requestID).Return(nil).Once()

	payment, err := suite.service.Resolve(ctx, "alice", suite.requestID, domain.DecisionReject)

	suite.Require().NoError(err)
	// Rejection moves no money, so no settlement payment is produced.
	suite.Nil(payment)
	suite.mockApprovalRepo.AssertNotCalled(suite.T(), "SettleApproval", mock.Anything, mock.Anything)
	suite.mockApprovalRepo.AssertExpectations(suite.T())
}

func (suite *ApprovalServiceTestSuite) TestResolve_NotFunder() {
	ctx := context.Background()

	suite.mockApprovalRepo.On("FindRequestByID", ctx, suite.requestID).Return(suite.request, nil).Once()

	payment, err := suite.service.Resolve(ctx, "mallory", suite.requestID, domain.DecisionApprove)

	suite.Require().Error(err)
	suite.Nil(payment)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockApprovalRepo.AssertNotCalled(suite.T(), "SettleApproval", mock.Anything, mock.Anything)
}

func (suite *ApprovalServiceTestSuite) TestResolve_AlreadyResolved() {
	ctx := context.Background()
	suite.request.Status = domain.ApprovalApproved

	suite.mockApprovalRepo.On("FindRequestByID", ctx, suite.requestID).Return(suite.request, nil).Once()

	payment, err := suite.service.Resolve(ctx, "alice", suite.requestID, domain.DecisionApprove)

	suite.Require().Error(err)
	suite.Nil(payment)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockApprovalRepo.AssertNotCalled(suite.T(), "SettleApproval", mock.Anything, mock.Anything)
	suite.mockApprovalRepo.AssertNotCalled(suite.T(), "RejectRequest", mock.Anything, mock.Anything)
}

func (suite *ApprovalServiceTestSuite) TestResolve_RequestNotFound() {
	ctx := context.Background()

	suite.mockApprovalRepo.On("FindRequestByID", ctx, int64(999)).Return(nil, apperrors.ErrNotFound).Once()

	payment, err := suite.service.Resolve(ctx, "alice", 999, domain.DecisionApprove)

	suite.Require().Error(err)
	suite.Nil(payment)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ApprovalServiceTestSuite) TestResolve_SettleInsufficientGrant() {
	ctx := context.Background()

	suite.mockApprovalRepo.On("FindRequestByID", ctx, suite.requestID).Return(suite.request, nil).Once()
	suite.mockApprovalRepo.On("SettleApproval", ctx, *suite.request).Return(nil, apperrors.ErrInsufficientGrant).Once()

	payment, err := suite.service.Resolve(ctx, "alice", suite.requestID, domain.DecisionApprove)

	suite.Require().Error(err)
	suite.Nil(payment)
	suite.ErrorIs(err, apperrors.ErrInsufficientGrant)
	suite.mockApprovalRepo.AssertExpectations(suite.T())
}

func (suite *ApprovalServiceTestSuite) TestResolve_UnknownDecision() {
	ctx := context.Background()

	suite.mockApprovalRepo.On("FindRequestByID", ctx, suite.requestID).Return(suite.request, nil).Once()

	payment, err := suite.service.Resolve(ctx, "alice", suite.requestID, domain.ResolveDecision("MAYBE"))

	suite.Require().Error(err)
	suite.Nil(payment)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- ListPendingForFunder Tests ---
func (suite *ApprovalServiceTestSuite) TestListPendingForFunder_Success() {
	ctx := context.Background()
	expected := []domain.ApprovalRequest{*suite.request}

	suite.mockApprovalRepo.On("ListRequestsByFunder", ctx, "alice").Return(expected, nil).Once()

	requests, err := suite.service.ListPendingForFunder(ctx, "alice")

	suite.Require().NoError(err)
	suite.Equal(expected, requests)
	suite.mockApprovalRepo.AssertExpectations(suite.T())
}

func TestApprovalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ApprovalServiceTestSuite))
}
