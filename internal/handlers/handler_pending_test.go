package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/VyankateshKulkarni06/E-Rupee/internal/apperrors"
	"github.com/VyankateshKulkarni06/E-Rupee/internal/core/domain"
	"github.com/VyankateshKulkarni06/E-Rupee/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type PendingHandlerTestSuite struct {
	handlerTestSuite
}

// --- Resolve Tests ---

func (suite *PendingHandlerTestSuite) TestResolve_Approve() {
	grantID := int64(7)
	settlement := &domain.Payment{
		PaymentID: 1003,
		Sender:    "bob",
		Receiver:  "college",
		Amount:    decimal.NewFromInt(150),
		DoneAt:    time.Now(),
		Status:    domain.PaymentDone,
		Kind:      domain.PaymentNormal,
		GrantID:   &grantID,
	}

	suite.mockApprovalService.On("Resolve", mock.Anything, "alice", int64(42), domain.DecisionApprove).
		Return(settlement, nil).Once()

	w := suite.doJSON(http.MethodPut, "/transact/pending_request", suite.generateTestToken("alice"), gin.H{
		"pending_id": 42,
		"status":     "a",
	})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ResolveResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().NotNil(resp.Payment)
	suite.Equal(int64(1003), resp.Payment.PaymentID)
	suite.mockApprovalService.AssertExpectations(suite.T())
}

func (suite *PendingHandlerTestSuite) TestResolve_Reject() {
	suite.mockApprovalService.On("Resolve", mock.Anything, "alice", int64(42), domain.DecisionReject).
		Return(nil, nil).Once()

	w := suite.doJSON(http.MethodPut, "/transact/pending_request", suite.generateTestToken("alice"), gin.H{
		"pending_id": 42,
		"status":     "r",
	})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ResolveResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Nil(resp.Payment)
	suite.mockApprovalService.AssertExpectations(suite.T())
}

func (suite *PendingHandlerTestSuite) TestResolve_NotFunder() {
	suite.mockApprovalService.On("Resolve", mock.Anything, "mallory", int64(42), domain.DecisionApprove).
		Return(nil, apperrors.ErrForbidden).Once()

	w := suite.doJSON(http.MethodPut, "/transact/pending_request", suite.generateTestToken("mallory"), gin.H{
		"pending_id": 42,
		"status":     "a",
	})

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockApprovalService.AssertExpectations(suite.T())
}

func (suite *PendingHandlerTestSuite) TestResolve_InvalidStatusFlag() {
	w := suite.doJSON(http.MethodPut, "/transact/pending_request", suite.generateTestToken("alice"), gin.H{
		"pending_id": 42,
		"status":     "x",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockApprovalService.AssertNotCalled(suite.T(), "Resolve", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PendingHandlerTestSuite) TestResolve_AlreadyResolved() {
	suite.mockApprovalService.On("Resolve", mock.Anything, "alice", int64(42), domain.DecisionApprove).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doJSON(http.MethodPut, "/transact/pending_request", suite.generateTestToken("alice"), gin.H{
		"pending_id": 42,
		"status":     "a",
	})

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockApprovalService.AssertExpectations(suite.T())
}

// --- Listing Tests ---

func (suite *PendingHandlerTestSuite) TestGetPending_Success() {
	requests := []domain.ApprovalRequest{
		{
			RequestID:   42,
			Requester:   "bob",
			Receiver:    "college",
			Funder:      "alice",
			Amount:      decimal.NewFromInt(150),
			Purpose:     "college fees",
			Status:      domain.ApprovalPending,
			GrantID:     7,
			RequestedAt: time.Now(),
		},
	}

	suite.mockApprovalService.On("ListPendingForFunder", mock.Anything, "alice").Return(requests, nil).Once()

	w := suite.doJSON(http.MethodGet, "/getPending", suite.generateTestToken("alice"), nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.PendingListResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.UserResults, 1)
	suite.Equal(int64(42), resp.UserResults[0].PendingID)
	suite.Equal("alice", resp.UserResults[0].Funder)
	suite.mockApprovalService.AssertExpectations(suite.T())
}

// --- Grant route Tests ---

func (suite *PendingHandlerTestSuite) TestRequestRelease_Success() {
	saved := &domain.ApprovalRequest{RequestID: 42, Status: domain.ApprovalPending}

	suite.mockGrantService.On("RequestRelease", mock.Anything, "bob", mock.MatchedBy(func(r dto.ReleaseRequest) bool {
		return r.PaymentID == 1002 && r.Receiver == "college" && r.Amount.Equal(decimal.NewFromInt(150))
	})).Return(saved, nil).Once()

	w := suite.doJSON(http.MethodPost, "/transact/permission_extra_bal", suite.generateTestToken("bob"), gin.H{
		"payment_id":        1002,
		"receiver_username": "college",
		"amount":            150,
	})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ReleaseResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(42), resp.PendingID)
	suite.Equal("pending", resp.Status)
	suite.mockGrantService.AssertExpectations(suite.T())
}

func (suite *PendingHandlerTestSuite) TestCancelGrant_Success() {
	grantID := int64(7)
	refund := &domain.Payment{
		PaymentID: 1004,
		Sender:    "bob",
		Receiver:  "alice",
		Amount:    decimal.NewFromInt(50),
		DoneAt:    time.Now(),
		Status:    domain.PaymentDone,
		Kind:      domain.PaymentNormal,
		GrantID:   &grantID,
	}

	suite.mockGrantService.On("CancelGrant", mock.Anything, "alice", grantID).Return(refund, nil).Once()

	w := suite.doJSON(http.MethodPost, "/transact/cancel_extra_bal", suite.generateTestToken("alice"), gin.H{
		"bal_id": 7,
	})

	suite.Equal(http.StatusOK, w.Code)
	suite.mockGrantService.AssertExpectations(suite.T())
}

func TestPendingHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PendingHandlerTestSuite))
}
