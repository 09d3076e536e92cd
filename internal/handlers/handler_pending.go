package handlers

import (
	"net/http"

	portssvc "github.com/VyankateshKulkarni06/E-Rupee/internal/core/ports/services"
	"github.com/VyankateshKulkarni06/E-Rupee/internal/dto"
	"github.com/VyankateshKulkarni06/E-Rupee/internal/middleware"
	"github.com/gin-gonic/gin"
)

// pendingHandler handles release-request resolution and listing.
type pendingHandler struct {
	approvalService portssvc.ApprovalSvcFacade
}

// newPendingHandler creates a new pendingHandler.
func newPendingHandler(as portssvc.ApprovalSvcFacade) *pendingHandler {
	return &pendingHandler{approvalService: as}
}

// resolve applies the funder's decision to a pending release request.
func (h *pendingHandler) resolve(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	funder, ok := middleware.GetUsernameFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.ResolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Pending id and status (a/r) are required"})
		return
	}

	payment, err := h.approvalService.Resolve(c.Request.Context(), funder, req.PendingID, req.Decision())
	if err != nil {
		respondWithServiceError(c, logger, err)
		return
	}

	resp := dto.ResolveResponse{Message: "Request rejected"}
	if payment != nil {
		resp.Message = "Request approved"
		pr := dto.ToPaymentResponse(payment)
		resp.Payment = &pr
	}
	c.JSON(http.StatusOK, resp)
}

// listPending returns the release requests addressed to the caller as funder.
func (h *pendingHandler) listPending(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	funder, ok := middleware.GetUsernameFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	requests, err := h.approvalService.ListPendingForFunder(c.Request.Context(), funder)
	if err != nil {
		respondWithServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPendingListResponse(requests))
}
