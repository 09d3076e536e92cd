package handlers

import (
	"net/http"

	portssvc "github.com/VyankateshKulkarni06/E-Rupee/internal/core/ports/services"
	"github.com/VyankateshKulkarni06/E-Rupee/internal/dto"
	"github.com/VyankateshKulkarni06/E-Rupee/internal/middleware"
	"github.com/gin-gonic/gin"
)

// grantHandler handles the holder and funder operations on extra-balance grants.
type grantHandler struct {
	grantService portssvc.GrantSvcFacade
}

// newGrantHandler creates a new grantHandler.
func newGrantHandler(gs portssvc.GrantSvcFacade) *grantHandler {
	return &grantHandler{grantService: gs}
}

// requestRelease records the holder's release request against a grant.
func (h *grantHandler) requestRelease(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	holder, ok := middleware.GetUsernameFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.ReleaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Payment id, receiver and amount are required"})
		return
	}

	request, err := h.grantService.RequestRelease(c.Request.Context(), holder, req)
	if err != nil {
		respondWithServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ReleaseResponse{
		PendingID: request.RequestID,
		Status:    "pending",
	})
}

// listGrants returns the grants currently held by the caller.
func (h *grantHandler) listGrants(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	holder, ok := middleware.GetUsernameFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	grants, err := h.grantService.ListGrantsByHolder(c.Request.Context(), holder)
	if err != nil {
		respondWithServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToGrantListResponse(grants))
}

// cancelGrant lets the funder cancel an open grant and reclaim its remainder.
func (h *grantHandler) cancelGrant(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	funder, ok := middleware.GetUsernameFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CancelGrantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Extra balance id is required"})
		return
	}

	refund, err := h.grantService.CancelGrant(c.Request.Context(), funder, req.GrantID)
	if err != nil {
		respondWithServiceError(c, logger, err)
		return
	}

	resp := dto.ToPaymentResponse(refund)
	c.JSON(http.StatusOK, gin.H{
		"message": "Extra balance cancelled",
		"payment": resp,
	})
}
