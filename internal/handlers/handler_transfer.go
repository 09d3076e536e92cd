package handlers

import (
	"errors"
	"net/http"

	"github.com/VyankateshKulkarni06/E-Rupee/internal/apperrors"
	portssvc "github.com/VyankateshKulkarni06/E-Rupee/internal/core/ports/services"
	"github.com/VyankateshKulkarni06/E-Rupee/internal/dto"
	"github.com/VyankateshKulkarni06/E-Rupee/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transferHandler handles transfers, history and the username existence check.
type transferHandler struct {
	transferService portssvc.TransferSvcFacade
	userService     portssvc.UserSvcFacade
}

// newTransferHandler creates a new transferHandler.
func newTransferHandler(ts portssvc.TransferSvcFacade, us portssvc.UserSvcFacade) *transferHandler {
	return &transferHandler{
		transferService: ts,
		userService:     us,
	}
}

// transfer executes an immediate transfer from the authenticated sender.
func (h *transferHandler) transfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	sender, ok := middleware.GetUsernameFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Receiver, amount and password are required"})
		return
	}

	payment, err := h.transferService.Transfer(c.Request.Context(), sender, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Receiver not found"})
			return
		}
		respondWithServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.TransferResponse{
		Message: "Transaction successful",
		Payment: dto.ToPaymentResponse(payment),
	})
}

// checkUser reports whether a username exists, for pre-transfer lookup.
func (h *transferHandler) checkUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	username := c.Query("username")
	if username == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Username is required"})
		return
	}

	user, err := h.userService.GetUserByUsername(c.Request.Context(), username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.CheckUserResponse{Exists: false})
			return
		}
		respondWithServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.CheckUserResponse{Exists: true, Name: user.Name})
}

// history returns every payment where the caller is sender or receiver.
func (h *transferHandler) history(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	username, ok := middleware.GetUsernameFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	payments, err := h.transferService.ListHistory(c.Request.Context(), username)
	if err != nil {
		respondWithServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToHistoryResponse(payments))
}
