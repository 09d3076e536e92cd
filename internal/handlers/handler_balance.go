package handlers

import (
	"net/http"

	portssvc "github.com/VyankateshKulkarni06/E-Rupee/internal/core/ports/services"
	"github.com/VyankateshKulkarni06/E-Rupee/internal/dto"
	"github.com/VyankateshKulkarni06/E-Rupee/internal/middleware"
	"github.com/gin-gonic/gin"
)

// balanceHandler discloses the caller's balance after a password re-check.
type balanceHandler struct {
	userService portssvc.UserSvcFacade
}

// newBalanceHandler creates a new balanceHandler.
func newBalanceHandler(us portssvc.UserSvcFacade) *balanceHandler {
	return &balanceHandler{userService: us}
}

func (h *balanceHandler) getBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	username, ok := middleware.GetUsernameFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.BalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Password is required"})
		return
	}

	balance, err := h.userService.GetBalance(c.Request.Context(), username, req.Password)
	if err != nil {
		respondWithServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{Username: username, Balance: balance})
}
