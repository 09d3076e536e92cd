package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/VyankateshKulkarni06/E-Rupee/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondWithServiceError maps the service error taxonomy onto HTTP statuses.
// Every failure kind is surfaced distinctly so the client can decide between
// re-entry, a permission message or a generic failure.
func respondWithServiceError(c *gin.Context, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrInsufficientFunds):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Insufficient balance"})
	case errors.Is(err, apperrors.ErrInsufficientGrant):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Insufficient extra balance"})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Already exists"})
	case errors.Is(err, apperrors.ErrInvalidCredential):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Incorrect password"})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Not authorized for this resource"})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
	case errors.Is(err, apperrors.ErrGrantNotAvailable):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "Extra balance is no longer available"})
	default:
		logger.Error("Unhandled service error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}
