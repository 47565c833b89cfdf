package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"choreboard/internal/middleware"
	"choreboard/internal/repositories"
	"choreboard/internal/service"
)

// respondError maps service and repository errors to HTTP responses.
// Client errors carry the error text. Server errors are logged and answered
// with fallback.
func respondError(c *gin.Context, logger *zap.Logger, err error, notFound, fallback string) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, repositories.ErrConflict):
		c.JSON(http.StatusBadRequest, gin.H{"error": "email already exists"})
	case errors.Is(err, repositories.ErrInvalidReference):
		c.JSON(http.StatusBadRequest, gin.H{"error": "roommate_id or room_id does not exist"})
	case errors.Is(err, repositories.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound})
	default:
		_ = c.Error(err)
		logger.Error(fallback,
			zap.Error(err),
			zap.String("path", c.FullPath()),
			zap.String("request_id", middleware.GetRequestID(c)),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

// bindMessage describes a ShouldBindJSON failure. Failed binding rules are
// reported as missing; malformed JSON and wrong types carry the decoder error.
func bindMessage(err error, missing string) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return missing
	}
	return "invalid request: " + err.Error()
}
