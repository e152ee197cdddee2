package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tuinuewasichana/tuinue-be/services"
)

// respondServiceError maps service errors onto HTTP statuses. Anything that
// is not a business rejection surfaces as a server-side failure.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrAccessDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
	case errors.Is(err, services.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, services.ErrCharityUnavailable):
		c.JSON(http.StatusForbidden, gin.H{"error": "Charity not available"})
	case errors.Is(err, services.ErrInsufficientCredits):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Insufficient credits"})
	case services.IsTransient(err):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Service temporarily unavailable, please retry"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
