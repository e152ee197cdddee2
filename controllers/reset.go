package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tuinuewasichana/tuinue-be/config"
	"github.com/tuinuewasichana/tuinue-be/services"
)

type ResetController struct {
	resetService *services.ResetService
}

func NewResetController() *ResetController {
	return &ResetController{
		resetService: services.NewResetService(config.DB),
	}
}

type ResetRequestRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetConfirmRequest struct {
	Password string `json:"password" binding:"required"`
}

func (rc *ResetController) Request(c *gin.Context) {
	var req ResetRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rc.resetService.Request(req.Email)

	// Same response whether or not the account exists
	c.JSON(http.StatusOK, gin.H{"message": "If that email exists, a reset link will be sent."})
}

func (rc *ResetController) Confirm(c *gin.Context) {
	var req ResetConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !services.ValidPassword(req.Password) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be at least 8 characters with an uppercase letter and a digit"})
		return
	}

	err := rc.resetService.Confirm(c.Param("token"), req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired token"})
			return
		}
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password reset successful"})
}
