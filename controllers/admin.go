package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tuinuewasichana/tuinue-be/config"
	"github.com/tuinuewasichana/tuinue-be/models"
	"github.com/tuinuewasichana/tuinue-be/services"
	"github.com/tuinuewasichana/tuinue-be/websocket"
)

type AdminController struct {
	charityService *services.CharityService
}

func NewAdminController() *AdminController {
	return &AdminController{
		charityService: services.NewCharityService(config.DB),
	}
}

type SetCharityStatusRequest struct {
	CharityID uint  `json:"charity_id" binding:"required"`
	Approved  *bool `json:"approved"`
	Rejected  *bool `json:"rejected"`
}

// GetCharities lists every charity profile, pending and rejected included.
func (ac *AdminController) GetCharities(c *gin.Context) {
	charities, err := ac.charityService.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch charities"})
		return
	}

	result := make([]gin.H, 0, len(charities))
	for _, charity := range charities {
		result = append(result, charityProfileJSON(&charity))
	}

	c.JSON(http.StatusOK, result)
}

func (ac *AdminController) SetCharityStatus(c *gin.Context) {
	var req SetCharityStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	charity, err := ac.charityService.SetStatus(req.CharityID, req.Approved, req.Rejected)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if config.WSHub != nil {
		config.WSHub.NotifyUser(charity.UserID, websocket.EventCharityStatusChanged, websocket.CharityStatusEvent{
			CharityID:   charity.ID,
			CharityName: charity.Name,
			Status:      string(charity.Status),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Charity updated",
		"charity": charityProfileJSON(charity),
	})
}

func charityProfileJSON(charity *models.Charity) gin.H {
	return gin.H{
		"id":                charity.ID,
		"user_id":           charity.UserID,
		"name":              charity.Name,
		"description":       charity.Description,
		"mission_statement": charity.MissionStatement,
		"location":          charity.Location,
		"founded_year":      charity.FoundedYear,
		"impact_metrics":    charity.ImpactMetrics,
		"contact_person":    charity.ContactPerson,
		"contact_phone":     charity.ContactPhone,
		"website":           charity.Website,
		"status":            charity.Status,
		"approved":          charity.Approved(),
		"rejected":          charity.Rejected(),
	}
}
