package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tuinuewasichana/tuinue-be/config"
	"github.com/tuinuewasichana/tuinue-be/models"
	"github.com/tuinuewasichana/tuinue-be/services"
	"github.com/tuinuewasichana/tuinue-be/websocket"
)

type CharityController struct {
	charityService  *services.CharityService
	donationService *services.DonationService
	storyService    *services.StoryService
}

func NewCharityController() *CharityController {
	return &CharityController{
		charityService:  services.NewCharityService(config.DB),
		donationService: services.NewDonationService(config.DB),
		storyService:    services.NewStoryService(config.DB),
	}
}

type CreateStoryRequest struct {
	Title           string `json:"title" binding:"required"`
	Content         string `json:"content" binding:"required"`
	ImageURL        string `json:"image_url"`
	BeneficiaryName string `json:"beneficiary_name" binding:"required"`
	BeneficiaryAge  int    `json:"beneficiary_age" binding:"required"`
}

// GetStatus lets a charity user check where its application stands.
func (cc *CharityController) GetStatus(c *gin.Context) {
	userID, _ := c.Get("user_id")

	charity, err := cc.charityService.GetByUser(userID.(uint))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if charity.Status == models.CharityRejected {
		c.JSON(http.StatusOK, gin.H{
			"message":  "We are sorry, your charity application was not approved. Please contact support for more details.",
			"rejected": true,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"approved": charity.Approved(),
		"rejected": charity.Rejected(),
	})
}

// GetDonations returns the charity's received donations with anonymous
// donors masked, plus the running total.
func (cc *CharityController) GetDonations(c *gin.Context) {
	userID, _ := c.Get("user_id")

	total, donations, err := cc.donationService.CharityDonations(userID.(uint))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total_credits": total,
		"donations":     donations,
	})
}

func (cc *CharityController) CreateStory(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var req CreateStoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	story, err := cc.storyService.Create(userID.(uint), services.StoryInput{
		Title:           req.Title,
		Content:         req.Content,
		ImageURL:        req.ImageURL,
		BeneficiaryName: req.BeneficiaryName,
		BeneficiaryAge:  req.BeneficiaryAge,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if config.WSHub != nil {
		if charity, lookupErr := cc.charityService.Get(story.CharityID); lookupErr == nil {
			config.WSHub.BroadcastEvent(websocket.EventStoryPublished, websocket.StoryEvent{
				StoryID:     story.ID,
				CharityID:   story.CharityID,
				CharityName: charity.Name,
				Title:       story.Title,
			})
		}
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Story added",
		"story":   story,
	})
}
