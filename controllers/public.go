package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tuinuewasichana/tuinue-be/config"
	"github.com/tuinuewasichana/tuinue-be/services"
)

// PublicController serves the unauthenticated browse surface: approved
// charities and their published stories.
type PublicController struct {
	charityService *services.CharityService
	storyService   *services.StoryService
}

func NewPublicController() *PublicController {
	return &PublicController{
		charityService: services.NewCharityService(config.DB),
		storyService:   services.NewStoryService(config.DB),
	}
}

func (pc *PublicController) GetCharities(c *gin.Context) {
	charities, err := pc.charityService.ListApproved()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch charities"})
		return
	}

	result := make([]gin.H, 0, len(charities))
	for _, charity := range charities {
		result = append(result, gin.H{
			"id":                charity.ID,
			"name":              charity.Name,
			"description":       charity.Description,
			"mission_statement": charity.MissionStatement,
			"location":          charity.Location,
		})
	}

	c.JSON(http.StatusOK, result)
}

func (pc *PublicController) GetCharity(c *gin.Context) {
	charityID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid charity ID"})
		return
	}

	charity, err := pc.charityService.Get(uint(charityID))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":                charity.ID,
		"name":              charity.Name,
		"description":       charity.Description,
		"mission_statement": charity.MissionStatement,
		"location":          charity.Location,
		"founded_year":      charity.FoundedYear,
		"impact_metrics":    charity.ImpactMetrics,
	})
}

func (pc *PublicController) GetStories(c *gin.Context) {
	charityID, err := strconv.ParseUint(c.Query("charity_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid charity_id"})
		return
	}

	stories, err := pc.storyService.ListByCharity(uint(charityID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stories"})
		return
	}

	c.JSON(http.StatusOK, stories)
}
