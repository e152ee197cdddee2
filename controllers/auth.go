package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tuinuewasichana/tuinue-be/config"
	"github.com/tuinuewasichana/tuinue-be/models"
	"github.com/tuinuewasichana/tuinue-be/services"
)

type AuthController struct {
	authService    *services.AuthService
	charityService *services.CharityService
}

func NewAuthController() *AuthController {
	return &AuthController{
		authService:    services.NewAuthService(config.DB),
		charityService: services.NewCharityService(config.DB),
	}
}

type CharityApplicationRequest struct {
	Name             string `json:"name" binding:"required"`
	Description      string `json:"description" binding:"required"`
	MissionStatement string `json:"mission_statement"`
	Location         string `json:"location"`
	FoundedYear      int    `json:"founded_year"`
	ImpactMetrics    string `json:"impact_metrics"`
	ContactPerson    string `json:"contact_person"`
	ContactPhone     string `json:"contact_phone"`
	Website          string `json:"website"`
}

type RegisterRequest struct {
	Username string                     `json:"username" binding:"required"`
	Email    string                     `json:"email" binding:"required,email"`
	Password string                     `json:"password" binding:"required"`
	Role     models.UserRole            `json:"role" binding:"required"`
	Charity  *CharityApplicationRequest `json:"charity"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !services.ValidPassword(req.Password) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be at least 8 characters with an uppercase letter and a digit"})
		return
	}

	var application *services.CharityApplication
	if req.Role == models.RoleCharity {
		if req.Charity == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Charity profile is required for charity registration"})
			return
		}
		application = &services.CharityApplication{
			Name:             req.Charity.Name,
			Description:      req.Charity.Description,
			MissionStatement: req.Charity.MissionStatement,
			Location:         req.Charity.Location,
			FoundedYear:      req.Charity.FoundedYear,
			ImpactMetrics:    req.Charity.ImpactMetrics,
			ContactPerson:    req.Charity.ContactPerson,
			ContactPhone:     req.Charity.ContactPhone,
			Website:          req.Charity.Website,
		}
	}

	user, charity, err := ac.authService.Register(req.Username, req.Email, req.Password, req.Role, application)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid registration details or email already exists"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Charity applications start pending and get no token until approved
	if charity != nil {
		c.JSON(http.StatusCreated, gin.H{
			"message":    "Charity application submitted, pending approval. You will be notified via email.",
			"user_id":    user.ID,
			"charity_id": charity.ID,
			"role":       user.Role,
			"pending":    true,
		})
		return
	}

	token, err := ac.authService.GenerateToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      "User registered",
		"user_id":      user.ID,
		"access_token": token,
		"role":         user.Role,
		"pending":      false,
	})
}

func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := ac.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrCharityUnavailable) {
			// Distinguish a pending application from a rejected one
			if charity, lookupErr := ac.charityService.GetByUser(ac.userIDByEmail(req.Email)); lookupErr == nil && charity.Status == models.CharityRejected {
				c.JSON(http.StatusForbidden, gin.H{"error": "We are sorry, your charity application was not approved. Please contact support for more details."})
				return
			}
			c.JSON(http.StatusForbidden, gin.H{"error": "Charity application pending approval"})
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id":      user.ID,
		"access_token": token,
		"role":         user.Role,
	})
}

func (ac *AuthController) userIDByEmail(email string) uint {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return 0
	}
	return user.ID
}
