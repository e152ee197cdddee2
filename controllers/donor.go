package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tuinuewasichana/tuinue-be/config"
	"github.com/tuinuewasichana/tuinue-be/models"
	"github.com/tuinuewasichana/tuinue-be/services"
	"github.com/tuinuewasichana/tuinue-be/websocket"
)

type DonorController struct {
	creditService   *services.CreditService
	donationService *services.DonationService
	charityService  *services.CharityService
}

func NewDonorController() *DonorController {
	return &DonorController{
		creditService:   services.NewCreditService(config.DB),
		donationService: services.NewDonationService(config.DB),
		charityService:  services.NewCharityService(config.DB),
	}
}

type PurchaseCreditsRequest struct {
	Amount int `json:"amount" binding:"required"`
}

type DonateRequest struct {
	CharityID          uint   `json:"charity_id" binding:"required"`
	Amount             int    `json:"amount" binding:"required"`
	IsAnonymous        bool   `json:"is_anonymous"`
	IsRecurring        bool   `json:"is_recurring"`
	RecurringFrequency string `json:"recurring_frequency"`
}

func (dc *DonorController) PurchaseCredits(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var req PurchaseCreditsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	balance, err := dc.creditService.Purchase(userID.(uint), req.Amount)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Credits purchased",
		"new_balance": balance,
	})
}

func (dc *DonorController) GetCredits(c *gin.Context) {
	userID, _ := c.Get("user_id")

	balance, err := dc.creditService.Balance(userID.(uint))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"credits": balance})
}

func (dc *DonorController) CreditHistory(c *gin.Context) {
	userID, _ := c.Get("user_id")

	transactions, err := dc.creditService.History(userID.(uint))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transactions": transactions})
}

func (dc *DonorController) Donate(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var req DonateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	receipt, balance, err := dc.donationService.Donate(userID.(uint), services.DonateInput{
		CharityID:          req.CharityID,
		Amount:             req.Amount,
		IsAnonymous:        req.IsAnonymous,
		IsRecurring:        req.IsRecurring,
		RecurringFrequency: req.RecurringFrequency,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	dc.notifyCharity(userID.(uint), receipt)

	c.JSON(http.StatusOK, gin.H{
		"message":     "Donation successful",
		"receipt":     receipt,
		"new_balance": balance,
	})
}

// notifyCharity pushes the donation event to the receiving charity's
// connected dashboards. The donor name is masked before it leaves the server.
func (dc *DonorController) notifyCharity(donorID uint, receipt *services.Receipt) {
	if config.WSHub == nil {
		return
	}

	charity, err := dc.charityService.Get(receipt.CharityID)
	if err != nil {
		return
	}

	donorName := "Anonymous"
	if !receipt.IsAnonymous {
		var donor models.User
		if err := config.DB.First(&donor, donorID).Error; err == nil {
			donorName = donor.Username
		}
	}

	config.WSHub.NotifyUser(charity.UserID, websocket.EventDonationReceived, websocket.DonationEvent{
		CharityID:   charity.ID,
		CharityName: charity.Name,
		DonorName:   donorName,
		Amount:      receipt.Amount,
		IsAnonymous: receipt.IsAnonymous,
		Date:        receipt.Date.Format("2006-01-02T15:04:05Z07:00"),
	})
}

func (dc *DonorController) DonationHistory(c *gin.Context) {
	userID, _ := c.Get("user_id")

	history, err := dc.donationService.DonorHistory(userID.(uint))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"donations": history})
}
