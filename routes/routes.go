package routes

import (
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/tuinuewasichana/tuinue-be/config"
	"github.com/tuinuewasichana/tuinue-be/controllers"
	"github.com/tuinuewasichana/tuinue-be/middleware"
	"github.com/tuinuewasichana/tuinue-be/websocket"
)

func SetupRoutes() *gin.Engine {
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		corsConfig.AllowOrigins = strings.Split(origins, ",")
	} else {
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	// Initialize controllers
	authController := controllers.NewAuthController()
	donorController := controllers.NewDonorController()
	charityController := controllers.NewCharityController()
	adminController := controllers.NewAdminController()
	publicController := controllers.NewPublicController()
	resetController := controllers.NewResetController()

	// Public routes
	public := r.Group("/api")
	{
		public.POST("/register", authController.Register)
		public.POST("/login", authController.Login)
		public.GET("/charities", publicController.GetCharities)
		public.GET("/charities/:id", publicController.GetCharity)
		public.GET("/stories", publicController.GetStories)
		public.POST("/password-reset/request", resetController.Request)
		public.POST("/password-reset/confirm/:token", resetController.Confirm)
	}

	// Donor routes
	donor := r.Group("/api")
	donor.Use(middleware.AuthMiddleware())
	donor.Use(middleware.DonorOnly())
	{
		donor.POST("/credits/purchase", donorController.PurchaseCredits)
		donor.GET("/donor/credits", donorController.GetCredits)
		donor.GET("/donor/credit-history", donorController.CreditHistory)
		donor.POST("/donate", donorController.Donate)
		donor.GET("/donor/history", donorController.DonationHistory)
	}

	// Charity routes
	charity := r.Group("/api/charity")
	charity.Use(middleware.AuthMiddleware())
	charity.Use(middleware.CharityOnly())
	{
		charity.GET("/status", charityController.GetStatus)
		charity.GET("/donations", charityController.GetDonations)
		charity.POST("/stories", charityController.CreateStory)
	}

	// Admin only routes
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.AdminOnly())
	{
		admin.GET("/charities", adminController.GetCharities)
		admin.POST("/charities", adminController.SetCharityStatus)
	}

	// WebSocket endpoint for realtime donation and status events
	ws := r.Group("/ws")
	ws.Use(middleware.AuthMiddleware())
	{
		ws.GET("", websocket.HandleWebSocket(config.WSHub))
	}

	return r
}
