package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/tuinuewasichana/tuinue-be/config"
	"github.com/tuinuewasichana/tuinue-be/routes"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Connect to database
	config.ConnectDatabase()

	// Run goose migrations (seeds the default admin)
	sqlDB, err := config.GetSQLDB()
	if err != nil {
		log.Fatal("Failed to get database handle:", err)
	}
	if err := config.RunMigrations(sqlDB); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Start the websocket hub
	config.InitializeWebSocketHub()

	// Setup routes
	r := routes.SetupRoutes()

	// Get port from environment or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
