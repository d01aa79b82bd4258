package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"fitngo-leads/pkg/api"
	"fitngo-leads/pkg/clients/resend"
	"fitngo-leads/pkg/config"
	"fitngo-leads/pkg/services"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file")
	}

	// Initialize configuration
	cfg := config.LoadConfig()

	// Initialize the notification sink client
	mailClient := resend.NewClient(cfg.ResendAPIKey)

	// Initialize services
	leadService := services.NewLeadService(mailClient, cfg)

	gin.SetMode(gin.ReleaseMode)

	// Initialize handlers and routes
	handlers := api.NewHandlers(leadService)
	router := api.NewRouter(handlers)

	// Start the server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
