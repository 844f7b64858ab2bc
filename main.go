package main

import (
	"log"
	"time"

	"github.com/TAMUSHPE/MobileApp-sub002/config"
	"github.com/TAMUSHPE/MobileApp-sub002/controllers"
	"github.com/TAMUSHPE/MobileApp-sub002/database"
	"github.com/TAMUSHPE/MobileApp-sub002/routes"
	"github.com/TAMUSHPE/MobileApp-sub002/utils"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()
	utils.SetJWTSecret(cfg.JWTSecret)
	controllers.SetScanScheme(cfg.ScanScheme)

	// Connect to database and run migrations
	database.Connect(cfg)

	// Initialize Gin
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	// Register routes
	routes.SetupRoutes(router)

	// Start the background cleanup task
	go func() {
		for {
			time.Sleep(5 * time.Minute) // Run every 5 minutes
			utils.CleanupExpiredCache()
			log.Println("Cleaned up expired pending registrations and resets")
		}
	}()

	// Start server
	log.Printf("Server running on :%s", cfg.AppPort)
	if err := router.Run("0.0.0.0:" + cfg.AppPort); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
