package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	v1 "github.com/teamtasker/api/v1"
	"github.com/teamtasker/config"
	"github.com/teamtasker/database"
	"github.com/teamtasker/logging"
	"github.com/teamtasker/middleware"
	"github.com/teamtasker/utils"
)

func main() {
	// Load environment variables
	config.LoadEnv()

	// Initialize logger
	logging.Init()

	// Set Gin mode
	if config.GetEnv("GIN_MODE", "release") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Register custom binding validators (ID formats, GitHub URL)
	utils.RegisterValidators()

	// Initialize database
	database.Initialize()

	// Initialize router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())

	// CORS configuration
	router.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(origin string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	// Register API routes
	api := router.Group("/api/v1")
	v1.RegisterRoutes(api)

	// Start server
	port := config.GetEnv("PORT", "8080")
	logging.Logger.Infof("teamtasker API starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logging.Logger.Fatalf("Failed to start server: %v", err)
	}
}
