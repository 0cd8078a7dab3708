package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/test-kooza/rental-management-system-sub001/config"
	"github.com/test-kooza/rental-management-system-sub001/jobs"
	"github.com/test-kooza/rental-management-system-sub001/models"
	"github.com/test-kooza/rental-management-system-sub001/routes"
	"github.com/test-kooza/rental-management-system-sub001/services"
	"github.com/test-kooza/rental-management-system-sub001/services/logger"
)

func migrateTables() {
	if err := config.DB.AutoMigrate(
		&models.User{},
		&models.Property{},
		&models.Booking{},
		&models.Notification{},
		&models.Conversation{},
		&models.Message{},
	); err != nil {
		panic("Failed to migrate tables: " + err.Error())
	}
}

func main() {
	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	migrateTables()

	appLogger := logger.NewDefaultLogger(logger.InfoLevel)
	notificationService := services.NewNotificationService(config.DB, services.NewChannelHub(m), appLogger)
	sweeper := services.NewReservationService(config.DB, notificationService, nil, appLogger)
	jobs.SetBookingSweeper(sweeper)

	if err := jobs.InitCronJobs(c, m); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	config.InitWebSocket(router, m)

	routes.SetupRoutes(router, config.DB, config.RedisClient, m)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
