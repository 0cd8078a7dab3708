package routes

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/test-kooza/rental-management-system-sub001/controllers"
	middlewares "github.com/test-kooza/rental-management-system-sub001/middleware"
	"github.com/test-kooza/rental-management-system-sub001/services"
	"github.com/test-kooza/rental-management-system-sub001/services/logger"
)

// SetupRoutes wires services and controllers onto the router.
func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, m *melody.Melody) {
	appLogger := logger.NewDefaultLogger(logger.InfoLevel)

	hub := services.NewChannelHub(m)
	notificationService := services.NewNotificationService(db, hub, appLogger)
	mailer := services.NewSMTPMailerFromEnv()

	var reservationMailer services.Mailer
	if mailer != nil {
		reservationMailer = mailer
	}
	reservationService := services.NewReservationService(db, notificationService, reservationMailer, appLogger)
	chatService := services.NewChatService(db, hub, notificationService, appLogger)

	bookingController := controllers.NewBookingController(db, redisCli, reservationService)
	webhookController := controllers.NewWebhookController(os.Getenv("PAYMENT_WEBHOOK_SECRET"), reservationService, redisCli)
	notificationController := controllers.NewNotificationController(notificationService)
	messageController := controllers.NewMessageController(db, chatService)
	propertyController := controllers.NewPropertyController(db, redisCli)

	router.GET("/healthz", controllers.Healthz)

	v1 := router.Group("/api/v1")
	v1.Use(middlewares.SessionMiddleware())

	v1.GET("/properties", propertyController.GetProperties)
	v1.GET("/properties/:id", propertyController.GetPropertyDetail)
	v1.POST("/properties", middlewares.AuthMiddleware(1, 2), propertyController.CreateProperty)

	v1.POST("/bookings/quote", bookingController.GetQuote)
	v1.POST("/bookings", middlewares.AuthMiddleware(), bookingController.CreateBooking)
	v1.GET("/bookings", middlewares.AuthMiddleware(), bookingController.GetBookings)
	v1.GET("/bookings/:id", middlewares.AuthMiddleware(), bookingController.GetBookingDetail)
	v1.PUT("/bookings/cancel", middlewares.AuthMiddleware(), bookingController.CancelBooking)

	// payment provider callback, authenticated by signature instead of a session
	v1.POST("/payments/webhook", webhookController.HandlePaymentWebhook)

	v1.GET("/notifications", middlewares.AuthMiddleware(), notificationController.GetNotifications)
	v1.PUT("/notifications/read", middlewares.AuthMiddleware(), notificationController.MarkNotificationRead)
	v1.PUT("/notifications/readAll", middlewares.AuthMiddleware(), notificationController.MarkAllNotificationsRead)

	v1.POST("/conversations", middlewares.AuthMiddleware(), messageController.OpenConversation)
	v1.GET("/conversations", middlewares.AuthMiddleware(), messageController.ListConversations)
	v1.GET("/conversations/:id/messages", middlewares.AuthMiddleware(), messageController.GetMessages)
	v1.POST("/messages", middlewares.AuthMiddleware(), messageController.SendMessage)
}
