package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/test-kooza/rental-management-system-sub001/config"
	"github.com/test-kooza/rental-management-system-sub001/constants"
	"github.com/test-kooza/rental-management-system-sub001/errors"
	"github.com/test-kooza/rental-management-system-sub001/services"
	"github.com/test-kooza/rental-management-system-sub001/utils"
)

// SignatureHeader carries the provider's HMAC over the raw body.
const SignatureHeader = "X-Payment-Signature"

type WebhookController struct {
	secret       string
	reservations *services.ReservationService
	rdb          *redis.Client
}

func NewWebhookController(secret string, reservations *services.ReservationService, rdb *redis.Client) *WebhookController {
	return &WebhookController{secret: secret, reservations: reservations, rdb: rdb}
}

// HandlePaymentWebhook processes provider callbacks. The 200 response is only
// written after the booking transition is committed; notification and email
// side effects are dispatched without blocking the acknowledgment.
func (wc *WebhookController) HandlePaymentWebhook(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read body"})
		return
	}

	if err := services.VerifyWebhookSignature(payload, c.GetHeader(SignatureHeader), wc.secret); err != nil {
		utils.LogError("webhook rejected: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "signature verification failed"})
		return
	}

	event, err := services.ParsePaymentEvent(payload)
	if err != nil {
		utils.LogError("webhook rejected: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed event"})
		return
	}

	switch event.Type {
	case constants.EventCheckoutCompleted:
		if event.Data.Reference == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "event carries no payment reference"})
			return
		}

		booking, err := wc.reservations.ConfirmBooking(event.Data.Reference)
		if err != nil {
			appErr := errors.GetAppError(err)
			if appErr != nil && (appErr.Code == errors.ErrCodeBookingNotFound || appErr.Code == errors.ErrCodeInvalidTransition) {
				utils.LogError("webhook %s not applied: %v", event.ID, err)
				c.JSON(http.StatusBadRequest, gin.H{"error": appErr.Message})
				return
			}
			utils.LogError("webhook %s failed: %v", event.ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "confirmation failed"})
			return
		}

		if wc.rdb != nil {
			// the guest's cached listing still shows the booking as pending
			_ = services.DeleteKeysByPattern(config.Ctx, wc.rdb, fmt.Sprintf("bookings:user:%d", booking.GuestID))
		}

		utils.LogInfo("webhook %s confirmed booking %s", event.ID, booking.BookingNumber)
		c.JSON(http.StatusOK, gin.H{"received": true, "bookingNumber": booking.BookingNumber})

	case constants.EventCheckoutExpired:
		// the nightly sweep reclaims the pending row; nothing to do inline
		c.JSON(http.StatusOK, gin.H{"received": true})

	default:
		// unrecognized event types are acknowledged so the provider stops retrying
		c.JSON(http.StatusOK, gin.H{"received": true})
	}
}
