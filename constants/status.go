package constants

// User status
const (
	UserStatusActive   = 1
	UserStatusInactive = 0
)

// User roles
const (
	RoleGuest = 0
	RoleHost  = 1
	RoleAdmin = 2
)

// Property status
const (
	PropertyStatusInactive = 0
	PropertyStatusActive   = 1
)

// Notification types
const (
	NotificationBookingRequest   = "BOOKING_REQUEST"
	NotificationBookingConfirmed = "BOOKING_CONFIRMED"
	NotificationBookingCancelled = "BOOKING_CANCELLED"
	NotificationMessageReceived  = "MESSAGE_RECEIVED"
	NotificationReviewReceived   = "REVIEW_RECEIVED"
	NotificationPayoutSent       = "PAYOUT_SENT"
	NotificationPaymentProcessed = "PAYMENT_PROCESSED"
	NotificationSystemUpdate     = "SYSTEM_UPDATE"
)

// Payment webhook event types
const (
	EventCheckoutCompleted = "checkout.session.completed"
	EventCheckoutExpired   = "checkout.session.expired"
)

// DateLayout is the wire format for calendar dates (day first).
const DateLayout = "02/01/2006"
