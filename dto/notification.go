package dto

import "time"

// MarkReadRequest targets one notification.
type MarkReadRequest struct {
	ID uint `json:"id" binding:"required"`
}

// NotificationResponse is the API shape of a notification.
type NotificationResponse struct {
	ID        uint      `json:"id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"isRead"`
	BookingID *uint     `json:"bookingId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
