package dto

import "time"

// CreateBookingRequest is the booking creation entry point payload. Dates use
// the dd/mm/yyyy wire format.
type CreateBookingRequest struct {
	PropertyID   uint   `json:"propertyId" binding:"required"`
	CheckInDate  string `json:"checkInDate" binding:"required"`
	CheckOutDate string `json:"checkOutDate" binding:"required"`
	Adults       int    `json:"adults" binding:"required,min=1"`
	Children     int    `json:"children" binding:"min=0"`
	Infants      int    `json:"infants" binding:"min=0"`
}

// QuoteRequest prices a stay without creating anything.
type QuoteRequest struct {
	PropertyID   uint   `json:"propertyId" binding:"required"`
	CheckInDate  string `json:"checkInDate" binding:"required"`
	CheckOutDate string `json:"checkOutDate" binding:"required"`
}

// QuoteResponse is the priced stay.
type QuoteResponse struct {
	TotalNights   int    `json:"totalNights"`
	PricePerNight string `json:"pricePerNight"`
	TotalPrice    string `json:"totalPrice"`
	Currency      string `json:"currency"`
}

// CancelBookingRequest targets one booking.
type CancelBookingRequest struct {
	ID uint `json:"id" binding:"required"`
}

// BookingPropertyResponse is the property slice of a booking response.
type BookingPropertyResponse struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	Avatar  string `json:"avatar"`
}

// BookingGuestResponse is the guest slice of a booking response.
type BookingGuestResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

// BookingResponse is the API shape of a booking.
type BookingResponse struct {
	ID               uint                    `json:"id"`
	BookingNumber    string                  `json:"bookingNumber"`
	Guest            BookingGuestResponse    `json:"guest"`
	Property         BookingPropertyResponse `json:"property"`
	CheckInDate      string                  `json:"checkInDate"`
	CheckOutDate     string                  `json:"checkOutDate"`
	Nights           int                     `json:"nights"`
	Adults           int                     `json:"adults"`
	Children         int                     `json:"children"`
	Infants          int                     `json:"infants"`
	TotalAmount      string                  `json:"totalAmount"`
	Currency         string                  `json:"currency"`
	Status           int                     `json:"status"`
	PaymentReference string                  `json:"paymentReference"`
	CreatedAt        time.Time               `json:"createdAt"`
	UpdatedAt        time.Time               `json:"updatedAt"`
}
