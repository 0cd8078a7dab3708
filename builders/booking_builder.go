package builders

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/test-kooza/rental-management-system-sub001/models"
)

// BookingBuilder assembles a booking step by step. Mostly used by tests and
// seed scripts to keep fixtures readable.
type BookingBuilder struct {
	booking *models.Booking
}

// NewBookingBuilder starts an empty builder.
func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		booking: &models.Booking{Adults: 1, Currency: "USD"},
	}
}

// WithGuest sets the guest.
func (b *BookingBuilder) WithGuest(guestID uint) *BookingBuilder {
	b.booking.GuestID = guestID
	return b
}

// WithProperty sets the property.
func (b *BookingBuilder) WithProperty(propertyID uint) *BookingBuilder {
	b.booking.PropertyID = propertyID
	return b
}

// WithStay sets the date range.
func (b *BookingBuilder) WithStay(checkIn, checkOut time.Time) *BookingBuilder {
	b.booking.CheckInDate = checkIn
	b.booking.CheckOutDate = checkOut
	return b
}

// WithGuests sets the occupant counts.
func (b *BookingBuilder) WithGuests(adults, children, infants int) *BookingBuilder {
	b.booking.Adults = adults
	b.booking.Children = children
	b.booking.Infants = infants
	return b
}

// WithStatus sets the status.
func (b *BookingBuilder) WithStatus(status int) *BookingBuilder {
	b.booking.Status = status
	return b
}

// WithTotal sets the total amount and currency.
func (b *BookingBuilder) WithTotal(total decimal.Decimal, currency string) *BookingBuilder {
	b.booking.TotalAmount = total
	b.booking.Currency = currency
	return b
}

// WithPaymentReference sets the payment reference.
func (b *BookingBuilder) WithPaymentReference(ref string) *BookingBuilder {
	b.booking.PaymentReference = ref
	return b
}

// Build returns the assembled booking.
func (b *BookingBuilder) Build() *models.Booking {
	return b.booking
}
