package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Booking status constants
const (
	BookingStatusPending   = 0
	BookingStatusConfirmed = 1
	BookingStatusCompleted = 2
	BookingStatusCancelled = 3
)

type Booking struct {
	ID               uint            `json:"id" gorm:"primaryKey"`
	BookingNumber    string          `json:"bookingNumber" gorm:"unique;size:20"`
	GuestID          uint            `json:"guestId" gorm:"index;not null"`
	Guest            *User           `json:"guest,omitempty" gorm:"foreignKey:GuestID"`
	PropertyID       uint            `json:"propertyId" gorm:"index;not null"`
	Property         Property        `json:"property" gorm:"foreignKey:PropertyID"`
	CheckInDate      time.Time       `json:"checkInDate" gorm:"type:date;not null"`
	CheckOutDate     time.Time       `json:"checkOutDate" gorm:"type:date;not null"`
	Adults           int             `json:"adults" gorm:"default:1"`
	Children         int             `json:"children" gorm:"default:0"`
	Infants          int             `json:"infants" gorm:"default:0"`
	TotalAmount      decimal.Decimal `json:"totalAmount" gorm:"type:numeric"`
	Currency         string          `json:"currency" gorm:"size:3;default:'USD'"`
	Status           int             `json:"status" gorm:"index;default:0"`
	PaymentReference string          `json:"paymentReference" gorm:"uniqueIndex;size:64"`
	ConfirmedAt      *time.Time      `json:"confirmedAt,omitempty"`
	CancelledAt      *time.Time      `json:"cancelledAt,omitempty"`
	CreatedAt        time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
}

// TotalGuests counts every occupant, infants included.
func (b *Booking) TotalGuests() int {
	return b.Adults + b.Children + b.Infants
}

// Nights returns the number of nights in the half-open [CheckInDate, CheckOutDate) range.
func (b *Booking) Nights() int {
	return int(b.CheckOutDate.Sub(b.CheckInDate).Hours() / 24)
}

// BeforeCreate assigns the booking number and payment reference so a PENDING
// row already carries the identifiers the payment provider will echo back.
func (b *Booking) BeforeCreate(tx *gorm.DB) (err error) {
	if b.BookingNumber == "" {
		b.BookingNumber = NewBookingNumber()

		var count int64
		if err := tx.Model(&Booking{}).Where("booking_number = ?", b.BookingNumber).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("booking number %s already exists, please retry", b.BookingNumber)
		}
	}
	if b.PaymentReference == "" {
		b.PaymentReference = uuid.NewString()
	}
	return nil
}

// NewBookingNumber builds a short uppercase reference code.
func NewBookingNumber() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "RMS-" + strings.ToUpper(raw[:8])
}
