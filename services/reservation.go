package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/test-kooza/rental-management-system-sub001/constants"
	"github.com/test-kooza/rental-management-system-sub001/errors"
	"github.com/test-kooza/rental-management-system-sub001/models"
	"github.com/test-kooza/rental-management-system-sub001/services/logger"
)

// CreateBookingInput carries everything the workflow needs to open a booking.
type CreateBookingInput struct {
	GuestID      uint
	PropertyID   uint
	CheckInDate  time.Time
	CheckOutDate time.Time
	Adults       int
	Children     int
	Infants      int
}

// Mailer dispatches the confirmation email. Failures never roll back a
// booking state change.
type Mailer interface {
	SendBookingConfirmation(booking *models.Booking) error
}

// ReservationService owns the booking lifecycle. It is the only component
// that transitions a booking's status.
type ReservationService struct {
	db            *gorm.DB
	notifications *NotificationService
	mailer        Mailer
	log           logger.Logger
}

// NewReservationService builds a ReservationService. mailer may be nil when
// no SMTP relay is configured.
func NewReservationService(db *gorm.DB, notifications *NotificationService, mailer Mailer, log logger.Logger) *ReservationService {
	if log == nil {
		log = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &ReservationService{
		db:            db,
		notifications: notifications,
		mailer:        mailer,
		log:           log,
	}
}

// CreatePendingBooking prices the stay and inserts a PENDING booking. The
// availability check and the insert run in one transaction holding a row
// lock on the property, so two overlapping requests cannot both pass the
// check: the second blocks until the first commits, then sees the overlap.
func (s *ReservationService) CreatePendingBooking(input CreateBookingInput) (*models.Booking, error) {
	if input.Adults < 1 {
		return nil, errors.NewAppError(errors.ErrCodeInvalidGuests, "At least one adult is required", nil)
	}
	if input.Children < 0 || input.Infants < 0 {
		return nil, errors.NewAppError(errors.ErrCodeInvalidGuests, "Guest counts cannot be negative", nil)
	}

	checkIn := NormalizeDate(input.CheckInDate)
	checkOut := NormalizeDate(input.CheckOutDate)
	if !checkIn.Before(checkOut) {
		return nil, errors.NewAppError(errors.ErrCodeInvalidDateRange, "Check-out date must be after check-in date", nil)
	}

	var booking *models.Booking
	err := s.db.Transaction(func(tx *gorm.DB) error {
		property, err := s.lockProperty(tx, input.PropertyID)
		if err != nil {
			return err
		}
		if property.Status != constants.PropertyStatusActive {
			return errors.NewAppError(errors.ErrCodeValidation, "Property is not accepting bookings", nil)
		}

		totalGuests := input.Adults + input.Children + input.Infants
		if totalGuests > property.MaxGuests {
			return errors.NewAppError(errors.ErrCodeInvalidGuests,
				fmt.Sprintf("Property sleeps at most %d guests", property.MaxGuests), nil)
		}

		quote, err := ComputeQuote(property.BasePrice, property.DiscountPercentage, checkIn, checkOut)
		if err != nil {
			return err
		}

		count, err := OverlapCount(tx, property.ID, checkIn, checkOut)
		if err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Could not check availability", err)
		}
		if count > 0 {
			return errors.NewAppError(errors.ErrCodeAvailabilityConflict, "Dates no longer available, please choose another range", nil)
		}

		booking = &models.Booking{
			GuestID:      input.GuestID,
			PropertyID:   property.ID,
			CheckInDate:  checkIn,
			CheckOutDate: checkOut,
			Adults:       input.Adults,
			Children:     input.Children,
			Infants:      input.Infants,
			TotalAmount:  quote.TotalPrice,
			Currency:     property.Currency,
			Status:       models.BookingStatusPending,
		}
		if err := tx.Create(booking).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Could not create booking", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return booking, nil
}

// ConfirmBooking transitions the booking matching the payment reference from
// PENDING to CONFIRMED. Redelivered webhooks are acknowledged without
// re-emitting side effects: an already-confirmed booking returns as-is.
func (s *ReservationService) ConfirmBooking(paymentReference string) (*models.Booking, error) {
	if paymentReference == "" {
		return nil, errors.NewAppError(errors.ErrCodePaymentMalformed, "Payment reference is required", nil)
	}

	var booking models.Booking
	alreadyConfirmed := false

	err := s.db.Transaction(func(tx *gorm.DB) error {
		q := tx
		if tx.Dialector.Name() == "postgres" {
			q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		if err := q.Preload("Property").Preload("Guest").
			Where("payment_reference = ?", paymentReference).
			First(&booking).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.NewAppError(errors.ErrCodeBookingNotFound, "No booking matches the payment reference", err)
			}
			return errors.NewAppError(errors.ErrCodeDBError, "Could not load booking", err)
		}

		if booking.Status == models.BookingStatusConfirmed {
			alreadyConfirmed = true
			return nil
		}

		state := models.GetBookingState(booking.Status)
		if err := state.Confirm(&booking); err != nil {
			return errors.NewAppError(errors.ErrCodeInvalidTransition, err.Error(), err)
		}

		if booking.BookingNumber == "" {
			booking.BookingNumber = models.NewBookingNumber()
		}
		now := time.Now()
		booking.ConfirmedAt = &now

		if err := tx.Save(&booking).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Could not confirm booking", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !alreadyConfirmed {
		s.emitConfirmed(&booking)
	}

	return &booking, nil
}

// emitConfirmed runs the post-commit side effects of a confirmation. The
// payment is already captured, so none of these may fail the booking.
func (s *ReservationService) emitConfirmed(booking *models.Booking) {
	message := fmt.Sprintf("Booking %s confirmed for %s", booking.BookingNumber, booking.Property.Name)

	if _, err := s.notifications.Emit(booking.GuestID, constants.NotificationBookingConfirmed, message, &booking.ID); err != nil {
		s.log.Error("booking %d confirmed but guest notification failed: %v", booking.ID, err)
	}
	if _, err := s.notifications.Emit(booking.Property.HostID, constants.NotificationBookingConfirmed, message, &booking.ID); err != nil {
		s.log.Error("booking %d confirmed but host notification failed: %v", booking.ID, err)
	}

	if s.mailer != nil {
		go func(b models.Booking) {
			if err := s.mailer.SendBookingConfirmation(&b); err != nil {
				s.log.Error("booking %d confirmed but email not sent: %v", b.ID, err)
			}
		}(*booking)
	}
}

// CancelBooking moves a PENDING or CONFIRMED booking to CANCELLED and frees
// its date range. actorID is recorded in the notification text only.
func (s *ReservationService) CancelBooking(bookingID uint, actorID uint) (*models.Booking, error) {
	var booking models.Booking

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Property").First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.NewAppError(errors.ErrCodeBookingNotFound, "Booking not found", err)
			}
			return errors.NewAppError(errors.ErrCodeDBError, "Could not load booking", err)
		}

		state := models.GetBookingState(booking.Status)
		if err := state.Cancel(&booking); err != nil {
			return errors.NewAppError(errors.ErrCodeInvalidTransition, err.Error(), err)
		}

		now := time.Now()
		booking.CancelledAt = &now

		if err := tx.Save(&booking).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Could not cancel booking", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	message := fmt.Sprintf("Booking %s was cancelled", booking.BookingNumber)
	if _, err := s.notifications.Emit(booking.GuestID, constants.NotificationBookingCancelled, message, &booking.ID); err != nil {
		s.log.Error("booking %d cancelled but guest notification failed: %v", booking.ID, err)
	}
	if _, err := s.notifications.Emit(booking.Property.HostID, constants.NotificationBookingCancelled, message, &booking.ID); err != nil {
		s.log.Error("booking %d cancelled but host notification failed: %v", booking.ID, err)
	}

	return &booking, nil
}

// GetByID loads one booking with its property and guest.
func (s *ReservationService) GetByID(bookingID uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.Preload("Property").Preload("Guest").First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeBookingNotFound, "Booking not found", err)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Could not load booking", err)
	}
	return &booking, nil
}

// CompleteDueBookings marks CONFIRMED bookings whose checkout has passed as
// COMPLETED. Run from the nightly cron sweep. The update is guarded on the
// status column: a booking another writer moved since the read matches zero
// rows and is skipped instead of overwritten.
func (s *ReservationService) CompleteDueBookings(now time.Time) (int, error) {
	today := NormalizeDate(now)

	var due []models.Booking
	if err := s.db.Where("status = ? AND check_out_date <= ?", models.BookingStatusConfirmed, today).
		Find(&due).Error; err != nil {
		return 0, errors.NewAppError(errors.ErrCodeDBError, "Could not load due bookings", err)
	}

	completed := 0
	for i := range due {
		result := s.db.Model(&models.Booking{}).
			Where("id = ? AND status = ?", due[i].ID, models.BookingStatusConfirmed).
			Update("status", models.BookingStatusCompleted)
		if result.Error != nil {
			s.log.Error("booking %d not completed: %v", due[i].ID, result.Error)
			continue
		}
		if result.RowsAffected == 0 {
			continue
		}
		completed++
	}
	return completed, nil
}

// ExpireStalePending cancels PENDING bookings whose check-in date has passed
// without a payment, so abandoned checkouts stop blocking the calendar. Same
// status guard as CompleteDueBookings: a booking that got paid mid-sweep
// stays confirmed.
func (s *ReservationService) ExpireStalePending(now time.Time) (int, error) {
	today := NormalizeDate(now)

	var stale []models.Booking
	if err := s.db.Where("status = ? AND check_in_date < ?", models.BookingStatusPending, today).
		Find(&stale).Error; err != nil {
		return 0, errors.NewAppError(errors.ErrCodeDBError, "Could not load stale bookings", err)
	}

	expired := 0
	for i := range stale {
		result := s.db.Model(&models.Booking{}).
			Where("id = ? AND status = ?", stale[i].ID, models.BookingStatusPending).
			Updates(map[string]interface{}{
				"status":       models.BookingStatusCancelled,
				"cancelled_at": now,
			})
		if result.Error != nil {
			s.log.Error("booking %d not expired: %v", stale[i].ID, result.Error)
			continue
		}
		if result.RowsAffected == 0 {
			continue
		}
		expired++
	}
	return expired, nil
}

func (s *ReservationService) lockProperty(tx *gorm.DB, propertyID uint) (*models.Property, error) {
	q := tx
	// sqlite (tests) serializes writers itself and rejects FOR UPDATE
	if tx.Dialector.Name() == "postgres" {
		q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var property models.Property
	if err := q.First(&property, propertyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeDBNotFound, "Property not found", err)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Could not load property", err)
	}
	return &property, nil
}
