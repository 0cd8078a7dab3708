package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/test-kooza/rental-management-system-sub001/models"
	"github.com/test-kooza/rental-management-system-sub001/services/logger"
)

// blockingStatuses are the booking statuses that hold a date range.
var blockingStatuses = []int{models.BookingStatusPending, models.BookingStatusConfirmed}

// AvailabilityService answers whether a property is free for a date range.
type AvailabilityService struct {
	db  *gorm.DB
	log logger.Logger
}

// NewAvailabilityService builds an AvailabilityService.
func NewAvailabilityService(db *gorm.DB, log logger.Logger) *AvailabilityService {
	if log == nil {
		log = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &AvailabilityService{db: db, log: log}
}

// IsAvailable reports whether no pending or confirmed booking overlaps the
// requested half-open [checkIn, checkOut) range. A data-access failure counts
// as unavailable: wrongly refusing a booking beats double-booking a stay.
func (s *AvailabilityService) IsAvailable(propertyID uint, checkIn, checkOut time.Time) bool {
	count, err := OverlapCount(s.db, propertyID, checkIn, checkOut)
	if err != nil {
		s.log.Error("availability check failed for property %d: %v", propertyID, err)
		return false
	}
	return count == 0
}

// OverlapCount counts bookings colliding with [checkIn, checkOut). Two ranges
// [a1,a2) and [b1,b2) overlap iff a1 < b2 and b1 < a2, so back-to-back stays
// sharing a checkout/check-in day never collide.
func OverlapCount(tx *gorm.DB, propertyID uint, checkIn, checkOut time.Time) (int64, error) {
	var count int64
	err := tx.Model(&models.Booking{}).
		Where("property_id = ? AND status IN ? AND check_in_date < ? AND check_out_date > ?",
			propertyID, blockingStatuses, NormalizeDate(checkOut), NormalizeDate(checkIn)).
		Count(&count).Error
	return count, err
}
