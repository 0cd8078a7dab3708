package validator

import (
	"time"

	"github.com/test-kooza/rental-management-system-sub001/constants"
	"github.com/test-kooza/rental-management-system-sub001/dto"
	"github.com/test-kooza/rental-management-system-sub001/errors"
)

// ParseDate parses a dd/mm/yyyy wire date.
func ParseDate(dateStr string) (time.Time, error) {
	parsed, err := time.Parse(constants.DateLayout, dateStr)
	if err != nil {
		return time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "Invalid date, expected dd/mm/yyyy", err)
	}
	return parsed, nil
}

// ValidateBookingRequest checks the booking payload and returns the parsed
// check-in/check-out dates.
func ValidateBookingRequest(req *dto.CreateBookingRequest, now time.Time) (time.Time, time.Time, error) {
	checkIn, err := ParseDate(req.CheckInDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	checkOut, err := ParseDate(req.CheckOutDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if checkIn.Before(today) {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeValidation, "Check-in date cannot be in the past", nil)
	}

	if !checkIn.Before(checkOut) {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidDateRange, "Check-out date must be after check-in date", nil)
	}

	if req.Adults < 1 {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidGuests, "At least one adult is required", nil)
	}
	if req.Children < 0 || req.Infants < 0 {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidGuests, "Guest counts cannot be negative", nil)
	}

	return checkIn, checkOut, nil
}

// ValidatePropertyRequest checks the listing payload.
func ValidatePropertyRequest(req *dto.CreatePropertyRequest) error {
	if req.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Property name cannot be empty", nil)
	}
	if req.DiscountPercentage < 0 || req.DiscountPercentage > 100 {
		return errors.NewAppError(errors.ErrCodeValidation, "Discount percentage must be between 0 and 100", nil)
	}
	if req.MaxGuests < 1 {
		return errors.NewAppError(errors.ErrCodeValidation, "A property must sleep at least one guest", nil)
	}
	if req.Currency != "" && len(req.Currency) != 3 {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Currency must be a 3-letter code", nil)
	}
	return nil
}
