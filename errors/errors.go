package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a class of application error.
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken ErrorCode = "INVALID_TOKEN"
	ErrCodeMissingToken ErrorCode = "MISSING_TOKEN"
	ErrCodeForbidden    ErrorCode = "FORBIDDEN"

	// Validation errors
	ErrCodeValidation       ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField    ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat    ErrorCode = "INVALID_FORMAT"
	ErrCodeInvalidDateRange ErrorCode = "INVALID_DATE_RANGE"
	ErrCodeInvalidGuests    ErrorCode = "INVALID_GUEST_COUNT"

	// Booking errors
	ErrCodeAvailabilityConflict ErrorCode = "AVAILABILITY_CONFLICT"
	ErrCodeInvalidTransition    ErrorCode = "INVALID_TRANSITION"
	ErrCodeBookingNotFound      ErrorCode = "BOOKING_NOT_FOUND"

	// Payment errors
	ErrCodePaymentVerification ErrorCode = "PAYMENT_VERIFICATION_FAILED"
	ErrCodePaymentMalformed    ErrorCode = "PAYMENT_EVENT_MALFORMED"

	// Notification errors
	ErrCodeNotificationDelivery ErrorCode = "NOTIFICATION_DELIVERY_FAILED"

	// Database errors
	ErrCodeDBError     ErrorCode = "DB_ERROR"
	ErrCodeDBNotFound  ErrorCode = "DB_NOT_FOUND"
	ErrCodeDBDuplicate ErrorCode = "DB_DUPLICATE"
)

// AppError carries an error code alongside a user-facing message.
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError builds an AppError.
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsAppError reports whether err is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts the AppError from err, or nil.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// Is forwards to the standard library so callers mixing this package with
// sentinel checks do not need a second import.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// HasCode reports whether err carries the given error code.
func HasCode(err error, code ErrorCode) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Code == code
}

var (
	// Booking errors
	ErrBookingNotFound    = errors.New("booking not found")
	ErrDatesUnavailable   = errors.New("dates no longer available")
	ErrBookingCancelled   = errors.New("booking already cancelled")
	ErrBookingCompleted   = errors.New("booking already completed")
	ErrBookingNotPending  = errors.New("booking is not pending")

	// Property errors
	ErrPropertyNotFound  = errors.New("property not found")
	ErrPropertyInactive  = errors.New("property is not active")

	// Payment errors
	ErrBadSignature     = errors.New("webhook signature mismatch")
	ErrUnknownReference = errors.New("unknown payment reference")

	// Validation errors
	ErrInvalidInput    = errors.New("invalid input")
	ErrMissingRequired = errors.New("missing required field")
)
