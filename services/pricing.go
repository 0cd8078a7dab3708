package services

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/test-kooza/rental-management-system-sub001/errors"
)

// PricingQuote is the ephemeral result of pricing a stay. It is never
// persisted; the booking row only keeps the resulting total.
type PricingQuote struct {
	BasePrice          decimal.Decimal `json:"basePrice"`
	DiscountPercentage float64         `json:"discountPercentage"`
	CheckInDate        time.Time       `json:"checkInDate"`
	CheckOutDate       time.Time       `json:"checkOutDate"`
	TotalNights        int             `json:"totalNights"`
	PricePerNight      decimal.Decimal `json:"pricePerNight"`
	TotalPrice         decimal.Decimal `json:"totalPrice"`
}

var oneHundred = decimal.NewFromInt(100)

// NormalizeDate drops the time component, keeping the calendar date in UTC.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// NightsBetween counts the nights in the half-open [checkIn, checkOut) range.
func NightsBetween(checkIn, checkOut time.Time) int {
	return int(NormalizeDate(checkOut).Sub(NormalizeDate(checkIn)).Hours() / 24)
}

// ComputeQuote prices a stay. All currency math runs on decimals; rounding to
// the currency's minor units happens at presentation time only.
func ComputeQuote(basePrice decimal.Decimal, discountPercentage float64, checkIn, checkOut time.Time) (*PricingQuote, error) {
	if basePrice.IsNegative() {
		return nil, errors.NewAppError(errors.ErrCodeValidation, "Base price cannot be negative", nil)
	}
	if discountPercentage < 0 || discountPercentage > 100 {
		return nil, errors.NewAppError(errors.ErrCodeValidation, "Discount percentage must be between 0 and 100", nil)
	}

	checkIn = NormalizeDate(checkIn)
	checkOut = NormalizeDate(checkOut)

	totalNights := NightsBetween(checkIn, checkOut)
	if totalNights <= 0 {
		return nil, errors.NewAppError(errors.ErrCodeInvalidDateRange, "Check-out date must be after check-in date", nil)
	}

	pricePerNight := basePrice
	if discountPercentage > 0 {
		pricePerNight = basePrice.
			Mul(oneHundred.Sub(decimal.NewFromFloat(discountPercentage))).
			Div(oneHundred)
	}

	return &PricingQuote{
		BasePrice:          basePrice,
		DiscountPercentage: discountPercentage,
		CheckInDate:        checkIn,
		CheckOutDate:       checkOut,
		TotalNights:        totalNights,
		PricePerNight:      pricePerNight,
		TotalPrice:         pricePerNight.Mul(decimal.NewFromInt(int64(totalNights))),
	}, nil
}

// MinorUnits returns the number of decimal places the currency displays.
func MinorUnits(currency string) int32 {
	switch currency {
	case "JPY", "KRW", "VND", "UGX":
		return 0
	default:
		return 2
	}
}

// FormatAmount renders an amount rounded to the currency's minor units.
func FormatAmount(amount decimal.Decimal, currency string) string {
	return amount.StringFixed(MinorUnits(currency))
}
