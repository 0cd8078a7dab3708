package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/test-kooza/rental-management-system-sub001/errors"
)

func TestNightsBetween(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		expected int
	}{
		{"single night", date(2026, time.March, 10), date(2026, time.March, 11), 1},
		{"three nights", date(2026, time.March, 10), date(2026, time.March, 13), 3},
		{"across month boundary", date(2026, time.January, 30), date(2026, time.February, 2), 3},
		{"same day", date(2026, time.March, 10), date(2026, time.March, 10), 0},
		{"inverted range", date(2026, time.March, 13), date(2026, time.March, 10), -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NightsBetween(tt.checkIn, tt.checkOut))
		})
	}
}

func TestNightsBetweenIgnoresTimeOfDay(t *testing.T) {
	checkIn := time.Date(2026, time.March, 10, 23, 59, 0, 0, time.UTC)
	checkOut := time.Date(2026, time.March, 12, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, 2, NightsBetween(checkIn, checkOut))
}

func TestComputeQuoteWithDiscount(t *testing.T) {
	basePrice := decimal.NewFromInt(100)

	quote, err := ComputeQuote(basePrice, 10, date(2026, time.March, 10), date(2026, time.March, 13))
	require.NoError(t, err)

	assert.Equal(t, 3, quote.TotalNights)
	assert.True(t, quote.PricePerNight.Equal(decimal.NewFromInt(90)),
		"expected 90 per night, got %s", quote.PricePerNight)
	assert.True(t, quote.TotalPrice.Equal(decimal.NewFromInt(270)),
		"expected 270 total, got %s", quote.TotalPrice)
}

func TestComputeQuoteWithoutDiscount(t *testing.T) {
	basePrice := decimal.RequireFromString("85.50")

	quote, err := ComputeQuote(basePrice, 0, date(2026, time.June, 1), date(2026, time.June, 5))
	require.NoError(t, err)

	assert.Equal(t, 4, quote.TotalNights)
	assert.True(t, quote.PricePerNight.Equal(basePrice))
	assert.True(t, quote.TotalPrice.Equal(decimal.RequireFromString("342.00")),
		"expected 342.00 total, got %s", quote.TotalPrice)
}

func TestComputeQuoteKeepsFractionsExact(t *testing.T) {
	// 99.99 with a 15% discount: per-night must stay exact, not drift through floats
	quote, err := ComputeQuote(decimal.RequireFromString("99.99"), 15, date(2026, time.March, 1), date(2026, time.March, 3))
	require.NoError(t, err)

	assert.True(t, quote.PricePerNight.Equal(decimal.RequireFromString("84.9915")),
		"expected 84.9915 per night, got %s", quote.PricePerNight)
	assert.True(t, quote.TotalPrice.Equal(decimal.RequireFromString("169.983")),
		"expected 169.983 total, got %s", quote.TotalPrice)
	assert.Equal(t, "169.98", FormatAmount(quote.TotalPrice, "USD"))
}

func TestComputeQuoteRejectsEmptyRange(t *testing.T) {
	_, err := ComputeQuote(decimal.NewFromInt(100), 0, date(2026, time.March, 10), date(2026, time.March, 10))
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidDateRange))
}

func TestComputeQuoteRejectsInvertedRange(t *testing.T) {
	_, err := ComputeQuote(decimal.NewFromInt(100), 0, date(2026, time.March, 13), date(2026, time.March, 10))
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidDateRange))
}

func TestComputeQuoteRejectsBadInputs(t *testing.T) {
	_, err := ComputeQuote(decimal.NewFromInt(-1), 0, date(2026, time.March, 10), date(2026, time.March, 12))
	assert.True(t, errors.HasCode(err, errors.ErrCodeValidation))

	_, err = ComputeQuote(decimal.NewFromInt(100), 101, date(2026, time.March, 10), date(2026, time.March, 12))
	assert.True(t, errors.HasCode(err, errors.ErrCodeValidation))

	_, err = ComputeQuote(decimal.NewFromInt(100), -5, date(2026, time.March, 10), date(2026, time.March, 12))
	assert.True(t, errors.HasCode(err, errors.ErrCodeValidation))
}

func TestFormatAmountMinorUnits(t *testing.T) {
	amount := decimal.RequireFromString("1234.567")

	assert.Equal(t, "1234.57", FormatAmount(amount, "USD"))
	assert.Equal(t, "1235", FormatAmount(amount, "JPY"))
	assert.Equal(t, "1235", FormatAmount(amount, "UGX"))
}
