package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/test-kooza/rental-management-system-sub001/dto"
	"github.com/test-kooza/rental-management-system-sub001/errors"
)

var now = time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("10/03/2026")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC), parsed)

	_, err = ParseDate("2026-03-10")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidFormat))

	_, err = ParseDate("31/02/2026")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidFormat))
}

func TestValidateBookingRequest(t *testing.T) {
	req := &dto.CreateBookingRequest{
		PropertyID:   1,
		CheckInDate:  "10/03/2026",
		CheckOutDate: "13/03/2026",
		Adults:       2,
	}

	checkIn, checkOut, err := ValidateBookingRequest(req, now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC), checkIn)
	assert.Equal(t, time.Date(2026, time.March, 13, 0, 0, 0, 0, time.UTC), checkOut)
}

func TestValidateBookingRequestRejections(t *testing.T) {
	tests := []struct {
		name string
		req  dto.CreateBookingRequest
		code errors.ErrorCode
	}{
		{
			"past check-in",
			dto.CreateBookingRequest{CheckInDate: "20/02/2026", CheckOutDate: "25/02/2026", Adults: 1},
			errors.ErrCodeValidation,
		},
		{
			"checkout before checkin",
			dto.CreateBookingRequest{CheckInDate: "13/03/2026", CheckOutDate: "10/03/2026", Adults: 1},
			errors.ErrCodeInvalidDateRange,
		},
		{
			"same-day stay",
			dto.CreateBookingRequest{CheckInDate: "10/03/2026", CheckOutDate: "10/03/2026", Adults: 1},
			errors.ErrCodeInvalidDateRange,
		},
		{
			"no adults",
			dto.CreateBookingRequest{CheckInDate: "10/03/2026", CheckOutDate: "13/03/2026", Adults: 0},
			errors.ErrCodeInvalidGuests,
		},
		{
			"negative children",
			dto.CreateBookingRequest{CheckInDate: "10/03/2026", CheckOutDate: "13/03/2026", Adults: 1, Children: -1},
			errors.ErrCodeInvalidGuests,
		},
		{
			"garbled date",
			dto.CreateBookingRequest{CheckInDate: "soon", CheckOutDate: "13/03/2026", Adults: 1},
			errors.ErrCodeInvalidFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ValidateBookingRequest(&tt.req, now)
			require.Error(t, err)
			assert.True(t, errors.HasCode(err, tt.code), "got %v", err)
		})
	}
}

func TestValidatePropertyRequest(t *testing.T) {
	valid := &dto.CreatePropertyRequest{Name: "Lakeside Cottage", MaxGuests: 4, Currency: "USD"}
	assert.NoError(t, ValidatePropertyRequest(valid))

	err := ValidatePropertyRequest(&dto.CreatePropertyRequest{MaxGuests: 4})
	assert.True(t, errors.HasCode(err, errors.ErrCodeRequiredField))

	err = ValidatePropertyRequest(&dto.CreatePropertyRequest{Name: "Villa", MaxGuests: 0})
	assert.True(t, errors.HasCode(err, errors.ErrCodeValidation))

	err = ValidatePropertyRequest(&dto.CreatePropertyRequest{Name: "Villa", MaxGuests: 2, DiscountPercentage: 120})
	assert.True(t, errors.HasCode(err, errors.ErrCodeValidation))

	err = ValidatePropertyRequest(&dto.CreatePropertyRequest{Name: "Villa", MaxGuests: 2, Currency: "DOLLARS"})
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidFormat))
}
