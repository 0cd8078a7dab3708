package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/test-kooza/rental-management-system-sub001/builders"
	"github.com/test-kooza/rental-management-system-sub001/models"
)

func seedBooking(t *testing.T, db *gorm.DB, guestID, propertyID uint, checkIn, checkOut time.Time, status int) *models.Booking {
	t.Helper()

	booking := builders.NewBookingBuilder().
		WithGuest(guestID).
		WithProperty(propertyID).
		WithStay(checkIn, checkOut).
		WithStatus(status).
		WithTotal(decimal.NewFromInt(200), "USD").
		Build()
	require.NoError(t, db.Create(booking).Error)
	return booking
}

func TestIsAvailableOverlaps(t *testing.T) {
	db := newTestDB(t)
	host := seedUser(t, db, "Harriet Host", "harriet@example.com", 1)
	guest := seedUser(t, db, "Gerald Guest", "gerald@example.com", 0)
	property := seedProperty(t, db, host.ID, "100", 0, 4)

	// existing confirmed stay: 10th to 15th
	seedBooking(t, db, guest.ID, property.ID,
		date(2026, time.March, 10), date(2026, time.March, 15), models.BookingStatusConfirmed)

	svc := NewAvailabilityService(db, nil)

	tests := []struct {
		name      string
		checkIn   time.Time
		checkOut  time.Time
		available bool
	}{
		{"identical range", date(2026, time.March, 10), date(2026, time.March, 15), false},
		{"contained inside", date(2026, time.March, 11), date(2026, time.March, 13), false},
		{"straddles start", date(2026, time.March, 8), date(2026, time.March, 11), false},
		{"straddles end", date(2026, time.March, 14), date(2026, time.March, 17), false},
		{"covers entirely", date(2026, time.March, 8), date(2026, time.March, 17), false},
		{"before, back to back", date(2026, time.March, 7), date(2026, time.March, 10), true},
		{"after, back to back", date(2026, time.March, 15), date(2026, time.March, 18), true},
		{"well before", date(2026, time.March, 1), date(2026, time.March, 5), true},
		{"well after", date(2026, time.March, 20), date(2026, time.March, 25), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.available, svc.IsAvailable(property.ID, tt.checkIn, tt.checkOut))
		})
	}
}

func TestIsAvailableIgnoresNonBlockingStatuses(t *testing.T) {
	db := newTestDB(t)
	host := seedUser(t, db, "Harriet Host", "harriet@example.com", 1)
	guest := seedUser(t, db, "Gerald Guest", "gerald@example.com", 0)
	property := seedProperty(t, db, host.ID, "100", 0, 4)

	seedBooking(t, db, guest.ID, property.ID,
		date(2026, time.March, 10), date(2026, time.March, 15), models.BookingStatusCancelled)
	seedBooking(t, db, guest.ID, property.ID,
		date(2026, time.February, 1), date(2026, time.March, 12), models.BookingStatusCompleted)

	svc := NewAvailabilityService(db, nil)
	assert.True(t, svc.IsAvailable(property.ID, date(2026, time.March, 10), date(2026, time.March, 15)))
}

func TestIsAvailablePendingBlocks(t *testing.T) {
	db := newTestDB(t)
	host := seedUser(t, db, "Harriet Host", "harriet@example.com", 1)
	guest := seedUser(t, db, "Gerald Guest", "gerald@example.com", 0)
	property := seedProperty(t, db, host.ID, "100", 0, 4)

	seedBooking(t, db, guest.ID, property.ID,
		date(2026, time.March, 10), date(2026, time.March, 15), models.BookingStatusPending)

	svc := NewAvailabilityService(db, nil)
	assert.False(t, svc.IsAvailable(property.ID, date(2026, time.March, 12), date(2026, time.March, 14)))
}

func TestIsAvailableScopedToProperty(t *testing.T) {
	db := newTestDB(t)
	host := seedUser(t, db, "Harriet Host", "harriet@example.com", 1)
	guest := seedUser(t, db, "Gerald Guest", "gerald@example.com", 0)
	propertyA := seedProperty(t, db, host.ID, "100", 0, 4)
	propertyB := seedProperty(t, db, host.ID, "150", 0, 4)

	seedBooking(t, db, guest.ID, propertyA.ID,
		date(2026, time.March, 10), date(2026, time.March, 15), models.BookingStatusConfirmed)

	svc := NewAvailabilityService(db, nil)
	assert.True(t, svc.IsAvailable(propertyB.ID, date(2026, time.March, 10), date(2026, time.March, 15)))
}

func TestIsAvailableFailsClosed(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Migrator().DropTable(&models.Booking{}))

	svc := NewAvailabilityService(db, nil)
	assert.False(t, svc.IsAvailable(1, date(2026, time.March, 10), date(2026, time.March, 15)),
		"a failing availability query must refuse the booking, not allow it")
}
