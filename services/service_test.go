package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/test-kooza/rental-management-system-sub001/constants"
	"github.com/test-kooza/rental-management-system-sub001/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// a second pool connection would get its own empty in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Property{},
		&models.Booking{},
		&models.Notification{},
		&models.Conversation{},
		&models.Message{},
	))

	return db
}

func seedUser(t *testing.T, db *gorm.DB, name, email string, role int) *models.User {
	t.Helper()

	user := models.User{Name: name, Email: email, Role: role, Status: constants.UserStatusActive}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func seedProperty(t *testing.T, db *gorm.DB, hostID uint, basePrice string, discount float64, maxGuests int) *models.Property {
	t.Helper()

	price, err := decimal.NewFromString(basePrice)
	require.NoError(t, err)

	property := models.Property{
		HostID:             hostID,
		Name:               "Lakeside Cottage",
		Address:            "12 Shore Road",
		City:               "Entebbe",
		BasePrice:          price,
		DiscountPercentage: discount,
		Currency:           "USD",
		MaxGuests:          maxGuests,
		Status:             constants.PropertyStatusActive,
	}
	require.NoError(t, db.Create(&property).Error)
	return &property
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func newTestReservationService(db *gorm.DB) (*ReservationService, *NotificationService) {
	notifications := NewNotificationService(db, NewChannelHub(nil), nil)
	return NewReservationService(db, notifications, nil, nil), notifications
}
