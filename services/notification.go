package services

import (
	"gorm.io/gorm"

	"github.com/test-kooza/rental-management-system-sub001/errors"
	"github.com/test-kooza/rental-management-system-sub001/models"
	"github.com/test-kooza/rental-management-system-sub001/services/logger"
)

// NotificationService persists notifications and pushes them to the
// recipient's websocket channel.
type NotificationService struct {
	db  *gorm.DB
	hub *ChannelHub
	log logger.Logger
}

// NewNotificationService builds a NotificationService.
func NewNotificationService(db *gorm.DB, hub *ChannelHub, log logger.Logger) *NotificationService {
	if log == nil {
		log = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &NotificationService{db: db, hub: hub, log: log}
}

// Emit creates a notification row and publishes it to the recipient's
// channel. The publish is best effort; the row is the source of truth.
func (s *NotificationService) Emit(userID uint, ntype string, message string, bookingID *uint) (*models.Notification, error) {
	notification := models.Notification{
		UserID:    userID,
		Type:      ntype,
		Message:   message,
		BookingID: bookingID,
	}

	if err := s.db.Create(&notification).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Could not create notification", err)
	}

	if err := s.hub.Publish(UserChannel(userID), notification); err != nil {
		s.log.Error("notification %d created but not delivered to channel: %v", notification.ID, err)
	}

	return &notification, nil
}

// ListForUser returns the recipient's notifications, newest first.
func (s *NotificationService) ListForUser(userID uint, page, limit int) ([]models.Notification, int64, error) {
	var total int64
	if err := s.db.Model(&models.Notification{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, errors.NewAppError(errors.ErrCodeDBError, "Could not count notifications", err)
	}

	var notifications []models.Notification
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(page * limit).
		Limit(limit).
		Find(&notifications).Error
	if err != nil {
		return nil, 0, errors.NewAppError(errors.ErrCodeDBError, "Could not list notifications", err)
	}

	return notifications, total, nil
}

// MarkRead flags one notification as read, scoped to its recipient.
func (s *NotificationService) MarkRead(userID, notificationID uint) error {
	result := s.db.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Update("is_read", true)
	if result.Error != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Could not update notification", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewAppError(errors.ErrCodeDBNotFound, "Notification not found", nil)
	}
	return nil
}

// MarkAllRead flags every unread notification of the recipient as read.
func (s *NotificationService) MarkAllRead(userID uint) (int64, error) {
	result := s.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true)
	if result.Error != nil {
		return 0, errors.NewAppError(errors.ErrCodeDBError, "Could not update notifications", result.Error)
	}
	return result.RowsAffected, nil
}
