package services

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/test-kooza/rental-management-system-sub001/constants"
	"github.com/test-kooza/rental-management-system-sub001/errors"
	"github.com/test-kooza/rental-management-system-sub001/models"
	"github.com/test-kooza/rental-management-system-sub001/services/logger"
)

// ChatService persists conversation messages and publishes them on the
// conversation channel for connected clients.
type ChatService struct {
	db            *gorm.DB
	hub           *ChannelHub
	notifications *NotificationService
	log           logger.Logger
}

// MessageEvent is the payload published on a conversation channel. The
// correlation id lets the sender replace its optimistic placeholder.
type MessageEvent struct {
	ConversationID uint   `json:"conversationId"`
	MessageID      uint   `json:"messageId"`
	SenderID       uint   `json:"senderId"`
	Body           string `json:"body"`
	CorrelationID  string `json:"correlationId"`
	CreatedAt      string `json:"createdAt"`
}

// NewChatService builds a ChatService.
func NewChatService(db *gorm.DB, hub *ChannelHub, notifications *NotificationService, log logger.Logger) *ChatService {
	if log == nil {
		log = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &ChatService{db: db, hub: hub, notifications: notifications, log: log}
}

// OpenConversation finds or creates the conversation between a guest and the
// host of a property.
func (s *ChatService) OpenConversation(guestID, hostID, propertyID uint) (*models.Conversation, error) {
	var conversation models.Conversation
	err := s.db.Where("guest_id = ? AND host_id = ? AND property_id = ?", guestID, hostID, propertyID).
		First(&conversation).Error
	if err == nil {
		return &conversation, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Could not load conversation", err)
	}

	conversation = models.Conversation{GuestID: guestID, HostID: hostID, PropertyID: propertyID}
	if err := s.db.Create(&conversation).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Could not create conversation", err)
	}
	return &conversation, nil
}

// SendMessage persists the message, then publishes it with the caller's
// correlation id. Persist-then-publish: a message that reached the store is
// delivered on reconnect even if the live publish is missed.
func (s *ChatService) SendMessage(senderID, conversationID uint, body, correlationID string) (*models.Message, error) {
	if body == "" {
		return nil, errors.NewAppError(errors.ErrCodeRequiredField, "Message body cannot be empty", nil)
	}

	var conversation models.Conversation
	if err := s.db.First(&conversation, conversationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeDBNotFound, "Conversation not found", err)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Could not load conversation", err)
	}
	if !conversation.Participant(senderID) {
		return nil, errors.NewAppError(errors.ErrCodeForbidden, "Not a participant of this conversation", nil)
	}

	message := models.Message{
		ConversationID: conversationID,
		SenderID:       senderID,
		Body:           body,
		CorrelationID:  correlationID,
	}
	if err := s.db.Create(&message).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Could not save message", err)
	}

	event := MessageEvent{
		ConversationID: conversationID,
		MessageID:      message.ID,
		SenderID:       senderID,
		Body:           body,
		CorrelationID:  correlationID,
		CreatedAt:      message.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if err := s.hub.Publish(ConversationChannel(conversationID), event); err != nil {
		s.log.Error("message %d saved but not published: %v", message.ID, err)
	}

	recipient := conversation.Counterparty(senderID)
	text := fmt.Sprintf("New message in conversation %d", conversationID)
	if _, err := s.notifications.Emit(recipient, constants.NotificationMessageReceived, text, nil); err != nil {
		s.log.Error("message %d saved but recipient not notified: %v", message.ID, err)
	}

	return &message, nil
}

// History returns the conversation's messages, oldest first.
func (s *ChatService) History(userID, conversationID uint, page, limit int) ([]models.Message, int64, error) {
	var conversation models.Conversation
	if err := s.db.First(&conversation, conversationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, errors.NewAppError(errors.ErrCodeDBNotFound, "Conversation not found", err)
		}
		return nil, 0, errors.NewAppError(errors.ErrCodeDBError, "Could not load conversation", err)
	}
	if !conversation.Participant(userID) {
		return nil, 0, errors.NewAppError(errors.ErrCodeForbidden, "Not a participant of this conversation", nil)
	}

	var total int64
	if err := s.db.Model(&models.Message{}).Where("conversation_id = ?", conversationID).Count(&total).Error; err != nil {
		return nil, 0, errors.NewAppError(errors.ErrCodeDBError, "Could not count messages", err)
	}

	var messages []models.Message
	err := s.db.Where("conversation_id = ?", conversationID).
		Order("created_at ASC").
		Offset(page * limit).
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, 0, errors.NewAppError(errors.ErrCodeDBError, "Could not list messages", err)
	}

	return messages, total, nil
}

// ListConversations returns every conversation the user participates in.
func (s *ChatService) ListConversations(userID uint) ([]models.Conversation, error) {
	var conversations []models.Conversation
	err := s.db.Where("guest_id = ? OR host_id = ?", userID, userID).
		Order("updated_at DESC").
		Find(&conversations).Error
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Could not list conversations", err)
	}
	return conversations, nil
}
