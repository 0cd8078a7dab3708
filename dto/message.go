package dto

import "time"

// OpenConversationRequest starts (or resumes) a guest-host conversation.
type OpenConversationRequest struct {
	PropertyID uint `json:"propertyId" binding:"required"`
}

// SendMessageRequest carries a chat message plus the client correlation id
// used for optimistic-UI reconciliation.
type SendMessageRequest struct {
	ConversationID uint   `json:"conversationId" binding:"required"`
	Body           string `json:"body" binding:"required"`
	CorrelationID  string `json:"correlationId"`
}

// MessageResponse is the API shape of a stored message.
type MessageResponse struct {
	ID             uint      `json:"id"`
	ConversationID uint      `json:"conversationId"`
	SenderID       uint      `json:"senderId"`
	Body           string    `json:"body"`
	CorrelationID  string    `json:"correlationId"`
	CreatedAt      time.Time `json:"createdAt"`
}
