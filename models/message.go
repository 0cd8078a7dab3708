package models

import "time"

type Conversation struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	GuestID    uint      `json:"guestId" gorm:"index;not null"`
	HostID     uint      `json:"hostId" gorm:"index;not null"`
	PropertyID uint      `json:"propertyId" gorm:"index"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

type Message struct {
	ID             uint         `json:"id" gorm:"primaryKey"`
	ConversationID uint         `json:"conversationId" gorm:"index;not null"`
	Conversation   Conversation `json:"-" gorm:"foreignKey:ConversationID"`
	SenderID       uint         `json:"senderId" gorm:"index;not null"`
	Body           string       `json:"body" gorm:"type:text;not null"`
	// CorrelationID is supplied by the client so it can reconcile its
	// optimistic placeholder once the published message comes back.
	CorrelationID string    `json:"correlationId" gorm:"size:64"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// Participant reports whether userID belongs to the conversation.
func (c *Conversation) Participant(userID uint) bool {
	return c.GuestID == userID || c.HostID == userID
}

// Counterparty returns the other side of the conversation.
func (c *Conversation) Counterparty(userID uint) uint {
	if c.GuestID == userID {
		return c.HostID
	}
	return c.GuestID
}
