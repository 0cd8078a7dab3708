package models

import "time"

type Notification struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"userId" gorm:"index;not null"`
	User      *User     `json:"user,omitempty" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;foreignKey:UserID;references:ID"`
	Type      string    `json:"type" gorm:"size:32;not null"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	IsRead    bool      `json:"isRead" gorm:"default:false"`
	BookingID *uint     `json:"bookingId,omitempty" gorm:"index"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
