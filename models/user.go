package models

import (
	"time"

	"github.com/lib/pq"
)

type User struct {
	ID          uint          `json:"id" gorm:"primaryKey"`
	Name        string        `json:"name"`
	Email       string        `json:"email" gorm:"unique;not null"`
	PhoneNumber string        `json:"phoneNumber"`
	Role        int           `json:"role" gorm:"default:0"` // 0: guest, 1: host, 2: admin
	Status      int           `json:"status" gorm:"default:1"`
	Avatar      string        `json:"avatar"`
	PropertyIDs pq.Int64Array `json:"propertyIds" gorm:"type:integer[]"` // properties managed by a host
	CreatedAt   time.Time     `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time     `gorm:"autoUpdateTime" json:"updatedAt"`
}
