package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Property struct {
	ID                 uint            `json:"id" gorm:"primaryKey"`
	HostID             uint            `json:"hostId" gorm:"index;not null"`
	Host               *User           `json:"host,omitempty" gorm:"foreignKey:HostID"`
	Name               string          `json:"name" gorm:"not null"`
	Description        string          `json:"description" gorm:"type:text"`
	Address            string          `json:"address"`
	City               string          `json:"city" gorm:"index"`
	Country            string          `json:"country"`
	BasePrice          decimal.Decimal `json:"basePrice" gorm:"type:numeric"` // nightly rate, unconstrained scale: rounding happens at presentation only
	DiscountPercentage float64         `json:"discountPercentage" gorm:"default:0"` // 0-100
	Currency           string          `json:"currency" gorm:"size:3;default:'USD'"`
	MaxGuests          int             `json:"maxGuests" gorm:"default:1"`
	Bedrooms           int             `json:"bedrooms"`
	Bathrooms          int             `json:"bathrooms"`
	Avatar             string          `json:"avatar"`
	Status             int             `json:"status" gorm:"default:1"`
	Rating             float64         `json:"rating" gorm:"default:0"`
	CreatedAt          time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt          time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
}
