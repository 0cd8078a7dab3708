package dto

// CreatePropertyRequest is the host's listing payload.
type CreatePropertyRequest struct {
	Name               string  `json:"name" binding:"required"`
	Description        string  `json:"description"`
	Address            string  `json:"address" binding:"required"`
	City               string  `json:"city" binding:"required"`
	Country            string  `json:"country"`
	BasePrice          string  `json:"basePrice" binding:"required"`
	DiscountPercentage float64 `json:"discountPercentage" binding:"min=0,max=100"`
	Currency           string  `json:"currency"`
	MaxGuests          int     `json:"maxGuests" binding:"required,min=1"`
	Bedrooms           int     `json:"bedrooms"`
	Bathrooms          int     `json:"bathrooms"`
	Avatar             string  `json:"avatar"`
}

// PropertyResponse is the API shape of a listing.
type PropertyResponse struct {
	ID                 uint    `json:"id"`
	HostID             uint    `json:"hostId"`
	Name               string  `json:"name"`
	Description        string  `json:"description"`
	Address            string  `json:"address"`
	City               string  `json:"city"`
	Country            string  `json:"country"`
	BasePrice          string  `json:"basePrice"`
	DiscountPercentage float64 `json:"discountPercentage"`
	Currency           string  `json:"currency"`
	MaxGuests          int     `json:"maxGuests"`
	Bedrooms           int     `json:"bedrooms"`
	Bathrooms          int     `json:"bathrooms"`
	Avatar             string  `json:"avatar"`
	Status             int     `json:"status"`
	Rating             float64 `json:"rating"`
}
