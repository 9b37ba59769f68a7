package entity

import (
	"time"

	"github.com/google/uuid"
)

// Item conditions accepted on marketplace listings.
var ListingConditions = []string{"new", "like_new", "good", "fair", "poor"}

// MarketplaceListing is an item offered for sale.
type MarketplaceListing struct {
	ID           uuid.UUID     `json:"id"`
	Title        string        `json:"title"`
	Description  *string       `json:"description,omitempty"`
	Price        float64       `json:"price"`
	Currency     string        `json:"currency"`
	Condition    string        `json:"condition"`
	Status       ListingStatus `json:"status"`
	CategoryID   *uuid.UUID    `json:"category_id,omitempty"`
	CountryID    *uuid.UUID    `json:"country_id,omitempty"`
	CityID       *uuid.UUID    `json:"city_id,omitempty"`
	SellerID     *uuid.UUID    `json:"seller_id,omitempty"`
	ContactPhone *string       `json:"contact_phone,omitempty"`
	Images       []string      `json:"images"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}
