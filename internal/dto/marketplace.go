package dto

import "github.com/google/uuid"

// MarketplaceListFilter contains query parameters for marketplace listings.
// Status, Country and Category scope the SQL query.
type MarketplaceListFilter struct {
	Status   string
	Country  string
	Category string

	Q          string
	Condition  string
	Currency   string
	MinPrice   *float64
	MaxPrice   *float64
	WithImages bool
	Sort       string
	Page       int
	PerPage    int
}

// CreateMarketplaceRequest is the listing submission form.
type CreateMarketplaceRequest struct {
	Title        string     `json:"title"`
	Description  *string    `json:"description,omitempty"`
	Price        float64    `json:"price"`
	Currency     string     `json:"currency"`
	Condition    string     `json:"condition"`
	CategoryID   *uuid.UUID `json:"category_id,omitempty"`
	CountryID    *uuid.UUID `json:"country_id,omitempty"`
	CityID       *uuid.UUID `json:"city_id,omitempty"`
	ContactPhone *string    `json:"contact_phone,omitempty"`
	Images       []string   `json:"images,omitempty"`
}
