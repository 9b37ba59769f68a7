package dto

import (
	"github.com/google/uuid"

	"github.com/ngongmathias/Bara-prototype-sub001/internal/entity"
)

// BusinessListFilter contains query parameters for business listing endpoints.
// Status, Country, City and Category scope the SQL query; the rest is applied
// in memory.
type BusinessListFilter struct {
	Status   string
	Country  string
	City     string
	Category string

	Search    string
	Q         string
	MinRating *float64
	MaxRating *float64
	Premium   *bool
	Verified  *bool
	Sponsored *bool
	Latitude  *float64
	Longitude *float64
	RadiusKm  float64
	Sort      string
	Page      int
	PerPage   int
}

// BusinessItem is a business with its derived listing fields.
type BusinessItem struct {
	entity.Business
	AverageRating float64       `json:"average_rating"`
	ReviewCount   int           `json:"review_count"`
	DisplayNumber int           `json:"display_number,omitempty"`
	MapsURL       string        `json:"maps_url,omitempty"`
	DistanceKm    *float64      `json:"distance_km,omitempty"`
	ProfileScore  *ProfileScore `json:"profile_score,omitempty"`
}

// ProfileScore rates how complete a business profile is, out of 100.
type ProfileScore struct {
	Total     int            `json:"total"`
	Breakdown map[string]int `json:"breakdown"`
}

// BusinessDetail is a single business with its approved reviews.
type BusinessDetail struct {
	BusinessItem
	Reviews []entity.Review `json:"reviews"`
}

// CreateBusinessRequest is the public listing submission form.
type CreateBusinessRequest struct {
	Name        string     `json:"name"`
	Description *string    `json:"description,omitempty"`
	CategoryID  *uuid.UUID `json:"category_id,omitempty"`
	CountryID   *uuid.UUID `json:"country_id,omitempty"`
	CityID      *uuid.UUID `json:"city_id,omitempty"`
	Address     *string    `json:"address,omitempty"`
	Phone       *string    `json:"phone,omitempty"`
	Email       *string    `json:"email,omitempty"`
	Website     *string    `json:"website,omitempty"`
	WhatsApp    *string    `json:"whatsapp,omitempty"`
	Latitude    *float64   `json:"latitude,omitempty"`
	Longitude   *float64   `json:"longitude,omitempty"`
	LogoURL     *string    `json:"logo_url,omitempty"`
	Images      []string   `json:"images,omitempty"`
}

// UpdateBusinessRequest captures administrator-triggered partial updates.
type UpdateBusinessRequest struct {
	Name          *string    `json:"name,omitempty"`
	Description   *string    `json:"description,omitempty"`
	CategoryID    *uuid.UUID `json:"category_id,omitempty"`
	CountryID     *uuid.UUID `json:"country_id,omitempty"`
	CityID        *uuid.UUID `json:"city_id,omitempty"`
	Address       *string    `json:"address,omitempty"`
	Phone         *string    `json:"phone,omitempty"`
	Email         *string    `json:"email,omitempty"`
	Website       *string    `json:"website,omitempty"`
	WhatsApp      *string    `json:"whatsapp,omitempty"`
	Latitude      *float64   `json:"latitude,omitempty"`
	Longitude     *float64   `json:"longitude,omitempty"`
	LogoURL       *string    `json:"logo_url,omitempty"`
	Images        []string   `json:"images,omitempty"`
	IsPremium     *bool      `json:"is_premium,omitempty"`
	IsVerified    *bool      `json:"is_verified,omitempty"`
	IsSponsoredAd *bool      `json:"is_sponsored_ad,omitempty"`
}

// ClickRequest records an outbound interaction on a business profile.
type ClickRequest struct {
	Kind string `json:"kind"`
}

// BusinessFlagsRequest toggles the promotion flags of a business.
type BusinessFlagsRequest struct {
	IsPremium     *bool `json:"is_premium,omitempty"`
	IsVerified    *bool `json:"is_verified,omitempty"`
	IsSponsoredAd *bool `json:"is_sponsored_ad,omitempty"`
}
