package entity

import (
	"time"

	"github.com/google/uuid"
)

// Business is a directory entry.
type Business struct {
	ID            uuid.UUID     `json:"id"`
	Slug          string        `json:"slug"`
	Name          string        `json:"name"`
	Description   *string       `json:"description,omitempty"`
	CategoryID    *uuid.UUID    `json:"category_id,omitempty"`
	CategoryName  *string       `json:"category_name,omitempty"`
	CategorySlug  *string       `json:"category_slug,omitempty"`
	CountryID     *uuid.UUID    `json:"country_id,omitempty"`
	CountryCode   *string       `json:"country_code,omitempty"`
	CityID        *uuid.UUID    `json:"city_id,omitempty"`
	CityName      *string       `json:"city_name,omitempty"`
	Address       *string       `json:"address,omitempty"`
	Phone         *string       `json:"phone,omitempty"`
	Email         *string       `json:"email,omitempty"`
	Website       *string       `json:"website,omitempty"`
	WhatsApp      *string       `json:"whatsapp,omitempty"`
	Latitude      *float64      `json:"latitude,omitempty"`
	Longitude     *float64      `json:"longitude,omitempty"`
	LogoURL       *string       `json:"logo_url,omitempty"`
	Images        []string      `json:"images"`
	IsPremium     bool          `json:"is_premium"`
	IsVerified    bool          `json:"is_verified"`
	IsSponsoredAd bool          `json:"is_sponsored_ad"`
	Status        ListingStatus `json:"status"`
	OwnerID       *uuid.UUID    `json:"owner_id,omitempty"`
	// Ratings holds the approved review ratings loaded alongside the row.
	Ratings   []int     `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Click kinds recorded for businesses.
const (
	ClickWebsite    = "website"
	ClickPhone      = "phone"
	ClickDirections = "directions"
	ClickWhatsApp   = "whatsapp"
	ClickEmail      = "email"
)

// BusinessClick is an outbound interaction with a business profile.
type BusinessClick struct {
	BusinessID uuid.UUID
	Kind       string
	UserID     *uuid.UUID
	ClientIP   string
	UserAgent  string
}
