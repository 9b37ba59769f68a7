package entity

import (
	"time"

	"github.com/google/uuid"
)

// Country is a browsable country.
type Country struct {
	ID        uuid.UUID `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	FlagURL   *string   `json:"flag_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// City belongs to a country.
type City struct {
	ID        uuid.UUID `json:"id"`
	CountryID uuid.UUID `json:"country_id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Category groups businesses and marketplace listings.
type Category struct {
	ID        uuid.UUID  `json:"id"`
	ParentID  *uuid.UUID `json:"parent_id,omitempty"`
	Slug      string     `json:"slug"`
	Name      string     `json:"name"`
	Icon      *string    `json:"icon,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
