package dto

import (
	"github.com/google/uuid"

	"github.com/ngongmathias/Bara-prototype-sub001/internal/entity"
)

// CreateCountryRequest adds a browsable country.
type CreateCountryRequest struct {
	Code    string  `json:"code"`
	Name    string  `json:"name"`
	Slug    string  `json:"slug,omitempty"`
	FlagURL *string `json:"flag_url,omitempty"`
}

// CreateCityRequest adds a city to a country.
type CreateCityRequest struct {
	CountryID uuid.UUID `json:"country_id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug,omitempty"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
}

// CreateCategoryRequest adds a category.
type CreateCategoryRequest struct {
	Name     string     `json:"name"`
	Slug     string     `json:"slug,omitempty"`
	Icon     *string    `json:"icon,omitempty"`
	ParentID *uuid.UUID `json:"parent_id,omitempty"`
}

// CountrySummary is a country page: the country, its cities and how many
// active businesses it lists.
type CountrySummary struct {
	Country       entity.Country `json:"country"`
	Cities        []entity.City  `json:"cities"`
	BusinessCount int            `json:"business_count"`
}

// UploadResponse describes a stored image.
type UploadResponse struct {
	URL         string `json:"url"`
	Path        string `json:"path"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}
