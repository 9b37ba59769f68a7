package dto

import (
	"time"

	"github.com/google/uuid"
)

// EventListFilter contains query parameters for event listings. Status,
// Country and City scope the SQL query.
type EventListFilter struct {
	Status  string
	Country string
	City    string

	Q        string
	Category string
	Tag      string
	FreeOnly bool
	From     *time.Time
	To       *time.Time
	Upcoming bool
	Now      time.Time
	Sort     string
	Page     int
	PerPage  int
}

// CreateEventRequest is the event submission form.
type CreateEventRequest struct {
	Title          string     `json:"title"`
	Description    *string    `json:"description,omitempty"`
	Category       *string    `json:"category,omitempty"`
	StartsAt       *time.Time `json:"starts_at"`
	EndsAt         *time.Time `json:"ends_at,omitempty"`
	VenueName      *string    `json:"venue_name,omitempty"`
	VenueAddress   *string    `json:"venue_address,omitempty"`
	Latitude       *float64   `json:"latitude,omitempty"`
	Longitude      *float64   `json:"longitude,omitempty"`
	CountryID      *uuid.UUID `json:"country_id,omitempty"`
	CityID         *uuid.UUID `json:"city_id,omitempty"`
	OrganizerName  *string    `json:"organizer_name,omitempty"`
	OrganizerEmail *string    `json:"organizer_email,omitempty"`
	OrganizerPhone *string    `json:"organizer_phone,omitempty"`
	TicketURL      *string    `json:"ticket_url,omitempty"`
	Price          *float64   `json:"price,omitempty"`
	Currency       *string    `json:"currency,omitempty"`
	Tags           []string   `json:"tags,omitempty"`
	ImageURL       *string    `json:"image_url,omitempty"`
}

// UpdateEventRequest captures administrator-triggered partial updates.
type UpdateEventRequest struct {
	Title        *string    `json:"title,omitempty"`
	Description  *string    `json:"description,omitempty"`
	Category     *string    `json:"category,omitempty"`
	StartsAt     *time.Time `json:"starts_at,omitempty"`
	EndsAt       *time.Time `json:"ends_at,omitempty"`
	VenueName    *string    `json:"venue_name,omitempty"`
	VenueAddress *string    `json:"venue_address,omitempty"`
	TicketURL    *string    `json:"ticket_url,omitempty"`
	Price        *float64   `json:"price,omitempty"`
	Tags         []string   `json:"tags,omitempty"`
	ImageURL     *string    `json:"image_url,omitempty"`
}
