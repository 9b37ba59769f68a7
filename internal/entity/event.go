package entity

import (
	"time"

	"github.com/google/uuid"
)

// Event is a dated happening at a venue.
type Event struct {
	ID             uuid.UUID     `json:"id"`
	Title          string        `json:"title"`
	Description    *string       `json:"description,omitempty"`
	Category       *string       `json:"category,omitempty"`
	StartsAt       time.Time     `json:"starts_at"`
	EndsAt         *time.Time    `json:"ends_at,omitempty"`
	VenueName      *string       `json:"venue_name,omitempty"`
	VenueAddress   *string       `json:"venue_address,omitempty"`
	Latitude       *float64      `json:"latitude,omitempty"`
	Longitude      *float64      `json:"longitude,omitempty"`
	CountryID      *uuid.UUID    `json:"country_id,omitempty"`
	CityID         *uuid.UUID    `json:"city_id,omitempty"`
	OrganizerName  *string       `json:"organizer_name,omitempty"`
	OrganizerEmail *string       `json:"organizer_email,omitempty"`
	OrganizerPhone *string       `json:"organizer_phone,omitempty"`
	TicketURL      *string       `json:"ticket_url,omitempty"`
	IsFree         bool          `json:"is_free"`
	Price          *float64      `json:"price,omitempty"`
	Currency       *string       `json:"currency,omitempty"`
	Tags           []string      `json:"tags"`
	ImageURL       *string       `json:"image_url,omitempty"`
	Status         ListingStatus `json:"status"`
	CreatedBy      *uuid.UUID    `json:"created_by,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}
