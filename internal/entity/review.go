package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review is a rating left on a business.
type Review struct {
	ID         uuid.UUID    `json:"id"`
	BusinessID uuid.UUID    `json:"business_id"`
	UserID     *uuid.UUID   `json:"user_id,omitempty"`
	AuthorName *string      `json:"author_name,omitempty"`
	Rating     int          `json:"rating"`
	Title      *string      `json:"title,omitempty"`
	Content    string       `json:"content"`
	Images     []string     `json:"images"`
	Status     ReviewStatus `json:"status"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}
