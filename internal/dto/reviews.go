package dto

import "github.com/google/uuid"

// CreateReviewRequest is the review submission form.
type CreateReviewRequest struct {
	Rating     int      `json:"rating"`
	Title      *string  `json:"title,omitempty"`
	Content    string   `json:"content"`
	AuthorName *string  `json:"author_name,omitempty"`
	Images     []string `json:"images,omitempty"`
}

// ReviewListFilter scopes review listings.
type ReviewListFilter struct {
	BusinessID *uuid.UUID
	Status     string
	Page       int
	PerPage    int
}
