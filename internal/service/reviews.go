package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/ngongmathias/Bara-prototype-sub001/internal/dto"
	"github.com/ngongmathias/Bara-prototype-sub001/internal/entity"
	"github.com/ngongmathias/Bara-prototype-sub001/internal/repository"
	"github.com/ngongmathias/Bara-prototype-sub001/internal/service/listing"
)

const maxReviewLength = 5000

// ReviewsService handles review submission and moderation.
type ReviewsService struct {
	repo       repository.ReviewsRepository
	businesses repository.BusinessesRepository
}

// NewReviewsService wires the reviews service.
func NewReviewsService(repo repository.ReviewsRepository, businesses repository.BusinessesRepository) *ReviewsService {
	return &ReviewsService{repo: repo, businesses: businesses}
}

// Create stores a pending review on an active business.
func (s *ReviewsService) Create(ctx context.Context, businessIDOrSlug string, req dto.CreateReviewRequest, userID *uuid.UUID) (*entity.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, invalidf("rating must be between 1 and 5")
	}
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, invalidf("content is required")
	}
	if utf8.RuneCountInString(content) > maxReviewLength {
		return nil, invalidf("content must not exceed %d characters", maxReviewLength)
	}

	business, err := s.activeBusiness(ctx, businessIDOrSlug)
	if err != nil {
		return nil, err
	}

	review := &entity.Review{
		BusinessID: business.ID,
		UserID:     userID,
		AuthorName: trimmedOrNil(req.AuthorName),
		Rating:     req.Rating,
		Title:      trimmedOrNil(req.Title),
		Content:    content,
		Images:     req.Images,
		Status:     entity.ReviewStatusPending,
	}
	if review.Images == nil {
		review.Images = []string{}
	}
	if err := s.repo.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// ListApproved returns the approved reviews of a business, newest first.
func (s *ReviewsService) ListApproved(ctx context.Context, businessIDOrSlug string, page, perPage int) (dto.ListResponse[entity.Review], error) {
	business, err := s.activeBusiness(ctx, businessIDOrSlug)
	if err != nil {
		return dto.ListResponse[entity.Review]{}, err
	}
	return s.list(ctx, dto.ReviewListFilter{
		BusinessID: &business.ID,
		Status:     string(entity.ReviewStatusApproved),
		Page:       page,
		PerPage:    perPage,
	})
}

// ListForModeration returns reviews in any status for the back-office.
func (s *ReviewsService) ListForModeration(ctx context.Context, filter dto.ReviewListFilter) (dto.ListResponse[entity.Review], error) {
	if filter.Status != "" && !entity.ValidReviewStatus(entity.ReviewStatus(filter.Status)) {
		return dto.ListResponse[entity.Review]{}, invalidf("invalid review status %q", filter.Status)
	}
	return s.list(ctx, filter)
}

// SetStatus moderates a review.
func (s *ReviewsService) SetStatus(ctx context.Context, id, status string) error {
	reviewID, err := uuid.Parse(id)
	if err != nil {
		return invalidf("invalid review id")
	}
	st := entity.ReviewStatus(strings.ToLower(strings.TrimSpace(status)))
	if !entity.ValidReviewStatus(st) {
		return invalidf("invalid review status %q", status)
	}
	return s.repo.SetStatus(ctx, reviewID, st)
}

// Delete removes a review.
func (s *ReviewsService) Delete(ctx context.Context, id string) error {
	reviewID, err := uuid.Parse(id)
	if err != nil {
		return invalidf("invalid review id")
	}
	return s.repo.Delete(ctx, reviewID)
}

// activeBusiness hides businesses that are not publicly visible.
func (s *ReviewsService) activeBusiness(ctx context.Context, idOrSlug string) (*entity.Business, error) {
	business, err := s.businesses.Get(ctx, idOrSlug)
	if err != nil {
		return nil, err
	}
	if business.Status != entity.ListingStatusActive {
		return nil, repository.ErrBusinessNotFound
	}
	return business, nil
}

func (s *ReviewsService) list(ctx context.Context, filter dto.ReviewListFilter) (dto.ListResponse[entity.Review], error) {
	filter.Page, filter.PerPage = listing.NormalizePage(filter.Page, filter.PerPage)
	reviews, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return dto.ListResponse[entity.Review]{}, err
	}
	if reviews == nil {
		reviews = []entity.Review{}
	}
	return dto.ListResponse[entity.Review]{
		Items:      reviews,
		Pagination: listing.PageOf(total, filter.Page, filter.PerPage),
	}, nil
}
