package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/ngongmathias/Bara-prototype-sub001/internal/dto"
	"github.com/ngongmathias/Bara-prototype-sub001/internal/entity"
	"github.com/ngongmathias/Bara-prototype-sub001/internal/repository"
	"github.com/ngongmathias/Bara-prototype-sub001/internal/service/listing"
)

// MarketplaceService handles classified listings.
type MarketplaceService struct {
	repo     repository.MarketplaceRepository
	contacts *ContactNormalizer
}

// NewMarketplaceService wires the marketplace service.
func NewMarketplaceService(repo repository.MarketplaceRepository, contacts *ContactNormalizer) *MarketplaceService {
	if contacts == nil {
		contacts = NewContactNormalizer("")
	}
	return &MarketplaceService{repo: repo, contacts: contacts}
}

// List returns one page of listings.
func (s *MarketplaceService) List(ctx context.Context, filter dto.MarketplaceListFilter) (dto.ListResponse[entity.MarketplaceListing], error) {
	if filter.MinPrice != nil && filter.MaxPrice != nil && *filter.MinPrice > *filter.MaxPrice {
		return dto.ListResponse[entity.MarketplaceListing]{}, invalidf("min_price must not exceed max_price")
	}
	rows, err := s.repo.List(ctx, filter)
	if err != nil {
		return dto.ListResponse[entity.MarketplaceListing]{}, err
	}
	items, page := listing.Marketplace(rows, filter)
	return dto.ListResponse[entity.MarketplaceListing]{Items: items, Pagination: page}, nil
}

// Get returns one listing. When publicOnly is set, listings that are not
// active or sold are reported as missing.
func (s *MarketplaceService) Get(ctx context.Context, id string, publicOnly bool) (*entity.MarketplaceListing, error) {
	listingID, err := uuid.Parse(id)
	if err != nil {
		return nil, repository.ErrListingNotFound
	}
	item, err := s.repo.Get(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if publicOnly && item.Status != entity.ListingStatusActive && item.Status != entity.ListingStatusSold {
		return nil, repository.ErrListingNotFound
	}
	return item, nil
}

// Create validates a submission and stores it as pending.
func (s *MarketplaceService) Create(ctx context.Context, req dto.CreateMarketplaceRequest, sellerID *uuid.UUID) (*entity.MarketplaceListing, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, invalidf("title is required")
	}
	if req.Price < 0 {
		return nil, invalidf("price must not be negative")
	}
	currency, err := optionalCurrency(&req.Currency)
	if err != nil {
		return nil, err
	}
	if currency == nil {
		return nil, invalidf("currency is required")
	}
	condition := strings.ToLower(strings.TrimSpace(req.Condition))
	if !validCondition(condition) {
		return nil, invalidf("condition must be one of %s", strings.Join(entity.ListingConditions, ", "))
	}

	item := &entity.MarketplaceListing{
		Title:       title,
		Description: trimmedOrNil(req.Description),
		Price:       req.Price,
		Currency:    *currency,
		Condition:   condition,
		Status:      entity.ListingStatusPending,
		CategoryID:  req.CategoryID,
		CountryID:   req.CountryID,
		CityID:      req.CityID,
		SellerID:    sellerID,
		Images:      req.Images,
	}
	if item.Images == nil {
		item.Images = []string{}
	}
	if item.ContactPhone, err = optionalContact(req.ContactPhone, func(raw string) (string, error) {
		return s.contacts.Phone(raw, "")
	}); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, item); err != nil {
		if errors.Is(err, repository.ErrInvalidReference) {
			return nil, invalidf("category_id, country_id or city_id does not exist")
		}
		return nil, err
	}
	return item, nil
}

// SetStatus moves a listing through its lifecycle.
func (s *MarketplaceService) SetStatus(ctx context.Context, id, status string) error {
	listingID, err := uuid.Parse(id)
	if err != nil {
		return invalidf("invalid listing id")
	}
	st := entity.ListingStatus(strings.ToLower(strings.TrimSpace(status)))
	if !entity.ValidMarketplaceStatus(st) {
		return invalidf("invalid marketplace status %q", status)
	}
	return s.repo.SetStatus(ctx, listingID, st)
}

// Delete removes a listing.
func (s *MarketplaceService) Delete(ctx context.Context, id string) error {
	listingID, err := uuid.Parse(id)
	if err != nil {
		return invalidf("invalid listing id")
	}
	return s.repo.Delete(ctx, listingID)
}

func validCondition(condition string) bool {
	for _, c := range entity.ListingConditions {
		if c == condition {
			return true
		}
	}
	return false
}

func optionalCurrency(raw *string) (*string, error) {
	value := trimmedOrNil(raw)
	if value == nil {
		return nil, nil
	}
	code := strings.ToUpper(*value)
	if len(code) != 3 {
		return nil, invalidf("currency must be a 3-letter code")
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return nil, invalidf("currency must be a 3-letter code")
		}
	}
	return &code, nil
}
