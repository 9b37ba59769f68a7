package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ngongmathias/Bara-prototype-sub001/internal/dto"
	"github.com/ngongmathias/Bara-prototype-sub001/internal/entity"
	"github.com/ngongmathias/Bara-prototype-sub001/internal/repository"
	"github.com/ngongmathias/Bara-prototype-sub001/internal/service/listing"
	"github.com/ngongmathias/Bara-prototype-sub001/internal/service/scoring"
)

const defaultClickTimeout = 1500 * time.Millisecond

var clickKinds = map[string]struct{}{
	entity.ClickWebsite:    {},
	entity.ClickPhone:      {},
	entity.ClickDirections: {},
	entity.ClickWhatsApp:   {},
	entity.ClickEmail:      {},
}

// BusinessesService exposes the business directory.
type BusinessesService struct {
	repo         repository.BusinessesRepository
	reviews      repository.ReviewsRepository
	locations    repository.LocationsRepository
	contacts     *ContactNormalizer
	clickTimeout time.Duration
}

// NewBusinessesService creates a new instance of BusinessesService.
func NewBusinessesService(
	repo repository.BusinessesRepository,
	reviews repository.ReviewsRepository,
	locations repository.LocationsRepository,
	contacts *ContactNormalizer,
	clickTimeout time.Duration,
) *BusinessesService {
	if contacts == nil {
		contacts = NewContactNormalizer("")
	}
	if clickTimeout <= 0 {
		clickTimeout = defaultClickTimeout
	}
	return &BusinessesService{
		repo:         repo,
		reviews:      reviews,
		locations:    locations,
		contacts:     contacts,
		clickTimeout: clickTimeout,
	}
}

// List returns one page of businesses with their derived listing fields.
func (s *BusinessesService) List(ctx context.Context, filter dto.BusinessListFilter) (dto.ListResponse[dto.BusinessItem], error) {
	applySearchPhrase(&filter)
	if filter.Latitude != nil || filter.Longitude != nil {
		if !listing.ValidCoordinates(filter.Latitude, filter.Longitude) {
			return dto.ListResponse[dto.BusinessItem]{}, invalidf("lat and lng must be given together and be valid coordinates")
		}
	}
	if filter.MinRating != nil && filter.MaxRating != nil && *filter.MinRating > *filter.MaxRating {
		return dto.ListResponse[dto.BusinessItem]{}, invalidf("min_rating must not exceed max_rating")
	}

	rows, err := s.repo.List(ctx, filter)
	if err != nil {
		return dto.ListResponse[dto.BusinessItem]{}, err
	}

	var origin *listing.Point
	if p, ok := listing.PointFrom(filter.Latitude, filter.Longitude); ok {
		origin = &p
	}

	items, page := listing.Businesses(listing.BusinessItems(rows, origin), filter)
	return dto.ListResponse[dto.BusinessItem]{Items: items, Pagination: page}, nil
}

// ListForAdmin is List with every item carrying its profile completeness score.
func (s *BusinessesService) ListForAdmin(ctx context.Context, filter dto.BusinessListFilter) (dto.ListResponse[dto.BusinessItem], error) {
	resp, err := s.List(ctx, filter)
	if err != nil {
		return resp, err
	}
	for i := range resp.Items {
		score := scoring.ComputeScore(resp.Items[i].Business)
		resp.Items[i].ProfileScore = &dto.ProfileScore{Total: score.Total, Breakdown: score.Breakdown}
	}
	return resp, nil
}

// Detail returns a business by id or slug with its approved reviews. When
// publicOnly is set, businesses that are not active are reported as missing.
func (s *BusinessesService) Detail(ctx context.Context, idOrSlug string, publicOnly bool) (*dto.BusinessDetail, error) {
	business, err := s.repo.Get(ctx, strings.TrimSpace(idOrSlug))
	if err != nil {
		return nil, err
	}
	if publicOnly && business.Status != entity.ListingStatusActive {
		return nil, repository.ErrBusinessNotFound
	}

	reviews, _, err := s.reviews.List(ctx, dto.ReviewListFilter{
		BusinessID: &business.ID,
		Status:     string(entity.ReviewStatusApproved),
		Page:       1,
		PerPage:    listing.MaxPerPage,
	})
	if err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = []entity.Review{}
	}

	item := listing.BusinessItems([]entity.Business{*business}, nil)[0]
	return &dto.BusinessDetail{BusinessItem: item, Reviews: reviews}, nil
}

// Create validates a public submission and stores it as pending.
func (s *BusinessesService) Create(ctx context.Context, req dto.CreateBusinessRequest, ownerID *uuid.UUID) (*entity.Business, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, invalidf("name is required")
	}
	if req.CategoryID == nil {
		return nil, invalidf("category_id is required")
	}
	if req.CountryID == nil {
		return nil, invalidf("country_id is required")
	}
	if (req.Latitude != nil || req.Longitude != nil) && !listing.ValidCoordinates(req.Latitude, req.Longitude) {
		return nil, invalidf("latitude and longitude must be given together and be valid coordinates")
	}

	country, err := s.locations.GetCountry(ctx, req.CountryID.String())
	if err != nil {
		if errors.Is(err, repository.ErrCountryNotFound) {
			return nil, invalidf("unknown country_id")
		}
		return nil, err
	}

	business := &entity.Business{
		Name:        name,
		Slug:        Slugify(name),
		Description: trimmedOrNil(req.Description),
		CategoryID:  req.CategoryID,
		CountryID:   req.CountryID,
		CityID:      req.CityID,
		Address:     trimmedOrNil(req.Address),
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		LogoURL:     trimmedOrNil(req.LogoURL),
		Images:      req.Images,
		Status:      entity.ListingStatusPending,
		OwnerID:     ownerID,
	}
	if business.Slug == "" {
		business.Slug = shortID()
	}
	if err := s.normalizeContacts(country.Code, &business.Phone, &business.WhatsApp, &business.Email, &business.Website,
		req.Phone, req.WhatsApp, req.Email, req.Website); err != nil {
		return nil, err
	}

	err = s.repo.Create(ctx, business)
	if errors.Is(err, repository.ErrSlugDuplicate) {
		business.Slug = business.Slug + "-" + shortID()
		err = s.repo.Create(ctx, business)
	}
	if err != nil {
		if errors.Is(err, repository.ErrInvalidReference) {
			return nil, invalidf("category_id, country_id or city_id does not exist")
		}
		return nil, err
	}
	return business, nil
}

// Update applies an administrator's partial update.
func (s *BusinessesService) Update(ctx context.Context, id string, req dto.UpdateBusinessRequest) (*entity.Business, error) {
	businessID, err := uuid.Parse(id)
	if err != nil {
		return nil, invalidf("invalid business id")
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, invalidf("name cannot be empty")
		}
		req.Name = &name
	}
	if (req.Latitude != nil || req.Longitude != nil) && !listing.ValidCoordinates(req.Latitude, req.Longitude) {
		return nil, invalidf("latitude and longitude must be given together and be valid coordinates")
	}

	if req.Phone != nil || req.WhatsApp != nil || req.Email != nil || req.Website != nil {
		current, err := s.repo.Get(ctx, businessID.String())
		if err != nil {
			return nil, err
		}
		region := ""
		if current.CountryCode != nil {
			region = *current.CountryCode
		}
		if err := s.normalizeContacts(region, &req.Phone, &req.WhatsApp, &req.Email, &req.Website,
			req.Phone, req.WhatsApp, req.Email, req.Website); err != nil {
			return nil, err
		}
	}

	business, err := s.repo.Update(ctx, businessID, req)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidReference) {
			return nil, invalidf("category_id, country_id or city_id does not exist")
		}
		return nil, err
	}
	return business, nil
}

// SetFlags toggles the premium, verified and sponsored flags.
func (s *BusinessesService) SetFlags(ctx context.Context, id string, req dto.BusinessFlagsRequest) (*entity.Business, error) {
	if req.IsPremium == nil && req.IsVerified == nil && req.IsSponsoredAd == nil {
		return nil, invalidf("at least one flag must be provided")
	}
	return s.Update(ctx, id, dto.UpdateBusinessRequest{
		IsPremium:     req.IsPremium,
		IsVerified:    req.IsVerified,
		IsSponsoredAd: req.IsSponsoredAd,
	})
}

// SetStatus moderates a business.
func (s *BusinessesService) SetStatus(ctx context.Context, id, status string) error {
	businessID, err := uuid.Parse(id)
	if err != nil {
		return invalidf("invalid business id")
	}
	st := entity.ListingStatus(strings.ToLower(strings.TrimSpace(status)))
	if !entity.ValidBusinessStatus(st) {
		return invalidf("invalid business status %q", status)
	}
	return s.repo.SetStatus(ctx, businessID, st)
}

// Delete removes a business.
func (s *BusinessesService) Delete(ctx context.Context, id string) error {
	businessID, err := uuid.Parse(id)
	if err != nil {
		return invalidf("invalid business id")
	}
	return s.repo.Delete(ctx, businessID)
}

// RecordClick logs an outbound interaction. It never blocks longer than the
// configured click timeout; when the deadline passes it reports false with a
// nil error and the click is dropped.
func (s *BusinessesService) RecordClick(ctx context.Context, id, kind string, userID *uuid.UUID, clientIP, userAgent string) (bool, error) {
	businessID, err := uuid.Parse(id)
	if err != nil {
		return false, invalidf("invalid business id")
	}
	kind = strings.ToLower(strings.TrimSpace(kind))
	if _, ok := clickKinds[kind]; !ok {
		return false, invalidf("unknown click kind %q", kind)
	}

	ctx, cancel := context.WithTimeout(ctx, s.clickTimeout)
	defer cancel()

	err = s.repo.RecordClick(ctx, entity.BusinessClick{
		BusinessID: businessID,
		Kind:       kind,
		UserID:     userID,
		ClientIP:   clientIP,
		UserAgent:  userAgent,
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			log.Printf("click_dropped business_id=%s kind=%s timeout=%s", businessID, kind, s.clickTimeout)
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// normalizeContacts writes the cleaned phone, whatsapp, email and website
// values into the destination pointers. Empty inputs clear the destination.
func (s *BusinessesService) normalizeContacts(region string, phoneDst, whatsappDst, emailDst, websiteDst **string, phone, whatsapp, email, website *string) error {
	var err error
	if *phoneDst, err = s.optionalPhone(phone, region, "phone"); err != nil {
		return err
	}
	if *whatsappDst, err = s.optionalPhone(whatsapp, region, "whatsapp"); err != nil {
		return err
	}
	if *emailDst, err = optionalContact(email, s.contacts.Email); err != nil {
		return err
	}
	if *websiteDst, err = optionalContact(website, s.contacts.Website); err != nil {
		return err
	}
	return nil
}

func (s *BusinessesService) optionalPhone(raw *string, region, field string) (*string, error) {
	value := trimmedOrNil(raw)
	if value == nil {
		return emptyIfSet(raw), nil
	}
	normalized, err := s.contacts.Phone(*value, region)
	if err != nil {
		return nil, invalidf("invalid %s number %q", field, *value)
	}
	return &normalized, nil
}

func optionalContact(raw *string, normalize func(string) (string, error)) (*string, error) {
	value := trimmedOrNil(raw)
	if value == nil {
		return emptyIfSet(raw), nil
	}
	normalized, err := normalize(*value)
	if err != nil {
		return nil, err
	}
	return &normalized, nil
}

// emptyIfSet keeps an explicit empty value so partial updates can clear a column.
func emptyIfSet(raw *string) *string {
	if raw == nil {
		return nil
	}
	empty := ""
	return &empty
}

func shortID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}
