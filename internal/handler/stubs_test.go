package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/ngongmathias/Bara-prototype-sub001/internal/dto"
	"github.com/ngongmathias/Bara-prototype-sub001/internal/entity"
	"github.com/ngongmathias/Bara-prototype-sub001/internal/middleware"
	"github.com/ngongmathias/Bara-prototype-sub001/internal/repository"
)

var errNotImplemented = errors.New("not implemented")

type stubUsersRepo struct {
	findByEmail func(ctx context.Context, email string) (*entity.User, error)
	byID        *entity.User
	create      func(ctx context.Context, email, passwordHash, role string) (*entity.User, error)
}

func (s *stubUsersRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if s.findByEmail != nil {
		return s.findByEmail(ctx, email)
	}
	return nil, repository.ErrUserNotFound
}

func (s *stubUsersRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if s.byID == nil || s.byID.ID != id {
		return nil, repository.ErrUserNotFound
	}
	return s.byID, nil
}

func (s *stubUsersRepo) Create(ctx context.Context, email, passwordHash, role string) (*entity.User, error) {
	if s.create != nil {
		return s.create(ctx, email, passwordHash, role)
	}
	return nil, errNotImplemented
}

type stubAdminsRepo struct {
	grant    *entity.AdminUser
	grants   []entity.AdminUser
	byID     *entity.AdminUser
	granted  func(email, role string, userID *uuid.UUID) (*entity.AdminUser, error)
	revoked  []uuid.UUID
	updateFn func(id uuid.UUID, role *string, isActive *bool) (*entity.AdminUser, error)
}

func (s *stubAdminsRepo) FindGrant(ctx context.Context, userID uuid.UUID, email string) (*entity.AdminUser, error) {
	if s.grant == nil {
		return nil, repository.ErrAdminNotFound
	}
	return s.grant, nil
}

func (s *stubAdminsRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.AdminUser, error) {
	if s.byID == nil {
		return nil, repository.ErrAdminNotFound
	}
	return s.byID, nil
}

func (s *stubAdminsRepo) List(ctx context.Context) ([]entity.AdminUser, error) {
	return s.grants, nil
}

func (s *stubAdminsRepo) Grant(ctx context.Context, email, role string, userID *uuid.UUID) (*entity.AdminUser, error) {
	if s.granted != nil {
		return s.granted(email, role, userID)
	}
	return nil, errNotImplemented
}

func (s *stubAdminsRepo) Update(ctx context.Context, id uuid.UUID, role *string, isActive *bool) (*entity.AdminUser, error) {
	if s.updateFn != nil {
		return s.updateFn(id, role, isActive)
	}
	return nil, repository.ErrAdminNotFound
}

func (s *stubAdminsRepo) Revoke(ctx context.Context, id uuid.UUID) error {
	s.revoked = append(s.revoked, id)
	return nil
}

type stubBusinessesRepo struct {
	items       []entity.Business
	lastFilter  dto.BusinessListFilter
	listErr     error
	created     *entity.Business
	statusSet   entity.ListingStatus
	updateReq   *dto.UpdateBusinessRequest
	bulk        func(records []repository.BulkUpsertBusinessInput) (repository.BulkUpsertResult, error)
	recordClick func(ctx context.Context, click entity.BusinessClick) error
}

func (s *stubBusinessesRepo) List(ctx context.Context, filter dto.BusinessListFilter) ([]entity.Business, error) {
	s.lastFilter = filter
	return s.items, s.listErr
}

func (s *stubBusinessesRepo) Get(ctx context.Context, idOrSlug string) (*entity.Business, error) {
	for i := range s.items {
		if s.items[i].ID.String() == idOrSlug || s.items[i].Slug == idOrSlug {
			return &s.items[i], nil
		}
	}
	return nil, repository.ErrBusinessNotFound
}

func (s *stubBusinessesRepo) Create(ctx context.Context, business *entity.Business) error {
	business.ID = uuid.New()
	s.created = business
	return nil
}

func (s *stubBusinessesRepo) Update(ctx context.Context, id uuid.UUID, req dto.UpdateBusinessRequest) (*entity.Business, error) {
	s.updateReq = &req
	for i := range s.items {
		if s.items[i].ID == id {
			return &s.items[i], nil
		}
	}
	return nil, repository.ErrBusinessNotFound
}

func (s *stubBusinessesRepo) SetStatus(ctx context.Context, id uuid.UUID, status entity.ListingStatus) error {
	s.statusSet = status
	return nil
}

func (s *stubBusinessesRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return repository.ErrBusinessNotFound
}

func (s *stubBusinessesRepo) BulkUpsertBusinesses(ctx context.Context, records []repository.BulkUpsertBusinessInput) (repository.BulkUpsertResult, error) {
	if s.bulk != nil {
		return s.bulk(records)
	}
	return repository.BulkUpsertResult{Inserted: len(records), Total: len(records)}, nil
}

func (s *stubBusinessesRepo) RecordClick(ctx context.Context, click entity.BusinessClick) error {
	if s.recordClick != nil {
		return s.recordClick(ctx, click)
	}
	return nil
}

func (s *stubBusinessesRepo) CountActiveByCountry(ctx context.Context, countryID uuid.UUID) (int, error) {
	return len(s.items), nil
}

type stubReviewsRepo struct {
	items      []entity.Review
	total      int
	lastFilter dto.ReviewListFilter
	created    *entity.Review
	statusSet  entity.ReviewStatus
}

func (s *stubReviewsRepo) Create(ctx context.Context, review *entity.Review) error {
	review.ID = uuid.New()
	s.created = review
	return nil
}

func (s *stubReviewsRepo) List(ctx context.Context, filter dto.ReviewListFilter) ([]entity.Review, int, error) {
	s.lastFilter = filter
	return s.items, s.total, nil
}

func (s *stubReviewsRepo) SetStatus(ctx context.Context, id uuid.UUID, status entity.ReviewStatus) error {
	s.statusSet = status
	return nil
}

func (s *stubReviewsRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}

type stubEventsRepo struct {
	items      []entity.Event
	lastFilter dto.EventListFilter
	created    *entity.Event
}

func (s *stubEventsRepo) List(ctx context.Context, filter dto.EventListFilter) ([]entity.Event, error) {
	s.lastFilter = filter
	return s.items, nil
}

func (s *stubEventsRepo) Get(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	for i := range s.items {
		if s.items[i].ID == id {
			return &s.items[i], nil
		}
	}
	return nil, repository.ErrEventNotFound
}

func (s *stubEventsRepo) Create(ctx context.Context, event *entity.Event) error {
	event.ID = uuid.New()
	s.created = event
	return nil
}

func (s *stubEventsRepo) Update(ctx context.Context, id uuid.UUID, req dto.UpdateEventRequest) (*entity.Event, error) {
	return s.Get(ctx, id)
}

func (s *stubEventsRepo) SetStatus(ctx context.Context, id uuid.UUID, status entity.ListingStatus) error {
	return nil
}

func (s *stubEventsRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}

type stubMarketplaceRepo struct {
	items      []entity.MarketplaceListing
	lastFilter dto.MarketplaceListFilter
	created    *entity.MarketplaceListing
}

func (s *stubMarketplaceRepo) List(ctx context.Context, filter dto.MarketplaceListFilter) ([]entity.MarketplaceListing, error) {
	s.lastFilter = filter
	return s.items, nil
}

func (s *stubMarketplaceRepo) Get(ctx context.Context, id uuid.UUID) (*entity.MarketplaceListing, error) {
	for i := range s.items {
		if s.items[i].ID == id {
			return &s.items[i], nil
		}
	}
	return nil, repository.ErrListingNotFound
}

func (s *stubMarketplaceRepo) Create(ctx context.Context, listing *entity.MarketplaceListing) error {
	listing.ID = uuid.New()
	s.created = listing
	return nil
}

func (s *stubMarketplaceRepo) SetStatus(ctx context.Context, id uuid.UUID, status entity.ListingStatus) error {
	return nil
}

func (s *stubMarketplaceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}

type stubLocationsRepo struct {
	countries  []entity.Country
	cities     []entity.City
	categories []entity.Category
	createErr  error
}

func (s *stubLocationsRepo) ListCountries(ctx context.Context) ([]entity.Country, error) {
	return s.countries, nil
}

func (s *stubLocationsRepo) GetCountry(ctx context.Context, codeOrSlug string) (*entity.Country, error) {
	for i := range s.countries {
		c := s.countries[i]
		if c.ID.String() == codeOrSlug || c.Code == codeOrSlug || c.Slug == codeOrSlug {
			return &s.countries[i], nil
		}
	}
	return nil, repository.ErrCountryNotFound
}

func (s *stubLocationsRepo) CreateCountry(ctx context.Context, country *entity.Country) error {
	country.ID = uuid.New()
	return s.createErr
}

func (s *stubLocationsRepo) ListCities(ctx context.Context, countryID *uuid.UUID) ([]entity.City, error) {
	return s.cities, nil
}

func (s *stubLocationsRepo) CreateCity(ctx context.Context, city *entity.City) error {
	city.ID = uuid.New()
	return s.createErr
}

func (s *stubLocationsRepo) ListCategories(ctx context.Context) ([]entity.Category, error) {
	return s.categories, nil
}

func (s *stubLocationsRepo) CreateCategory(ctx context.Context, category *entity.Category) error {
	category.ID = uuid.New()
	return s.createErr
}

func jsonRequest(t *testing.T, method, target string, payload any) (*http.Request, *httptest.ResponseRecorder) {
	t.Helper()
	var body io.Reader = http.NoBody
	switch p := payload.(type) {
	case nil:
	case string:
		body = bytes.NewBufferString(p)
	default:
		raw, err := json.Marshal(p)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req, httptest.NewRecorder()
}

func withUser(c echo.Context, id uuid.UUID, email string) {
	c.Set(middleware.ContextKeyUserID, id)
	c.Set(middleware.ContextKeyUserEmail, email)
}
