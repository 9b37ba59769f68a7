package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/ngongmathias/Bara-prototype-sub001/internal/dto"
	"github.com/ngongmathias/Bara-prototype-sub001/internal/entity"
	"github.com/ngongmathias/Bara-prototype-sub001/internal/repository"
)

type mockUsersRepository struct {
	findByEmail func(ctx context.Context, email string) (*entity.User, error)
	findByID    func(ctx context.Context, id uuid.UUID) (*entity.User, error)
	create      func(ctx context.Context, email, passwordHash, role string) (*entity.User, error)
}

func (m *mockUsersRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.findByEmail != nil {
		return m.findByEmail(ctx, email)
	}
	return nil, repository.ErrUserNotFound
}

func (m *mockUsersRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if m.findByID != nil {
		return m.findByID(ctx, id)
	}
	return nil, repository.ErrUserNotFound
}

func (m *mockUsersRepository) Create(ctx context.Context, email, passwordHash, role string) (*entity.User, error) {
	if m.create != nil {
		return m.create(ctx, email, passwordHash, role)
	}
	return nil, errors.New("create not implemented")
}

type mockAdminsRepository struct {
	findGrant func(ctx context.Context, userID uuid.UUID, email string) (*entity.AdminUser, error)
	findByID  func(ctx context.Context, id uuid.UUID) (*entity.AdminUser, error)
	list      func(ctx context.Context) ([]entity.AdminUser, error)
	grant     func(ctx context.Context, email, role string, userID *uuid.UUID) (*entity.AdminUser, error)
	update    func(ctx context.Context, id uuid.UUID, role *string, isActive *bool) (*entity.AdminUser, error)
	revoke    func(ctx context.Context, id uuid.UUID) error
}

func (m *mockAdminsRepository) FindGrant(ctx context.Context, userID uuid.UUID, email string) (*entity.AdminUser, error) {
	if m.findGrant != nil {
		return m.findGrant(ctx, userID, email)
	}
	return nil, repository.ErrAdminNotFound
}

func (m *mockAdminsRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.AdminUser, error) {
	if m.findByID != nil {
		return m.findByID(ctx, id)
	}
	return nil, repository.ErrAdminNotFound
}

func (m *mockAdminsRepository) List(ctx context.Context) ([]entity.AdminUser, error) {
	if m.list != nil {
		return m.list(ctx)
	}
	return nil, errors.New("List not implemented")
}

func (m *mockAdminsRepository) Grant(ctx context.Context, email, role string, userID *uuid.UUID) (*entity.AdminUser, error) {
	if m.grant != nil {
		return m.grant(ctx, email, role, userID)
	}
	return nil, errors.New("Grant not implemented")
}

func (m *mockAdminsRepository) Update(ctx context.Context, id uuid.UUID, role *string, isActive *bool) (*entity.AdminUser, error) {
	if m.update != nil {
		return m.update(ctx, id, role, isActive)
	}
	return nil, errors.New("Update not implemented")
}

func (m *mockAdminsRepository) Revoke(ctx context.Context, id uuid.UUID) error {
	if m.revoke != nil {
		return m.revoke(ctx, id)
	}
	return errors.New("Revoke not implemented")
}

type mockBusinessesRepository struct {
	list        func(ctx context.Context, filter dto.BusinessListFilter) ([]entity.Business, error)
	get         func(ctx context.Context, idOrSlug string) (*entity.Business, error)
	create      func(ctx context.Context, business *entity.Business) error
	update      func(ctx context.Context, id uuid.UUID, req dto.UpdateBusinessRequest) (*entity.Business, error)
	setStatus   func(ctx context.Context, id uuid.UUID, status entity.ListingStatus) error
	delete      func(ctx context.Context, id uuid.UUID) error
	bulkUpsert  func(ctx context.Context, records []repository.BulkUpsertBusinessInput) (repository.BulkUpsertResult, error)
	recordClick func(ctx context.Context, click entity.BusinessClick) error
	countActive func(ctx context.Context, countryID uuid.UUID) (int, error)
}

func (m *mockBusinessesRepository) List(ctx context.Context, filter dto.BusinessListFilter) ([]entity.Business, error) {
	if m.list != nil {
		return m.list(ctx, filter)
	}
	return nil, nil
}

func (m *mockBusinessesRepository) Get(ctx context.Context, idOrSlug string) (*entity.Business, error) {
	if m.get != nil {
		return m.get(ctx, idOrSlug)
	}
	return nil, repository.ErrBusinessNotFound
}

func (m *mockBusinessesRepository) Create(ctx context.Context, business *entity.Business) error {
	if m.create != nil {
		return m.create(ctx, business)
	}
	return errors.New("Create not implemented")
}

func (m *mockBusinessesRepository) Update(ctx context.Context, id uuid.UUID, req dto.UpdateBusinessRequest) (*entity.Business, error) {
	if m.update != nil {
		return m.update(ctx, id, req)
	}
	return nil, errors.New("Update not implemented")
}

func (m *mockBusinessesRepository) SetStatus(ctx context.Context, id uuid.UUID, status entity.ListingStatus) error {
	if m.setStatus != nil {
		return m.setStatus(ctx, id, status)
	}
	return errors.New("SetStatus not implemented")
}

func (m *mockBusinessesRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.delete != nil {
		return m.delete(ctx, id)
	}
	return errors.New("Delete not implemented")
}

func (m *mockBusinessesRepository) BulkUpsertBusinesses(ctx context.Context, records []repository.BulkUpsertBusinessInput) (repository.BulkUpsertResult, error) {
	if m.bulkUpsert != nil {
		return m.bulkUpsert(ctx, records)
	}
	return repository.BulkUpsertResult{}, errors.New("BulkUpsertBusinesses not implemented")
}

func (m *mockBusinessesRepository) RecordClick(ctx context.Context, click entity.BusinessClick) error {
	if m.recordClick != nil {
		return m.recordClick(ctx, click)
	}
	return nil
}

func (m *mockBusinessesRepository) CountActiveByCountry(ctx context.Context, countryID uuid.UUID) (int, error) {
	if m.countActive != nil {
		return m.countActive(ctx, countryID)
	}
	return 0, nil
}

type mockReviewsRepository struct {
	create    func(ctx context.Context, review *entity.Review) error
	list      func(ctx context.Context, filter dto.ReviewListFilter) ([]entity.Review, int, error)
	setStatus func(ctx context.Context, id uuid.UUID, status entity.ReviewStatus) error
	delete    func(ctx context.Context, id uuid.UUID) error
}

func (m *mockReviewsRepository) Create(ctx context.Context, review *entity.Review) error {
	if m.create != nil {
		return m.create(ctx, review)
	}
	return errors.New("Create not implemented")
}

func (m *mockReviewsRepository) List(ctx context.Context, filter dto.ReviewListFilter) ([]entity.Review, int, error) {
	if m.list != nil {
		return m.list(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockReviewsRepository) SetStatus(ctx context.Context, id uuid.UUID, status entity.ReviewStatus) error {
	if m.setStatus != nil {
		return m.setStatus(ctx, id, status)
	}
	return errors.New("SetStatus not implemented")
}

func (m *mockReviewsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.delete != nil {
		return m.delete(ctx, id)
	}
	return errors.New("Delete not implemented")
}

type mockEventsRepository struct {
	list      func(ctx context.Context, filter dto.EventListFilter) ([]entity.Event, error)
	get       func(ctx context.Context, id uuid.UUID) (*entity.Event, error)
	create    func(ctx context.Context, event *entity.Event) error
	update    func(ctx context.Context, id uuid.UUID, req dto.UpdateEventRequest) (*entity.Event, error)
	setStatus func(ctx context.Context, id uuid.UUID, status entity.ListingStatus) error
	delete    func(ctx context.Context, id uuid.UUID) error
}

func (m *mockEventsRepository) List(ctx context.Context, filter dto.EventListFilter) ([]entity.Event, error) {
	if m.list != nil {
		return m.list(ctx, filter)
	}
	return nil, nil
}

func (m *mockEventsRepository) Get(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	if m.get != nil {
		return m.get(ctx, id)
	}
	return nil, repository.ErrEventNotFound
}

func (m *mockEventsRepository) Create(ctx context.Context, event *entity.Event) error {
	if m.create != nil {
		return m.create(ctx, event)
	}
	return errors.New("Create not implemented")
}

func (m *mockEventsRepository) Update(ctx context.Context, id uuid.UUID, req dto.UpdateEventRequest) (*entity.Event, error) {
	if m.update != nil {
		return m.update(ctx, id, req)
	}
	return nil, errors.New("Update not implemented")
}

func (m *mockEventsRepository) SetStatus(ctx context.Context, id uuid.UUID, status entity.ListingStatus) error {
	if m.setStatus != nil {
		return m.setStatus(ctx, id, status)
	}
	return errors.New("SetStatus not implemented")
}

func (m *mockEventsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.delete != nil {
		return m.delete(ctx, id)
	}
	return errors.New("Delete not implemented")
}

type mockMarketplaceRepository struct {
	list      func(ctx context.Context, filter dto.MarketplaceListFilter) ([]entity.MarketplaceListing, error)
	get       func(ctx context.Context, id uuid.UUID) (*entity.MarketplaceListing, error)
	create    func(ctx context.Context, listing *entity.MarketplaceListing) error
	setStatus func(ctx context.Context, id uuid.UUID, status entity.ListingStatus) error
	delete    func(ctx context.Context, id uuid.UUID) error
}

func (m *mockMarketplaceRepository) List(ctx context.Context, filter dto.MarketplaceListFilter) ([]entity.MarketplaceListing, error) {
	if m.list != nil {
		return m.list(ctx, filter)
	}
	return nil, nil
}

func (m *mockMarketplaceRepository) Get(ctx context.Context, id uuid.UUID) (*entity.MarketplaceListing, error) {
	if m.get != nil {
		return m.get(ctx, id)
	}
	return nil, repository.ErrListingNotFound
}

func (m *mockMarketplaceRepository) Create(ctx context.Context, listing *entity.MarketplaceListing) error {
	if m.create != nil {
		return m.create(ctx, listing)
	}
	return errors.New("Create not implemented")
}

func (m *mockMarketplaceRepository) SetStatus(ctx context.Context, id uuid.UUID, status entity.ListingStatus) error {
	if m.setStatus != nil {
		return m.setStatus(ctx, id, status)
	}
	return errors.New("SetStatus not implemented")
}

func (m *mockMarketplaceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.delete != nil {
		return m.delete(ctx, id)
	}
	return errors.New("Delete not implemented")
}

type mockLocationsRepository struct {
	listCountries  func(ctx context.Context) ([]entity.Country, error)
	getCountry     func(ctx context.Context, codeOrSlug string) (*entity.Country, error)
	createCountry  func(ctx context.Context, country *entity.Country) error
	listCities     func(ctx context.Context, countryID *uuid.UUID) ([]entity.City, error)
	createCity     func(ctx context.Context, city *entity.City) error
	listCategories func(ctx context.Context) ([]entity.Category, error)
	createCategory func(ctx context.Context, category *entity.Category) error
}

func (m *mockLocationsRepository) ListCountries(ctx context.Context) ([]entity.Country, error) {
	if m.listCountries != nil {
		return m.listCountries(ctx)
	}
	return nil, nil
}

func (m *mockLocationsRepository) GetCountry(ctx context.Context, codeOrSlug string) (*entity.Country, error) {
	if m.getCountry != nil {
		return m.getCountry(ctx, codeOrSlug)
	}
	return nil, repository.ErrCountryNotFound
}

func (m *mockLocationsRepository) CreateCountry(ctx context.Context, country *entity.Country) error {
	if m.createCountry != nil {
		return m.createCountry(ctx, country)
	}
	return errors.New("CreateCountry not implemented")
}

func (m *mockLocationsRepository) ListCities(ctx context.Context, countryID *uuid.UUID) ([]entity.City, error) {
	if m.listCities != nil {
		return m.listCities(ctx, countryID)
	}
	return nil, nil
}

func (m *mockLocationsRepository) CreateCity(ctx context.Context, city *entity.City) error {
	if m.createCity != nil {
		return m.createCity(ctx, city)
	}
	return errors.New("CreateCity not implemented")
}

func (m *mockLocationsRepository) ListCategories(ctx context.Context) ([]entity.Category, error) {
	if m.listCategories != nil {
		return m.listCategories(ctx)
	}
	return nil, nil
}

func (m *mockLocationsRepository) CreateCategory(ctx context.Context, category *entity.Category) error {
	if m.createCategory != nil {
		return m.createCategory(ctx, category)
	}
	return errors.New("CreateCategory not implemented")
}
