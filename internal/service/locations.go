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

// LocationsService exposes countries, cities and categories.
type LocationsService struct {
	repo       repository.LocationsRepository
	businesses repository.BusinessesRepository
}

// NewLocationsService wires the locations service.
func NewLocationsService(repo repository.LocationsRepository, businesses repository.BusinessesRepository) *LocationsService {
	return &LocationsService{repo: repo, businesses: businesses}
}

// ListCountries returns every country.
func (s *LocationsService) ListCountries(ctx context.Context) ([]entity.Country, error) {
	countries, err := s.repo.ListCountries(ctx)
	if err != nil {
		return nil, err
	}
	if countries == nil {
		countries = []entity.Country{}
	}
	return countries, nil
}

// CountrySummary returns a country with its cities and active business count.
func (s *LocationsService) CountrySummary(ctx context.Context, codeOrSlug string) (*dto.CountrySummary, error) {
	country, err := s.repo.GetCountry(ctx, codeOrSlug)
	if err != nil {
		return nil, err
	}
	cities, err := s.repo.ListCities(ctx, &country.ID)
	if err != nil {
		return nil, err
	}
	if cities == nil {
		cities = []entity.City{}
	}
	count, err := s.businesses.CountActiveByCountry(ctx, country.ID)
	if err != nil {
		return nil, err
	}
	return &dto.CountrySummary{Country: *country, Cities: cities, BusinessCount: count}, nil
}

// ListCities returns cities, optionally scoped to a country code or slug.
func (s *LocationsService) ListCities(ctx context.Context, country string) ([]entity.City, error) {
	var cities []entity.City
	if strings.TrimSpace(country) == "" {
		all, err := s.repo.ListCities(ctx, nil)
		if err != nil {
			return nil, err
		}
		cities = all
	} else {
		c, err := s.repo.GetCountry(ctx, country)
		if err != nil {
			return nil, err
		}
		scoped, err := s.repo.ListCities(ctx, &c.ID)
		if err != nil {
			return nil, err
		}
		cities = scoped
	}
	if cities == nil {
		cities = []entity.City{}
	}
	return cities, nil
}

// ListCategories returns every category.
func (s *LocationsService) ListCategories(ctx context.Context) ([]entity.Category, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []entity.Category{}
	}
	return categories, nil
}

// CreateCountry adds a country.
func (s *LocationsService) CreateCountry(ctx context.Context, req dto.CreateCountryRequest) (*entity.Country, error) {
	code := strings.ToUpper(strings.TrimSpace(req.Code))
	if len(code) != 2 {
		return nil, invalidf("code must be a 2-letter ISO country code")
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, invalidf("name is required")
	}
	slug := Slugify(req.Slug)
	if slug == "" {
		slug = Slugify(name)
	}

	country := &entity.Country{Code: code, Name: name, Slug: slug, FlagURL: trimmedOrNil(req.FlagURL)}
	if err := s.repo.CreateCountry(ctx, country); err != nil {
		return nil, err
	}
	return country, nil
}

// CreateCity adds a city to a country.
func (s *LocationsService) CreateCity(ctx context.Context, req dto.CreateCityRequest) (*entity.City, error) {
	if req.CountryID == uuid.Nil {
		return nil, invalidf("country_id is required")
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, invalidf("name is required")
	}
	if (req.Latitude != nil || req.Longitude != nil) && !listing.ValidCoordinates(req.Latitude, req.Longitude) {
		return nil, invalidf("latitude and longitude must be given together and be valid coordinates")
	}
	slug := Slugify(req.Slug)
	if slug == "" {
		slug = Slugify(name)
	}

	city := &entity.City{CountryID: req.CountryID, Name: name, Slug: slug, Latitude: req.Latitude, Longitude: req.Longitude}
	if err := s.repo.CreateCity(ctx, city); err != nil {
		if errors.Is(err, repository.ErrInvalidReference) {
			return nil, invalidf("country_id does not exist")
		}
		return nil, err
	}
	return city, nil
}

// CreateCategory adds a category.
func (s *LocationsService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*entity.Category, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, invalidf("name is required")
	}
	slug := Slugify(req.Slug)
	if slug == "" {
		slug = Slugify(name)
	}

	category := &entity.Category{Name: name, Slug: slug, Icon: trimmedOrNil(req.Icon), ParentID: req.ParentID}
	if err := s.repo.CreateCategory(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}
