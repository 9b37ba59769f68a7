package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ngongmathias/Bara-prototype-sub001/internal/dto"
	"github.com/ngongmathias/Bara-prototype-sub001/internal/service"
)

// LocationsHandler exposes countries, cities and categories.
type LocationsHandler struct {
	service *service.LocationsService
}

// NewLocationsHandler creates a new handler instance.
func NewLocationsHandler(service *service.LocationsService) *LocationsHandler {
	return &LocationsHandler{service: service}
}

// Countries handles GET /countries.
func (h *LocationsHandler) Countries(c echo.Context) error {
	countries, err := h.service.ListCountries(c.Request().Context())
	if err != nil {
		return ServiceError(c, err, "failed to list countries")
	}
	return Success(c, http.StatusOK, "countries retrieved", countries)
}

// CountrySummary handles GET /countries/:code.
func (h *LocationsHandler) CountrySummary(c echo.Context) error {
	summary, err := h.service.CountrySummary(c.Request().Context(), c.Param("code"))
	if err != nil {
		return ServiceError(c, err, "failed to load country")
	}
	return Success(c, http.StatusOK, "country retrieved", summary)
}

// Cities handles GET /cities, optionally scoped with ?country=.
func (h *LocationsHandler) Cities(c echo.Context) error {
	cities, err := h.service.ListCities(c.Request().Context(), c.QueryParam("country"))
	if err != nil {
		return ServiceError(c, err, "failed to list cities")
	}
	return Success(c, http.StatusOK, "cities retrieved", cities)
}

// Categories handles GET /categories.
func (h *LocationsHandler) Categories(c echo.Context) error {
	categories, err := h.service.ListCategories(c.Request().Context())
	if err != nil {
		return ServiceError(c, err, "failed to list categories")
	}
	return Success(c, http.StatusOK, "categories retrieved", categories)
}

// CreateCountry handles POST /admin/countries.
func (h *LocationsHandler) CreateCountry(c echo.Context) error {
	var req dto.CreateCountryRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}
	country, err := h.service.CreateCountry(c.Request().Context(), req)
	if err != nil {
		return ServiceError(c, err, "failed to create country")
	}
	return Success(c, http.StatusCreated, "country created", country)
}

// CreateCity handles POST /admin/cities.
func (h *LocationsHandler) CreateCity(c echo.Context) error {
	var req dto.CreateCityRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}
	city, err := h.service.CreateCity(c.Request().Context(), req)
	if err != nil {
		return ServiceError(c, err, "failed to create city")
	}
	return Success(c, http.StatusCreated, "city created", city)
}

// CreateCategory handles POST /admin/categories.
func (h *LocationsHandler) CreateCategory(c echo.Context) error {
	var req dto.CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}
	category, err := h.service.CreateCategory(c.Request().Context(), req)
	if err != nil {
		return ServiceError(c, err, "failed to create category")
	}
	return Success(c, http.StatusCreated, "category created", category)
}
