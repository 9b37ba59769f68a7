package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ngongmathias/Bara-prototype-sub001/internal/dto"
	"github.com/ngongmathias/Bara-prototype-sub001/internal/entity"
	"github.com/ngongmathias/Bara-prototype-sub001/internal/middleware"
	"github.com/ngongmathias/Bara-prototype-sub001/internal/service"
)

// MarketplaceHandler exposes classified listings.
type MarketplaceHandler struct {
	service *service.MarketplaceService
}

// NewMarketplaceHandler creates a new handler instance.
func NewMarketplaceHandler(service *service.MarketplaceService) *MarketplaceHandler {
	return &MarketplaceHandler{service: service}
}

// List handles GET /marketplace. Only active listings are shown.
func (h *MarketplaceHandler) List(c echo.Context) error {
	filter, err := marketplaceFilter(c)
	if err != nil {
		return Error(c, http.StatusBadRequest, err.Error())
	}
	filter.Status = string(entity.ListingStatusActive)
	return h.list(c, filter)
}

// ListAdmin handles GET /admin/marketplace for any status.
func (h *MarketplaceHandler) ListAdmin(c echo.Context) error {
	filter, err := marketplaceFilter(c)
	if err != nil {
		return Error(c, http.StatusBadRequest, err.Error())
	}
	filter.Status = c.QueryParam("status")
	if filter.Status != "" && !entity.ValidMarketplaceStatus(entity.ListingStatus(filter.Status)) {
		return Error(c, http.StatusBadRequest, "invalid status")
	}
	return h.list(c, filter)
}

func (h *MarketplaceHandler) list(c echo.Context, filter dto.MarketplaceListFilter) error {
	resp, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return ServiceError(c, err, "failed to list marketplace")
	}
	return Success(c, http.StatusOK, "listings retrieved", resp)
}

// Get handles GET /marketplace/:id.
func (h *MarketplaceHandler) Get(c echo.Context) error {
	listing, err := h.service.Get(c.Request().Context(), c.Param("id"), true)
	if err != nil {
		return ServiceError(c, err, "failed to load listing")
	}
	return Success(c, http.StatusOK, "listing retrieved", listing)
}

// Create handles POST /marketplace submissions.
func (h *MarketplaceHandler) Create(c echo.Context) error {
	var req dto.CreateMarketplaceRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	listing, err := h.service.Create(c.Request().Context(), req, middleware.OptionalUserID(c))
	if err != nil {
		return ServiceError(c, err, "failed to submit listing")
	}
	return Success(c, http.StatusCreated, "listing submitted for review", listing)
}

// SetStatus handles PATCH /admin/marketplace/:id/status.
func (h *MarketplaceHandler) SetStatus(c echo.Context) error {
	var req dto.StatusRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}
	if err := h.service.SetStatus(c.Request().Context(), c.Param("id"), req.Status); err != nil {
		return ServiceError(c, err, "failed to update listing status")
	}
	return Success(c, http.StatusOK, "listing status updated", nil)
}

// Delete handles DELETE /admin/marketplace/:id.
func (h *MarketplaceHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return ServiceError(c, err, "failed to delete listing")
	}
	return Success(c, http.StatusOK, "listing deleted", nil)
}

func marketplaceFilter(c echo.Context) (dto.MarketplaceListFilter, error) {
	q := newQueryParams(c)
	page, perPage := q.page()
	filter := dto.MarketplaceListFilter{
		Country:    q.str("country"),
		Category:   q.str("category"),
		Q:          q.str("q"),
		Condition:  q.str("condition"),
		Currency:   q.str("currency"),
		MinPrice:   q.float("min_price"),
		MaxPrice:   q.float("max_price"),
		WithImages: q.flag("with_images"),
		Sort:       q.str("sort"),
		Page:       page,
		PerPage:    perPage,
	}
	return filter, q.err
}
