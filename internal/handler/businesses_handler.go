package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ngongmathias/Bara-prototype-sub001/internal/dto"
	"github.com/ngongmathias/Bara-prototype-sub001/internal/entity"
	"github.com/ngongmathias/Bara-prototype-sub001/internal/middleware"
	"github.com/ngongmathias/Bara-prototype-sub001/internal/service"
)

// BusinessesHandler exposes the business directory endpoints.
type BusinessesHandler struct {
	service *service.BusinessesService
}

// NewBusinessesHandler creates a new handler instance.
func NewBusinessesHandler(service *service.BusinessesService) *BusinessesHandler {
	return &BusinessesHandler{service: service}
}

// List handles GET /businesses requests. Only active businesses are listed.
func (h *BusinessesHandler) List(c echo.Context) error {
	filter, err := businessFilter(c)
	if err != nil {
		return Error(c, http.StatusBadRequest, err.Error())
	}
	filter.Status = string(entity.ListingStatusActive)

	resp, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return ServiceError(c, err, "failed to list businesses")
	}
	return Success(c, http.StatusOK, "businesses retrieved", resp)
}

// ListAdmin handles GET /admin/businesses requests for any status.
func (h *BusinessesHandler) ListAdmin(c echo.Context) error {
	filter, err := businessFilter(c)
	if err != nil {
		return Error(c, http.StatusBadRequest, err.Error())
	}
	filter.Status = c.QueryParam("status")
	if filter.Status != "" && !entity.ValidBusinessStatus(entity.ListingStatus(filter.Status)) {
		return Error(c, http.StatusBadRequest, "invalid status")
	}

	resp, err := h.service.ListForAdmin(c.Request().Context(), filter)
	if err != nil {
		return ServiceError(c, err, "failed to list businesses")
	}
	return Success(c, http.StatusOK, "businesses retrieved", resp)
}

// Detail handles GET /businesses/:id, accepting an id or slug.
func (h *BusinessesHandler) Detail(c echo.Context) error {
	return h.detail(c, true)
}

// DetailAdmin handles GET /admin/businesses/:id.
func (h *BusinessesHandler) DetailAdmin(c echo.Context) error {
	return h.detail(c, false)
}

func (h *BusinessesHandler) detail(c echo.Context, publicOnly bool) error {
	detail, err := h.service.Detail(c.Request().Context(), c.Param("id"), publicOnly)
	if err != nil {
		return ServiceError(c, err, "failed to load business")
	}
	return Success(c, http.StatusOK, "business retrieved", detail)
}

// Create handles POST /businesses submissions.
func (h *BusinessesHandler) Create(c echo.Context) error {
	var req dto.CreateBusinessRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	business, err := h.service.Create(c.Request().Context(), req, middleware.OptionalUserID(c))
	if err != nil {
		return ServiceError(c, err, "failed to submit business")
	}
	return Success(c, http.StatusCreated, "business submitted for review", business)
}

// RecordClick handles POST /businesses/:id/clicks. A click that could not be
// logged in time is acknowledged with 202.
func (h *BusinessesHandler) RecordClick(c echo.Context) error {
	var req dto.ClickRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	recorded, err := h.service.RecordClick(c.Request().Context(), c.Param("id"), req.Kind,
		middleware.OptionalUserID(c), c.RealIP(), c.Request().UserAgent())
	if err != nil {
		return ServiceError(c, err, "failed to record click")
	}
	if !recorded {
		return Success(c, http.StatusAccepted, "click accepted", nil)
	}
	return Success(c, http.StatusCreated, "click recorded", nil)
}

// Update handles PATCH /admin/businesses/:id.
func (h *BusinessesHandler) Update(c echo.Context) error {
	var req dto.UpdateBusinessRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	business, err := h.service.Update(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return ServiceError(c, err, "failed to update business")
	}
	return Success(c, http.StatusOK, "business updated", business)
}

// SetFlags handles PATCH /admin/businesses/:id/flags.
func (h *BusinessesHandler) SetFlags(c echo.Context) error {
	var req dto.BusinessFlagsRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	business, err := h.service.SetFlags(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return ServiceError(c, err, "failed to update business flags")
	}
	return Success(c, http.StatusOK, "business flags updated", business)
}

// SetStatus handles PATCH /admin/businesses/:id/status.
func (h *BusinessesHandler) SetStatus(c echo.Context) error {
	var req dto.StatusRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}
	if err := h.service.SetStatus(c.Request().Context(), c.Param("id"), req.Status); err != nil {
		return ServiceError(c, err, "failed to update business status")
	}
	return Success(c, http.StatusOK, "business status updated", nil)
}

// Delete handles DELETE /admin/businesses/:id.
func (h *BusinessesHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return ServiceError(c, err, "failed to delete business")
	}
	return Success(c, http.StatusOK, "business deleted", nil)
}

func businessFilter(c echo.Context) (dto.BusinessListFilter, error) {
	q := newQueryParams(c)
	page, perPage := q.page()
	filter := dto.BusinessListFilter{
		Country:   q.str("country"),
		City:      q.str("city"),
		Category:  q.str("category"),
		Search:    q.str("search"),
		Q:         q.str("q"),
		MinRating: q.float("min_rating"),
		MaxRating: q.float("max_rating"),
		Premium:   q.boolean("premium"),
		Verified:  q.boolean("verified"),
		Sponsored: q.boolean("sponsored"),
		Latitude:  q.float("lat"),
		Longitude: q.float("lng"),
		Sort:      q.str("sort"),
		Page:      page,
		PerPage:   perPage,
	}
	if radius := q.float("radius_km"); radius != nil {
		filter.RadiusKm = *radius
	}
	return filter, q.err
}
