package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ngongmathias/Bara-prototype-sub001/internal/dto"
	"github.com/ngongmathias/Bara-prototype-sub001/internal/middleware"
	"github.com/ngongmathias/Bara-prototype-sub001/internal/service"
)

// ReviewsHandler exposes review submission and moderation.
type ReviewsHandler struct {
	service *service.ReviewsService
}

// NewReviewsHandler creates a new handler instance.
func NewReviewsHandler(service *service.ReviewsService) *ReviewsHandler {
	return &ReviewsHandler{service: service}
}

// List handles GET /businesses/:id/reviews.
func (h *ReviewsHandler) List(c echo.Context) error {
	page, perPage := newQueryParams(c).page()
	resp, err := h.service.ListApproved(c.Request().Context(), c.Param("id"), page, perPage)
	if err != nil {
		return ServiceError(c, err, "failed to list reviews")
	}
	return Success(c, http.StatusOK, "reviews retrieved", resp)
}

// Create handles POST /businesses/:id/reviews.
func (h *ReviewsHandler) Create(c echo.Context) error {
	var req dto.CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	review, err := h.service.Create(c.Request().Context(), c.Param("id"), req, middleware.OptionalUserID(c))
	if err != nil {
		return ServiceError(c, err, "failed to submit review")
	}
	return Success(c, http.StatusCreated, "review submitted for moderation", review)
}

// ListAdmin handles GET /admin/reviews.
func (h *ReviewsHandler) ListAdmin(c echo.Context) error {
	q := newQueryParams(c)
	page, perPage := q.page()
	resp, err := h.service.ListForModeration(c.Request().Context(), dto.ReviewListFilter{
		Status:  q.str("status"),
		Page:    page,
		PerPage: perPage,
	})
	if err != nil {
		return ServiceError(c, err, "failed to list reviews")
	}
	return Success(c, http.StatusOK, "reviews retrieved", resp)
}

// SetStatus handles PATCH /admin/reviews/:id/status.
func (h *ReviewsHandler) SetStatus(c echo.Context) error {
	var req dto.StatusRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}
	if err := h.service.SetStatus(c.Request().Context(), c.Param("id"), req.Status); err != nil {
		return ServiceError(c, err, "failed to update review status")
	}
	return Success(c, http.StatusOK, "review status updated", nil)
}

// Delete handles DELETE /admin/reviews/:id.
func (h *ReviewsHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return ServiceError(c, err, "failed to delete review")
	}
	return Success(c, http.StatusOK, "review deleted", nil)
}
