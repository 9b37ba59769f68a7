package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ngongmathias/Bara-prototype-sub001/internal/dto"
	"github.com/ngongmathias/Bara-prototype-sub001/internal/entity"
	"github.com/ngongmathias/Bara-prototype-sub001/internal/middleware"
	"github.com/ngongmathias/Bara-prototype-sub001/internal/service"
)

// EventsHandler exposes the events calendar.
type EventsHandler struct {
	service *service.EventsService
}

// NewEventsHandler creates a new handler instance.
func NewEventsHandler(service *service.EventsService) *EventsHandler {
	return &EventsHandler{service: service}
}

// List handles GET /events. Only active events are listed.
func (h *EventsHandler) List(c echo.Context) error {
	filter, err := eventFilter(c)
	if err != nil {
		return Error(c, http.StatusBadRequest, err.Error())
	}
	filter.Status = string(entity.ListingStatusActive)
	return h.list(c, filter)
}

// ListAdmin handles GET /admin/events for any status.
func (h *EventsHandler) ListAdmin(c echo.Context) error {
	filter, err := eventFilter(c)
	if err != nil {
		return Error(c, http.StatusBadRequest, err.Error())
	}
	filter.Status = c.QueryParam("status")
	if filter.Status != "" && !entity.ValidEventStatus(entity.ListingStatus(filter.Status)) {
		return Error(c, http.StatusBadRequest, "invalid status")
	}
	return h.list(c, filter)
}

func (h *EventsHandler) list(c echo.Context, filter dto.EventListFilter) error {
	resp, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return ServiceError(c, err, "failed to list events")
	}
	return Success(c, http.StatusOK, "events retrieved", resp)
}

// Get handles GET /events/:id.
func (h *EventsHandler) Get(c echo.Context) error {
	event, err := h.service.Get(c.Request().Context(), c.Param("id"), true)
	if err != nil {
		return ServiceError(c, err, "failed to load event")
	}
	return Success(c, http.StatusOK, "event retrieved", event)
}

// Create handles POST /events submissions.
func (h *EventsHandler) Create(c echo.Context) error {
	var req dto.CreateEventRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	event, err := h.service.Create(c.Request().Context(), req, middleware.OptionalUserID(c))
	if err != nil {
		return ServiceError(c, err, "failed to submit event")
	}
	return Success(c, http.StatusCreated, "event submitted for review", event)
}

// Update handles PATCH /admin/events/:id.
func (h *EventsHandler) Update(c echo.Context) error {
	var req dto.UpdateEventRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	event, err := h.service.Update(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return ServiceError(c, err, "failed to update event")
	}
	return Success(c, http.StatusOK, "event updated", event)
}

// SetStatus handles PATCH /admin/events/:id/status.
func (h *EventsHandler) SetStatus(c echo.Context) error {
	var req dto.StatusRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}
	if err := h.service.SetStatus(c.Request().Context(), c.Param("id"), req.Status); err != nil {
		return ServiceError(c, err, "failed to update event status")
	}
	return Success(c, http.StatusOK, "event status updated", nil)
}

// Delete handles DELETE /admin/events/:id.
func (h *EventsHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return ServiceError(c, err, "failed to delete event")
	}
	return Success(c, http.StatusOK, "event deleted", nil)
}

func eventFilter(c echo.Context) (dto.EventListFilter, error) {
	q := newQueryParams(c)
	page, perPage := q.page()
	filter := dto.EventListFilter{
		Country:  q.str("country"),
		City:     q.str("city"),
		Q:        q.str("q"),
		Category: q.str("category"),
		Tag:      q.str("tag"),
		FreeOnly: q.flag("free"),
		From:     q.timestamp("from"),
		To:       q.timestamp("to"),
		Upcoming: q.flag("upcoming"),
		Sort:     q.str("sort"),
		Page:     page,
		PerPage:  perPage,
	}
	return filter, q.err
}
