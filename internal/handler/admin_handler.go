package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ngongmathias/Bara-prototype-sub001/internal/dto"
	"github.com/ngongmathias/Bara-prototype-sub001/internal/middleware"
	"github.com/ngongmathias/Bara-prototype-sub001/internal/repository"
	"github.com/ngongmathias/Bara-prototype-sub001/internal/service"
)

// AdminHandler exposes the admin gate status and grant management.
type AdminHandler struct {
	admins *service.AdminService
}

// NewAdminHandler constructs a handler instance.
func NewAdminHandler(admins *service.AdminService) *AdminHandler {
	return &AdminHandler{admins: admins}
}

// Status handles GET /me/admin. A failed lookup is reported as an error so
// callers keep the back-office locked.
func (h *AdminHandler) Status(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return Error(c, http.StatusUnauthorized, "authentication required")
	}

	grant, err := h.admins.Grant(c.Request().Context(), userID, middleware.UserEmailFromContext(c))
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return Success(c, http.StatusOK, "admin status resolved", dto.AdminStatusResponse{IsAdmin: false})
		}
		return ServiceError(c, err, "unable to verify admin access")
	}
	return Success(c, http.StatusOK, "admin status resolved", dto.AdminStatusResponse{IsAdmin: true, Role: grant.Role})
}

// List returns every grant.
func (h *AdminHandler) List(c echo.Context) error {
	grants, err := h.admins.ListGrants(c.Request().Context())
	if err != nil {
		return ServiceError(c, err, "failed to list admins")
	}
	return Success(c, http.StatusOK, "admins retrieved", grants)
}

// Grant handles POST /admin/admins.
func (h *AdminHandler) Grant(c echo.Context) error {
	var req dto.GrantAdminRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	grant, err := h.admins.GrantAccess(c.Request().Context(), req)
	if err != nil {
		return ServiceError(c, err, "failed to grant admin access")
	}
	return Success(c, http.StatusCreated, "admin access granted", grant)
}

// Update handles PATCH /admin/admins/:id.
func (h *AdminHandler) Update(c echo.Context) error {
	var req dto.UpdateAdminRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	userID, _ := middleware.UserIDFromContext(c)
	grant, err := h.admins.UpdateGrant(c.Request().Context(), userID, middleware.UserEmailFromContext(c), c.Param("id"), req)
	if err != nil {
		return ServiceError(c, err, "failed to update admin")
	}
	return Success(c, http.StatusOK, "admin updated", grant)
}

// Revoke handles DELETE /admin/admins/:id.
func (h *AdminHandler) Revoke(c echo.Context) error {
	userID, _ := middleware.UserIDFromContext(c)
	if err := h.admins.RevokeGrant(c.Request().Context(), userID, middleware.UserEmailFromContext(c), c.Param("id")); err != nil {
		return ServiceError(c, err, "failed to revoke admin")
	}
	return Success(c, http.StatusOK, "admin access revoked", nil)
}
