package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ngongmathias/Bara-prototype-sub001/internal/middleware"
	"github.com/ngongmathias/Bara-prototype-sub001/internal/repository"
	"github.com/ngongmathias/Bara-prototype-sub001/internal/service"
)

// APIResponse describes the standard envelope returned by the API.
type APIResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// Success sends a successful response using the shared envelope format.
func Success(c echo.Context, status int, message string, data any) error {
	if status == 0 {
		status = http.StatusOK
	}
	return c.JSON(status, APIResponse{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

// Error sends an error response using the shared envelope format.
func Error(c echo.Context, status int, message string) error {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	return c.JSON(status, APIResponse{
		Status:  "error",
		Message: message,
	})
}

var notFoundMessages = []struct {
	err     error
	message string
}{
	{repository.ErrBusinessNotFound, "business not found"},
	{repository.ErrReviewNotFound, "review not found"},
	{repository.ErrEventNotFound, "event not found"},
	{repository.ErrListingNotFound, "listing not found"},
	{repository.ErrCountryNotFound, "country not found"},
	{repository.ErrAdminNotFound, "admin grant not found"},
	{repository.ErrUserNotFound, "user not found"},
}

// ServiceError maps a service or repository error onto the envelope. Errors
// it does not know are logged and reported with the fallback message.
func ServiceError(c echo.Context, err error, fallback string) error {
	var validationErr service.ValidationError
	if errors.As(err, &validationErr) {
		return Error(c, http.StatusBadRequest, validationErr.Message)
	}
	for _, nf := range notFoundMessages {
		if errors.Is(err, nf.err) {
			return Error(c, http.StatusNotFound, nf.message)
		}
	}

	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return Error(c, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, service.ErrEmailAlreadyExists), errors.Is(err, repository.ErrEmailDuplicate):
		return Error(c, http.StatusConflict, "email already exists")
	case errors.Is(err, repository.ErrLocationExists):
		return Error(c, http.StatusConflict, "already exists")
	case errors.Is(err, repository.ErrSlugDuplicate):
		return Error(c, http.StatusConflict, "slug already in use")
	case errors.Is(err, repository.ErrInvalidReference):
		return Error(c, http.StatusBadRequest, "referenced record does not exist")
	case errors.Is(err, service.ErrSelfRevoke):
		return Error(c, http.StatusBadRequest, err.Error())
	}

	log.Printf("request_id=%s method=%s path=%s error=%q", middleware.RequestIDFromContext(c), c.Request().Method, c.Path(), err.Error())
	return Error(c, http.StatusInternalServerError, fallback)
}
