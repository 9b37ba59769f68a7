package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Context keys used to store authentication metadata.
const (
	ContextKeyUserID    = "user_id"
	ContextKeyUserEmail = "user_email"
	ContextKeyUserRole  = "user_role"
	ContextKeyRequestID = "request_id"
	ContextKeyAdminRole = "admin_role"
)

// UserIDFromContext returns the signed-in user's id, if any.
func UserIDFromContext(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(ContextKeyUserID).(uuid.UUID)
	return id, ok && id != uuid.Nil
}

// UserEmailFromContext returns the signed-in user's email, if any.
func UserEmailFromContext(c echo.Context) string {
	email, _ := c.Get(ContextKeyUserEmail).(string)
	return email
}

// OptionalUserID returns a pointer to the signed-in user's id, or nil for
// anonymous requests.
func OptionalUserID(c echo.Context) *uuid.UUID {
	id, ok := UserIDFromContext(c)
	if !ok {
		return nil
	}
	return &id
}
