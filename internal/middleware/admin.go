package middleware

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/ngongmathias/Bara-prototype-sub001/internal/entity"
	"github.com/ngongmathias/Bara-prototype-sub001/internal/repository"
)

// AdminChecker resolves the admin grant of a signed-in user.
type AdminChecker interface {
	Grant(ctx context.Context, userID uuid.UUID, email string) (*entity.AdminUser, error)
}

// RequireAdmin admits only users holding an active admin grant. It must run
// after JWT. The grant is looked up on every request and stored on the
// request context only.
func RequireAdmin(checker AdminChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, ok := UserIDFromContext(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "authentication required"})
			}

			grant, err := checker.Grant(c.Request().Context(), userID, UserEmailFromContext(c))
			if err != nil {
				if !errors.Is(err, repository.ErrAdminNotFound) {
					log.Printf("admin_check_failed request_id=%s user_id=%s err=%v", RequestIDFromContext(c), userID, err)
				}
				return c.JSON(http.StatusForbidden, map[string]string{"error": "admin access required"})
			}

			c.Set(ContextKeyAdminRole, grant.Role)
			return next(c)
		}
	}
}

// RequireRole enforces that the admin grant resolved by RequireAdmin carries
// one of the given roles.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			value, ok := c.Get(ContextKeyAdminRole).(string)
			if !ok || value == "" {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "missing role"})
			}
			for _, role := range roles {
				if value == role {
					return next(c)
				}
			}
			return c.JSON(http.StatusForbidden, map[string]string{"error": "insufficient permissions"})
		}
	}
}
