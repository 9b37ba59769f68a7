package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ngongmathias/Bara-prototype-sub001/internal/auth"
	"github.com/ngongmathias/Bara-prototype-sub001/internal/config"
	"github.com/ngongmathias/Bara-prototype-sub001/internal/entity"
	"github.com/ngongmathias/Bara-prototype-sub001/internal/handler"
	middlewarepkg "github.com/ngongmathias/Bara-prototype-sub001/internal/middleware"
)

// Handlers aggregates HTTP handlers used by the router.
type Handlers struct {
	Auth        *handler.AuthHandler
	Admin       *handler.AdminHandler
	Businesses  *handler.BusinessesHandler
	Reviews     *handler.ReviewsHandler
	Events      *handler.EventsHandler
	Marketplace *handler.MarketplaceHandler
	Locations   *handler.LocationsHandler
	AdminUpload *handler.AdminUploadHandler
}

// Register wires all HTTP routes for the API.
func Register(e *echo.Echo, cfg *config.Config, jwtManager *auth.JWTManager, admins middlewarepkg.AdminChecker, handlers Handlers) {
	e.GET("/healthz", func(c echo.Context) error {
		return handler.Success(c, http.StatusOK, "service healthy", map[string]any{"status": "ok"})
	})

	e.POST("/auth/register", handlers.Auth.Register)
	e.POST("/auth/login", handlers.Auth.Login)

	e.GET("/countries", handlers.Locations.Countries)
	e.GET("/countries/:code", handlers.Locations.CountrySummary)
	e.GET("/cities", handlers.Locations.Cities)
	e.GET("/categories", handlers.Locations.Categories)

	e.GET("/businesses", handlers.Businesses.List)
	e.GET("/businesses/:id", handlers.Businesses.Detail)
	e.GET("/businesses/:id/reviews", handlers.Reviews.List)
	e.GET("/events", handlers.Events.List)
	e.GET("/events/:id", handlers.Events.Get)
	e.GET("/marketplace", handlers.Marketplace.List)
	e.GET("/marketplace/:id", handlers.Marketplace.Get)

	// Submissions work anonymously; a valid token attaches the submitter.
	identify := middlewarepkg.OptionalJWT(jwtManager)
	submit := middlewarepkg.ClientRateLimiter(cfg.RateLimitSubmit, "submit")
	e.POST("/businesses", handlers.Businesses.Create, identify, submit)
	e.POST("/businesses/:id/reviews", handlers.Reviews.Create, identify, submit)
	e.POST("/events", handlers.Events.Create, identify, submit)
	e.POST("/marketplace", handlers.Marketplace.Create, identify, submit)
	e.POST("/businesses/:id/clicks", handlers.Businesses.RecordClick,
		identify, middlewarepkg.ClientRateLimiter(cfg.RateLimitClicks, "click"))

	requireUser := middlewarepkg.JWT(jwtManager)
	e.GET("/me", handlers.Auth.Me, requireUser)
	e.GET("/me/admin", handlers.Admin.Status, requireUser)

	admin := e.Group("/admin", requireUser, middlewarepkg.RequireAdmin(admins))
	admin.GET("/businesses", handlers.Businesses.ListAdmin)
	admin.GET("/businesses/:id", handlers.Businesses.DetailAdmin)
	admin.PATCH("/businesses/:id", handlers.Businesses.Update)
	admin.PATCH("/businesses/:id/status", handlers.Businesses.SetStatus)
	admin.PATCH("/businesses/:id/flags", handlers.Businesses.SetFlags)
	admin.DELETE("/businesses/:id", handlers.Businesses.Delete)
	admin.POST("/businesses/import", handlers.AdminUpload.ImportBusinesses)

	admin.GET("/reviews", handlers.Reviews.ListAdmin)
	admin.PATCH("/reviews/:id/status", handlers.Reviews.SetStatus)
	admin.DELETE("/reviews/:id", handlers.Reviews.Delete)

	admin.GET("/events", handlers.Events.ListAdmin)
	admin.PATCH("/events/:id", handlers.Events.Update)
	admin.PATCH("/events/:id/status", handlers.Events.SetStatus)
	admin.DELETE("/events/:id", handlers.Events.Delete)

	admin.GET("/marketplace", handlers.Marketplace.ListAdmin)
	admin.PATCH("/marketplace/:id/status", handlers.Marketplace.SetStatus)
	admin.DELETE("/marketplace/:id", handlers.Marketplace.Delete)

	admin.POST("/countries", handlers.Locations.CreateCountry)
	admin.POST("/cities", handlers.Locations.CreateCity)
	admin.POST("/categories", handlers.Locations.CreateCategory)
	admin.POST("/uploads", handlers.AdminUpload.UploadImage)

	grants := admin.Group("/admins", middlewarepkg.RequireRole(entity.AdminRoleSuperAdmin))
	grants.GET("", handlers.Admin.List)
	grants.POST("", handlers.Admin.Grant)
	grants.PATCH("/:id", handlers.Admin.Update)
	grants.DELETE("/:id", handlers.Admin.Revoke)
}
