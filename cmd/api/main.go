package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/ngongmathias/Bara-prototype-sub001/internal/auth"
	"github.com/ngongmathias/Bara-prototype-sub001/internal/config"
	"github.com/ngongmathias/Bara-prototype-sub001/internal/database"
	"github.com/ngongmathias/Bara-prototype-sub001/internal/handler"
	middlewarepkg "github.com/ngongmathias/Bara-prototype-sub001/internal/middleware"
	"github.com/ngongmathias/Bara-prototype-sub001/internal/repository"
	"github.com/ngongmathias/Bara-prototype-sub001/internal/router"
	"github.com/ngongmathias/Bara-prototype-sub001/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
	contacts := service.NewContactNormalizer(cfg.DefaultPhoneRegion)

	usersRepo := repository.NewPGXUsersRepository(pool)
	adminsRepo := repository.NewPGXAdminsRepository(pool)
	businessesRepo := repository.NewPGXBusinessesRepository(pool)
	reviewsRepo := repository.NewPGXReviewsRepository(pool)
	eventsRepo := repository.NewPGXEventsRepository(pool)
	marketplaceRepo := repository.NewPGXMarketplaceRepository(pool)
	locationsRepo := repository.NewPGXLocationsRepository(pool)

	authService := service.NewAuthService(usersRepo, jwtManager)
	adminService := service.NewAdminService(adminsRepo, usersRepo)
	businessesService := service.NewBusinessesService(businessesRepo, reviewsRepo, locationsRepo, contacts, cfg.ClickLogTimeout)
	reviewsService := service.NewReviewsService(reviewsRepo, businessesRepo)
	eventsService := service.NewEventsService(eventsRepo, contacts)
	marketplaceService := service.NewMarketplaceService(marketplaceRepo, contacts)
	locationsService := service.NewLocationsService(locationsRepo, businessesRepo)

	storage := handler.NewStorageClient(nil, cfg.Storage)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	ipExtractor, err := middlewarepkg.ClientIPExtractor(cfg.TrustedProxies)
	if err != nil {
		log.Fatalf("invalid TRUSTED_PROXIES: %v", err)
	}
	e.IPExtractor = ipExtractor

	e.Use(middlewarepkg.RequestID())
	e.Use(middlewarepkg.Logging())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: cfg.CORSAllowOrigins,
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, "X-Request-ID"},
	}))

	router.Register(e, cfg, jwtManager, adminService, router.Handlers{
		Auth:        handler.NewAuthHandler(authService),
		Admin:       handler.NewAdminHandler(adminService),
		Businesses:  handler.NewBusinessesHandler(businessesService),
		Reviews:     handler.NewReviewsHandler(reviewsService),
		Events:      handler.NewEventsHandler(eventsService),
		Marketplace: handler.NewMarketplaceHandler(marketplaceService),
		Locations:   handler.NewLocationsHandler(locationsService),
		AdminUpload: handler.NewAdminUploadHandler(businessesService, storage, cfg.MaxUploadBytes),
	})

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("api listening on :%s", cfg.Port)
		serverErr <- e.Start(":" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
		return
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}
