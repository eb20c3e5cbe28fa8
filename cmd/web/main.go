package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"gebeya/internal/adapter/api"
	"gebeya/internal/adapter/api/handler"
	apimiddleware "gebeya/internal/adapter/api/middleware"
	"gebeya/internal/adapter/api/router"
	"gebeya/internal/infrastructure/ratelimit"
	"gebeya/internal/infrastructure/websocket"
	"gebeya/internal/listview"
	"gebeya/internal/session"
	"gebeya/internal/upstream"
	"gebeya/internal/usecase"
	"gebeya/internal/wizard"
	"gebeya/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	sessionTTL := time.Duration(cfg.SessionTTL) * time.Second
	upstreamTimeout := time.Duration(cfg.UpstreamTimeout) * time.Second

	apiClient := upstream.NewClient(cfg.APIBaseURL, upstreamTimeout).WithAssetBase(cfg.AssetBaseURL)

	bus := session.NewBus()
	store := session.NewStore(sessionTTL, bus)
	store.StartSweeper(ctx, time.Hour)

	screens := listview.NewRegistry()
	wizards := wizard.NewManager()

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)
	wsManager.Forward(ctx, bus)

	rateLimiter := ratelimit.NewRateLimiter()
	rateLimiter.StartCleanupRoutine()

	authUseCase := usecase.NewAuthUseCase(apiClient, store, screens, wizards)
	catalogUseCase := usecase.NewCatalogUseCase(apiClient, cfg.VideosPath)
	sellerUseCase := usecase.NewSellerUseCase(apiClient, screens)
	listingUseCase := usecase.NewListingUseCase(apiClient, wizards, sellerUseCase)
	profileUseCase := usecase.NewProfileUseCase(apiClient, store)
	adminUseCase := usecase.NewAdminUseCase(apiClient, screens)
	superAdminUseCase := usecase.NewSuperAdminUseCase(apiClient, screens)

	contextMiddleware := apimiddleware.NewContextMiddleware(store, sessionTTL)
	guardMiddleware := apimiddleware.NewGuardMiddleware()
	rateLimitMiddleware := apimiddleware.NewRateLimitMiddleware(rateLimiter)

	handler.Setup(
		authUseCase,
		catalogUseCase,
		listingUseCase,
		sellerUseCase,
		profileUseCase,
		adminUseCase,
		superAdminUseCase,
		contextMiddleware,
	)
	router.SetupWebSocketHandler(wsManager)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(contextMiddleware.Resolve)

	e.Validator = api.NewValidator()

	router.Setup(e, guardMiddleware, rateLimitMiddleware)

	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
