package router

import (
	"github.com/labstack/echo/v4"

	"gebeya/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, guard *middleware.GuardMiddleware, rateLimit *middleware.RateLimitMiddleware) {
	SetupAuthRouter(e, rateLimit)
	SetupCatalogRouter(e, guard, rateLimit)
	SetupListingRouter(e, guard, rateLimit)
	SetupSellerRouter(e, guard)
	SetupAdminRouter(e, guard)
	SetupSuperAdminRouter(e, guard)
	SetupWebSocketRouter(e)
	SetupHealthRouter(e)
}
