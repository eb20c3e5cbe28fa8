package router

import (
	"github.com/labstack/echo/v4"

	"gebeya/internal/adapter/api/handler"
	"gebeya/internal/adapter/api/middleware"
)

func SetupListingRouter(e *echo.Echo, guard *middleware.GuardMiddleware, rateLimit *middleware.RateLimitMiddleware) {
	listingHandler := handler.GetListingHandler()

	sell := e.Group("/sell")
	sell.Use(guard.Authenticated)

	sell.GET("", listingHandler.State)
	sell.POST("/details", listingHandler.Details)
	sell.POST("/media", listingHandler.Media)
	sell.POST("/previous", listingHandler.Previous)
	sell.POST("/submit", listingHandler.Submit, rateLimit.Limit("submit_listing"))
	sell.POST("/reset", listingHandler.Reset)
}
