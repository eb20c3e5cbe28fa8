package router

import (
	"github.com/labstack/echo/v4"

	"gebeya/internal/adapter/api/handler"
	"gebeya/internal/adapter/api/middleware"
)

func SetupCatalogRouter(e *echo.Echo, guard *middleware.GuardMiddleware, rateLimit *middleware.RateLimitMiddleware) {
	catalogHandler := handler.GetCatalogHandler()

	// Public storefront
	e.GET("/", catalogHandler.Storefront)
	e.GET("/category/:categorySlug", catalogHandler.Category)
	e.GET("/product/:categoryName/:productId", catalogHandler.Detail)
	e.GET("/videos", catalogHandler.Videos)

	e.GET("/about", catalogHandler.InfoPage("about"))
	e.GET("/contact", catalogHandler.InfoPage("contact"))
	e.GET("/terms", catalogHandler.InfoPage("terms"))
	e.GET("/faq", catalogHandler.InfoPage("faq"))

	// Reviews require a signed-in buyer
	e.POST("/product/:productId/ratings", catalogHandler.AddRating,
		guard.Authenticated, rateLimit.Limit("add_rating"))
}
