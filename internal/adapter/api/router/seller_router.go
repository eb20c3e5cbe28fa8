package router

import (
	"github.com/labstack/echo/v4"

	"gebeya/internal/adapter/api/handler"
	"gebeya/internal/adapter/api/middleware"
)

func SetupSellerRouter(e *echo.Echo, guard *middleware.GuardMiddleware) {
	sellerHandler := handler.GetSellerHandler()
	profileHandler := handler.GetProfileHandler()
	authHandler := handler.GetAuthHandler()

	pages := SubPageMap{
		Default: "account",
		Pages: map[string]echo.HandlerFunc{
			"account": authHandler.Me,
			"product": sellerHandler.Products,
			"review":  sellerHandler.Ratings,
		},
	}

	dashboard := e.Group("/seller-dashboard")
	dashboard.Use(guard.Authenticated)

	dashboard.GET("", pages.Handler())
	dashboard.GET("/:page", pages.Handler())

	dashboard.PUT("/profile", profileHandler.Update(false))
	dashboard.PUT("/password", profileHandler.ChangePassword(false))
}
