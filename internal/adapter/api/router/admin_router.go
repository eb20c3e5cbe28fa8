package router

import (
	"github.com/labstack/echo/v4"

	"gebeya/internal/adapter/api/handler"
	"gebeya/internal/adapter/api/middleware"
	"gebeya/internal/domain/entity"
)

func SetupAdminRouter(e *echo.Echo, guard *middleware.GuardMiddleware) {
	adminHandler := handler.GetAdminHandler()
	profileHandler := handler.GetProfileHandler()
	authHandler := handler.GetAuthHandler()

	pages := SubPageMap{
		Default: "product",
		Pages: map[string]echo.HandlerFunc{
			"product": adminHandler.Products,
			"users":   adminHandler.Users,
			"profile": authHandler.Me,
		},
	}

	dashboard := e.Group("/admin")
	dashboard.Use(guard.RequireRole(entity.RoleAdmin))

	dashboard.GET("", pages.Handler())
	dashboard.GET("/:page", pages.Handler())

	dashboard.DELETE("/products/:productId", adminHandler.DeleteProduct)
	dashboard.POST("/products/:productId/report", adminHandler.Report)
	dashboard.PATCH("/sellers/:sellerId/warnings", adminHandler.WarnSeller)

	dashboard.PUT("/users/:userId/activate", adminHandler.ActivateUser)
	dashboard.PATCH("/users/:userId/warnings", adminHandler.WarnUser)

	dashboard.PUT("/profile", profileHandler.Update(true))
	dashboard.PUT("/password", profileHandler.ChangePassword(true))
}
