package router

import (
	"github.com/labstack/echo/v4"

	"gebeya/internal/adapter/api/handler"
	"gebeya/internal/adapter/api/middleware"
	"gebeya/internal/domain/entity"
)

func SetupSuperAdminRouter(e *echo.Echo, guard *middleware.GuardMiddleware) {
	superAdminHandler := handler.GetSuperAdminHandler()
	adminHandler := handler.GetAdminHandler()
	profileHandler := handler.GetProfileHandler()
	authHandler := handler.GetAuthHandler()

	pages := SubPageMap{
		Default: "dashboard",
		Pages: map[string]echo.HandlerFunc{
			"dashboard": superAdminHandler.Dashboard,
			"product":   adminHandler.Products,
			"users":     adminHandler.Users,
			"profile":   authHandler.Me,
		},
	}

	dashboard := e.Group("/superadmin")
	dashboard.Use(guard.RequireRole(entity.RoleSuperAdmin))

	dashboard.GET("", pages.Handler())
	dashboard.GET("/:page", pages.Handler())

	dashboard.GET("/admins", superAdminHandler.Admins)
	dashboard.POST("/admins", superAdminHandler.CreateAdmin)
	dashboard.DELETE("/admins/:adminId", superAdminHandler.DeleteAdmin)

	// Moderation actions shared with the admin surface
	dashboard.DELETE("/products/:productId", adminHandler.DeleteProduct)
	dashboard.POST("/products/:productId/report", adminHandler.Report)
	dashboard.PATCH("/sellers/:sellerId/warnings", adminHandler.WarnSeller)
	dashboard.PUT("/users/:userId/activate", adminHandler.ActivateUser)
	dashboard.PATCH("/users/:userId/warnings", adminHandler.WarnUser)

	dashboard.PUT("/profile", profileHandler.Update(true))
	dashboard.PUT("/password", profileHandler.ChangePassword(true))
}
