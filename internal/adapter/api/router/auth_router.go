package router

import (
	"github.com/labstack/echo/v4"

	"gebeya/internal/adapter/api/handler"
	"gebeya/internal/adapter/api/middleware"
)

func SetupAuthRouter(e *echo.Echo, rateLimit *middleware.RateLimitMiddleware) {
	authHandler := handler.GetAuthHandler()

	e.POST("/auth/login", authHandler.Login, rateLimit.Limit("login"))
	e.POST("/auth/register", authHandler.Register, rateLimit.Limit("register"))
	e.POST("/auth/logout", authHandler.Logout)
	e.GET("/auth/me", authHandler.Me)
}
