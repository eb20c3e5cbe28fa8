package router

import (
	"github.com/labstack/echo/v4"

	"gebeya/internal/adapter/api/handler"
)

func SetupHealthRouter(e *echo.Echo) {
	healthHandler := handler.NewHealthHandler()
	e.GET("/health", healthHandler.Check)
}
