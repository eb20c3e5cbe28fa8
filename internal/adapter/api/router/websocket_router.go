package router

import (
	"github.com/labstack/echo/v4"

	"gebeya/internal/adapter/api/handler"
	ws "gebeya/internal/infrastructure/websocket"
)

var webSocketHandler *handler.WebSocketHandler

func SetupWebSocketHandler(manager *ws.Manager) {
	webSocketHandler = handler.NewWebSocketHandler(manager)
}

func SetupWebSocketRouter(e *echo.Echo) {
	e.GET("/ws", webSocketHandler.Connect)
}
