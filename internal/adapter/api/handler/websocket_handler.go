package handler

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"gebeya/internal/adapter/api/middleware"
	ws "gebeya/internal/infrastructure/websocket"
	"gebeya/pkg/logger"
)

type WebSocketHandler struct {
	manager  *ws.Manager
	upgrader websocket.Upgrader
}

func NewWebSocketHandler(manager *ws.Manager) *WebSocketHandler {
	return &WebSocketHandler{
		manager: manager,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// Connect upgrades a view to a live event stream for its browser context.
func (h *WebSocketHandler) Connect(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		logger.Error("websocket upgrade: %v", err)
		return err
	}

	client := &ws.Client{
		ContextID: middleware.ContextID(c),
		Conn:      conn,
		Send:      make(chan []byte, 16),
	}
	h.manager.Register <- client

	go client.WritePump()
	go client.ReadPump(h.manager)
	return nil
}
