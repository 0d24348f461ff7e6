package http

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"github.com/jfcardenas/inventra/internal/ws"
)

// WSHandler maneja la conexión websocket del feed de stock.
type WSHandler struct {
	hub *ws.Hub
}

// NewWSHandler construye el handler.
func NewWSHandler(hub *ws.Hub) *WSHandler {
	return &WSHandler{hub: hub}
}

// Upgrade rechaza peticiones que no sean upgrade de websocket.
func (h *WSHandler) Upgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// Stream registra la conexión en el hub y la mantiene viva hasta que el
// cliente cierre. Los eventos stock_changed llegan por el hub.
func (h *WSHandler) Stream() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		h.hub.Register(conn)
		defer h.hub.Unregister(conn)
		for {
			// Solo se emite; se lee para detectar el cierre.
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	})
}
